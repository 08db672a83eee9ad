package puzzle

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RegistrySuite struct {
	suite.Suite
}

func (s *RegistrySuite) SetupTest() { reset() }

func lenSolver() SolverFuncs {
	return SolverFuncs{
		P1: func(in string) (int, error) { return len(in), nil },
		P2: func(in string) (int, error) { return len(strings.Fields(in)), nil },
	}
}

func (s *RegistrySuite) TestRegisterAndLookup() {
	s.Require().NoError(Register(7, "lengths", lenSolver()))

	e, err := Lookup(7)
	s.Require().NoError(err)
	s.Equal(7, e.Day)
	s.Equal("lengths", e.Name)

	_, err = Lookup(8)
	s.ErrorIs(err, ErrUnknownDay)
}

func (s *RegistrySuite) TestRegisterRejects() {
	s.Require().NoError(Register(1, "a", lenSolver()))
	s.ErrorIs(Register(1, "b", lenSolver()), ErrDuplicateDay)
	s.ErrorIs(Register(0, "zero", lenSolver()), ErrInvalidDay)
	s.ErrorIs(Register(26, "late", lenSolver()), ErrInvalidDay)
	s.Panics(func() { MustRegister(1, "again", lenSolver()) })
}

func (s *RegistrySuite) TestDaysSorted() {
	for _, d := range []int{9, 2, 5} {
		s.Require().NoError(Register(d, "x", lenSolver()))
	}
	s.Equal([]int{2, 5, 9}, Days())
}

func (s *RegistrySuite) TestRun() {
	s.Require().NoError(Register(3, "lengths", lenSolver()))

	res, err := Run(context.Background(), 3, "ab cd e")
	s.Require().NoError(err)
	s.Equal(Result{Day: 3, Name: "lengths", Part1: 7, Part2: 3}, res)

	_, err = Run(context.Background(), 4, "")
	s.ErrorIs(err, ErrUnknownDay)
}

func (s *RegistrySuite) TestRunPartError() {
	boom := errors.New("boom")
	s.Require().NoError(Register(5, "failing", SolverFuncs{
		P1: func(string) (int, error) { return 1, nil },
		P2: func(string) (int, error) { return 0, boom },
	}))

	_, err := Run(context.Background(), 5, "")
	s.ErrorIs(err, boom)
	s.Contains(err.Error(), "day 5 part 2")
}

func (s *RegistrySuite) TestRunCanceled() {
	s.Require().NoError(Register(6, "lengths", lenSolver()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, 6, "x")
	s.ErrorIs(err, context.Canceled)
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

func TestSolverFuncs(t *testing.T) {
	f := lenSolver()
	v, err := f.Part1("abc")
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	v, err = f.Part2("a b")
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}
