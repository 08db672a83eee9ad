// Package puzzle keeps the registry of daily solvers and runs them.
//
// Solver packages stay free of registration; puzzle/days wires them in:
//
//	import _ "github.com/katalvlaran/aoc2023/puzzle/days"
package puzzle

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/katalvlaran/aoc2023/internal/ctxlog"
)

var (
	// ErrUnknownDay is returned when no solver is registered for a day.
	ErrUnknownDay = errors.New("puzzle: unknown day")
	// ErrDuplicateDay is returned by Register when a day is taken.
	ErrDuplicateDay = errors.New("puzzle: day already registered")
	// ErrInvalidDay is returned by Register for days outside 1..25.
	ErrInvalidDay = errors.New("puzzle: day out of range")
)

// Solver answers both parts of one day's puzzle.
type Solver interface {
	Part1(input string) (int, error)
	Part2(input string) (int, error)
}

// SolverFuncs adapts a pair of plain functions to Solver.
type SolverFuncs struct {
	P1 func(input string) (int, error)
	P2 func(input string) (int, error)
}

// Part1 calls P1.
func (f SolverFuncs) Part1(input string) (int, error) { return f.P1(input) }

// Part2 calls P2.
func (f SolverFuncs) Part2(input string) (int, error) { return f.P2(input) }

// Entry is one registered solver.
type Entry struct {
	Day    int
	Name   string
	Solver Solver
}

// Result holds both answers of a run.
type Result struct {
	Day   int
	Name  string
	Part1 int
	Part2 int
}

var (
	mu    sync.RWMutex
	byDay = map[int]Entry{}
)

// Register adds s as the solver for day.
func Register(day int, name string, s Solver) error {
	if day < 1 || day > 25 {
		return fmt.Errorf("%w: %d", ErrInvalidDay, day)
	}
	mu.Lock()
	defer mu.Unlock()
	if prev, ok := byDay[day]; ok {
		return fmt.Errorf("%w: day %d is %q", ErrDuplicateDay, day, prev.Name)
	}
	byDay[day] = Entry{Day: day, Name: name, Solver: s}

	return nil
}

// MustRegister is Register that panics on error, for use from init.
func MustRegister(day int, name string, s Solver) {
	if err := Register(day, name, s); err != nil {
		panic(err)
	}
}

// Lookup returns the entry registered for day.
func Lookup(day int) (Entry, error) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := byDay[day]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}

	return e, nil
}

// Days returns the registered days in ascending order.
func Days() []int {
	mu.RLock()
	defer mu.RUnlock()
	days := make([]int, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Ints(days)

	return days
}

// Run solves both parts of day against input.
// ctx is checked before each part; its logger records timings.
func Run(ctx context.Context, day int, input string) (Result, error) {
	e, err := Lookup(day)
	if err != nil {
		return Result{}, err
	}
	logger := ctxlog.FromContext(ctx).With("day", day, "name", e.Name)

	res := Result{Day: day, Name: e.Name}
	parts := []struct {
		n   int
		fn  func(string) (int, error)
		out *int
	}{
		{1, e.Solver.Part1, &res.Part1},
		{2, e.Solver.Part2, &res.Part2},
	}
	for _, p := range parts {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		start := time.Now()
		v, err := p.fn(input)
		if err != nil {
			logger.Error("Part failed.", "part", p.n, "error", err)
			return Result{}, fmt.Errorf("day %d part %d: %w", day, p.n, err)
		}
		*p.out = v
		logger.Debug("Part solved.", "part", p.n, "answer", v, "elapsed", time.Since(start))
	}

	return res, nil
}

// reset clears the registry. Tests only.
func reset() {
	mu.Lock()
	byDay = map[int]Entry{}
	mu.Unlock()
}
