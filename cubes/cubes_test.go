package cubes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/cubes"
)

const example = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`

func TestParseGame(t *testing.T) {
	g, err := cubes.ParseGame("Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red")
	require.NoError(t, err)
	assert.Equal(t, 3, g.ID)
	require.Len(t, g.Hands, 3)
	assert.Equal(t, cubes.Hand{Red: 20, Green: 8, Blue: 6}, g.Hands[0])
	assert.Equal(t, cubes.Hand{Red: 1, Green: 5}, g.Hands[2])
	assert.False(t, g.Possible(cubes.DefaultLimits))
}

func TestParseGame_Malformed(t *testing.T) {
	for _, line := range []string{
		"Game 1 3 blue",
		"Round 1: 3 blue",
		"Game x: 3 blue",
		"Game 1: three blue",
		"Game 1: 3 purple",
		"Game 1: 3",
	} {
		_, err := cubes.ParseGame(line)
		assert.ErrorIs(t, err, cubes.ErrMalformedGame, line)
	}
}

func TestMinimumSet(t *testing.T) {
	g, err := cubes.ParseGame("Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green")
	require.NoError(t, err)
	assert.Equal(t, cubes.Hand{Red: 4, Green: 2, Blue: 6}, g.MinimumSet())
	assert.Equal(t, 48, g.MinimumSet().Power())
}

func TestParts(t *testing.T) {
	got, err := cubes.Part1(example)
	require.NoError(t, err)
	assert.Equal(t, 8, got)

	got, err = cubes.Part2(example)
	require.NoError(t, err)
	assert.Equal(t, 2286, got)

	_, err = cubes.Part1("Game 1: 3 purple")
	assert.ErrorIs(t, err, cubes.ErrMalformedGame)
}
