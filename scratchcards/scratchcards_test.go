package scratchcards_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/scratchcards"
)

const example = `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
`

func set(vs ...int) map[int]struct{} {
	s := make(map[int]struct{}, len(vs))
	for _, v := range vs {
		s[v] = struct{}{}
	}

	return s
}

func TestParseCard(t *testing.T) {
	c, err := scratchcards.ParseCard("Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53")
	require.NoError(t, err)

	want := scratchcards.Card{
		Name:    "Card 1",
		ID:      1,
		Winning: set(41, 48, 83, 86, 17),
		Numbers: set(83, 86, 6, 31, 17, 9, 48, 53),
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("ParseCard mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 4, c.Matches())
	assert.Equal(t, 8, c.Score())
}

func TestScore_NoMatches(t *testing.T) {
	c := scratchcards.Card{Winning: set(1, 2, 3, 4, 5), Numbers: set(83, 86, 6, 31, 17, 9, 48, 53)}
	assert.Zero(t, c.Matches())
	assert.Zero(t, c.Score())
}

func TestParseCard_Malformed(t *testing.T) {
	for _, line := range []string{
		"Card 1 41 48 | 83",
		"Card 1: 41 48 83",
		"Deck 1: 41 | 83",
		"Card x: 41 | 83",
		"Card 1: 41 | eighty",
	} {
		_, err := scratchcards.ParseCard(line)
		assert.ErrorIs(t, err, scratchcards.ErrMalformedCard, line)
	}
}

func TestCopies(t *testing.T) {
	cards, err := scratchcards.ParseCards(example)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 8, 14, 1}, scratchcards.Copies(cards))
}

func TestParts(t *testing.T) {
	got, err := scratchcards.Part1(example)
	require.NoError(t, err)
	assert.Equal(t, 13, got)

	got, err = scratchcards.Part2(example)
	require.NoError(t, err)
	assert.Equal(t, 30, got)
}
