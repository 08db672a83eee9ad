// Package scratchcards scores scratchcards of the form
// "Card 1: 41 48 83 | 83 86  6 31".
//
// The left side lists winning numbers, the right side the numbers you have.
// Part 1 scores 2^(matches-1) per card. Part 2 lets each card with m matches
// win one copy of each of the next m cards and counts every card held.
package scratchcards

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2023/internal/mathx"
)

// ErrMalformedCard indicates a line that does not follow the card format.
var ErrMalformedCard = errors.New("scratchcards: malformed card")

// Card is one parsed scratchcard.
type Card struct {
	Name    string
	ID      int
	Winning map[int]struct{}
	Numbers map[int]struct{}
}

// Matches returns how many of the card's numbers are winning numbers.
func (c Card) Matches() int {
	n := 0
	for v := range c.Numbers {
		if _, ok := c.Winning[v]; ok {
			n++
		}
	}

	return n
}

// Score returns 0 without matches, else 2^(matches-1).
func (c Card) Score() int {
	m := c.Matches()
	if m == 0 {
		return 0
	}

	return 1 << (m - 1)
}

// ParseCard parses a single card line.
func ParseCard(line string) (Card, error) {
	name, rest, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, fmt.Errorf("%w: missing ':' in %q", ErrMalformedCard, line)
	}
	left, right, ok := strings.Cut(rest, "|")
	if !ok {
		return Card{}, fmt.Errorf("%w: missing '|' in %q", ErrMalformedCard, line)
	}

	name = strings.TrimSpace(name)
	fields := strings.Fields(name)
	if len(fields) != 2 || fields[0] != "Card" {
		return Card{}, fmt.Errorf("%w: bad card name %q", ErrMalformedCard, name)
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return Card{}, fmt.Errorf("%w: card id %q: %v", ErrMalformedCard, fields[1], err)
	}

	winning, err := parseSet(left)
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q: %v", ErrMalformedCard, line, err)
	}
	numbers, err := parseSet(right)
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q: %v", ErrMalformedCard, line, err)
	}

	return Card{Name: name, ID: id, Winning: winning, Numbers: numbers}, nil
}

func parseSet(s string) (map[int]struct{}, error) {
	set := make(map[int]struct{})
	for _, f := range strings.Fields(s) {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		set[v] = struct{}{}
	}

	return set, nil
}

// ParseCards parses every non-blank line of input, in order.
func ParseCards(input string) ([]Card, error) {
	var cards []Card
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		c, err := ParseCard(line)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}

	return cards, nil
}

// Copies returns how many instances of each card are held once every win
// has been cashed in. Wins never reach past the last card.
func Copies(cards []Card) []int {
	counts := make([]int, len(cards))
	for i := range counts {
		counts[i] = 1
	}
	for i, c := range cards {
		for j := i + 1; j <= i+c.Matches() && j < len(cards); j++ {
			counts[j] += counts[i]
		}
	}

	return counts
}

// Part1 returns the total score of all cards.
func Part1(input string) (int, error) {
	cards, err := ParseCards(input)
	if err != nil {
		return 0, err
	}

	return mathx.SumFunc(cards, Card.Score), nil
}

// Part2 returns the total number of cards held after cascading copies.
func Part2(input string) (int, error) {
	cards, err := ParseCards(input)
	if err != nil {
		return 0, err
	}

	return mathx.Sum(Copies(cards)...), nil
}
