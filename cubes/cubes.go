// Package cubes checks cube-game records against bag limits.
//
// A record looks like "Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red".
// Each ';'-separated draw is a Hand of red, green and blue counts.
package cubes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2023/internal/mathx"
)

// ErrMalformedGame indicates a record that does not follow the game format.
var ErrMalformedGame = errors.New("cubes: malformed game record")

// Hand is one draw of cubes.
type Hand struct {
	Red, Green, Blue int
}

// Limits is the bag content a hand must not exceed.
type Limits = Hand

// DefaultLimits holds 12 red, 13 green and 14 blue cubes.
var DefaultLimits = Limits{Red: 12, Green: 13, Blue: 14}

// Within reports whether every count in h is at most the matching limit.
func (h Hand) Within(l Limits) bool {
	return h.Red <= l.Red && h.Green <= l.Green && h.Blue <= l.Blue
}

// Power returns Red × Green × Blue.
func (h Hand) Power() int { return h.Red * h.Green * h.Blue }

// Game is a parsed record.
type Game struct {
	ID    int
	Hands []Hand
}

// Possible reports whether every hand fits within l.
func (g Game) Possible(l Limits) bool {
	for _, h := range g.Hands {
		if !h.Within(l) {
			return false
		}
	}

	return true
}

// MinimumSet returns the fewest cubes of each color that make g possible.
func (g Game) MinimumSet() Hand {
	var m Hand
	for _, h := range g.Hands {
		m.Red = max(m.Red, h.Red)
		m.Green = max(m.Green, h.Green)
		m.Blue = max(m.Blue, h.Blue)
	}

	return m
}

// ParseGame parses a single record.
func ParseGame(line string) (Game, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, fmt.Errorf("%w: missing ':' in %q", ErrMalformedGame, line)
	}
	idStr, ok := strings.CutPrefix(strings.TrimSpace(head), "Game ")
	if !ok {
		return Game{}, fmt.Errorf("%w: missing \"Game\" prefix in %q", ErrMalformedGame, line)
	}
	id, err := strconv.Atoi(strings.TrimSpace(idStr))
	if err != nil {
		return Game{}, fmt.Errorf("%w: game id in %q: %v", ErrMalformedGame, line, err)
	}

	g := Game{ID: id}
	for _, draw := range strings.Split(body, ";") {
		h, err := parseHand(draw)
		if err != nil {
			return Game{}, fmt.Errorf("%w: %q: %v", ErrMalformedGame, line, err)
		}
		g.Hands = append(g.Hands, h)
	}

	return g, nil
}

// parseHand parses "8 green, 6 blue, 20 red".
func parseHand(draw string) (Hand, error) {
	var h Hand
	for _, part := range strings.Split(draw, ",") {
		fields := strings.Fields(part)
		if len(fields) != 2 {
			return Hand{}, fmt.Errorf("bad count %q", strings.TrimSpace(part))
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return Hand{}, fmt.Errorf("bad count %q: %w", fields[0], err)
		}
		switch fields[1] {
		case "red":
			h.Red += n
		case "green":
			h.Green += n
		case "blue":
			h.Blue += n
		default:
			return Hand{}, fmt.Errorf("unknown color %q", fields[1])
		}
	}

	return h, nil
}

// ParseGames parses every non-blank line of input.
func ParseGames(input string) ([]Game, error) {
	var games []Game
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		g, err := ParseGame(line)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}

	return games, nil
}

// Part1 sums the IDs of games possible under DefaultLimits.
func Part1(input string) (int, error) {
	games, err := ParseGames(input)
	if err != nil {
		return 0, err
	}

	return mathx.SumFunc(games, func(g Game) int {
		if g.Possible(DefaultLimits) {
			return g.ID
		}
		return 0
	}), nil
}

// Part2 sums the power of each game's minimum cube set.
func Part2(input string) (int, error) {
	games, err := ParseGames(input)
	if err != nil {
		return 0, err
	}

	return mathx.SumFunc(games, func(g Game) int { return g.MinimumSet().Power() }), nil
}
