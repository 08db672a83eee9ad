// Package calibration recovers calibration values from lines of text.
//
// A line's value is its first digit times ten plus its last digit. In the
// spelled mode the words "one" through "nine" also count as digits, and
// overlapping words are honored: "eightwo" starts with 8 and ends with 2.
package calibration

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2023/internal/mathx"
)

// ErrNoDigit indicates a line without any digit.
var ErrNoDigit = errors.New("calibration: line has no digit")

var words = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt reports the digit starting at s[i], if any.
func digitAt(s string, i int, spelled bool) (int, bool) {
	if c := s[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !spelled {
		return 0, false
	}
	for w, word := range words {
		if strings.HasPrefix(s[i:], word) {
			return w + 1, true
		}
	}

	return 0, false
}

// LineValue returns first*10 + last for line.
func LineValue(line string, spelled bool) (int, error) {
	first, last, found := 0, 0, false
	for i := 0; i < len(line); i++ {
		d, ok := digitAt(line, i, spelled)
		if !ok {
			continue
		}
		if !found {
			first, found = d, true
		}
		last = d
	}
	if !found {
		return 0, fmt.Errorf("%w: %q", ErrNoDigit, line)
	}

	return first*10 + last, nil
}

// Sum adds LineValue over every non-blank line of input.
func Sum(input string, spelled bool) (int, error) {
	var vals []int
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		v, err := LineValue(line, spelled)
		if err != nil {
			return 0, err
		}
		vals = append(vals, v)
	}

	return mathx.Sum(vals...), nil
}

// Part1 sums calibration values counting numeric digits only.
func Part1(input string) (int, error) { return Sum(input, false) }

// Part2 sums calibration values counting spelled-out digits too.
func Part2(input string) (int, error) { return Sum(input, true) }
