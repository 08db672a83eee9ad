package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/internal/app"
)

const scratch = `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
`

func TestRun_Solve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cards.txt")
	require.NoError(t, os.WriteFile(path, []byte(scratch), 0o644))

	var out, errOut bytes.Buffer
	err := run(context.Background(), &out, &errOut, []string{"aoc", "solve", "--day", "4", path})
	require.NoError(t, err)
	assert.Equal(t, "Day 04 (scratchcards)\n  part 1: 13\n  part 2: 30\n", out.String())
}

func TestRun_SolveInputDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day04.txt"), []byte(scratch), 0o644))

	var out, errOut bytes.Buffer
	err := run(context.Background(), &out, &errOut, []string{"aoc", "--input-dir", dir, "solve", "--day", "4"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "part 2: 30")
}

func TestRun_Config(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day04.txt"), []byte(scratch), 0o644))
	cfg := filepath.Join(dir, "runs.hcl")
	require.NoError(t, os.WriteFile(cfg, []byte(`
run "cards" {
  day          = 4
  input        = "${input_dir}/day04.txt"
  expect_part1 = 13
  expect_part2 = 30
}
`), 0o644))

	var out, errOut bytes.Buffer
	err := run(context.Background(), &out, &errOut, []string{"aoc", "--input-dir", dir, "--log-format", "json", "run", "--config", cfg})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Day 04 (scratchcards)")
	assert.Contains(t, errOut.String(), `"msg":"Starting run."`)
}

func TestRun_Days(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, run(context.Background(), &out, &errOut, []string{"aoc", "days"}))
	assert.Equal(t, " 1 calibration\n 2 cubes\n 3 schematic\n 4 scratchcards\n", out.String())
}

func TestRun_UsageErrors(t *testing.T) {
	cases := map[string][]string{
		"bad day":       {"aoc", "solve", "--day", "x"},
		"unknown day":   {"aoc", "solve", "--day", "12"},
		"bad log level": {"aoc", "--log-level", "loud", "solve", "--day", "4"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			err := run(context.Background(), &out, &errOut, args)
			var exitErr *app.ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}
