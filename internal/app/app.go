// Package app wires configuration, logging and the puzzle registry into the
// commands exposed by cmd/aoc.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/aoc2023/internal/config"
	"github.com/katalvlaran/aoc2023/internal/ctxlog"
	"github.com/katalvlaran/aoc2023/puzzle"
)

// Config holds the global settings shared by every command.
type Config struct {
	LogLevel  string
	LogFormat string
	InputDir  string
}

// Validate checks the log settings, returning an *ExitError on failure.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return usageError("invalid log-format: must be 'text' or 'json'")
	}

	return nil
}

// App runs puzzles and prints their answers to out.
type App struct {
	out    io.Writer
	cfg    Config
	logger *slog.Logger
}

// New returns an App printing answers to out and logging to logW.
func New(out, logW io.Writer, cfg Config) *App {
	return &App{
		out:    out,
		cfg:    cfg,
		logger: NewLogger(cfg.LogLevel, cfg.LogFormat, logW),
	}
}

// InputPath returns the default input file for day: <input-dir>/dayNN.txt.
func (a *App) InputPath(day int) string {
	dir := a.cfg.InputDir
	if dir == "" {
		dir = "."
	}

	return filepath.Join(dir, fmt.Sprintf("day%02d.txt", day))
}

// ParseDay converts a --day value, reporting bad values as usage errors.
func ParseDay(s string) (int, error) {
	day, err := strconv.Atoi(s)
	if err != nil || day < 1 || day > 25 {
		return 0, usageError(fmt.Sprintf("invalid day %q: must be a number from 1 to 25", s))
	}

	return day, nil
}

// Solve runs both parts of day on the file at path, or on the default input
// file when path is empty.
func (a *App) Solve(ctx context.Context, day int, path string) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	if _, err := puzzle.Lookup(day); err != nil {
		return usageError(err.Error())
	}
	if path == "" {
		path = a.InputPath(day)
	}

	res, err := a.solveFile(ctx, day, path)
	if err != nil {
		return err
	}
	a.print(res)

	return nil
}

// RunFile executes every run of the HCL run file at path, in order. Runs
// whose answers differ from their expectations are reported and the first
// mismatch is returned once all runs have finished.
func (a *App) RunFile(ctx context.Context, path string) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	cfg, err := config.Load(ctx, path, a.cfg.InputDir)
	if err != nil {
		return err
	}
	err = cfg.Validate(func(day int) bool {
		_, err := puzzle.Lookup(day)
		return err == nil
	})
	if err != nil {
		return err
	}

	var mismatch error
	for _, r := range cfg.Runs {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.logger.Info("Starting run.", "run", r.Name, "day", r.Day, "input", r.Input)

		res, err := a.solveFile(ctx, r.Day, r.Input)
		if err != nil {
			return fmt.Errorf("run %q: %w", r.Name, err)
		}
		a.print(res)

		if err := check(r, res); err != nil {
			a.logger.Error("Run answer mismatch.", "run", r.Name, "error", err)
			if mismatch == nil {
				mismatch = err
			}
		}
	}

	return mismatch
}

func (a *App) solveFile(ctx context.Context, day int, path string) (puzzle.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return puzzle.Result{}, fmt.Errorf("read input for day %d: %w", day, err)
	}

	return puzzle.Run(ctx, day, string(data))
}

func (a *App) print(res puzzle.Result) {
	fmt.Fprintf(a.out, "Day %02d (%s)\n  part 1: %d\n  part 2: %d\n", res.Day, res.Name, res.Part1, res.Part2)
}

// check compares a result with the expectations of its run.
func check(r *config.Run, res puzzle.Result) error {
	var errs []error
	if r.ExpectPart1 != nil && *r.ExpectPart1 != res.Part1 {
		errs = append(errs, fmt.Errorf("%w: run %q part 1: got %d, want %d", ErrExpectation, r.Name, res.Part1, *r.ExpectPart1))
	}
	if r.ExpectPart2 != nil && *r.ExpectPart2 != res.Part2 {
		errs = append(errs, fmt.Errorf("%w: run %q part 2: got %d, want %d", ErrExpectation, r.Name, res.Part2, *r.ExpectPart2))
	}

	return errors.Join(errs...)
}
