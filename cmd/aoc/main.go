// Command aoc solves Advent of Code 2023 puzzles.
//
// Usage:
//
//	aoc [--log-level info] [--log-format text] [--input-dir DIR] solve --day N [FILE]
//	aoc run --config runs.hcl
//	aoc days
//
// A .env file in the working directory is loaded first; AOC_INPUT_DIR sets
// the default input directory.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/aoc2023/internal/app"
	"github.com/katalvlaran/aoc2023/puzzle"
	_ "github.com/katalvlaran/aoc2023/puzzle/days"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Error loading .env file.", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args); err != nil {
		var exitErr *app.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run builds the command tree and executes args against it.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	return newCommand(outW, errW).Run(ctx, args)
}

func newCommand(outW, errW io.Writer) *cli.Command {
	newApp := func(cmd *cli.Command) (*app.App, error) {
		root := cmd.Root()
		cfg := app.Config{
			LogLevel:  root.String("log-level"),
			LogFormat: root.String("log-format"),
			InputDir:  root.String("input-dir"),
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}

		return app.New(outW, errW, cfg), nil
	}

	return &cli.Command{
		Name:      "aoc",
		Usage:     "solve Advent of Code 2023 puzzles",
		Writer:    outW,
		ErrWriter: errW,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "debug, info, warn or error"},
			&cli.StringFlag{Name: "log-format", Value: "text", Usage: "text or json"},
			&cli.StringFlag{
				Name:    "input-dir",
				Value:   ".",
				Usage:   "directory holding dayNN.txt inputs",
				Sources: cli.EnvVars("AOC_INPUT_DIR"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "solve",
				Usage:     "solve both parts of one day",
				ArgsUsage: "[FILE]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "day", Usage: "puzzle day, 1 to 25", Required: true},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					day, err := app.ParseDay(cmd.String("day"))
					if err != nil {
						return err
					}
					a, err := newApp(cmd)
					if err != nil {
						return err
					}

					return a.Solve(ctx, day, cmd.Args().First())
				},
			},
			{
				Name:  "run",
				Usage: "execute the runs listed in an HCL run file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "config", Usage: "path to the run file", Required: true},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					a, err := newApp(cmd)
					if err != nil {
						return err
					}

					return a.RunFile(ctx, cmd.String("config"))
				},
			},
			{
				Name:  "days",
				Usage: "list registered days",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					for _, d := range puzzle.Days() {
						e, err := puzzle.Lookup(d)
						if err != nil {
							return err
						}
						fmt.Fprintf(outW, "%2d %s\n", e.Day, e.Name)
					}
					return nil
				},
			},
		},
	}
}
