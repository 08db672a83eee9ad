// Package config loads run files: HCL documents listing which puzzle days to
// solve, against which inputs, and optionally which answers to expect.
//
//	run "engine" {
//	  day          = 3
//	  input        = "${input_dir}/day03.txt"
//	  expect_part1 = 4361
//	}
//
// Expressions are evaluated with the variable input_dir set to the directory
// given to Load.
package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/aoc2023/internal/ctxlog"
)

var (
	// ErrNoRuns indicates a run file without any run block.
	ErrNoRuns = errors.New("config: no run blocks")
	// ErrInvalidRun indicates a run block that fails validation.
	ErrInvalidRun = errors.New("config: invalid run")
)

// Run is one `run "name" { ... }` block.
type Run struct {
	Name        string `hcl:"name,label"`
	Day         int    `hcl:"day"`
	Input       string `hcl:"input"`
	ExpectPart1 *int   `hcl:"expect_part1,optional"`
	ExpectPart2 *int   `hcl:"expect_part2,optional"`
}

// File is a decoded run file.
type File struct {
	Runs []*Run `hcl:"run,block"`
}

// EvalContext returns the evaluation context used for run files.
func EvalContext(inputDir string) *hcl.EvalContext {
	if inputDir == "" {
		inputDir = "."
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"input_dir": cty.StringVal(inputDir),
		},
	}
}

// Load parses and decodes the run file at path. Relative input paths are
// resolved against the directory holding the file.
func Load(ctx context.Context, path, inputDir string) (*File, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding run file.", "path", path, "input_dir", inputDir)

	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %s", path, diags.Error())
	}

	cfg, err := decode(f, path, inputDir)
	if err != nil {
		return nil, err
	}
	base := filepath.Dir(path)
	for _, r := range cfg.Runs {
		if r.Input != "" && !filepath.IsAbs(r.Input) {
			r.Input = filepath.Join(base, r.Input)
		}
	}

	logger.Debug("Decoded run file.", "path", path, "runs_found", len(cfg.Runs))
	return cfg, nil
}

// Parse decodes a run file from memory. filename is used in diagnostics only.
func Parse(src []byte, filename, inputDir string) (*File, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %s", filename, diags.Error())
	}

	return decode(f, filename, inputDir)
}

func decode(f *hcl.File, filename, inputDir string) (*File, error) {
	var cfg File
	if diags := gohcl.DecodeBody(f.Body, EvalContext(inputDir), &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %s", filename, diags.Error())
	}

	return &cfg, nil
}

// Validate checks the file has at least one run, that run names are unique,
// that every input is set, and that known reports each day as solvable.
// known may be nil to skip the day check.
func (f *File) Validate(known func(day int) bool) error {
	if len(f.Runs) == 0 {
		return ErrNoRuns
	}
	seen := make(map[string]struct{}, len(f.Runs))
	for _, r := range f.Runs {
		if _, dup := seen[r.Name]; dup {
			return fmt.Errorf("%w: duplicate run name %q", ErrInvalidRun, r.Name)
		}
		seen[r.Name] = struct{}{}

		if r.Input == "" {
			return fmt.Errorf("%w: run %q has an empty input", ErrInvalidRun, r.Name)
		}
		if known != nil && !known(r.Day) {
			return fmt.Errorf("%w: run %q names unregistered day %d", ErrInvalidRun, r.Name, r.Day)
		}
	}

	return nil
}
