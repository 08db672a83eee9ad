// Package days registers every solved day with the puzzle registry.
package days

import (
	"github.com/katalvlaran/aoc2023/calibration"
	"github.com/katalvlaran/aoc2023/cubes"
	"github.com/katalvlaran/aoc2023/puzzle"
	"github.com/katalvlaran/aoc2023/schematic"
	"github.com/katalvlaran/aoc2023/scratchcards"
)

func init() {
	puzzle.MustRegister(1, "calibration", puzzle.SolverFuncs{P1: calibration.Part1, P2: calibration.Part2})
	puzzle.MustRegister(2, "cubes", puzzle.SolverFuncs{P1: cubes.Part1, P2: cubes.Part2})
	puzzle.MustRegister(3, "schematic", puzzle.SolverFuncs{P1: schematic.Part1, P2: schematic.Part2})
	puzzle.MustRegister(4, "scratchcards", puzzle.SolverFuncs{P1: scratchcards.Part1, P2: scratchcards.Part2})
}
