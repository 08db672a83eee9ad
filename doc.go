// Package aoc2023 collects Advent of Code 2023 solvers built on a small set
// of grid and graph primitives.
//
// What is inside?
//
//	grid/           Coord with 8-way neighbors, Grid built from text lines
//	core/           thread-safe undirected adjacency graph
//	schematic/      day 03: numbers, symbols, part numbers and gear ratios
//	calibration/    day 01: first/last digit values, spelled digits
//	cubes/          day 02: cube games against bag limits
//	scratchcards/   day 04: card scores and copy cascades
//	puzzle/         registry of daily solvers; puzzle/days wires them in
//	cmd/aoc         CLI: solve one day or a whole HCL run file
//
// Quick start:
//
//	part1, part2, err := schematic.Solve(input)
//
// or from the shell:
//
//	aoc solve --day 3 inputs/day03.txt
//	aoc run --config runs.hcl
package aoc2023
