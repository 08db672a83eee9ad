package schematic_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/aoc2023/schematic"
)

// randomSchematic builds an n×n schematic with a fixed seed: mostly '.',
// with digit runs and a sprinkling of symbols and gears.
func randomSchematic(n int) string {
	r := rand.New(rand.NewSource(42))
	var b strings.Builder
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			switch p := r.Intn(100); {
			case p < 25:
				b.WriteByte(byte('0' + r.Intn(10)))
			case p < 28:
				b.WriteByte('*')
			case p < 30:
				b.WriteByte('#')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// BenchmarkSolve measures the full pipeline on a 140×140 schematic.
// Complexity: O(W×H) scan plus O(G×D) gear resolution.
func BenchmarkSolve(b *testing.B) {
	text := randomSchematic(140)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := schematic.Solve(text); err != nil {
			b.Fatal(err)
		}
	}
}
