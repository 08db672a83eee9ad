// Package mathx holds small generic integer helpers shared by the solvers.
package mathx

import "golang.org/x/exp/constraints"

// Sum adds all values.
func Sum[T constraints.Integer](vs ...T) T {
	var total T
	for _, v := range vs {
		total += v
	}

	return total
}

// SumFunc adds f(x) over xs.
func SumFunc[E any, T constraints.Integer](xs []E, f func(E) T) T {
	var total T
	for _, x := range xs {
		total += f(x)
	}

	return total
}
