package container

import (
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// Total wraps on overflow like any T arithmetic.
func Total[T constraints.Integer](s *Stack[T]) T {
	return lo.Sum(s.vals)
}

// Average sums in float64, so it does not wrap when Total would.
// It panics on an empty stack.
func Average[T constraints.Integer](s *Stack[T]) float64 {
	if s.Empty() {
		panic("average of empty stack")
	}

	sum := lo.SumBy(s.vals, func(v T) float64 {
		return float64(v)
	})

	return sum / float64(s.Len())
}
