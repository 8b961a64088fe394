package engine

import (
	"math"

	"golang.org/x/exp/slices"

	"tour-engine/tourmg"
)

// orderByCenterDistance stable-sorts moves by Manhattan distance from the
// board center, farthest first. Squares far from the center tend to run out
// of continuations sooner, so a refutation is often found earlier there.
// The sort is stable so equal-distance moves keep generation order and node
// counts stay reproducible. The center is captured explicitly; the
// comparator never reads shared mutable state.
func orderByCenterDistance(b *tourmg.Board, moves []tourmg.Position) {
	centerRow, centerCol := b.Center()
	dist := func(p tourmg.Position) float64 {
		return math.Abs(float64(p.Row)-centerRow) + math.Abs(float64(p.Col)-centerCol)
	}
	slices.SortStableFunc(moves, func(a, b tourmg.Position) bool {
		return dist(a) > dist(b)
	})
}
