package engine

import (
	"math"

	"github.com/lixenwraith/serpent/parameter"
)

// Point is a discrete grid cell address
type Point struct {
	X, Y int
}

// Vec is a continuous sub-cell position
type Vec struct {
	X, Y float64
}

// WrapToRange maps v into [min, max) with toroidal topology: values past
// either edge re-enter modularly from the opposite edge, they do not
// saturate. Values arbitrarily far outside the range wrap in one call.
func WrapToRange(v, min, max float64) float64 {
	span := max - min
	switch {
	case v < min:
		w := max - math.Mod(min-v, span)
		if w == max {
			// Exact multiple of span below min lands on min, not max
			w = min
		}
		return w
	case v >= max:
		return min + math.Mod(v-max, span)
	}
	return v
}

// ToGridPosition discretizes a continuous position: divide by cell size,
// wrap into the grid range, floor to an integer cell index.
func ToGridPosition(p Vec) Point {
	x := WrapToRange(p.X/parameter.CellSize, 0, parameter.GridWidth)
	y := WrapToRange(p.Y/parameter.CellSize, 0, parameter.GridHeight)
	return Point{X: int(math.Floor(x)), Y: int(math.Floor(y))}
}

// PositionsEqual reports exact integer-cell equality on both axes
func PositionsEqual(a, b Point) bool {
	return a == b
}
