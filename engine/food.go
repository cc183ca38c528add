package engine

import (
	"iter"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/serpent/parameter"
)

// Food is a timed, self-expiring pickup. Its cell is fixed at spawn,
// chosen uniformly over the grid independent of other entities; the
// spawner is responsible for rejecting cells occupied by the snake.
type Food struct {
	registration
	cell     Point
	lifetime time.Duration
	elapsed  time.Duration
}

// NewFood places a food at a uniformly random cell with a lifetime
// uniform in [FoodLifetimeMin, FoodLifetimeMax)
func NewFood(rng *rand.Rand) *Food {
	span := int64(parameter.FoodLifetimeMax - parameter.FoodLifetimeMin)
	return &Food{
		cell: Point{
			X: rng.Intn(parameter.GridWidth),
			Y: rng.Intn(parameter.GridHeight),
		},
		lifetime: parameter.FoodLifetimeMin + time.Duration(rng.Int63n(span)),
	}
}

func (f *Food) Kind() Kind {
	return KindFood
}

// Cell returns the fixed grid cell the food occupies
func (f *Food) Cell() Point {
	return f.cell
}

// Update accumulates elapsed time and self-removes once it reaches the
// lifetime, reporting changed only on that tick.
func (f *Food) Update(dt time.Duration, w *World) bool {
	f.elapsed += dt
	if f.elapsed >= f.lifetime {
		w.RemoveEntity(f)
		w.Logger().Debug("food expired", zap.Uint64("id", uint64(f.ID())))
		return true
	}
	return false
}

// Sprites yields the single cell the food occupies
func (f *Food) Sprites() iter.Seq[Sprite] {
	return func(yield func(Sprite) bool) {
		yield(Sprite{Cell: f.cell, ID: spriteID(f.ID(), 0), Kind: SpriteFood})
	}
}
