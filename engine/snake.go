package engine

import (
	"iter"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/serpent/parameter"
)

// Snake is the sole actor: a continuously moving head with a bounded
// history of previously occupied cells trailing it. It spawns food,
// ramps its own speed, grows by consumption, and dies on self-collision.
type Snake struct {
	registration

	pos      Vec       // continuous head position
	dir      Direction // current movement direction
	queue    []Direction
	tail     []Point // most recent first, bounded by length
	length   int     // target tail bound
	lastCell Point   // discrete position at previous tick

	foodTimer  time.Duration
	speedTimer time.Duration
	speed      float64 // continuous units per millisecond

	dead  bool
	score int
}

// NewSnake places a snake at a random cell, moving right at the initial
// speed with the initial target length.
func NewSnake(rng *rand.Rand) *Snake {
	cell := Point{
		X: rng.Intn(parameter.GridWidth),
		Y: rng.Intn(parameter.GridHeight),
	}
	pos := Vec{
		X: float64(cell.X) * parameter.CellSize,
		Y: float64(cell.Y) * parameter.CellSize,
	}
	return &Snake{
		pos:      pos,
		dir:      DirRight,
		queue:    make([]Direction, 0, parameter.DirectionQueueCapacity),
		tail:     make([]Point, 0, parameter.InitialSnakeLength),
		length:   parameter.InitialSnakeLength,
		lastCell: ToGridPosition(pos),
		speed:    parameter.InitialSpeed,
	}
}

func (s *Snake) Kind() Kind {
	return KindSnake
}

// IsDead reports the death latch; once true it never resets
func (s *Snake) IsDead() bool {
	return s.dead
}

// Score returns the number of food eaten
func (s *Snake) Score() int {
	return s.score
}

// Length returns the current target tail bound
func (s *Snake) Length() int {
	return s.length
}

// Cell returns the snake's current discrete head cell
func (s *Snake) Cell() Point {
	return ToGridPosition(s.pos)
}

// Speed returns the current movement speed in units per millisecond
func (s *Snake) Speed() float64 {
	return s.speed
}

// QueueDirectionChange appends a pending turn. A direction exactly
// opposite the one that will be active once all queued changes apply
// (the last queued entry, or the current direction when the queue is
// empty) is rejected, since it would guarantee instant self-collision.
// Input arriving while the queue is full is dropped.
func (s *Snake) QueueDirectionChange(d Direction) {
	reference := s.dir
	if n := len(s.queue); n > 0 {
		reference = s.queue[n-1]
	}
	if d == reference.Opposite() {
		return
	}
	if len(s.queue) >= parameter.DirectionQueueCapacity {
		return
	}
	s.queue = append(s.queue, d)
}

// Update runs one simulation step. The step order matters: food and
// speed timers fire first, the front queued direction is applied every
// tick (so heading can change before the discrete cell does), position
// integrates, self-collision is checked against the tail, then
// cell-boundary crossing commits the queued turn and advances the tail,
// and finally any food sharing the head cell is consumed.
//
// Death is terminal: after the tick that sets the latch, updates return
// immediately with no further mutation.
func (s *Snake) Update(dt time.Duration, w *World) bool {
	if s.dead {
		return false
	}

	changed := false

	// Food spawn timer
	s.foodTimer += dt
	if s.foodTimer >= parameter.FoodSpawnInterval {
		s.foodTimer = 0
		f := s.spawnFood(w.Rand())
		w.AddEntity(f)
		w.Logger().Debug("food spawned",
			zap.Int("x", f.cell.X), zap.Int("y", f.cell.Y))
		changed = true
	}

	// Speed ramp timer
	s.speedTimer += dt
	if s.speedTimer >= parameter.SpeedRampInterval {
		s.speedTimer = 0
		s.speed += parameter.SpeedIncrement
		changed = true
	}

	// Apply pending direction; it is popped only on a cell crossing so
	// a queued turn commits exactly once per cell entered
	if len(s.queue) > 0 {
		s.dir = s.queue[0]
	}

	// Integrate continuous position
	dtMs := float64(dt) / float64(time.Millisecond)
	v := s.dir.Vector()
	s.pos.X += v.X * s.speed * dtMs
	s.pos.Y += v.Y * s.speed * dtMs

	// Self-collision against the tail
	cell := ToGridPosition(s.pos)
	for _, t := range s.tail {
		if PositionsEqual(cell, t) {
			s.dead = true
			w.Logger().Info("snake died",
				zap.Int("score", s.score),
				zap.Int("x", cell.X), zap.Int("y", cell.Y))
			return true
		}
	}

	// Cell-boundary crossing: commit the turn, advance the tail
	if !PositionsEqual(cell, s.lastCell) {
		if len(s.queue) > 0 {
			s.queue = s.queue[1:]
		}
		s.tail = append([]Point{s.lastCell}, s.tail...)
		if len(s.tail) > s.length {
			s.tail = s.tail[:s.length]
		}
		s.lastCell = cell
		changed = true
	}

	// Consume any food sharing the head cell
	for _, e := range w.EntitiesOfType(KindFood) {
		f := e.(*Food)
		if PositionsEqual(f.cell, cell) {
			w.RemoveEntity(f)
			s.length += parameter.GrowthPerFood
			s.score++
			w.Logger().Info("food eaten", zap.Int("score", s.score))
			changed = true
		}
	}

	return changed
}

// spawnFood rejection-samples a food whose cell overlaps neither the
// head cell nor any tail cell
func (s *Snake) spawnFood(rng *rand.Rand) *Food {
	for {
		f := NewFood(rng)
		if !s.occupies(f.cell) {
			return f
		}
	}
}

func (s *Snake) occupies(p Point) bool {
	if PositionsEqual(ToGridPosition(s.pos), p) {
		return true
	}
	for _, t := range s.tail {
		if PositionsEqual(p, t) {
			return true
		}
	}
	return false
}

// Sprites yields the head cell followed by the tail cells, most recent
// first. Sprite ids are stable across ticks for a given entity + index.
func (s *Snake) Sprites() iter.Seq[Sprite] {
	return func(yield func(Sprite) bool) {
		if !yield(Sprite{Cell: ToGridPosition(s.pos), ID: spriteID(s.ID(), 0), Kind: SpriteSnakeHead}) {
			return
		}
		for i, t := range s.tail {
			if !yield(Sprite{Cell: t, ID: spriteID(s.ID(), i+1), Kind: SpriteSnakeTail}) {
				return
			}
		}
	}
}
