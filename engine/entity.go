package engine

import (
	"iter"
	"time"
)

// ID is a unique identifier for a registered entity. The identity space
// starts at 0, so no ID value is reserved as "unassigned"; registration
// state is tracked separately.
type ID uint64

// Kind is the closed enumeration of entity variants
type Kind uint8

const (
	KindSnake Kind = iota
	KindFood
)

// Entity is the engine's update contract. Update receives the frame
// delta and the owning world, mutates only the entity's own state (plus
// add/remove requests through the world), and reports whether a visual
// or state change occurred that warrants a re-render.
type Entity interface {
	// ID panics if the entity has not been registered with a World
	ID() ID
	Kind() Kind
	Update(dt time.Duration, w *World) bool
}

// Positional is the capability interface for entities that occupy grid
// cells. Sprites yields the cells the entity currently covers; it is
// consumed purely for presentation, never for identity.
type Positional interface {
	Entity
	Sprites() iter.Seq[Sprite]
}

// SpriteKind tags a sprite cell for presentation
type SpriteKind uint8

const (
	SpriteSnakeHead SpriteKind = iota
	SpriteSnakeTail
	SpriteFood
)

// SpriteID keys a sprite stably across ticks so presentation can diff
// renders. Derived deterministically from entity identity and the
// sprite's index within the entity.
type SpriteID uint64

// Sprite is one (cell, stable id, kind) tuple of a positional entity
type Sprite struct {
	Cell Point
	ID   SpriteID
	Kind SpriteKind
}

func spriteID(owner ID, index int) SpriteID {
	return SpriteID(owner)<<16 | SpriteID(uint16(index))
}

// registration is the embeddable identity holder. Querying the identity
// before the entity has been added to a World is a programmer error and
// fails loudly; 0 is a valid ID so no sentinel exists.
type registration struct {
	id       ID
	assigned bool
}

func (r *registration) ID() ID {
	if !r.assigned {
		panic("engine: entity identity queried before registration")
	}
	return r.id
}

func (r *registration) assign(id ID) {
	r.id = id
	r.assigned = true
}

// registrable is satisfied by anything embedding registration
type registrable interface {
	assign(id ID)
}
