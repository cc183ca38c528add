package engine

import (
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// World owns the live entity collection. It assigns identities at
// registration, dispatches per-frame updates, and provides typed
// queries. A World is owned by a single goroutine; entities mutate only
// their own state and request add/remove through the World's interface.
type World struct {
	nextID   ID
	entities []Entity
	rng      *rand.Rand
	log      *zap.Logger
}

// NewWorld creates an empty world. The rand source drives all spawn
// placement and lifetimes; tests inject a seeded source. A nil logger
// disables event logging.
func NewWorld(rng *rand.Rand, log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	return &World{
		entities: make([]Entity, 0, 8),
		rng:      rng,
		log:      log,
	}
}

// AddEntity assigns the next identity (monotonic, starting at 0) and
// appends the entity to the live set. Identities are never reused
// within a World's lifetime.
func (w *World) AddEntity(e Entity) {
	e.(registrable).assign(w.nextID)
	w.nextID++
	w.entities = append(w.entities, e)
	w.log.Debug("entity added",
		zap.Uint64("id", uint64(e.ID())),
		zap.Uint8("kind", uint8(e.Kind())))
}

// RemoveEntity removes by reference identity, not content equality.
// Removing an entity that is not in the live set, including a second
// removal of the same entity, is a silent no-op.
func (w *World) RemoveEntity(e Entity) {
	for i, live := range w.entities {
		if live == e {
			w.entities = append(w.entities[:i], w.entities[i+1:]...)
			return
		}
	}
}

// Entities returns a copy of the live set in registration order
func (w *World) Entities() []Entity {
	out := make([]Entity, len(w.entities))
	copy(out, w.entities)
	return out
}

// EntitiesOfType returns all live entities of the given kind
func (w *World) EntitiesOfType(k Kind) []Entity {
	var out []Entity
	for _, e := range w.entities {
		if e.Kind() == k {
			out = append(out, e)
		}
	}
	return out
}

// FirstEntityOfType returns the first live entity of the given kind, or
// nil if none exists. Absence is normal control flow, not an error.
func (w *World) FirstEntityOfType(k Kind) Entity {
	for _, e := range w.entities {
		if e.Kind() == k {
			return e
		}
	}
	return nil
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.entities)
}

// Rand exposes the world's random source to entities for spawn logic
func (w *World) Rand() *rand.Rand {
	return w.rng
}

// Logger exposes the world's event logger to entities
func (w *World) Logger() *zap.Logger {
	return w.log
}

// Update invokes every entity live at tick start exactly once, ORing
// their changed reports. It iterates a snapshot so entities may add or
// remove entities (including themselves) mid-tick: an entity removed by
// an earlier update is skipped, and entities added during the tick are
// not updated until the next one.
func (w *World) Update(dt time.Duration) bool {
	snapshot := make([]Entity, len(w.entities))
	copy(snapshot, w.entities)

	changed := false
	for _, e := range snapshot {
		if !w.contains(e) {
			continue
		}
		if e.Update(dt, w) {
			changed = true
		}
	}
	return changed
}

func (w *World) contains(e Entity) bool {
	for _, live := range w.entities {
		if live == e {
			return true
		}
	}
	return false
}
