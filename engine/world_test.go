package engine

import (
	"math/rand"
	"testing"
	"time"
)

// stubEntity is a minimal entity for collection tests
type stubEntity struct {
	registration
	kind    Kind
	updates int
	onTick  func(w *World) bool
}

func (s *stubEntity) Kind() Kind { return s.kind }

func (s *stubEntity) Update(dt time.Duration, w *World) bool {
	s.updates++
	if s.onTick != nil {
		return s.onTick(w)
	}
	return false
}

func newTestWorld() *World {
	return NewWorld(rand.New(rand.NewSource(1)), nil)
}

func TestIdentityMonotonicAndDistinct(t *testing.T) {
	w := newTestWorld()
	e1 := &stubEntity{}
	e2 := &stubEntity{}
	e3 := &stubEntity{}
	w.AddEntity(e1)
	w.AddEntity(e2)
	w.AddEntity(e3)

	if e1.ID() != 0 || e2.ID() != 1 || e3.ID() != 2 {
		t.Errorf("identities = %d, %d, %d, want 0, 1, 2", e1.ID(), e2.ID(), e3.ID())
	}
}

func TestIdentityNotReusedAfterRemoval(t *testing.T) {
	w := newTestWorld()
	e1 := &stubEntity{}
	w.AddEntity(e1)
	w.RemoveEntity(e1)

	e2 := &stubEntity{}
	w.AddEntity(e2)
	if e2.ID() != 1 {
		t.Errorf("identity after removal = %d, want 1 (never reused)", e2.ID())
	}
}

func TestIdentityBeforeRegistrationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic querying identity before registration")
		}
	}()
	e := &stubEntity{}
	_ = e.ID()
}

func TestRemoveEntityTwiceIsNoOp(t *testing.T) {
	w := newTestWorld()
	e := &stubEntity{}
	w.AddEntity(e)
	w.RemoveEntity(e)
	w.RemoveEntity(e) // must not panic or corrupt the set

	if w.EntityCount() != 0 {
		t.Errorf("entity count = %d, want 0", w.EntityCount())
	}
}

func TestEntitiesOfTypeFiltering(t *testing.T) {
	w := newTestWorld()
	w.AddEntity(&stubEntity{kind: KindSnake})
	w.AddEntity(&stubEntity{kind: KindFood})
	w.AddEntity(&stubEntity{kind: KindFood})

	if n := len(w.EntitiesOfType(KindFood)); n != 2 {
		t.Errorf("food count = %d, want 2", n)
	}
	if n := len(w.EntitiesOfType(KindSnake)); n != 1 {
		t.Errorf("snake count = %d, want 1", n)
	}

	first := w.FirstEntityOfType(KindSnake)
	if first == nil || first.Kind() != KindSnake {
		t.Errorf("FirstEntityOfType(KindSnake) = %v", first)
	}
	w.RemoveEntity(first)
	if got := w.FirstEntityOfType(KindSnake); got != nil {
		t.Errorf("FirstEntityOfType after removal = %v, want nil", got)
	}
}

func TestUpdateORsChangedFlags(t *testing.T) {
	w := newTestWorld()
	w.AddEntity(&stubEntity{})
	if w.Update(time.Millisecond) {
		t.Errorf("update with no changes reported changed")
	}

	w.AddEntity(&stubEntity{onTick: func(*World) bool { return true }})
	if !w.Update(time.Millisecond) {
		t.Errorf("update with one changed entity reported unchanged")
	}
}

func TestSelfRemovalDuringUpdate(t *testing.T) {
	w := newTestWorld()
	var self *stubEntity
	self = &stubEntity{onTick: func(w *World) bool {
		w.RemoveEntity(self)
		return true
	}}
	after := &stubEntity{}
	w.AddEntity(self)
	w.AddEntity(after)

	if !w.Update(time.Millisecond) {
		t.Errorf("self-removal tick reported unchanged")
	}
	if w.EntityCount() != 1 {
		t.Errorf("entity count = %d, want 1", w.EntityCount())
	}
	if after.updates != 1 {
		t.Errorf("later entity updated %d times, want 1", after.updates)
	}
}

func TestRemovalOfLaterEntityDuringUpdate(t *testing.T) {
	w := newTestWorld()
	victim := &stubEntity{}
	remover := &stubEntity{onTick: func(w *World) bool {
		w.RemoveEntity(victim)
		return true
	}}
	w.AddEntity(remover)
	w.AddEntity(victim)

	w.Update(time.Millisecond)
	if victim.updates != 0 {
		t.Errorf("removed entity updated %d times, want 0", victim.updates)
	}
}

func TestEntityAddedDuringUpdateNotUpdatedSameTick(t *testing.T) {
	w := newTestWorld()
	added := &stubEntity{}
	adder := &stubEntity{onTick: func(w *World) bool {
		if w.EntityCount() == 1 {
			w.AddEntity(added)
		}
		return false
	}}
	w.AddEntity(adder)

	w.Update(time.Millisecond)
	if added.updates != 0 {
		t.Errorf("entity added mid-tick updated %d times in that tick, want 0", added.updates)
	}

	w.Update(time.Millisecond)
	if added.updates != 1 {
		t.Errorf("entity added previous tick updated %d times, want 1", added.updates)
	}
}
