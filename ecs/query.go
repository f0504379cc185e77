package ecs

import "github.com/milk9111/combatloop/ecs/component"

// ForEach calls fn for every live entity carrying a. Entities destroyed by
// fn (or by an earlier call) are skipped.
func ForEach[A any](w *World, a component.ComponentKind[A], fn func(Entity, *A)) {
	sa := w.storage(a.ID(), false)
	for _, id := range sa.snapshot() {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		va, ok := sa.Get(id).(*A)
		if !ok {
			continue
		}
		fn(e, va)
	}
}

// ForEach2 iterates entities carrying both kinds.
func ForEach2[A, B any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa, sb := w.storage(a.ID(), false), w.storage(b.ID(), false)
	if sa == nil || sb == nil {
		return
	}
	for _, id := range smallest(sa, sb).snapshot() {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		va, okA := sa.Get(id).(*A)
		vb, okB := sb.Get(id).(*B)
		if !okA || !okB {
			continue
		}
		fn(e, va, vb)
	}
}

// ForEach3 iterates entities carrying all three kinds.
func ForEach3[A, B, C any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], c component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sa, sb, sc := w.storage(a.ID(), false), w.storage(b.ID(), false), w.storage(c.ID(), false)
	if sa == nil || sb == nil || sc == nil {
		return
	}
	for _, id := range smallest(sa, sb, sc).snapshot() {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		va, okA := sa.Get(id).(*A)
		vb, okB := sb.Get(id).(*B)
		vc, okC := sc.Get(id).(*C)
		if !okA || !okB || !okC {
			continue
		}
		fn(e, va, vb, vc)
	}
}

// ForEach4 iterates entities carrying all four kinds.
func ForEach4[A, B, C, D any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], c component.ComponentKind[C], d component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	sa, sb, sc, sd := w.storage(a.ID(), false), w.storage(b.ID(), false), w.storage(c.ID(), false), w.storage(d.ID(), false)
	if sa == nil || sb == nil || sc == nil || sd == nil {
		return
	}
	for _, id := range smallest(sa, sb, sc, sd).snapshot() {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		va, okA := sa.Get(id).(*A)
		vb, okB := sb.Get(id).(*B)
		vc, okC := sc.Get(id).(*C)
		vd, okD := sd.Get(id).(*D)
		if !okA || !okB || !okC || !okD {
			continue
		}
		fn(e, va, vb, vc, vd)
	}
}

// smallest picks the set to drive an intersection.
func smallest(sets ...*SparseSet) *SparseSet {
	best := sets[0]
	for _, s := range sets[1:] {
		if s.Len() < best.Len() {
			best = s
		}
	}
	return best
}
