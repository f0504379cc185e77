package ecs

import "github.com/milk9111/combatloop/ecs/component"

// System updates a world once per tick.
type System interface {
	Update(w *World)
}

// World owns entities, component storage, the simulation clock and the
// system order.
type World struct {
	entities  entityStore
	storages  map[component.ComponentID]*SparseSet
	scheduler Scheduler
	events    EventQueue

	time  float64
	dt    float64
	ticks uint64

	physicsWorld *PhysicsWorld
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{storages: make(map[component.ComponentID]*SparseSet)}
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.scheduler.Add(s)
}

// Update advances the clock by dt and runs every system once. Events pushed
// during the tick are visible to later systems and dropped afterwards.
func (w *World) Update(dt float64) {
	if w == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}
	w.dt = dt
	w.time += dt
	w.ticks++
	w.scheduler.Update(w)
	w.events.flush()
}

// Time returns the simulation time in seconds.
func (w *World) Time() float64 {
	if w == nil {
		return 0
	}
	return w.time
}

// DeltaTime returns the dt of the tick in progress.
func (w *World) DeltaTime() float64 {
	if w == nil {
		return 0
	}
	return w.dt
}

// Ticks returns the number of completed or running ticks.
func (w *World) Ticks() uint64 {
	if w == nil {
		return 0
	}
	return w.ticks
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetPhysicsWorld attaches a physics world to this ECS world.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	if w == nil {
		return
	}
	w.physicsWorld = pw
}

// PhysicsWorld returns the attached physics world, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}

func (w *World) storage(id component.ComponentID, create bool) *SparseSet {
	if w == nil {
		return nil
	}
	if w.storages == nil {
		if !create {
			return nil
		}
		w.storages = make(map[component.ComponentID]*SparseSet)
	}
	s, ok := w.storages[id]
	if !ok && create {
		s = &SparseSet{}
		w.storages[id] = s
	}
	return s
}
