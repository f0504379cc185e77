package system

import (
	"log"
	"sort"

	"github.com/milk9111/combatloop/ecs"
	"github.com/milk9111/combatloop/ecs/component"
)

// dueEpsilon absorbs float drift from accumulating dt.
const dueEpsilon = 1e-9

// Invoke schedules action on e after delay seconds of simulation time.
func Invoke(w *ecs.World, e ecs.Entity, delay float64, action component.TimerAction) {
	if !ecs.IsAlive(w, e) {
		return
	}
	if delay < 0 {
		delay = 0
	}
	d, ok := ecs.Get(w, e, component.DeferredComponent.Kind())
	if !ok {
		d = &component.Deferred{}
		_ = ecs.Add(w, e, component.DeferredComponent.Kind(), d)
	}
	d.Timers = append(d.Timers, component.Timer{Due: w.Time() + delay, Action: action})
}

// DestroyAfter schedules removal of e after delay seconds.
func DestroyAfter(w *ecs.World, e ecs.Entity, delay float64) {
	Invoke(w, e, delay, component.TimerDestroy)
}

// DeferredSystem fires timers that have come due. Timers belong to their
// entity, so a destroyed entity simply has none left to fire.
type DeferredSystem struct{}

func NewDeferredSystem() *DeferredSystem {
	return &DeferredSystem{}
}

func (s *DeferredSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	now := w.Time()

	ecs.ForEach(w, component.DeferredComponent.Kind(), func(e ecs.Entity, d *component.Deferred) {
		var due []component.Timer
		kept := d.Timers[:0]
		for _, t := range d.Timers {
			if t.Due <= now+dueEpsilon {
				due = append(due, t)
				continue
			}
			kept = append(kept, t)
		}
		d.Timers = kept
		if len(due) == 0 {
			return
		}
		sort.SliceStable(due, func(i, j int) bool { return due[i].Due < due[j].Due })

		for _, t := range due {
			if !ecs.IsAlive(w, e) {
				return
			}
			fire(w, e, t.Action)
		}
	})
}

func fire(w *ecs.World, e ecs.Entity, action component.TimerAction) {
	switch action {
	case component.TimerDestroy:
		log.Printf("DeferredSystem: destroying %s %s", kindOf(w, e), e)
		ecs.DestroyEntity(w, e)
	case component.TimerResetAttack:
		if brain, ok := ecs.Get(w, e, component.EnemyBrainComponent.Kind()); ok {
			brain.AlreadyAttacked = false
			log.Printf("DeferredSystem: enemy %s reset attack state, ready to fire again", e)
		}
	}
}
