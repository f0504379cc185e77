package entity

import (
	"log"

	"github.com/milk9111/combatloop/ecs"
	"github.com/milk9111/combatloop/ecs/component"
	"github.com/milk9111/combatloop/prefabs"
)

// ApplyEnemySpec pushes edited tuning onto every live enemy. Runtime state
// (health, brain, position) is kept.
func ApplyEnemySpec(w *ecs.World, spec *prefabs.EnemySpec) int {
	if w == nil || spec == nil {
		return 0
	}
	for _, warning := range spec.Validate() {
		log.Printf("enemy: %s", warning)
	}

	n := 0
	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.HealthComponent.Kind(), func(e ecs.Entity, cfg *component.Enemy, h *component.Health) {
		*cfg = *enemyComponent(spec)
		h.Max = spec.Health.Max
		h.RemoveDelay = spec.Health.RemoveDelay
		if agent, ok := ecs.Get(w, e, component.NavAgentComponent.Kind()); ok {
			agent.Speed = spec.Nav.Speed
			agent.StoppingDistance = spec.Nav.StoppingDistance
		}
		n++
	})
	log.Printf("enemy: reloaded tuning on %d enemies", n)
	return n
}

// ApplyPlayerSpec pushes edited weapon and health tuning onto the player.
func ApplyPlayerSpec(w *ecs.World, spec *prefabs.PlayerSpec) int {
	if w == nil || spec == nil {
		return 0
	}

	n := 0
	ecs.ForEach2(w, component.WeaponComponent.Kind(), component.HealthComponent.Kind(), func(e ecs.Entity, wp *component.Weapon, h *component.Health) {
		*wp = *weaponComponent(&spec.Weapon)
		if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
			p.MoveSpeed = spec.MoveSpeed
			p.EyeHeight = spec.EyeHeight
		}
		h.Max = spec.Health.Max
		if h.Current > h.Max {
			h.Current = h.Max
		}
		n++
	})
	log.Printf("player: reloaded tuning")
	return n
}
