package system

import (
	"github.com/milk9111/combatloop/common"
	"github.com/milk9111/combatloop/ecs"
	"github.com/milk9111/combatloop/ecs/component"
)

// Physics is the engine physics the combat code queries. *ecs.PhysicsWorld
// implements it.
type Physics interface {
	OverlapSphere(center common.Vec3, radius float64, mask component.Layer) []ecs.Entity
	Raycast(origin, dir common.Vec3, maxDist float64, mask component.Layer) (ecs.RaycastHit, bool)
	AddImpulse(e ecs.Entity, impulse common.Vec3)
	SetCollidersEnabled(e ecs.Entity, enabled bool)
}

// Navigator drives an entity's movement toward a destination. SetDestination
// reports false when the entity has no usable agent.
type Navigator interface {
	SetDestination(w *ecs.World, e ecs.Entity, point common.Vec3) bool
	SetEnabled(w *ecs.World, e ecs.Entity, enabled bool)
}

// HealthDisplay is refreshed after every damage application on an entity
// bound with component.HealthBar.
type HealthDisplay interface {
	ShowHealth(e ecs.Entity, current, max float64)
}

// ScoreDisplay is refreshed whenever the score changes.
type ScoreDisplay interface {
	ShowScore(count int)
}

// kindOf returns the spawn-time classification of e.
func kindOf(w *ecs.World, e ecs.Entity) component.Kind {
	if k, ok := ecs.Get(w, e, component.KindComponent.Kind()); ok {
		return *k
	}
	return component.KindNone
}

// FindPlayer returns the first live player entity and its position.
func FindPlayer(w *ecs.World) (ecs.Entity, common.Vec3, bool) {
	var (
		player ecs.Entity
		pos    common.Vec3
		found  bool
	)
	ecs.ForEach2(w, component.KindComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, k *component.Kind, t *component.Transform) {
		if found || *k != component.KindPlayer {
			return
		}
		player, pos, found = e, t.Position, true
	})
	return player, pos, found
}
