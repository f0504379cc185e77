package system

import (
	"github.com/milk9111/combatloop/ecs"
	"github.com/milk9111/combatloop/ecs/component"
)

// PhysicsSystem keeps the physics world in sync with the ECS and turns the
// step's contacts into EventContact events.
type PhysicsSystem struct {
	world *ecs.PhysicsWorld
}

func NewPhysicsSystem(pw *ecs.PhysicsWorld) *PhysicsSystem {
	return &PhysicsSystem{world: pw}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.world == nil {
		return
	}
	pw := s.world

	for _, e := range pw.BodyEntities() {
		if !ecs.IsAlive(w, e) {
			pw.RemoveBody(e)
		}
	}

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, tr *component.Transform) {
		pw.EnsureBody(e, *body, layerOf(w, e), tr.Position)
		if !body.Dynamic {
			pw.MoveKinematic(e, tr.Position)
		}
	})

	contacts := pw.Step(w.DeltaTime())

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, tr *component.Transform) {
		if !body.Dynamic {
			return
		}
		if pos, ok := pw.Position(e); ok {
			tr.Position = pos
		}
	})

	for _, c := range contacts {
		w.Events().Push(ecs.Event{Type: ecs.EventContact, Data: c})
	}
}

// layerOf returns the entity's declared collision layer, falling back to
// one derived from its kind.
func layerOf(w *ecs.World, e ecs.Entity) component.CollisionLayer {
	if l, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind()); ok {
		return *l
	}
	switch kindOf(w, e) {
	case component.KindPlayer:
		return component.CollisionLayer{Category: component.LayerPlayer, Mask: component.LayerAll}
	case component.KindEnemy:
		return component.CollisionLayer{Category: component.LayerEnemy, Mask: component.LayerAll}
	case component.KindProjectile:
		return component.CollisionLayer{Category: component.LayerProjectile, Mask: component.LayerAll &^ component.LayerProjectile}
	}
	return component.CollisionLayer{}
}
