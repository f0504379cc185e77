package system

import (
	"log"

	"github.com/milk9111/combatloop/common"
	"github.com/milk9111/combatloop/ecs"
	"github.com/milk9111/combatloop/ecs/component"
	"golang.org/x/image/colornames"
)

var (
	playerBulletTint = colornames.Blue
	enemyBulletTint  = colornames.Red
)

// ProjectileSpawn describes one projectile to instantiate.
type ProjectileSpawn struct {
	Template component.ProjectileTemplate
	Position common.Vec3
	Owner    component.Owner
	Damage   float64
	Impulse  common.Vec3
	Lifetime float64
}

// SpawnProjectile creates a projectile entity, launches it and schedules
// its removal after Lifetime seconds.
func SpawnProjectile(w *ecs.World, physics Physics, spec ProjectileSpawn) ecs.Entity {
	if w == nil {
		return 0
	}
	e := ecs.CreateEntity(w)

	kind := component.KindProjectile
	_ = ecs.Add(w, e, component.KindComponent.Kind(), &kind)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: spec.Position})
	_ = ecs.Add(w, e, component.ProjectileComponent.Kind(), &component.Projectile{
		Damage:   spec.Damage,
		Owner:    spec.Owner,
		Lifetime: spec.Lifetime,
	})
	_ = ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Radius:     spec.Template.Radius,
		Mass:       spec.Template.Mass,
		Dynamic:    true,
		UseGravity: spec.Template.UseGravity,
	})
	_ = ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
		Category: component.LayerProjectile,
		Mask:     component.LayerAll &^ component.LayerProjectile,
	})

	tint := playerBulletTint
	if spec.Owner == component.OwnerEnemy {
		tint = enemyBulletTint
	}
	_ = ecs.Add(w, e, component.TintComponent.Kind(), &component.Tint{Color: tint})

	if physics != nil {
		physics.AddImpulse(e, spec.Impulse)
	}
	if spec.Lifetime > 0 {
		DestroyAfter(w, e, spec.Lifetime)
	}
	log.Printf("ProjectileSystem: %s bullet %s created with damage %.1f", spec.Owner, e, spec.Damage)
	return e
}

// ProjectileSystem resolves projectile contacts reported by the physics
// step. The first contact wins: damage is dealt to a valid target and the
// projectile is destroyed.
type ProjectileSystem struct {
	Combat *Combat
}

func NewProjectileSystem(combat *Combat) *ProjectileSystem {
	return &ProjectileSystem{Combat: combat}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Of(ecs.EventContact) {
		contact, ok := evt.Data.(ecs.ContactEvent)
		if !ok {
			continue
		}
		s.HandleContact(w, contact)
	}
}

// HandleContact processes one contact. It reports false when the
// projectile is gone or already spent.
func (s *ProjectileSystem) HandleContact(w *ecs.World, c ecs.ContactEvent) bool {
	p, ok := ecs.Get(w, c.Projectile, component.ProjectileComponent.Kind())
	if !ok || p.Spent {
		return false
	}
	p.Spent = true

	other := kindOf(w, c.Other)
	log.Printf("ProjectileSystem: %s bullet %s %s with %s %s", p.Owner, c.Projectile, c.Kind, other, c.Other)

	if hostile(p.Owner, other) {
		if ecs.Has(w, c.Other, component.HealthComponent.Kind()) {
			s.Combat.ApplyDamage(w, c.Other, p.Damage)
		} else {
			log.Printf("ProjectileSystem: hit %s %s but no health component found", other, c.Other)
		}
	}

	ecs.DestroyEntity(w, c.Projectile)
	return true
}

// hostile reports whether a projectile of owner damages a target of kind.
func hostile(owner component.Owner, kind component.Kind) bool {
	switch owner {
	case component.OwnerPlayer:
		return kind == component.KindEnemy
	case component.OwnerEnemy:
		return kind == component.KindPlayer
	}
	return false
}
