package entity

import (
	"fmt"
	"log"

	"github.com/milk9111/combatloop/common"
	"github.com/milk9111/combatloop/ecs"
	"github.com/milk9111/combatloop/ecs/component"
	"github.com/milk9111/combatloop/prefabs"
	"golang.org/x/image/colornames"
)

// NewEnemy spawns an enemy from enemy.yaml at pos.
func NewEnemy(w *ecs.World, pos common.Vec3) (ecs.Entity, error) {
	spec, err := prefabs.LoadEnemySpec()
	if err != nil {
		return 0, fmt.Errorf("enemy: load spec: %w", err)
	}
	return NewEnemyFromSpec(w, spec, pos)
}

// NewEnemyFromSpec spawns an enemy from an already loaded spec.
func NewEnemyFromSpec(w *ecs.World, spec *prefabs.EnemySpec, pos common.Vec3) (ecs.Entity, error) {
	for _, warning := range spec.Validate() {
		log.Printf("enemy: %s", warning)
	}

	entity := ecs.CreateEntity(w)

	kind := component.KindEnemy
	if err := ecs.Add(w, entity, component.KindComponent.Kind(), &kind); err != nil {
		return 0, fmt.Errorf("enemy: add kind: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{Position: pos}); err != nil {
		return 0, fmt.Errorf("enemy: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &component.Health{
		Max:         spec.Health.Max,
		Current:     spec.Health.Max,
		Alive:       true,
		Variant:     component.DeathDisable,
		RemoveDelay: spec.Health.RemoveDelay,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add health: %w", err)
	}

	if err := ecs.Add(w, entity, component.EnemyComponent.Kind(), enemyComponent(spec)); err != nil {
		return 0, fmt.Errorf("enemy: add enemy: %w", err)
	}

	if err := ecs.Add(w, entity, component.EnemyBrainComponent.Kind(), &component.EnemyBrain{}); err != nil {
		return 0, fmt.Errorf("enemy: add brain: %w", err)
	}

	if err := ecs.Add(w, entity, component.NavAgentComponent.Kind(), &component.NavAgent{
		Speed:            spec.Nav.Speed,
		StoppingDistance: spec.Nav.StoppingDistance,
		Enabled:          true,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add nav agent: %w", err)
	}

	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Radius: spec.Body.Radius,
		Height: spec.Body.Height,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add physics body: %w", err)
	}

	if err := ecs.Add(w, entity, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
		Category: component.LayerEnemy,
		Mask:     component.LayerAll,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add collision layer: %w", err)
	}

	if err := ecs.Add(w, entity, component.TintComponent.Kind(), &component.Tint{Color: colornames.Orange}); err != nil {
		return 0, fmt.Errorf("enemy: add tint: %w", err)
	}

	return entity, nil
}

func enemyComponent(spec *prefabs.EnemySpec) *component.Enemy {
	return &component.Enemy{
		SightRange:          spec.SightRange,
		AttackRange:         spec.AttackRange,
		WalkPointRange:      spec.WalkPointRange,
		WalkPointTolerance:  spec.WalkPointTolerance,
		GroundProbeDistance: spec.GroundProbeDistance,
		TimeBetweenAttacks:  spec.TimeBetweenAttacks,
		Projectile:          projectileTemplate(spec.Projectile),
		ProjectileSpeed:     spec.ProjectileSpeed,
		ProjectileLift:      spec.ProjectileLift,
		ProjectileLifetime:  spec.ProjectileLifetime,
		MuzzleForward:       spec.MuzzleForward,
		MuzzleUp:            spec.MuzzleUp,
	}
}

func projectileTemplate(spec *prefabs.ProjectileSpec) *component.ProjectileTemplate {
	if spec == nil {
		return nil
	}
	return &component.ProjectileTemplate{
		Radius:     spec.Radius,
		Mass:       spec.Mass,
		Damage:     spec.Damage,
		UseGravity: spec.UseGravity,
	}
}
