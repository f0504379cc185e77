package entity

import (
	"fmt"

	"github.com/milk9111/combatloop/common"
	"github.com/milk9111/combatloop/ecs"
	"github.com/milk9111/combatloop/ecs/component"
	"github.com/milk9111/combatloop/prefabs"
	"golang.org/x/image/colornames"
)

// NewPlayer spawns the player from player.yaml at pos.
func NewPlayer(w *ecs.World, pos common.Vec3) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, fmt.Errorf("player: load spec: %w", err)
	}
	return NewPlayerFromSpec(w, spec, pos)
}

func NewPlayerFromSpec(w *ecs.World, spec *prefabs.PlayerSpec, pos common.Vec3) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	kind := component.KindPlayer
	if err := ecs.Add(w, entity, component.KindComponent.Kind(), &kind); err != nil {
		return 0, fmt.Errorf("player: add kind: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{Position: pos}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.PlayerComponent.Kind(), &component.Player{
		MoveSpeed: spec.MoveSpeed,
		EyeHeight: spec.EyeHeight,
	}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}

	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &component.Health{
		Max:     spec.Health.Max,
		Current: spec.Health.Max,
		Alive:   true,
		Variant: component.DeathRespawn,
	}); err != nil {
		return 0, fmt.Errorf("player: add health: %w", err)
	}

	if err := ecs.Add(w, entity, component.HealthBarComponent.Kind(), &component.HealthBar{}); err != nil {
		return 0, fmt.Errorf("player: add health bar: %w", err)
	}

	if err := ecs.Add(w, entity, component.WeaponComponent.Kind(), weaponComponent(&spec.Weapon)); err != nil {
		return 0, fmt.Errorf("player: add weapon: %w", err)
	}

	if err := ecs.Add(w, entity, component.FireInputComponent.Kind(), &component.FireInput{}); err != nil {
		return 0, fmt.Errorf("player: add fire input: %w", err)
	}

	if err := ecs.Add(w, entity, component.AimRayComponent.Kind(), &component.AimRay{
		Origin:    pos.Add(common.Up.Scale(spec.EyeHeight)),
		Direction: common.Forward,
	}); err != nil {
		return 0, fmt.Errorf("player: add aim ray: %w", err)
	}

	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Radius: spec.Body.Radius,
		Height: spec.Body.Height,
	}); err != nil {
		return 0, fmt.Errorf("player: add physics body: %w", err)
	}

	if err := ecs.Add(w, entity, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
		Category: component.LayerPlayer,
		Mask:     component.LayerAll,
	}); err != nil {
		return 0, fmt.Errorf("player: add collision layer: %w", err)
	}

	if err := ecs.Add(w, entity, component.TintComponent.Kind(), &component.Tint{Color: colornames.White}); err != nil {
		return 0, fmt.Errorf("player: add tint: %w", err)
	}

	return entity, nil
}

func weaponComponent(spec *prefabs.WeaponSpec) *component.Weapon {
	return &component.Weapon{
		Projectile:         projectileTemplate(spec.Projectile),
		ProjectileSpeed:    spec.ProjectileSpeed,
		ProjectileLifetime: spec.ProjectileLifetime,
		DirectHitDamage:    spec.DirectHitDamage,
		FarDistance:        spec.FarDistance,
		Barrel:             common.V3(spec.Barrel.X, spec.Barrel.Y, spec.Barrel.Z),
	}
}
