package system

import (
	"log"

	"github.com/milk9111/combatloop/common"
	"github.com/milk9111/combatloop/ecs"
	"github.com/milk9111/combatloop/ecs/component"
)

// aimMask is what the aim ray can strike; the shooter's own layer is
// excluded so the ray does not start inside the player.
const aimMask = component.LayerAll &^ component.LayerPlayer

// WeaponSystem fires the player's gun on the fire edge: a direct-hit
// raycast along the aim ray, then a projectile from the barrel toward the
// aim point.
type WeaponSystem struct {
	Combat  *Combat
	Physics Physics

	warned map[ecs.Entity]bool
}

func NewWeaponSystem(combat *Combat, physics Physics) *WeaponSystem {
	return &WeaponSystem{Combat: combat, Physics: physics, warned: make(map[ecs.Entity]bool)}
}

func (s *WeaponSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach4(w,
		component.WeaponComponent.Kind(),
		component.FireInputComponent.Kind(),
		component.AimRayComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, wp *component.Weapon, in *component.FireInput, ray *component.AimRay, tr *component.Transform) {
			if !in.Pressed {
				return
			}
			in.Pressed = false
			s.Fire(w, e, wp, ray, tr)
		})
}

// Fire performs one shot and returns the aim point.
func (s *WeaponSystem) Fire(w *ecs.World, shooter ecs.Entity, wp *component.Weapon, ray *component.AimRay, tr *component.Transform) common.Vec3 {
	dir := ray.Direction.Normalize()
	aim := ray.Origin.Add(dir.Scale(wp.FarDistance))

	if s.Physics != nil {
		if hit, ok := s.Physics.Raycast(ray.Origin, dir, wp.FarDistance, aimMask); ok {
			aim = hit.Point
			log.Printf("WeaponSystem: hit %s %s at %.1f", kindOf(w, hit.Entity), hit.Entity, hit.Distance)
			if kindOf(w, hit.Entity) == component.KindEnemy && s.Combat.ApplyDamage(w, hit.Entity, wp.DirectHitDamage) {
				log.Printf("WeaponSystem: direct hit on enemy %s", hit.Entity)
			}
		}
	}

	if wp.Projectile == nil {
		if !s.warned[shooter] {
			log.Printf("WeaponSystem: no projectile assigned to weapon on %s", shooter)
			s.warned[shooter] = true
		}
		return aim
	}

	muzzle := BarrelPosition(*tr, wp.Barrel)
	launch := aim.Sub(muzzle).Normalize()
	SpawnProjectile(w, s.Physics, ProjectileSpawn{
		Template: *wp.Projectile,
		Position: muzzle,
		Owner:    component.OwnerPlayer,
		Damage:   wp.Projectile.Damage,
		Impulse:  launch.Scale(wp.ProjectileSpeed),
		Lifetime: wp.ProjectileLifetime,
	})
	return aim
}

// BarrelPosition converts a local muzzle offset (X right, Y up, Z forward)
// to world space.
func BarrelPosition(tr component.Transform, local common.Vec3) common.Vec3 {
	fwd := tr.Forward()
	right := common.V3(fwd.Z, 0, -fwd.X)
	return tr.Position.
		Add(right.Scale(local.X)).
		Add(common.Up.Scale(local.Y)).
		Add(fwd.Scale(local.Z))
}
