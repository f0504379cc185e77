package component

import "github.com/milk9111/combatloop/common"

// Weapon is the player's gun.
type Weapon struct {
	Projectile         *ProjectileTemplate
	ProjectileSpeed    float64
	ProjectileLifetime float64
	DirectHitDamage    float64
	// FarDistance is how far along the aim ray the aim point lies on a miss.
	FarDistance float64
	// Barrel is the muzzle offset in the owner's local frame (X right, Z forward).
	Barrel common.Vec3
}

var WeaponComponent = NewComponent[Weapon]()

// FireInput carries the fire button edge for the current tick.
type FireInput struct {
	Pressed bool
}

var FireInputComponent = NewComponent[FireInput]()

// AimRay is the ray through the viewport centre, written by the host.
type AimRay struct {
	Origin    common.Vec3
	Direction common.Vec3
}

var AimRayComponent = NewComponent[AimRay]()
