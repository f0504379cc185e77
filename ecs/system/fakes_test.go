package system

import (
	"github.com/milk9111/combatloop/common"
	"github.com/milk9111/combatloop/ecs"
	"github.com/milk9111/combatloop/ecs/component"
)

type overlapCall struct {
	Center common.Vec3
	Radius float64
	Mask   component.Layer
}

type raycastCall struct {
	Origin  common.Vec3
	Dir     common.Vec3
	MaxDist float64
	Mask    component.Layer
}

type impulse struct {
	Entity  ecs.Entity
	Impulse common.Vec3
}

// fakePhysics answers overlap queries by radius and raycasts through a
// callback.
type fakePhysics struct {
	overlaps map[float64][]ecs.Entity
	raycast  func(origin, dir common.Vec3, maxDist float64, mask component.Layer) (ecs.RaycastHit, bool)

	overlapCalls []overlapCall
	raycastCalls []raycastCall
	impulses     []impulse
	disabled     map[ecs.Entity]bool
}

func newFakePhysics() *fakePhysics {
	return &fakePhysics{overlaps: make(map[float64][]ecs.Entity), disabled: make(map[ecs.Entity]bool)}
}

func (f *fakePhysics) OverlapSphere(center common.Vec3, radius float64, mask component.Layer) []ecs.Entity {
	f.overlapCalls = append(f.overlapCalls, overlapCall{center, radius, mask})
	return f.overlaps[radius]
}

func (f *fakePhysics) Raycast(origin, dir common.Vec3, maxDist float64, mask component.Layer) (ecs.RaycastHit, bool) {
	f.raycastCalls = append(f.raycastCalls, raycastCall{origin, dir, maxDist, mask})
	if f.raycast == nil {
		return ecs.RaycastHit{}, false
	}
	return f.raycast(origin, dir, maxDist, mask)
}

func (f *fakePhysics) AddImpulse(e ecs.Entity, imp common.Vec3) {
	f.impulses = append(f.impulses, impulse{e, imp})
}

func (f *fakePhysics) SetCollidersEnabled(e ecs.Entity, enabled bool) {
	f.disabled[e] = !enabled
}

type healthUpdate struct {
	Entity       ecs.Entity
	Current, Max float64
}

type fakeHealthDisplay struct {
	updates []healthUpdate
}

func (f *fakeHealthDisplay) ShowHealth(e ecs.Entity, current, max float64) {
	f.updates = append(f.updates, healthUpdate{e, current, max})
}

type fakeScoreDisplay struct {
	shown []int
}

func (f *fakeScoreDisplay) ShowScore(count int) {
	f.shown = append(f.shown, count)
}

func groundEverywhere(origin, dir common.Vec3, maxDist float64, mask component.Layer) (ecs.RaycastHit, bool) {
	if mask&component.LayerGround == 0 {
		return ecs.RaycastHit{}, false
	}
	return ecs.RaycastHit{Point: common.V3(origin.X, 0, origin.Z), Distance: origin.Y, Layer: component.LayerGround}, true
}

func addKind(w *ecs.World, e ecs.Entity, k component.Kind) {
	_ = ecs.Add(w, e, component.KindComponent.Kind(), &k)
}

func newPlayer(w *ecs.World, pos common.Vec3) ecs.Entity {
	e := ecs.CreateEntity(w)
	addKind(w, e, component.KindPlayer)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos})
	_ = ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Max: 100, Current: 100, Alive: true, Variant: component.DeathRespawn})
	_ = ecs.Add(w, e, component.HealthBarComponent.Kind(), &component.HealthBar{})
	return e
}

func enemyConfig() *component.Enemy {
	return &component.Enemy{
		SightRange:          15,
		AttackRange:         10,
		WalkPointRange:      10,
		WalkPointTolerance:  1,
		GroundProbeDistance: 2,
		TimeBetweenAttacks:  2,
		Projectile:          &component.ProjectileTemplate{Radius: 0.15, Mass: 1, Damage: 10, UseGravity: true},
		ProjectileSpeed:     20,
		ProjectileLift:      2,
		ProjectileLifetime:  5,
		MuzzleForward:       1.5,
		MuzzleUp:            1.5,
	}
}

func newEnemy(w *ecs.World, pos common.Vec3) ecs.Entity {
	e := ecs.CreateEntity(w)
	addKind(w, e, component.KindEnemy)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos})
	_ = ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Max: 100, Current: 100, Alive: true, Variant: component.DeathDisable, RemoveDelay: 2})
	_ = ecs.Add(w, e, component.EnemyComponent.Kind(), enemyConfig())
	_ = ecs.Add(w, e, component.EnemyBrainComponent.Kind(), &component.EnemyBrain{})
	_ = ecs.Add(w, e, component.NavAgentComponent.Kind(), &component.NavAgent{Speed: 3.5, Enabled: true})
	_ = ecs.Add(w, e, component.TintComponent.Kind(), &component.Tint{})
	return e
}

func projectiles(w *ecs.World) []ecs.Entity {
	var out []ecs.Entity
	ecs.ForEach(w, component.ProjectileComponent.Kind(), func(e ecs.Entity, _ *component.Projectile) {
		out = append(out, e)
	})
	return out
}
