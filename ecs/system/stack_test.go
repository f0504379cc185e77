package system

import (
	"math/rand"
	"testing"

	"github.com/milk9111/combatloop/common"
	"github.com/milk9111/combatloop/ecs"
	"github.com/milk9111/combatloop/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stackStep = 1.0 / 60

// advanceTo runs fixed ticks up to target and finishes with one partial tick
// so the clock lands on target.
func advanceTo(w *ecs.World, target float64) {
	for w.Time()+stackStep <= target {
		w.Update(stackStep)
	}
	if rest := target - w.Time(); rest > 0 {
		w.Update(rest)
	}
}

func newStackWorld(t *testing.T, floor bool) (*ecs.World, *ecs.PhysicsWorld, *Stack) {
	t.Helper()
	w := ecs.NewWorld()
	pw := ecs.NewPhysicsWorld()
	if floor {
		pw.AddFloor(-50, -50, 50, 50, 0)
	}
	st := NewStack(w, StackOptions{Physics: pw, Rand: rand.New(rand.NewSource(3))})
	return w, pw, st
}

// pacify keeps an enemy from noticing the player and from walking.
func pacify(w *ecs.World, enemy ecs.Entity) {
	cfg, _ := ecs.Get(w, enemy, component.EnemyComponent.Kind())
	cfg.SightRange, cfg.AttackRange = 1, 0.5
	agent, _ := ecs.Get(w, enemy, component.NavAgentComponent.Kind())
	agent.Speed = 0
}

func armPlayer(w *ecs.World, player ecs.Entity) {
	tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	_ = ecs.Add(w, player, component.WeaponComponent.Kind(), &component.Weapon{
		Projectile:         &component.ProjectileTemplate{Radius: 0.1, Mass: 1, Damage: 20},
		ProjectileSpeed:    50,
		ProjectileLifetime: 5,
		DirectHitDamage:    20,
		FarDistance:        1000,
		Barrel:             common.V3(0.3, 1.4, 0.8),
	})
	_ = ecs.Add(w, player, component.FireInputComponent.Kind(), &component.FireInput{})
	_ = ecs.Add(w, player, component.AimRayComponent.Kind(), &component.AimRay{
		Origin:    tr.Position.Add(common.Up.Scale(1.6)),
		Direction: common.Forward,
	})
}

func TestStackAttackCooldownTimeline(t *testing.T) {
	w, _, _ := newStackWorld(t, true)
	player := newPlayer(w, common.V3(0, 0, 5))
	addActorBody(w, player)
	enemy := newEnemy(w, common.Vec3{})
	addActorBody(w, enemy)
	brain, _ := ecs.Get(w, enemy, component.EnemyBrainComponent.Kind())

	// A zero-length tick at t=0 builds the bodies and lets the enemy fire.
	w.Update(0)
	require.Equal(t, component.StateAttack, brain.State)
	assert.Equal(t, 1, brain.ShotsFired)
	assert.Equal(t, 0.0, brain.LastAttackTime)

	advanceTo(w, 1)
	assert.Equal(t, 1, brain.ShotsFired, "blocked at t=1")
	assert.True(t, brain.AlreadyAttacked)

	advanceTo(w, 1.99)
	assert.Equal(t, 1, brain.ShotsFired, "blocked at t=1.99")

	advanceTo(w, 2.01)
	assert.Equal(t, 2, brain.ShotsFired, "fires again at t=2.01")
	assert.InDelta(t, 2.01, brain.LastAttackTime, 1e-9)
}

func TestStackCollisionThenLifetimeDestroysOnce(t *testing.T) {
	w, pw, _ := newStackWorld(t, true)
	player := newPlayer(w, common.V3(0, 0, -40))
	addActorBody(w, player)
	enemy := newEnemy(w, common.V3(0, 0, 3))
	addActorBody(w, enemy)
	pacify(w, enemy)

	p := SpawnProjectile(w, pw, ProjectileSpawn{
		Template: component.ProjectileTemplate{Radius: 0.1, Mass: 1},
		Position: common.V3(0, 1, 0),
		Owner:    component.OwnerPlayer,
		Damage:   20,
		Impulse:  common.V3(0, 0, 30),
		Lifetime: 5,
	})

	advanceTo(w, 0.1)
	require.False(t, ecs.IsAlive(w, p), "destroyed by the collision")
	h, _ := ecs.Get(w, enemy, component.HealthComponent.Kind())
	assert.Equal(t, 80.0, h.Current)

	// The freed slot is handed out again; the old lifetime timer must not
	// reach the new occupant.
	recycled := ecs.CreateEntity(w)
	addKind(w, recycled, component.KindScenery)

	advanceTo(w, 5.5)
	assert.True(t, ecs.IsAlive(w, recycled))
	assert.True(t, ecs.IsAlive(w, enemy))
	assert.Equal(t, 80.0, h.Current)
	assert.Empty(t, projectiles(w))
}

func TestStackDirectHitAndProjectileOnSameEnemy(t *testing.T) {
	w, _, st := newStackWorld(t, true)
	player := newPlayer(w, common.Vec3{})
	armPlayer(w, player)
	enemy := newEnemy(w, common.V3(0, 0, 10))
	addActorBody(w, enemy)
	pacify(w, enemy)

	in, _ := ecs.Get(w, player, component.FireInputComponent.Kind())
	in.Pressed = true

	w.Update(stackStep)
	h, _ := ecs.Get(w, enemy, component.HealthComponent.Kind())
	assert.Equal(t, 80.0, h.Current, "direct hit lands on the fire tick")
	require.Len(t, projectiles(w), 1)

	advanceTo(w, 1)
	assert.Empty(t, projectiles(w))
	assert.Equal(t, 60.0, h.Current)
	assert.True(t, h.Alive)
	assert.Equal(t, 0, st.Scoreboard.Count())
}

func TestStackPatrolWithoutGroundStaysPut(t *testing.T) {
	w, _, _ := newStackWorld(t, false)
	player := newPlayer(w, common.V3(0, 0, 40))
	addActorBody(w, player)
	enemy := newEnemy(w, common.Vec3{})
	addActorBody(w, enemy)

	for i := 0; i < 100; i++ {
		w.Update(stackStep)
	}

	brain, _ := ecs.Get(w, enemy, component.EnemyBrainComponent.Kind())
	assert.Equal(t, component.StatePatrol, brain.State)
	assert.False(t, brain.WalkPointSet)
	agent, _ := ecs.Get(w, enemy, component.NavAgentComponent.Kind())
	assert.False(t, agent.HasDestination)
	tr, _ := ecs.Get(w, enemy, component.TransformComponent.Kind())
	assert.Equal(t, common.Vec3{}, tr.Position)
}
