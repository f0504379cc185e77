package system

import (
	"math/rand"

	"github.com/milk9111/combatloop/ecs"
)

// StackOptions are the host hooks a combat stack is built with.
type StackOptions struct {
	Rand    *rand.Rand
	Health  HealthDisplay
	Score   ScoreDisplay
	Reward  *RewardScript
	Physics *ecs.PhysicsWorld
}

// Stack is the full set of combat systems registered on one world.
type Stack struct {
	Combat     *Combat
	Scoreboard *Scoreboard
	Physics    *PhysicsSystem
	Projectile *ProjectileSystem
	Deferred   *DeferredSystem
	Weapon     *WeaponSystem
	Enemy      *EnemySystem
	Navigation *NavigationSystem
}

// NewStack creates the combat systems and adds them to w in tick order:
// physics, contact resolution, timers, player weapon, enemy AI, movement.
func NewStack(w *ecs.World, opts StackOptions) *Stack {
	pw := opts.Physics
	if pw == nil {
		pw = ecs.NewPhysicsWorld()
	}
	w.SetPhysicsWorld(pw)

	var physics Physics = pw
	nav := AgentNavigator{}
	score := NewScoreboard(opts.Score)
	combat := &Combat{
		Physics:   physics,
		Navigator: nav,
		Display:   opts.Health,
		Score:     score,
		Reward:    opts.Reward,
	}

	st := &Stack{
		Combat:     combat,
		Scoreboard: score,
		Physics:    NewPhysicsSystem(pw),
		Projectile: NewProjectileSystem(combat),
		Deferred:   NewDeferredSystem(),
		Weapon:     NewWeaponSystem(combat, physics),
		Enemy:      NewEnemySystem(physics, nav, opts.Rand),
		Navigation: NewNavigationSystem(),
	}
	w.AddSystem(st.Physics)
	w.AddSystem(st.Projectile)
	w.AddSystem(st.Deferred)
	w.AddSystem(st.Weapon)
	w.AddSystem(st.Enemy)
	w.AddSystem(st.Navigation)
	return st
}
