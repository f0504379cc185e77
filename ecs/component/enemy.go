package component

import "github.com/milk9111/combatloop/common"

// EnemyState is recomputed every tick from perception.
type EnemyState uint8

const (
	StatePatrol EnemyState = iota
	StateChase
	StateAttack
)

func (s EnemyState) String() string {
	switch s {
	case StateChase:
		return "chase"
	case StateAttack:
		return "attack"
	default:
		return "patrol"
	}
}

// Enemy is the static tuning of an enemy controller.
type Enemy struct {
	SightRange          float64
	AttackRange         float64
	WalkPointRange      float64
	WalkPointTolerance  float64
	GroundProbeDistance float64
	TimeBetweenAttacks  float64

	Projectile         *ProjectileTemplate
	ProjectileSpeed    float64
	ProjectileLift     float64
	ProjectileLifetime float64
	// MuzzleForward and MuzzleUp offset the spawn point from the enemy so
	// the projectile does not start inside its own collider.
	MuzzleForward float64
	MuzzleUp      float64
}

var EnemyComponent = NewComponent[Enemy]()

// EnemyBrain is the runtime state of an enemy controller.
type EnemyBrain struct {
	State    EnemyState
	InSight  bool
	InAttack bool

	WalkPoint    common.Vec3
	WalkPointSet bool

	AlreadyAttacked bool
	LastAttackTime  float64
	AttackAttempts  int
	ShotsFired      int
}

var EnemyBrainComponent = NewComponent[EnemyBrain]()
