package system

import (
	"log"
	"math/rand"

	"github.com/milk9111/combatloop/common"
	"github.com/milk9111/combatloop/ecs"
	"github.com/milk9111/combatloop/ecs/component"
)

// stateTable maps [inSight][inAttack] to the behavior for this tick. An
// enemy that is in attack range but out of sight patrols.
var stateTable = [2][2]component.EnemyState{
	{component.StatePatrol, component.StatePatrol},
	{component.StateChase, component.StateAttack},
}

// SelectState picks the behavior for one tick of perception.
func SelectState(inSight, inAttack bool) component.EnemyState {
	return stateTable[b2i(inSight)][b2i(inAttack)]
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// EnemySystem runs the patrol/chase/attack controller for every live enemy.
type EnemySystem struct {
	Physics   Physics
	Navigator Navigator

	rng            *rand.Rand
	initialized    map[ecs.Entity]bool
	warnedNoPlayer bool
}

func NewEnemySystem(physics Physics, nav Navigator, rng *rand.Rand) *EnemySystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &EnemySystem{
		Physics:     physics,
		Navigator:   nav,
		rng:         rng,
		initialized: make(map[ecs.Entity]bool),
	}
}

func (s *EnemySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	_, playerPos, ok := FindPlayer(w)
	if !ok {
		if !s.warnedNoPlayer {
			log.Printf("EnemySystem: no player in the world, enemies idle")
			s.warnedNoPlayer = true
		}
		return
	}
	s.warnedNoPlayer = false

	ecs.ForEach4(w,
		component.EnemyComponent.Kind(),
		component.EnemyBrainComponent.Kind(),
		component.TransformComponent.Kind(),
		component.HealthComponent.Kind(),
		func(e ecs.Entity, cfg *component.Enemy, brain *component.EnemyBrain, tr *component.Transform, h *component.Health) {
			s.initOnce(w, e, cfg, h)
			if !h.Alive {
				return
			}
			s.tick(w, e, cfg, brain, tr, playerPos)
		})
}

func (s *EnemySystem) tick(w *ecs.World, e ecs.Entity, cfg *component.Enemy, brain *component.EnemyBrain, tr *component.Transform, playerPos common.Vec3) {
	brain.InSight = s.sense(tr.Position, cfg.SightRange)
	brain.InAttack = s.sense(tr.Position, cfg.AttackRange)
	brain.State = SelectState(brain.InSight, brain.InAttack)

	switch brain.State {
	case component.StatePatrol:
		s.patrol(w, e, cfg, brain, tr)
	case component.StateChase:
		s.navigate(w, e, playerPos)
	case component.StateAttack:
		s.attack(w, e, cfg, brain, tr, playerPos)
	}
}

func (s *EnemySystem) sense(center common.Vec3, radius float64) bool {
	if s.Physics == nil || radius <= 0 {
		return false
	}
	return len(s.Physics.OverlapSphere(center, radius, component.LayerPlayer)) > 0
}

func (s *EnemySystem) navigate(w *ecs.World, e ecs.Entity, point common.Vec3) {
	if s.Navigator == nil {
		return
	}
	s.Navigator.SetDestination(w, e, point)
}

func (s *EnemySystem) patrol(w *ecs.World, e ecs.Entity, cfg *component.Enemy, brain *component.EnemyBrain, tr *component.Transform) {
	if !brain.WalkPointSet {
		s.searchWalkPoint(cfg, brain, tr)
	}
	if !brain.WalkPointSet {
		return
	}

	s.navigate(w, e, brain.WalkPoint)
	if common.PlanarDistance(tr.Position, brain.WalkPoint) < cfg.WalkPointTolerance {
		brain.WalkPointSet = false
	}
}

// searchWalkPoint picks a random point in the walk square and accepts it
// only when ground lies below it.
func (s *EnemySystem) searchWalkPoint(cfg *component.Enemy, brain *component.EnemyBrain, tr *component.Transform) {
	r := cfg.WalkPointRange
	dx := (s.rng.Float64()*2 - 1) * r
	dz := (s.rng.Float64()*2 - 1) * r
	point := tr.Position.Add(common.V3(dx, 0, dz))

	if s.Physics == nil {
		return
	}
	if _, ok := s.Physics.Raycast(point, common.Down, cfg.GroundProbeDistance, component.LayerGround); ok {
		brain.WalkPoint = point
		brain.WalkPointSet = true
	}
}

func (s *EnemySystem) attack(w *ecs.World, e ecs.Entity, cfg *component.Enemy, brain *component.EnemyBrain, tr *component.Transform, playerPos common.Vec3) {
	s.navigate(w, e, tr.Position)
	tr.Yaw = common.YawTowards(tr.Position, playerPos)
	brain.AttackAttempts++

	if brain.AlreadyAttacked || cfg.Projectile == nil {
		return
	}

	dir := playerPos.Sub(tr.Position).Normalize()
	muzzle := tr.Position.Add(tr.Forward().Scale(cfg.MuzzleForward)).Add(common.Up.Scale(cfg.MuzzleUp))
	SpawnProjectile(w, s.Physics, ProjectileSpawn{
		Template: *cfg.Projectile,
		Position: muzzle,
		Owner:    component.OwnerEnemy,
		Damage:   cfg.Projectile.Damage,
		Impulse:  dir.Scale(cfg.ProjectileSpeed).Add(common.Up.Scale(cfg.ProjectileLift)),
		Lifetime: cfg.ProjectileLifetime,
	})
	log.Printf("EnemySystem: enemy %s fired at player", e)

	brain.AlreadyAttacked = true
	brain.LastAttackTime = w.Time()
	brain.ShotsFired++
	Invoke(w, e, cfg.TimeBetweenAttacks, component.TimerResetAttack)
}

// initOnce reports configuration problems the first time an enemy is seen.
func (s *EnemySystem) initOnce(w *ecs.World, e ecs.Entity, cfg *component.Enemy, h *component.Health) {
	if s.initialized[e] {
		return
	}
	s.initialized[e] = true
	s.pruneInitialized(w)

	log.Printf("EnemySystem: enemy %s initialized with %.0f health", e, h.Current)
	if !ecs.Has(w, e, component.NavAgentComponent.Kind()) {
		log.Printf("EnemySystem: no NavAgent on enemy %s, movement disabled", e)
	}
	if cfg.Projectile == nil {
		log.Printf("EnemySystem: enemy %s has no projectile assigned, attacks will not fire", e)
	}
	if cfg.AttackRange > cfg.SightRange {
		log.Printf("EnemySystem: enemy %s attack range %.1f exceeds sight range %.1f", e, cfg.AttackRange, cfg.SightRange)
	}
}

func (s *EnemySystem) pruneInitialized(w *ecs.World) {
	for e := range s.initialized {
		if !ecs.IsAlive(w, e) {
			delete(s.initialized, e)
		}
	}
}
