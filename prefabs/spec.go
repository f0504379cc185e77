package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Vec3Spec is a point or offset in world units.
type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type ProjectileSpec struct {
	Radius     float64 `yaml:"radius"`
	Mass       float64 `yaml:"mass"`
	Damage     float64 `yaml:"damage"`
	UseGravity bool    `yaml:"use_gravity"`
}

type HealthSpec struct {
	Max         float64 `yaml:"max"`
	RemoveDelay float64 `yaml:"remove_delay"`
}

type NavSpec struct {
	Speed            float64 `yaml:"speed"`
	StoppingDistance float64 `yaml:"stopping_distance"`
}

type BodySpec struct {
	Radius float64 `yaml:"radius"`
	Height float64 `yaml:"height"`
}

type WeaponSpec struct {
	ProjectileSpeed    float64         `yaml:"projectile_speed"`
	ProjectileLifetime float64         `yaml:"projectile_lifetime"`
	DirectHitDamage    float64         `yaml:"direct_hit_damage"`
	FarDistance        float64         `yaml:"far_distance"`
	Barrel             Vec3Spec        `yaml:"barrel"`
	Projectile         *ProjectileSpec `yaml:"projectile"`
}

type PlayerSpec struct {
	Name      string     `yaml:"name"`
	MoveSpeed float64    `yaml:"move_speed"`
	EyeHeight float64    `yaml:"eye_height"`
	Body      BodySpec   `yaml:"body"`
	Health    HealthSpec `yaml:"health"`
	Weapon    WeaponSpec `yaml:"weapon"`
}

type EnemySpec struct {
	Name   string     `yaml:"name"`
	Body   BodySpec   `yaml:"body"`
	Health HealthSpec `yaml:"health"`
	Nav    NavSpec    `yaml:"nav"`

	SightRange          float64 `yaml:"sight_range"`
	AttackRange         float64 `yaml:"attack_range"`
	WalkPointRange      float64 `yaml:"walk_point_range"`
	WalkPointTolerance  float64 `yaml:"walk_point_tolerance"`
	GroundProbeDistance float64 `yaml:"ground_probe_distance"`
	TimeBetweenAttacks  float64 `yaml:"time_between_attacks"`

	ProjectileSpeed    float64         `yaml:"projectile_speed"`
	ProjectileLift     float64         `yaml:"projectile_lift"`
	ProjectileLifetime float64         `yaml:"projectile_lifetime"`
	MuzzleForward      float64         `yaml:"muzzle_forward"`
	MuzzleUp           float64         `yaml:"muzzle_up"`
	Projectile         *ProjectileSpec `yaml:"projectile"`
}

// BoxSpec is an axis-aligned block on the ground plane.
type BoxSpec struct {
	MinX   float64 `yaml:"min_x"`
	MinZ   float64 `yaml:"min_z"`
	MaxX   float64 `yaml:"max_x"`
	MaxZ   float64 `yaml:"max_z"`
	Base   float64 `yaml:"base"`
	Height float64 `yaml:"height"`
}

type ArenaSpec struct {
	Name        string     `yaml:"name"`
	Floors      []BoxSpec  `yaml:"floors"`
	Walls       []BoxSpec  `yaml:"walls"`
	PlayerSpawn Vec3Spec   `yaml:"player_spawn"`
	EnemySpawns []Vec3Spec `yaml:"enemy_spawns"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	return &spec, nil
}

func LoadEnemySpec() (*EnemySpec, error) {
	spec, err := LoadSpec[EnemySpec]("enemy.yaml")
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	return &spec, nil
}

func LoadArenaSpec() (*ArenaSpec, error) {
	spec, err := LoadSpec[ArenaSpec]("arena.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func orDefault(v *float64, def float64) {
	if *v == 0 {
		*v = def
	}
}

func (s *PlayerSpec) applyDefaults() {
	orDefault(&s.MoveSpeed, 6)
	orDefault(&s.EyeHeight, 1.6)
	orDefault(&s.Body.Radius, 0.5)
	orDefault(&s.Body.Height, 2)
	orDefault(&s.Health.Max, 100)
	orDefault(&s.Weapon.ProjectileSpeed, 50)
	orDefault(&s.Weapon.ProjectileLifetime, 5)
	orDefault(&s.Weapon.DirectHitDamage, 20)
	orDefault(&s.Weapon.FarDistance, 1000)
	if p := s.Weapon.Projectile; p != nil {
		orDefault(&p.Damage, 20)
		p.applyDefaults()
	}
}

func (s *EnemySpec) applyDefaults() {
	orDefault(&s.Body.Radius, 0.5)
	orDefault(&s.Body.Height, 2)
	orDefault(&s.Health.Max, 100)
	orDefault(&s.Health.RemoveDelay, 2)
	orDefault(&s.Nav.Speed, 3.5)
	orDefault(&s.SightRange, 15)
	orDefault(&s.AttackRange, 10)
	orDefault(&s.WalkPointRange, 10)
	orDefault(&s.WalkPointTolerance, 1)
	orDefault(&s.GroundProbeDistance, 2)
	orDefault(&s.TimeBetweenAttacks, 2)
	orDefault(&s.ProjectileSpeed, 20)
	orDefault(&s.ProjectileLift, 2)
	orDefault(&s.ProjectileLifetime, 5)
	orDefault(&s.MuzzleForward, 1.5)
	orDefault(&s.MuzzleUp, 1.5)
	if s.Projectile != nil {
		orDefault(&s.Projectile.Damage, 10)
		s.Projectile.applyDefaults()
	}
}

func (p *ProjectileSpec) applyDefaults() {
	orDefault(&p.Radius, 0.1)
	orDefault(&p.Mass, 1)
}

// Validate returns configuration warnings. None of them stop the enemy from
// being built.
func (s *EnemySpec) Validate() []string {
	var warnings []string
	if s.AttackRange > s.SightRange {
		warnings = append(warnings, fmt.Sprintf("attack_range %.1f exceeds sight_range %.1f; the enemy will never attack from outside sight", s.AttackRange, s.SightRange))
	}
	if s.Projectile == nil {
		warnings = append(warnings, "no projectile configured; attacks will not fire")
	}
	if s.Nav.Speed < 0 {
		warnings = append(warnings, "nav speed is negative")
	}
	return warnings
}
