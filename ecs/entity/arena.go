package entity

import (
	"fmt"

	"github.com/milk9111/combatloop/common"
	"github.com/milk9111/combatloop/ecs"
	"github.com/milk9111/combatloop/prefabs"
)

// Arena is what LoadArena spawned.
type Arena struct {
	Player  ecs.Entity
	Enemies []ecs.Entity
	Spec    *prefabs.ArenaSpec
}

// LoadArena builds the arena's static geometry into pw and spawns the
// player and enemies from their prefabs.
func LoadArena(w *ecs.World, pw *ecs.PhysicsWorld) (*Arena, error) {
	spec, err := prefabs.LoadArenaSpec()
	if err != nil {
		return nil, fmt.Errorf("arena: load spec: %w", err)
	}
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, fmt.Errorf("arena: load player spec: %w", err)
	}
	enemy, err := prefabs.LoadEnemySpec()
	if err != nil {
		return nil, fmt.Errorf("arena: load enemy spec: %w", err)
	}
	return BuildArena(w, pw, spec, player, enemy)
}

func BuildArena(w *ecs.World, pw *ecs.PhysicsWorld, spec *prefabs.ArenaSpec, playerSpec *prefabs.PlayerSpec, enemySpec *prefabs.EnemySpec) (*Arena, error) {
	for _, f := range spec.Floors {
		pw.AddFloor(f.MinX, f.MinZ, f.MaxX, f.MaxZ, f.Height)
	}
	for _, wall := range spec.Walls {
		pw.AddWall(wall.MinX, wall.MinZ, wall.MaxX, wall.MaxZ, wall.Base, wall.Height)
	}

	arena := &Arena{Spec: spec}

	player, err := NewPlayerFromSpec(w, playerSpec, vec(spec.PlayerSpawn))
	if err != nil {
		return nil, fmt.Errorf("arena: spawn player: %w", err)
	}
	arena.Player = player

	for i, at := range spec.EnemySpawns {
		e, err := NewEnemyFromSpec(w, enemySpec, vec(at))
		if err != nil {
			return nil, fmt.Errorf("arena: spawn enemy %d: %w", i, err)
		}
		arena.Enemies = append(arena.Enemies, e)
	}

	return arena, nil
}

func vec(v prefabs.Vec3Spec) common.Vec3 {
	return common.V3(v.X, v.Y, v.Z)
}
