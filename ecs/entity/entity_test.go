package entity

import (
	"testing"

	"github.com/milk9111/combatloop/common"
	"github.com/milk9111/combatloop/ecs"
	"github.com/milk9111/combatloop/ecs/component"
	"github.com/milk9111/combatloop/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func embeddedOnly(t *testing.T) {
	t.Helper()
	old := prefabs.Dir
	prefabs.Dir = t.TempDir()
	t.Cleanup(func() { prefabs.Dir = old })
}

func TestLoadArena(t *testing.T) {
	embeddedOnly(t)
	w := ecs.NewWorld()
	pw := ecs.NewPhysicsWorld()

	arena, err := LoadArena(w, pw)
	require.NoError(t, err)
	assert.Len(t, arena.Enemies, len(arena.Spec.EnemySpawns))

	k, ok := ecs.Get(w, arena.Player, component.KindComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, component.KindPlayer, *k)
	assert.True(t, ecs.Has(w, arena.Player, component.HealthBarComponent.Kind()))

	wp, ok := ecs.Get(w, arena.Player, component.WeaponComponent.Kind())
	require.True(t, ok)
	require.NotNil(t, wp.Projectile)
	assert.Equal(t, 20.0, wp.Projectile.Damage)

	for i, e := range arena.Enemies {
		tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		require.True(t, ok)
		spawn := arena.Spec.EnemySpawns[i]
		assert.Equal(t, common.V3(spawn.X, spawn.Y, spawn.Z), tr.Position)

		h, _ := ecs.Get(w, e, component.HealthComponent.Kind())
		assert.Equal(t, component.Health{Max: 100, Current: 100, Alive: true, Variant: component.DeathDisable, RemoveDelay: 2}, *h)
		assert.True(t, ecs.Has(w, e, component.NavAgentComponent.Kind()))
	}

	// Ground lies under the player spawn.
	spawn := arena.Spec.PlayerSpawn
	_, hit := pw.Raycast(common.V3(spawn.X, 1, spawn.Z), common.Down, 2, component.LayerGround)
	assert.True(t, hit)
}

func TestEnemyWithoutProjectile(t *testing.T) {
	w := ecs.NewWorld()
	spec := &prefabs.EnemySpec{SightRange: 15, AttackRange: 10}

	e, err := NewEnemyFromSpec(w, spec, common.Vec3{})
	require.NoError(t, err)

	cfg, _ := ecs.Get(w, e, component.EnemyComponent.Kind())
	assert.Nil(t, cfg.Projectile)
}

func TestApplyEnemySpec(t *testing.T) {
	embeddedOnly(t)
	w := ecs.NewWorld()
	spec, err := prefabs.LoadEnemySpec()
	require.NoError(t, err)

	e, err := NewEnemyFromSpec(w, spec, common.Vec3{})
	require.NoError(t, err)
	h, _ := ecs.Get(w, e, component.HealthComponent.Kind())
	h.Current = 40

	edited := *spec
	edited.SightRange = 25
	edited.Nav.Speed = 7
	proj := *spec.Projectile
	proj.Damage = 15
	edited.Projectile = &proj
	assert.Equal(t, 1, ApplyEnemySpec(w, &edited))

	cfg, _ := ecs.Get(w, e, component.EnemyComponent.Kind())
	assert.Equal(t, 25.0, cfg.SightRange)
	require.NotNil(t, cfg.Projectile)
	assert.Equal(t, 15.0, cfg.Projectile.Damage)
	agent, _ := ecs.Get(w, e, component.NavAgentComponent.Kind())
	assert.Equal(t, 7.0, agent.Speed)
	assert.Equal(t, 40.0, h.Current)
}

func TestApplyPlayerSpec(t *testing.T) {
	embeddedOnly(t)
	w := ecs.NewWorld()
	spec, err := prefabs.LoadPlayerSpec()
	require.NoError(t, err)

	e, err := NewPlayerFromSpec(w, spec, common.Vec3{})
	require.NoError(t, err)

	edited := *spec
	edited.Health.Max = 50
	edited.Weapon.DirectHitDamage = 35
	assert.Equal(t, 1, ApplyPlayerSpec(w, &edited))

	h, _ := ecs.Get(w, e, component.HealthComponent.Kind())
	assert.Equal(t, 50.0, h.Max)
	assert.Equal(t, 50.0, h.Current)
	wp, _ := ecs.Get(w, e, component.WeaponComponent.Kind())
	assert.Equal(t, 35.0, wp.DirectHitDamage)
}
