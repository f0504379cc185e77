package system

import (
	"testing"

	"github.com/milk9111/combatloop/common"
	"github.com/milk9111/combatloop/ecs"
	"github.com/milk9111/combatloop/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCombat() (*Combat, *fakePhysics, *fakeHealthDisplay, *fakeScoreDisplay) {
	phys := newFakePhysics()
	hd := &fakeHealthDisplay{}
	sd := &fakeScoreDisplay{}
	return &Combat{
		Physics:   phys,
		Navigator: AgentNavigator{},
		Display:   hd,
		Score:     NewScoreboard(sd),
	}, phys, hd, sd
}

func TestApplyDamageReducesHealth(t *testing.T) {
	w := ecs.NewWorld()
	c, _, _, _ := newCombat()
	enemy := newEnemy(w, common.Vec3{})

	require.True(t, c.ApplyDamage(w, enemy, 40))

	h, ok := ecs.Get(w, enemy, component.HealthComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 60.0, h.Current)
	assert.True(t, h.Alive)
}

func TestApplyDamageWithoutHealth(t *testing.T) {
	w := ecs.NewWorld()
	c, _, _, _ := newCombat()
	e := ecs.CreateEntity(w)

	assert.False(t, c.ApplyDamage(w, e, 10))
}

func TestEnemyDiesExactlyOnce(t *testing.T) {
	w := ecs.NewWorld()
	c, phys, _, sd := newCombat()
	enemy := newEnemy(w, common.Vec3{})

	for _, dmg := range []float64{40, 10, 60} {
		c.ApplyDamage(w, enemy, dmg)
	}

	h, _ := ecs.Get(w, enemy, component.HealthComponent.Kind())
	assert.Equal(t, -10.0, h.Current)
	assert.False(t, h.Alive)
	assert.True(t, phys.disabled[enemy])

	agent, _ := ecs.Get(w, enemy, component.NavAgentComponent.Kind())
	assert.False(t, agent.Enabled)

	tint, _ := ecs.Get(w, enemy, component.TintComponent.Kind())
	assert.Equal(t, deadTint, tint.Color)

	d, ok := ecs.Get(w, enemy, component.DeferredComponent.Kind())
	require.True(t, ok)
	require.Len(t, d.Timers, 1)
	assert.Equal(t, component.TimerDestroy, d.Timers[0].Action)

	c.ApplyDamage(w, enemy, 50)
	d, _ = ecs.Get(w, enemy, component.DeferredComponent.Kind())
	assert.Len(t, d.Timers, 1, "death must not be scheduled twice")
	assert.Equal(t, 1, c.Score.Count())
	assert.Equal(t, []int{0, 1}, sd.shown)
}

func TestEnemyRemovedAfterDelay(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(NewDeferredSystem())
	c, _, _, _ := newCombat()
	enemy := newEnemy(w, common.Vec3{})

	c.ApplyDamage(w, enemy, 100)

	for i := 0; i < 19; i++ {
		w.Update(0.1)
	}
	assert.True(t, ecs.IsAlive(w, enemy))

	w.Update(0.1)
	assert.False(t, ecs.IsAlive(w, enemy))
}

func TestPlayerRespawnsInPlace(t *testing.T) {
	w := ecs.NewWorld()
	c, _, hd, _ := newCombat()
	player := newPlayer(w, common.V3(3, 0, 4))

	h, _ := ecs.Get(w, player, component.HealthComponent.Kind())
	h.Current = 5

	c.ApplyDamage(w, player, 10)

	assert.Equal(t, 100.0, h.Current)
	assert.True(t, h.Alive)
	require.NotEmpty(t, hd.updates)
	last := hd.updates[len(hd.updates)-1]
	assert.Equal(t, healthUpdate{player, 100, 100}, last)

	tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	assert.Equal(t, common.V3(3, 0, 4), tr.Position)
	assert.Equal(t, 0, c.Score.Count())
}

func TestHealthDisplayOnlyForBoundEntities(t *testing.T) {
	w := ecs.NewWorld()
	c, _, hd, _ := newCombat()
	player := newPlayer(w, common.Vec3{})
	enemy := newEnemy(w, common.Vec3{})

	c.ApplyDamage(w, enemy, 10)
	assert.Empty(t, hd.updates)

	c.ApplyDamage(w, player, 10)
	assert.Equal(t, []healthUpdate{{player, 90, 100}}, hd.updates)
}

func TestKillRewardUsesScript(t *testing.T) {
	w := ecs.NewWorld()
	c, _, _, _ := newCombat()
	script, err := NewRewardScript([]byte(`
reward = 1
if overkill >= max_health / 4 {
	reward = 3
}
`))
	require.NoError(t, err)
	c.Reward = script

	a := newEnemy(w, common.Vec3{})
	b := newEnemy(w, common.Vec3{})

	c.ApplyDamage(w, a, 100)
	assert.Equal(t, 1, c.Score.Count())

	c.ApplyDamage(w, b, 130)
	assert.Equal(t, 4, c.Score.Count())
}
