package system

import (
	"log"

	"github.com/milk9111/combatloop/ecs"
	"github.com/milk9111/combatloop/ecs/component"
	"golang.org/x/image/colornames"
)

var deadTint = colornames.Red

const defaultRemoveDelay = 2.0

// Combat applies damage and runs death behavior. It is shared by every
// system that hurts things.
type Combat struct {
	Physics   Physics
	Navigator Navigator
	Display   HealthDisplay
	Score     *Scoreboard
	Reward    *RewardScript
}

// ApplyDamage subtracts amount from the target's health. It reports false
// when the target has no health component.
func (c *Combat) ApplyDamage(w *ecs.World, target ecs.Entity, amount float64) bool {
	if c == nil || w == nil {
		return false
	}
	h, ok := ecs.Get(w, target, component.HealthComponent.Kind())
	if !ok {
		log.Printf("Combat: %s %s has no health component", kindOf(w, target), target)
		return false
	}

	h.Current -= amount
	log.Printf("Combat: %s %s took %.1f damage. Health remaining: %.1f", kindOf(w, target), target, amount, h.Current)
	c.notify(w, target, h)

	if h.Current <= 0 && h.Alive {
		c.die(w, target, h)
	}
	return true
}

func (c *Combat) notify(w *ecs.World, e ecs.Entity, h *component.Health) {
	if c.Display == nil || !ecs.Has(w, e, component.HealthBarComponent.Kind()) {
		return
	}
	c.Display.ShowHealth(e, h.Current, h.Max)
}

func (c *Combat) die(w *ecs.World, e ecs.Entity, h *component.Health) {
	switch h.Variant {
	case component.DeathRespawn:
		log.Printf("Combat: %s %s died!", kindOf(w, e), e)
		h.Current = h.Max
		c.notify(w, e, h)
	case component.DeathDisable:
		h.Alive = false
		log.Printf("Combat: %s %s died!", kindOf(w, e), e)

		if c.Navigator != nil {
			c.Navigator.SetEnabled(w, e, false)
		}
		if c.Physics != nil {
			c.Physics.SetCollidersEnabled(e, false)
		}
		if tint, ok := ecs.Get(w, e, component.TintComponent.Kind()); ok {
			tint.Color = deadTint
		} else {
			_ = ecs.Add(w, e, component.TintComponent.Kind(), &component.Tint{Color: deadTint})
		}

		delay := h.RemoveDelay
		if delay <= 0 {
			delay = defaultRemoveDelay
		}
		DestroyAfter(w, e, delay)
		c.award(w, e, h)
	}
}

func (c *Combat) award(w *ecs.World, e ecs.Entity, h *component.Health) {
	if c.Score == nil {
		return
	}
	ctx := KillContext{MaxHealth: h.Max, Overkill: -h.Current}
	if brain, ok := ecs.Get(w, e, component.EnemyBrainComponent.Kind()); ok {
		ctx.Attacks = brain.ShotsFired
	}
	reward, err := c.Reward.Reward(ctx)
	if err != nil {
		log.Printf("Combat: kill reward failed, awarding %d: %v", reward, err)
	}
	c.Score.Add(reward)
}
