package system

import (
	"github.com/milk9111/combatloop/common"
	"github.com/milk9111/combatloop/ecs"
	"github.com/milk9111/combatloop/ecs/component"
)

// PlayerControl applies host input to the player entity.
type PlayerControl struct {
	Physics Physics
}

// Move walks the player along the planar direction dir for dt seconds,
// stopping short of walls.
func (c PlayerControl) Move(w *ecs.World, e ecs.Entity, dir common.Vec3, dt float64) {
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	dir = dir.Flat().Normalize()
	if dir == (common.Vec3{}) || dt <= 0 {
		c.syncAim(w, e, tr, p)
		return
	}

	step := p.MoveSpeed * dt
	radius := 0.5
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		radius = body.Radius
	}
	if c.Physics != nil {
		origin := tr.Position.Add(common.Up.Scale(0.5))
		if hit, ok := c.Physics.Raycast(origin, dir, step+radius, component.LayerWall); ok {
			step = max(hit.Distance-radius, 0)
		}
	}
	tr.Position = tr.Position.Add(dir.Scale(step))
	c.syncAim(w, e, tr, p)
}

// AimAt turns the player toward target and points the aim ray at it.
func (c PlayerControl) AimAt(w *ecs.World, e ecs.Entity, target common.Vec3) {
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	if common.PlanarDistance(tr.Position, target) > 1e-6 {
		tr.Yaw = common.YawTowards(tr.Position, target)
	}
	if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
		c.syncAim(w, e, tr, p)
	}
}

// Fire latches the fire edge for the next WeaponSystem update.
func (c PlayerControl) Fire(w *ecs.World, e ecs.Entity) {
	if in, ok := ecs.Get(w, e, component.FireInputComponent.Kind()); ok {
		in.Pressed = true
	}
}

func (c PlayerControl) syncAim(w *ecs.World, e ecs.Entity, tr *component.Transform, p *component.Player) {
	ray, ok := ecs.Get(w, e, component.AimRayComponent.Kind())
	if !ok {
		return
	}
	ray.Origin = tr.Position.Add(common.Up.Scale(p.EyeHeight))
	ray.Direction = tr.Forward()
}
