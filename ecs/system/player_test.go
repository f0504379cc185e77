package system

import (
	"math"
	"testing"

	"github.com/milk9111/combatloop/common"
	"github.com/milk9111/combatloop/ecs"
	"github.com/milk9111/combatloop/ecs/component"
	"github.com/stretchr/testify/assert"
)

func newControlledPlayer(w *ecs.World) ecs.Entity {
	e := newPlayer(w, common.Vec3{})
	_ = ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{MoveSpeed: 6, EyeHeight: 1.6})
	_ = ecs.Add(w, e, component.AimRayComponent.Kind(), &component.AimRay{})
	_ = ecs.Add(w, e, component.FireInputComponent.Kind(), &component.FireInput{})
	return e
}

func TestPlayerControlMove(t *testing.T) {
	w := ecs.NewWorld()
	e := newControlledPlayer(w)
	ctl := PlayerControl{Physics: newFakePhysics()}

	ctl.Move(w, e, common.V3(1, 5, 0), 0.5)

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	assert.InDelta(t, 3, tr.Position.X, 1e-9)
	assert.Equal(t, 0.0, tr.Position.Y)

	ray, _ := ecs.Get(w, e, component.AimRayComponent.Kind())
	assert.InDelta(t, 1.6, ray.Origin.Y, 1e-9)
	assert.InDelta(t, 3, ray.Origin.X, 1e-9)
}

func TestPlayerControlStopsAtWall(t *testing.T) {
	w := ecs.NewWorld()
	e := newControlledPlayer(w)
	phys := newFakePhysics()
	phys.raycast = func(origin, dir common.Vec3, maxDist float64, mask component.Layer) (ecs.RaycastHit, bool) {
		if mask != component.LayerWall {
			return ecs.RaycastHit{}, false
		}
		return ecs.RaycastHit{Distance: 1.5, Layer: component.LayerWall}, true
	}

	PlayerControl{Physics: phys}.Move(w, e, common.Forward, 1)

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	assert.InDelta(t, 1, tr.Position.Z, 1e-9)
}

func TestPlayerControlAimAndFire(t *testing.T) {
	w := ecs.NewWorld()
	e := newControlledPlayer(w)
	ctl := PlayerControl{}

	ctl.AimAt(w, e, common.V3(-4, 0, 0))
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	assert.InDelta(t, -math.Pi/2, tr.Yaw, 1e-9)

	ray, _ := ecs.Get(w, e, component.AimRayComponent.Kind())
	assert.InDelta(t, -1, ray.Direction.X, 1e-9)

	ctl.Fire(w, e)
	in, _ := ecs.Get(w, e, component.FireInputComponent.Kind())
	assert.True(t, in.Pressed)
}
