package component

import "github.com/milk9111/combatloop/common"

// Transform is the world pose of an entity. Position is the entity's feet
// for actors and the centre for projectiles; Yaw is the heading around Y.
type Transform struct {
	Position common.Vec3
	Yaw      float64
}

// Forward returns the horizontal unit vector the entity faces.
func (t Transform) Forward() common.Vec3 {
	return common.YawForward(t.Yaw)
}

var TransformComponent = NewComponent[Transform]()
