package component

// Layer is a collision category bitmask.
type Layer uint32

const (
	LayerDefault Layer = 1 << iota
	LayerGround
	LayerWall
	LayerPlayer
	LayerEnemy
	LayerProjectile
	// LayerQuery is carried only by query filters; every shape accepts it.
	LayerQuery

	LayerAll Layer = LayerDefault | LayerGround | LayerWall | LayerPlayer | LayerEnemy | LayerProjectile
)

// CollisionLayer allows entities to declare a collision category and mask
// so the physics world can selectively enable collisions between groups.
type CollisionLayer struct {
	// Category is a bitmask of this entity's collision category. If zero,
	// the physics world treats it as LayerDefault.
	Category Layer `yaml:"category,omitempty"`
	// Mask is a bitmask of categories this entity collides with. If zero,
	// the physics world treats it as LayerAll.
	Mask Layer `yaml:"mask,omitempty"`
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()
