package component

// PhysicsBody describes the collider the physics world builds for an
// entity. Dynamic bodies are simulated (projectiles); the rest are
// kinematic and follow their Transform.
type PhysicsBody struct {
	Radius     float64
	Height     float64
	Mass       float64
	Dynamic    bool
	Sensor     bool
	UseGravity bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
