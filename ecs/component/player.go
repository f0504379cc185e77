package component

// Player is the movement tuning the host input layer reads.
type Player struct {
	MoveSpeed float64
	EyeHeight float64
}

var PlayerComponent = NewComponent[Player]()
