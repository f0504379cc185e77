package component

// Kind classifies an entity once, at spawn time.
type Kind uint8

const (
	KindNone Kind = iota
	KindPlayer
	KindEnemy
	KindProjectile
	KindScenery
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindEnemy:
		return "Enemy"
	case KindProjectile:
		return "Bullet"
	case KindScenery:
		return "Scenery"
	default:
		return "Untagged"
	}
}

var KindComponent = NewComponent[Kind]()
