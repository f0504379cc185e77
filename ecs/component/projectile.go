package component

// Owner is the allegiance of a projectile.
type Owner uint8

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

func (o Owner) String() string {
	if o == OwnerEnemy {
		return "Enemy"
	}
	return "Player"
}

// Projectile is a live bullet.
type Projectile struct {
	Damage   float64
	Owner    Owner
	Lifetime float64
	// Spent is set by the first processed contact; later contacts are ignored.
	Spent bool
}

var ProjectileComponent = NewComponent[Projectile]()

// ProjectileTemplate is what a spawner instantiates. A nil template on a
// spawner means no projectile is configured.
type ProjectileTemplate struct {
	Radius     float64
	Mass       float64
	Damage     float64
	UseGravity bool
}
