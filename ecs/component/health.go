package component

// DeathVariant selects what happens when health drops to zero or below.
type DeathVariant uint8

const (
	// DeathRespawn refills health in place (player).
	DeathRespawn DeathVariant = iota
	// DeathDisable freezes the entity, tints it and removes it later (enemy).
	DeathDisable
)

// Health is the combat target of a damageable entity. Current may read
// negative between a lethal hit and the death behavior.
type Health struct {
	Max     float64
	Current float64
	Alive   bool
	Variant DeathVariant
	// RemoveDelay is how long a DeathDisable entity lingers before removal.
	RemoveDelay float64
}

// Fraction is Current/Max for health bars.
func (h Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

var HealthComponent = NewComponent[Health]()

// HealthBar binds an entity's health to the HUD.
type HealthBar struct{}

var HealthBarComponent = NewComponent[HealthBar]()
