package component

// TimerAction is what a deferred callback does when it comes due.
type TimerAction uint8

const (
	// TimerDestroy removes the owning entity.
	TimerDestroy TimerAction = iota
	// TimerResetAttack clears EnemyBrain.AlreadyAttacked.
	TimerResetAttack
)

func (a TimerAction) String() string {
	if a == TimerResetAttack {
		return "reset_attack"
	}
	return "destroy"
}

// Timer is a single-shot callback due at an absolute simulation time.
type Timer struct {
	Due    float64
	Action TimerAction
}

// Deferred is the timer list of one entity. It dies with the entity, which
// is what keeps stale callbacks from firing.
type Deferred struct {
	Timers []Timer
}

var DeferredComponent = NewComponent[Deferred]()
