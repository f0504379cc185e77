package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// EventContact is pushed by the physics system for every projectile
// contact it observed during the step.
const EventContact = "contact"

// ContactKind tells solid collisions apart from trigger overlaps.
type ContactKind uint8

const (
	ContactCollision ContactKind = iota
	ContactTrigger
)

func (k ContactKind) String() string {
	if k == ContactTrigger {
		return "trigger"
	}
	return "collision"
}

// ContactEvent reports that Projectile touched Other. Other is zero when
// the projectile hit static scenery (walls, floor).
type ContactEvent struct {
	Projectile Entity
	Other      Entity
	Kind       ContactKind
}

// EventQueue is a simple FIFO queue flushed at the end of every tick.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Of returns the queued events of one type without consuming them.
func (q *EventQueue) Of(typ string) []Event {
	if q == nil {
		return nil
	}
	var out []Event
	for _, evt := range q.items {
		if evt.Type == typ {
			out = append(out, evt)
		}
	}
	return out
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
