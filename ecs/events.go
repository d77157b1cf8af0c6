package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventPhaseChanged = "phase_changed"
	EventGoalReached  = "goal_reached"
	EventRespawned    = "respawned"
)

// PhaseChanged is emitted when a cuboid controller changes phase.
type PhaseChanged struct {
	Entity Entity
	From   string
	To     string
}

// EventQueue is a simple FIFO queue.
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

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Has reports whether an event of type typ is queued.
func (q *EventQueue) Has(typ string) bool {
	if q == nil {
		return false
	}
	for _, evt := range q.items {
		if evt.Type == typ {
			return true
		}
	}
	return false
}
