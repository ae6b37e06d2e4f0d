package game

import "github.com/automoto/titan-slayer/config"

// Event is a side effect of a tick for presentation and audio to consume.
type Event struct {
	Kind  config.EventKind
	Tick  int
	X, Y  float64
	Value int
}

// EventQueue collects events until the presentation layer drains them.
type EventQueue struct {
	events []Event
}

func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Drain returns every queued event and empties the queue.
func (q *EventQueue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

func (q *EventQueue) Len() int {
	return len(q.events)
}
