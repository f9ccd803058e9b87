// internal/event/event.go
package event

import "fmt"

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data any // Данные события, если нужны
}

func (e Event) String() string {
	if e.Data == nil {
		return string(e.Type)
	}
	return fmt.Sprintf("%s %+v", e.Type, e.Data)
}

// Queue collects events raised during a tick. The owner drains it once per
// tick; nothing is delivered through callbacks.
type Queue struct {
	pending []Event
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event.
func (q *Queue) Push(eventType EventType, data any) {
	q.pending = append(q.pending, Event{Type: eventType, Data: data})
}

// Drain returns the queued events in the order they were pushed and empties the queue.
func (q *Queue) Drain() []Event {
	out := q.pending
	q.pending = nil
	return out
}

func (q *Queue) Len() int {
	return len(q.pending)
}
