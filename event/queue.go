package event

// Queue is a FIFO of machine events
// Single goroutine: the machine pushes during Update, the owner drains between frames
type Queue struct {
	events []Event
	total  int
}

func NewQueue(capacity int) *Queue {
	return &Queue{events: make([]Event, 0, capacity)}
}

// Push appends an event
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
	q.total++
}

// Consume returns all pending events in FIFO order and empties the queue
func (q *Queue) Consume() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

// Len returns the pending event count
func (q *Queue) Len() int {
	return len(q.events)
}

// Total returns events pushed since creation
func (q *Queue) Total() int {
	return q.total
}
