package sweepline

import (
	"github.com/emirpasic/gods/queues/priorityqueue"
)

// EventKind is the nature of an Event in the sweep-line algorithm.
type EventKind int

const (
	// EventStart signifies that the sweep line has reached a segment's
	// (normalized) left endpoint.
	EventStart EventKind = iota
	// EventEnd signifies that the sweep line has reached a segment's
	// right endpoint.
	EventEnd
	// EventCross signifies that the sweep line has reached a point where
	// two segments cross.
	EventCross
)

// Event is a transient tuple (p, kind, a, b): a point on the sweep line,
// the kind of event, and the SegmentTable identifiers of the segment(s)
// involved. For Start/End, A == B; for Cross, A and B are the two
// crossing segments.
type Event struct {
	Point Point
	Kind  EventKind
	A, B  int
}

// eventLess orders events ascending by Point.X; at equal X, Start/Cross
// before End (so a segment beginning where another ends is placed in the
// status before the co-located removal); then ascending Point.Y.
func eventLess(x, y interface{}) int {
	a, b := x.(*Event), y.(*Event)
	if a.Point.X != b.Point.X {
		if a.Point.X < b.Point.X {
			return -1
		}
		return 1
	}
	aEnd, bEnd := a.Kind == EventEnd, b.Kind == EventEnd
	if aEnd != bEnd {
		if bEnd {
			return -1
		}
		return 1
	}
	if a.Point.Y != b.Point.Y {
		if a.Point.Y < b.Point.Y {
			return -1
		}
		return 1
	}
	return 0
}

// EventQueue is the sweep's min-priority queue, a binary heap ordered by
// eventLess, built over github.com/emirpasic/gods/queues/priorityqueue
// rather than container/heap.
type EventQueue struct {
	q   *priorityqueue.Queue
	ops *int64
}

// NewEventQueue creates an empty event queue. Every Pop increments ops
// once, so callers can track dequeue counts as a basic-operations measure.
func NewEventQueue(ops *int64) *EventQueue {
	return &EventQueue{q: priorityqueue.NewWith(eventLess), ops: ops}
}

// Push adds an event to the queue.
func (eq *EventQueue) Push(e *Event) {
	eq.q.Enqueue(e)
}

// Pop removes and returns the event with the lowest priority (earliest in
// sweep order). The second return value is false when the queue is empty.
func (eq *EventQueue) Pop() (*Event, bool) {
	v, ok := eq.q.Dequeue()
	if !ok {
		return nil, false
	}
	if eq.ops != nil {
		*eq.ops++
	}
	return v.(*Event), true
}

// Peek returns the next event without removing it.
func (eq *EventQueue) Peek() (*Event, bool) {
	v, ok := eq.q.Peek()
	if !ok {
		return nil, false
	}
	return v.(*Event), true
}

// Len reports how many events remain queued.
func (eq *EventQueue) Len() int {
	return eq.q.Size()
}
