// sim/scheduler.go
package sim

import (
	"container/heap"
	"fmt"
)

// scheduledEvent pairs an Event with the insertion sequence number assigned
// at schedule time. The sequence is used only as a tie-break so that events
// with equal timestamps execute in the order they were scheduled.
type scheduledEvent struct {
	ev   Event
	time float64
	seq  uint64
}

// eventHeap implements heap.Interface and orders events by (timestamp, sequence).
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type eventHeap []scheduledEvent

func (eh eventHeap) Len() int { return len(eh) }
func (eh eventHeap) Less(i, j int) bool {
	if eh[i].time != eh[j].time {
		return eh[i].time < eh[j].time
	}
	return eh[i].seq < eh[j].seq
}
func (eh eventHeap) Swap(i, j int) { eh[i], eh[j] = eh[j], eh[i] }

func (eh *eventHeap) Push(x any) {
	*eh = append(*eh, x.(scheduledEvent))
}

func (eh *eventHeap) Pop() any {
	old := *eh
	n := len(old)
	item := old[n-1]
	*eh = old[0 : n-1]
	return item
}

// EventScheduler owns the pending-event heap. It holds no domain state:
// the Simulator drives it and interprets the events it returns.
//
// Popped timestamps are non-decreasing; among equal timestamps, events come
// out in scheduling order.
type EventScheduler struct {
	heap       eventHeap
	nextSeq    uint64
	lastPopped float64
}

// NewEventScheduler creates an empty scheduler.
func NewEventScheduler() *EventScheduler {
	return &EventScheduler{heap: make(eventHeap, 0)}
}

// Schedule inserts an event. Scheduling an event before the last-popped
// timestamp would rewrite history; that can only come from an implementation
// defect, so it panics rather than silently reordering.
func (s *EventScheduler) Schedule(ev Event) {
	t := ev.Timestamp()
	if t < s.lastPopped {
		panic(fmt.Sprintf("causality violation: scheduling %T at t=%v before current clock t=%v", ev, t, s.lastPopped))
	}
	heap.Push(&s.heap, scheduledEvent{ev: ev, time: t, seq: s.nextSeq})
	s.nextSeq++
}

// Pop removes and returns the event with the minimum (timestamp, sequence)
// key. The second return value is false when no events remain.
func (s *EventScheduler) Pop() (Event, bool) {
	if len(s.heap) == 0 {
		return nil, false
	}
	item := heap.Pop(&s.heap).(scheduledEvent)
	s.lastPopped = item.time
	return item.ev, true
}

// Len returns the number of pending events.
func (s *EventScheduler) Len() int {
	return len(s.heap)
}
