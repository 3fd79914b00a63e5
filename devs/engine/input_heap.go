package engine

import (
	"container/heap"

	"github.com/inference-sim/pdevs/devs"
)

// inputEvent is external input scheduled for the root coordinator.
type inputEvent struct {
	time devs.Time
	seq  uint64
	port devs.Port
	msgs []devs.Message
}

// inputHeap implements a priority queue with deterministic ordering
// Ordering: timestamp → insertion sequence
type inputHeap struct {
	events []inputEvent
}

func newInputHeap() *inputHeap {
	h := &inputHeap{events: make([]inputEvent, 0)}
	heap.Init(h)
	return h
}

// Len implements heap.Interface
func (h *inputHeap) Len() int {
	return len(h.events)
}

// Less implements heap.Interface with deterministic ordering
func (h *inputHeap) Less(i, j int) bool {
	ei, ej := h.events[i], h.events[j]
	if ei.time != ej.time {
		return ei.time < ej.time
	}
	return ei.seq < ej.seq
}

// Swap implements heap.Interface
func (h *inputHeap) Swap(i, j int) {
	h.events[i], h.events[j] = h.events[j], h.events[i]
}

// Push implements heap.Interface
func (h *inputHeap) Push(x any) {
	h.events = append(h.events, x.(inputEvent))
}

// Pop implements heap.Interface
func (h *inputHeap) Pop() any {
	old := h.events
	n := len(old)
	item := old[n-1]
	h.events = old[0 : n-1]
	return item
}

// schedule adds an input to the heap
func (h *inputHeap) schedule(ev inputEvent) {
	heap.Push(h, ev)
}

// peekTime returns the time of the earliest input, or Infinity.
func (h *inputHeap) peekTime() devs.Time {
	if h.Len() == 0 {
		return devs.Infinity
	}
	return h.events[0].time
}

// drain pops every input scheduled at t into one bag, in insertion order.
func (h *inputHeap) drain(t devs.Time) *devs.Bag {
	bag := devs.NewBag()
	for h.Len() > 0 && h.events[0].time == t {
		ev := heap.Pop(h).(inputEvent)
		bag.Add(ev.port, ev.msgs...)
	}
	return bag
}
