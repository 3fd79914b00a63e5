package engine

import "github.com/inference-sim/pdevs/devs"

// MinNext returns the earliest Next over engines, or devs.Infinity when
// there are none. Ties resolve to the lowest index, i.e. declaration order.
func MinNext(engines []Engine) devs.Time {
	next := devs.Infinity
	for _, e := range engines {
		if t := e.Next(); t < next {
			next = t
		}
	}
	return next
}

// Imminent returns the indices of the engines scheduled at t, in declaration order.
func Imminent(engines []Engine, t devs.Time) []int {
	var idx []int
	for i, e := range engines {
		if e.Next() == t {
			idx = append(idx, i)
		}
	}
	return idx
}

// active reports whether e takes part in the cycle at t: it is imminent or
// has received input.
func active(e Engine, t devs.Time) bool {
	return e.Next() == t || !e.Inbox().Empty()
}
