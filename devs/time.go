package devs

import (
	"math"
	"strconv"
)

// Time is simulation time in ticks. Durations (time advance, elapsed time)
// share the same type.
type Time int64

// Infinity marks "no pending event". A passive model returns it from
// TimeAdvance, and a coordinator with nothing scheduled reports it from Next.
const Infinity Time = math.MaxInt64

// IsInfinite reports whether t is the Infinity sentinel.
func (t Time) IsInfinite() bool {
	return t == Infinity
}

// Add returns t+d, saturating at Infinity. Adding to Infinity stays Infinity.
func (t Time) Add(d Time) Time {
	if t == Infinity || d == Infinity {
		return Infinity
	}
	if d > 0 && t > Infinity-d {
		return Infinity
	}
	return t + d
}

func (t Time) String() string {
	if t == Infinity {
		return "inf"
	}
	return strconv.FormatInt(int64(t), 10)
}

// MinTime returns the smaller of a and b.
func MinTime(a, b Time) Time {
	if a < b {
		return a
	}
	return b
}
