package devs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTime_Add_SaturatesAtInfinity(t *testing.T) {
	tests := []struct {
		name string
		t, d Time
		want Time
	}{
		{"finite", 3, 5, 8},
		{"zero duration", 7, 0, 7},
		{"passive duration", 3, Infinity, Infinity},
		{"from infinity", Infinity, 5, Infinity},
		{"overflow", Infinity - 2, 5, Infinity},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.t.Add(tc.d))
		})
	}
}

func TestTime_String_InfinityPrintsInf(t *testing.T) {
	assert.Equal(t, "inf", Infinity.String())
	assert.Equal(t, "42", Time(42).String())
	assert.True(t, Infinity.IsInfinite())
	assert.False(t, Time(0).IsInfinite())
}

func TestMinTime(t *testing.T) {
	assert.Equal(t, Time(3), MinTime(3, 5))
	assert.Equal(t, Time(3), MinTime(Infinity, 3))
}
