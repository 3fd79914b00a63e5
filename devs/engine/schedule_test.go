package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/pdevs/devs"
	"github.com/inference-sim/pdevs/devs/models"
)

func simulators(t *testing.T, advances ...devs.Time) []Engine {
	t.Helper()
	engines := make([]Engine, 0, len(advances))
	for i, ta := range advances {
		sim := NewSimulator(models.NewRecorder(string(rune('a'+i)), ta))
		require.NoError(t, sim.Init(0))
		engines = append(engines, sim)
	}
	return engines
}

func TestMinNext(t *testing.T) {
	assert.Equal(t, devs.Infinity, MinNext(nil))
	assert.Equal(t, devs.Infinity, MinNext(simulators(t, devs.Infinity, devs.Infinity)))
	assert.Equal(t, devs.Time(2), MinNext(simulators(t, 7, 2, devs.Infinity, 2)))
}

func TestImminent_DeclarationOrder(t *testing.T) {
	engines := simulators(t, 4, 2, 4, devs.Infinity, 4)

	assert.Equal(t, []int{0, 2, 4}, Imminent(engines, 4))
	assert.Equal(t, []int{1}, Imminent(engines, 2))
	assert.Empty(t, Imminent(engines, 3))
}

func TestActive(t *testing.T) {
	engines := simulators(t, 4, devs.Infinity)
	passive := engines[1]

	assert.True(t, active(engines[0], 4))
	assert.False(t, active(passive, 4))

	passive.Inbox().Add(devs.Untyped("in"), "x")
	assert.True(t, active(passive, 4))
}
