package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/pdevs/devs"
)

func stop(p devs.TypedPort[bool], v bool) *devs.Bag {
	b := devs.NewBag()
	p.Add(b, v)
	return b
}

func TestGenerator_EmitsPeriodicallyUntilMaxJobs(t *testing.T) {
	g := NewGenerator("genr", 10, 1, 2)
	assert.Equal(t, devs.Time(1), g.TimeAdvance())

	out, err := g.Output()
	require.NoError(t, err)
	assert.Equal(t, []Job{{ID: 0, Created: 1}}, g.Out.Get(out))
	require.NoError(t, g.InternalTransition())
	assert.Equal(t, devs.Time(10), g.TimeAdvance())

	// an unrelated input does not reset the period
	require.NoError(t, g.ExternalTransition(4, stop(g.Stop, false)))
	assert.Equal(t, devs.Time(6), g.TimeAdvance())

	out, err = g.Output()
	require.NoError(t, err)
	assert.Equal(t, []Job{{ID: 1, Created: 11}}, g.Out.Get(out))
	require.NoError(t, g.InternalTransition())

	assert.Equal(t, 2, g.Sent())
	assert.Equal(t, devs.Infinity, g.TimeAdvance(), "passive after MaxJobs")
}

func TestGenerator_StopGoesPassive(t *testing.T) {
	g := NewGenerator("genr", 10, 0, 0)

	require.NoError(t, g.ExternalTransition(0, stop(g.Stop, true)))

	assert.Equal(t, devs.Infinity, g.TimeAdvance())
	assert.Equal(t, "{sent=0 active=false sigma=0}", g.String())
}
