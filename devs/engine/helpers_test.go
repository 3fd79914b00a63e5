package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inference-sim/pdevs/devs"
	"github.com/inference-sim/pdevs/devs/models"
)

var (
	topIn  = devs.Untyped("in")
	topOut = devs.Untyped("out")
)

// pair builds top{A, B} with B.out → A.in.
// A advances every 5 ticks, B every 3 and emits "ping".
func pair(t *testing.T, opts ...Option) (*Coordinator, *models.Recorder, *models.Recorder) {
	t.Helper()
	a := models.NewRecorder("A", 5)
	b := models.NewRecorder("B", 3)
	b.Emit = []devs.Message{"ping"}
	top := devs.NewCoupled("top", []devs.Port{topIn}, []devs.Port{topOut}).
		AddComponents(a, b).
		AddIC("B", b.Out, "A", a.In).
		AddEOC("B", b.Out, topOut)
	root, err := NewCoordinator(top, opts...)
	require.NoError(t, err)
	return root, a, b
}

// cycle runs one full collect/route/advance cycle at t.
func cycle(t *testing.T, root *Coordinator, at devs.Time, in *devs.Bag) {
	t.Helper()
	if root.Next() == at {
		require.NoError(t, root.CollectOutputs(at))
	}
	require.NoError(t, root.Route(at, in))
	require.NoError(t, root.Advance(at))
}

type captureLogger struct {
	lines map[devs.Category][]string
}

func newCaptureLogger() *captureLogger {
	return &captureLogger{lines: make(map[devs.Category][]string)}
}

func (c *captureLogger) Enabled(devs.Category) bool { return true }

func (c *captureLogger) Log(cat devs.Category, msg func() string) {
	c.lines[cat] = append(c.lines[cat], msg())
}
