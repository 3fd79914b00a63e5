package cmd

import (
	"bytes"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/sebdah/goldie/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestRunSimulation_DefaultConfig_RunsUntilPassive(t *testing.T) {
	// GIVEN the default frame: a job every 10 ticks, 5 ticks of service, 100 observed
	cfg := DefaultRunConfig()

	// WHEN run
	report, err := runSimulation(cfg, quietLogger())
	require.NoError(t, err)

	// THEN the last job generated at t=100 completes at t=105 and the frame stops
	assert.Equal(t, int64(105), report.EndTime)
	assert.Equal(t, 22, report.Cycles, "one cycle every 5 ticks from 0 through 105")
	assert.Equal(t, 11, report.JobsSent)
	assert.Equal(t, 11, report.JobsDone)
	assert.Equal(t, 0, report.JobsQueued)
	assert.Equal(t, 11, report.Outputs)
	assert.Equal(t, 11, report.Solved)
	assert.InDelta(t, 5.0, report.AvgTurnaround, 1e-9)
	assert.Nil(t, report.Trace)
	_, err = uuid.Parse(report.RunID)
	assert.NoError(t, err, "every run is tagged with a fresh id")
}

func TestRunSimulation_MaxCycles_StopsEarly(t *testing.T) {
	cfg := DefaultRunConfig()
	cfg.MaxCycles = 3

	report, err := runSimulation(cfg, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, int64(10), report.EndTime)
	assert.Equal(t, 3, report.Cycles)
	assert.Equal(t, 2, report.JobsSent)
	assert.Equal(t, 1, report.JobsDone)
}

func TestRunSimulation_InjectedInputsAndTrace(t *testing.T) {
	// GIVEN a generator that stays quiet within the horizon and one injected job
	cfg := DefaultRunConfig()
	cfg.Horizon = 50
	cfg.Generator.FirstJob = 1000
	cfg.TraceLevel = "full"
	cfg.Inputs = []InputConfig{{Time: 3, ID: 42}}

	report, err := runSimulation(cfg, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, 0, report.JobsSent)
	assert.Equal(t, 1, report.JobsDone)
	assert.Equal(t, 1, report.Solved)
	require.NotNil(t, report.Trace)
	assert.Equal(t, 2, report.Trace.MessagesByKind["EIC"], "efp.in into proc, then ef.in into transd")
	assert.Positive(t, report.Trace.TotalRoutings)
}

func TestReport_Print(t *testing.T) {
	var buf bytes.Buffer
	r := &Report{EndTime: 42, Cycles: 3}

	require.NoError(t, r.Print(&buf))

	assert.Contains(t, buf.String(), "=== Simulation Report ===")
	assert.Contains(t, buf.String(), `"end_time": 42`)
	assert.NotContains(t, buf.String(), `"trace"`)
}

func TestReport_Print_MatchesGolden(t *testing.T) {
	var buf bytes.Buffer
	r := &Report{
		RunID:         uuid.Nil.String(),
		EndTime:       105,
		Cycles:        22,
		JobsSent:      11,
		JobsDone:      11,
		Outputs:       11,
		Arrived:       11,
		Solved:        11,
		AvgTurnaround: 5,
		Throughput:    0.125,
	}

	require.NoError(t, r.Print(&buf))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "report", buf.Bytes())
}

func TestRunCommand_FlagsOverrideDefaults(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"run", "--max-cycles", "3", "--log", "error"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, buf.String(), "=== Simulation Report ===")
	assert.Contains(t, buf.String(), `"cycles": 3`)
}
