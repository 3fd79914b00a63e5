package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/pdevs/devs"
	"github.com/inference-sim/pdevs/devs/engine"
	"github.com/inference-sim/pdevs/devs/models"
	"github.com/inference-sim/pdevs/devs/trace"
)

// Report is the JSON summary printed after a run.
type Report struct {
	RunID         string              `json:"run_id"`
	EndTime       int64               `json:"end_time"`
	Cycles        int                 `json:"cycles"`
	JobsSent      int                 `json:"jobs_sent"`
	JobsDone      int                 `json:"jobs_done"`
	JobsQueued    int                 `json:"jobs_queued"`
	Outputs       int                 `json:"outputs"`
	Arrived       int                 `json:"arrived"`
	Solved        int                 `json:"solved"`
	AvgTurnaround float64             `json:"avg_turnaround"`
	Throughput    float64             `json:"throughput"`
	Trace         *trace.TraceSummary `json:"trace,omitempty"`
}

// runSimulation builds the ef-p model from cfg, drives it to the horizon
// and returns the report.
func runSimulation(cfg RunConfig, logger *logrus.Logger) (*Report, error) {
	runID := uuid.New().String()
	logger.WithField("run_id", runID).Infof("Building ef-p model")
	efp := models.NewEFP(models.EFPConfig{
		Period:          devs.Time(cfg.Generator.Period),
		FirstJob:        devs.Time(cfg.Generator.FirstJob),
		MaxJobs:         cfg.Generator.MaxJobs,
		ServiceTime:     devs.Time(cfg.Processor.ServiceTime),
		ObservationTime: devs.Time(cfg.Transducer.ObservationTime),
	})

	var st *trace.SimulationTrace
	if level := trace.TraceLevel(cfg.TraceLevel); level != "" && level != trace.TraceLevelNone {
		st = trace.NewSimulationTrace(trace.TraceConfig{Level: level})
	}
	opts := []engine.Option{engine.WithLogger(devs.NewLogrusLogger(logger)), engine.WithTrace(st)}

	root, err := engine.NewCoordinator(efp.Model, opts...)
	if err != nil {
		return nil, fmt.Errorf("building engine tree: %w", err)
	}
	runner := engine.NewRunner(root, opts...)
	if err := runner.Init(0); err != nil {
		return nil, err
	}
	for _, in := range cfg.Inputs {
		job := models.Job{ID: in.ID, Created: devs.Time(in.Time)}
		if err := runner.Inject(devs.Time(in.Time), models.EFPIn.Port, job); err != nil {
			return nil, err
		}
	}

	if cfg.MaxCycles > 0 {
		for runner.Cycles() < cfg.MaxCycles {
			next := runner.NextTime()
			if next.IsInfinite() || next > devs.Time(cfg.Horizon) {
				break
			}
			if _, err := runner.Step(); err != nil {
				return nil, err
			}
		}
	} else if _, err := runner.RunUntil(devs.Time(cfg.Horizon)); err != nil {
		return nil, err
	}

	stats := efp.Transducer.Stats()
	report := &Report{
		RunID:         runID,
		EndTime:       int64(runner.Clock()),
		Cycles:        runner.Cycles(),
		JobsSent:      efp.Generator.Sent(),
		JobsDone:      efp.Processor.Done(),
		JobsQueued:    efp.Processor.Queued(),
		Outputs:       len(runner.Outputs()),
		Arrived:       stats.Arrived,
		Solved:        stats.Solved,
		AvgTurnaround: stats.AvgTurnaround,
		Throughput:    stats.Throughput,
	}
	if st != nil {
		report.Trace = trace.Summarize(st)
	}
	return report, nil
}

// Print writes the report as indented JSON.
func (r *Report) Print(w io.Writer) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "=== Simulation Report ===\n%s\n", data)
	return err
}
