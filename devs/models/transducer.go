package models

import (
	"fmt"

	"github.com/inference-sim/pdevs/devs"
)

// Transducer observes arrivals and completions for ObservationTime ticks,
// then sends stop once and goes passive.
type Transducer struct {
	name            string
	ObservationTime devs.Time

	Arrived devs.TypedPort[Job]
	Solved  devs.TypedPort[Job]
	Stop    devs.TypedPort[bool]

	clock      devs.Time
	sigma      devs.Time
	arrivals   map[int]devs.Time
	solved     int
	turnaround devs.Time
}

// NewTransducer creates a transducer with an observation window of obs ticks.
func NewTransducer(name string, obs devs.Time) *Transducer {
	return &Transducer{
		name:            name,
		ObservationTime: obs,
		Arrived:         devs.PortOf[Job]("arrived"),
		Solved:          devs.PortOf[Job]("solved"),
		Stop:            devs.PortOf[bool]("stop"),
		sigma:           obs,
		arrivals:        make(map[int]devs.Time),
	}
}

func (tr *Transducer) Name() string { return tr.name }
func (tr *Transducer) InPorts() []devs.Port {
	return []devs.Port{tr.Arrived.Port, tr.Solved.Port}
}
func (tr *Transducer) OutPorts() []devs.Port { return []devs.Port{tr.Stop.Port} }

// Stats summarizes what the transducer observed.
type Stats struct {
	Arrived       int
	Solved        int
	AvgTurnaround float64
	Throughput    float64 // solved jobs per tick of observed time
}

// Stats returns the measurements so far.
func (tr *Transducer) Stats() Stats {
	s := Stats{Arrived: len(tr.arrivals), Solved: tr.solved}
	if tr.solved > 0 {
		s.AvgTurnaround = float64(tr.turnaround) / float64(tr.solved)
	}
	if tr.clock > 0 {
		s.Throughput = float64(tr.solved) / float64(tr.clock)
	}
	return s
}

func (tr *Transducer) TimeAdvance() devs.Time { return tr.sigma }

func (tr *Transducer) Output() (*devs.Bag, error) {
	out := devs.NewBag()
	tr.Stop.Add(out, true)
	return out, nil
}

func (tr *Transducer) InternalTransition() error {
	tr.clock = tr.clock.Add(tr.sigma)
	tr.sigma = devs.Infinity
	return nil
}

func (tr *Transducer) ExternalTransition(elapsed devs.Time, in *devs.Bag) error {
	tr.clock = tr.clock.Add(elapsed)
	if !tr.sigma.IsInfinite() {
		tr.sigma -= elapsed
	}
	tr.observe(in)
	return nil
}

func (tr *Transducer) ConfluentTransition(in *devs.Bag) error {
	if err := tr.InternalTransition(); err != nil {
		return err
	}
	tr.observe(in)
	return nil
}

func (tr *Transducer) observe(in *devs.Bag) {
	for _, j := range tr.Arrived.Get(in) {
		tr.arrivals[j.ID] = tr.clock
	}
	for _, j := range tr.Solved.Get(in) {
		tr.solved++
		if at, ok := tr.arrivals[j.ID]; ok {
			tr.turnaround += tr.clock - at
		}
	}
}

func (tr *Transducer) String() string {
	return fmt.Sprintf("{arrived=%d solved=%d sigma=%s}", len(tr.arrivals), tr.solved, tr.sigma)
}
