package models

import (
	"fmt"

	"github.com/inference-sim/pdevs/devs"
)

// Generator emits a Job every Period ticks until stopped or until MaxJobs
// jobs have been sent (0 means no limit).
type Generator struct {
	name    string
	Period  devs.Time
	MaxJobs int

	Stop devs.TypedPort[bool]
	Out  devs.TypedPort[Job]

	clock  devs.Time
	sigma  devs.Time
	sent   int
	active bool
}

// NewGenerator creates a generator whose first job leaves after firstJob ticks.
func NewGenerator(name string, period, firstJob devs.Time, maxJobs int) *Generator {
	return &Generator{
		name:    name,
		Period:  period,
		MaxJobs: maxJobs,
		Stop:    devs.PortOf[bool]("stop"),
		Out:     devs.PortOf[Job]("out"),
		sigma:   firstJob,
		active:  true,
	}
}

func (g *Generator) Name() string          { return g.name }
func (g *Generator) InPorts() []devs.Port  { return []devs.Port{g.Stop.Port} }
func (g *Generator) OutPorts() []devs.Port { return []devs.Port{g.Out.Port} }

// Sent returns how many jobs have been emitted.
func (g *Generator) Sent() int { return g.sent }

func (g *Generator) TimeAdvance() devs.Time {
	if !g.active {
		return devs.Infinity
	}
	return g.sigma
}

func (g *Generator) Output() (*devs.Bag, error) {
	out := devs.NewBag()
	g.Out.Add(out, Job{ID: g.sent, Created: g.clock.Add(g.sigma)})
	return out, nil
}

func (g *Generator) InternalTransition() error {
	g.clock = g.clock.Add(g.sigma)
	g.sent++
	g.sigma = g.Period
	if g.MaxJobs > 0 && g.sent >= g.MaxJobs {
		g.active = false
	}
	return nil
}

func (g *Generator) ExternalTransition(elapsed devs.Time, in *devs.Bag) error {
	g.clock = g.clock.Add(elapsed)
	if g.active {
		g.sigma -= elapsed
	}
	for _, stop := range g.Stop.Get(in) {
		if stop {
			g.active = false
		}
	}
	return nil
}

func (g *Generator) ConfluentTransition(in *devs.Bag) error {
	if err := g.InternalTransition(); err != nil {
		return err
	}
	return g.ExternalTransition(0, in)
}

func (g *Generator) String() string {
	return fmt.Sprintf("{sent=%d active=%t sigma=%s}", g.sent, g.active, g.sigma)
}
