package models

import (
	"fmt"

	"github.com/inference-sim/pdevs/devs"
)

// Processor serves jobs one at a time in arrival order, ServiceTime ticks each.
type Processor struct {
	name        string
	ServiceTime devs.Time

	In  devs.TypedPort[Job]
	Out devs.TypedPort[Job]

	queue []Job
	sigma devs.Time
	done  int
}

// NewProcessor creates an idle processor.
func NewProcessor(name string, serviceTime devs.Time) *Processor {
	return &Processor{
		name:        name,
		ServiceTime: serviceTime,
		In:          devs.PortOf[Job]("in"),
		Out:         devs.PortOf[Job]("out"),
		sigma:       devs.Infinity,
	}
}

func (p *Processor) Name() string          { return p.name }
func (p *Processor) InPorts() []devs.Port  { return []devs.Port{p.In.Port} }
func (p *Processor) OutPorts() []devs.Port { return []devs.Port{p.Out.Port} }

// Busy reports whether a job is in service.
func (p *Processor) Busy() bool { return len(p.queue) > 0 }

// Queued returns the number of jobs waiting or in service.
func (p *Processor) Queued() int { return len(p.queue) }

// Done returns how many jobs have finished service.
func (p *Processor) Done() int { return p.done }

func (p *Processor) TimeAdvance() devs.Time { return p.sigma }

func (p *Processor) Output() (*devs.Bag, error) {
	out := devs.NewBag()
	if len(p.queue) > 0 {
		p.Out.Add(out, p.queue[0])
	}
	return out, nil
}

func (p *Processor) InternalTransition() error {
	if len(p.queue) == 0 {
		return fmt.Errorf("processor %s: internal transition while idle", p.name)
	}
	p.queue = p.queue[1:]
	p.done++
	if len(p.queue) > 0 {
		p.sigma = p.ServiceTime
	} else {
		p.sigma = devs.Infinity
	}
	return nil
}

func (p *Processor) ExternalTransition(elapsed devs.Time, in *devs.Bag) error {
	if len(p.queue) > 0 {
		p.sigma -= elapsed
	}
	wasIdle := len(p.queue) == 0
	p.queue = append(p.queue, p.In.Get(in)...)
	if wasIdle && len(p.queue) > 0 {
		p.sigma = p.ServiceTime
	}
	return nil
}

func (p *Processor) ConfluentTransition(in *devs.Bag) error {
	if err := p.InternalTransition(); err != nil {
		return err
	}
	return p.ExternalTransition(0, in)
}

func (p *Processor) String() string {
	return fmt.Sprintf("{queued=%d done=%d sigma=%s}", len(p.queue), p.done, p.sigma)
}
