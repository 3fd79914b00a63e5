package models

import (
	"github.com/inference-sim/pdevs/devs"
)

// Call is one protocol call received by a Recorder.
type Call struct {
	Kind    string // "internal", "external", "confluent" or "output"
	Elapsed devs.Time
	Inputs  []devs.Message
}

// Recorder is an atomic model with a fixed sequence of time advances. It
// records every call, emits Emit on Out at each internal event, and
// accepts anything on In.
type Recorder struct {
	name     string
	In       devs.Port
	Out      devs.Port
	Advances []devs.Time // consumed one per transition; the last one repeats
	Emit     []devs.Message
	Calls    []Call
	Fail     error // returned from the next transition when set
	step     int
}

// NewRecorder creates a recorder whose time advances follow advances.
// An empty list means passive.
func NewRecorder(name string, advances ...devs.Time) *Recorder {
	return &Recorder{
		name:     name,
		In:       devs.Untyped("in"),
		Out:      devs.Untyped("out"),
		Advances: advances,
	}
}

func (r *Recorder) Name() string          { return r.name }
func (r *Recorder) InPorts() []devs.Port  { return []devs.Port{r.In} }
func (r *Recorder) OutPorts() []devs.Port { return []devs.Port{r.Out} }

// Count returns how many calls of kind were received.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

func (r *Recorder) TimeAdvance() devs.Time {
	if len(r.Advances) == 0 {
		return devs.Infinity
	}
	return r.Advances[min(r.step, len(r.Advances)-1)]
}

func (r *Recorder) Output() (*devs.Bag, error) {
	r.Calls = append(r.Calls, Call{Kind: "output"})
	out := devs.NewBag()
	if len(r.Emit) > 0 {
		out.Add(r.Out, r.Emit...)
	}
	return out, nil
}

func (r *Recorder) InternalTransition() error {
	return r.transition(Call{Kind: "internal"})
}

func (r *Recorder) ExternalTransition(elapsed devs.Time, in *devs.Bag) error {
	return r.transition(Call{Kind: "external", Elapsed: elapsed, Inputs: inputs(in)})
}

func (r *Recorder) ConfluentTransition(in *devs.Bag) error {
	return r.transition(Call{Kind: "confluent", Inputs: inputs(in)})
}

func (r *Recorder) transition(c Call) error {
	if r.Fail != nil {
		return r.Fail
	}
	r.Calls = append(r.Calls, c)
	r.step++
	return nil
}

func inputs(in *devs.Bag) []devs.Message {
	var msgs []devs.Message
	for _, p := range in.Ports() {
		msgs = append(msgs, in.Peek(p)...)
	}
	return msgs
}
