package engine

import (
	"fmt"

	"github.com/inference-sim/pdevs/devs"
	"github.com/inference-sim/pdevs/devs/trace"
)

// Simulator runs the atomic simulation protocol for one atomic model.
//
// Per cycle it moves idle → outputs-collected (only when imminent) → idle;
// Advance dispatches to exactly one of the internal, external or confluent
// transitions and then clears both bags.
type Simulator struct {
	model     devs.Atomic
	inbox     *devs.Bag
	outbox    *devs.Bag
	last      devs.Time
	next      devs.Time
	collected bool
	outPorts  map[devs.Port]bool
	opts      options
}

// NewSimulator wraps an atomic model. The engine must be initialized with
// Init before the first cycle.
func NewSimulator(m devs.Atomic, opts ...Option) *Simulator {
	return newSimulator(m, newOptions(opts))
}

func newSimulator(m devs.Atomic, opts options) *Simulator {
	outPorts := make(map[devs.Port]bool, len(m.OutPorts()))
	for _, p := range m.OutPorts() {
		outPorts[p] = true
	}
	return &Simulator{
		model:    m,
		inbox:    devs.NewBag(),
		outbox:   devs.NewBag(),
		next:     devs.Infinity,
		outPorts: outPorts,
		opts:     opts,
	}
}

func (s *Simulator) isEngine() {}

func (s *Simulator) Model() devs.Model { return s.model }
func (s *Simulator) Next() devs.Time   { return s.next }
func (s *Simulator) Last() devs.Time   { return s.last }
func (s *Simulator) Inbox() *devs.Bag  { return s.inbox }
func (s *Simulator) Outbox() *devs.Bag { return s.outbox }
func (s *Simulator) name() string      { return s.model.Name() }

// Init sets last = t and schedules the first internal event.
func (s *Simulator) Init(t devs.Time) error {
	devs.Emit(s.opts.logger, devs.CategoryInfo, func() string {
		return fmt.Sprintf("Preparing model %s for simulation", s.name())
	})
	s.inbox.Clear()
	s.outbox.Clear()
	s.collected = false
	s.last = t
	if err := s.schedule(t); err != nil {
		return err
	}
	s.logTimes()
	return nil
}

// CollectOutputs evaluates the output function. It is only legal at the
// scheduled event time.
func (s *Simulator) CollectOutputs(t devs.Time) error {
	if t != s.next {
		return s.violation("collect outputs", t, "not at the scheduled event time")
	}
	out, err := s.model.Output()
	if err != nil {
		return fmt.Errorf("model %s: output: %w", s.name(), err)
	}
	s.outbox.Clear()
	if out != nil {
		for _, p := range out.Ports() {
			if len(out.Peek(p)) > 0 && !s.outPorts[p] {
				return fmt.Errorf("model %s: port %q: %w", s.name(), p.Name, devs.ErrUndeclaredOutput)
			}
		}
		s.outbox.Merge(out)
	}
	s.collected = true
	devs.Emit(s.opts.logger, devs.CategoryMessages, func() string {
		return fmt.Sprintf("outputs from model %s: %s", s.name(), s.outbox)
	})
	return nil
}

// Advance runs the single transition the engine owes at t.
func (s *Simulator) Advance(t devs.Time) error {
	if t < s.last {
		return s.violation("advance", t, "time is before the last transition")
	}
	if t > s.next {
		return s.violation("advance", t, "scheduled event was skipped")
	}
	imminent := t == s.next
	hasInput := !s.inbox.Empty()
	if imminent && !s.collected {
		return s.violation("advance", t, "transition before outputs were collected")
	}

	var (
		kind    trace.TransitionKind
		elapsed devs.Time
		err     error
	)
	switch {
	case imminent && !hasInput:
		kind = trace.TransitionInternal
		err = s.model.InternalTransition()
	case imminent && hasInput:
		kind = trace.TransitionConfluent
		err = s.model.ConfluentTransition(s.inbox)
	case hasInput:
		kind = trace.TransitionExternal
		elapsed = t - s.last
		err = s.model.ExternalTransition(elapsed, s.inbox)
	default:
		return s.violation("advance", t, "neither imminent nor receiving input")
	}
	if err != nil {
		return fmt.Errorf("model %s: %s transition: %w", s.name(), kind, err)
	}

	inputs, outputs := s.inbox.Len(), s.outbox.Len()
	s.inbox.Clear()
	s.outbox.Clear()
	s.collected = false
	s.last = t
	if err := s.schedule(t); err != nil {
		return err
	}

	if s.opts.trace.TransitionsEnabled() {
		s.opts.trace.RecordTransition(trace.TransitionRecord{
			Clock:    int64(t),
			Model:    s.name(),
			Kind:     kind,
			Elapsed:  int64(elapsed),
			Inputs:   inputs,
			Outputs:  outputs,
			NextTime: int64(s.next),
		})
	}
	s.logState()
	s.logTimes()
	return nil
}

func (s *Simulator) schedule(t devs.Time) error {
	ta := s.model.TimeAdvance()
	if ta < 0 {
		return fmt.Errorf("model %s: time advance %d: %w", s.name(), ta, devs.ErrNegativeTimeAdvance)
	}
	s.next = t.Add(ta)
	return nil
}

func (s *Simulator) violation(op string, t devs.Time, reason string) error {
	return &devs.ProtocolError{Engine: s.name(), Op: op, T: t, Last: s.last, Next: s.next, Reason: reason}
}

func (s *Simulator) logTimes() {
	devs.Emit(s.opts.logger, devs.CategoryLocalTime, func() string {
		return fmt.Sprintf("model %s: last=%s next=%s", s.name(), s.last, s.next)
	})
}

// logState prints the model when it can describe itself.
func (s *Simulator) logState() {
	str, ok := s.model.(fmt.Stringer)
	if !ok {
		return
	}
	devs.Emit(s.opts.logger, devs.CategoryState, func() string {
		return fmt.Sprintf("state of model %s: %s", s.name(), str.String())
	})
}
