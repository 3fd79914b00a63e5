package engine

import (
	"fmt"

	"github.com/inference-sim/pdevs/devs"
)

// Output is what the root coordinator exported at one event time.
type Output struct {
	Time devs.Time
	Bag  *devs.Bag
}

// Runner is a reference driver for a root coordinator. It repeats the
// collect → route → advance cycle in non-decreasing time order and merges
// externally injected input into the cycles it falls on.
//
// Thread-safety: NOT thread-safe. All methods must be called from the same goroutine.
type Runner struct {
	root        *Coordinator
	inputs      *inputHeap
	nextSeq     uint64
	clock       devs.Time
	initialized bool
	cycles      int
	outputs     []Output
	opts        options
}

// NewRunner creates a runner for root. Call Init before stepping.
func NewRunner(root *Coordinator, opts ...Option) *Runner {
	return &Runner{
		root:   root,
		inputs: newInputHeap(),
		opts:   newOptions(opts),
	}
}

// Init initializes the whole engine tree at t. Inputs injected earlier
// must not fall before t.
func (r *Runner) Init(t devs.Time) error {
	if first := r.inputs.peekTime(); first < t {
		return fmt.Errorf("input at t=%s is before the initial time %s", first, t)
	}
	if err := r.root.Init(t); err != nil {
		return err
	}
	r.clock = t
	r.initialized = true
	return nil
}

// Inject schedules msgs on the root's input port p at time t. Injecting no
// messages schedules nothing.
func (r *Runner) Inject(t devs.Time, p devs.Port, msgs ...devs.Message) error {
	if r.initialized && t < r.clock {
		return fmt.Errorf("input at t=%s is before the current time %s", t, r.clock)
	}
	if t.IsInfinite() {
		return fmt.Errorf("input on port %q scheduled at infinity", p.Name)
	}
	port, err := findPort(r.root.model.InPorts(), p, "input of "+r.root.model.Name())
	if err != nil {
		return err
	}
	if len(msgs) == 0 {
		return nil
	}
	r.nextSeq++
	r.inputs.schedule(inputEvent{time: t, seq: r.nextSeq, port: port, msgs: msgs})
	return nil
}

// NextTime is the time of the next cycle: the earlier of the root's next
// internal event and the next injected input.
func (r *Runner) NextTime() devs.Time {
	return devs.MinTime(r.root.Next(), r.inputs.peekTime())
}

// Clock returns the time of the last completed cycle.
func (r *Runner) Clock() devs.Time { return r.clock }

// Cycles returns how many cycles have run.
func (r *Runner) Cycles() int { return r.cycles }

// Outputs returns everything the root exported, in time order.
func (r *Runner) Outputs() []Output { return r.outputs }

// Step runs one full cycle and returns its time. When nothing is pending it
// returns Infinity without touching the tree.
func (r *Runner) Step() (devs.Time, error) {
	if !r.initialized {
		return r.clock, fmt.Errorf("runner stepped before Init")
	}
	t := r.NextTime()
	if t.IsInfinite() {
		return t, nil
	}
	devs.Emit(r.opts.logger, devs.CategoryGlobalTime, func() string {
		return fmt.Sprintf("[tick %s] cycle %d", t, r.cycles)
	})

	if r.root.Next() == t {
		if err := r.root.CollectOutputs(t); err != nil {
			return t, err
		}
		if !r.root.Outbox().Empty() {
			out := r.root.Outbox().Clone()
			r.outputs = append(r.outputs, Output{Time: t, Bag: out})
			devs.Emit(r.opts.logger, devs.CategoryMessages, func() string {
				return fmt.Sprintf("[tick %s] outputs %s", t, out)
			})
		}
	}
	if err := r.root.Route(t, r.inputs.drain(t)); err != nil {
		return t, err
	}
	if err := r.root.Advance(t); err != nil {
		return t, err
	}
	r.clock = t
	r.cycles++
	return t, nil
}

// RunUntil runs cycles while the next one falls at or before horizon.
// It returns the time of the last cycle run.
func (r *Runner) RunUntil(horizon devs.Time) (devs.Time, error) {
	for {
		next := r.NextTime()
		if next.IsInfinite() || next > horizon {
			return r.clock, nil
		}
		if _, err := r.Step(); err != nil {
			return r.clock, err
		}
	}
}

// RunUntilPassive runs until nothing is pending or maxCycles cycles have
// run in this call. A zero or negative maxCycles means no limit.
func (r *Runner) RunUntilPassive(maxCycles int) (devs.Time, error) {
	for n := 0; maxCycles <= 0 || n < maxCycles; n++ {
		if r.NextTime().IsInfinite() {
			break
		}
		if _, err := r.Step(); err != nil {
			return r.clock, err
		}
	}
	return r.clock, nil
}
