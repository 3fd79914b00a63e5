package engine

import (
	"fmt"
	"reflect"

	"github.com/inference-sim/pdevs/devs"
	"github.com/inference-sim/pdevs/devs/trace"
)

// Engine is either a *Simulator or a *Coordinator. The set is closed.
type Engine interface {
	Model() devs.Model
	Init(t devs.Time) error
	// Next returns the time of the engine's next internal event.
	Next() devs.Time
	// Last returns the time of the engine's last transition.
	Last() devs.Time
	CollectOutputs(t devs.Time) error
	Advance(t devs.Time) error
	// Inbox and Outbox expose the engine's bags for inspection. Only routing
	// inside the owning coordinator may write to them.
	Inbox() *devs.Bag
	Outbox() *devs.Bag

	isEngine()
}

type options struct {
	logger devs.Logger
	trace  *trace.SimulationTrace
}

// Option configures engines and the runner.
type Option func(*options)

// WithLogger sets the log sink. The default discards everything.
func WithLogger(l devs.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithTrace records routing and transitions into st according to its level.
func WithTrace(st *trace.SimulationTrace) Option {
	return func(o *options) { o.trace = st }
}

func newOptions(opts []Option) options {
	o := options{logger: devs.NopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Build wraps m in an engine: a Simulator for atomic models, a Coordinator
// for coupled ones. Every coupling in the hierarchy is resolved here.
func Build(m devs.Model, opts ...Option) (Engine, error) {
	b := &builder{opts: newOptions(opts), seen: make(map[devs.Model]bool)}
	return b.build(m)
}

type builder struct {
	opts options
	seen map[devs.Model]bool
}

func (b *builder) build(m devs.Model) (Engine, error) {
	if m == nil {
		return nil, fmt.Errorf("nil model: %w", devs.ErrUnsupportedModel)
	}
	if err := b.claim(m); err != nil {
		return nil, err
	}
	switch model := m.(type) {
	case devs.Atomic:
		return newSimulator(model, b.opts), nil
	case devs.Coupled:
		return b.coordinator(model)
	default:
		return nil, fmt.Errorf("model %q of type %T: %w", m.Name(), m, devs.ErrUnsupportedModel)
	}
}

// claim records that m has an engine. Each model instance may appear only
// once in a hierarchy; identity is tracked for pointer models.
func (b *builder) claim(m devs.Model) error {
	if reflect.TypeOf(m).Kind() != reflect.Pointer {
		return nil
	}
	if b.seen[m] {
		return fmt.Errorf("model %q used more than once: %w", m.Name(), devs.ErrDuplicateModel)
	}
	b.seen[m] = true
	return nil
}
