package engine

import (
	"fmt"

	"github.com/inference-sim/pdevs/devs"
)

// Coordinator runs the coupled simulation protocol for one coupled model.
// Its children are owned in the model's declaration order, which is also the
// order used for tie-breaking and for visiting children in every phase.
type Coordinator struct {
	model    devs.Coupled
	children []Engine
	index    map[string]int
	eic      []link
	ic       []link
	eoc      []link
	router   *router

	inbox     *devs.Bag
	outbox    *devs.Bag
	last      devs.Time
	next      devs.Time
	collected bool
	routed    bool
	opts      options
}

// NewCoordinator builds the engine tree under m and resolves every coupling.
// Any structural problem anywhere in the hierarchy is returned here.
func NewCoordinator(m devs.Coupled, opts ...Option) (*Coordinator, error) {
	b := &builder{opts: newOptions(opts), seen: make(map[devs.Model]bool)}
	if m == nil {
		return nil, fmt.Errorf("nil coupled model: %w", devs.ErrUnsupportedModel)
	}
	if err := b.claim(m); err != nil {
		return nil, err
	}
	return b.coordinator(m)
}

func (b *builder) coordinator(m devs.Coupled) (*Coordinator, error) {
	components := m.Components()
	index := make(map[string]int, len(components))
	children := make([]Engine, 0, len(components))
	names := make([]string, 0, len(components))
	for i, child := range components {
		if child == nil {
			return nil, fmt.Errorf("coupled model %q: component %d: %w", m.Name(), i, devs.ErrUnsupportedModel)
		}
		if _, dup := index[child.Name()]; dup {
			return nil, fmt.Errorf("coupled model %q: component %q: %w", m.Name(), child.Name(), devs.ErrDuplicateModel)
		}
		e, err := b.build(child)
		if err != nil {
			return nil, fmt.Errorf("coupled model %q: %w", m.Name(), err)
		}
		index[child.Name()] = i
		children = append(children, e)
		names = append(names, child.Name())
	}

	eic, ic, eoc, err := resolve(m, index, components)
	if err != nil {
		return nil, err
	}

	return &Coordinator{
		model:    m,
		children: children,
		index:    index,
		eic:      eic,
		ic:       ic,
		eoc:      eoc,
		router:   &router{coupled: m.Name(), names: names, opts: b.opts},
		inbox:    devs.NewBag(),
		outbox:   devs.NewBag(),
		next:     devs.Infinity,
		opts:     b.opts,
	}, nil
}

func (c *Coordinator) isEngine() {}

func (c *Coordinator) Model() devs.Model { return c.model }
func (c *Coordinator) Last() devs.Time   { return c.last }
func (c *Coordinator) Inbox() *devs.Bag  { return c.inbox }
func (c *Coordinator) Outbox() *devs.Bag { return c.outbox }

// Next is the minimum Next over the children, Infinity when there are none.
func (c *Coordinator) Next() devs.Time { return c.next }

// Children returns the child engines in declaration order.
func (c *Coordinator) Children() []Engine { return c.children }

// EngineByModel returns the child engine wrapping the model named name.
func (c *Coordinator) EngineByModel(name string) (Engine, bool) {
	idx, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return c.children[idx], true
}

// Init initializes every child at t.
func (c *Coordinator) Init(t devs.Time) error {
	devs.Emit(c.opts.logger, devs.CategoryInfo, func() string {
		return fmt.Sprintf("Preparing coupled model %s for simulation", c.model.Name())
	})
	for _, child := range c.children {
		if err := child.Init(t); err != nil {
			return err
		}
	}
	c.inbox.Clear()
	c.outbox.Clear()
	c.collected, c.routed = false, false
	c.last = t
	c.next = MinNext(c.children)
	return nil
}

// CollectOutputs asks every imminent child for its outputs and gathers
// what the EOC table exports into this coordinator's outbox.
func (c *Coordinator) CollectOutputs(t devs.Time) error {
	if t != c.next {
		return c.violation("collect outputs", t, "not at the scheduled event time")
	}
	for _, idx := range Imminent(c.children, t) {
		if err := c.children[idx].CollectOutputs(t); err != nil {
			return err
		}
	}
	c.outbox.Clear()
	collectExternalOutput(t, c.eoc, c.children, c.outbox, c.router)
	c.collected = true
	return nil
}

// Route delivers in (which may be nil) through the EIC table, then
// children's outputs through the IC table, then recurses into every active
// child coordinator. It must run exactly once per cycle, after
// CollectOutputs and before Advance.
func (c *Coordinator) Route(t devs.Time, in *devs.Bag) error {
	if c.routed {
		return c.violation("route", t, "messages already routed in this cycle")
	}
	if t < c.last || t > c.next {
		return c.violation("route", t, "outside the current cycle")
	}
	if t == c.next && !c.collected {
		return c.violation("route", t, "imminent outputs were not collected")
	}
	c.inbox.Merge(in)
	routeExternalInput(t, c.eic, c.inbox, c.children, c.router)
	routeInternal(t, c.ic, c.children, c.router)
	for _, child := range c.children {
		sub, ok := child.(*Coordinator)
		if !ok || !active(sub, t) {
			continue
		}
		if err := sub.Route(t, nil); err != nil {
			return err
		}
	}
	c.routed = true
	return nil
}

// Advance lets every active child run its transition at t and reschedules.
func (c *Coordinator) Advance(t devs.Time) error {
	if !c.routed {
		return c.violation("advance", t, "transition before routing")
	}
	if t > c.next {
		return c.violation("advance", t, "scheduled event was skipped")
	}
	if t != c.next && c.inbox.Empty() {
		return c.violation("advance", t, "neither imminent nor receiving input")
	}
	for _, child := range c.children {
		if !active(child, t) {
			continue
		}
		if err := child.Advance(t); err != nil {
			return err
		}
	}
	c.inbox.Clear()
	c.outbox.Clear()
	c.collected, c.routed = false, false
	c.last = t
	c.next = MinNext(c.children)
	return nil
}

func (c *Coordinator) violation(op string, t devs.Time, reason string) error {
	return &devs.ProtocolError{Engine: c.model.Name(), Op: op, T: t, Last: c.last, Next: c.next, Reason: reason}
}
