package engine

import (
	"errors"
	"fmt"

	"github.com/inference-sim/pdevs/devs"
	"github.com/inference-sim/pdevs/devs/trace"
)

// self stands for the enclosing coupled model in a link.
const self = -1

// link is a coupling resolved against a coordinator's children.
type link struct {
	kind     devs.CouplingKind
	from     int // child index, or self for EIC
	fromPort devs.Port
	to       int // child index, or self for EOC
	toPort   devs.Port
}

// router carries what the routing functions need to report firings.
type router struct {
	coupled string
	names   []string
	opts    options
}

// routeExternalInput appends the coordinator's input bag to its children's
// inboxes along the EIC table.
func routeExternalInput(t devs.Time, eic []link, in *devs.Bag, children []Engine, r *router) {
	for _, l := range eic {
		r.fire(t, l, in, children[l.to].Inbox())
	}
}

// routeInternal appends children's outboxes to other children's inboxes
// along the IC table.
func routeInternal(t devs.Time, ic []link, children []Engine, r *router) {
	for _, l := range ic {
		r.fire(t, l, children[l.from].Outbox(), children[l.to].Inbox())
	}
}

// collectExternalOutput appends children's outboxes to the coordinator's own
// output bag along the EOC table.
func collectExternalOutput(t devs.Time, eoc []link, children []Engine, out *devs.Bag, r *router) {
	for _, l := range eoc {
		r.fire(t, l, children[l.from].Outbox(), out)
	}
}

// fire copies one source sequence onto the end of one destination sequence.
// Empty sources do not fire.
func (r *router) fire(t devs.Time, l link, src, dst *devs.Bag) {
	msgs := src.Peek(l.fromPort)
	if len(msgs) == 0 {
		return
	}
	dst.Add(l.toPort, msgs...)

	if r.opts.trace.RoutingEnabled() {
		r.opts.trace.RecordRouting(trace.RoutingRecord{
			Clock:     int64(t),
			Coupled:   r.coupled,
			Kind:      string(l.kind),
			FromModel: r.model(l.from),
			FromPort:  l.fromPort.Name,
			ToModel:   r.model(l.to),
			ToPort:    l.toPort.Name,
			Messages:  len(msgs),
		})
	}
	devs.Emit(r.opts.logger, devs.CategoryMessageRouting, func() string {
		return r.describe(l, msgs, dst.Peek(l.toPort))
	})
}

func (r *router) model(idx int) string {
	if idx == self {
		return ""
	}
	return r.names[idx]
}

func (r *router) describe(l link, from, to []devs.Message) string {
	switch l.kind {
	case devs.KindEIC:
		return fmt.Sprintf("in port %s of model %s has %s routed from %s with messages %s",
			l.toPort.Name, r.names[l.to], devs.Implode(to), l.fromPort.Name, devs.Implode(from))
	case devs.KindEOC:
		return fmt.Sprintf("in port %s has %s routed from %s of model %s with messages %s",
			l.toPort.Name, devs.Implode(to), l.fromPort.Name, r.names[l.from], devs.Implode(from))
	default:
		return fmt.Sprintf("in port %s of model %s has %s routed from %s of model %s with messages %s",
			l.toPort.Name, r.names[l.to], devs.Implode(to), l.fromPort.Name, r.names[l.from], devs.Implode(from))
	}
}

// resolve turns the coupled model's tables into links. Every unresolvable
// edge is reported; the returned error joins them.
func resolve(m devs.Coupled, index map[string]int, children []devs.Model) (eic, ic, eoc []link, err error) {
	var errs []error
	fail := func(kind devs.CouplingKind, c devs.Coupling, cause error) {
		errs = append(errs, &devs.CouplingError{Coupled: m.Name(), Kind: kind, Coupling: c, Err: cause})
	}

	for _, c := range m.EIC() {
		from, ferr := findPort(m.InPorts(), c.FromPort, "input of "+m.Name())
		to, idx, terr := childPort(index, children, c.ToModel, c.ToPort, true)
		if e := firstErr(ferr, terr, compatible(from, to)); e != nil {
			fail(devs.KindEIC, c, e)
			continue
		}
		eic = append(eic, link{kind: devs.KindEIC, from: self, fromPort: from, to: idx, toPort: to})
	}

	for _, c := range m.IC() {
		if c.FromModel == c.ToModel && c.FromModel != "" {
			fail(devs.KindIC, c, devs.ErrSelfCoupling)
			continue
		}
		from, fidx, ferr := childPort(index, children, c.FromModel, c.FromPort, false)
		to, tidx, terr := childPort(index, children, c.ToModel, c.ToPort, true)
		if e := firstErr(ferr, terr, compatible(from, to)); e != nil {
			fail(devs.KindIC, c, e)
			continue
		}
		ic = append(ic, link{kind: devs.KindIC, from: fidx, fromPort: from, to: tidx, toPort: to})
	}

	for _, c := range m.EOC() {
		from, idx, ferr := childPort(index, children, c.FromModel, c.FromPort, false)
		to, terr := findPort(m.OutPorts(), c.ToPort, "output of "+m.Name())
		if e := firstErr(ferr, terr, compatible(from, to)); e != nil {
			fail(devs.KindEOC, c, e)
			continue
		}
		eoc = append(eoc, link{kind: devs.KindEOC, from: idx, fromPort: from, to: self, toPort: to})
	}
	return eic, ic, eoc, errors.Join(errs...)
}

// childPort finds a declared port of the named child.
func childPort(index map[string]int, children []devs.Model, model string, p devs.Port, input bool) (devs.Port, int, error) {
	idx, ok := index[model]
	if !ok {
		return devs.Port{}, 0, fmt.Errorf("%q: %w", model, devs.ErrUnknownModel)
	}
	if input {
		port, err := findPort(children[idx].InPorts(), p, "input of "+model)
		return port, idx, err
	}
	port, err := findPort(children[idx].OutPorts(), p, "output of "+model)
	return port, idx, err
}

// findPort matches p by name among declared ports. A typed reference must
// agree with the declared type.
func findPort(declared []devs.Port, p devs.Port, where string) (devs.Port, error) {
	for _, d := range declared {
		if d.Name != p.Name {
			continue
		}
		if p.Type != nil && d.Type != nil && p.Type != d.Type {
			return devs.Port{}, fmt.Errorf("%s %q declared as %s, referenced as %s: %w",
				where, p.Name, d.Type, p.Type, devs.ErrPortType)
		}
		return d, nil
	}
	return devs.Port{}, fmt.Errorf("%s %q: %w", where, p.Name, devs.ErrUnknownPort)
}

func compatible(from, to devs.Port) error {
	if to.Accepts(from) {
		return nil
	}
	return fmt.Errorf("%s carries %s, %s expects %s: %w", from.Name, from.Type, to.Name, to.Type, devs.ErrPortType)
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
