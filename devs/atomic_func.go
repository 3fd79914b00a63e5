package devs

// AtomicFuncs are the pure functions describing an atomic model over a
// state of type S. TimeAdvance and Internal are required.
type AtomicFuncs[S any] struct {
	TimeAdvance func(S) Time
	Internal    func(S) S
	External    func(s S, elapsed Time, in *Bag) S
	// Confluent defaults to Internal followed by External with zero elapsed.
	Confluent func(s S, in *Bag) S
	Output    func(S) *Bag
}

// AtomicFunc adapts AtomicFuncs to the Atomic interface.
type AtomicFunc[S any] struct {
	name     string
	inPorts  []Port
	outPorts []Port
	state    S
	funcs    AtomicFuncs[S]
}

// NewAtomicFunc returns an atomic model named name starting in state init.
func NewAtomicFunc[S any](name string, in, out []Port, init S, funcs AtomicFuncs[S]) *AtomicFunc[S] {
	return &AtomicFunc[S]{name: name, inPorts: in, outPorts: out, state: init, funcs: funcs}
}

func (a *AtomicFunc[S]) Name() string     { return a.name }
func (a *AtomicFunc[S]) InPorts() []Port  { return a.inPorts }
func (a *AtomicFunc[S]) OutPorts() []Port { return a.outPorts }

// State returns the current state.
func (a *AtomicFunc[S]) State() S { return a.state }

func (a *AtomicFunc[S]) TimeAdvance() Time {
	return a.funcs.TimeAdvance(a.state)
}

func (a *AtomicFunc[S]) InternalTransition() error {
	a.state = a.funcs.Internal(a.state)
	return nil
}

// ExternalTransition ignores input when no External function was given.
func (a *AtomicFunc[S]) ExternalTransition(elapsed Time, in *Bag) error {
	if a.funcs.External != nil {
		a.state = a.funcs.External(a.state, elapsed, in)
	}
	return nil
}

func (a *AtomicFunc[S]) ConfluentTransition(in *Bag) error {
	if a.funcs.Confluent != nil {
		a.state = a.funcs.Confluent(a.state, in)
		return nil
	}
	a.state = a.funcs.Internal(a.state)
	return a.ExternalTransition(0, in)
}

func (a *AtomicFunc[S]) Output() (*Bag, error) {
	if a.funcs.Output == nil {
		return NewBag(), nil
	}
	out := a.funcs.Output(a.state)
	if out == nil {
		out = NewBag()
	}
	return out, nil
}
