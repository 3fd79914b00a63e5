package devs

// Model is the part shared by atomic and coupled models: a name unique among
// its siblings and the declared input and output ports.
type Model interface {
	Name() string
	InPorts() []Port
	OutPorts() []Port
}

// Atomic is a leaf model. It owns its state; the engine drives it through
// the methods below and never inspects the state directly.
//
// Errors returned from any method are propagated to the driver unchanged
// apart from being wrapped with the model name.
type Atomic interface {
	Model
	// TimeAdvance returns how long the model stays in its current state
	// absent external input. Infinity means passive.
	TimeAdvance() Time
	// InternalTransition runs when the model is imminent and has no input.
	InternalTransition() error
	// ExternalTransition runs when input arrives before the model is
	// imminent. elapsed is the time since the last transition.
	ExternalTransition(elapsed Time, in *Bag) error
	// ConfluentTransition runs when input arrives exactly at the model's
	// scheduled event time.
	ConfluentTransition(in *Bag) error
	// Output is evaluated against the current state just before an
	// internal or confluent transition.
	Output() (*Bag, error)
}

// Coupled is a composite model. It contributes no behavior of its own,
// only structure: ordered components and the three coupling tables.
type Coupled interface {
	Model
	Components() []Model
	EIC() []Coupling
	IC() []Coupling
	EOC() []Coupling
}

// CoupledModel is a ready-made Coupled built up with the Add* methods.
// It must be fully composed before an engine tree is built from it.
type CoupledModel struct {
	name       string
	inPorts    []Port
	outPorts   []Port
	components []Model
	eic        []Coupling
	ic         []Coupling
	eoc        []Coupling
}

// NewCoupled creates an empty coupled model.
func NewCoupled(name string, in []Port, out []Port) *CoupledModel {
	return &CoupledModel{name: name, inPorts: in, outPorts: out}
}

func (c *CoupledModel) Name() string        { return c.name }
func (c *CoupledModel) InPorts() []Port     { return c.inPorts }
func (c *CoupledModel) OutPorts() []Port    { return c.outPorts }
func (c *CoupledModel) Components() []Model { return c.components }
func (c *CoupledModel) EIC() []Coupling     { return c.eic }
func (c *CoupledModel) IC() []Coupling      { return c.ic }
func (c *CoupledModel) EOC() []Coupling     { return c.eoc }

// AddComponents appends children in declaration order.
func (c *CoupledModel) AddComponents(ms ...Model) *CoupledModel {
	c.components = append(c.components, ms...)
	return c
}

// AddEIC couples this model's input port from to input port to of child.
func (c *CoupledModel) AddEIC(from Port, child string, to Port) *CoupledModel {
	c.eic = append(c.eic, Coupling{FromPort: from, ToModel: child, ToPort: to})
	return c
}

// AddIC couples output port from of child src to input port to of child dst.
func (c *CoupledModel) AddIC(src string, from Port, dst string, to Port) *CoupledModel {
	c.ic = append(c.ic, Coupling{FromModel: src, FromPort: from, ToModel: dst, ToPort: to})
	return c
}

// AddEOC couples output port from of child to this model's output port to.
func (c *CoupledModel) AddEOC(child string, from Port, to Port) *CoupledModel {
	c.eoc = append(c.eoc, Coupling{FromModel: child, FromPort: from, ToPort: to})
	return c
}
