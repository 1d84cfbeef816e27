package modeling

import "math"

// Component is the generic DEVS building block: a named port set plus
// the per-node simulation clock. Atomic and Coupled models each wrap
// one. Port names are unique per direction within a component; the
// clock fields tLast/tNext are only ever mutated by the simulator
// protocol, never directly by model code.
type Component struct {
	name string

	tLast float64
	tNext float64

	inputIndex  map[string]int
	outputIndex map[string]int
	inputs      []ErasedPort
	outputs     []ErasedPort
}

// NewComponent creates a new, port-less component with the given name
// and tNext initialized to +Inf.
func NewComponent(name string) *Component {
	return &Component{
		name:        name,
		tLast:       0,
		tNext:       math.Inf(1),
		inputIndex:  make(map[string]int),
		outputIndex: make(map[string]int),
	}
}

// Name returns the component's name.
func (c *Component) Name() string {
	return c.name
}

// TLast returns the time of the component's last state transition.
func (c *Component) TLast() float64 {
	return c.tLast
}

// TNext returns the time of the component's next scheduled internal
// event, possibly +Inf.
func (c *Component) TNext() float64 {
	return c.tNext
}

// SetSimTime sets tLast and tNext. Only the simulator protocol (the
// Simulator implementations in this package and package simulation)
// may call this; user model code must never call it directly.
func (c *Component) SetSimTime(tLast, tNext float64) {
	c.tLast = tLast
	c.tNext = tNext
}

// AddInPort registers a new typed input port under name and returns it.
// It returns a *Error of kind KindDuplicatePort if an input port with
// that name already exists.
func AddInPort[T any](c *Component, name string) (*Port[T], error) {
	if _, exists := c.inputIndex[name]; exists {
		return nil, newError(KindDuplicatePort, c.name+"."+name)
	}
	p := NewPort[T](name, Input)
	c.inputIndex[name] = len(c.inputs)
	c.inputs = append(c.inputs, p)
	return p, nil
}

// AddOutPort registers a new typed output port under name and returns
// it. It returns a *Error of kind KindDuplicatePort if an output port
// with that name already exists.
func AddOutPort[T any](c *Component, name string) (*Port[T], error) {
	if _, exists := c.outputIndex[name]; exists {
		return nil, newError(KindDuplicatePort, c.name+"."+name)
	}
	p := NewPort[T](name, Output)
	c.outputIndex[name] = len(c.outputs)
	c.outputs = append(c.outputs, p)
	return p, nil
}

// InPort looks up an input port by name. It returns a *Error of kind
// KindUnknownPort if no such input port exists.
func (c *Component) InPort(name string) (ErasedPort, error) {
	i, ok := c.inputIndex[name]
	if !ok {
		return nil, newError(KindUnknownPort, c.name+"."+name)
	}
	return c.inputs[i], nil
}

// OutPort looks up an output port by name. It returns a *Error of kind
// KindUnknownPort if no such output port exists.
func (c *Component) OutPort(name string) (ErasedPort, error) {
	i, ok := c.outputIndex[name]
	if !ok {
		return nil, newError(KindUnknownPort, c.name+"."+name)
	}
	return c.outputs[i], nil
}

// InPorts iterates every input port in insertion order.
func (c *Component) InPorts() []ErasedPort {
	return c.inputs
}

// OutPorts iterates every output port in insertion order.
func (c *Component) OutPorts() []ErasedPort {
	return c.outputs
}

// IsInputEmpty reports whether every input port is empty.
func (c *Component) IsInputEmpty() bool {
	for _, p := range c.inputs {
		if !p.IsEmpty() {
			return false
		}
	}
	return true
}

// IsOutputEmpty reports whether every output port is empty.
func (c *Component) IsOutputEmpty() bool {
	for _, p := range c.outputs {
		if !p.IsEmpty() {
			return false
		}
	}
	return true
}

// ClearInput empties every input port.
func (c *Component) ClearInput() {
	for _, p := range c.inputs {
		p.Clear()
	}
}

// ClearOutput empties every output port.
func (c *Component) ClearOutput() {
	for _, p := range c.outputs {
		p.Clear()
	}
}

func (c *Component) String() string {
	return c.name
}
