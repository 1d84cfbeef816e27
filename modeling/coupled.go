package modeling

import "context"

// Coupled is a Component plus an ordered set of child simulators and
// the three coupling tables (EIC, IC, EOC) that route messages among
// them and across this model's own boundary. It exclusively owns its
// children and its own ports; couplings hold non-owning references to
// port objects resolved once at construction time.
type Coupled struct {
	component *Component

	children   []Simulator
	childIndex map[string]int

	eic *couplingTable
	ic  *couplingTable
	eoc *couplingTable

	parallel ParallelOptions
}

// NewCoupled creates an empty coupled model with the given name.
func NewCoupled(name string) *Coupled {
	return &Coupled{
		component:  NewComponent(name),
		childIndex: make(map[string]int),
		eic:        newCouplingTable(),
		ic:         newCouplingTable(),
		eoc:        newCouplingTable(),
	}
}

// Component returns the wrapped Component carrying this coupled
// model's own ports and clock.
func (co *Coupled) Component() *Component {
	return co.component
}

// Name returns the coupled model's name.
func (co *Coupled) Name() string {
	return co.component.Name()
}

// TLast returns the time of the coupled model's last state transition.
func (co *Coupled) TLast() float64 {
	return co.component.TLast()
}

// TNext returns the time of the coupled model's next scheduled event
// (the minimum over its children).
func (co *Coupled) TNext() float64 {
	return co.component.TNext()
}

// InPort looks up one of the coupled model's own input ports by name.
func (co *Coupled) InPort(name string) (ErasedPort, error) {
	return co.component.InPort(name)
}

// OutPort looks up one of the coupled model's own output ports by name.
func (co *Coupled) OutPort(name string) (ErasedPort, error) {
	return co.component.OutPort(name)
}

// SetParallelism selects which phases of the simulator protocol this
// coupled model is allowed to run concurrently. It has no effect on the
// couplings or children already added.
func (co *Coupled) SetParallelism(opts ParallelOptions) {
	co.parallel = opts
}

// NComponents returns the number of children in the coupled model.
func (co *Coupled) NComponents() int {
	return len(co.children)
}

// NEICs returns the number of external input couplings.
func (co *Coupled) NEICs() int {
	return co.eic.count()
}

// NICs returns the number of internal couplings.
func (co *Coupled) NICs() int {
	return co.ic.count()
}

// NEOCs returns the number of external output couplings.
func (co *Coupled) NEOCs() int {
	return co.eoc.count()
}

// AddComponent adds child to the coupled model. It returns a *Error of
// kind KindDuplicateComponent if a child with the same name already
// exists.
func (co *Coupled) AddComponent(child Simulator) error {
	name := child.Name()
	if _, exists := co.childIndex[name]; exists {
		return newError(KindDuplicateComponent, name)
	}
	co.childIndex[name] = len(co.children)
	co.children = append(co.children, child)
	return nil
}

func (co *Coupled) getChild(name string) (Simulator, error) {
	i, ok := co.childIndex[name]
	if !ok {
		return nil, newError(KindUnknownComponent, name)
	}
	return co.children[i], nil
}

func checkCompatible(from, to ErasedPort, fromDesc, toDesc string) error {
	if !from.IsCompatible(to) {
		return newError(KindTypeMismatch, fromDesc+" -> "+toDesc)
	}
	return nil
}

// AddEIC adds an external input coupling: the coupled model's own input
// port portFrom to the input port portTo of child componentTo. It fails
// with KindUnknownPort/KindUnknownComponent if an endpoint does not
// exist, KindTypeMismatch if the element types differ, and
// KindDuplicateCoupling if this exact coupling was already added.
func (co *Coupled) AddEIC(portFrom, componentTo, portTo string) error {
	pFrom, err := co.InPort(portFrom)
	if err != nil {
		return err
	}
	childTo, err := co.getChild(componentTo)
	if err != nil {
		return err
	}
	pTo, err := childTo.Component().InPort(portTo)
	if err != nil {
		return err
	}
	if err := checkCompatible(pFrom, pTo, portFrom, componentTo+"."+portTo); err != nil {
		return err
	}

	destKey := componentTo + "." + portTo
	sourceKey := portFrom
	return co.eic.add(destKey, pTo, sourceKey, pFrom)
}

// AddIC adds an internal coupling: the output port portFrom of child
// componentFrom to the input port portTo of child componentTo. Failure
// modes mirror AddEIC.
func (co *Coupled) AddIC(componentFrom, portFrom, componentTo, portTo string) error {
	childFrom, err := co.getChild(componentFrom)
	if err != nil {
		return err
	}
	pFrom, err := childFrom.Component().OutPort(portFrom)
	if err != nil {
		return err
	}
	childTo, err := co.getChild(componentTo)
	if err != nil {
		return err
	}
	pTo, err := childTo.Component().InPort(portTo)
	if err != nil {
		return err
	}
	if err := checkCompatible(pFrom, pTo, componentFrom+"."+portFrom, componentTo+"."+portTo); err != nil {
		return err
	}

	destKey := componentTo + "." + portTo
	sourceKey := componentFrom + "." + portFrom
	return co.ic.add(destKey, pTo, sourceKey, pFrom)
}

// AddEOC adds an external output coupling: the output port portFrom of
// child componentFrom to the coupled model's own output port portTo.
// Failure modes mirror AddEIC.
func (co *Coupled) AddEOC(componentFrom, portFrom, portTo string) error {
	childFrom, err := co.getChild(componentFrom)
	if err != nil {
		return err
	}
	pFrom, err := childFrom.Component().OutPort(portFrom)
	if err != nil {
		return err
	}
	pTo, err := co.OutPort(portTo)
	if err != nil {
		return err
	}
	if err := checkCompatible(pFrom, pTo, componentFrom+"."+portFrom, portTo); err != nil {
		return err
	}

	destKey := portTo
	sourceKey := componentFrom + "." + portFrom
	return co.eoc.add(destKey, pTo, sourceKey, pFrom)
}

// Start recursively starts every child (concurrently if
// ParallelOptions.Start is set), then sets tLast=tStart and
// tNext=min(child.TNext()).
func (co *Coupled) Start(tStart float64) {
	ctx := context.Background()
	run := runGrouped[Simulator]
	if co.parallel.Start {
		run = runParallel[Simulator]
	}
	_ = run(ctx, co.children, func(c Simulator) error {
		c.Start(tStart)
		return nil
	})

	co.component.SetSimTime(tStart, minTNext(co.children))
}

// Stop recursively stops every child (concurrently if
// ParallelOptions.Stop is set), then sets tLast=tStop and tNext=+Inf.
func (co *Coupled) Stop(tStop float64) {
	ctx := context.Background()
	run := runGrouped[Simulator]
	if co.parallel.Stop {
		run = runParallel[Simulator]
	}
	_ = run(ctx, co.children, func(c Simulator) error {
		c.Stop(tStop)
		return nil
	})

	co.component.SetSimTime(tStop, positiveInfinity)
}

// ClearPorts empties every port of this coupled model itself (not its
// children: the root coordinator clears the whole tree by recursing
// through Transition's own per-child clear, and by calling ClearPorts on
// the top node at the end of each cycle).
func (co *Coupled) ClearPorts() {
	co.component.ClearInput()
	co.component.ClearOutput()
}

// Collection is a no-op if t has not reached tNext. Otherwise it
// recursively calls Collection on every child (collection-then-IC-then-
// EOC is mandatory: child outputs must be fully produced before any
// sibling, and then the parent, can observe them), propagates IC, then
// propagates EOC.
func (co *Coupled) Collection(t float64) {
	if t < co.TNext() {
		return
	}

	ctx := context.Background()
	run := runGrouped[Simulator]
	if co.parallel.Collection {
		run = runParallel[Simulator]
	}
	_ = run(ctx, co.children, func(c Simulator) error {
		c.Collection(t)
		return nil
	})

	propagate := co.ic.propagateSerial
	propagateEOC := co.eoc.propagateSerial
	if co.parallel.XIC {
		propagate = func() error { return co.ic.propagateParallel(ctx) }
	}
	if co.parallel.EOC {
		propagateEOC = func() error { return co.eoc.propagateParallel(ctx) }
	}
	_ = propagate()
	_ = propagateEOC()
}

// Transition propagates EIC first, then recursively calls Transition on
// every child and clears each child's ports, then recomputes
// tNext=min(child.TNext()) and sets tLast=t.
func (co *Coupled) Transition(t float64) {
	ctx := context.Background()

	propagateEIC := co.eic.propagateSerial
	if co.parallel.XIC {
		propagateEIC = func() error { return co.eic.propagateParallel(ctx) }
	}
	_ = propagateEIC()

	run := runGrouped[Simulator]
	if co.parallel.Transition {
		run = runParallel[Simulator]
	}
	_ = run(ctx, co.children, func(c Simulator) error {
		c.Transition(t)
		c.ClearPorts()
		return nil
	})

	co.component.SetSimTime(t, minTNext(co.children))
}

func minTNext(children []Simulator) float64 {
	next := positiveInfinity
	for _, c := range children {
		if t := c.TNext(); t < next {
			next = t
		}
	}
	return next
}

var _ Simulator = (*Coupled)(nil)
