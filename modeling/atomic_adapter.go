package modeling

// AtomicSimulator adapts a user Atomic into the Simulator capability
// set, the Go counterpart of the blanket `impl<T: Atomic> Simulator for
// T` the Rust original derives automatically from its trait system. Go
// has no blanket impls, so Wrap performs the same dispatch explicitly.
type AtomicSimulator struct {
	atomic Atomic
}

// Wrap adapts a, making it runnable by a Coupled parent or a
// RootCoordinator.
func Wrap(a Atomic) *AtomicSimulator {
	return &AtomicSimulator{atomic: a}
}

// Component returns the wrapped atomic's Component.
func (s *AtomicSimulator) Component() *Component {
	return s.atomic.Component()
}

// Name returns the wrapped atomic's component name.
func (s *AtomicSimulator) Name() string {
	return s.atomic.Component().Name()
}

// TLast returns the wrapped atomic's last transition time.
func (s *AtomicSimulator) TLast() float64 {
	return s.atomic.Component().TLast()
}

// TNext returns the wrapped atomic's next scheduled event time.
func (s *AtomicSimulator) TNext() float64 {
	return s.atomic.Component().TNext()
}

// ClearPorts empties every port of the wrapped atomic.
func (s *AtomicSimulator) ClearPorts() {
	c := s.atomic.Component()
	c.ClearInput()
	c.ClearOutput()
}

// Start invokes Atomic.Start once, then schedules the first internal
// event at tStart + ta().
func (s *AtomicSimulator) Start(tStart float64) {
	s.atomic.Start()
	ta := s.atomic.TA()
	s.atomic.Component().SetSimTime(tStart, tStart+ta)
}

// Stop sets tNext to +Inf and invokes Atomic.Stop once.
func (s *AtomicSimulator) Stop(tStop float64) {
	s.atomic.Component().SetSimTime(tStop, positiveInfinity)
	s.atomic.Stop()
}

// Collection invokes Lambda only when t has reached tNext.
func (s *AtomicSimulator) Collection(t float64) {
	if t >= s.atomic.Component().TNext() {
		s.atomic.Lambda()
	}
}

// Transition dispatches to exactly one of DeltaConf, DeltaExt, or
// DeltaInt depending on whether input has arrived and whether t has
// reached tNext, then reschedules via ta().
func (s *AtomicSimulator) Transition(t float64) {
	c := s.atomic.Component()
	tNext := c.TNext()

	switch {
	case !c.IsInputEmpty() && t == tNext:
		if confluent, ok := s.atomic.(ConfluentAtomic); ok {
			confluent.DeltaConf()
		} else {
			s.atomic.DeltaInt()
			s.atomic.DeltaExt(0)
		}
	case !c.IsInputEmpty():
		e := t - c.TLast()
		s.atomic.DeltaExt(e)
	case t == tNext:
		s.atomic.DeltaInt()
	default:
		return
	}

	ta := s.atomic.TA()
	c.SetSimTime(t, t+ta)
}

var _ Simulator = (*AtomicSimulator)(nil)
