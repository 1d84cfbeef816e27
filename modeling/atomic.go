package modeling

// Atomic is the capability set a user-defined DEVS state machine must
// implement. The kernel treats an atomic as a black box: it invokes
// these hooks only at the points the Simulator protocol defines and
// never otherwise inspects the model's state.
type Atomic interface {
	// Component returns the wrapped Component that carries this
	// atomic's ports and clock.
	Component() *Component

	// Start performs any setup needed before the first Lambda/Delta. It
	// is invoked exactly once, before ta() is first sampled.
	Start()

	// Stop performs any teardown needed after the last transition. It
	// is invoked exactly once, after the last Delta.
	Stop()

	// Lambda is the output function. It is invoked only when
	// t == TNext(), and it is the only hook where the model may append
	// to its output ports.
	Lambda()

	// DeltaInt is the internal transition function. It is invoked when
	// t == TNext() and every input port is empty.
	DeltaInt()

	// DeltaExt is the external transition function. It is invoked when
	// at least one input port is non-empty and t < TNext(), with
	// e = t - TLast(). It is the only hook where the model may read its
	// input ports.
	DeltaExt(e float64)

	// TA is the time-advance function: the duration until the next
	// scheduled internal event, in [0, +Inf].
	TA() float64
}

// ConfluentAtomic is an optional extension of Atomic for models that
// need non-default behavior when an external event arrives exactly at
// TNext(). Atomics that do not implement it get the spec's default:
// DeltaInt() followed by DeltaExt(0).
type ConfluentAtomic interface {
	Atomic

	// DeltaConf handles simultaneity: input arrives at exactly
	// t == TNext().
	DeltaConf()
}

// AtomicBase is an embeddable helper giving user atomics the Component
// accessor and the spec's default Start/Stop (no-ops) for free, mirroring
// the teacher's builder-populated struct embedding pattern. Atomics
// still must implement Lambda, DeltaInt, DeltaExt, and TA themselves.
type AtomicBase struct {
	component *Component
}

// NewAtomicBase wraps a freshly created Component for embedding into a
// concrete atomic model.
func NewAtomicBase(component *Component) AtomicBase {
	return AtomicBase{component: component}
}

// Component returns the wrapped Component.
func (a *AtomicBase) Component() *Component {
	return a.component
}

// Start is a no-op default; override by defining Start on the embedding
// type if setup is needed.
func (a *AtomicBase) Start() {}

// Stop is a no-op default; override by defining Stop on the embedding
// type if teardown is needed.
func (a *AtomicBase) Stop() {}
