package modeling

// Simulator is the uniform capability set the kernel dispatches through
// for every node of the model tree, atomic or coupled alike: start,
// stop, collection, transition, clear_ports, plus the clock read-outs
// the root coordinator needs to find the minimum tNext. Implementations
// here are AtomicSimulator (wrapping a user Atomic) and *Coupled.
type Simulator interface {
	// Component returns the wrapped Component carrying this node's
	// ports and clock.
	Component() *Component

	// Name returns the node's name.
	Name() string

	// TLast returns the time of this node's last state transition.
	TLast() float64

	// TNext returns the time of this node's next scheduled event.
	TNext() float64

	// ClearPorts empties every input and output port of this node.
	ClearPorts()

	// Start is invoked exactly once before any Collection/Transition,
	// with tStart the simulation's initial time.
	Start(tStart float64)

	// Stop is invoked exactly once after the last Transition, with
	// tStop the simulation's final time.
	Stop(tStop float64)

	// Collection executes output functions and propagates messages
	// according to IC and EOC couplings (no-op below the imminent
	// node).
	Collection(t float64)

	// Transition propagates messages according to EIC couplings and
	// executes state transition functions.
	Transition(t float64)
}
