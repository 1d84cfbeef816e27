package devstone

import "github.com/sarchlab/xdevs/modeling"

// Atomic is the workhorse of every DEVStone family: it answers external
// input by re-emitting on its output port once its configured delay has
// elapsed (on the next cycle with the default zero delay), then goes
// passive again. Its only state is whether it is currently scheduled to
// fire.
type Atomic struct {
	modeling.AtomicBase

	input  *modeling.Port[int]
	output *modeling.Port[int]

	probe  *Probe
	active bool
	delay  float64
}

// NewAtomic builds a DEVStone worker atomic named name with zero
// processing delay. probe may be nil, in which case no counters are
// updated.
func NewAtomic(name string, probe *Probe) *Atomic {
	return newAtomic(name, probe, 0)
}

// NewAtomicWithDelay builds a DEVStone worker atomic whose TA, once
// active, holds for delay time units instead of firing immediately.
// This models the per-run processing cost configurable on HO-family
// atomics. probe may be nil.
func NewAtomicWithDelay(name string, probe *Probe, delay float64) *Atomic {
	return newAtomic(name, probe, delay)
}

func newAtomic(name string, probe *Probe, delay float64) *Atomic {
	component := modeling.NewComponent(name)
	input, err := modeling.AddInPort[int](component, "input")
	must(err)
	output, err := modeling.AddOutPort[int](component, "output")
	must(err)

	if probe != nil {
		probe.AddAtomic()
	}

	return &Atomic{
		AtomicBase: modeling.NewAtomicBase(component),
		input:      input,
		output:     output,
		probe:      probe,
		delay:      delay,
	}
}

// Lambda emits one value on output.
func (a *Atomic) Lambda() {
	a.output.AddValue(1)
	if a.probe != nil {
		a.probe.Event()
	}
}

// DeltaInt goes passive.
func (a *Atomic) DeltaInt() {
	if a.probe != nil {
		a.probe.Internal()
	}
	a.active = false
}

// DeltaExt schedules an internal transition after the configured delay
// (immediately by default).
func (a *Atomic) DeltaExt(e float64) {
	if a.probe != nil {
		a.probe.External()
	}
	a.active = true
}

// TA returns the configured delay right after an external event (0 by
// default), +Inf otherwise.
func (a *Atomic) TA() float64 {
	if a.active {
		return a.delay
	}
	return modeling.PositiveInfinity()
}

var _ modeling.Atomic = (*Atomic)(nil)
