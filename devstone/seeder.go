package devstone

import "github.com/sarchlab/xdevs/modeling"

// Seeder drives a DEVStone network by emitting a single value on output
// at t = 0, then going passive forever.
type Seeder struct {
	modeling.AtomicBase

	output *modeling.Port[int]
	fired  bool
}

// NewSeeder builds a seeder atomic named name.
func NewSeeder(name string) *Seeder {
	component := modeling.NewComponent(name)
	output, err := modeling.AddOutPort[int](component, "output")
	must(err)

	return &Seeder{
		AtomicBase: modeling.NewAtomicBase(component),
		output:     output,
	}
}

// Lambda emits the seed value.
func (s *Seeder) Lambda() {
	s.output.AddValue(1)
}

// DeltaInt fires once, then goes permanently passive.
func (s *Seeder) DeltaInt() {
	s.fired = true
}

// DeltaExt is unused: the seeder never receives input.
func (s *Seeder) DeltaExt(e float64) {}

// TA returns 0 until the seeder has fired once, then +Inf.
func (s *Seeder) TA() float64 {
	if s.fired {
		return modeling.PositiveInfinity()
	}
	return 0
}

var _ modeling.Atomic = (*Seeder)(nil)
