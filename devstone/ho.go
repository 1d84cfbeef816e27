package devstone

import (
	"fmt"

	"github.com/sarchlab/xdevs/modeling"
)

// NewHO builds the HO ("high input + output") DEVStone benchmark family:
// the top of every level exposes two input and two output ports, and
// every level-atomic forwards its output onward through output_2 rather
// than being absorbed silently. probe may be nil.
func NewHO(width, depth int, probe *Probe) *modeling.Coupled {
	return NewHOWithDelay(width, depth, 0, probe)
}

// NewHOWithDelay builds HO exactly like NewHO, but every level-atomic
// holds for delay time units after an external event instead of firing
// immediately. probe may be nil.
func NewHOWithDelay(width, depth int, delay float64, probe *Probe) *modeling.Coupled {
	if width < 1 {
		must(modeling.InvalidParameterError("width"))
	}
	if depth < 1 {
		must(modeling.InvalidParameterError("depth"))
	}

	top := modeling.NewCoupled("HO")
	seeder := NewSeeder("seeder")
	inner := hoLevel(width, depth, delay, probe)

	must(top.AddComponent(modeling.Wrap(seeder)))
	must(top.AddComponent(inner))
	must(top.AddIC("seeder", "output", inner.Name(), "input_1"))
	must(top.AddIC("seeder", "output", inner.Name(), "input_2"))

	return top
}

func hoLevel(width, depth int, delay float64, probe *Probe) *modeling.Coupled {
	name := fmt.Sprintf("coupled_%d", depth)
	coupled := modeling.NewCoupled(name)
	must2(modeling.AddInPort[int](coupled.Component(), "input_1"))
	must2(modeling.AddInPort[int](coupled.Component(), "input_2"))
	must2(modeling.AddOutPort[int](coupled.Component(), "output_1"))
	must2(modeling.AddOutPort[int](coupled.Component(), "output_2"))

	if depth == 1 {
		atomic := NewAtomicWithDelay("inner_atomic", probe, delay)
		must(coupled.AddComponent(modeling.Wrap(atomic)))
		must(coupled.AddEIC("input_1", "inner_atomic", "input"))
		must(coupled.AddEOC("inner_atomic", "output", "output_1"))
	} else {
		subcoupled := hoLevel(width, depth-1, delay, probe)
		must(coupled.AddComponent(subcoupled))
		must(coupled.AddEIC("input_1", subcoupled.Name(), "input_1"))
		must(coupled.AddEIC("input_1", subcoupled.Name(), "input_2"))
		must(coupled.AddEOC(subcoupled.Name(), "output_1", "output_1"))

		for i := 1; i < width; i++ {
			atomicName := fmt.Sprintf("atomic_%d", i)
			atomic := NewAtomicWithDelay(atomicName, probe, delay)
			must(coupled.AddComponent(modeling.Wrap(atomic)))
			must(coupled.AddEIC("input_2", atomicName, "input"))
			if i > 1 {
				prevName := fmt.Sprintf("atomic_%d", i-1)
				must(coupled.AddIC(prevName, "output", atomicName, "input"))
			}
			must(coupled.AddEOC(atomicName, "output", "output_2"))
		}
	}

	if probe != nil {
		probe.AddCouplings(coupled.NEICs(), coupled.NICs(), coupled.NEOCs())
	}

	return coupled
}
