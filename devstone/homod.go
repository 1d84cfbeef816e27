package devstone

import (
	"fmt"

	"github.com/sarchlab/xdevs/modeling"
)

// NewHOmod builds the HOmod DEVStone benchmark family. HOmod is not
// carried by the upstream reference implementation available to this
// kernel; it is built here as HO plus one extra internal coupling per
// non-first atomic at every non-innermost level, from the subcoupled's
// output_1 into that atomic's input. This raises IC density relative to
// HO while leaving EIC and EOC counts identical to HO. probe may be nil.
func NewHOmod(width, depth int, probe *Probe) *modeling.Coupled {
	return NewHOmodWithDelay(width, depth, 0, probe)
}

// NewHOmodWithDelay builds HOmod exactly like NewHOmod, but every
// level-atomic holds for delay time units after an external event
// instead of firing immediately. probe may be nil.
func NewHOmodWithDelay(width, depth int, delay float64, probe *Probe) *modeling.Coupled {
	if width < 1 {
		must(modeling.InvalidParameterError("width"))
	}
	if depth < 1 {
		must(modeling.InvalidParameterError("depth"))
	}

	top := modeling.NewCoupled("HOmod")
	seeder := NewSeeder("seeder")
	inner := homodLevel(width, depth, delay, probe)

	must(top.AddComponent(modeling.Wrap(seeder)))
	must(top.AddComponent(inner))
	must(top.AddIC("seeder", "output", inner.Name(), "input_1"))
	must(top.AddIC("seeder", "output", inner.Name(), "input_2"))

	return top
}

func homodLevel(width, depth int, delay float64, probe *Probe) *modeling.Coupled {
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
		subcoupled := homodLevel(width, depth-1, delay, probe)
		subName := subcoupled.Name()
		must(coupled.AddComponent(subcoupled))
		must(coupled.AddEIC("input_1", subName, "input_1"))
		must(coupled.AddEIC("input_1", subName, "input_2"))
		must(coupled.AddEOC(subName, "output_1", "output_1"))

		for i := 1; i < width; i++ {
			atomicName := fmt.Sprintf("atomic_%d", i)
			atomic := NewAtomicWithDelay(atomicName, probe, delay)
			must(coupled.AddComponent(modeling.Wrap(atomic)))
			must(coupled.AddEIC("input_2", atomicName, "input"))
			if i > 1 {
				prevName := fmt.Sprintf("atomic_%d", i-1)
				must(coupled.AddIC(prevName, "output", atomicName, "input"))
				must(coupled.AddIC(subName, "output_1", atomicName, "input"))
			}
			must(coupled.AddEOC(atomicName, "output", "output_2"))
		}
	}

	if probe != nil {
		probe.AddCouplings(coupled.NEICs(), coupled.NICs(), coupled.NEOCs())
	}

	return coupled
}
