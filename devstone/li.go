package devstone

import (
	"fmt"

	"github.com/sarchlab/xdevs/modeling"
)

// NewLI builds the LI ("linear input") DEVStone benchmark family: at
// every non-innermost level only one atomic, the level's own "first"
// atomic, receives the seed directly; the remaining width-2 atomics at
// that level are pure padding with no couplings at all, matching the
// atomics count of HI/HO without HI's internal coupling chain. probe may
// be nil.
func NewLI(width, depth int, probe *Probe) *modeling.Coupled {
	if width < 1 {
		must(modeling.InvalidParameterError("width"))
	}
	if depth < 1 {
		must(modeling.InvalidParameterError("depth"))
	}

	top := modeling.NewCoupled("LI")
	seeder := NewSeeder("seeder")
	inner := liLevel(width, depth, probe)

	must(top.AddComponent(modeling.Wrap(seeder)))
	must(top.AddComponent(inner))
	must(top.AddIC("seeder", "output", inner.Name(), "input"))

	return top
}

func liLevel(width, depth int, probe *Probe) *modeling.Coupled {
	name := fmt.Sprintf("coupled_%d", depth)
	coupled := modeling.NewCoupled(name)
	must2(modeling.AddInPort[int](coupled.Component(), "input"))
	must2(modeling.AddOutPort[int](coupled.Component(), "output"))

	if depth == 1 {
		atomic := NewAtomic("inner_atomic", probe)
		must(coupled.AddComponent(modeling.Wrap(atomic)))
		must(coupled.AddEIC("input", "inner_atomic", "input"))
		must(coupled.AddEOC("inner_atomic", "output", "output"))
	} else {
		subcoupled := liLevel(width, depth-1, probe)
		must(coupled.AddComponent(subcoupled))
		must(coupled.AddEIC("input", subcoupled.Name(), "input"))
		must(coupled.AddEOC(subcoupled.Name(), "output", "output"))

		for i := 1; i < width; i++ {
			atomicName := fmt.Sprintf("atomic_%d", i)
			atomic := NewAtomic(atomicName, probe)
			must(coupled.AddComponent(modeling.Wrap(atomic)))
			if i == 1 {
				must(coupled.AddEIC("input", atomicName, "input"))
			}
		}
	}

	if probe != nil {
		probe.AddCouplings(coupled.NEICs(), coupled.NICs(), coupled.NEOCs())
	}

	return coupled
}
