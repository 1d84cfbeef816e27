package devstone

import (
	"fmt"

	"github.com/sarchlab/xdevs/modeling"
)

// NewHI builds the HI ("high input") DEVStone benchmark family: every
// atomic at every level receives the seed directly via its own external
// input coupling. probe may be nil.
func NewHI(width, depth int, probe *Probe) *modeling.Coupled {
	if width < 1 {
		must(modeling.InvalidParameterError("width"))
	}
	if depth < 1 {
		must(modeling.InvalidParameterError("depth"))
	}

	top := modeling.NewCoupled("HI")
	seeder := NewSeeder("seeder")
	inner := hiLevel(width, depth, probe)

	must(top.AddComponent(modeling.Wrap(seeder)))
	must(top.AddComponent(inner))
	must(top.AddIC("seeder", "output", inner.Name(), "input"))

	return top
}

func hiLevel(width, depth int, probe *Probe) *modeling.Coupled {
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
		subcoupled := hiLevel(width, depth-1, probe)
		must(coupled.AddComponent(subcoupled))
		must(coupled.AddEIC("input", subcoupled.Name(), "input"))
		must(coupled.AddEOC(subcoupled.Name(), "output", "output"))

		for i := 1; i < width; i++ {
			atomicName := fmt.Sprintf("atomic_%d", i)
			atomic := NewAtomic(atomicName, probe)
			must(coupled.AddComponent(modeling.Wrap(atomic)))
			must(coupled.AddEIC("input", atomicName, "input"))
			if i > 1 {
				prevName := fmt.Sprintf("atomic_%d", i-1)
				must(coupled.AddIC(prevName, "output", atomicName, "input"))
			}
		}
	}

	if probe != nil {
		probe.AddCouplings(coupled.NEICs(), coupled.NICs(), coupled.NEOCs())
	}

	return coupled
}
