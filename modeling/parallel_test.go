package modeling_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/xdevs/modeling"
)

// tagSeeder emits one fixed int value at t=0, then goes passive forever.
// Distinct instances carry distinct tags so a downstream recorder can
// tell which source a value arrived from.
type tagSeeder struct {
	modeling.AtomicBase

	output *modeling.Port[int]
	tag    int
	fired  bool
}

func newTagSeeder(name string, tag int) *tagSeeder {
	component := modeling.NewComponent(name)
	output, err := modeling.AddOutPort[int](component, "output")
	if err != nil {
		panic(err)
	}
	return &tagSeeder{AtomicBase: modeling.NewAtomicBase(component), output: output, tag: tag}
}

func (s *tagSeeder) Lambda() {
	s.output.AddValue(s.tag)
}

func (s *tagSeeder) DeltaInt() {
	s.fired = true
}

func (s *tagSeeder) DeltaExt(e float64) {}

func (s *tagSeeder) TA() float64 {
	if s.fired {
		return modeling.PositiveInfinity()
	}
	return 0
}

var _ modeling.Atomic = (*tagSeeder)(nil)

// recordingAtomic appends every value it receives, in arrival order, to
// seen. It never fires on its own.
type recordingAtomic struct {
	modeling.AtomicBase

	input *modeling.Port[int]
	seen  []int
}

func newRecordingAtomic(name string) *recordingAtomic {
	component := modeling.NewComponent(name)
	input, err := modeling.AddInPort[int](component, "input")
	if err != nil {
		panic(err)
	}
	return &recordingAtomic{AtomicBase: modeling.NewAtomicBase(component), input: input}
}

func (a *recordingAtomic) Lambda() {}

func (a *recordingAtomic) DeltaInt() {}

func (a *recordingAtomic) DeltaExt(e float64) {
	a.seen = append(a.seen, a.input.Values()...)
}

func (a *recordingAtomic) TA() float64 {
	return modeling.PositiveInfinity()
}

var _ modeling.Atomic = (*recordingAtomic)(nil)

// buildFanInFanOut wires three tagged sources into one destination group
// (exercising fan-in and the ordering guarantee within a group) and a
// fourth, unrelated single source into a second destination group (so
// propagateParallel/propagateSerial must handle more than one group).
// parallel selects which protocol phases run concurrently.
func buildFanInFanOut(parallel modeling.ParallelOptions) (top *modeling.Coupled, fanIn, single *recordingAtomic) {
	top = modeling.NewCoupled("top")
	top.SetParallelism(parallel)

	sourceA := newTagSeeder("source_a", 1)
	sourceB := newTagSeeder("source_b", 2)
	sourceC := newTagSeeder("source_c", 3)
	sourceD := newTagSeeder("source_d", 1)
	fanIn = newRecordingAtomic("fan_in")
	single = newRecordingAtomic("single")

	for _, c := range []modeling.Simulator{
		modeling.Wrap(sourceA), modeling.Wrap(sourceB), modeling.Wrap(sourceC),
		modeling.Wrap(sourceD), modeling.Wrap(fanIn), modeling.Wrap(single),
	} {
		Expect(top.AddComponent(c)).To(Succeed())
	}

	Expect(top.AddIC("source_a", "output", "fan_in", "input")).To(Succeed())
	Expect(top.AddIC("source_b", "output", "fan_in", "input")).To(Succeed())
	Expect(top.AddIC("source_c", "output", "fan_in", "input")).To(Succeed())
	Expect(top.AddIC("source_d", "output", "single", "input")).To(Succeed())

	return top, fanIn, single
}

var _ = Describe("Parallel propagation", func() {
	It("preserves declaration-order fan-in and produces identical results under serial and parallel propagation", func() {
		serialTop, serialFanIn, serialSingle := buildFanInFanOut(modeling.ParallelOptions{})
		parallelTop, parallelFanIn, parallelSingle := buildFanInFanOut(modeling.ParallelOptions{
			Start:      true,
			Stop:       true,
			Collection: true,
			Transition: true,
			EOC:        true,
			XIC:        true,
		})

		for _, top := range []*modeling.Coupled{serialTop, parallelTop} {
			top.Start(0)
			top.Collection(top.TNext())
			top.Transition(top.TNext())
			top.Stop(top.TNext())
		}

		Expect(serialFanIn.seen).To(Equal([]int{1, 2, 3}))
		Expect(serialSingle.seen).To(Equal([]int{1}))
		Expect(parallelFanIn.seen).To(Equal(serialFanIn.seen))
		Expect(parallelSingle.seen).To(Equal(serialSingle.seen))
	})
})
