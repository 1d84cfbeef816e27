package devstone

import "sync"

// Probe accumulates structural and dynamic counters across an entire
// DEVStone fixture, shared by every atomic and coupled model the fixture
// creates. Structural counters (AddAtomic, AddCouplings) are updated once
// at construction time; dynamic counters (Internal, External, Event) are
// updated as the simulation runs and must tolerate concurrent calls from
// parallel propagation.
type Probe struct {
	mu sync.Mutex

	atomics int
	eics    int
	ics     int
	eocs    int

	internals int
	externals int
	events    int
}

// NewProbe returns an empty, ready-to-use Probe.
func NewProbe() *Probe {
	return &Probe{}
}

// AddAtomic records one more atomic having been constructed.
func (p *Probe) AddAtomic() {
	p.mu.Lock()
	p.atomics++
	p.mu.Unlock()
}

// AddCouplings folds one coupled model's own EIC/IC/EOC counts into the
// running total. Fixture builders call this once per level, after that
// level's Coupled has every coupling it will ever have.
func (p *Probe) AddCouplings(eics, ics, eocs int) {
	p.mu.Lock()
	p.eics += eics
	p.ics += ics
	p.eocs += eocs
	p.mu.Unlock()
}

// Internal records one delta_int activation.
func (p *Probe) Internal() {
	p.mu.Lock()
	p.internals++
	p.mu.Unlock()
}

// External records one delta_ext activation.
func (p *Probe) External() {
	p.mu.Lock()
	p.externals++
	p.mu.Unlock()
}

// Event records one lambda (observed output) activation.
func (p *Probe) Event() {
	p.mu.Lock()
	p.events++
	p.mu.Unlock()
}

// NAtomics returns the number of atomics constructed.
func (p *Probe) NAtomics() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.atomics
}

// NEICs returns the total number of external input couplings recorded.
func (p *Probe) NEICs() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.eics
}

// NICs returns the total number of internal couplings recorded.
func (p *Probe) NICs() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ics
}

// NEOCs returns the total number of external output couplings recorded.
func (p *Probe) NEOCs() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.eocs
}

// NInternals returns the total number of delta_int activations observed.
func (p *Probe) NInternals() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.internals
}

// NExternals returns the total number of delta_ext activations observed.
func (p *Probe) NExternals() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.externals
}

// NEvents returns the total number of lambda activations observed.
func (p *Probe) NEvents() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.events
}
