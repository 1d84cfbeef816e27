package modeling

import "context"

// couplingGroup is every source feeding one destination port. Grouping
// by destination is what lets multiple sources fan in naturally, and
// is the partition unit for parallel propagation: two groups never
// touch the same destination, so they may run concurrently, while a
// single group's sources must stay serial to preserve declaration
// order.
type couplingGroup struct {
	dest      ErasedPort
	sources   []ErasedPort
	sourceKey map[string]bool
}

// couplingTable holds every EIC, IC, or EOC coupling of one Coupled
// model, keyed by destination so a propagation pass can iterate
// destinations (in first-registration order) and, within each, sources
// in the order their couplings were declared.
type couplingTable struct {
	order      []string
	groups     map[string]*couplingGroup
	destByName map[string]ErasedPort
}

func newCouplingTable() *couplingTable {
	return &couplingTable{
		groups:     make(map[string]*couplingGroup),
		destByName: make(map[string]ErasedPort),
	}
}

// add records one coupling. destKey and sourceKey are opaque strings
// identifying the destination and source endpoints uniquely within this
// table (e.g. "childName.portName"); they are not interpreted further.
// It returns a *Error of kind KindDuplicateCoupling if (sourceKey,
// destKey) was already recorded.
func (t *couplingTable) add(destKey string, dest ErasedPort, sourceKey string, source ErasedPort) error {
	g, ok := t.groups[destKey]
	if !ok {
		g = &couplingGroup{dest: dest, sourceKey: make(map[string]bool)}
		t.groups[destKey] = g
		t.order = append(t.order, destKey)
	}
	if g.sourceKey[sourceKey] {
		return newError(KindDuplicateCoupling, sourceKey+" -> "+destKey)
	}
	g.sourceKey[sourceKey] = true
	g.sources = append(g.sources, source)
	return nil
}

// count returns the total number of couplings recorded across every
// destination group.
func (t *couplingTable) count() int {
	n := 0
	for _, g := range t.groups {
		n += len(g.sources)
	}
	return n
}

// propagateSerial propagates every group's sources into its destination,
// groups in first-registration order, sources within a group in
// declaration order.
func (t *couplingTable) propagateSerial() error {
	for _, key := range t.order {
		g := t.groups[key]
		for _, src := range g.sources {
			if err := g.dest.Propagate(src); err != nil {
				return err
			}
		}
	}
	return nil
}

// propagateParallel propagates each destination group concurrently
// (one errgroup goroutine per group), with each group's own sources still applied
// serially in declaration order. Safe only because groups partition the
// table by destination: no two groups ever write the same port.
func (t *couplingTable) propagateParallel(ctx context.Context) error {
	return runParallel(ctx, t.order, func(key string) error {
		g := t.groups[key]
		for _, src := range g.sources {
			if err := g.dest.Propagate(src); err != nil {
				return err
			}
		}
		return nil
	})
}
