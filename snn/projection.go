package snn

import "fmt"

// Projection is a directed synaptic wiring from a source population to a
// target: a fixed source→target index map plus the per-spike increment it
// delivers. The mapping is resolved once at construction, so delivery is a
// straight table lookup.
type Projection struct {
	name     string
	targets  []int // targets[source] = target unit index
	weightMV float64
	target   SpikeTarget
}

// NewOneToOneProjection wires source unit i to target unit i. The source
// and target sizes must match exactly: partially wiring min(n, m) pairs
// would silently leave units dead, so a mismatch fails fast before any run.
func NewOneToOneProjection(name string, nSource int, target SpikeTarget, weightMV float64) (*Projection, error) {
	if nSource != target.Size() {
		return nil, fmt.Errorf("%w: one-to-one projection %s requires equal sizes, got source=%d target=%d",
			ErrInvalidParameter, name, nSource, target.Size())
	}
	p := &Projection{name: name, targets: make([]int, nSource), weightMV: weightMV, target: target}
	for i := range p.targets {
		p.targets[i] = i
	}
	return p, nil
}

// NewModuloFanInProjection wires source unit i to target unit i mod the
// target size: every source unit reaches exactly one target, and targets
// are shared round-robin when the source layer is larger.
func NewModuloFanInProjection(name string, nSource int, target SpikeTarget, weightMV float64) (*Projection, error) {
	if target.Size() <= 0 {
		return nil, fmt.Errorf("%w: modulo fan-in projection %s requires a non-empty target", ErrInvalidParameter, name)
	}
	p := &Projection{name: name, targets: make([]int, nSource), weightMV: weightMV, target: target}
	for i := range p.targets {
		p.targets[i] = i % target.Size()
	}
	return p, nil
}

func (p *Projection) Name() string { return p.name }

// WeightMV returns the per-spike increment this projection delivers.
func (p *Projection) WeightMV() float64 { return p.weightMV }

// TargetIndex returns the target unit wired to the given source unit.
func (p *Projection) TargetIndex(source int) int { return p.targets[source] }

// Deliver adds the projection weight to the target of every spiking source
// unit. Spikes are processed in source-index order, so delivery is
// deterministic for a given spike set.
func (p *Projection) Deliver(spikes []int) {
	if p.weightMV == 0 {
		return
	}
	for _, s := range spikes {
		p.target.Inject(p.targets[s], p.weightMV)
	}
}
