package snn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// SpikeTarget is the surface a projection needs from its target population:
// its size, for wiring validation, and a way to add a synaptic increment to
// one unit's membrane potential.
type SpikeTarget interface {
	Size() int
	Inject(unit int, deltaMV float64)
}

// PoissonPopulation models the hair-cell layer: each unit independently
// emits spikes as a Poisson process at a common rate. Interarrival times are
// sampled exactly from the exponential distribution, so the process stays
// correct even when rate·dt is not small.
type PoissonPopulation struct {
	name   string
	n      int
	nextMs []float64 // per-unit time of the next spike
	exp    distuv.Exponential
	spiked []int
}

// NewPoissonPopulation creates the stochastic source layer. A zero rate is
// a valid degenerate configuration that never spikes.
func NewPoissonPopulation(ctx *SimulationContext, name string, n int, rateHz float64) *PoissonPopulation {
	p := &PoissonPopulation{
		name:   name,
		n:      n,
		nextMs: make([]float64, n),
		spiked: make([]int, 0, n),
	}
	if rateHz > 0 {
		// rate per millisecond, to match the simulation clock
		p.exp = distuv.Exponential{Rate: rateHz / 1000.0, Src: ctx.rng.SourceFor(SubsystemInput)}
		for i := range p.nextMs {
			p.nextMs[i] = p.exp.Rand()
		}
	} else {
		for i := range p.nextMs {
			p.nextMs[i] = math.Inf(1)
		}
	}
	return p
}

func (p *PoissonPopulation) Name() string { return p.name }
func (p *PoissonPopulation) Size() int    { return p.n }

// Step emits every spike whose arrival time falls within the step ending at
// nowMs. A unit may appear more than once if two arrivals land in the same
// step. The returned slice is reused across steps.
func (p *PoissonPopulation) Step(nowMs float64) ([]int, error) {
	p.spiked = p.spiked[:0]
	for i := range p.nextMs {
		for p.nextMs[i] <= nowMs {
			p.spiked = append(p.spiked, i)
			p.nextMs[i] += p.exp.Rand()
		}
	}
	return p.spiked, nil
}

// LIFPopulation is a leaky-integrate-and-fire layer: each unit's membrane
// potential v relaxes toward rest with time constant tau, and crossing
// threshold resets it. With adaptation enabled (the afferent layer), a
// per-unit adaptation term a subtracts from the drive, decays with its own
// slower time constant, and is bumped by a fixed increment on every spike.
//
// All per-unit state is owned here and mutated only by Step and Inject,
// both called from the single sequential network loop.
type LIFPopulation struct {
	name string
	v    []float64
	a    []float64 // nil when the layer has no adaptation

	tauMs      float64
	tauAdaptMs float64
	adaptIncMV float64
	vRestMV    float64
	vResetMV   float64
	vThreshMV  float64
	dtMs       float64

	spiked []int
}

// NewLIFPopulation creates a LIF layer of n units initialized at rest,
// taking its dynamics constants from the context's parameters.
func NewLIFPopulation(ctx *SimulationContext, name string, n int, withAdaptation bool) *LIFPopulation {
	base := ctx.Base
	l := &LIFPopulation{
		name:       name,
		v:          make([]float64, n),
		tauMs:      base.TauMs,
		tauAdaptMs: base.TauAdaptMs,
		adaptIncMV: base.AdaptIncMV,
		vRestMV:    base.VRestMV,
		vResetMV:   base.VResetMV,
		vThreshMV:  base.VThreshMV,
		dtMs:       base.DtMs,
		spiked:     make([]int, 0, n),
	}
	if withAdaptation {
		l.a = make([]float64, n)
	}
	for i := range l.v {
		l.v[i] = base.VRestMV
	}
	return l
}

func (l *LIFPopulation) Name() string { return l.name }
func (l *LIFPopulation) Size() int    { return len(l.v) }

// Inject adds a synaptic increment to one unit's membrane potential.
func (l *LIFPopulation) Inject(unit int, deltaMV float64) {
	l.v[unit] += deltaMV
}

// V returns the membrane potential of one unit.
func (l *LIFPopulation) V(unit int) float64 { return l.v[unit] }

// A returns the adaptation value of one unit, or 0 for a layer without
// adaptation.
func (l *LIFPopulation) A(unit int) float64 {
	if l.a == nil {
		return 0
	}
	return l.a[unit]
}

// Step advances every unit by one Euler step and applies threshold/reset.
// Non-finite state aborts the run with an engine error naming the unit.
func (l *LIFPopulation) Step(nowMs float64) ([]int, error) {
	l.spiked = l.spiked[:0]
	for i := range l.v {
		dv := (l.vRestMV - l.v[i]) / l.tauMs
		if l.a != nil {
			dv -= l.a[i] / l.tauMs
			l.a[i] -= l.a[i] / l.tauAdaptMs * l.dtMs
		}
		l.v[i] += dv * l.dtMs
		if math.IsNaN(l.v[i]) || math.IsInf(l.v[i], 0) {
			return nil, fmt.Errorf("%w: non-finite membrane potential in %s unit %d at t=%.3fms",
				ErrEngineFailure, l.name, i, nowMs)
		}
		if l.v[i] > l.vThreshMV {
			l.v[i] = l.vResetMV
			if l.a != nil {
				l.a[i] += l.adaptIncMV
			}
			l.spiked = append(l.spiked, i)
		}
	}
	return l.spiked, nil
}
