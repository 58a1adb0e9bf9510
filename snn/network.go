package snn

import (
	"github.com/sirupsen/logrus"
)

// Population layer names, also used in result output and spike traces.
const (
	LayerInput      = "input"
	LayerAfferent   = "afferent"
	LayerCerebellar = "cerebellar"
)

// Network is one fully wired instance of the three-layer vestibular
// pathway: hair-cell Poisson input, adapting LIF afferents, and LIF
// cerebellar integrators, joined by the one-to-one and modulo fan-in
// projections. A network is built for exactly one scenario and one run.
type Network struct {
	ctx      *SimulationContext
	scenario Scenario
	params   Params // scenario-resolved

	input      *PoissonPopulation
	afferent   *LIFPopulation
	cerebellar *LIFPopulation
	inToAff    *Projection
	affToCer   *Projection

	monInput      *SpikeMonitor
	monAfferent   *SpikeMonitor
	monCerebellar *SpikeMonitor
}

// BuildNetwork resolves the scenario against the context's base parameters
// and assembles populations, projections, and monitors. Wiring errors (such
// as an input/afferent size mismatch) surface here, before the run starts.
// When recordSpikes is true, the monitors keep full event traces.
func BuildNetwork(ctx *SimulationContext, scenario Scenario, recordSpikes bool) (*Network, error) {
	if err := ctx.configure(); err != nil {
		return nil, err
	}
	params := scenario.Resolve(ctx.Base)

	n := &Network{
		ctx:      ctx,
		scenario: scenario,
		params:   params,

		input:      NewPoissonPopulation(ctx, LayerInput, params.NInput, params.InputRateHz),
		afferent:   NewLIFPopulation(ctx, LayerAfferent, params.NAfferent, true),
		cerebellar: NewLIFPopulation(ctx, LayerCerebellar, params.NCerebellar, false),

		monInput:      NewSpikeMonitor(LayerInput, recordSpikes),
		monAfferent:   NewSpikeMonitor(LayerAfferent, recordSpikes),
		monCerebellar: NewSpikeMonitor(LayerCerebellar, recordSpikes),
	}

	var err error
	n.inToAff, err = NewOneToOneProjection("input_afferent", params.NInput, n.afferent, params.WInAffMV)
	if err != nil {
		return nil, err
	}
	n.affToCer, err = NewModuloFanInProjection("afferent_cerebellar", params.NAfferent, n.cerebellar, params.WAffCerMV)
	if err != nil {
		return nil, err
	}

	logrus.Debugf("built network: scenario=%s sizes=%d/%d/%d rate=%.1fHz w=%.2f/%.2fmV",
		scenario, params.NInput, params.NAfferent, params.NCerebellar,
		params.InputRateHz, params.WInAffMV, params.WAffCerMV)
	return n, nil
}

// Params returns the scenario-resolved parameters the network was built with.
func (n *Network) Params() Params { return n.params }

// Run advances all three populations and both projections under the single
// global clock for the configured duration, then reports the per-population
// spike counts. A run either completes fully or fails with no result; the
// context is consumed either way.
func (n *Network) Run() (*Result, error) {
	if err := n.ctx.beginRun(); err != nil {
		return nil, err
	}
	defer n.ctx.finishRun()

	steps := n.params.Steps()
	logrus.Infof("running scenario=%s for %d steps (%.3fs at dt=%.3fms, seed=%d)",
		n.scenario, steps, n.params.DurationS, n.params.DtMs, n.ctx.Seed)

	for step := 0; step < steps; step++ {
		n.ctx.advance()
		now := n.ctx.NowMs()

		inSpikes, err := n.input.Step(now)
		if err != nil {
			return nil, err
		}
		n.monInput.Observe(now, inSpikes)
		n.inToAff.Deliver(inSpikes)

		affSpikes, err := n.afferent.Step(now)
		if err != nil {
			return nil, err
		}
		n.monAfferent.Observe(now, affSpikes)
		n.affToCer.Deliver(affSpikes)

		cerSpikes, err := n.cerebellar.Step(now)
		if err != nil {
			return nil, err
		}
		n.monCerebellar.Observe(now, cerSpikes)

		if len(inSpikes)+len(affSpikes)+len(cerSpikes) > 0 {
			logrus.Tracef("[t=%08.3fms] spikes input=%d afferent=%d cerebellar=%d",
				now, len(inSpikes), len(affSpikes), len(cerSpikes))
		}
	}

	logrus.Infof("scenario=%s complete: input=%d afferent=%d cerebellar=%d",
		n.scenario, n.monInput.Count(), n.monAfferent.Count(), n.monCerebellar.Count())

	return &Result{
		Scenario:         n.scenario.String(),
		Seed:             n.ctx.Seed,
		Params:           n.params,
		InputSpikes:      n.monInput.Count(),
		AfferentSpikes:   n.monAfferent.Count(),
		CerebellarSpikes: n.monCerebellar.Count(),
		InputEvents:      n.monInput.Events(),
		AfferentEvents:   n.monAfferent.Events(),
		CerebellarEvents: n.monCerebellar.Events(),
	}, nil
}
