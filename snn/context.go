package snn

import "fmt"

type contextState int

const (
	ctxCreated contextState = iota
	ctxConfigured
	ctxDone
)

// SimulationContext owns the global clock, the integration step, and all
// randomness for exactly one network build and one run. Its lifecycle is
// created → configured (by BuildNetwork) → done (by Run); a context is
// never reused across scenarios, so no state can leak between runs.
type SimulationContext struct {
	// Base holds the validated base parameters; scenario resolution happens
	// at network-build time, not here.
	Base Params
	Seed int64

	rng     *PartitionedRNG
	clockMs float64
	state   contextState
}

// NewSimulationContext validates the base parameters and, on success,
// creates a fresh context seeded for one run. Validation failure allocates
// nothing beyond the returned error.
func NewSimulationContext(base Params, seed int64) (*SimulationContext, error) {
	if err := base.Validate(); err != nil {
		return nil, err
	}
	return &SimulationContext{
		Base: base,
		Seed: seed,
		rng:  NewPartitionedRNG(seed),
	}, nil
}

// NowMs returns the current simulation time in milliseconds.
func (c *SimulationContext) NowMs() float64 {
	return c.clockMs
}

// configure transitions the context to configured; a context configures at
// most one network.
func (c *SimulationContext) configure() error {
	if c.state != ctxCreated {
		return fmt.Errorf("simulation context already configured; build a fresh context per scenario")
	}
	c.state = ctxConfigured
	return nil
}

// beginRun transitions the context into its single run.
func (c *SimulationContext) beginRun() error {
	if c.state != ctxConfigured {
		return fmt.Errorf("simulation context already consumed; build a fresh context per run")
	}
	return nil
}

func (c *SimulationContext) finishRun() {
	c.state = ctxDone
}

// advance moves the global clock forward by one integration step.
func (c *SimulationContext) advance() {
	c.clockMs += c.Base.DtMs
}
