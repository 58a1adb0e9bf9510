// Package snn implements a fixed-step simulation of a three-layer
// vestibular sensory pathway: a hair-cell layer emitting Poisson spike
// trains, an afferent layer of leaky-integrate-and-fire units with
// spike-triggered adaptation, and a cerebellar layer of plain
// leaky-integrate-and-fire integrators.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - scenario.go: the closed scenario set and the pure mode → parameter resolution
//   - population.go: the Poisson source and the Euler-stepped LIF dynamics
//   - network.go: assembly of the layers/projections and the sequential run loop
//
// # Lifecycle
//
// A run is built around a SimulationContext that owns the global clock and
// all randomness for exactly one network:
//
//	ctx, err := snn.NewSimulationContext(params, seed)
//	net, err := snn.BuildNetwork(ctx, snn.Hypofunction, false)
//	res, err := net.Run()
//
// The context is consumed by the run and never reused, so nothing leaks
// between scenarios. Everything is single-threaded and deterministic for a
// given seed; randomness comes from per-subsystem PCG streams derived from
// the master seed (see rng.go).
package snn
