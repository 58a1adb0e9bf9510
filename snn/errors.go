package snn

import "errors"

// Sentinel errors for the three failure classes of a simulation run.
// All are fatal to the run: no partial spike counts are ever reported.
var (
	// ErrInvalidScenario indicates an unrecognized scenario mode string.
	ErrInvalidScenario = errors.New("invalid scenario")

	// ErrInvalidParameter indicates a non-positive size, step, duration,
	// or a wiring constraint violation caught before the run starts.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrEngineFailure indicates the integrator produced non-finite state,
	// typically from a numerically unstable step size.
	ErrEngineFailure = errors.New("engine failure")
)
