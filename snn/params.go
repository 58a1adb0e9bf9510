package snn

import (
	"fmt"
	"math"
)

// Params holds the base parameters of the three-layer vestibular network.
// Scenario resolution (see Scenario.Resolve) derives the effective rate and
// weights from these defaults; everything else is used as-is.
//
// Units follow the physiology convention: millivolts for potentials and
// weights, milliseconds for time constants and the integration step, seconds
// for the run duration, Hz for the input rate.
type Params struct {
	NInput      int `json:"n_input" yaml:"n_input"`
	NAfferent   int `json:"n_afferent" yaml:"n_afferent"`
	NCerebellar int `json:"n_cerebellar" yaml:"n_cerebellar"`

	// InputRateHz is the per-unit Poisson rate of the hair-cell layer.
	InputRateHz float64 `json:"input_rate_hz" yaml:"input_rate_hz"`

	// WInAffMV and WAffCerMV are the per-spike increments delivered by the
	// input→afferent and afferent→cerebellar projections.
	WInAffMV  float64 `json:"w_in_aff_mv" yaml:"w_in_aff_mv"`
	WAffCerMV float64 `json:"w_aff_cer_mv" yaml:"w_aff_cer_mv"`

	// Membrane and adaptation dynamics, shared by both LIF layers.
	TauMs      float64 `json:"tau_ms" yaml:"tau_ms"`
	TauAdaptMs float64 `json:"tau_adapt_ms" yaml:"tau_adapt_ms"`
	AdaptIncMV float64 `json:"adapt_inc_mv" yaml:"adapt_inc_mv"`
	VRestMV    float64 `json:"v_rest_mv" yaml:"v_rest_mv"`
	VResetMV   float64 `json:"v_reset_mv" yaml:"v_reset_mv"`
	VThreshMV  float64 `json:"v_thresh_mv" yaml:"v_thresh_mv"`

	DurationS float64 `json:"duration_s" yaml:"duration_s"`
	DtMs      float64 `json:"dt_ms" yaml:"dt_ms"`
}

// DefaultParams returns the reference configuration of the vestibular
// pathway: 10 hair cells driving 10 afferents one-to-one, fanning in to
// 5 cerebellar integrators, 1 s of simulated time at a 0.1 ms step.
func DefaultParams() Params {
	return Params{
		NInput:      10,
		NAfferent:   10,
		NCerebellar: 5,
		InputRateHz: 50.0,
		WInAffMV:    1.0,
		WAffCerMV:   1.2,
		TauMs:       10.0,
		TauAdaptMs:  100.0,
		AdaptIncMV:  2.0,
		VRestMV:     -65.0,
		VResetMV:    -65.0,
		VThreshMV:   -50.0,
		DurationS:   1.0,
		DtMs:        0.1,
	}
}

// Validate checks every field that must be strictly positive (or, for the
// input rate, non-negative) before any simulation resources are created.
// The returned error names the offending field and value.
func (p Params) Validate() error {
	if p.NInput <= 0 {
		return fmt.Errorf("%w: n_input must be > 0, got %d", ErrInvalidParameter, p.NInput)
	}
	if p.NAfferent <= 0 {
		return fmt.Errorf("%w: n_afferent must be > 0, got %d", ErrInvalidParameter, p.NAfferent)
	}
	if p.NCerebellar <= 0 {
		return fmt.Errorf("%w: n_cerebellar must be > 0, got %d", ErrInvalidParameter, p.NCerebellar)
	}
	if p.InputRateHz < 0 || math.IsNaN(p.InputRateHz) {
		return fmt.Errorf("%w: input_rate_hz must be >= 0, got %v", ErrInvalidParameter, p.InputRateHz)
	}
	if p.TauMs <= 0 {
		return fmt.Errorf("%w: tau_ms must be > 0, got %v", ErrInvalidParameter, p.TauMs)
	}
	if p.TauAdaptMs <= 0 {
		return fmt.Errorf("%w: tau_adapt_ms must be > 0, got %v", ErrInvalidParameter, p.TauAdaptMs)
	}
	if p.DurationS <= 0 {
		return fmt.Errorf("%w: duration_s must be > 0, got %v", ErrInvalidParameter, p.DurationS)
	}
	if p.DtMs <= 0 {
		return fmt.Errorf("%w: dt_ms must be > 0, got %v", ErrInvalidParameter, p.DtMs)
	}
	return nil
}

// Steps returns the number of fixed-size integration steps covering the
// configured duration.
func (p Params) Steps() int {
	return int(math.Round(p.DurationS * 1000.0 / p.DtMs))
}
