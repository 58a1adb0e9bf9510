package snn

import "fmt"

// Scenario selects one of the four pathology configurations of the
// vestibular pathway. It is a closed set: adding a scenario means adding a
// constant here and a case to Resolve, which the exhaustive switch makes a
// compile-visible change instead of a string comparison buried in a driver.
type Scenario int

const (
	// Baseline runs the network with the configured defaults.
	Baseline Scenario = iota
	// Hypofunction models reduced peripheral drive: the hair-cell rate is
	// forced to 15 Hz regardless of the configured default.
	Hypofunction
	// AfferentSilencing models loss of input→afferent transmission: the
	// input→afferent weight is forced to zero.
	AfferentSilencing
	// SynapticBlockade models loss of afferent→cerebellar transmission: the
	// afferent→cerebellar weight is forced to zero.
	SynapticBlockade
)

// HypofunctionRateHz is the fixed peripheral rate used by Hypofunction.
const HypofunctionRateHz = 15.0

// Scenarios lists every defined scenario in a stable order.
func Scenarios() []Scenario {
	return []Scenario{Baseline, Hypofunction, AfferentSilencing, SynapticBlockade}
}

// ParseScenario maps a CLI mode string to its Scenario. Unknown strings are
// rejected with ErrInvalidScenario before any simulation resources exist.
func ParseScenario(mode string) (Scenario, error) {
	switch mode {
	case "baseline":
		return Baseline, nil
	case "hypofunction":
		return Hypofunction, nil
	case "afferent_silencing":
		return AfferentSilencing, nil
	case "synaptic_blockade":
		return SynapticBlockade, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %q (want baseline|hypofunction|afferent_silencing|synaptic_blockade)", ErrInvalidScenario, mode)
	}
}

func (s Scenario) String() string {
	switch s {
	case Baseline:
		return "baseline"
	case Hypofunction:
		return "hypofunction"
	case AfferentSilencing:
		return "afferent_silencing"
	case SynapticBlockade:
		return "synaptic_blockade"
	default:
		return fmt.Sprintf("scenario(%d)", int(s))
	}
}

// Resolve derives the effective parameters for this scenario from the base
// configuration. It is pure and total over the defined scenarios: the same
// base always resolves to the same tuple, and only the rate or one weight
// ever differs from base.
func (s Scenario) Resolve(base Params) Params {
	p := base
	switch s {
	case Baseline:
		// defaults apply unchanged
	case Hypofunction:
		p.InputRateHz = HypofunctionRateHz
	case AfferentSilencing:
		p.WInAffMV = 0
	case SynapticBlockade:
		p.WAffCerMV = 0
	}
	return p
}
