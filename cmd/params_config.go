package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	snn "github.com/vestibular-sim/vestibular-sim/snn"
)

// Define struct for YAML preset files. All fields are pointers so a preset
// can override any subset of the base parameters and leave the rest alone.
type PresetsConfig struct {
	Presets map[string]Preset `yaml:"presets"`
}

type Preset struct {
	NInput      *int     `yaml:"n_input"`
	NAfferent   *int     `yaml:"n_afferent"`
	NCerebellar *int     `yaml:"n_cerebellar"`
	InputRateHz *float64 `yaml:"input_rate_hz"`
	WInAffMV    *float64 `yaml:"w_in_aff_mv"`
	WAffCerMV   *float64 `yaml:"w_aff_cer_mv"`
	TauMs       *float64 `yaml:"tau_ms"`
	TauAdaptMs  *float64 `yaml:"tau_adapt_ms"`
	AdaptIncMV  *float64 `yaml:"adapt_inc_mv"`
	VRestMV     *float64 `yaml:"v_rest_mv"`
	VResetMV    *float64 `yaml:"v_reset_mv"`
	VThreshMV   *float64 `yaml:"v_thresh_mv"`
	DurationS   *float64 `yaml:"duration_s"`
	DtMs        *float64 `yaml:"dt_ms"`
}

// LoadPreset reads a YAML preset file and applies the named preset on top
// of the base parameters. A missing file or unknown preset name is an
// error; partial presets only touch the fields they set.
func LoadPreset(path string, name string, base snn.Params) (snn.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return snn.Params{}, fmt.Errorf("read params file: %w", err)
	}

	var cfg PresetsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return snn.Params{}, fmt.Errorf("parse params file %s: %w", path, err)
	}

	preset, ok := cfg.Presets[name]
	if !ok {
		return snn.Params{}, fmt.Errorf("preset %q not found in %s", name, path)
	}
	logrus.Infof("Using parameter preset %v from %v", name, path)
	return preset.apply(base), nil
}

func (pr Preset) apply(base snn.Params) snn.Params {
	p := base
	if pr.NInput != nil {
		p.NInput = *pr.NInput
	}
	if pr.NAfferent != nil {
		p.NAfferent = *pr.NAfferent
	}
	if pr.NCerebellar != nil {
		p.NCerebellar = *pr.NCerebellar
	}
	if pr.InputRateHz != nil {
		p.InputRateHz = *pr.InputRateHz
	}
	if pr.WInAffMV != nil {
		p.WInAffMV = *pr.WInAffMV
	}
	if pr.WAffCerMV != nil {
		p.WAffCerMV = *pr.WAffCerMV
	}
	if pr.TauMs != nil {
		p.TauMs = *pr.TauMs
	}
	if pr.TauAdaptMs != nil {
		p.TauAdaptMs = *pr.TauAdaptMs
	}
	if pr.AdaptIncMV != nil {
		p.AdaptIncMV = *pr.AdaptIncMV
	}
	if pr.VRestMV != nil {
		p.VRestMV = *pr.VRestMV
	}
	if pr.VResetMV != nil {
		p.VResetMV = *pr.VResetMV
	}
	if pr.VThreshMV != nil {
		p.VThreshMV = *pr.VThreshMV
	}
	if pr.DurationS != nil {
		p.DurationS = *pr.DurationS
	}
	if pr.DtMs != nil {
		p.DtMs = *pr.DtMs
	}
	return p
}
