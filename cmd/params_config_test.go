package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	snn "github.com/vestibular-sim/vestibular-sim/snn"
)

func writePresets(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPreset_PartialOverlay(t *testing.T) {
	path := writePresets(t, `
presets:
  weak-drive:
    input_rate_hz: 25.0
    n_cerebellar: 3
`)
	base := snn.DefaultParams()
	got, err := LoadPreset(path, "weak-drive", base)
	require.NoError(t, err)

	assert.Equal(t, 25.0, got.InputRateHz)
	assert.Equal(t, 3, got.NCerebellar)

	// untouched fields keep base values
	assert.Equal(t, base.NInput, got.NInput)
	assert.Equal(t, base.WInAffMV, got.WInAffMV)
	assert.Equal(t, base.DurationS, got.DurationS)
}

func TestLoadPreset_FullOverride(t *testing.T) {
	path := writePresets(t, `
presets:
  tiny:
    n_input: 2
    n_afferent: 2
    n_cerebellar: 1
    input_rate_hz: 5.0
    w_in_aff_mv: 0.5
    w_aff_cer_mv: 0.25
    tau_ms: 20.0
    duration_s: 0.1
    dt_ms: 0.5
`)
	got, err := LoadPreset(path, "tiny", snn.DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, 2, got.NInput)
	assert.Equal(t, 2, got.NAfferent)
	assert.Equal(t, 1, got.NCerebellar)
	assert.Equal(t, 5.0, got.InputRateHz)
	assert.Equal(t, 0.5, got.WInAffMV)
	assert.Equal(t, 0.25, got.WAffCerMV)
	assert.Equal(t, 20.0, got.TauMs)
	assert.Equal(t, 0.1, got.DurationS)
	assert.Equal(t, 0.5, got.DtMs)
	assert.NoError(t, got.Validate())
}

func TestLoadPreset_UnknownName(t *testing.T) {
	path := writePresets(t, `
presets:
  default: {}
`)
	_, err := LoadPreset(path, "missing", snn.DefaultParams())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestLoadPreset_MissingFile(t *testing.T) {
	_, err := LoadPreset(filepath.Join(t.TempDir(), "nope.yaml"), "default", snn.DefaultParams())
	assert.Error(t, err)
}

func TestLoadPreset_MalformedYAML(t *testing.T) {
	path := writePresets(t, "presets: [not a map")
	_, err := LoadPreset(path, "default", snn.DefaultParams())
	assert.Error(t, err)
}
