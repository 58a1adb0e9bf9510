package cmd

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	snn "github.com/vestibular-sim/vestibular-sim/snn"
)

func TestResolveParams_FlagsOverrideDefaults(t *testing.T) {
	flags := runCmd.Flags()
	require.NoError(t, flags.Set("rate", "30"))
	require.NoError(t, flags.Set("duration", "0.25"))
	require.NoError(t, flags.Set("n-cerebellar", "4"))

	got, err := resolveParams(runCmd)
	require.NoError(t, err)

	assert.Equal(t, 30.0, got.InputRateHz)
	assert.Equal(t, 0.25, got.DurationS)
	assert.Equal(t, 4, got.NCerebellar)
	// untouched fields keep library defaults
	assert.Equal(t, snn.DefaultParams().NInput, got.NInput)
	assert.Equal(t, snn.DefaultParams().WInAffMV, got.WInAffMV)
}

func TestRunResult_SummaryPrintedToStdout(t *testing.T) {
	// GIVEN a completed run
	ctx, err := snn.NewSimulationContext(snn.DefaultParams(), 42)
	require.NoError(t, err)
	net, err := snn.BuildNetwork(ctx, snn.Baseline, false)
	require.NoError(t, err)
	result, err := net.Run()
	require.NoError(t, err)

	// Capture stdout
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// WHEN the result is printed
	result.Print()

	// Restore stdout and read captured output
	_ = w.Close()
	os.Stdout = old
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	output := buf.String()

	// THEN the scenario label and all three counts appear
	assert.Contains(t, output, "Scenario: baseline")
	assert.Contains(t, output, "Input spikes")
	assert.Contains(t, output, "Afferent spikes")
	assert.Contains(t, output, "Cerebellar spikes")
}
