package snn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func runScenario(t *testing.T, params Params, scenario Scenario, seed int64) *Result {
	t.Helper()
	ctx := testContext(t, params, seed)
	net, err := BuildNetwork(ctx, scenario, false)
	require.NoError(t, err)
	res, err := net.Run()
	require.NoError(t, err)
	return res
}

func TestBuildNetwork_InvalidParamsAllocateNothing(t *testing.T) {
	params := DefaultParams()
	params.NInput = 0
	_, err := NewSimulationContext(params, 1)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestBuildNetwork_SizeMismatchFailsFast(t *testing.T) {
	params := DefaultParams()
	params.NInput = 12 // afferent stays at 10
	ctx := testContext(t, params, 1)
	_, err := BuildNetwork(ctx, Baseline, false)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestNetworkRun_AfferentSilencing(t *testing.T) {
	res := runScenario(t, DefaultParams(), AfferentSilencing, 42)

	// with the input→afferent weight zeroed there is no drive at all past
	// the input layer
	assert.Greater(t, res.InputSpikes, 0)
	assert.Zero(t, res.AfferentSpikes)
	assert.Zero(t, res.CerebellarSpikes)
}

func TestNetworkRun_SynapticBlockade(t *testing.T) {
	res := runScenario(t, DefaultParams(), SynapticBlockade, 42)

	assert.Greater(t, res.InputSpikes, 0)
	assert.Zero(t, res.CerebellarSpikes)
}

func TestNetworkRun_SilencingNeverExceedsBaseline(t *testing.T) {
	base := runScenario(t, DefaultParams(), Baseline, 42)
	silenced := runScenario(t, DefaultParams(), AfferentSilencing, 42)
	assert.LessOrEqual(t, silenced.AfferentSpikes, base.AfferentSpikes)
}

func TestNetworkRun_SameSeedReproducible(t *testing.T) {
	for _, scenario := range Scenarios() {
		a := runScenario(t, DefaultParams(), scenario, 1234)
		b := runScenario(t, DefaultParams(), scenario, 1234)

		assert.Equal(t, a.InputSpikes, b.InputSpikes, scenario.String())
		assert.Equal(t, a.AfferentSpikes, b.AfferentSpikes, scenario.String())
		assert.Equal(t, a.CerebellarSpikes, b.CerebellarSpikes, scenario.String())
	}
}

func TestNetworkRun_ResultCarriesScenarioLabel(t *testing.T) {
	res := runScenario(t, DefaultParams(), Hypofunction, 3)
	assert.Equal(t, "hypofunction", res.Scenario)
	assert.Equal(t, int64(3), res.Seed)
	assert.Equal(t, HypofunctionRateHz, res.Params.InputRateHz)
}

func TestNetworkRun_HypofunctionLowersInputDrive(t *testing.T) {
	// statistical property over repeated seeds: 15 Hz drive must produce
	// fewer input spikes than 50 Hz in expectation
	var baseCounts, hypoCounts []float64
	for seed := int64(0); seed < 12; seed++ {
		baseCounts = append(baseCounts, float64(runScenario(t, DefaultParams(), Baseline, seed).InputSpikes))
		hypoCounts = append(hypoCounts, float64(runScenario(t, DefaultParams(), Hypofunction, seed).InputSpikes))
	}
	assert.Less(t, stat.Mean(hypoCounts, nil), stat.Mean(baseCounts, nil))
}

func TestNetworkRun_StrongWeightsDriveAllLayers(t *testing.T) {
	params := DefaultParams()
	params.WInAffMV = 20.0 // one input spike crosses the 15 mV gap to threshold
	params.WAffCerMV = 20.0

	res := runScenario(t, params, Baseline, 42)
	assert.Greater(t, res.InputSpikes, 0)
	assert.Greater(t, res.AfferentSpikes, 0)
	assert.Greater(t, res.CerebellarSpikes, 0)
}

func TestNetworkRun_RecordSpikesMatchesCounts(t *testing.T) {
	ctx := testContext(t, DefaultParams(), 42)
	net, err := BuildNetwork(ctx, Baseline, true)
	require.NoError(t, err)
	res, err := net.Run()
	require.NoError(t, err)

	assert.Len(t, res.InputEvents, res.InputSpikes)
	assert.Len(t, res.AfferentEvents, res.AfferentSpikes)
	assert.Len(t, res.CerebellarEvents, res.CerebellarSpikes)

	// event times are within the run and non-decreasing
	last := 0.0
	for _, ev := range res.InputEvents {
		assert.GreaterOrEqual(t, ev.TimeMs, last)
		assert.LessOrEqual(t, ev.TimeMs, res.Params.DurationS*1000.0+res.Params.DtMs)
		last = ev.TimeMs
		assert.GreaterOrEqual(t, ev.Unit, 0)
		assert.Less(t, ev.Unit, res.Params.NInput)
	}
}

func TestSimulationContext_RunOnce(t *testing.T) {
	ctx := testContext(t, DefaultParams(), 1)
	net, err := BuildNetwork(ctx, Baseline, false)
	require.NoError(t, err)

	_, err = net.Run()
	require.NoError(t, err)

	_, err = net.Run()
	assert.Error(t, err)
}

func TestSimulationContext_ConfigureOnce(t *testing.T) {
	ctx := testContext(t, DefaultParams(), 1)
	_, err := BuildNetwork(ctx, Baseline, false)
	require.NoError(t, err)

	_, err = BuildNetwork(ctx, Hypofunction, false)
	assert.Error(t, err)
}
