package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	snn "github.com/vestibular-sim/vestibular-sim/snn"
)

var (
	// CLI flags for scenario selection and run control
	mode     string  // Pathology scenario to simulate
	duration float64 // Simulation duration (seconds)
	dt       float64 // Integration step (milliseconds)
	seed     int64   // Seed for the Poisson input process
	logLevel string  // Log verbosity level

	// CLI flags for network parameters
	nInput      int     // Hair-cell layer size
	nAfferent   int     // Afferent layer size
	nCerebellar int     // Cerebellar layer size
	inputRate   float64 // Hair-cell Poisson rate (Hz)
	wInAff      float64 // Input→afferent weight (mV)
	wAffCer     float64 // Afferent→cerebellar weight (mV)

	// CLI flags for parameter presets and result persistence
	paramsFile   string // YAML preset file path
	presetName   string // Preset name within the YAML file
	resultsDir   string // Directory for persisted results (empty = stdout only)
	recordSpikes bool   // Record full (time, unit) spike traces
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "vestibular-sim",
	Short: "Spiking-network simulator for vestibular pathology scenarios",
}

// runCmd executes one scenario simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one vestibular pathway scenario",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		// Reject the scenario string before any network resources exist
		scenario, err := snn.ParseScenario(mode)
		if err != nil {
			logrus.Fatalf("Invalid scenario: %v", err)
		}

		params, err := resolveParams(cmd)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		ctx, err := snn.NewSimulationContext(params, seed)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		net, err := snn.BuildNetwork(ctx, scenario, recordSpikes)
		if err != nil {
			logrus.Fatalf("Could not build network: %v", err)
		}

		result, err := net.Run()
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		result.Print()
		if resultsDir != "" {
			if err := result.Save(resultsDir); err != nil {
				logrus.Fatalf("Could not persist results: %v", err)
			}
			logrus.Infof("Results written to %s", resultsDir)
		}
	},
}

// resolveParams layers the run configuration: library defaults, then the
// YAML preset (when given), then any flag the user set explicitly.
func resolveParams(cmd *cobra.Command) (snn.Params, error) {
	params := snn.DefaultParams()

	if paramsFile != "" {
		loaded, err := LoadPreset(paramsFile, presetName, params)
		if err != nil {
			return snn.Params{}, err
		}
		params = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("duration") {
		params.DurationS = duration
	}
	if flags.Changed("dt") {
		params.DtMs = dt
	}
	if flags.Changed("n-input") {
		params.NInput = nInput
	}
	if flags.Changed("n-afferent") {
		params.NAfferent = nAfferent
	}
	if flags.Changed("n-cerebellar") {
		params.NCerebellar = nCerebellar
	}
	if flags.Changed("rate") {
		params.InputRateHz = inputRate
	}
	if flags.Changed("w-in-aff") {
		params.WInAffMV = wInAff
	}
	if flags.Changed("w-aff-cer") {
		params.WAffCerMV = wAffCer
	}
	return params, nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	defaults := snn.DefaultParams()

	runCmd.Flags().StringVar(&mode, "mode", "baseline", "Scenario (baseline, hypofunction, afferent_silencing, synaptic_blockade)")
	runCmd.Flags().Float64Var(&duration, "duration", defaults.DurationS, "Simulation duration (seconds)")
	runCmd.Flags().Float64Var(&dt, "dt", defaults.DtMs, "Integration step (milliseconds)")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for the Poisson input process")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Network parameters
	runCmd.Flags().IntVar(&nInput, "n-input", defaults.NInput, "Hair-cell layer size")
	runCmd.Flags().IntVar(&nAfferent, "n-afferent", defaults.NAfferent, "Afferent layer size")
	runCmd.Flags().IntVar(&nCerebellar, "n-cerebellar", defaults.NCerebellar, "Cerebellar layer size")
	runCmd.Flags().Float64Var(&inputRate, "rate", defaults.InputRateHz, "Baseline hair-cell Poisson rate (Hz)")
	runCmd.Flags().Float64Var(&wInAff, "w-in-aff", defaults.WInAffMV, "Input→afferent synaptic weight (mV)")
	runCmd.Flags().Float64Var(&wAffCer, "w-aff-cer", defaults.WAffCerMV, "Afferent→cerebellar synaptic weight (mV)")

	// Presets and persistence
	runCmd.Flags().StringVar(&paramsFile, "params", "", "YAML parameter preset file")
	runCmd.Flags().StringVar(&presetName, "preset", "default", "Preset name within the params file")
	runCmd.Flags().StringVar(&resultsDir, "results-dir", "", "Persist results under this directory (created if absent)")
	runCmd.Flags().BoolVar(&recordSpikes, "record-spikes", false, "Record full spike traces (time, unit) per population")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
