package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/seaport-sim/seaport-sim/sim"
)

var (
	// CLI flags for the run subcommand
	scenarioName string // Curated scenario preset ("baseline" or "improved")
	configPath   string // Optional YAML config file (replaces the preset)
	overridePath string // Optional YAML overrides applied on top of the base config
	outputPath   string // Optional JSON output path for the SimulationResult
	seed         int64  // Master seed for all random draws
	horizonMins  float64
	logLevel     string // Log verbosity level

	// CLI flags for the compare subcommand
	compareOutputPath string // Optional JSON output path for the comparison report
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "seaport-sim",
	Short: "Discrete-event simulator for seaport container flow",
}

// runCmd executes one simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the container-flow simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, err := resolveConfig(cmd)
		if err != nil {
			logrus.Fatalf("Could not build simulation config: %v", err)
		}

		logrus.Infof("Starting simulation: scenario=%s seed=%d horizon=%.0fmins dwell=%s",
			cfg.Name, cfg.Seed, cfg.HorizonMins, cfg.DwellPolicy)

		s, err := sim.NewSimulator(cfg)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		result := s.Run()
		result.PrintSummary()

		if outputPath != "" {
			if err := WriteResultFile(outputPath, result); err != nil {
				logrus.Fatalf("Could not write result file: %v", err)
			}
			logrus.Infof("Result written to %s", outputPath)
		}
	},
}

// resolveConfig builds the effective config: preset or YAML file as the base,
// then the override file, then any explicitly set seed/horizon flags.
func resolveConfig(cmd *cobra.Command) (*sim.SimulationConfig, error) {
	var cfg *sim.SimulationConfig
	var err error

	if configPath != "" {
		cfg, err = LoadConfigFile(configPath)
	} else {
		cfg, err = sim.GetScenario(scenarioName)
	}
	if err != nil {
		return nil, err
	}

	if overridePath != "" {
		overrides, err := LoadOverridesFile(overridePath)
		if err != nil {
			return nil, err
		}
		cfg, err = overrides.Apply(cfg)
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("horizon") {
		cfg.HorizonMins = horizonMins
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// compareCmd computes before/after KPI stats from two exported result files
var compareCmd = &cobra.Command{
	Use:   "compare <baseline.json> <after.json>",
	Short: "Compare KPIs of two exported simulation results",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		baseline, err := LoadResultFile(args[0])
		if err != nil {
			logrus.Fatalf("Could not load baseline result: %v", err)
		}
		after, err := LoadResultFile(args[1])
		if err != nil {
			logrus.Fatalf("Could not load after result: %v", err)
		}

		comparison := sim.Compare(baseline, after)
		comparison.Print()

		if compareOutputPath != "" {
			if err := WriteComparisonFile(compareOutputPath, comparison); err != nil {
				logrus.Fatalf("Could not write comparison file: %v", err)
			}
			logrus.Infof("Comparison written to %s", compareOutputPath)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&scenarioName, "scenario", "baseline", "Curated scenario (baseline, improved)")
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML config file used instead of a curated scenario")
	runCmd.Flags().StringVar(&overridePath, "override", "", "YAML overrides applied on top of the base config")
	runCmd.Flags().StringVar(&outputPath, "output", "", "Write the simulation result to this JSON file")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Master seed for random draws")
	runCmd.Flags().Float64Var(&horizonMins, "horizon", 7*24*60, "Arrival-generation cutoff in simulated minutes")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	compareCmd.Flags().StringVar(&compareOutputPath, "output", "", "Write the comparison report to this JSON file")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
}
