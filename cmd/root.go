package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// CLI flags; when set they override values from --config
	configPath      string // YAML run configuration
	simulationEnd   int64  // Simulation horizon (in ticks)
	logLevel        string // Log verbosity level
	traceLevel      string // Trace verbosity (none, routing, full)
	maxCycles       int    // Stop after this many cycles (0 = no limit)
	period          int64  // Generator inter-job period
	firstJob        int64  // Delay before the first job
	maxJobs         int    // Generator job limit (0 = unlimited)
	serviceTime     int64  // Processor service time per job
	observationTime int64  // Transducer observation window
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "pdevs",
	Short: "Parallel DEVS simulation kernel",
}

// runCmd executes the ef-p simulation using the config file and CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the generator/processor/transducer experimental frame",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := DefaultRunConfig()
		if configPath != "" {
			loaded, err := LoadRunConfig(configPath)
			if err != nil {
				return err
			}
			cfg = *loaded
		}
		if err := ApplyEnv(&cfg); err != nil {
			return err
		}
		applyFlagOverrides(cmd, &cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}

		// Set up logging
		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", cfg.LogLevel)
		}
		logger := logrus.StandardLogger()
		logger.SetLevel(level)

		logrus.Infof("Starting simulation with horizon=%d ticks, period=%d, service=%d, observation=%d",
			cfg.Horizon, cfg.Generator.Period, cfg.Processor.ServiceTime, cfg.Transducer.ObservationTime)
		startTime := time.Now()

		report, err := runSimulation(cfg, logger)
		if err != nil {
			return err
		}
		if err := report.Print(cmd.OutOrStdout()); err != nil {
			return err
		}
		logrus.Infof("Simulation complete in %s.", time.Since(startTime))
		return nil
	},
}

// applyFlagOverrides copies explicitly set flags over cfg.
func applyFlagOverrides(cmd *cobra.Command, cfg *RunConfig) {
	flags := cmd.Flags()
	if flags.Changed("horizon") {
		cfg.Horizon = simulationEnd
	}
	if flags.Changed("log") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("trace") {
		cfg.TraceLevel = traceLevel
	}
	if flags.Changed("max-cycles") {
		cfg.MaxCycles = maxCycles
	}
	if flags.Changed("period") {
		cfg.Generator.Period = period
	}
	if flags.Changed("first-job") {
		cfg.Generator.FirstJob = firstJob
	}
	if flags.Changed("max-jobs") {
		cfg.Generator.MaxJobs = maxJobs
	}
	if flags.Changed("service-time") {
		cfg.Processor.ServiceTime = serviceTime
	}
	if flags.Changed("observation") {
		cfg.Transducer.ObservationTime = observationTime
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML run configuration")
	runCmd.Flags().Int64Var(&simulationEnd, "horizon", 1000, "Total simulation horizon (in ticks)")
	runCmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Trace level (none, routing, full)")
	runCmd.Flags().IntVar(&maxCycles, "max-cycles", 0, "Stop after this many cycles (0 = no limit)")

	// ef-p model parameters
	runCmd.Flags().Int64Var(&period, "period", 10, "Ticks between generated jobs")
	runCmd.Flags().Int64Var(&firstJob, "first-job", 0, "Ticks before the first job")
	runCmd.Flags().IntVar(&maxJobs, "max-jobs", 0, "Maximum number of jobs to generate (0 = unlimited)")
	runCmd.Flags().Int64Var(&serviceTime, "service-time", 5, "Processor service time per job (in ticks)")
	runCmd.Flags().Int64Var(&observationTime, "observation", 100, "Transducer observation window (in ticks)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
