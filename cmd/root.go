package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/factory-sim/factory-sim/sim"
)

var (
	// CLI flags for the campaign runner
	seed     int64  // Master seed; per-day seeds derive from it
	days     int    // Campaign length in days
	logLevel string // Log verbosity level
	planPath string // Capacity plan YAML path

	// Line parameters
	arrivalMean  float64 // Mean order inter-arrival gap (hours)
	prepMean     float64 // Mean Prep service time (hours)
	assemblyMean float64 // Mean Assembly service time (hours)
	testingMean  float64 // Mean Testing service time (hours)

	// Economics
	revenuePerOrder int64
	latePenalty     int64
	machineCost     int64
	startingCash    int64
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "factory-sim",
	Short: "Discrete-event simulator for a three-stage manufacturing line",
}

// runCmd plays a full campaign using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a manufacturing campaign",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := sim.DefaultConfig()
		cfg.ArrivalRateMean = arrivalMean
		cfg.ProcessTimes[sim.StagePrep] = prepMean
		cfg.ProcessTimes[sim.StageAssembly] = assemblyMean
		cfg.ProcessTimes[sim.StageTesting] = testingMean
		cfg.RevenuePerOrder = revenuePerOrder
		cfg.LatePenalty = latePenalty
		cfg.MachineCost = machineCost
		cfg.StartingCash = startingCash
		cfg.CampaignDays = days
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		var plan *CapacityPlan
		if planPath != "" {
			plan, err = LoadCapacityPlan(planPath)
			if err != nil {
				logrus.Fatalf("Unable to read capacity plan: %v", err)
			}
		}

		masterKey := sim.NewSimulationKey(seed)
		if !cmd.Flags().Changed("seed") {
			masterKey, err = sim.NewRandomKey()
			if err != nil {
				logrus.Fatalf("Unable to generate a seed: %v", err)
			}
		}

		state, err := sim.NewCampaignState(cfg)
		if err != nil {
			logrus.Fatalf("Unable to start campaign: %v", err)
		}

		logrus.Infof("Starting campaign: %d days, master seed %d", cfg.CampaignDays, masterKey)
		for !state.Ended() {
			day := state.Day + 1

			if plan != nil {
				requested := plan.TargetsFor(day, state.MachinesOwned)
				cost, err := state.PurchaseMachines(requested)
				if err != nil {
					logrus.Fatalf("Day %d purchase failed: %v", day, err)
				}
				if cost > 0 {
					logrus.Infof("Day %d: bought machines for %d, now own %s", day, cost, state.MachinesOwned)
				}
			}

			result, err := sim.RunDay(state, state.MachinesOwned, sim.DeriveDayKey(masterKey, state.Day))
			if err != nil {
				logrus.Fatalf("Day %d failed: %v", day, err)
			}
			if err := state.ApplyResult(result); err != nil {
				logrus.Fatalf("Day %d could not be applied: %v", day, err)
			}
		}

		sim.BuildCampaignReport(state).Print()
		logrus.Info("Campaign complete.")
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
	defaults := sim.DefaultConfig()

	runCmd.Flags().Int64Var(&seed, "seed", 0, "Master seed for the campaign (omitted = random)")
	runCmd.Flags().IntVar(&days, "days", defaults.CampaignDays, "Campaign length in days")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&planPath, "plan", "", "Capacity plan YAML file")

	// Line parameters
	runCmd.Flags().Float64Var(&arrivalMean, "arrival-mean", defaults.ArrivalRateMean, "Mean order inter-arrival gap (hours)")
	runCmd.Flags().Float64Var(&prepMean, "prep-mean", defaults.ProcessTimes[sim.StagePrep], "Mean Prep service time (hours)")
	runCmd.Flags().Float64Var(&assemblyMean, "assembly-mean", defaults.ProcessTimes[sim.StageAssembly], "Mean Assembly service time (hours)")
	runCmd.Flags().Float64Var(&testingMean, "testing-mean", defaults.ProcessTimes[sim.StageTesting], "Mean Testing service time (hours)")

	// Economics
	runCmd.Flags().Int64Var(&revenuePerOrder, "revenue", defaults.RevenuePerOrder, "Revenue per completed order")
	runCmd.Flags().Int64Var(&latePenalty, "late-penalty", defaults.LatePenalty, "Revenue lost when lead time exceeds the bonus threshold")
	runCmd.Flags().Int64Var(&machineCost, "machine-cost", defaults.MachineCost, "Price of one machine")
	runCmd.Flags().Int64Var(&startingCash, "starting-cash", defaults.StartingCash, "Campaign opening balance")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
