package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/factory-sim/factory-sim/sim"
	"github.com/factory-sim/factory-sim/sim/trace"
)

var (
	// CLI flags for the single-day inspector. Separate from the campaign
	// runner's flags so the two commands never share state.
	daySeed     int64
	dayLogLevel string
	dayTrace    string

	// Line parameters
	dayArrivalMean  float64
	dayPrepMean     float64
	dayAssemblyMean float64
	dayTestingMean  float64

	// Machines per station
	dayPrepMachines     int
	dayAssemblyMachines int
	dayTestingMachines  int
)

// dayCmd runs one isolated day and prints what happened on the line.
var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Run a single day in isolation and inspect the line",
	Long: "Runs one day with no campaign state and no backlog, then prints " +
		"per-station statistics. With --trace orders it also prints every " +
		"order's journey through the line.",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(dayLogLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", dayLogLevel)
		}
		logrus.SetLevel(level)

		if !trace.IsValidLevel(dayTrace) {
			logrus.Fatalf("Invalid trace level: %s (want none or orders)", dayTrace)
		}

		cfg := sim.DefaultConfig()
		cfg.ArrivalRateMean = dayArrivalMean
		cfg.ProcessTimes[sim.StagePrep] = dayPrepMean
		cfg.ProcessTimes[sim.StageAssembly] = dayAssemblyMean
		cfg.ProcessTimes[sim.StageTesting] = dayTestingMean
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		counts := sim.MachineCounts{
			sim.StagePrep:     dayPrepMachines,
			sim.StageAssembly: dayAssemblyMachines,
			sim.StageTesting:  dayTestingMachines,
		}

		key := sim.NewSimulationKey(daySeed)
		if !cmd.Flags().Changed("seed") {
			key, err = sim.NewRandomKey()
			if err != nil {
				logrus.Fatalf("Unable to generate a seed: %v", err)
			}
		}

		s, carried, err := inspectDay(cfg, counts, key, trace.Level(dayTrace))
		if err != nil {
			logrus.Fatalf("Day failed: %v", err)
		}
		printDayReport(s, carried)
	},
}

// inspectDay runs one isolated day with the given capacities and returns the
// finished simulator together with its end-of-day snapshot.
func inspectDay(cfg *sim.Config, counts sim.MachineCounts, key sim.SimulationKey, level trace.Level) (*sim.Simulator, []sim.CarriedOrder, error) {
	s, err := sim.NewSimulator(cfg, counts, key, 0, 0)
	if err != nil {
		return nil, nil, err
	}
	if level == trace.LevelOrders {
		s.Trace = trace.NewLineTrace(trace.Config{Level: level})
	}
	s.GenerateArrivals()
	s.Run()
	return s, s.Snapshot(), nil
}

// printDayReport displays station statistics and, when traced, order journeys.
func printDayReport(s *sim.Simulator, carried []sim.CarriedOrder) {
	var revenue int64
	for _, c := range s.Completed {
		revenue += c.Revenue
	}

	fmt.Println("=== Day Report ===")
	fmt.Printf("Arrivals       : %d\n", s.Arrivals())
	fmt.Printf("Completed      : %d\n", len(s.Completed))
	fmt.Printf("Carried Over   : %d\n", len(carried))
	fmt.Printf("Revenue        : %d\n", revenue)
	fmt.Println("Stations:")
	fmt.Printf("  %-10s %9s %10s %9s %10s %8s %9s\n", "station", "admitted", "completed", "peakBusy", "peakQueue", "endBusy", "endQueue")
	for _, stage := range sim.ProcessStages() {
		st := s.Stats[stage]
		fmt.Printf("  %-10s %9d %10d %9d %10d %8d %9d\n", stage, st.Admitted, st.Completed, st.PeakBusy, st.PeakQueue, st.EndBusy, st.EndQueue)
	}

	if !s.Trace.Enabled() {
		return
	}

	fmt.Println("=== Order Journeys ===")
	for _, r := range s.Trace.Orders {
		if r.Stage == "" {
			fmt.Printf("[%08.3fh] order %-4d %s\n", r.Clock, r.OrderID, r.Event)
		} else {
			fmt.Printf("[%08.3fh] order %-4d %s at %s\n", r.Clock, r.OrderID, r.Event, r.Stage)
		}
	}
	summary := trace.Summarize(s.Trace)
	fmt.Printf("Queue Joins    : %d\n", summary.QueueJoins)
	if summary.BusiestStage != "" {
		fmt.Printf("Busiest Station: %s\n", summary.BusiestStage)
	}
}

// init sets up the day command's flags
func init() {
	defaults := sim.DefaultConfig()

	dayCmd.Flags().Int64Var(&daySeed, "seed", 0, "Seed for the day (omitted = random)")
	dayCmd.Flags().StringVar(&dayLogLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	dayCmd.Flags().StringVar(&dayTrace, "trace", "none", "Trace level (none, orders)")

	// Line parameters
	dayCmd.Flags().Float64Var(&dayArrivalMean, "arrival-mean", defaults.ArrivalRateMean, "Mean order inter-arrival gap (hours)")
	dayCmd.Flags().Float64Var(&dayPrepMean, "prep-mean", defaults.ProcessTimes[sim.StagePrep], "Mean Prep service time (hours)")
	dayCmd.Flags().Float64Var(&dayAssemblyMean, "assembly-mean", defaults.ProcessTimes[sim.StageAssembly], "Mean Assembly service time (hours)")
	dayCmd.Flags().Float64Var(&dayTestingMean, "testing-mean", defaults.ProcessTimes[sim.StageTesting], "Mean Testing service time (hours)")

	// Machines per station
	dayCmd.Flags().IntVar(&dayPrepMachines, "prep-machines", 1, "Prep machines")
	dayCmd.Flags().IntVar(&dayAssemblyMachines, "assembly-machines", 1, "Assembly machines")
	dayCmd.Flags().IntVar(&dayTestingMachines, "testing-machines", 1, "Testing machines")

	rootCmd.AddCommand(dayCmd)
}
