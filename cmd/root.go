package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/sherine-k/fms/pkg/config"
	"github.com/sherine-k/fms/pkg/report"
	"github.com/sherine-k/fms/pkg/simulation"
	"github.com/spf13/cobra"
)

var (
	configFile    string
	years         int
	seed          uint64
	showTimeline  bool
	timelineLimit int
	showSummary   bool
	showChart     bool
	showDetails   bool
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "fms",
	Short: "Factory Maintenance Simulator",
	Long: `A CLI tool that simulates machine failures and repairs on a factory floor.

This tool reads a catalog of machine types and adjuster (repair technician)
groups, steps the factory day by day over the configured horizon, and reports
machine uptime, adjuster utilization, and repair queue behavior.`,
	RunE: runSimulation,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "config.yaml", "Path to configuration file")
	rootCmd.Flags().IntVarP(&years, "years", "y", 0, "Override the number of years to simulate")
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "Override the random seed (0 seeds from the wall clock)")
	rootCmd.Flags().BoolVarP(&showTimeline, "timeline", "t", false, "Show detailed timeline of events")
	rootCmd.Flags().IntVarP(&timelineLimit, "timeline-limit", "l", 50, "Limit number of timeline events to display")
	rootCmd.Flags().BoolVarP(&showSummary, "summary", "s", true, "Show event summary")
	rootCmd.Flags().BoolVar(&showChart, "chart", true, "Show repair queue depth chart")
	rootCmd.Flags().BoolVarP(&showDetails, "details", "d", false, "Show per-type and per-group detail counts")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every simulation event")
}

// loadRunConfig loads the configuration file and applies the command-line
// overrides. An explicit --seed wins even when it is 0, which forces a
// wall-clock seed over one pinned in the file.
func loadRunConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if years > 0 {
		cfg.Years = years
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level: log.InfoLevel,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	fmt.Printf("Loaded configuration from %s\n", configFile)
	fmt.Printf("  - Machine Types: %d\n", len(cfg.MachineTypes))
	fmt.Printf("  - Adjuster Groups: %d\n", len(cfg.AdjusterGroups))
	fmt.Printf("  - Horizon: %d year(s)\n\n", cfg.Years)

	// Create and run simulator
	sim, err := simulation.NewFromConfig(logger, cfg)
	if err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	if err := sim.Run(cfg.Years); err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	gen := report.NewGenerator()
	results := sim.Results()
	events := sim.Timeline()

	fmt.Println(gen.GenerateMachineTable(results))
	fmt.Println(gen.GenerateAdjusterTable(results))
	fmt.Printf("Max repair queue depth: %d\n", results.MaxQueueDepth)

	if showChart {
		fmt.Println(gen.GenerateQueueChart(events, results.MaxQueueDepth))
	}

	if showSummary {
		fmt.Println(gen.GenerateEventSummary(events))
	}

	fmt.Println(gen.GenerateRecentEvents(events, 10))

	if showTimeline {
		fmt.Println(gen.GenerateDetailedTimeline(events, timelineLimit))
	}

	if showDetails {
		for _, mt := range cfg.MachineTypes {
			status, err := sim.MachineTypeStatus(mt.Name)
			if err != nil {
				return err
			}
			fmt.Println(gen.GenerateMachineDetails(status))
		}
		for _, group := range cfg.AdjusterGroups {
			status, err := sim.AdjusterGroupStatus(group.ID)
			if err != nil {
				return err
			}
			fmt.Println(gen.GenerateAdjusterDetails(status))
		}
	}

	return nil
}
