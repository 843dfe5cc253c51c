package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tubuyakinote/disney-konzatsu-navi/planner"
	"github.com/tubuyakinote/disney-konzatsu-navi/planner/dataset"
	"github.com/tubuyakinote/disney-konzatsu-navi/planner/timeline"
)

var (
	// shared flags
	logLevel   string // log verbosity level
	parkConfig string // optional park/engine config file

	// plan flags
	catalogPath string // attraction catalog file ("" = built-in demo table)
	waitsPath   string // hourly wait dataset
	availPath   string // availability dataset
	picksPath   string // guest selections

	// score flags
	crowd           string
	party           string
	tolerance       int
	happyEntry      bool
	vacationPackage bool
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "konzatsu-navi",
	Short: "Day-itinerary planner and load scorer for a capacity-constrained park",
}

// loadInputs assembles the engine inputs shared by the subcommands.
func loadInputs() (planner.Config, *planner.Catalog, []planner.Selection, error) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return planner.Config{}, nil, nil, fmt.Errorf("invalid log level %q", logLevel)
	}
	logrus.SetLevel(level)

	cfg, err := LoadParkConfig(parkConfig)
	if err != nil {
		return planner.Config{}, nil, nil, err
	}

	catalog := planner.DefaultCatalog()
	if catalogPath != "" {
		catalog, err = dataset.LoadCatalog(catalogPath)
		if err != nil {
			return planner.Config{}, nil, nil, err
		}
	}

	var picks []planner.Selection
	if picksPath != "" {
		picks, err = dataset.LoadPicks(picksPath)
		if err != nil {
			return planner.Config{}, nil, nil, err
		}
	}
	return cfg, catalog, picks, nil
}

// planCmd runs the greedy scheduler over the picks and prints the timeline.
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute a feasible same-day order for the selected attractions",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, catalog, picks, err := loadInputs()
		if err != nil {
			return err
		}

		waits := planner.NewWaitTable(cfg.Window, cfg.FallbackWaitMin, cfg.JitterMinutes, cfg.JitterSeed, nil)
		if waitsPath != "" {
			waits, err = dataset.LoadWaits(waitsPath, cfg)
			if err != nil {
				return err
			}
		}
		avail := planner.NewAvailabilityTable(cfg.Window, nil)
		if availPath != "" {
			avail, err = dataset.LoadAvailability(availPath, cfg)
			if err != nil {
				return err
			}
		}

		logrus.Infof("planning %d picks across %s-%s", len(picks), cfg.Window.Open, cfg.Window.Close)
		result := planner.NewScheduler(cfg, catalog, waits, avail).Plan(picks)

		for _, line := range timeline.Lines(timeline.Build(result.Actions)) {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		if len(result.Unsatisfied) > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "\ncould not be scheduled today:")
			for _, u := range result.Unsatisfied {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s (%s)\n", u.Selection, u.Reason)
			}
		}
		return nil
	},
}

// scoreCmd computes the load score and verdict for the picks.
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Estimate how hard the selected day will be",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, catalog, picks, err := loadInputs()
		if err != nil {
			return err
		}

		conditions := planner.Conditions{
			Crowd:            planner.Crowd(crowd),
			Party:            planner.Party(party),
			ToleranceMinutes: tolerance,
			HappyEntry:       happyEntry,
			VacationPackage:  vacationPackage,
		}

		score := planner.Score(picks, catalog)
		limit := planner.Limit(cfg.BaseLimit, conditions)
		verdict := planner.EvaluateVerdict(score, limit)

		fmt.Fprintf(cmd.OutOrStdout(), "score:   %.1f\n", score)
		fmt.Fprintf(cmd.OutOrStdout(), "limit:   %.1f\n", limit)
		fmt.Fprintf(cmd.OutOrStdout(), "verdict: %s (%.0f%%)\n", verdict.Label, verdict.Ratio*100)
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", verdict.Message)
		return nil
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
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&parkConfig, "config", "", "Park configuration file (YAML)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Attraction catalog file (YAML, default: built-in demo table)")
	rootCmd.PersistentFlags().StringVar(&picksPath, "picks", "", "Selected attractions file (YAML)")

	planCmd.Flags().StringVar(&waitsPath, "waits", "", "Hourly wait dataset (YAML)")
	planCmd.Flags().StringVar(&availPath, "availability", "", "Reservation availability dataset (YAML)")

	scoreCmd.Flags().StringVar(&crowd, "crowd", string(planner.CrowdNormal), "Expected crowding (quiet, normal, busy, peak)")
	scoreCmd.Flags().StringVar(&party, "party", string(planner.PartyAdults), "Party mix (adults, preschool, lower-elementary, upper-elementary)")
	scoreCmd.Flags().IntVar(&tolerance, "wait-tolerance", 60, "Longest acceptable single wait in minutes (30, 60, 90)")
	scoreCmd.Flags().BoolVar(&happyEntry, "happy-entry", false, "Staying on-site with early entry")
	scoreCmd.Flags().BoolVar(&vacationPackage, "vacation-package", false, "Holding a vacation package")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(scoreCmd)
}
