//go:build !lambda

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	jsonOut          bool
	verbose          bool
	configPath       string
	noPriorityCutoff bool
	noRedundancySkip bool

	logger *zap.Logger
)

// Result is the JSON-serializable outcome of one optimization run.
type Result struct {
	Priority     int    `json:"priority"`
	Total        int    `json:"total"`
	Cost         int    `json:"cost"`
	TripodMask   uint64 `json:"tripodMask"`
	Items        []int  `json:"items"`
	Found        bool   `json:"found"`
	Improvements int    `json:"improvements"`
	TimeMs       int64  `json:"timeMs"`
}

var rootCmd = &cobra.Command{
	Use:   "tripod-optimizer <catalog.json>",
	Short: "Tripod library assignment optimizer",
	Long: `tripod-optimizer picks which items to store in the tripod library.

Given a catalog of items (each occupying one equipment row and granting up
to 3 tripods) and the number of free library slots per row, it searches for
the item set that maximizes, in order:

  1. the number of stored high-priority tripods,
  2. the number of stored tripods overall,
  3. minus the total gold cost of bought items.

Every improving assignment is printed as the search finds it; the last one
is the optimum.`,
	Args: cobra.ExactArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runOptimize,
}

var validateCmd = &cobra.Command{
	Use:   "validate <catalog.json>",
	Short: "Parse a catalog and report its statistics without searching",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := LoadCatalog(args[0])
		if err != nil {
			return err
		}
		fmt.Print(FormatCatalogSummary(cat))
		return nil
	},
}

func buildConfig() (Config, error) {
	cfg := DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
	}
	if noPriorityCutoff {
		cfg.DisablePriorityCutoff = true
	}
	if noRedundancySkip {
		cfg.DisableRedundancySkip = true
	}
	return cfg, nil
}

func runOptimize(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cat, err := LoadCatalog(args[0])
	if err != nil {
		return err
	}

	logger.Info("catalog loaded",
		zap.Int("items", len(cat.Items)),
		zap.Int("tripods", cat.NumTripods),
		zap.Int("priority", cat.PriorityTripods))

	s := NewSearcher(cat, cfg)
	improvements := 0
	start := time.Now()
	best, found := s.Run(func(sol Solution) {
		improvements++
		logger.Debug("improved assignment",
			zap.Int("priority", sol.Priority),
			zap.Int("total", sol.Total),
			zap.Int("cost", sol.Score.Cost))
		if !jsonOut {
			fmt.Print(FormatSolution(cat, sol))
		}
	})
	elapsed := time.Since(start)

	if !found {
		logger.Warn("no assignment found",
			zap.Bool("priorityCutoff", !cfg.DisablePriorityCutoff))
		if !cfg.DisablePriorityCutoff {
			fmt.Fprintln(os.Stderr, "no assignment found; retry with --no-priority-cutoff in case no full-priority assignment exists")
		}
	}

	logger.Info("search finished",
		zap.Int("improvements", improvements),
		zap.Duration("elapsed", elapsed))

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(Result{
			Priority:     best.Priority,
			Total:        best.Total,
			Cost:         best.Score.Cost,
			TripodMask:   best.Score.Tripods,
			Items:        best.Items,
			Found:        found,
			Improvements: improvements,
			TimeMs:       elapsed.Milliseconds(),
		})
	}
	if found {
		fmt.Printf("best: %d/%d priority tripods, %d/%d tripods, cost %d (%.1fs)\n",
			best.Priority, s.prioCount, best.Total, cat.NumTripods,
			best.Score.Cost, elapsed.Seconds())
	}
	return nil
}

func main() {
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output the final result as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each improving assignment")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file overriding search options")
	rootCmd.Flags().BoolVar(&noPriorityCutoff, "no-priority-cutoff", false, "disable the priority-cutoff prune (needed when no assignment can obtain every priority tripod)")
	rootCmd.Flags().BoolVar(&noRedundancySkip, "no-redundancy-skip", false, "disable the redundancy skip (slower, result unchanged)")
	rootCmd.AddCommand(validateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
