// Command commtopo analyzes community roster files and emits the
// topological diagnostics as JSON. The core engine is a pure library; this
// binary owns all I/O, configuration, and serialization.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hallcrest/commtopo/analyzer"
	"github.com/hallcrest/commtopo/commgraph"
)

func main() {
	var (
		configPath string
		outputDir  string
		summary    bool
	)

	rootCmd := &cobra.Command{
		Use:   "commtopo",
		Short: "Topological diagnostics for residential community graphs",
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze <roster.json> [roster.json ...]",
		Short: "Run the full analysis pipeline over one or more rosters",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(configPath, outputDir, summary, args)
		},
	}
	analyzeCmd.Flags().StringVar(&configPath, "config", "", "Optional YAML config with analysis parameters")
	analyzeCmd.Flags().StringVar(&outputDir, "output", "", "Directory for result JSON (default: stdout)")
	analyzeCmd.Flags().BoolVar(&summary, "summary", false, "Print the human-readable report instead of JSON")

	rootCmd.AddCommand(analyzeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "commtopo:", err)
		os.Exit(1)
	}
}

// runAnalyze fans out over roster files; each gets its own graph instance,
// so the analyses are independent per the engine's concurrency contract.
func runAnalyze(configPath, outputDir string, summary bool, paths []string) error {
	log, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	graphOpts, analysisOpts, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	var g errgroup.Group
	for _, path := range paths {
		path := path
		g.Go(func() error {
			return analyzeRoster(path, outputDir, summary, graphOpts, analysisOpts, log)
		})
	}

	return g.Wait()
}

// analyzeRoster loads one roster, runs the pipeline, and writes the result.
func analyzeRoster(
	path, outputDir string,
	summary bool,
	graphOpts commgraph.Options,
	analysisOpts analyzer.Options,
	log *zap.Logger,
) error {
	graph, err := loadRoster(path, graphOpts)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	a := analyzer.New(
		analyzer.WithOptions(analysisOpts),
		analyzer.WithLogger(log),
	)
	result, err := a.Analyze(graph)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if summary {
		fmt.Println(result.Summary())
		return nil
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: encode result: %w", path, err)
	}
	if outputDir == "" {
		fmt.Println(string(out))
		return nil
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".result.json"

	return os.WriteFile(filepath.Join(outputDir, name), out, 0o644)
}

// loadConfig reads optional analysis parameters from a YAML file via
// viper, falling back to the engine defaults for anything unset.
func loadConfig(path string) (commgraph.Options, analyzer.Options, error) {
	graphOpts := commgraph.DefaultOptions()
	analysisOpts := analyzer.DefaultOptions()
	if path == "" {
		return graphOpts, analysisOpts, nil
	}

	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("min_strength", graphOpts.MinStrength)
	v.SetDefault("strong_threshold", graphOpts.StrongThreshold)
	v.SetDefault("proximity_distance", graphOpts.ProximityDistance)
	v.SetDefault("isolation_threshold", analysisOpts.IsolationThreshold)
	v.SetDefault("bucket_fraction", analysisOpts.BucketFraction)
	v.SetDefault("min_attendance", analysisOpts.Scheduling.MinAttendance)
	v.SetDefault("top_slots", analysisOpts.Scheduling.TopN)

	if err := v.ReadInConfig(); err != nil {
		return graphOpts, analysisOpts, fmt.Errorf("config %s: %w", path, err)
	}

	graphOpts.MinStrength = v.GetFloat64("min_strength")
	graphOpts.StrongThreshold = v.GetFloat64("strong_threshold")
	graphOpts.ProximityDistance = v.GetInt("proximity_distance")
	analysisOpts.IsolationThreshold = v.GetFloat64("isolation_threshold")
	analysisOpts.BucketFraction = v.GetFloat64("bucket_fraction")
	analysisOpts.Scheduling.MinAttendance = v.GetInt("min_attendance")
	analysisOpts.Scheduling.TopN = v.GetInt("top_slots")
	analysisOpts.Scheduling.IsolationThreshold = analysisOpts.IsolationThreshold

	return graphOpts, analysisOpts, nil
}
