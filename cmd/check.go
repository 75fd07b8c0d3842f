package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/da-luce/cvlint/internal/criteria"
	"github.com/da-luce/cvlint/internal/dictionary"
	"github.com/da-luce/cvlint/internal/extract"
	"github.com/da-luce/cvlint/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a PDF resume and print the weighted score report",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		check(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().Float64("passing-score", defaultPassingScore, "minimum score required for the check to succeed (0-100)")
	checkCmd.Flags().StringP("output", "o", defaultOutput, "output format: text or json")
	checkCmd.Flags().StringP("criteria", "c", "", "comma-separated criterion names to run (default: all)")
	checkCmd.Flags().String("category", "", "run only criteria in this category")

	viper.BindPFlag("passing-score", checkCmd.Flags().Lookup("passing-score"))
	viper.BindPFlag("output", checkCmd.Flags().Lookup("output"))
}

// check is the main command of the cli: extract facts, run the selected
// criteria, aggregate, render, and map the verdict to the exit code.
func check(cmd *cobra.Command, path string) {
	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	zlog.Info("starting cvlint", zap.String("version", version))

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	output := strings.ToLower(strings.TrimSpace(config.Output))
	if output != outputText && output != outputJSON {
		zlog.Fatal("invalid output format", zap.String("output", config.Output))
	}

	threshold := config.PassingScore
	if threshold < 0 || threshold > 100 {
		zlog.Fatal("passing score must be between 0 and 100", zap.Float64("passing-score", threshold))
	}

	zlog.Info("extracting document facts", zap.String("file", path))

	facts, err := extract.Extract(path)
	if err != nil {
		zlog.Fatal("extracting document facts", zap.Error(err))
	}

	zlog.Debug("extraction complete",
		zap.Int("pages", facts.PageCount),
		zap.Int64("bytes", facts.ByteSize),
		zap.Int("fonts", len(facts.Fonts)),
		zap.Int("links", len(facts.Links)),
	)

	registry := criteria.NewRegistry(config.Rules, dictionary.New(customWords(config)))

	selected, err := selectCriteria(cmd, registry)
	if err != nil {
		zlog.Fatal("selecting criteria", zap.Error(err))
	}

	outcomes := criteria.NewEngine(zlog).Run(facts, selected)

	for _, o := range outcomes {
		debugLog := logger.WithCriterionFields(zlog, o.Criterion.Name(), o.Criterion.Category())
		debugLog.Debug("criterion detail", zap.String("message", logger.TruncateForLog(o.Result.Message, 200)))
	}

	report, err := criteria.Summarize(outcomes, threshold)
	if err != nil {
		zlog.Fatal("aggregating results", zap.Error(err))
	}

	rendered, err := renderReport(report, path, output)
	if err != nil {
		zlog.Fatal("rendering report", zap.Error(err))
	}
	fmt.Println(rendered)

	if !report.Passed {
		os.Exit(1)
	}
}

// selectCriteria resolves the --criteria and --category flags against the
// registry. Without either flag every registered criterion runs.
func selectCriteria(cmd *cobra.Command, registry *criteria.Registry) ([]criteria.Criterion, error) {
	names := cmd.Flag("criteria")
	category := cmd.Flag("category")

	if names != nil && names.Changed {
		return registry.FilterByNames(splitNames(names.Value.String()))
	}
	if category != nil && category.Value.String() != "" {
		return registry.FilterByCategory(category.Value.String())
	}
	return registry.List(), nil
}

// splitNames parses the --criteria flag value. An empty value resolves to an
// empty selection, which the aggregator rejects.
func splitNames(value string) []string {
	var names []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}

func customWords(config *Config) []string {
	if config.Rules == nil {
		return nil
	}
	return config.Rules.CustomWords
}
