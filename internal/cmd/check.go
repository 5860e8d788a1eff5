package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pthm/prosecheck/internal/analytics"
	"github.com/pthm/prosecheck/internal/config"
	"github.com/pthm/prosecheck/internal/engine"
	"github.com/pthm/prosecheck/internal/markup"
	"github.com/pthm/prosecheck/internal/reporter"
	"github.com/pthm/prosecheck/internal/rules"
	"github.com/pthm/prosecheck/internal/suggest"
)

var (
	suggestFixes bool
	statsDB      string
	workers      int
	docScopeOnly bool
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Check a document for writing-quality issues",
	Long: `Analyze a document and report writing-quality issues anchored to
the sentences that caused them.

Examples:
  prosecheck check README.md
  prosecheck check --format json draft.md > report.json
  prosecheck check --suggest chapter.html`,
	Args:         cobra.ExactArgs(1),
	RunE:         runCheck,
	SilenceUsage: true,
}

func init() {
	checkCmd.Flags().BoolVar(&suggestFixes, "suggest", false, "Generate a rewrite suggestion per issue")
	checkCmd.Flags().StringVar(&statsDB, "stats-db", "", "Record run summaries to this SQLite database")
	checkCmd.Flags().IntVar(&workers, "workers", 0, "Concurrent rule invocations (0 = config default)")
	checkCmd.Flags().BoolVar(&docScopeOnly, "document-scope-only", false, "Skip per-sentence rule invocations")
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if workers > 0 {
		cfg.Workers = workers
	}

	logger := zap.NewNop()
	if verbose {
		devCfg := zap.NewDevelopmentConfig()
		devCfg.OutputPaths = []string{"stderr"}
		if l, err := devCfg.Build(); err == nil {
			logger = l
			defer logger.Sync() //nolint:errcheck
		}
	}

	u := GetUI()

	// Decoding failure is fatal: no markup, no partial report.
	doc, err := markup.Decode(path)
	if err != nil {
		return err
	}

	pipeline := buildPipeline(cfg, logger)
	service := engine.NewService(pipeline)

	progress := u.StartProgress()
	start := time.Now()

	job := service.Start(cmd.Context(), doc)
	progress.Follow(job.Watch())

	report, err := job.Result()
	progress.Done(err)
	if errors.Is(err, engine.ErrCancelled) {
		return fmt.Errorf("check cancelled")
	}
	if err != nil {
		return err
	}

	var rep reporter.Reporter
	switch format {
	case "json":
		rep = reporter.NewJSONReporter(os.Stdout)
	default:
		rep = reporter.NewTerminalReporter(os.Stdout, u)
	}
	if err := rep.Report(report); err != nil {
		return err
	}

	if suggestFixes && !u.IsJSON() {
		printSuggestions(cmd, report, doc)
	}

	if statsDB == "" {
		statsDB = cfg.StatsDB
	}
	if statsDB != "" {
		if err := recordRun(statsDB, path, doc, report, time.Since(start)); err != nil {
			fmt.Fprintln(os.Stderr, u.Styles.Warning.Render(
				fmt.Sprintf("%s Warning: %v", u.Styles.IconWarning, err)))
		}
	}

	return nil
}

// buildPipeline wires config thresholds into the engine
func buildPipeline(cfg *config.Config, logger *zap.Logger) *engine.Pipeline {
	registry := rules.DefaultRegistry()
	if long, ok := registry.Get("length/long-sentence").(*rules.LongSentenceRule); ok {
		long.MaxWords = cfg.MaxSentenceWords
	}
	registry = registry.Without(cfg.DisabledRules)

	runner := engine.NewRuleRunner(registry)
	runner.Workers = cfg.Workers
	runner.Timeout = cfg.RuleTimeout.Std()
	runner.Logger = logger
	if docScopeOnly {
		runner.SentenceScope = false
	}

	pipeline := engine.NewPipeline(runner)
	pipeline.Segmenter.MinLength = cfg.MinSentenceLength
	pipeline.Segmenter.MinTokens = cfg.MinSentenceTokens
	pipeline.Segmenter.ShortBlockLimit = cfg.ShortBlockLimit
	pipeline.Logger = logger

	return pipeline
}

// printSuggestions runs the AI-suggestion collaborator per flagged issue
func printSuggestions(cmd *cobra.Command, report *engine.Report, doc *markup.Document) {
	u := GetUI()

	var suggester suggest.Suggester = suggest.NewHeuristicSuggester()
	if claude := suggest.NewClaudeSuggester(); claude != nil {
		suggester = claude
	}

	fmt.Fprintln(os.Stdout)
	fmt.Fprintln(os.Stdout, u.Styles.Header.Render("Suggestions"))

	for _, sent := range report.Sentences {
		for _, issue := range sent.Issues {
			text, err := suggester.Suggest(cmd.Context(), issue.Message, sent.PlainText, doc.Format.String())
			if err != nil {
				continue
			}
			fmt.Fprintf(os.Stdout, "  [%d] %s\n", sent.Index+1, text)
		}
	}
}

// recordRun persists one run summary to the analytics database
func recordRun(dbPath, docPath string, doc *markup.Document, report *engine.Report, elapsed time.Duration) error {
	rec, err := analytics.OpenSQLite(dbPath)
	if err != nil {
		return err
	}
	defer rec.Close()

	job := analytics.RunRecord{
		ID:         uuid.New(),
		Path:       docPath,
		Format:     doc.Format.String(),
		Sentences:  report.Summary.TotalSentences,
		Issues:     report.Summary.TotalIssues,
		Unassigned: len(report.Unassigned),
		Score:      report.Summary.QualityScore,
		Duration:   elapsed,
		CreatedAt:  time.Now(),
	}
	return rec.Record(job)
}
