package cmd

import (
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/pthm/prosecheck/internal/ui"
)

var (
	// Global flags
	verbose    bool
	format     string
	configPath string
)

// RootCmd is the top-level prosecheck command
var RootCmd = &cobra.Command{
	Use:   "prosecheck",
	Short: "A writing-quality checker for documents",
	Long: `prosecheck reviews a document for writing-quality issues and anchors
every issue to the exact sentence that caused it.

It decodes Markdown, HTML, or plain text into a normalized markup tree,
segments it into sentences, runs a registry of quality rules at document
and sentence granularity, and reports per-sentence issues with an overall
quality score.`,
}

func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "terminal", "Output format (terminal, json)")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", ".prosecheck.yaml", "Path to config file")
}

var (
	uiOnce   sync.Once
	globalUI *ui.UI
)

// GetUI returns the process-wide UI, creating it on first use
func GetUI() *ui.UI {
	uiOnce.Do(func() {
		globalUI = ui.New(os.Stdout, os.Stderr, format)
	})
	return globalUI
}
