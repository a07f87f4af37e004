// Package cli implements the murshid command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/murshid/internal/core/ports/driving"
	"github.com/custodia-labs/murshid/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services are wired lazily by the bootstrap helpers. Commands check for
// nil so a misconfigured installation fails with guidance, not a panic.
var (
	queryService    driving.QueryService
	statusService   driving.StatusService
	feedbackService driving.FeedbackService
	settingsService driving.SettingsService
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "murshid",
	Short: "Arabic document question answering",
	Long: `Murshid answers questions about a single Arabic document.

The document is extracted, normalised, chunked semantically and embedded
at startup. Questions are answered in Modern Standard Arabic, grounded
strictly in the retrieved passages.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
