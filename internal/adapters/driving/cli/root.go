// Package cli implements the askdesk command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/zava-labs/askdesk-cli/internal/core/ports/driving"
	"github.com/zava-labs/askdesk-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services wired in by main before Execute runs.
var (
	orchestratorService driving.OrchestratorService
	settingsService     driving.SettingsService
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "askdesk",
	Short: "Ask questions across company knowledge bases",
	Long: `Askdesk routes natural-language questions to the right internal
knowledge base (HR, marketing, or products), asks a grounded specialist
agent, and prints the answer with its source documents.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices wires the driving services into the command tree. Must be
// called before Execute.
func SetServices(orchestrator driving.OrchestratorService, settings driving.SettingsService) {
	orchestratorService = orchestrator
	settingsService = settings
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
