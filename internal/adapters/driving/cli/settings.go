package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the agent service endpoint, model, retrieval
options, and authentication.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set a single configuration value.

Available keys:
  agent.project_endpoint - agent service project endpoint
  agent.search_endpoint  - knowledge retrieval endpoint
  agent.model            - model deployment name
  agent.retrieval_mode   - agentic or semantic
  agent.output_mode      - answer_synthesis or extractive_data
  auth.method            - oauth, token, or none
  auth.token_url         - OAuth2 token endpoint
  auth.client_id         - OAuth2 client ID
  auth.client_secret     - OAuth2 client secret
  auth.scopes            - comma-separated OAuth2 scopes
  auth.token             - static access token`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	agent, err := settingsService.Agent()
	if err != nil {
		return fmt.Errorf("failed to get agent settings: %w", err)
	}
	credentials, err := settingsService.Credentials()
	if err != nil {
		return fmt.Errorf("failed to get credential settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Agent]")
	cmd.Printf("  Project Endpoint: %s\n", orNotSet(agent.ProjectEndpoint))
	cmd.Printf("  Search Endpoint: %s\n", orNotSet(agent.SearchEndpoint))
	cmd.Printf("  Model: %s\n", orNotSet(agent.Model))
	cmd.Printf("  Retrieval Mode: %s\n", agent.RetrievalMode)
	cmd.Printf("  Output Mode: %s\n", agent.OutputMode)
	status := "configured"
	if !agent.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	cmd.Println("[Auth]")
	cmd.Printf("  Method: %s\n", credentials.Method.Description())
	if credentials.TokenURL != "" {
		cmd.Printf("  Token URL: %s\n", credentials.TokenURL)
	}
	if credentials.ClientID != "" {
		cmd.Printf("  Client ID: %s\n", credentials.ClientID)
	}
	if credentials.ClientSecret != "" {
		cmd.Printf("  Client Secret: %s\n", maskSecret(credentials.ClientSecret))
	}
	if credentials.Token != "" {
		cmd.Printf("  Token: %s\n", maskSecret(credentials.Token))
	}
	status = "configured"
	if !credentials.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'askdesk settings set' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s\n", key)
	return nil
}

// Helper functions.

func orNotSet(value string) string {
	if value == "" {
		return "(not set)"
	}
	return value
}

func maskSecret(secret string) string {
	if len(secret) <= 8 {
		return "****"
	}
	return secret[:4] + "..." + secret[len(secret)-4:]
}
