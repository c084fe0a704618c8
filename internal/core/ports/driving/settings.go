package driving

import "github.com/zava-labs/askdesk-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Agent retrieves the current agent service settings, with
	// environment overrides applied.
	Agent() (*domain.AgentSettings, error)

	// Credentials retrieves the current credential settings.
	Credentials() (*domain.CredentialSettings, error)

	// Set stores a single configuration value by key.
	Set(key string, value string) error

	// Validate checks that the current settings can answer a query.
	Validate() error
}
