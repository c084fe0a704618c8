package services

import (
	"fmt"
	"os"
	"strings"

	"github.com/zava-labs/askdesk-cli/internal/core/domain"
	"github.com/zava-labs/askdesk-cli/internal/core/ports/driven"
	"github.com/zava-labs/askdesk-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyProjectEndpoint = "agent.project_endpoint"
	keySearchEndpoint  = "agent.search_endpoint"
	keyModel           = "agent.model"
	keyRetrievalMode   = "agent.retrieval_mode"
	keyOutputMode      = "agent.output_mode"
	keyAuthMethod      = "auth.method"
	keyAuthTokenURL    = "auth.token_url"
	keyAuthClientID    = "auth.client_id"
	keyAuthSecret      = "auth.client_secret"
	keyAuthScopes      = "auth.scopes"
	keyAuthToken       = "auth.token"
)

// Environment overrides, checked before the config store. These mirror
// the variables the hosted deployment sets.
const (
	envProjectEndpoint = "AZURE_AI_PROJECT_ENDPOINT"
	envSearchEndpoint  = "AZURE_SEARCH_ENDPOINT"
	envModel           = "AZURE_OPENAI_DEPLOYMENT"
)

// defaultModel is used when neither environment nor config name one.
const defaultModel = "gpt-4.1"

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Agent retrieves the current agent service settings. Environment
// variables win over stored configuration; hardcoded defaults fill the
// rest.
func (s *SettingsService) Agent() (*domain.AgentSettings, error) {
	settings := &domain.AgentSettings{
		ProjectEndpoint: s.getString(envProjectEndpoint, keyProjectEndpoint, ""),
		SearchEndpoint:  s.getString(envSearchEndpoint, keySearchEndpoint, ""),
		Model:           s.getString(envModel, keyModel, defaultModel),
		RetrievalMode:   domain.RetrievalMode(s.getString("", keyRetrievalMode, "")),
		OutputMode:      domain.OutputMode(s.getString("", keyOutputMode, "")),
	}

	if !settings.RetrievalMode.IsValid() {
		settings.RetrievalMode = domain.RetrievalModeAgentic
	}
	if !settings.OutputMode.IsValid() {
		settings.OutputMode = domain.OutputModeAnswerSynthesis
	}

	return settings, nil
}

// Credentials retrieves the current credential settings.
func (s *SettingsService) Credentials() (*domain.CredentialSettings, error) {
	settings := &domain.CredentialSettings{
		Method:       domain.AuthMethod(s.configStore.GetString(keyAuthMethod)),
		TokenURL:     s.configStore.GetString(keyAuthTokenURL),
		ClientID:     s.configStore.GetString(keyAuthClientID),
		ClientSecret: s.configStore.GetString(keyAuthSecret),
		Scopes:       s.configStore.GetStringSlice(keyAuthScopes),
		Token:        s.configStore.GetString(keyAuthToken),
	}

	if !settings.Method.IsValid() {
		settings.Method = domain.AuthMethodNone
	}

	return settings, nil
}

// Set stores a single configuration value by key. Scopes are given
// comma-separated and stored as a list.
func (s *SettingsService) Set(key string, value string) error {
	if !isKnownKey(key) {
		return fmt.Errorf("%w: unknown settings key %q", domain.ErrInvalidInput, key)
	}

	if key == keyAuthScopes {
		var scopes []string
		for _, scope := range strings.Split(value, ",") {
			if scope = strings.TrimSpace(scope); scope != "" {
				scopes = append(scopes, scope)
			}
		}
		return s.configStore.Set(key, scopes)
	}

	return s.configStore.Set(key, value)
}

// Validate checks that the current settings can answer a query.
func (s *SettingsService) Validate() error {
	agent, err := s.Agent()
	if err != nil {
		return err
	}
	if !agent.IsConfigured() {
		return fmt.Errorf("%w: project endpoint and model are required", domain.ErrAgentUnavailable)
	}

	creds, err := s.Credentials()
	if err != nil {
		return err
	}
	if !creds.IsConfigured() {
		return fmt.Errorf("%w: %s settings are incomplete", domain.ErrAuthRequired, creds.Method)
	}

	return nil
}

// getString resolves a value as env override, then stored config, then
// the default. An empty envKey skips the environment lookup.
func (s *SettingsService) getString(envKey, configKey, fallback string) string {
	if envKey != "" {
		if v := os.Getenv(envKey); v != "" {
			return v
		}
	}
	if v := s.configStore.GetString(configKey); v != "" {
		return v
	}
	return fallback
}

// isKnownKey reports whether key is a recognised settings key.
func isKnownKey(key string) bool {
	switch key {
	case keyProjectEndpoint, keySearchEndpoint, keyModel,
		keyRetrievalMode, keyOutputMode,
		keyAuthMethod, keyAuthTokenURL, keyAuthClientID,
		keyAuthSecret, keyAuthScopes, keyAuthToken:
		return true
	default:
		return false
	}
}
