package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zava-labs/askdesk-cli/internal/core/domain"
)

func TestRunSettingsShow(t *testing.T) {
	settingsService = &fakeSettings{
		agent: domain.AgentSettings{
			ProjectEndpoint: "https://project.example.test",
			SearchEndpoint:  "https://search.example.test",
			Model:           "gpt-4.1",
			RetrievalMode:   domain.RetrievalModeAgentic,
			OutputMode:      domain.OutputModeAnswerSynthesis,
		},
		credentials: domain.CredentialSettings{
			Method: domain.AuthMethodToken,
			Token:  "secret-token-value",
		},
	}
	t.Cleanup(func() { settingsService = nil })

	cmd, buf := newTestCmd()
	require.NoError(t, runSettingsShow(cmd, nil))

	output := buf.String()
	assert.Contains(t, output, "https://project.example.test")
	assert.Contains(t, output, "gpt-4.1")
	assert.Contains(t, output, "agentic")
	assert.Contains(t, output, "Static access token")
	assert.Contains(t, output, "Configuration is valid.")

	// Secrets are masked.
	assert.NotContains(t, output, "secret-token-value")
	assert.Contains(t, output, "secr...alue")
}

func TestRunSettingsShow_Unconfigured(t *testing.T) {
	settingsService = &fakeSettings{
		validateErr: domain.ErrAgentUnavailable,
	}
	t.Cleanup(func() { settingsService = nil })

	cmd, buf := newTestCmd()
	require.NoError(t, runSettingsShow(cmd, nil))

	output := buf.String()
	assert.Contains(t, output, "(not set)")
	assert.Contains(t, output, "not configured")
	assert.Contains(t, output, "Warning:")
}

func TestRunSettingsSet(t *testing.T) {
	fake := &fakeSettings{}
	settingsService = fake
	t.Cleanup(func() { settingsService = nil })

	cmd, buf := newTestCmd()
	require.NoError(t, runSettingsSet(cmd, []string{"agent.model", "gpt-4.1"}))

	assert.Equal(t, "gpt-4.1", fake.set["agent.model"])
	assert.Contains(t, buf.String(), "Set agent.model")
}

func TestRunSettingsSet_Error(t *testing.T) {
	settingsService = &fakeSettings{setErr: errors.New("unknown key")}
	t.Cleanup(func() { settingsService = nil })

	cmd, _ := newTestCmd()
	err := runSettingsSet(cmd, []string{"bogus.key", "value"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown key")
}

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"short secret", "abc123", "****"},
		{"exactly 8 chars", "12345678", "****"},
		{"long secret", "sk-1234567890abcdef", "sk-1...cdef"},
		{"empty secret", "", "****"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, maskSecret(tt.input))
		})
	}
}
