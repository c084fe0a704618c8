package auth

import (
	"fmt"

	"github.com/zava-labs/askdesk-cli/internal/core/domain"
	"github.com/zava-labs/askdesk-cli/internal/core/ports/driven"
)

// NewCredentialProvider creates the appropriate provider for the
// configured auth method.
func NewCredentialProvider(settings domain.CredentialSettings) (driven.CredentialProvider, error) {
	switch settings.Method {
	case domain.AuthMethodOAuth:
		return NewOAuthProvider(settings)
	case domain.AuthMethodToken:
		return NewStaticTokenProvider(settings.Token)
	case domain.AuthMethodNone, "":
		return NewNullProvider(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported auth method %q", domain.ErrAuthRequired, settings.Method)
	}
}
