// Package auth provides credential providers for the agent service.
package auth

import (
	"context"

	"github.com/zava-labs/askdesk-cli/internal/core/ports/driven"
)

// Ensure NullProvider implements the CredentialProvider interface.
var _ driven.CredentialProvider = (*NullProvider)(nil)

// NullProvider is for endpoints that require no authentication, such
// as local test deployments.
type NullProvider struct{}

// NewNullProvider creates a credential provider for no-auth endpoints.
func NewNullProvider() *NullProvider {
	return &NullProvider{}
}

// Token returns an empty string since no authentication is needed.
func (p *NullProvider) Token(_ context.Context) (string, error) {
	return "", nil
}

// Close is a no-op.
func (p *NullProvider) Close() error {
	return nil
}
