package auth

import (
	"context"
	"fmt"

	"github.com/zava-labs/askdesk-cli/internal/core/domain"
	"github.com/zava-labs/askdesk-cli/internal/core/ports/driven"
)

// Ensure StaticTokenProvider implements the CredentialProvider interface.
var _ driven.CredentialProvider = (*StaticTokenProvider)(nil)

// StaticTokenProvider serves a pre-issued access token. No refresh is
// performed; when the token expires the service rejects it and the
// failure surfaces to the caller.
type StaticTokenProvider struct {
	token string
}

// NewStaticTokenProvider creates a provider around a fixed token.
func NewStaticTokenProvider(token string) (*StaticTokenProvider, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: empty static token", domain.ErrAuthRequired)
	}
	return &StaticTokenProvider{token: token}, nil
}

// Token returns the configured token.
func (p *StaticTokenProvider) Token(_ context.Context) (string, error) {
	return p.token, nil
}

// Close is a no-op.
func (p *StaticTokenProvider) Close() error {
	return nil
}
