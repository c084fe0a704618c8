package auth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/zava-labs/askdesk-cli/internal/core/domain"
	"github.com/zava-labs/askdesk-cli/internal/core/ports/driven"
)

// Ensure OAuthProvider implements the CredentialProvider interface.
var _ driven.CredentialProvider = (*OAuthProvider)(nil)

// OAuthProvider provides access tokens via the OAuth2 client
// credentials flow. Token caching and refresh are handled by the
// underlying oauth2 token source.
type OAuthProvider struct {
	source oauth2.TokenSource
}

// NewOAuthProvider creates a provider from credential settings.
func NewOAuthProvider(settings domain.CredentialSettings) (*OAuthProvider, error) {
	if settings.TokenURL == "" || settings.ClientID == "" || settings.ClientSecret == "" {
		return nil, fmt.Errorf("%w: token URL, client ID and client secret are required", domain.ErrAuthRequired)
	}

	cfg := &clientcredentials.Config{
		TokenURL:     settings.TokenURL,
		ClientID:     settings.ClientID,
		ClientSecret: settings.ClientSecret,
		Scopes:       settings.Scopes,
	}

	// The token source caches the token and refreshes it when expired.
	return &OAuthProvider{source: cfg.TokenSource(context.Background())}, nil
}

// Token returns a valid access token, refreshing if necessary.
func (p *OAuthProvider) Token(_ context.Context) (string, error) {
	token, err := p.source.Token()
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrAuthInvalid, err)
	}
	return token.AccessToken, nil
}

// Close is a no-op; the token source holds no connections between
// refreshes.
func (p *OAuthProvider) Close() error {
	return nil
}
