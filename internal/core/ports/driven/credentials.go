package driven

import "context"

// CredentialProvider supplies access tokens for the agent service.
// Implementations handle refresh transparently. Providers are acquired
// per session and must be released with Close on every exit path.
type CredentialProvider interface {
	// Token returns a valid access token. Returns empty string for
	// no-auth endpoints.
	Token(ctx context.Context) (string, error)

	// Close releases any resources held by the provider.
	Close() error
}
