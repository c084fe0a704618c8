package domain

const unknownDescription = "Unknown"

// RetrievalMode defines how a knowledge source retrieves grounding for
// a query.
type RetrievalMode string

// Available retrieval modes.
const (
	// RetrievalModeAgentic lets the retrieval layer plan its own
	// sub-queries against the knowledge base.
	RetrievalModeAgentic RetrievalMode = "agentic"

	// RetrievalModeSemantic performs a single semantic retrieval pass.
	RetrievalModeSemantic RetrievalMode = "semantic"
)

// IsValid returns true if the retrieval mode is recognised.
func (m RetrievalMode) IsValid() bool {
	switch m {
	case RetrievalModeAgentic, RetrievalModeSemantic:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m RetrievalMode) String() string {
	return string(m)
}

// OutputMode defines what a knowledge source asks the backend to
// produce from retrieved chunks.
type OutputMode string

// Available output modes.
const (
	// OutputModeAnswerSynthesis asks the backend to synthesise an
	// answer from retrieved chunks.
	OutputModeAnswerSynthesis OutputMode = "answer_synthesis"

	// OutputModeExtractiveData returns the retrieved chunks as-is.
	OutputModeExtractiveData OutputMode = "extractive_data"
)

// IsValid returns true if the output mode is recognised.
func (m OutputMode) IsValid() bool {
	switch m {
	case OutputModeAnswerSynthesis, OutputModeExtractiveData:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m OutputMode) String() string {
	return string(m)
}

// AuthMethod identifies how the credential provider authenticates
// against the agent service.
type AuthMethod string

// Available auth methods.
const (
	// AuthMethodOAuth uses the OAuth2 client-credentials flow.
	AuthMethodOAuth AuthMethod = "oauth"

	// AuthMethodToken uses a pre-issued static access token.
	AuthMethodToken AuthMethod = "token"

	// AuthMethodNone disables authentication (local test endpoints).
	AuthMethodNone AuthMethod = "none"
)

// IsValid returns true if the auth method is recognised.
func (m AuthMethod) IsValid() bool {
	switch m {
	case AuthMethodOAuth, AuthMethodToken, AuthMethodNone:
		return true
	default:
		return false
	}
}

// Description returns a human-readable description of the method.
func (m AuthMethod) Description() string {
	switch m {
	case AuthMethodOAuth:
		return "OAuth2 client credentials"
	case AuthMethodToken:
		return "Static access token"
	case AuthMethodNone:
		return "No authentication"
	default:
		return unknownDescription
	}
}

// AgentSettings holds agent service configuration.
type AgentSettings struct {
	// ProjectEndpoint is the agent service project endpoint.
	ProjectEndpoint string

	// SearchEndpoint is the knowledge retrieval endpoint.
	SearchEndpoint string

	// Model is the model deployment name used for all agents.
	Model string

	// RetrievalMode configures how knowledge sources retrieve.
	RetrievalMode RetrievalMode

	// OutputMode configures what knowledge sources produce.
	OutputMode OutputMode
}

// IsConfigured returns true if the agent service is set up.
func (a AgentSettings) IsConfigured() bool {
	return a.ProjectEndpoint != "" && a.Model != ""
}

// CredentialSettings holds authentication configuration for the agent
// service.
type CredentialSettings struct {
	// Method selects the auth method.
	Method AuthMethod

	// TokenURL is the OAuth2 token endpoint (oauth only).
	TokenURL string

	// ClientID is the OAuth2 client ID (oauth only).
	ClientID string

	// ClientSecret is the OAuth2 client secret (oauth only).
	ClientSecret string

	// Scopes are the OAuth2 scopes to request (oauth only).
	Scopes []string

	// Token is the pre-issued access token (token only).
	Token string
}

// IsConfigured returns true if the selected method has what it needs.
func (c CredentialSettings) IsConfigured() bool {
	switch c.Method {
	case AuthMethodOAuth:
		return c.TokenURL != "" && c.ClientID != "" && c.ClientSecret != ""
	case AuthMethodToken:
		return c.Token != ""
	case AuthMethodNone:
		return true
	default:
		return false
	}
}
