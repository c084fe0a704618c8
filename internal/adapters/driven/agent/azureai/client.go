// Package azureai provides an agent-invocation client for the Azure AI
// agent service.
package azureai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/zava-labs/askdesk-cli/internal/core/domain"
	"github.com/zava-labs/askdesk-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.AgentClient = (*Client)(nil)

// Default configuration values.
const (
	DefaultTimeout = 120 * time.Second

	// DefaultRequestsPerSecond bounds outbound calls; the service
	// throttles aggressively above this.
	DefaultRequestsPerSecond = 2
)

// ClientConfig holds configuration for the agent service client.
type ClientConfig struct {
	// ProjectEndpoint is the project endpoint (required).
	ProjectEndpoint string

	// Model is the model deployment name used for all agents (required).
	Model string

	// Credentials supplies access tokens (required).
	Credentials driven.CredentialProvider

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration

	// RequestsPerSecond caps the outbound request rate (default: 2).
	RequestsPerSecond float64

	// HTTPClient overrides the default HTTP client. Mainly for tests.
	HTTPClient *http.Client
}

// Client is a session-scoped connection to the agent service.
type Client struct {
	httpClient  *http.Client
	endpoint    string
	model       string
	credentials driven.CredentialProvider
	limiter     *rate.Limiter
}

// NewClient creates a new agent service client.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.ProjectEndpoint == "" {
		return nil, fmt.Errorf("azureai: project endpoint is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("azureai: model is required")
	}
	if cfg.Credentials == nil {
		return nil, fmt.Errorf("azureai: credential provider is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		httpClient:  httpClient,
		endpoint:    cfg.ProjectEndpoint,
		model:       cfg.Model,
		credentials: cfg.Credentials,
		limiter:     rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
	}, nil
}

// NewAgent builds an agent bound to this client.
func (c *Client) NewAgent(cfg driven.AgentConfig) driven.Agent {
	return &agent{
		client:       c,
		instructions: cfg.Instructions,
		knowledge:    cfg.Knowledge,
	}
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// agent is one configured responder bound to a Client.
type agent struct {
	client       *Client
	instructions string
	knowledge    driven.KnowledgeSource
}

// Ensure agent implements the interface.
var _ driven.Agent = (*agent)(nil)

// Invoke sends a list of messages with structured content parts.
func (a *agent) Invoke(ctx context.Context, messages []domain.Message) (*domain.AgentResponse, error) {
	wireMessages := make([]runMessage, len(messages))
	for i, msg := range messages {
		wireMessages[i] = runMessage{
			Role:    msg.Role,
			Content: []contentPart{{Type: "text", Text: msg.Text}},
		}
	}
	return a.client.run(ctx, runRequest{
		Model:        a.client.model,
		Instructions: a.instructions,
		Messages:     wireMessages,
		Knowledge:    a.knowledgeSpec(),
	})
}

// InvokeSingle sends one message with a plain text field (the legacy
// convention).
func (a *agent) InvokeSingle(ctx context.Context, message domain.Message) (*domain.AgentResponse, error) {
	return a.client.run(ctx, runRequest{
		Model:        a.client.model,
		Instructions: a.instructions,
		Message:      &runMessage{Role: message.Role, Text: message.Text},
		Knowledge:    a.knowledgeSpec(),
	})
}

// knowledgeDetail is the subset of knowledge-source configuration the
// client serialises. azuresearch.Source satisfies it; other sources
// contribute their name only.
type knowledgeDetail interface {
	Name() string
	Endpoint() string
	RetrievalMode() domain.RetrievalMode
	OutputMode() domain.OutputMode
}

// knowledgeSpec builds the wire form of the agent's knowledge binding.
func (a *agent) knowledgeSpec() *knowledgeSpec {
	if a.knowledge == nil {
		return nil
	}

	spec := &knowledgeSpec{
		SourceID:          a.knowledge.Name(),
		KnowledgeBaseName: a.knowledge.Name(),
	}
	if detail, ok := a.knowledge.(knowledgeDetail); ok {
		spec.Endpoint = detail.Endpoint()
		spec.Mode = string(detail.RetrievalMode())
		spec.OutputMode = string(detail.OutputMode())
	}
	return spec
}

// --- Wire types ---

// runRequest is the agent run request format. Exactly one of Messages
// or Message is set, depending on the calling convention.
type runRequest struct {
	Model        string         `json:"model"`
	Instructions string         `json:"instructions,omitempty"`
	Messages     []runMessage   `json:"messages,omitempty"`
	Message      *runMessage    `json:"message,omitempty"`
	Knowledge    *knowledgeSpec `json:"knowledge,omitempty"`
}

// runMessage is the wire message format. Content carries the
// structured-parts convention; Text carries the legacy plain field.
type runMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content,omitempty"`
	Text    string        `json:"text,omitempty"`
}

// contentPart is one structured content element.
type contentPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// knowledgeSpec is the wire form of a knowledge binding.
type knowledgeSpec struct {
	SourceID          string `json:"source_id"`
	Endpoint          string `json:"endpoint,omitempty"`
	KnowledgeBaseName string `json:"knowledge_base_name"`
	Mode              string `json:"mode,omitempty"`
	OutputMode        string `json:"knowledge_base_output_mode,omitempty"`
}

// runResponse is the agent run response format. Every grounding field
// is optional; which ones appear varies between service versions.
type runResponse struct {
	Text          *string         `json:"text"`
	Content       json.RawMessage `json:"content"`
	Citations     []wireCitation  `json:"citations"`
	Context       []wireContext   `json:"context"`
	GroundingData []wireGrounding `json:"grounding_data"`
	Error         *wireError      `json:"error,omitempty"`
}

type wireCitation struct {
	Title    string `json:"title"`
	Filepath string `json:"filepath"`
	URL      string `json:"url"`
	ChunkID  string `json:"chunk_id"`
}

type wireContext struct {
	Title  string `json:"title"`
	Source string `json:"source"`
}

type wireGrounding struct {
	Title    string `json:"title"`
	Filepath string `json:"filepath"`
}

type wireError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// errTypeInvalidRequest is the error type the service reports when it
// rejects the request shape. Only this, on a 400/422 status, maps to
// domain.ErrShapeMismatch.
const errTypeInvalidRequest = "invalid_request_error"

// run executes one agent invocation.
func (c *Client) run(ctx context.Context, reqBody runRequest) (*domain.AgentResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("azureai: rate limit wait: %w", err)
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("azureai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.endpoint+"/agents:run",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("azureai: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-ms-client-request-id", uuid.NewString())

	token, err := c.credentials.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("azureai: acquire token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("azureai: send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("azureai: read response: %w", err)
	}

	var runResp runResponse
	if err := json.Unmarshal(body, &runResp); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("azureai: service error (status %d): %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("azureai: decode response: %w", err)
	}

	if err := c.checkError(resp.StatusCode, &runResp, body); err != nil {
		return nil, err
	}

	return toDomain(&runResp, body), nil
}

// checkError maps non-OK statuses to domain errors. A rejected request
// shape is the only condition that maps to ErrShapeMismatch, so the
// invocation shim's fallback stays narrow.
func (c *Client) checkError(status int, runResp *runResponse, body []byte) error {
	if status == http.StatusOK && runResp.Error == nil {
		return nil
	}

	message := string(body)
	errType := ""
	if runResp.Error != nil {
		message = runResp.Error.Message
		errType = runResp.Error.Type
	}

	switch {
	case (status == http.StatusBadRequest || status == http.StatusUnprocessableEntity) &&
		errType == errTypeInvalidRequest:
		return fmt.Errorf("azureai: %s: %w", message, domain.ErrShapeMismatch)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("azureai: %s: %w", message, domain.ErrAuthInvalid)
	default:
		return fmt.Errorf("azureai: service error (status %d): %s", status, message)
	}
}

// toDomain converts the wire response into the explicit optional-field
// domain type.
func toDomain(runResp *runResponse, body []byte) *domain.AgentResponse {
	resp := &domain.AgentResponse{
		Text: runResp.Text,
		Raw:  string(body),
	}

	if len(runResp.Content) > 0 && string(runResp.Content) != "null" {
		content := &domain.ResponseContent{}
		var asString string
		if err := json.Unmarshal(runResp.Content, &asString); err == nil {
			content.Text = asString
			content.IsText = true
		} else {
			content.Structured = string(runResp.Content)
		}
		resp.Content = content
	}

	for _, c := range runResp.Citations {
		resp.Citations = append(resp.Citations, domain.Citation{
			Title:    c.Title,
			Filepath: c.Filepath,
			URL:      c.URL,
			ChunkID:  c.ChunkID,
		})
	}
	for _, entry := range runResp.Context {
		resp.Context = append(resp.Context, domain.ContextEntry{
			Title:  entry.Title,
			Source: entry.Source,
		})
	}
	for _, entry := range runResp.GroundingData {
		resp.Grounding = append(resp.Grounding, domain.GroundingEntry{
			Title:    entry.Title,
			Filepath: entry.Filepath,
		})
	}

	return resp
}
