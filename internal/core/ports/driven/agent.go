package driven

import (
	"context"

	"github.com/zava-labs/askdesk-cli/internal/core/domain"
)

// Agent is a configured responder: a model bound to an instruction
// preamble and, optionally, a knowledge source. The two Invoke variants
// correspond to the calling conventions different service versions
// accept; callers go through the invocation shim in core/services,
// which picks a convention and falls back on domain.ErrShapeMismatch.
type Agent interface {
	// Invoke sends a list of messages (the current convention).
	Invoke(ctx context.Context, messages []domain.Message) (*domain.AgentResponse, error)

	// InvokeSingle sends one message with a plain text field (the
	// legacy convention).
	InvokeSingle(ctx context.Context, message domain.Message) (*domain.AgentResponse, error)
}

// AgentConfig describes an agent to be constructed by an AgentClient.
type AgentConfig struct {
	// Instructions is the system preamble for the agent.
	Instructions string

	// Knowledge is the grounding source the agent answers from.
	// Nil for ungrounded agents such as the router.
	Knowledge KnowledgeSource
}

// AgentClient is a session-scoped connection to the agent service.
type AgentClient interface {
	// NewAgent builds an agent bound to this client.
	NewAgent(cfg AgentConfig) Agent

	// Close releases the underlying connection.
	Close() error
}
