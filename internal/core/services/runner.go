package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/zava-labs/askdesk-cli/internal/core/domain"
	"github.com/zava-labs/askdesk-cli/internal/core/ports/driven"
	"github.com/zava-labs/askdesk-cli/internal/logger"
)

// invocationStrategy is one calling convention for the agent service.
type invocationStrategy struct {
	name   string
	invoke func(ctx context.Context, agent driven.Agent, text string) (*domain.AgentResponse, error)
}

// defaultStrategies lists the known conventions, most specific first.
// Service versions differ in whether they take a list of messages with
// structured content or a single message with a plain text field.
var defaultStrategies = []invocationStrategy{
	{
		name: "message list",
		invoke: func(ctx context.Context, agent driven.Agent, text string) (*domain.AgentResponse, error) {
			return agent.Invoke(ctx, []domain.Message{domain.NewUserMessage(text)})
		},
	},
	{
		name: "single message",
		invoke: func(ctx context.Context, agent driven.Agent, text string) (*domain.AgentResponse, error) {
			return agent.InvokeSingle(ctx, domain.NewUserMessage(text))
		},
	},
}

// runAgent invokes an agent with the given query text, trying each
// calling convention in order. Only domain.ErrShapeMismatch moves on
// to the next convention; any other failure propagates immediately.
// This is the single place where argument-shape uncertainty is
// absorbed.
func runAgent(ctx context.Context, agent driven.Agent, text string) (*domain.AgentResponse, error) {
	var lastErr error

	for _, strategy := range defaultStrategies {
		resp, err := strategy.invoke(ctx, agent, text)
		if err == nil {
			return resp, nil
		}
		if !errors.Is(err, domain.ErrShapeMismatch) {
			return nil, err
		}
		logger.Debug("Invocation convention %q rejected, trying next", strategy.name)
		lastErr = err
	}

	return nil, fmt.Errorf("all invocation conventions rejected: %w", lastErr)
}
