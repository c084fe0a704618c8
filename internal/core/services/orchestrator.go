package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/zava-labs/askdesk-cli/internal/core/domain"
	"github.com/zava-labs/askdesk-cli/internal/core/ports/driven"
	"github.com/zava-labs/askdesk-cli/internal/core/ports/driving"
	"github.com/zava-labs/askdesk-cli/internal/logger"
)

// Ensure Orchestrator implements the interface.
var _ driving.OrchestratorService = (*Orchestrator)(nil)

// Orchestrator wires the router, the specialists, and the
// normaliser/extractor together to answer one query end-to-end.
type Orchestrator struct {
	sessions  driven.SessionFactory
	router    *Router
	extractor *SourceExtractor
}

// NewOrchestrator creates an orchestrator. Nil router or extractor
// mean the defaults.
func NewOrchestrator(sessions driven.SessionFactory, router *Router, extractor *SourceExtractor) *Orchestrator {
	if router == nil {
		router = NewRouter(nil, domain.DefaultRoute)
	}
	if extractor == nil {
		extractor = NewSourceExtractor(nil)
	}
	return &Orchestrator{
		sessions:  sessions,
		router:    router,
		extractor: extractor,
	}
}

// Ask answers a single query. The session (credential, agent client,
// knowledge sources, agents) lives exactly as long as this call; the
// deferred Close releases it on success and on every failure path.
func (o *Orchestrator) Ask(ctx context.Context, query string) (*domain.Result, error) {
	logger.Section("Query Resolution")

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty query", domain.ErrInvalidInput)
	}
	logger.Debug("Query: %q", query)

	session, err := o.sessions.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	defer session.Close()

	route := o.router.Route(ctx, session.Router(), query)
	logger.Info("Routed to: %s", route)

	specialist, err := session.Specialist(route)
	if err != nil {
		return nil, fmt.Errorf("specialist for %s: %w", route, err)
	}

	// A remote failure here propagates: there is no sane default
	// answer text to synthesise for the caller.
	resp, err := runAgent(ctx, specialist, query)
	if err != nil {
		return nil, fmt.Errorf("invoke %s specialist: %w", route, err)
	}

	answer := ExtractText(resp)
	sources := o.extractor.Extract(resp, route)
	logger.Debug("Answer: %d chars, %d sources", len(answer), len(sources))

	return &domain.Result{
		Route:   route,
		Answer:  answer,
		Sources: sources,
	}, nil
}
