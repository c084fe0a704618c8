package services

import (
	"context"
	"strings"

	"github.com/zava-labs/askdesk-cli/internal/core/domain"
	"github.com/zava-labs/askdesk-cli/internal/core/ports/driven"
	"github.com/zava-labs/askdesk-cli/internal/logger"
)

// Router classifies a query into a route using a single call to the
// routing agent plus ordered keyword rules over the reply. The rules
// and the fallback route are injected at construction, so tests can
// run the router against synthetic rule sets.
type Router struct {
	rules    []domain.RouteRule
	fallback domain.Route
}

// NewRouter creates a router with the given rules and fallback route.
// Nil rules mean domain.DefaultRouteRules; an invalid fallback means
// domain.DefaultRoute.
func NewRouter(rules []domain.RouteRule, fallback domain.Route) *Router {
	if rules == nil {
		rules = domain.DefaultRouteRules()
	}
	if !fallback.IsValid() {
		fallback = domain.DefaultRoute
	}
	return &Router{rules: rules, fallback: fallback}
}

// Route classifies the query. Classification is never an error: a
// failed routing call, an empty reply, or a reply matching no rule all
// resolve to the fallback route.
func (r *Router) Route(ctx context.Context, agent driven.Agent, query string) domain.Route {
	resp, err := runAgent(ctx, agent, query)
	if err != nil {
		logger.Warn("Routing call failed: %v (using fallback route %s)", err, r.fallback)
		return r.fallback
	}

	text := strings.ToLower(strings.TrimSpace(ExtractText(resp)))
	logger.Debug("Routing reply: %q", text)

	for _, rule := range r.rules {
		if rule.Matches(text) {
			return rule.Route
		}
	}

	logger.Debug("No routing rule matched, using fallback route %s", r.fallback)
	return r.fallback
}
