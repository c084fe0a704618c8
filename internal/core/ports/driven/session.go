package driven

import (
	"context"

	"github.com/zava-labs/askdesk-cli/internal/core/domain"
)

// Session holds everything one query resolution needs: the credential,
// the agent client, the knowledge sources, and the router and
// specialist agents built on top of them. Sessions are scoped to a
// single call; Close releases all held resources and must run on every
// exit path.
type Session interface {
	// Router returns the routing agent (ungrounded).
	Router() Agent

	// Specialist returns the grounded agent for the given route.
	Specialist(route domain.Route) (Agent, error)

	// Close releases the credential, client, and knowledge sources.
	Close() error
}

// SessionFactory acquires a fresh Session. The orchestrator opens one
// session per query and closes it when the query completes, so no two
// queries share handles.
type SessionFactory interface {
	Open(ctx context.Context) (Session, error)
}
