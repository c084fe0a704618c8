package driving

import (
	"context"

	"github.com/zava-labs/askdesk-cli/internal/core/domain"
)

// OrchestratorService answers queries end-to-end: classify the query,
// invoke the chosen specialist, and normalise the reply into a Result.
type OrchestratorService interface {
	// Ask answers a single query. All remote handles are acquired for
	// the duration of the call and released on every exit path. A
	// remote failure during the specialist invocation propagates to
	// the caller; classification failures resolve to the default
	// route instead of failing.
	Ask(ctx context.Context, query string) (*domain.Result, error)
}
