package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input, such as an
	// empty query.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownRoute indicates a route outside the fixed set.
	ErrUnknownRoute = errors.New("unknown route")

	// ErrShapeMismatch indicates the agent service rejected the
	// calling convention used for an invocation. This is the only
	// error that makes the invocation shim fall back to the next
	// convention; everything else propagates.
	ErrShapeMismatch = errors.New("invocation shape mismatch")

	// ErrAgentUnavailable indicates the agent service is not
	// configured or unreachable.
	ErrAgentUnavailable = errors.New("agent service unavailable")

	// Authentication errors.

	// ErrAuthRequired indicates the agent service requires credentials
	// but none are configured.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthInvalid indicates the configured credentials were
	// rejected.
	ErrAuthInvalid = errors.New("authentication invalid")
)
