// Package domain defines the core business entities for askdesk.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Route: The domain label a query resolves to
//   - AgentResponse: The normalised form of an agent service reply
//   - SourceRecord: A citation attached to an answer
//   - Result: The (route, answer, sources) outcome of one query
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
