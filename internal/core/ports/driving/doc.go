// Package driving defines the interfaces through which the outside
// world calls INTO the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// Core services implement them; the CLI and MCP adapters consume them.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driving
