// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - SessionFactory / Session: Scoped acquisition of all remote handles
//   - Agent / AgentClient: Invocation of the classification/generation service
//   - KnowledgeSource: Opaque grounding handle bound per specialist
//   - CredentialProvider: Access tokens for the agent service
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
