package mcp

import (
	"github.com/zava-labs/askdesk-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP
// server. This provides a single injection point for dependency
// injection.
type Ports struct {
	// Orchestrator answers routed questions.
	Orchestrator driving.OrchestratorService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Orchestrator == nil {
		return ErrMissingOrchestrator
	}
	return nil
}
