// Package mcp provides an MCP (Model Context Protocol) server adapter
// for askdesk. It lets AI assistants route questions to the company
// knowledge bases through the orchestrator.
package mcp

import "errors"

// ErrMissingOrchestrator is returned when the orchestrator service is
// not provided.
var ErrMissingOrchestrator = errors.New("mcp: orchestrator service is required")
