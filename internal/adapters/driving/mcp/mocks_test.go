package mcp

import (
	"context"

	"github.com/zava-labs/askdesk-cli/internal/core/domain"
)

// mockOrchestrator returns a canned result or error.
type mockOrchestrator struct {
	result    *domain.Result
	err       error
	lastQuery string
}

func (m *mockOrchestrator) Ask(_ context.Context, query string) (*domain.Result, error) {
	m.lastQuery = query
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}
