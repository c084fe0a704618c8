package services

import (
	"context"

	"github.com/zava-labs/askdesk-cli/internal/core/domain"
	"github.com/zava-labs/askdesk-cli/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockAgent implements driven.Agent for testing. The list and single
// conventions can fail independently so shim fallback is testable.
type mockAgent struct {
	resp      *domain.AgentResponse
	err       error
	singleErr error

	invokeCalls int
	singleCalls int
	lastText    string
}

func (m *mockAgent) Invoke(_ context.Context, messages []domain.Message) (*domain.AgentResponse, error) {
	m.invokeCalls++
	if len(messages) > 0 {
		m.lastText = messages[0].Text
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func (m *mockAgent) InvokeSingle(_ context.Context, message domain.Message) (*domain.AgentResponse, error) {
	m.singleCalls++
	m.lastText = message.Text
	if m.singleErr != nil {
		return nil, m.singleErr
	}
	return m.resp, nil
}

// mockSession implements driven.Session for testing.
type mockSession struct {
	router      driven.Agent
	specialists map[domain.Route]driven.Agent
	specErr     error
	closed      bool
}

func (m *mockSession) Router() driven.Agent {
	return m.router
}

func (m *mockSession) Specialist(route domain.Route) (driven.Agent, error) {
	if m.specErr != nil {
		return nil, m.specErr
	}
	return m.specialists[route], nil
}

func (m *mockSession) Close() error {
	m.closed = true
	return nil
}

// mockSessionFactory implements driven.SessionFactory for testing.
type mockSessionFactory struct {
	session *mockSession
	openErr error
	opens   int
}

func (m *mockSessionFactory) Open(_ context.Context) (driven.Session, error) {
	m.opens++
	if m.openErr != nil {
		return nil, m.openErr
	}
	return m.session, nil
}

// mockConfigStore implements driven.ConfigStore for testing.
type mockConfigStore struct {
	values map[string]any
	setErr error
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{values: make(map[string]any)}
}

func (m *mockConfigStore) GetString(key string) string {
	if s, ok := m.values[key].(string); ok {
		return s
	}
	return ""
}

func (m *mockConfigStore) GetStringSlice(key string) []string {
	if s, ok := m.values[key].([]string); ok {
		return s
	}
	return nil
}

func (m *mockConfigStore) GetBool(key string) bool {
	if b, ok := m.values[key].(bool); ok {
		return b
	}
	return false
}

func (m *mockConfigStore) Set(key string, value any) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func (m *mockConfigStore) Save() error { return nil }

func (m *mockConfigStore) Load() error { return nil }

func (m *mockConfigStore) Path() string { return "/tmp/askdesk-test/config.toml" }

// strptr is a convenience for building optional text fields.
func strptr(s string) *string {
	return &s
}
