package cli

import (
	"context"

	"github.com/zava-labs/askdesk-cli/internal/core/domain"
)

// fakeOrchestrator records Ask calls and returns a canned result.
type fakeOrchestrator struct {
	result    *domain.Result
	err       error
	calls     int
	lastQuery string
}

func (f *fakeOrchestrator) Ask(_ context.Context, query string) (*domain.Result, error) {
	f.calls++
	f.lastQuery = query
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

// fakeSettings is an in-memory settings service.
type fakeSettings struct {
	agent       domain.AgentSettings
	credentials domain.CredentialSettings
	set         map[string]string
	setErr      error
	validateErr error
}

func (f *fakeSettings) Agent() (*domain.AgentSettings, error) {
	agent := f.agent
	return &agent, nil
}

func (f *fakeSettings) Credentials() (*domain.CredentialSettings, error) {
	credentials := f.credentials
	return &credentials, nil
}

func (f *fakeSettings) Set(key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	if f.set == nil {
		f.set = make(map[string]string)
	}
	f.set[key] = value
	return nil
}

func (f *fakeSettings) Validate() error { return f.validateErr }

func sampleResult() *domain.Result {
	return &domain.Result{
		Route:  domain.RouteHR,
		Answer: "You get 20 vacation days per year.",
		Sources: []domain.SourceRecord{
			{KB: "kb1-hr", Title: "PTO_Policy_2024.docx", Filepath: "hr-policies/PTO_Policy_2024.docx"},
		},
	}
}
