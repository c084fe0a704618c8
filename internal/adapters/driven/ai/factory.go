// Package ai wires the driven AI adapters into sessions: for each
// query it assembles a credential provider, an agent service client,
// the knowledge sources, and the router and specialist agents, and
// tears them all down again when the query completes.
package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/zava-labs/askdesk-cli/internal/adapters/driven/agent/azureai"
	"github.com/zava-labs/askdesk-cli/internal/adapters/driven/auth"
	"github.com/zava-labs/askdesk-cli/internal/adapters/driven/knowledge/azuresearch"
	"github.com/zava-labs/askdesk-cli/internal/core/domain"
	"github.com/zava-labs/askdesk-cli/internal/core/ports/driven"
	"github.com/zava-labs/askdesk-cli/internal/core/ports/driving"
)

// Ensure SessionFactory implements the interface.
var _ driven.SessionFactory = (*SessionFactory)(nil)

// SessionFactory builds fresh sessions from settings. Each Open call
// acquires its own credential and client, so no two queries share
// handles.
type SessionFactory struct {
	agent        domain.AgentSettings
	credentials  domain.CredentialSettings
	instructions map[domain.Route]string
}

// NewSessionFactory creates a session factory. Instructions may be nil,
// in which case the default specialist instructions are used.
func NewSessionFactory(agent domain.AgentSettings, credentials domain.CredentialSettings, instructions map[domain.Route]string) (*SessionFactory, error) {
	if !agent.IsConfigured() {
		return nil, fmt.Errorf("%w: agent service is not configured", domain.ErrAgentUnavailable)
	}
	if instructions == nil {
		instructions = domain.DefaultInstructions()
	}

	return &SessionFactory{
		agent:        agent,
		credentials:  credentials,
		instructions: instructions,
	}, nil
}

// Open acquires a credential, connects a client, registers the
// knowledge sources, and builds the router and specialist agents. On
// any failure everything acquired so far is released before returning.
func (f *SessionFactory) Open(ctx context.Context) (driven.Session, error) {
	credential, err := auth.NewCredentialProvider(f.credentials)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}

	client, err := azureai.NewClient(azureai.ClientConfig{
		ProjectEndpoint: f.agent.ProjectEndpoint,
		Model:           f.agent.Model,
		Credentials:     credential,
	})
	if err != nil {
		credential.Close()
		return nil, fmt.Errorf("open session: %w", err)
	}

	s := &session{
		credential: credential,
		client:     client,
		sources:    make(map[domain.Route]driven.KnowledgeSource),
		agents:     make(map[domain.Route]driven.Agent),
	}

	for _, route := range domain.Routes() {
		// Without a search endpoint the specialists run ungrounded and
		// answers fall back to the static per-domain documents.
		if f.agent.SearchEndpoint == "" {
			s.agents[route] = client.NewAgent(driven.AgentConfig{
				Instructions: f.instructions[route],
			})
			continue
		}

		source, err := azuresearch.NewSource(azuresearch.SourceConfig{
			Endpoint:      f.agent.SearchEndpoint,
			Name:          route.KBName(),
			RetrievalMode: f.agent.RetrievalMode,
			OutputMode:    f.agent.OutputMode,
		})
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("open session: knowledge source %s: %w", route, err)
		}
		s.sources[route] = source
		s.agents[route] = client.NewAgent(driven.AgentConfig{
			Instructions: f.instructions[route],
			Knowledge:    source,
		})
	}

	// The router is ungrounded: no knowledge source.
	s.router = client.NewAgent(driven.AgentConfig{
		Instructions: domain.RouterInstructions,
	})

	return s, nil
}

// DynamicSessionFactory resolves settings on every Open, so
// configuration changes and environment overrides take effect without
// restarting the process.
type DynamicSessionFactory struct {
	settings driving.SettingsService
}

var _ driven.SessionFactory = (*DynamicSessionFactory)(nil)

// NewDynamicSessionFactory creates a factory that reads settings at
// open time.
func NewDynamicSessionFactory(settings driving.SettingsService) *DynamicSessionFactory {
	return &DynamicSessionFactory{settings: settings}
}

// Open resolves the current settings and opens a session from them.
func (f *DynamicSessionFactory) Open(ctx context.Context) (driven.Session, error) {
	agent, err := f.settings.Agent()
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	credentials, err := f.settings.Credentials()
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}

	inner, err := NewSessionFactory(*agent, *credentials, nil)
	if err != nil {
		return nil, err
	}
	return inner.Open(ctx)
}

// session is one query's worth of acquired resources.
type session struct {
	credential driven.CredentialProvider
	client     *azureai.Client
	sources    map[domain.Route]driven.KnowledgeSource
	agents     map[domain.Route]driven.Agent
	router     driven.Agent
}

var _ driven.Session = (*session)(nil)

// Router returns the routing agent.
func (s *session) Router() driven.Agent {
	return s.router
}

// Specialist returns the grounded agent for the given route.
func (s *session) Specialist(route domain.Route) (driven.Agent, error) {
	agent, ok := s.agents[route]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownRoute, route)
	}
	return agent, nil
}

// Close releases every resource the session acquired. All closers run
// even when earlier ones fail.
func (s *session) Close() error {
	var errs []error
	for _, source := range s.sources {
		if err := source.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if s.client != nil {
		if err := s.client.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if s.credential != nil {
		if err := s.credential.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
