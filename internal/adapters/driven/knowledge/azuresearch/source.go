// Package azuresearch provides knowledge-source handles backed by
// Azure AI Search knowledge bases.
package azuresearch

import (
	"fmt"
	"sync"

	"github.com/zava-labs/askdesk-cli/internal/core/domain"
	"github.com/zava-labs/askdesk-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.KnowledgeSource = (*Source)(nil)

// SourceConfig holds configuration for one knowledge base.
type SourceConfig struct {
	// Endpoint is the search service endpoint (required).
	Endpoint string

	// Name is the knowledge-base name, e.g. "kb1-hr" (required).
	Name string

	// RetrievalMode configures retrieval (default: agentic).
	RetrievalMode domain.RetrievalMode

	// OutputMode configures output (default: answer_synthesis).
	OutputMode domain.OutputMode
}

// Source is a handle on one Azure AI Search knowledge base. The core
// treats it as opaque; the agent client reads its configuration when
// serialising grounded invocations.
type Source struct {
	endpoint  string
	name      string
	retrieval domain.RetrievalMode
	output    domain.OutputMode

	mu     sync.Mutex
	closed bool
}

// NewSource creates a knowledge-source handle.
func NewSource(cfg SourceConfig) (*Source, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("azuresearch: endpoint is required")
	}
	if cfg.Name == "" {
		return nil, fmt.Errorf("azuresearch: knowledge base name is required")
	}
	if !cfg.RetrievalMode.IsValid() {
		cfg.RetrievalMode = domain.RetrievalModeAgentic
	}
	if !cfg.OutputMode.IsValid() {
		cfg.OutputMode = domain.OutputModeAnswerSynthesis
	}

	return &Source{
		endpoint:  cfg.Endpoint,
		name:      cfg.Name,
		retrieval: cfg.RetrievalMode,
		output:    cfg.OutputMode,
	}, nil
}

// Name returns the knowledge-base identifier.
func (s *Source) Name() string {
	return s.name
}

// Endpoint returns the search service endpoint.
func (s *Source) Endpoint() string {
	return s.endpoint
}

// RetrievalMode returns the configured retrieval mode.
func (s *Source) RetrievalMode() domain.RetrievalMode {
	return s.retrieval
}

// OutputMode returns the configured output mode.
func (s *Source) OutputMode() domain.OutputMode {
	return s.output
}

// Closed reports whether the handle has been released.
func (s *Source) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close releases the handle. Safe to call more than once.
func (s *Source) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
