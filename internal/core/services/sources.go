package services

import (
	"github.com/zava-labs/askdesk-cli/internal/core/domain"
	"github.com/zava-labs/askdesk-cli/internal/logger"
)

// SourceExtractor turns the grounding fields of an agent response into
// a uniform list of source records. The per-route fallback documents
// are injected at construction.
type SourceExtractor struct {
	fallback map[domain.Route][]domain.SourceRecord
}

// NewSourceExtractor creates an extractor with the given fallback
// documents. Nil means domain.DefaultFallbackSources.
func NewSourceExtractor(fallback map[domain.Route][]domain.SourceRecord) *SourceExtractor {
	if fallback == nil {
		fallback = domain.DefaultFallbackSources()
	}
	return &SourceExtractor{fallback: fallback}
}

// Extract produces the source records for a response. The response's
// grounding fields are tried in priority order (citations, context,
// grounding data); the first that yields at least one informative
// record wins. When nothing yields, the route's static fallback
// documents are returned, so the result is never empty.
func (e *SourceExtractor) Extract(resp *domain.AgentResponse, route domain.Route) []domain.SourceRecord {
	kb := route.KBName()

	if resp != nil {
		if records := fromCitations(resp.Citations, kb); len(records) > 0 {
			logger.Debug("Sources: %d from citations", len(records))
			return records
		}
		if records := fromContext(resp.Context, kb); len(records) > 0 {
			logger.Debug("Sources: %d from context", len(records))
			return records
		}
		if records := fromGrounding(resp.Grounding, kb); len(records) > 0 {
			logger.Debug("Sources: %d from grounding data", len(records))
			return records
		}
	}

	if docs, ok := e.fallback[route]; ok {
		logger.Debug("Sources: %d static fallback documents for %s", len(docs), route)
		// Copy so callers can't mutate the injected configuration.
		return append([]domain.SourceRecord(nil), docs...)
	}

	return []domain.SourceRecord{{KB: kb, Title: "Knowledge Base", Filepath: kb}}
}

// fromCitations builds records from citation entries, skipping any
// that carry nothing beyond the kb name.
func fromCitations(citations []domain.Citation, kb string) []domain.SourceRecord {
	var records []domain.SourceRecord
	for _, c := range citations {
		record := domain.SourceRecord{
			KB:       kb,
			Title:    c.Title,
			Filepath: c.Filepath,
			URL:      c.URL,
			ChunkID:  c.ChunkID,
		}
		if record.Informative() {
			records = append(records, record)
		}
	}
	return records
}

// fromContext builds records from retrieval-context entries. The
// entry's source field becomes the record's filepath.
func fromContext(entries []domain.ContextEntry, kb string) []domain.SourceRecord {
	var records []domain.SourceRecord
	for _, entry := range entries {
		record := domain.SourceRecord{
			KB:       kb,
			Title:    entry.Title,
			Filepath: entry.Source,
		}
		if record.Informative() {
			records = append(records, record)
		}
	}
	return records
}

// fromGrounding builds records from grounding-data entries.
func fromGrounding(entries []domain.GroundingEntry, kb string) []domain.SourceRecord {
	var records []domain.SourceRecord
	for _, entry := range entries {
		record := domain.SourceRecord{
			KB:       kb,
			Title:    entry.Title,
			Filepath: entry.Filepath,
		}
		if record.Informative() {
			records = append(records, record)
		}
	}
	return records
}
