package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zava-labs/askdesk-cli/internal/core/domain"
)

// TestSourceExtractor_Citations tests the highest-priority field.
func TestSourceExtractor_Citations(t *testing.T) {
	extractor := NewSourceExtractor(nil)
	resp := &domain.AgentResponse{
		Citations: []domain.Citation{
			{Title: "PTO_Policy_2024.docx", Filepath: "hr-policies/PTO_Policy_2024.docx", ChunkID: "c-7"},
			{URL: "https://kb.example.com/handbook"},
		},
	}

	records := extractor.Extract(resp, domain.RouteHR)

	require.Len(t, records, 2)
	assert.Equal(t, "kb1-hr", records[0].KB)
	assert.Equal(t, "PTO_Policy_2024.docx", records[0].Title)
	assert.Equal(t, "hr-policies/PTO_Policy_2024.docx", records[0].Filepath)
	assert.Equal(t, "c-7", records[0].ChunkID)
	assert.Equal(t, "kb1-hr", records[1].KB)
	assert.Equal(t, "https://kb.example.com/handbook", records[1].URL)
}

// TestSourceExtractor_EmptyCitationsDiscarded tests the kb-only rule:
// citations with no usable field produce zero records, which moves the
// chain on to the next field.
func TestSourceExtractor_EmptyCitationsDiscarded(t *testing.T) {
	extractor := NewSourceExtractor(nil)
	resp := &domain.AgentResponse{
		Citations: []domain.Citation{{}, {}},
	}

	records := extractor.Extract(resp, domain.RouteHR)

	// Both citations are uninformative, so the static fallback wins.
	require.Len(t, records, 3)
	assert.Equal(t, "Employee_Handbook.pdf", records[0].Title)
}

// TestSourceExtractor_ContextFallback tests the second field in the
// chain, including the source-to-filepath mapping.
func TestSourceExtractor_ContextFallback(t *testing.T) {
	extractor := NewSourceExtractor(nil)
	resp := &domain.AgentResponse{
		Context: []domain.ContextEntry{
			{Title: "Brand_Guidelines.pdf", Source: "marketing/Brand_Guidelines.pdf"},
			{},
		},
	}

	records := extractor.Extract(resp, domain.RouteMarketing)

	require.Len(t, records, 1)
	assert.Equal(t, "kb2-marketing", records[0].KB)
	assert.Equal(t, "Brand_Guidelines.pdf", records[0].Title)
	assert.Equal(t, "marketing/Brand_Guidelines.pdf", records[0].Filepath)
}

// TestSourceExtractor_GroundingFallback tests the third field.
func TestSourceExtractor_GroundingFallback(t *testing.T) {
	extractor := NewSourceExtractor(nil)
	resp := &domain.AgentResponse{
		Grounding: []domain.GroundingEntry{
			{Title: "Specifications.pdf", Filepath: "products/Specifications.pdf"},
		},
	}

	records := extractor.Extract(resp, domain.RouteProducts)

	require.Len(t, records, 1)
	assert.Equal(t, "kb3-products", records[0].KB)
	assert.Equal(t, "Specifications.pdf", records[0].Title)
}

// TestSourceExtractor_CitationsWinOverContext tests priority ordering
// when multiple fields are populated.
func TestSourceExtractor_CitationsWinOverContext(t *testing.T) {
	extractor := NewSourceExtractor(nil)
	resp := &domain.AgentResponse{
		Citations: []domain.Citation{{Title: "from-citations"}},
		Context:   []domain.ContextEntry{{Title: "from-context"}},
		Grounding: []domain.GroundingEntry{{Title: "from-grounding"}},
	}

	records := extractor.Extract(resp, domain.RouteHR)

	require.Len(t, records, 1)
	assert.Equal(t, "from-citations", records[0].Title)
}

// TestSourceExtractor_StaticFallback tests the never-empty guarantee
// for every route.
func TestSourceExtractor_StaticFallback(t *testing.T) {
	extractor := NewSourceExtractor(nil)

	tests := []struct {
		route domain.Route
		count int
		first string
	}{
		{domain.RouteHR, 3, "Employee_Handbook.pdf"},
		{domain.RouteMarketing, 2, "Brand_Guidelines.pdf"},
		{domain.RouteProducts, 2, "Product_Catalog_2024.xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.route.String(), func(t *testing.T) {
			records := extractor.Extract(&domain.AgentResponse{}, tt.route)
			require.Len(t, records, tt.count)
			assert.Equal(t, tt.first, records[0].Title)
			for _, rec := range records {
				assert.Equal(t, tt.route.KBName(), rec.KB)
			}
		})
	}
}

// TestSourceExtractor_NilResponse tests the fallback on a nil response.
func TestSourceExtractor_NilResponse(t *testing.T) {
	extractor := NewSourceExtractor(nil)

	records := extractor.Extract(nil, domain.RouteHR)

	require.Len(t, records, 3)
}

// TestSourceExtractor_UnknownRoute tests the generic record for a
// route outside the fallback table.
func TestSourceExtractor_UnknownRoute(t *testing.T) {
	extractor := NewSourceExtractor(nil)

	records := extractor.Extract(&domain.AgentResponse{}, domain.Route("finance"))

	require.Len(t, records, 1)
	assert.Equal(t, "unknown", records[0].KB)
	assert.Equal(t, "Knowledge Base", records[0].Title)
}

// TestSourceExtractor_FallbackIsCopied tests that mutating a returned
// fallback slice does not corrupt the injected configuration.
func TestSourceExtractor_FallbackIsCopied(t *testing.T) {
	extractor := NewSourceExtractor(nil)

	first := extractor.Extract(nil, domain.RouteHR)
	first[0].Title = "mutated"

	second := extractor.Extract(nil, domain.RouteHR)
	assert.Equal(t, "Employee_Handbook.pdf", second[0].Title)
}
