package domain

// Result is the outcome of answering one query: which specialist
// handled it, what it said, and where the answer came from. Sources is
// never empty on a successful result.
type Result struct {
	// Route is the domain label the query resolved to.
	Route Route `json:"route"`

	// Answer is the specialist's answer text. May be empty when the
	// service returned an unrecognisable payload.
	Answer string `json:"answer"`

	// Sources lists the citations backing the answer, in priority
	// order.
	Sources []SourceRecord `json:"sources"`
}
