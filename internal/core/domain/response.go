package domain

// AgentResponse is the normalised form of whatever the agent service
// returned. The wire shape varies between service versions, so every
// field that may or may not be present is modelled as an explicit
// optional: a nil pointer or empty slice means the field was absent.
// Boundary adapters populate this type; the core never re-parses wire
// payloads.
type AgentResponse struct {
	// Text is the plain answer text, when the service provided one.
	Text *string

	// Content is the message content, when the service used the
	// content-based reply shape instead of a top-level text field.
	Content *ResponseContent

	// Citations lists grounding citations attached to the answer.
	Citations []Citation

	// Context lists retrieval context entries attached to the answer.
	Context []ContextEntry

	// Grounding lists grounding-data entries attached to the answer.
	Grounding []GroundingEntry

	// Raw is a compact textual rendering of the whole payload, kept as
	// the last-resort answer text when no recognised field is present.
	Raw string
}

// ResponseContent holds a content field that may be either a plain
// string or a structured value.
type ResponseContent struct {
	// Text is the content when the wire value was a plain string.
	Text string

	// IsText is true when Text carries the content.
	IsText bool

	// Structured is a lossy textual rendering of a non-string content
	// value. Best effort only; not a round trip.
	Structured string
}

// Citation is one citation entry as reported by the agent service.
// Empty fields were absent on the wire.
type Citation struct {
	Title    string
	Filepath string
	URL      string
	ChunkID  string
}

// ContextEntry is one retrieval-context entry. Source is the document
// location the retrieval layer reports for the entry.
type ContextEntry struct {
	Title  string
	Source string
}

// GroundingEntry is one grounding-data entry.
type GroundingEntry struct {
	Title    string
	Filepath string
}

// Message is a single conversation message sent to an agent.
type Message struct {
	// Role is one of "system", "user", or "assistant".
	Role string

	// Text is the message text.
	Text string
}

// NewUserMessage builds a user message carrying the given text. All
// message construction goes through here so the invocation shim is the
// only place that knows about wire conventions.
func NewUserMessage(text string) Message {
	return Message{Role: "user", Text: text}
}
