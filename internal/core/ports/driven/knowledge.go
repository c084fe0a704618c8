package driven

// KnowledgeSource is an opaque handle on a grounding corpus. The core
// never interprets its internals; it only threads the handle into
// agent construction and releases it when the session closes.
type KnowledgeSource interface {
	// Name returns the knowledge-base identifier (e.g. "kb1-hr").
	Name() string

	// Close releases the handle.
	Close() error
}
