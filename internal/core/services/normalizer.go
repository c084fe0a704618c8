package services

import (
	"github.com/zava-labs/askdesk-cli/internal/core/domain"
)

// ExtractText pulls plain answer text out of an agent response,
// whichever of the known reply shapes the service used. It never
// fails: unrecognised shapes degrade to the raw payload rendering, and
// a nil response yields an empty string.
func ExtractText(resp *domain.AgentResponse) string {
	if resp == nil {
		return ""
	}

	if resp.Text != nil {
		return *resp.Text
	}

	if resp.Content != nil {
		if resp.Content.IsText {
			return resp.Content.Text
		}
		// Structured content: lossy rendering is acceptable here, this
		// is a best-effort fallback rather than a round trip.
		return resp.Content.Structured
	}

	return resp.Raw
}
