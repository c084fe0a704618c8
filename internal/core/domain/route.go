package domain

import "strings"

// Route identifies which domain specialist handles a query.
type Route string

// Available routes.
const (
	// RouteHR covers HR policies, PTO, benefits, and the employee handbook.
	RouteHR Route = "hr"

	// RouteMarketing covers campaigns, brand guidelines, and marketing strategy.
	RouteMarketing Route = "marketing"

	// RouteProducts covers the product catalog, specifications, and pricing.
	RouteProducts Route = "products"
)

// IsValid returns true if the route is recognised.
func (r Route) IsValid() bool {
	switch r {
	case RouteHR, RouteMarketing, RouteProducts:
		return true
	default:
		return false
	}
}

// KBName returns the knowledge-base identifier backing this route.
// Unrecognised routes map to "unknown".
func (r Route) KBName() string {
	switch r {
	case RouteHR:
		return "kb1-hr"
	case RouteMarketing:
		return "kb2-marketing"
	case RouteProducts:
		return "kb3-products"
	default:
		return "unknown"
	}
}

// String returns the string representation.
func (r Route) String() string {
	return string(r)
}

// Routes returns all valid routes in a stable order.
func Routes() []Route {
	return []Route{RouteHR, RouteMarketing, RouteProducts}
}

// RouteRule maps a set of keywords to a route. Rules are evaluated in
// order against the normalised classification text; the first rule whose
// keyword appears as a substring wins.
type RouteRule struct {
	// Route is the destination when this rule matches.
	Route Route

	// Keywords are the substrings that trigger this rule.
	Keywords []string
}

// Matches returns true if any of the rule's keywords appears in text.
// Text is expected to be lower-cased by the caller.
func (r RouteRule) Matches(text string) bool {
	for _, kw := range r.Keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// DefaultRouteRules returns the standard routing rules. Order matters:
// "hr" is checked before the marketing keywords, so a reply containing
// both resolves to HR.
func DefaultRouteRules() []RouteRule {
	return []RouteRule{
		{Route: RouteHR, Keywords: []string{"hr"}},
		{Route: RouteMarketing, Keywords: []string{"marketing", "brand", "campaign"}},
		{Route: RouteProducts, Keywords: []string{"product"}},
	}
}

// DefaultRoute is where ambiguous or unparseable classification replies
// land. A misroute is low-stakes (same specialist pool), so a fixed
// default beats refusing the query.
const DefaultRoute = RouteHR
