package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/zava-labs/askdesk-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for askdesk resources.
	uriScheme = "askdesk://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource listing the routable domains.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "routes",
		Name:        "routes",
		Description: "Routable domains and their knowledge bases",
		MIMEType:    "application/json",
	}, s.handleRoutesResource)
}

// handleRoutesResource returns the routable domains and the knowledge
// base each one is grounded on.
func (s *Server) handleRoutesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type routeInfo struct {
		Route         string `json:"route"`
		KnowledgeBase string `json:"knowledge_base"`
	}

	routes := domain.Routes()
	infos := make([]routeInfo, len(routes))
	for i, route := range routes {
		infos[i] = routeInfo{
			Route:         route.String(),
			KnowledgeBase: route.KBName(),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling routes: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
