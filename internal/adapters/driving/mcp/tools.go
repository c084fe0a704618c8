package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Query string `json:"query" jsonschema:"the natural-language question to answer"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Route   string         `json:"route"`
	Answer  string         `json:"answer"`
	Sources []SourceOutput `json:"sources"`
}

// SourceOutput represents a single source document backing an answer.
type SourceOutput struct {
	KB       string `json:"kb"`
	Title    string `json:"title,omitempty"`
	Filepath string `json:"filepath,omitempty"`
	URL      string `json:"url,omitempty"`
	ChunkID  string `json:"chunk_id,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Ask a question against the company HR, marketing, or products knowledge bases",
	}, s.handleAsk)
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	result, err := s.ports.Orchestrator.Ask(ctx, input.Query)
	if err != nil {
		return nil, AskOutput{}, err
	}

	output := AskOutput{
		Route:   result.Route.String(),
		Answer:  result.Answer,
		Sources: make([]SourceOutput, len(result.Sources)),
	}
	for i, source := range result.Sources {
		output.Sources[i] = SourceOutput{
			KB:       source.KB,
			Title:    source.Title,
			Filepath: source.Filepath,
			URL:      source.URL,
			ChunkID:  source.ChunkID,
		}
	}

	return nil, output, nil
}
