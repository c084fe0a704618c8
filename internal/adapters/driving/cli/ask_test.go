package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zava-labs/askdesk-cli/internal/core/domain"
)

// newTestCmd builds a command with captured output and a background
// context, the way RunE receives it during Execute.
func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetContext(context.Background())
	return cmd, buf
}

func TestRunAsk(t *testing.T) {
	fake := &fakeOrchestrator{result: sampleResult()}
	orchestratorService = fake
	t.Cleanup(func() { orchestratorService = nil })

	cmd, buf := newTestCmd()
	askJSON = false

	err := runAsk(cmd, []string{"how many vacation days do I get?"})
	require.NoError(t, err)

	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, "how many vacation days do I get?", fake.lastQuery)

	output := buf.String()
	assert.Contains(t, output, "hr")
	assert.Contains(t, output, "You get 20 vacation days per year.")
	assert.Contains(t, output, "PTO_Policy_2024.docx")
}

func TestRunAsk_JSON(t *testing.T) {
	orchestratorService = &fakeOrchestrator{result: sampleResult()}
	t.Cleanup(func() { orchestratorService = nil })

	cmd, buf := newTestCmd()
	askJSON = true
	t.Cleanup(func() { askJSON = false })

	err := runAsk(cmd, []string{"vacation days?"})
	require.NoError(t, err)

	var result domain.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, domain.RouteHR, result.Route)
	assert.Equal(t, "You get 20 vacation days per year.", result.Answer)
	require.Len(t, result.Sources, 1)
	assert.Equal(t, "kb1-hr", result.Sources[0].KB)
}

func TestRunAsk_ServiceError(t *testing.T) {
	orchestratorService = &fakeOrchestrator{err: errors.New("service down")}
	t.Cleanup(func() { orchestratorService = nil })

	cmd, _ := newTestCmd()
	err := runAsk(cmd, []string{"anything"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service down")
}

func TestRunAsk_NoService(t *testing.T) {
	orchestratorService = nil

	cmd, _ := newTestCmd()
	err := runAsk(cmd, []string{"anything"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestFormatSource(t *testing.T) {
	tests := []struct {
		name     string
		source   domain.SourceRecord
		expected string
	}{
		{
			name:     "title and filepath",
			source:   domain.SourceRecord{KB: "kb1-hr", Title: "Handbook", Filepath: "hr/Handbook.pdf"},
			expected: "Handbook - hr/Handbook.pdf (kb1-hr)",
		},
		{
			name:     "title only",
			source:   domain.SourceRecord{KB: "kb1-hr", Title: "Handbook"},
			expected: "Handbook (kb1-hr)",
		},
		{
			name:     "identical title and filepath collapse",
			source:   domain.SourceRecord{KB: "kb2-marketing", Title: "Brand.pdf", Filepath: "Brand.pdf"},
			expected: "Brand.pdf (kb2-marketing)",
		},
		{
			name:     "url included",
			source:   domain.SourceRecord{KB: "kb3-products", Title: "Catalog", URL: "https://example.test/catalog"},
			expected: "Catalog - https://example.test/catalog (kb3-products)",
		},
		{
			name:     "chunk id fallback",
			source:   domain.SourceRecord{KB: "kb1-hr", ChunkID: "c42"},
			expected: "c42 (kb1-hr)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatSource(tt.source))
		})
	}
}
