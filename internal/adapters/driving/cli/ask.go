package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zava-labs/askdesk-cli/internal/core/domain"
)

var askJSON bool

var askCmd = &cobra.Command{
	Use:   "ask [query]",
	Short: "Ask a single question",
	Long: `Routes the question to the HR, marketing, or products knowledge base,
asks the matching specialist agent, and prints the answer with its
source documents.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output result as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	query := args[0]

	if orchestratorService == nil {
		return errors.New("orchestrator service not configured")
	}

	result, err := orchestratorService.Ask(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	if askJSON {
		return outputResultJSON(cmd, result)
	}

	outputResult(cmd, result)
	return nil
}

func outputResultJSON(cmd *cobra.Command, result *domain.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputResult(cmd *cobra.Command, result *domain.Result) {
	cmd.Printf("%s %s\n", routeStyle.Render("[Route]"), result.Route)
	cmd.Println()

	answer := result.Answer
	if answer == "" {
		answer = "(no answer)"
	}
	cmd.Println(answer)
	cmd.Println()

	if len(result.Sources) == 0 {
		return
	}
	cmd.Println(infoStyle.Render("Sources:"))
	for i, source := range result.Sources {
		cmd.Printf("  [%d] %s\n", i+1, sourceStyle.Render(formatSource(source)))
	}
}

// formatSource renders one source record on a single line.
func formatSource(source domain.SourceRecord) string {
	var parts []string
	if source.Title != "" {
		parts = append(parts, source.Title)
	}
	if source.Filepath != "" && source.Filepath != source.Title {
		parts = append(parts, source.Filepath)
	}
	if source.URL != "" {
		parts = append(parts, source.URL)
	}
	if len(parts) == 0 {
		parts = append(parts, source.ChunkID)
	}
	return fmt.Sprintf("%s (%s)", strings.Join(parts, " - "), source.KB)
}
