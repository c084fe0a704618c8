package cli

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive question session",
	Long: `Starts an interactive loop. Each line is routed and answered
independently; no conversation state is carried between questions.

Type 'quit', 'exit', or 'q' to leave. Ctrl+C and Ctrl+D also exit.`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

// lineReader abstracts interactive input so the loop is testable.
type lineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// linerReader reads input with history and line editing on a TTY.
type linerReader struct {
	state       *liner.State
	historyFile string
}

func newLinerReader() *linerReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)

	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".askdesk", "chat_history")
		if f, err := os.Open(historyFile); err == nil {
			state.ReadHistory(f)
			f.Close()
		}
	}

	return &linerReader{state: state, historyFile: historyFile}
}

func (r *linerReader) ReadLine(prompt string) (string, error) {
	input, err := r.state.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		r.state.AppendHistory(input)
	}
	return input, nil
}

func (r *linerReader) Close() error {
	if r.historyFile != "" {
		if err := os.MkdirAll(filepath.Dir(r.historyFile), 0700); err == nil {
			if f, err := os.OpenFile(r.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600); err == nil {
				r.state.WriteHistory(f)
				f.Close()
			}
		}
	}
	return r.state.Close()
}

// bufioReader is the fallback when stdin is not a terminal (pipes,
// redirects, tests).
type bufioReader struct {
	reader *bufio.Reader
	out    io.Writer
}

func newBufioReader(in io.Reader, out io.Writer) *bufioReader {
	return &bufioReader{reader: bufio.NewReader(in), out: out}
}

func (r *bufioReader) ReadLine(prompt string) (string, error) {
	_, _ = io.WriteString(r.out, prompt)
	line, err := r.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\n"), nil
}

func (r *bufioReader) Close() error { return nil }

func runChat(cmd *cobra.Command, _ []string) error {
	if orchestratorService == nil {
		return errors.New("orchestrator service not configured")
	}

	var reader lineReader
	if term.IsTerminal(int(os.Stdin.Fd())) {
		reader = newLinerReader()
	} else {
		reader = newBufioReader(cmd.InOrStdin(), cmd.OutOrStdout())
	}
	defer reader.Close()

	cmd.Println(promptStyle.Render("askdesk interactive session"))
	cmd.Println(infoStyle.Render("Type your question and press Enter. Type 'quit' to exit."))
	cmd.Println()

	return chatLoop(cmd, reader)
}

// chatLoop reads one question per line until the user quits. Failures
// answering a single question are reported and the loop continues.
func chatLoop(cmd *cobra.Command, reader lineReader) error {
	for {
		input, err := reader.ReadLine(promptStyle.Render("askdesk> "))
		if err != nil {
			// Ctrl+C, Ctrl+D, or closed input all end the session.
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				cmd.Println()
				cmd.Println(infoStyle.Render("Goodbye!"))
				return nil
			}
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if isQuitCommand(input) {
			cmd.Println(infoStyle.Render("Goodbye!"))
			return nil
		}

		result, err := orchestratorService.Ask(cmd.Context(), input)
		if err != nil {
			cmd.Printf("%s %v\n", errorStyle.Render("[Error]"), err)
			continue
		}

		cmd.Println()
		outputResult(cmd, result)
		cmd.Println()
	}
}

// isQuitCommand reports whether the input ends the session.
func isQuitCommand(input string) bool {
	switch strings.ToLower(input) {
	case "quit", "exit", "q":
		return true
	default:
		return false
	}
}
