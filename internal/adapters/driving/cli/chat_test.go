package cli

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedReader replays a fixed set of input lines, then reports EOF.
type scriptedReader struct {
	lines  []string
	closed bool
}

func (r *scriptedReader) ReadLine(_ string) (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func (r *scriptedReader) Close() error {
	r.closed = true
	return nil
}

func TestChatLoop_AnswersEachLine(t *testing.T) {
	fake := &fakeOrchestrator{result: sampleResult()}
	orchestratorService = fake
	t.Cleanup(func() { orchestratorService = nil })

	cmd, buf := newTestCmd()
	reader := &scriptedReader{lines: []string{"vacation days?", "benefits?", "quit"}}

	err := chatLoop(cmd, reader)
	require.NoError(t, err)

	assert.Equal(t, 2, fake.calls)
	assert.Equal(t, "benefits?", fake.lastQuery)
	assert.Contains(t, buf.String(), "You get 20 vacation days per year.")
	assert.Contains(t, buf.String(), "Goodbye!")
}

func TestChatLoop_QuitDoesNotInvoke(t *testing.T) {
	tests := []string{"quit", "exit", "q", "QUIT", "Exit", "Q"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			fake := &fakeOrchestrator{result: sampleResult()}
			orchestratorService = fake
			t.Cleanup(func() { orchestratorService = nil })

			cmd, _ := newTestCmd()
			err := chatLoop(cmd, &scriptedReader{lines: []string{input}})
			require.NoError(t, err)
			assert.Equal(t, 0, fake.calls)
		})
	}
}

func TestChatLoop_SkipsBlankLines(t *testing.T) {
	fake := &fakeOrchestrator{result: sampleResult()}
	orchestratorService = fake
	t.Cleanup(func() { orchestratorService = nil })

	cmd, _ := newTestCmd()
	reader := &scriptedReader{lines: []string{"", "   ", "\t", "real question", "quit"}}

	err := chatLoop(cmd, reader)
	require.NoError(t, err)
	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, "real question", fake.lastQuery)
}

func TestChatLoop_ReportsErrorAndContinues(t *testing.T) {
	fake := &fakeOrchestrator{err: errors.New("agent unreachable")}
	orchestratorService = fake
	t.Cleanup(func() { orchestratorService = nil })

	cmd, buf := newTestCmd()
	reader := &scriptedReader{lines: []string{"first", "second", "quit"}}

	err := chatLoop(cmd, reader)
	require.NoError(t, err)

	// Both questions were attempted despite the first failing.
	assert.Equal(t, 2, fake.calls)
	assert.Contains(t, buf.String(), "agent unreachable")
	assert.Contains(t, buf.String(), "Goodbye!")
}

func TestChatLoop_EOFEndsSession(t *testing.T) {
	orchestratorService = &fakeOrchestrator{result: sampleResult()}
	t.Cleanup(func() { orchestratorService = nil })

	cmd, buf := newTestCmd()
	err := chatLoop(cmd, &scriptedReader{})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Goodbye!")
}

func TestIsQuitCommand(t *testing.T) {
	assert.True(t, isQuitCommand("quit"))
	assert.True(t, isQuitCommand("eXiT"))
	assert.False(t, isQuitCommand("quit please"))
	assert.False(t, isQuitCommand("what is q2 revenue"))
}

func TestBufioReader(t *testing.T) {
	out := &strings.Builder{}
	reader := newBufioReader(strings.NewReader("first line\nsecond line"), out)

	line, err := reader.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "first line", line)

	// Final line without a trailing newline is still delivered.
	line, err = reader.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "second line", line)

	_, err = reader.ReadLine("> ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "> > > ", out.String())
}
