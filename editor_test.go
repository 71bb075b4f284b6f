package console

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// typed converts a string into printable key events.
func typed(s string) []Key {
	keys := make([]Key, 0, len(s))
	for _, r := range s {
		keys = append(keys, Key{Kind: KeyPrintable, Ch: r})
	}
	return keys
}

func enter() Key { return Key{Kind: KeyEnter} }
func tab() Key   { return Key{Kind: KeyTab} }

func newTestEditor(t *testing.T, out io.Writer, term *mockTerminal, words ...string) *editor {
	t.Helper()
	trie, err := NewTrie(DefaultAlphabet)
	require.NoError(t, err)
	for _, w := range words {
		require.NoError(t, trie.Insert(w))
	}
	return &editor{
		keys:    term,
		buffer:  NewLineBuffer(out),
		history: NewHistory(0),
		trie:    trie,
		out:     out,
		scheme:  ThemeDefault,
		prefix:  "> ",
		width:   func() int { return 80 },
	}
}

func TestReadLineTyping(t *testing.T) {
	var out bytes.Buffer
	keys := append(typed("hello"), enter())
	e := newTestEditor(t, &out, newMockTerminal(keys...))

	line, err := e.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hello", line)
	assert.Contains(t, out.String(), "hello")
	assert.Contains(t, out.String(), "\r\n")
}

func TestReadLineEditing(t *testing.T) {
	tests := []struct {
		name string
		keys []Key
		want string
	}{
		{
			name: "insert mid-line",
			keys: append(append(typed("helo"), Key{Kind: KeyLeft}, Key{Kind: KeyPrintable, Ch: 'l'}), enter()),
			want: "hello",
		},
		{
			name: "backspace at end",
			keys: append(append(typed("abc"), Key{Kind: KeyBackspace}), enter()),
			want: "ab",
		},
		{
			name: "delete at cursor",
			keys: append(append(typed("abc"), Key{Kind: KeyLeft}, Key{Kind: KeyLeft}, Key{Kind: KeyDelete}), enter()),
			want: "ac",
		},
		{
			name: "move right past reinserted text",
			keys: append(append(typed("ac"), Key{Kind: KeyLeft}, Key{Kind: KeyPrintable, Ch: 'b'}, Key{Kind: KeyRight}, Key{Kind: KeyPrintable, Ch: 'd'}), enter()),
			want: "abcd",
		},
		{
			name: "undefined keys are ignored",
			keys: append(append(typed("ok"), Key{Kind: KeyUndefined}), enter()),
			want: "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			e := newTestEditor(t, &out, newMockTerminal(tt.keys...))

			line, err := e.ReadLine(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, line)
		})
	}
}

func TestReadLineBoundaryBells(t *testing.T) {
	var out bytes.Buffer
	keys := []Key{
		{Kind: KeyLeft},      // cursor at start
		{Kind: KeyBackspace}, // empty buffer
		{Kind: KeyDelete},    // cursor at end
		{Kind: KeyUp},        // history exhausted
		{Kind: KeyDown},      // already at live line
		enter(),
	}
	e := newTestEditor(t, &out, newMockTerminal(keys...))

	line, err := e.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", line)
	assert.Equal(t, 5, bytes.Count(out.Bytes(), []byte("\a")))
}

func TestReadLineHistoryRecall(t *testing.T) {
	var out bytes.Buffer
	keys := append(typed("dr"),
		Key{Kind: KeyUp},   // recall "second"
		Key{Kind: KeyUp},   // recall "first"
		Key{Kind: KeyDown}, // back to "second"
		Key{Kind: KeyDown}, // back to the draft
		enter(),
	)
	e := newTestEditor(t, &out, newMockTerminal(keys...))
	e.history.Record("first")
	e.history.Record("second")

	line, err := e.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "dr", line, "the draft is restored when browsing returns to the live line")
}

func TestReadLineHistorySubmitRecalled(t *testing.T) {
	var out bytes.Buffer
	keys := []Key{{Kind: KeyUp}, enter()}
	e := newTestEditor(t, &out, newMockTerminal(keys...))
	e.history.Record("previous")

	line, err := e.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "previous", line)
}

func TestReadLineTabCompletes(t *testing.T) {
	var out bytes.Buffer
	keys := append(typed("q"), tab(), enter())
	e := newTestEditor(t, &out, newMockTerminal(keys...), "quit", "quick")

	line, err := e.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "qui", line, "tab extends to the longest unambiguous continuation")
}

func TestReadLineTabUnambiguous(t *testing.T) {
	var out bytes.Buffer
	keys := append(typed("quic"), tab(), enter())
	e := newTestEditor(t, &out, newMockTerminal(keys...), "quit", "quick")

	line, err := e.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "quick", line)
}

func TestReadLineDoubleTabLists(t *testing.T) {
	var out bytes.Buffer
	keys := append(typed("qui"), tab(), tab(), enter())
	e := newTestEditor(t, &out, newMockTerminal(keys...), "quit", "quick")

	line, err := e.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "qui", line)

	// First tab cannot extend: bell. Second tab lists both candidates and
	// redisplays the prompt with the line.
	output := out.String()
	assert.Contains(t, output, "\a")
	assert.Contains(t, output, "quick")
	assert.Contains(t, output, "quit")
	assert.Contains(t, output, "> ")
}

func TestReadLineDoubleTabInterrupted(t *testing.T) {
	var out bytes.Buffer
	// A non-tab event between the two tabs disarms the listing gesture.
	keys := append(typed("qui"), tab(), Key{Kind: KeyLeft}, tab(), enter())
	e := newTestEditor(t, &out, newMockTerminal(keys...), "quit", "quick")

	line, err := e.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "qui", line)
	assert.NotContains(t, out.String(), "quick", "no listing without two consecutive tabs")
}

func TestReadLineDoubleTabNoMatches(t *testing.T) {
	var out bytes.Buffer
	keys := append(typed("x"), tab(), tab(), enter())
	e := newTestEditor(t, &out, newMockTerminal(keys...), "quit")

	line, err := e.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "x", line)
	assert.Contains(t, out.String(), "no matches")
}

func TestReadLineTabAfterCompletionRingsBell(t *testing.T) {
	var out bytes.Buffer
	// The first tab extends, the second finds nothing further to extend and
	// arms, the third lists.
	keys := append(typed("q"), tab(), tab(), tab(), enter())
	e := newTestEditor(t, &out, newMockTerminal(keys...), "quit", "quick")

	line, err := e.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "qui", line)
	assert.Contains(t, out.String(), "quick")
	assert.Contains(t, out.String(), "quit")
}

func TestReadLineKeyError(t *testing.T) {
	var out bytes.Buffer
	keys := append(typed("ab"), Key{Kind: KeyError})
	e := newTestEditor(t, &out, newMockTerminal(keys...))

	_, err := e.ReadLine(context.Background())
	assert.ErrorIs(t, err, ErrInputDecode)
}

func TestReadLineInterrupt(t *testing.T) {
	var out bytes.Buffer
	keys := append(typed("ab"), Key{Kind: KeyInterrupt})
	e := newTestEditor(t, &out, newMockTerminal(keys...))

	_, err := e.ReadLine(context.Background())
	assert.ErrorIs(t, err, ErrInterrupted)
	assert.Contains(t, out.String(), "^C")
}

func TestReadLineEOF(t *testing.T) {
	t.Run("empty buffer returns ErrEOF", func(t *testing.T) {
		var out bytes.Buffer
		e := newTestEditor(t, &out, newMockTerminal(Key{Kind: KeyEOF}))

		_, err := e.ReadLine(context.Background())
		assert.ErrorIs(t, err, ErrEOF)
	})

	t.Run("non-empty buffer rings the bell", func(t *testing.T) {
		var out bytes.Buffer
		keys := append(typed("ab"), Key{Kind: KeyEOF}, enter())
		e := newTestEditor(t, &out, newMockTerminal(keys...))

		line, err := e.ReadLine(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ab", line)
		assert.Contains(t, out.String(), "\a")
	})
}

func TestReadLineSourceExhausted(t *testing.T) {
	var out bytes.Buffer
	e := newTestEditor(t, &out, newMockTerminal())

	_, err := e.ReadLine(context.Background())
	assert.ErrorIs(t, err, ErrEOF)
}

func TestReadLineContextCanceled(t *testing.T) {
	var out bytes.Buffer
	e := newTestEditor(t, &out, newMockTerminal(typed("unread")...))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.ReadLine(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
