package console

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrEOF is returned when the user presses Ctrl+D on an empty line or EOF is encountered
	ErrEOF = errors.New("EOF")
	// ErrInterrupted is returned when the user presses Ctrl+C
	ErrInterrupted = errors.New("interrupted")
	// ErrEmptyAlphabet is returned when an alphabet is built from an empty string
	// or a string with no printable ASCII characters. It is a configuration
	// error: nothing can be inserted into a trie with no valid characters.
	ErrEmptyAlphabet = errors.New("alphabet contains no valid characters")
	// ErrCorruptTrie is returned when a search reaches a non-terminal node with
	// no live children. Correct insertion never produces such a node, so this
	// signals a programming defect rather than a recoverable condition.
	ErrCorruptTrie = errors.New("corrupt trie: non-terminal node has no children")
	// ErrInputDecode is returned when the key-event source cannot decode its
	// input. The current line read is aborted and the error propagated.
	ErrInputDecode = errors.New("failed to decode key input")
)

// InvalidCharError reports a word rejected by the trie because one of its
// characters is outside the configured alphabet. The trie is left unchanged
// when this error is returned.
type InvalidCharError struct {
	Word string // the word that was rejected
	Char byte   // the first character with no alphabet slot
}

// Error implements the error interface.
func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("invalid character %q in word %q", e.Char, e.Word)
}
