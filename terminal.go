package console

import (
	"errors"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// terminalInterface abstracts the key-event source and raw-mode handling for
// testability and cross-platform compatibility.
//
// Implementations:
//   - realTerminal: uses go-tty for actual terminal interaction
//   - mockTerminal: scripted key events for testing
type terminalInterface interface {
	KeyReader
	SetRaw() error                        // Enter raw mode for immediate key processing
	Restore() error                       // Restore original terminal settings
	Size() (width, height int, err error) // Get terminal dimensions with safe fallbacks
	Close() error                         // Clean up resources and prevent fd leaks
}

// runeSource is the raw character stream keys are decoded from. Both the
// real tty and the test fixtures satisfy it, so decoding itself needs no
// terminal.
type runeSource interface {
	ReadRune() (rune, error)
}

// decodeKey translates the next rune (or escape sequence) from src into an
// abstract key event. Printable characters pass through with their literal
// rune; control characters the editor does not handle come back as
// KeyUndefined rather than an error, so stray input never aborts a read.
func decodeKey(src runeSource) (Key, error) {
	r, err := src.ReadRune()
	if err != nil {
		return Key{}, err
	}

	switch {
	case r == '\r' || r == '\n':
		return Key{Kind: KeyEnter}, nil
	case r == '\x7f' || r == '\b':
		return Key{Kind: KeyBackspace}, nil
	case r == '\t':
		return Key{Kind: KeyTab}, nil
	case r == '\x03': // Ctrl+C
		return Key{Kind: KeyInterrupt}, nil
	case r == '\x04': // Ctrl+D
		return Key{Kind: KeyEOF}, nil
	case r == '\x1b':
		return decodeEscape(src)
	case r >= asciiPrintableMin:
		return Key{Kind: KeyPrintable, Ch: r}, nil
	default:
		return Key{Kind: KeyUndefined}, nil
	}
}

// decodeEscape reads the remainder of an escape sequence and maps the
// arrow and delete keys. Complete but unhandled sequences (Home, End,
// function keys) come back as KeyUndefined.
func decodeEscape(src runeSource) (Key, error) {
	seq := make([]rune, 0, 8)
	for i := 0; i < 8; i++ { // Limit to prevent runaway sequences
		r, err := src.ReadRune()
		if err != nil {
			return Key{}, err
		}
		seq = append(seq, r)

		switch s := string(seq); s {
		case "[A":
			return Key{Kind: KeyUp}, nil
		case "[B":
			return Key{Kind: KeyDown}, nil
		case "[C":
			return Key{Kind: KeyRight}, nil
		case "[D":
			return Key{Kind: KeyLeft}, nil
		case "[3~":
			return Key{Kind: KeyDelete}, nil
		case "[H", "[F":
			return Key{Kind: KeyUndefined}, nil
		default:
			if strings.HasSuffix(s, "~") && len(s) >= 3 {
				return Key{Kind: KeyUndefined}, nil
			}
			if len(seq) >= 3 && (seq[len(seq)-1] < '0' || seq[len(seq)-1] > '9') {
				return Key{Kind: KeyUndefined}, nil
			}
		}
	}
	return Key{Kind: KeyUndefined}, nil
}

// realTerminal implements terminalInterface on the controlling terminal.
//
// It layers go-tty for cross-platform rune input with golang.org/x/term for
// raw-mode state management, so the original terminal settings are restored
// even after repeated raw-mode round trips. The 'closed' flag prevents the
// double-close panic go-tty exhibits on Windows, and Size falls back to
// 80x24 when detection fails.
type realTerminal struct {
	tty           *tty.TTY
	closed        bool
	stdinFd       int
	originalState *term.State
}

// newRealTerminal opens the controlling terminal. It fails when stdin is
// not a terminal, since character-at-a-time input needs one.
func newRealTerminal() (*realTerminal, error) {
	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return nil, errors.New("stdin is not a terminal")
	}

	t, err := tty.Open()
	if err != nil {
		return nil, err
	}

	return &realTerminal{
		tty:     t,
		stdinFd: int(fd),
	}, nil
}

func (t *realTerminal) ReadKey() (Key, error) {
	return decodeKey(t)
}

// ReadRune satisfies runeSource for decodeKey.
func (t *realTerminal) ReadRune() (rune, error) {
	return t.tty.ReadRune()
}

func (t *realTerminal) SetRaw() error {
	// Capture the current state before entering raw mode so restoration
	// works regardless of how many times raw mode is entered and exited.
	if term.IsTerminal(t.stdinFd) {
		state, err := term.GetState(t.stdinFd)
		if err != nil {
			return err
		}
		t.originalState = state

		if _, err := term.MakeRaw(t.stdinFd); err != nil {
			return err
		}
	}
	return nil
}

func (t *realTerminal) Restore() error {
	if t.originalState != nil && term.IsTerminal(t.stdinFd) {
		err := term.Restore(t.stdinFd, t.originalState)
		// Reset so that SetRaw captures a fresh baseline next time
		t.originalState = nil
		return err
	}
	return nil
}

func (t *realTerminal) Size() (width, height int, err error) {
	w, h, err := t.tty.Size()
	if err != nil || w <= 0 || h <= 0 {
		// Safe fallback to prevent divide by zero in column layout
		return 80, 24, err
	}
	return w, h, nil
}

func (t *realTerminal) Close() error {
	// Prevent double-close which causes panic on Windows
	if t.closed {
		return nil
	}
	if t.tty != nil {
		err := t.tty.Close()
		t.closed = true
		return err
	}
	return nil
}
