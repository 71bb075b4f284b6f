package console

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// editor turns a sequence of abstract key events into one finished line per
// ReadLine call. It owns the line buffer and drives the history navigator
// and the completion trie; every operation writes its redraw to out as a
// side effect. The editor is single-threaded: it blocks on the key source
// and processes one event to completion before requesting the next.
type editor struct {
	keys    KeyReader
	buffer  *LineBuffer
	history *History
	trie    *Trie
	out     io.Writer
	scheme  *ColorScheme
	prefix  string
	width   func() int // terminal columns, for the completion listing
}

// ReadLine reads key events until enter is seen and returns the finished
// line. Boundary conditions are signaled with the bell and editing
// continues; a decode failure from the key source aborts the read with
// ErrInputDecode. Ctrl+C returns ErrInterrupted and Ctrl+D on an empty
// line returns ErrEOF. The context is checked between key events.
func (e *editor) ReadLine(ctx context.Context) (string, error) {
	e.buffer.Reset()
	tabArmed := false

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		key, err := e.keys.ReadKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", ErrEOF
			}
			return "", fmt.Errorf("%w: %v", ErrInputDecode, err)
		}

		// Any non-tab event breaks a pending double-tab gesture.
		if key.Kind != KeyTab {
			tabArmed = false
		}

		switch key.Kind {
		case KeyPrintable:
			e.buffer.InsertChar(key.Ch)

		case KeyBackspace:
			e.buffer.DeleteBeforeCursor()

		case KeyDelete:
			e.buffer.DeleteAtCursor()

		case KeyLeft:
			e.buffer.MoveLeft()

		case KeyRight:
			e.buffer.MoveRight()

		case KeyUp:
			if line, ok := e.history.Previous(e.buffer.String()); ok {
				e.buffer.ReplaceLine(line)
			} else {
				e.buffer.Bell()
			}

		case KeyDown:
			if line, ok := e.history.Next(); ok {
				e.buffer.ReplaceLine(line)
			} else {
				e.buffer.Bell()
			}

		case KeyTab:
			if tabArmed {
				tabArmed = false
				if err := e.listCompletions(); err != nil {
					return "", err
				}
			} else {
				armed, err := e.completeLine()
				if err != nil {
					return "", err
				}
				tabArmed = armed
			}

		case KeyEnter:
			fmt.Fprint(e.out, "\r\n")
			return e.buffer.String(), nil

		case KeyInterrupt:
			fmt.Fprint(e.out, "^C\r\n")
			return "", ErrInterrupted

		case KeyEOF:
			if e.buffer.Len() == 0 {
				return "", ErrEOF
			}
			e.buffer.Bell()

		case KeyError:
			return "", fmt.Errorf("%w: key source reported a failure", ErrInputDecode)

		default:
			// KeyUndefined and anything unmapped is ignored.
		}
	}
}

// completeLine extends the current line to its longest unambiguous
// continuation. When no extension is possible it rings the bell and reports
// true, arming the double-tab listing for the next consecutive tab.
func (e *editor) completeLine() (bool, error) {
	line := e.buffer.String()
	n, extended, _, err := e.trie.Find(line, false)
	if err != nil {
		return false, err
	}
	if n > 0 && extended != line {
		e.buffer.ReplaceLine(extended)
		return false, nil
	}
	e.buffer.Bell()
	return true, nil
}

// listCompletions prints every completion of the current line, or a notice
// when there are none, then redisplays the prompt and line.
func (e *editor) listCompletions() error {
	n, _, matches, err := e.trie.Find(e.buffer.String(), true)
	if err != nil {
		return err
	}
	fmt.Fprint(e.out, "\r\n")
	if n == 0 || len(matches) == 0 {
		writeNotice(e.out, e.scheme, "no matches")
	} else {
		writeColumns(e.out, e.scheme, matches, e.width())
	}
	writeLine(e.out, e.scheme, e.prefix, e.buffer)
	return nil
}
