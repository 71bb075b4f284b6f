// Package console provides an interactive line-input engine for building
// command-line consoles in Go.
//
// The engine accepts abstract key events from a character-at-a-time
// terminal, maintains an editable input line with a movable cursor, offers
// command history recall on the arrow keys, and completes command prefixes
// through an in-memory trie. A small command-console assembly on top wires
// a command table into the editor and runs the read-dispatch loop.
//
// Quick Start:
//
//	package main
//
//	import (
//		"context"
//		"fmt"
//		"io"
//		"log"
//
//		"github.com/nao1215/console"
//	)
//
//	func main() {
//		c, err := console.New("$ ",
//			console.WithCommands(
//				console.Command{
//					Name:        "status",
//					Description: "show the current status",
//					Run: func(w io.Writer, line string) error {
//						fmt.Fprint(w, "all good\r\n")
//						return nil
//					},
//				},
//			),
//		)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer c.Close()
//
//		if err := c.Run(context.Background()); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// Completion:
//
// Pressing Tab extends the input line to its longest unambiguous
// continuation among the registered commands. When the line is ambiguous,
// the first Tab rings the bell and a second consecutive Tab lists every
// candidate in columns. A completion count of 1 from the underlying trie
// means the extension is a complete command and the final answer, even
// when longer commands extend past it.
//
// History:
//
// The up and down arrows walk previously submitted lines. The line being
// edited when browsing starts is preserved and restored when walking
// forward past the newest entry. Consecutive duplicates and empty lines
// are never recorded, and history is memory-only: it does not persist
// across process runs.
//
// Key Bindings:
//
// The bindings are fixed:
//
//   - Enter: submit the line
//   - Tab: complete; double-Tab lists candidates
//   - Backspace: delete the character before the cursor
//   - Delete: delete the character at the cursor
//   - Left/Right arrows: move the cursor
//   - Up/Down arrows: walk the history
//   - Ctrl+C: cancel, Run returns cleanly (ReadLine returns ErrInterrupted)
//   - Ctrl+D: EOF on an empty line (ReadLine returns ErrEOF)
//
// Boundary conditions — cursor at the line edge, history exhausted, no
// completion available — ring the terminal bell and editing continues;
// they are never errors.
//
// Error Handling:
//
// Errors are distinguished so callers can pattern-match recovery:
//
//   - console.ErrEmptyAlphabet: configuration error at construction
//   - console.InvalidCharError: a word outside the alphabet was inserted;
//     the trie is unchanged
//   - console.ErrCorruptTrie: a structural invariant was violated; a
//     programming defect, propagate it
//   - console.ErrInputDecode: the key source failed; the line read aborts
//   - console.ErrInterrupted, console.ErrEOF: user-initiated exits
//
// Thread Safety:
//
// A Console is single-threaded and synchronous: it blocks on its key
// source and processes one event at a time. Instances are not safe for
// concurrent use, and trie insertion must be serialized by the caller if
// it ever happens after setup.
package console
