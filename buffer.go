package console

import (
	"fmt"
	"io"
	"strings"
)

// LineBuffer is an editable sequence of characters with an insertion point.
// Every mutation writes the minimal redraw to the attached output so the
// displayed line stays consistent with the buffer: tail re-echo plus
// backspace repositioning for mid-line edits, a trailing space to erase the
// character freed by a delete, and pad-and-erase when a replacement line is
// shorter than the old one.
//
// Boundary conditions (cursor at line start or end, empty buffer) are not
// errors. The mutation reports false, rings the terminal bell, and leaves
// the buffer unchanged.
type LineBuffer struct {
	out    io.Writer
	text   []rune
	cursor int
}

// NewLineBuffer creates an empty buffer whose redraws are written to out.
func NewLineBuffer(out io.Writer) *LineBuffer {
	return &LineBuffer{out: out}
}

// String returns the buffer contents.
func (b *LineBuffer) String() string {
	return string(b.text)
}

// Cursor returns the insertion point, in [0, Len()].
func (b *LineBuffer) Cursor() int {
	return b.cursor
}

// Len returns the number of characters in the buffer.
func (b *LineBuffer) Len() int {
	return len(b.text)
}

// Reset clears the buffer without touching the display. Call it before the
// prompt for a fresh line is shown.
func (b *LineBuffer) Reset() {
	b.text = b.text[:0]
	b.cursor = 0
}

// InsertChar inserts c at the cursor and advances the cursor by one. When
// the cursor is mid-line the tail is re-echoed and the terminal cursor
// moved back over it.
func (b *LineBuffer) InsertChar(c rune) {
	fmt.Fprint(b.out, string(c))
	if b.cursor == len(b.text) {
		b.text = append(b.text, c)
	} else {
		tail := len(b.text) - b.cursor
		fmt.Fprint(b.out, string(b.text[b.cursor:]))
		b.text = append(b.text[:b.cursor], append([]rune{c}, b.text[b.cursor:]...)...)
		b.backspaces(tail)
	}
	b.cursor++
}

// DeleteBeforeCursor removes the character immediately before the cursor
// and decrements the cursor. At the line start it rings the bell and
// reports false.
func (b *LineBuffer) DeleteBeforeCursor() bool {
	if b.cursor == 0 || len(b.text) == 0 {
		b.Bell()
		return false
	}
	if b.cursor != len(b.text) {
		// Step back, re-echo the tail over the removed character, blank the
		// now-excess last column, and reposition.
		tail := len(b.text) - b.cursor
		fmt.Fprint(b.out, "\b"+string(b.text[b.cursor:])+" ")
		b.text = append(b.text[:b.cursor-1], b.text[b.cursor:]...)
		b.backspaces(tail + 1)
	} else {
		fmt.Fprint(b.out, "\b \b")
		b.text = b.text[:len(b.text)-1]
	}
	b.cursor--
	return true
}

// DeleteAtCursor removes the character at the cursor; the text shifts left
// under an unchanged cursor. At the line end it rings the bell and reports
// false.
func (b *LineBuffer) DeleteAtCursor() bool {
	if b.cursor == len(b.text) {
		b.Bell()
		return false
	}
	b.text = append(b.text[:b.cursor], b.text[b.cursor+1:]...)
	tail := len(b.text) - b.cursor
	fmt.Fprint(b.out, string(b.text[b.cursor:])+" ")
	b.backspaces(tail + 1)
	return true
}

// MoveLeft moves the cursor one position left, or rings the bell at the
// line start.
func (b *LineBuffer) MoveLeft() bool {
	if b.cursor == 0 {
		b.Bell()
		return false
	}
	fmt.Fprint(b.out, "\b")
	b.cursor--
	return true
}

// MoveRight moves the cursor one position right by re-echoing the character
// under it, or rings the bell at the line end.
func (b *LineBuffer) MoveRight() bool {
	if b.cursor == len(b.text) {
		b.Bell()
		return false
	}
	fmt.Fprint(b.out, string(b.text[b.cursor]))
	b.cursor++
	return true
}

// ReplaceLine overwrites the whole displayed line with text and moves the
// cursor to its end. Used by history recall and tab completion. When the
// new line is shorter, the excess columns are padded with spaces and the
// cursor backed over them.
func (b *LineBuffer) ReplaceLine(text string) {
	b.backspaces(b.cursor)
	fmt.Fprint(b.out, text)
	if diff := len(b.text) - len([]rune(text)); diff > 0 {
		fmt.Fprint(b.out, strings.Repeat(" ", diff))
		b.backspaces(diff)
	}
	b.text = []rune(text)
	b.cursor = len(b.text)
}

// Bell signals an invalid operation with an audible alert.
func (b *LineBuffer) Bell() {
	fmt.Fprint(b.out, "\a")
}

func (b *LineBuffer) backspaces(n int) {
	if n > 0 {
		fmt.Fprint(b.out, strings.Repeat("\b", n))
	}
}
