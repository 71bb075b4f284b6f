package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// writePrefix draws the colored prompt prefix.
func writePrefix(w io.Writer, scheme *ColorScheme, prefix string) {
	fmt.Fprint(w, scheme.Prefix.ToANSI(), prefix, Reset())
}

// writeLine redraws the prompt prefix and the current line, leaving the
// terminal cursor at the recorded insertion point. Used after the
// completion listing has scrolled the line away.
func writeLine(w io.Writer, scheme *ColorScheme, prefix string, buf *LineBuffer) {
	writePrefix(w, scheme, prefix)
	fmt.Fprint(w, buf.String())
	if back := buf.Len() - buf.Cursor(); back > 0 {
		fmt.Fprint(w, strings.Repeat("\b", back))
	}
}

// writeColumns lays the matches out in columns sized to the widest entry,
// packed to fit the given terminal width. Matches arrive in alphabet order
// and are printed row by row.
func writeColumns(w io.Writer, scheme *ColorScheme, matches []string, width int) {
	colWidth := 0
	for _, m := range matches {
		if mw := runewidth.StringWidth(m); mw > colWidth {
			colWidth = mw
		}
	}
	colWidth += 2 // gutter

	cols := width / colWidth
	if cols < 1 {
		cols = 1
	}

	for i, m := range matches {
		fmt.Fprint(w, scheme.Match.ToANSI(), runewidth.FillRight(m, colWidth), Reset())
		if (i+1)%cols == 0 || i == len(matches)-1 {
			fmt.Fprint(w, "\r\n")
		}
	}
}

// writeNotice prints a dimmed informational message on its own line.
func writeNotice(w io.Writer, scheme *ColorScheme, msg string) {
	fmt.Fprint(w, scheme.Notice.ToANSI(), msg, Reset(), "\r\n")
}
