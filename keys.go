package console

// KeyKind categorizes an abstract key event. The line editor only ever sees
// these categories; decoding raw bytes or platform console events into them
// is the key-event source's job.
type KeyKind int

// Key event categories.
const (
	// KeyPrintable is a printable character; Key.Ch carries the literal rune.
	KeyPrintable KeyKind = iota
	// KeyEnter finishes the current line.
	KeyEnter
	// KeyBackspace deletes the character before the cursor.
	KeyBackspace
	// KeyDelete deletes the character at the cursor.
	KeyDelete
	// KeyTab requests completion; a second consecutive tab lists candidates.
	KeyTab
	// KeyLeft and KeyRight move the cursor.
	KeyLeft
	KeyRight
	// KeyUp and KeyDown walk the history.
	KeyUp
	KeyDown
	// KeyInterrupt is Ctrl+C; the editor returns ErrInterrupted.
	KeyInterrupt
	// KeyEOF is Ctrl+D; on an empty line the editor returns ErrEOF.
	KeyEOF
	// KeyUndefined is a key the editor does not handle. It is ignored.
	KeyUndefined
	// KeyError reports a decode failure in the key source. It aborts the
	// current line read with ErrInputDecode.
	KeyError
)

// Key is one abstract key event produced by a KeyReader.
type Key struct {
	Kind KeyKind
	Ch   rune // literal character for KeyPrintable, zero otherwise
}

// KeyReader produces a sequence of abstract key events. ReadKey blocks
// until a key is available. Implementations translate raw terminal input;
// the editor itself never touches raw bytes.
type KeyReader interface {
	ReadKey() (Key, error)
}
