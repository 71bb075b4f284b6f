package console

import "strings"

// ASCII printable range indexed by an Alphabet. Values outside it never get
// a slot.
const (
	asciiPrintableMin = 32
	asciiPrintableMax = 126
)

// slotInvalid is returned by Alphabet.Slot for characters outside the alphabet.
const slotInvalid = -1

// Alphabet maps each allowed character to a dense small-integer slot and
// back. Slots index the child arrays of trie nodes, so the mapping is built
// once and never changes. Characters are assigned increasing slots in
// ascending ASCII order over the printable range, regardless of their order
// in the string the alphabet was built from.
type Alphabet struct {
	slots [asciiPrintableMax + 1]int
	chars []byte
}

// NewAlphabet builds an alphabet from the set of characters in valid.
// Duplicate characters are collapsed. It returns ErrEmptyAlphabet if valid
// contains no printable ASCII characters.
func NewAlphabet(valid string) (*Alphabet, error) {
	a := &Alphabet{}
	for i := range a.slots {
		a.slots[i] = slotInvalid
	}
	for c := byte(asciiPrintableMin); c <= asciiPrintableMax; c++ {
		if strings.IndexByte(valid, c) >= 0 {
			a.slots[c] = len(a.chars)
			a.chars = append(a.chars, c)
		}
	}
	if len(a.chars) == 0 {
		return nil, ErrEmptyAlphabet
	}
	return a, nil
}

// Slot returns the child-array slot for c, or -1 if c is not part of the
// alphabet. It never panics, whatever byte it is given.
func (a *Alphabet) Slot(c byte) int {
	if c > asciiPrintableMax {
		return slotInvalid
	}
	return a.slots[c]
}

// Char returns the character assigned to slot. It is the exact inverse of
// Slot over valid characters and is used for diagnostics and printing.
func (a *Alphabet) Char(slot int) byte {
	return a.chars[slot]
}

// Size returns the number of characters in the alphabet, which is also the
// length of every trie node's child array.
func (a *Alphabet) Size() int {
	return len(a.chars)
}
