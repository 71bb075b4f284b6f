package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAlphabetEmpty(t *testing.T) {
	tests := []struct {
		name  string
		valid string
	}{
		{name: "empty string", valid: ""},
		{name: "only control characters", valid: "\x01\x02\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAlphabet(tt.valid)
			assert.Nil(t, a)
			assert.ErrorIs(t, err, ErrEmptyAlphabet)
		})
	}
}

func TestAlphabetClosure(t *testing.T) {
	const valid = "abcdefghijklmnopqrstuvwxyz"

	a, err := NewAlphabet(valid)
	require.NoError(t, err)
	require.Equal(t, len(valid), a.Size())

	// Slot is invalid exactly for the characters outside the alphabet, and
	// Char inverts Slot for every member.
	member := make(map[byte]bool, len(valid))
	for i := 0; i < len(valid); i++ {
		member[valid[i]] = true
	}
	for c := 0; c < 256; c++ {
		slot := a.Slot(byte(c))
		if member[byte(c)] {
			assert.NotEqual(t, slotInvalid, slot, "character %q should have a slot", byte(c))
			assert.Equal(t, byte(c), a.Char(slot), "Char should invert Slot for %q", byte(c))
		} else {
			assert.Equal(t, slotInvalid, slot, "character %q should be invalid", byte(c))
		}
	}
}

func TestAlphabetSlotOrder(t *testing.T) {
	// Slots ascend in ASCII order regardless of the order of the supplied
	// string.
	a, err := NewAlphabet("zya")
	require.NoError(t, err)

	assert.Equal(t, 0, a.Slot('a'))
	assert.Equal(t, 1, a.Slot('y'))
	assert.Equal(t, 2, a.Slot('z'))
	assert.Equal(t, 3, a.Size())
}

func TestAlphabetDuplicatesCollapsed(t *testing.T) {
	a, err := NewAlphabet("aabba")
	require.NoError(t, err)

	assert.Equal(t, 2, a.Size())
	assert.Equal(t, 0, a.Slot('a'))
	assert.Equal(t, 1, a.Slot('b'))
}

func TestAlphabetSlotNeverPanics(t *testing.T) {
	a, err := NewAlphabet("abc")
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		for c := 0; c < 256; c++ {
			_ = a.Slot(byte(c))
		}
	})
	assert.Equal(t, slotInvalid, a.Slot(0xff))
	assert.Equal(t, slotInvalid, a.Slot(127)) // DEL is outside the printable range
}
