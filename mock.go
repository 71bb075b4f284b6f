package console

import "io"

// mockTerminal implements terminalInterface with a scripted key sequence.
//
// It provides deterministic behavior for unit tests: a pre-configured event
// list, a fixed terminal size, and raw-mode tracking for verification, with
// no side effects. ReadKey returns io.EOF once the script is exhausted.
type mockTerminal struct {
	keys    []Key
	pos     int
	rawMode bool
	size    [2]int // [width, height]
}

func newMockTerminal(keys ...Key) *mockTerminal {
	return &mockTerminal{
		keys: keys,
		size: [2]int{80, 24},
	}
}

// newMockTerminalScript decodes a raw terminal byte stream (including
// escape sequences) into key events, driving the same decoder the real
// terminal uses.
func newMockTerminalScript(script string) *mockTerminal {
	src := &stringRuneSource{runes: []rune(script)}
	var keys []Key
	for {
		key, err := decodeKey(src)
		if err != nil {
			break
		}
		keys = append(keys, key)
	}
	return newMockTerminal(keys...)
}

func (m *mockTerminal) ReadKey() (Key, error) {
	if m.pos >= len(m.keys) {
		return Key{}, io.EOF
	}
	key := m.keys[m.pos]
	m.pos++
	return key, nil
}

func (m *mockTerminal) SetRaw() error {
	m.rawMode = true
	return nil
}

func (m *mockTerminal) Restore() error {
	m.rawMode = false
	return nil
}

func (m *mockTerminal) Size() (width, height int, err error) {
	return m.size[0], m.size[1], nil
}

func (m *mockTerminal) Close() error {
	return nil
}

// stringRuneSource feeds a fixed rune sequence to decodeKey in tests.
type stringRuneSource struct {
	runes []rune
	pos   int
}

func (s *stringRuneSource) ReadRune() (rune, error) {
	if s.pos >= len(s.runes) {
		return 0, io.EOF
	}
	r := s.runes[s.pos]
	s.pos++
	return r, nil
}
