package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryRecordDedup(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		entries []string
	}{
		{
			name:    "consecutive duplicate is skipped",
			lines:   []string{"a", "a"},
			entries: []string{"a"},
		},
		{
			name:    "non-consecutive duplicate is kept",
			lines:   []string{"a", "b", "a"},
			entries: []string{"a", "b", "a"},
		},
		{
			name:    "empty lines are never recorded",
			lines:   []string{"", "a", ""},
			entries: []string{"a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHistory(0)
			for _, line := range tt.lines {
				h.Record(line)
			}
			assert.Equal(t, tt.entries, h.Entries())
			assert.Equal(t, len(tt.entries), h.Len())
		})
	}
}

func TestHistoryBrowse(t *testing.T) {
	h := NewHistory(0)
	h.Record("first")
	h.Record("second")

	// Walking back snapshots the in-progress line as the draft.
	line, ok := h.Previous("draft")
	assert.True(t, ok)
	assert.Equal(t, "second", line)

	line, ok = h.Previous(line)
	assert.True(t, ok)
	assert.Equal(t, "first", line)

	// At the oldest entry the boundary is signaled and the line unchanged.
	line, ok = h.Previous(line)
	assert.False(t, ok)
	assert.Equal(t, "first", line)

	// Walking forward returns to the draft.
	line, ok = h.Next()
	assert.True(t, ok)
	assert.Equal(t, "second", line)

	line, ok = h.Next()
	assert.True(t, ok)
	assert.Equal(t, "draft", line)

	// Already at the live line.
	_, ok = h.Next()
	assert.False(t, ok)
}

func TestHistoryBrowseEmpty(t *testing.T) {
	h := NewHistory(0)

	line, ok := h.Previous("typing")
	assert.False(t, ok)
	assert.Equal(t, "typing", line)

	line, ok = h.Next()
	assert.False(t, ok)
	assert.Equal(t, "typing", line, "draft snapshot survives the failed recall")
}

func TestHistoryRecordResetsBrowse(t *testing.T) {
	h := NewHistory(0)
	h.Record("a")
	h.Record("b")

	_, ok := h.Previous("wip")
	assert.True(t, ok)

	// Recording while browsing snaps the position back to the live line.
	h.Record("c")
	line, ok := h.Previous("")
	assert.True(t, ok)
	assert.Equal(t, "c", line)
}

func TestHistoryMaxEntries(t *testing.T) {
	h := NewHistory(3)
	for _, line := range []string{"a", "b", "c", "d", "e"} {
		h.Record(line)
	}

	assert.Equal(t, []string{"c", "d", "e"}, h.Entries())
}

func TestHistoryEntriesIsCopy(t *testing.T) {
	h := NewHistory(0)
	h.Record("a")

	entries := h.Entries()
	entries[0] = "mutated"

	assert.Equal(t, []string{"a"}, h.Entries())
}
