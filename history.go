package console

// defaultMaxHistory bounds the in-memory history when no limit is configured.
const defaultMaxHistory = 1000

// History is an append-only log of submitted lines with a browse cursor.
// A position equal to the number of entries means "not browsing, live line
// in effect"; the draft slot preserves the in-progress line from the moment
// browsing starts so walking forward past the newest entry restores it.
//
// History is memory-only. It is not persisted across process runs.
type History struct {
	entries []string
	pos     int
	draft   string
	max     int
}

// NewHistory creates an empty history keeping at most maxEntries lines.
// Non-positive values select the default limit of 1000.
func NewHistory(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = defaultMaxHistory
	}
	return &History{max: maxEntries}
}

// Record appends line to the history. Empty lines and consecutive
// duplicates are skipped; either way the browse position is reset to the
// live line and the draft discarded. The oldest entries are dropped when
// the configured limit is exceeded.
func (h *History) Record(line string) {
	if line != "" && (len(h.entries) == 0 || h.entries[len(h.entries)-1] != line) {
		h.entries = append(h.entries, line)
		if len(h.entries) > h.max {
			h.entries = h.entries[len(h.entries)-h.max:]
		}
	}
	h.pos = len(h.entries)
	h.draft = ""
}

// Previous steps one entry back in the history and returns it. On the first
// call since live editing it snapshots current into the draft slot. At the
// oldest entry it reports false and returns current unchanged.
func (h *History) Previous(current string) (string, bool) {
	if h.pos == len(h.entries) {
		h.draft = current
	}
	if h.pos == 0 {
		return current, false
	}
	h.pos--
	return h.entries[h.pos], true
}

// Next steps one entry forward. Stepping past the newest entry returns the
// draft saved when browsing began. At the live position it reports false.
func (h *History) Next() (string, bool) {
	if h.pos == len(h.entries) {
		return h.draft, false
	}
	h.pos++
	if h.pos == len(h.entries) {
		return h.draft, true
	}
	return h.entries[h.pos], true
}

// Entries returns a copy of the recorded lines, oldest first.
func (h *History) Entries() []string {
	return append([]string{}, h.entries...)
}

// Len returns the number of recorded lines.
func (h *History) Len() int {
	return len(h.entries)
}
