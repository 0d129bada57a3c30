package models

// History is the full in-memory state for the active user: the identity plus
// the ordered entry collections. Collections are kept newest-first for
// display; anything that needs chronology (streaks, trends) must re-derive it
// from timestamps, never from slice position.
type History struct {
	User     *User          `json:"user,omitempty"`
	Moods    []MoodEntry    `json:"moods"`
	Journals []JournalEntry `json:"journals"`
}

// TotalEntries is the combined size of both collections.
func (h *History) TotalEntries() int {
	return len(h.Moods) + len(h.Journals)
}

// Clone returns a snapshot copy of the history. The entry structs are value
// copies, so callers can hand the clone to aggregation code without racing
// later mutations.
func (h *History) Clone() History {
	out := History{
		Moods:    make([]MoodEntry, len(h.Moods)),
		Journals: make([]JournalEntry, len(h.Journals)),
	}
	copy(out.Moods, h.Moods)
	copy(out.Journals, h.Journals)
	if h.User != nil {
		u := *h.User
		out.User = &u
	}
	return out
}
