package types

import "time"

type EntrySource string

const (
	EntrySourceJournal EntrySource = "journal"
	EntrySourceIntent  EntrySource = "intent"
	EntrySourceMind    EntrySource = "mind"
)

// EntryKeyLayout is a fixed-width RFC3339 layout so keys sort in time order.
const EntryKeyLayout = "2006-01-02T15:04:05.000000000Z"

// JournalEntry is a single journal line. Key is the UTC timestamp the entry
// was written at and identifies it for deletion.
type JournalEntry struct {
	Key       string      `json:"key"`
	Text      string      `json:"text"`
	From      EntrySource `json:"from"`
	CreatedAt time.Time   `json:"created_at"`
}

// EntryKey formats t as a journal entry key.
func EntryKey(t time.Time) string {
	return t.UTC().Format(EntryKeyLayout)
}
