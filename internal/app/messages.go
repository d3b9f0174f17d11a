package app

import "daybook/internal/types"

type journalEntriesMsg struct {
	entries []*types.JournalEntry
	err     error
}

type journalEntryAddedMsg struct {
	entry *types.JournalEntry
	err   error
}

type appStateMsg struct {
	state *types.AppState
	err   error
}

type appStateSavedMsg struct {
	state *types.AppState
	err   error
}
