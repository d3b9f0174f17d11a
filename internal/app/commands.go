package app

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"daybook/internal/types"
)

const storeTimeout = 4 * time.Second

func fetchJournalCmd(api JournalAPI) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		entries, err := api.List(ctx)
		return journalEntriesMsg{entries: entries, err: err}
	}
}

func addJournalEntryCmd(api JournalAPI, entry *types.JournalEntry) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		saved, err := api.Add(ctx, entry)
		return journalEntryAddedMsg{entry: saved, err: err}
	}
}

func fetchAppStateCmd(api StateAPI) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		state, err := api.Load(ctx)
		return appStateMsg{state: state, err: err}
	}
}

func saveAppStateCmd(api StateAPI, state types.AppState) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		err := api.Save(ctx, &state)
		return appStateSavedMsg{state: &state, err: err}
	}
}
