package app

import (
	"context"

	"daybook/internal/logging"
	"daybook/internal/types"
)

// journalSource adapts the journal store to the list-mode delete contract,
// which reports success as a bool.
type journalSource struct {
	api    JournalAPI
	logger logging.Logger
}

func newJournalSource(api JournalAPI, logger logging.Logger) *journalSource {
	if logger == nil {
		logger = logging.Nop()
	}
	return &journalSource{api: api, logger: logger}
}

func (s *journalSource) DeleteEntry(key string) bool {
	if s == nil || s.api == nil || key == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := s.api.Delete(ctx, key); err != nil {
		s.logger.Warn("journal_delete_failed", logging.F("key", key), logging.F("error", err))
		return false
	}
	s.logger.Info("journal_entry_deleted", logging.F("key", key))
	return true
}

func entryRefs(entries []*types.JournalEntry) []EntryRef {
	refs := make([]EntryRef, 0, len(entries))
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		refs = append(refs, EntryRef{
			Key:  entry.Key,
			Text: entry.Text,
			Time: entry.CreatedAt,
			From: string(entry.From),
		})
	}
	return refs
}
