package app

import (
	"context"

	"daybook/internal/types"
)

// JournalAPI is the journal persistence the dashboard needs.
type JournalAPI interface {
	List(ctx context.Context) ([]*types.JournalEntry, error)
	Add(ctx context.Context, entry *types.JournalEntry) (*types.JournalEntry, error)
	Delete(ctx context.Context, key string) error
}

type StateAPI interface {
	Load(ctx context.Context) (*types.AppState, error)
	Save(ctx context.Context, state *types.AppState) error
}
