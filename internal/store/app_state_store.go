package store

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/rotisserie/eris"

	"daybook/internal/types"
)

type AppStateStore interface {
	Load(ctx context.Context) (*types.AppState, error)
	Save(ctx context.Context, state *types.AppState) error
}

// FileAppStateStore keeps the dashboard header state in a single JSON file.
type FileAppStateStore struct {
	path string
	mu   sync.Mutex
}

func NewFileAppStateStore(path string) *FileAppStateStore {
	return &FileAppStateStore{path: path}
}

func (s *FileAppStateStore) Load(ctx context.Context) (*types.AppState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	state := &types.AppState{}
	if err := readJSON(s.path, state); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return state, nil
		}
		return nil, eris.Wrapf(err, "read app state %s", s.path)
	}
	return state, nil
}

func (s *FileAppStateStore) Save(ctx context.Context, state *types.AppState) error {
	if state == nil {
		return errors.New("state is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized := normalizeAppState(*state)
	if err := writeJSONAtomic(s.path, &normalized); err != nil {
		return eris.Wrapf(err, "write app state %s", s.path)
	}
	return nil
}

// normalizeAppState trims the intention and drops its date once the text is
// cleared, so an emptied intention never carries a stale day.
func normalizeAppState(state types.AppState) types.AppState {
	state.Intention = strings.TrimSpace(state.Intention)
	if state.Intention == "" {
		state.IntentionDate = ""
	}
	return state
}

func isZeroAppState(state *types.AppState) bool {
	if state == nil {
		return true
	}
	return state.Intention == "" && state.IntentionDate == "" && !state.Prayed && state.PrayedAt.IsZero()
}
