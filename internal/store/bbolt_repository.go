package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rotisserie/eris"
	bolt "go.etcd.io/bbolt"

	"daybook/internal/types"
)

var (
	bucketAppState = []byte("app_state")
	bucketJournal  = []byte("journal")
	keyAppState    = []byte("state")
)

type bboltRepository struct {
	db       *bolt.DB
	journal  JournalStore
	appState AppStateStore
}

func NewBboltRepository(path string) (Repository, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("repository db path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, eris.Wrapf(err, "open %s", path)
	}
	if err := initBboltSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &bboltRepository{
		db:       db,
		journal:  &bboltJournalStore{db: db, now: time.Now},
		appState: &bboltAppStateStore{db: db},
	}, nil
}

func (r *bboltRepository) Journal() JournalStore {
	return r.journal
}

func (r *bboltRepository) AppState() AppStateStore {
	return r.appState
}

func (r *bboltRepository) Backend() string {
	return RepositoryBackendBbolt
}

func (r *bboltRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func initBboltSchema(db *bolt.DB) error {
	return db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketAppState); err != nil {
			return err
		}
		if _, err := tx.CreateBucketIfNotExists(bucketJournal); err != nil {
			return err
		}
		return nil
	})
}

type bboltJournalStore struct {
	db  *bolt.DB
	mu  sync.Mutex
	now func() time.Time
}

func (s *bboltJournalStore) List(ctx context.Context) ([]*types.JournalEntry, error) {
	out := make([]*types.JournalEntry, 0)
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketJournal)
		if b == nil {
			return nil
		}
		return b.ForEach(func(_, v []byte) error {
			var entry types.JournalEntry
			if err := json.Unmarshal(v, &entry); err != nil {
				return err
			}
			out = append(out, cloneEntry(&entry))
			return nil
		})
	})
	if err != nil {
		return nil, eris.Wrap(err, "list journal")
	}
	sortNewestFirst(out)
	return out, nil
}

func (s *bboltJournalStore) Get(ctx context.Context, key string) (*types.JournalEntry, bool, error) {
	var (
		entry *types.JournalEntry
		ok    bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketJournal)
		if b == nil {
			return nil
		}
		raw := b.Get([]byte(key))
		if len(raw) == 0 {
			return nil
		}
		var item types.JournalEntry
		if err := json.Unmarshal(raw, &item); err != nil {
			return err
		}
		entry = cloneEntry(&item)
		ok = true
		return nil
	})
	if err != nil {
		return nil, false, eris.Wrapf(err, "get journal entry %q", key)
	}
	return entry, ok, nil
}

func (s *bboltJournalStore) Add(ctx context.Context, entry *types.JournalEntry) (*types.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var normalized *types.JournalEntry
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketJournal)
		if b == nil {
			return errors.New("journal bucket missing")
		}
		var err error
		normalized, err = normalizeEntry(entry, s.now(), func(key string) bool {
			return b.Get([]byte(key)) != nil
		})
		if err != nil {
			return err
		}
		raw, err := json.Marshal(normalized)
		if err != nil {
			return err
		}
		return b.Put([]byte(normalized.Key), raw)
	})
	if err != nil {
		return nil, eris.Wrap(err, "add journal entry")
	}
	return cloneEntry(normalized), nil
}

func (s *bboltJournalStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketJournal)
		if b == nil {
			return errors.New("journal bucket missing")
		}
		if b.Get([]byte(key)) == nil {
			return eris.Wrapf(ErrEntryNotFound, "delete %q", key)
		}
		return b.Delete([]byte(key))
	})
}

type bboltAppStateStore struct {
	db *bolt.DB
}

func (s *bboltAppStateStore) Load(ctx context.Context) (*types.AppState, error) {
	state := &types.AppState{}
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketAppState)
		if b == nil {
			return nil
		}
		raw := b.Get(keyAppState)
		if len(raw) == 0 {
			return nil
		}
		return json.Unmarshal(raw, state)
	})
	if err != nil {
		return nil, eris.Wrap(err, "load app state")
	}
	return state, nil
}

func (s *bboltAppStateStore) Save(ctx context.Context, state *types.AppState) error {
	if state == nil {
		return errors.New("state is required")
	}
	normalized := normalizeAppState(*state)
	raw, err := json.Marshal(&normalized)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketAppState)
		if b == nil {
			return errors.New("app state bucket missing")
		}
		return b.Put(keyAppState, raw)
	})
}
