package store

import (
	"context"
	"errors"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rotisserie/eris"

	"daybook/internal/types"
)

var ErrEntryNotFound = errors.New("journal entry not found")

const journalSchemaVersion = 1

type JournalStore interface {
	List(ctx context.Context) ([]*types.JournalEntry, error)
	Get(ctx context.Context, key string) (*types.JournalEntry, bool, error)
	Add(ctx context.Context, entry *types.JournalEntry) (*types.JournalEntry, error)
	Delete(ctx context.Context, key string) error
}

type FileJournalStore struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

type journalFile struct {
	Version int                   `json:"version"`
	Entries []*types.JournalEntry `json:"entries"`
}

func NewFileJournalStore(path string) *FileJournalStore {
	return &FileJournalStore{path: path, now: time.Now}
}

func (s *FileJournalStore) List(ctx context.Context) ([]*types.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]*types.JournalEntry, 0, len(file.Entries))
	for _, entry := range file.Entries {
		out = append(out, cloneEntry(entry))
	}
	sortNewestFirst(out)
	return out, nil
}

func (s *FileJournalStore) Get(ctx context.Context, key string) (*types.JournalEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return nil, false, err
	}
	for _, entry := range file.Entries {
		if entry.Key == key {
			return cloneEntry(entry), true, nil
		}
	}
	return nil, false, nil
}

func (s *FileJournalStore) Add(ctx context.Context, entry *types.JournalEntry) (*types.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return nil, err
	}
	taken := make(map[string]struct{}, len(file.Entries))
	for _, existing := range file.Entries {
		taken[existing.Key] = struct{}{}
	}
	normalized, err := normalizeEntry(entry, s.now(), func(key string) bool {
		_, ok := taken[key]
		return ok
	})
	if err != nil {
		return nil, err
	}
	file.Entries = append(file.Entries, normalized)
	if err := s.save(file); err != nil {
		return nil, err
	}
	return cloneEntry(normalized), nil
}

func (s *FileJournalStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return err
	}
	filtered := file.Entries[:0]
	found := false
	for _, entry := range file.Entries {
		if entry.Key == key {
			found = true
			continue
		}
		filtered = append(filtered, entry)
	}
	if !found {
		return eris.Wrapf(ErrEntryNotFound, "delete %q", key)
	}
	file.Entries = filtered
	return s.save(file)
}

func (s *FileJournalStore) load() (*journalFile, error) {
	file := newJournalFile()
	if err := readJSON(s.path, file); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return newJournalFile(), nil
		}
		return nil, eris.Wrapf(err, "read journal %s", s.path)
	}
	if file.Version == 0 {
		file.Version = journalSchemaVersion
	}
	if file.Entries == nil {
		file.Entries = []*types.JournalEntry{}
	}
	return file, nil
}

func (s *FileJournalStore) save(file *journalFile) error {
	file.Version = journalSchemaVersion
	if err := writeJSONAtomic(s.path, file); err != nil {
		return eris.Wrapf(err, "write journal %s", s.path)
	}
	return nil
}

func newJournalFile() *journalFile {
	return &journalFile{Version: journalSchemaVersion, Entries: []*types.JournalEntry{}}
}

// normalizeEntry trims the text, fills in the source and timestamps, and
// derives a key that taken does not report as used.
func normalizeEntry(entry *types.JournalEntry, now time.Time, taken func(string) bool) (*types.JournalEntry, error) {
	if entry == nil {
		return nil, errors.New("entry is required")
	}
	normalized := *entry
	normalized.Text = strings.TrimSpace(normalized.Text)
	if normalized.Text == "" {
		return nil, errors.New("entry text is required")
	}
	if normalized.From == "" {
		normalized.From = types.EntrySourceJournal
	}
	if normalized.CreatedAt.IsZero() {
		normalized.CreatedAt = now.UTC()
	}
	if strings.TrimSpace(normalized.Key) == "" {
		at := normalized.CreatedAt
		key := types.EntryKey(at)
		for taken != nil && taken(key) {
			at = at.Add(time.Nanosecond)
			key = types.EntryKey(at)
		}
		normalized.Key = key
	} else if taken != nil && taken(normalized.Key) {
		return nil, eris.Errorf("entry %q already exists", normalized.Key)
	}
	return &normalized, nil
}

func sortNewestFirst(entries []*types.JournalEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].Key > entries[j].Key
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
}

func cloneEntry(entry *types.JournalEntry) *types.JournalEntry {
	if entry == nil {
		return nil
	}
	copy := *entry
	return &copy
}
