package store

import (
	"context"
	"errors"
	"strings"
)

const (
	RepositoryBackendFile  = "file"
	RepositoryBackendBbolt = "bbolt"
)

type Repository interface {
	Journal() JournalStore
	AppState() AppStateStore
	Backend() string
	Close() error
}

type RepositoryPaths struct {
	JournalPath  string
	AppStatePath string
	DBPath       string
}

type fileRepository struct {
	journal  JournalStore
	appState AppStateStore
}

func NewFileRepository(paths RepositoryPaths) Repository {
	return &fileRepository{
		journal:  NewFileJournalStore(paths.JournalPath),
		appState: NewFileAppStateStore(paths.AppStatePath),
	}
}

func (r *fileRepository) Journal() JournalStore {
	return r.journal
}

func (r *fileRepository) AppState() AppStateStore {
	return r.appState
}

func (r *fileRepository) Backend() string {
	return RepositoryBackendFile
}

func (r *fileRepository) Close() error {
	return nil
}

func OpenRepository(paths RepositoryPaths, backend string) (Repository, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", RepositoryBackendBbolt:
		if strings.TrimSpace(paths.DBPath) == "" {
			return nil, errors.New("db path is required for bbolt repository")
		}
		return NewBboltRepository(paths.DBPath)
	case RepositoryBackendFile:
		if strings.TrimSpace(paths.JournalPath) == "" {
			return nil, errors.New("journal path is required for file repository")
		}
		return NewFileRepository(paths), nil
	default:
		return nil, errors.New("unsupported repository backend: " + backend)
	}
}

// SeedRepositoryFromFiles copies file-backed journal entries and dashboard
// state into dst when dst has none of its own.
func SeedRepositoryFromFiles(ctx context.Context, dst Repository, paths RepositoryPaths) error {
	if dst == nil || dst.Backend() == RepositoryBackendFile {
		return nil
	}
	src := NewFileRepository(paths)
	defer src.Close()

	if err := seedAppState(ctx, dst.AppState(), src.AppState()); err != nil {
		return err
	}
	return seedJournal(ctx, dst.Journal(), src.Journal())
}

func seedAppState(ctx context.Context, dst AppStateStore, src AppStateStore) error {
	if dst == nil || src == nil {
		return nil
	}
	current, err := dst.Load(ctx)
	if err != nil {
		return err
	}
	if !isZeroAppState(current) {
		return nil
	}
	legacy, err := src.Load(ctx)
	if err != nil {
		return err
	}
	if isZeroAppState(legacy) {
		return nil
	}
	return dst.Save(ctx, legacy)
}

func seedJournal(ctx context.Context, dst JournalStore, src JournalStore) error {
	if dst == nil || src == nil {
		return nil
	}
	current, err := dst.List(ctx)
	if err != nil {
		return err
	}
	if len(current) > 0 {
		return nil
	}
	legacy, err := src.List(ctx)
	if err != nil {
		return err
	}
	for _, entry := range legacy {
		if _, err := dst.Add(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}
