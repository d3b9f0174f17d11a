package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"daybook/internal/types"
)

func TestBboltRepositoryCRUD(t *testing.T) {
	repo, err := NewBboltRepository(filepath.Join(t.TempDir(), "daybook.db"))
	if err != nil {
		t.Fatalf("NewBboltRepository: %v", err)
	}
	defer repo.Close()
	ctx := context.Background()

	if err := repo.AppState().Save(ctx, &types.AppState{Intention: "listen more"}); err != nil {
		t.Fatalf("save state: %v", err)
	}
	state, err := repo.AppState().Load(ctx)
	if err != nil {
		t.Fatalf("load state: %v", err)
	}
	if state.Intention != "listen more" {
		t.Fatalf("unexpected state: %#v", state)
	}

	created, err := repo.Journal().Add(ctx, &types.JournalEntry{Text: "walked", From: types.EntrySourceMind})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if created.Key == "" || created.CreatedAt.IsZero() {
		t.Fatalf("expected key and timestamp, got %#v", created)
	}
	got, ok, err := repo.Journal().Get(ctx, created.Key)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Text != "walked" || got.From != types.EntrySourceMind {
		t.Fatalf("unexpected entry: %#v", got)
	}
	entries, err := repo.Journal().List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if err := repo.Journal().Delete(ctx, created.Key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Journal().Delete(ctx, created.Key); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestOpenRepositoryBackends(t *testing.T) {
	dir := t.TempDir()
	paths := RepositoryPaths{
		JournalPath:  filepath.Join(dir, "journal.json"),
		AppStatePath: filepath.Join(dir, "state.json"),
		DBPath:       filepath.Join(dir, "daybook.db"),
	}
	fileRepo, err := OpenRepository(paths, "file")
	if err != nil {
		t.Fatalf("open file: %v", err)
	}
	if fileRepo.Backend() != RepositoryBackendFile {
		t.Fatalf("expected file backend, got %q", fileRepo.Backend())
	}
	boltRepo, err := OpenRepository(paths, "")
	if err != nil {
		t.Fatalf("open bbolt: %v", err)
	}
	defer boltRepo.Close()
	if boltRepo.Backend() != RepositoryBackendBbolt {
		t.Fatalf("expected bbolt backend, got %q", boltRepo.Backend())
	}
	if _, err := OpenRepository(paths, "sqlite"); err == nil {
		t.Fatalf("expected unsupported backend error")
	}
}

func TestSeedRepositoryFromFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	paths := RepositoryPaths{
		JournalPath:  filepath.Join(dir, "journal.json"),
		AppStatePath: filepath.Join(dir, "state.json"),
		DBPath:       filepath.Join(dir, "daybook.db"),
	}
	legacy := NewFileRepository(paths)
	if _, err := legacy.Journal().Add(ctx, &types.JournalEntry{Text: "from file"}); err != nil {
		t.Fatalf("seed add: %v", err)
	}
	if err := legacy.AppState().Save(ctx, &types.AppState{Prayed: true}); err != nil {
		t.Fatalf("seed state: %v", err)
	}

	repo, err := NewBboltRepository(paths.DBPath)
	if err != nil {
		t.Fatalf("NewBboltRepository: %v", err)
	}
	defer repo.Close()
	if err := SeedRepositoryFromFiles(ctx, repo, paths); err != nil {
		t.Fatalf("seed: %v", err)
	}
	entries, err := repo.Journal().List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 || entries[0].Text != "from file" {
		t.Fatalf("unexpected seeded entries: %#v", entries)
	}
	state, err := repo.AppState().Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !state.Prayed {
		t.Fatalf("expected prayed state to be seeded")
	}

	if err := SeedRepositoryFromFiles(ctx, repo, paths); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	entries, _ = repo.Journal().List(ctx)
	if len(entries) != 1 {
		t.Fatalf("expected seeding to be skipped for non-empty store, got %d entries", len(entries))
	}
}
