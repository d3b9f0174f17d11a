package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"github.com/rotisserie/eris"

	"daybook/internal/config"
	"daybook/internal/store"
)

const version = "dev"

func exitOnErr(label string, err error, stderr io.Writer) {
	if err == nil {
		return
	}
	fmt.Fprintf(stderr, "%s error: %v\n", label, err)
	os.Exit(1)
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		var revision string
		var modified string
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = setting.Value
			case "vcs.modified":
				modified = setting.Value
			}
		}
		if revision != "" {
			if len(revision) > 12 {
				revision = revision[:12]
			}
			if modified == "true" {
				return revision + "-dirty"
			}
			return revision
		}
		if v := strings.TrimSpace(info.Main.Version); v != "" && v != "(devel)" {
			return v
		}
	}
	return version
}

func repositoryPaths(cfg config.Config) (store.RepositoryPaths, error) {
	storagePath, err := cfg.StoragePath()
	if err != nil {
		return store.RepositoryPaths{}, err
	}
	statePath, err := config.StatePath()
	if err != nil {
		return store.RepositoryPaths{}, err
	}
	journalPath, err := config.JournalPath()
	if err != nil {
		return store.RepositoryPaths{}, err
	}
	paths := store.RepositoryPaths{
		JournalPath:  journalPath,
		AppStatePath: statePath,
		DBPath:       storagePath,
	}
	if cfg.StorageBackend() == config.StorageBackendFile {
		paths.JournalPath = storagePath
		paths.DBPath = ""
	}
	return paths, nil
}

// openConfiguredRepository opens the configured backend and, for bbolt,
// imports any journal left behind by the file backend.
func openConfiguredRepository(cfg config.Config) (store.Repository, error) {
	dataDir, err := config.DataDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, eris.Wrapf(err, "create data dir %s", dataDir)
	}
	paths, err := repositoryPaths(cfg)
	if err != nil {
		return nil, err
	}
	repo, err := store.OpenRepository(paths, cfg.StorageBackend())
	if err != nil {
		return nil, eris.Wrap(err, "open repository")
	}
	if err := store.SeedRepositoryFromFiles(context.Background(), repo, paths); err != nil {
		_ = repo.Close()
		return nil, eris.Wrap(err, "seed repository")
	}
	return repo, nil
}
