package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	appDirName = ".daybook"
	homeEnvVar = "DAYBOOK_HOME"
)

// DataDir returns the base data directory for Daybook. DAYBOOK_HOME takes
// precedence over the home directory default.
func DataDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv(homeEnvVar)); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDirName), nil
}

// ConfigPath returns the path to the TOML configuration file.
func ConfigPath() (string, error) {
	return dataFile("config.toml")
}

// JournalDBPath returns the path to the bbolt database used by the default
// storage backend.
func JournalDBPath() (string, error) {
	return dataFile("daybook.db")
}

// JournalPath returns the path to the journal file used by the file backend.
func JournalPath() (string, error) {
	return dataFile("journal.json")
}

// StatePath returns the path to the persisted dashboard state file.
func StatePath() (string, error) {
	return dataFile("state.json")
}

// LogPath returns the path to the UI log file.
func LogPath() (string, error) {
	return dataFile("ui.log")
}

func dataFile(name string) (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, name), nil
}
