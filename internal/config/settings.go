package config

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rotisserie/eris"
)

const (
	StorageBackendBbolt = "bbolt"
	StorageBackendFile  = "file"

	defaultScrollStepLines  = 6
	defaultScrollDurationMs = 200
	defaultToastSeconds     = 2
)

type Config struct {
	Storage     StorageConfig     `toml:"storage" json:"storage"`
	Logging     LoggingConfig     `toml:"logging" json:"logging"`
	UI          UIConfig          `toml:"ui" json:"ui"`
	Keybindings map[string]string `toml:"keybindings" json:"keybindings"`
}

type StorageConfig struct {
	Backend string `toml:"backend" json:"backend"`
	Path    string `toml:"path" json:"path"`
}

type LoggingConfig struct {
	Level string `toml:"level" json:"level"`
}

type UIConfig struct {
	ScrollStepLines  int `toml:"scroll_step_lines" json:"scroll_step_lines"`
	ScrollDurationMs int `toml:"scroll_duration_ms" json:"scroll_duration_ms"`
	ToastSeconds     int `toml:"toast_seconds" json:"toast_seconds"`
}

func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Backend: StorageBackendBbolt,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		UI: UIConfig{
			ScrollStepLines:  defaultScrollStepLines,
			ScrollDurationMs: defaultScrollDurationMs,
			ToastSeconds:     defaultToastSeconds,
		},
	}
}

// Load reads the config file from the data directory. A missing or empty
// file yields the defaults.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	return LoadFromPath(path)
}

func LoadFromPath(path string) (Config, error) {
	cfg := DefaultConfig()
	if err := readTOML(path, &cfg); err != nil {
		return Config{}, eris.Wrapf(err, "load config %s", path)
	}
	return cfg, nil
}

func (c Config) LogLevel() string {
	level := strings.TrimSpace(c.Logging.Level)
	if level == "" {
		return "info"
	}
	return level
}

func (c Config) StorageBackend() string {
	switch strings.ToLower(strings.TrimSpace(c.Storage.Backend)) {
	case StorageBackendFile:
		return StorageBackendFile
	default:
		return StorageBackendBbolt
	}
}

// StoragePath returns the configured storage location, or the default file
// for the selected backend.
func (c Config) StoragePath() (string, error) {
	if path := strings.TrimSpace(c.Storage.Path); path != "" {
		return resolveConfigPath(path)
	}
	if c.StorageBackend() == StorageBackendFile {
		return JournalPath()
	}
	return JournalDBPath()
}

func (c Config) ScrollStep() int {
	if c.UI.ScrollStepLines <= 0 {
		return defaultScrollStepLines
	}
	return c.UI.ScrollStepLines
}

func (c Config) ScrollDuration() time.Duration {
	if c.UI.ScrollDurationMs <= 0 {
		return defaultScrollDurationMs * time.Millisecond
	}
	return time.Duration(c.UI.ScrollDurationMs) * time.Millisecond
}

func (c Config) ToastDuration() time.Duration {
	if c.UI.ToastSeconds <= 0 {
		return defaultToastSeconds * time.Second
	}
	return time.Duration(c.UI.ToastSeconds) * time.Second
}

// KeybindingOverrides returns the non-empty keybinding overrides with
// trimmed command ids and keys.
func (c Config) KeybindingOverrides() map[string]string {
	out := map[string]string{}
	for command, key := range c.Keybindings {
		command = strings.TrimSpace(command)
		key = strings.TrimSpace(key)
		if command == "" || key == "" {
			continue
		}
		out[command] = key
	}
	return out
}

// KeybindingCommands returns the overridden command ids in sorted order.
func (c Config) KeybindingCommands() []string {
	overrides := c.KeybindingOverrides()
	out := make([]string, 0, len(overrides))
	for command := range overrides {
		out = append(out, command)
	}
	sort.Strings(out)
	return out
}

func readTOML(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return toml.Unmarshal(data, out)
}

// Encode renders the config as TOML.
func Encode(cfg Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, eris.Wrap(err, "encode config")
	}
	return data, nil
}

func resolveConfigPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("path is required")
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	if filepath.IsAbs(path) {
		return path, nil
	}
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, path), nil
}
