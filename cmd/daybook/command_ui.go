package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"daybook/internal/app"
	"daybook/internal/config"
	"daybook/internal/logging"
)

func newUICommand(wiring commandWiring) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Run the terminal dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := wiring.loadConfig()
			if err != nil {
				return err
			}
			logger, closeLog := configureUILogging(cfg)
			defer closeLog()

			repo, err := wiring.openRepo(cfg)
			if err != nil {
				return err
			}
			defer repo.Close()
			logger.Info("ui_start",
				logging.F("backend", repo.Backend()),
				logging.F("version", wiring.version),
			)

			return wiring.runUI(app.ModelConfig{
				Journal:        repo.Journal(),
				State:          repo.AppState(),
				Keybindings:    cfg.KeybindingOverrides(),
				ScrollStep:     cfg.ScrollStep(),
				ScrollDuration: cfg.ScrollDuration(),
				ToastDuration:  cfg.ToastDuration(),
				Logger:         logger,
			})
		},
	}
}

// configureUILogging sends UI logs to a file since the terminal belongs to
// the renderer. Logging is dropped when the file cannot be opened.
func configureUILogging(cfg config.Config) (logging.Logger, func()) {
	noop := func() {}
	logPath, err := config.LogPath()
	if err != nil {
		return logging.Nop(), noop
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o700); err != nil {
		return logging.Nop(), noop
	}
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return logging.Nop(), noop
	}
	return newFileLogger(file, cfg.LogLevel()), func() { _ = file.Close() }
}

func newFileLogger(out io.Writer, level string) logging.Logger {
	return logging.New(out, logging.ParseLevel(level))
}
