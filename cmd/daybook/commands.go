package main

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"daybook/internal/app"
	"daybook/internal/config"
	"daybook/internal/store"
)

type repositoryOpener func(cfg config.Config) (store.Repository, error)

type commandWiring struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig func() (config.Config, error)
	openRepo   repositoryOpener
	runUI      func(cfg app.ModelConfig) error
	now        func() time.Time
	version    string
}

func defaultCommandWiring(stdout, stderr io.Writer) commandWiring {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return commandWiring{
		stdout:     stdout,
		stderr:     stderr,
		loadConfig: config.Load,
		openRepo:   openConfiguredRepository,
		runUI:      app.Run,
		now:        time.Now,
		version:    buildVersion(),
	}
}

// newRootCommand builds the daybook CLI. Running it without a subcommand
// starts the dashboard.
func newRootCommand(wiring commandWiring) *cobra.Command {
	ui := newUICommand(wiring)
	root := &cobra.Command{
		Use:           "daybook",
		Short:         "A keyboard-driven daily dashboard with a journal",
		Version:       wiring.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          ui.RunE,
	}
	root.SetOut(wiring.stdout)
	root.SetErr(wiring.stderr)
	root.AddCommand(
		ui,
		newConfigCommand(wiring),
		newJournalCommand(wiring),
	)
	return root
}
