package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"daybook/internal/types"
)

func newJournalCommand(wiring commandWiring) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "List, add or delete journal entries",
	}
	cmd.AddCommand(
		newJournalListCommand(wiring),
		newJournalAddCommand(wiring),
		newJournalDeleteCommand(wiring),
	)
	return cmd
}

func newJournalListCommand(wiring commandWiring) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withJournal(wiring, func(ctx context.Context, journal journalStore) error {
				entries, err := journal.List(ctx)
				if err != nil {
					return err
				}
				if limit > 0 && len(entries) > limit {
					entries = entries[:limit]
				}
				printEntries(wiring.stdout, entries)
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most this many entries")
	return cmd
}

func newJournalAddCommand(wiring commandWiring) *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "add <text>...",
		Short: "Add a journal entry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := parseEntrySource(from)
			if err != nil {
				return err
			}
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return eris.New("entry text is required")
			}
			return withJournal(wiring, func(ctx context.Context, journal journalStore) error {
				saved, err := journal.Add(ctx, &types.JournalEntry{
					Text:      text,
					From:      source,
					CreatedAt: wiring.now(),
				})
				if err != nil {
					return err
				}
				fmt.Fprintln(wiring.stdout, saved.Key)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&from, "from", string(types.EntrySourceJournal), "entry source: journal|intent|mind")
	return cmd
}

func newJournalDeleteCommand(wiring commandWiring) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <key>",
		Short: "Delete a journal entry by key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withJournal(wiring, func(ctx context.Context, journal journalStore) error {
				if err := journal.Delete(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintln(wiring.stdout, "ok")
				return nil
			})
		},
	}
}

type journalStore interface {
	List(ctx context.Context) ([]*types.JournalEntry, error)
	Add(ctx context.Context, entry *types.JournalEntry) (*types.JournalEntry, error)
	Delete(ctx context.Context, key string) error
}

func withJournal(wiring commandWiring, fn func(ctx context.Context, journal journalStore) error) error {
	cfg, err := wiring.loadConfig()
	if err != nil {
		return err
	}
	repo, err := wiring.openRepo(cfg)
	if err != nil {
		return err
	}
	defer repo.Close()
	return fn(context.Background(), repo.Journal())
}

func parseEntrySource(raw string) (types.EntrySource, error) {
	switch source := types.EntrySource(strings.ToLower(strings.TrimSpace(raw))); source {
	case "":
		return types.EntrySourceJournal, nil
	case types.EntrySourceJournal, types.EntrySourceIntent, types.EntrySourceMind:
		return source, nil
	default:
		return "", eris.Errorf("unknown entry source %q", raw)
	}
}

func printEntries(output io.Writer, entries []*types.JournalEntry) {
	writer := tabwriter.NewWriter(output, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "KEY\tFROM\tWRITTEN\tTEXT")
	for _, entry := range entries {
		text := strings.Join(strings.Fields(entry.Text), " ")
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", entry.Key, entry.From, entry.CreatedAt.Local().Format("2006-01-02 15:04"), text)
	}
	_ = writer.Flush()
}
