package main

import (
	"errors"
	"fmt"

	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/i18n"
	"github.com/mmcdole/shelf/internal/service"
	"github.com/mmcdole/shelf/internal/store"
	"github.com/spf13/cobra"
)

func newHistoryCmd(opts *options) *cobra.Command {
	var (
		limit int
		find  string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded operation outcomes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if !cfg.Journal.Enabled {
				return errors.New("journal is disabled (journal.enabled is false)")
			}

			j, err := store.NewJournal(cfg.Journal.Path)
			if err != nil {
				return err
			}
			defer j.Close()

			svc := service.NewHistoryService(j)

			var entries []domain.JournalEntry
			if find != "" {
				entries, err = svc.Find(find, limit)
			} else {
				entries, err = svc.Recent(limit)
			}
			if err != nil {
				return fmt.Errorf("failed to read journal: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, i18n.T("history.empty"))
				return nil
			}
			for _, e := range entries {
				fmt.Fprintln(out, e.String())
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum entries to show (0 for all)")
	cmd.Flags().StringVarP(&find, "find", "f", "", "fuzzy match entries against a query")
	return cmd
}
