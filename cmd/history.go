package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/quantitativesqueezing/ftdfetcher/internal/store"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent fetches from the local history log",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		s, err := store.Open(cfg.Store.Path)
		if err != nil {
			return eris.Wrap(err, "history")
		}
		defer s.Close() //nolint:errcheck

		if err := s.Migrate(ctx); err != nil {
			return eris.Wrap(err, "history")
		}

		entries, err := s.RecentFetches(ctx, historyLimit)
		if err != nil {
			return eris.Wrap(err, "history")
		}

		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No fetches recorded yet")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "FetchedAt\tPeriod\tLatestDate\tParsed\tOnDate\tRanked")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n",
				e.FetchedAt.Format("2006-01-02 15:04:05"),
				e.Period, e.LatestDate, e.RowsParsed, e.RowsOnDate, e.RowsRanked)
		}
		return w.Flush()
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum entries to show")
	rootCmd.AddCommand(historyCmd)
}
