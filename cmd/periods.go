package main

import (
	"fmt"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/quantitativesqueezing/ftdfetcher/internal/ftd"
)

var periodsDate string

var periodsCmd = &cobra.Command{
	Use:   "periods",
	Short: "Print the candidate reporting periods for a reference date",
	Long: `Prints the half-month periods the fetcher would try, in order, for the
given reference date (default: today). Useful for checking publication lag.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		today := time.Now()
		if periodsDate != "" {
			parsed, err := time.Parse("2006-01-02", periodsDate)
			if err != nil {
				return eris.Wrapf(err, "periods: invalid date %q (want YYYY-MM-DD)", periodsDate)
			}
			today = parsed
		}

		for i, p := range ftd.Candidates(today) {
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %s  %s\n", i+1, p, p.URL(cfg.FTD.BaseURL))
		}
		return nil
	},
}

func init() {
	periodsCmd.Flags().StringVar(&periodsDate, "date", "", "reference date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(periodsCmd)
}
