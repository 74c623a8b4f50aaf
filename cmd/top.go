package main

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quantitativesqueezing/ftdfetcher/internal/export"
	"github.com/quantitativesqueezing/ftdfetcher/internal/ftd"
	"github.com/quantitativesqueezing/ftdfetcher/internal/store"
)

var topNoExport bool

var topCmd = &cobra.Command{
	Use:   "top N",
	Short: "Fetch and print the top N fails-to-deliver records",
	Long: `Downloads the most recent CNS fails-to-deliver file, keeps single-stock
records for the latest settlement date present, ranks them by FTD value
(quantity x price), and prints the top N. Unless --no-export is given, the
result is also written as CSV and XLSX files.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		n, err := parseCount(args[0])
		if err != nil {
			return err
		}

		pipeline, err := buildPipeline()
		if err != nil {
			return err
		}

		report, err := pipeline.Top(ctx, time.Now(), n)
		if err != nil {
			return eris.Wrap(err, "top")
		}

		printReport(cmd, n, report)

		recordFetch(ctx, report)

		if topNoExport {
			return nil
		}

		csvPath, xlsxPath, err := export.WriteAll(report.Records, cfg.Export.OutputDir, n, report.LatestDate)
		if err != nil {
			return eris.Wrap(err, "top: export")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nExported: %s and %s\n", csvPath, xlsxPath)

		return nil
	},
}

// parseCount validates the required result count argument. Non-positive
// counts fail before the pipeline runs.
func parseCount(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, eris.Wrapf(ftd.ErrInvalidCount, "count %q is not an integer", arg)
	}
	if n <= 0 {
		return 0, ftd.ErrInvalidCount
	}
	return n, nil
}

func printReport(cmd *cobra.Command, n int, report *ftd.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Top %d by FTD value on %s (%s):\n\n", n, report.LatestDate, report.Period)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SettlementDate\tSymbol\tCompany\tCUSIP\tPrice\tQuantityFails\tFTD_Value")
	for _, r := range report.Records {
		row := export.FormatRow(r)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row[0], row[1], row[2], row[3], row[4], row[5], row[6])
	}
	_ = w.Flush()
}

// recordFetch appends the run to the local fetch history. Failures here are
// logged, never fatal: the user already has the result.
func recordFetch(ctx context.Context, report *ftd.Report) {
	if cfg.Store.Path == "" {
		return
	}

	s, err := store.Open(cfg.Store.Path)
	if err != nil {
		zap.L().Warn("fetch history unavailable", zap.Error(err))
		return
	}
	defer s.Close() //nolint:errcheck

	if err := s.Migrate(ctx); err != nil {
		zap.L().Warn("fetch history migrate failed", zap.Error(err))
		return
	}

	entry := store.FetchEntry{
		Period:     report.Period.String(),
		URL:        report.URL,
		LatestDate: report.LatestDate,
		RowsParsed: report.RowsParsed,
		RowsOnDate: report.RowsOnDate,
		RowsRanked: len(report.Records),
	}
	if err := s.RecordFetch(ctx, entry); err != nil {
		zap.L().Warn("fetch history write failed", zap.Error(err))
	}
}

func init() {
	topCmd.Flags().BoolVar(&topNoExport, "no-export", false, "skip CSV/XLSX file export")
	rootCmd.AddCommand(topCmd)
}
