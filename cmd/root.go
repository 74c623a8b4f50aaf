package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quantitativesqueezing/ftdfetcher/internal/config"
	"github.com/quantitativesqueezing/ftdfetcher/internal/fetcher"
	"github.com/quantitativesqueezing/ftdfetcher/internal/ftd"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "ftdfetcher",
	Short: "Fetch and rank SEC fails-to-deliver data",
	Long:  "Downloads the most recent CNS fails-to-deliver file, filters it to single-stock records on the latest settlement date, and ranks them by FTD value.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// buildPipeline assembles the fetch pipeline from config.
func buildPipeline() (*ftd.Pipeline, error) {
	f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		UserAgent: cfg.FTD.UserAgent,
		Referer:   cfg.FTD.Referer,
		Timeout:   time.Duration(cfg.FTD.TimeoutSecs) * time.Second,
	})

	rules := ftd.DefaultRules()
	if cfg.FTD.RulesPath != "" {
		loaded, err := ftd.LoadRules(cfg.FTD.RulesPath)
		if err != nil {
			return nil, err
		}
		rules = loaded
	}

	source := ftd.NewSource(f, cfg.FTD.BaseURL, cfg.FTD.ArchivePath)
	return ftd.NewPipeline(source, ftd.NewClassifier(rules)), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
