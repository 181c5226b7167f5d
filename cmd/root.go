package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matheuskafuri/devtrends/internal/aggregate"
	"github.com/matheuskafuri/devtrends/internal/config"
	"github.com/matheuskafuri/devtrends/internal/feed"
	"github.com/matheuskafuri/devtrends/internal/fetch"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:   "devtrends",
	Short: "Trending dev content aggregator",
	Long:  "devtrends merges trending articles and videos from multiple feeds into one ranked, deduplicated list.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(trendingCmd)
	rootCmd.AddCommand(feedsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("devtrends %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// newAggregator wires the configured sources into the pipeline; shared by the
// trending and feeds commands.
func newAggregator(cfg *config.Config) (*aggregate.Aggregator, error) {
	client := fetch.NewClient()

	var sources []feed.Source
	for _, s := range cfg.EnabledSources() {
		src, err := feed.FromConfig(s, client, cfg.QueryTimeoutDuration())
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}

	channel := feed.NewChannelSource("", cfg.FeedTimeoutDuration())

	return aggregate.New(sources, channel, aggregate.Options{
		RetryAttempts: cfg.GetRetryAttempts(),
		RetryDelay:    cfg.RetryDelayDuration(),
		TrendingTTL:   cfg.TrendingTTLDuration(),
		FeedTTL:       cfg.FeedTTLDuration(),
		BatchSize:     cfg.GetBatchSize(),
		BatchDelay:    cfg.BatchDelayDuration(),
		MaxResults:    cfg.GetMaxResults(),
	}), nil
}
