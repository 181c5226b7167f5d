package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matheuskafuri/devtrends/internal/aggregate"
	"github.com/matheuskafuri/devtrends/internal/config"
	"github.com/matheuskafuri/devtrends/internal/render"
)

var trendingCmd = &cobra.Command{
	Use:   "trending <topic>...",
	Short: "Show top trending resources for a topic",
	Long:  "Query all enabled sources for a topic and print the highest-scoring results, at most one per site.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		agg, err := newAggregator(cfg)
		if err != nil {
			return err
		}

		topic := strings.Join(args, " ")
		if !agg.Cached(topic) {
			fmt.Println(render.Loading(topic))
		}

		items, err := agg.Aggregate(cmd.Context(), topic)
		fmt.Println(render.Trending(topic, aggregate.ResultOf(items, err)))
		return nil
	},
}
