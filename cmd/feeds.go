package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matheuskafuri/devtrends/internal/config"
	"github.com/matheuskafuri/devtrends/internal/render"
)

var feedsCmd = &cobra.Command{
	Use:   "feeds",
	Short: "Fetch the latest videos for all configured channels",
	Long:  "Fetch every subscribed channel feed in rate-limited batches and print the newest videos per channel.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if len(cfg.Channels) == 0 {
			fmt.Println("No channels configured.")
			return nil
		}

		agg, err := newAggregator(cfg)
		if err != nil {
			return err
		}

		ids := make([]string, len(cfg.Channels))
		for i, ch := range cfg.Channels {
			ids[i] = ch.ID
		}

		results := agg.AggregateMany(cmd.Context(), ids)
		fmt.Println(render.Channels(cfg.Channels, results))
		return nil
	},
}
