package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/matheuskafuri/devtrends/internal/fetch"
)

const channelDefaultBase = "https://www.youtube.com/feeds/videos.xml?channel_id="

// maxChannelItems caps how many entries of one channel feed are kept; feeds
// list newest first.
const maxChannelItems = 5

// ChannelSource fetches a channel's Atom feed (YouTube videos.xml shape) and
// keeps the newest few entries. The query passed to Fetch is the channel id.
type ChannelSource struct {
	parser  *gofeed.Parser
	base    string
	timeout time.Duration
}

func NewChannelSource(base string, timeout time.Duration) *ChannelSource {
	if base == "" {
		base = channelDefaultBase
	}
	return &ChannelSource{parser: gofeed.NewParser(), base: base, timeout: timeout}
}

func (s *ChannelSource) Name() string { return "YouTube" }

func (s *ChannelSource) Fetch(ctx context.Context, channelID string) ([]Item, error) {
	parsed, err := fetch.WithTimeout(ctx, s.timeout, func(ctx context.Context) (*gofeed.Feed, error) {
		return s.parser.ParseURLWithContext(s.base+channelID, ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("fetching channel %s: %w", channelID, err)
	}

	source := parsed.Title
	if source == "" {
		source = s.Name()
	}

	items := make([]Item, 0, maxChannelItems)
	for _, entry := range parsed.Items {
		if len(items) == maxChannelItems {
			break
		}
		if entry.Title == "" || entry.Link == "" {
			continue
		}

		published := time.Time{}
		if entry.PublishedParsed != nil {
			published = *entry.PublishedParsed
		} else if entry.UpdatedParsed != nil {
			published = *entry.UpdatedParsed
		}

		items = append(items, Item{
			Title:       entry.Title,
			URL:         entry.Link,
			Source:      source,
			PublishedAt: published,
		})
	}
	return items, nil
}
