package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/matheuskafuri/devtrends/internal/config"
	"github.com/matheuskafuri/devtrends/internal/fetch"
)

// Item is a normalized unit of content produced by a source adapter.
type Item struct {
	Title       string
	URL         string
	Points      int
	Comments    int
	Source      string
	PublishedAt time.Time
}

// Source fetches and normalizes items for one upstream feed. Adapters drop
// records missing a usable title or link rather than surfacing them as
// errors; only fetch-level failures propagate.
type Source interface {
	Name() string
	Fetch(ctx context.Context, query string) ([]Item, error)
}

// FromConfig builds the adapter for a configured trending source.
func FromConfig(src config.Source, client *fetch.Client, timeout time.Duration) (Source, error) {
	switch src.Type {
	case "hn":
		return NewHNSource(client, src.Name, src.URL, timeout), nil
	case "devto":
		return NewDevtoSource(client, src.Name, src.URL, timeout), nil
	default:
		return nil, fmt.Errorf("source %q: unknown type %q", src.Name, src.Type)
	}
}
