package feed

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/matheuskafuri/devtrends/internal/fetch"
)

const hnDefaultBase = "https://hn.algolia.com/api/v1/search"

// hnWindow bounds the search to recent stories; anything older scores near
// zero anyway.
const hnWindow = 14 * 24 * time.Hour

type hnHit struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Points      int       `json:"points"`
	NumComments int       `json:"num_comments"`
	CreatedAt   time.Time `json:"created_at"`
}

type hnResponse struct {
	Hits []hnHit `json:"hits"`
}

// HNSource queries the Hacker News search API for stories matching a topic.
type HNSource struct {
	client  *fetch.Client
	name    string
	base    string
	timeout time.Duration
	now     func() time.Time
}

func NewHNSource(client *fetch.Client, name, base string, timeout time.Duration) *HNSource {
	if name == "" {
		name = "HN"
	}
	if base == "" {
		base = hnDefaultBase
	}
	return &HNSource{client: client, name: name, base: base, timeout: timeout, now: time.Now}
}

func (s *HNSource) Name() string { return s.name }

// Fetch passes the whole topic through; the search API handles multi-word
// phrases natively. Hits missing a title or an external URL are dropped,
// missing engagement fields default to zero.
func (s *HNSource) Fetch(ctx context.Context, query string) ([]Item, error) {
	params := url.Values{}
	params.Set("query", strings.Join(strings.Fields(query), " "))
	params.Set("tags", "story")
	params.Set("numericFilters", fmt.Sprintf("created_at_i>%d", s.now().Add(-hnWindow).Unix()))
	params.Set("hitsPerPage", "10")

	var resp hnResponse
	if err := s.client.GetJSON(ctx, s.base+"?"+params.Encode(), s.timeout, &resp); err != nil {
		return nil, fmt.Errorf("searching %s: %w", s.name, err)
	}

	items := make([]Item, 0, len(resp.Hits))
	for _, h := range resp.Hits {
		if h.Title == "" || h.URL == "" {
			continue
		}
		items = append(items, Item{
			Title:       h.Title,
			URL:         h.URL,
			Points:      h.Points,
			Comments:    h.NumComments,
			Source:      s.name,
			PublishedAt: h.CreatedAt,
		})
	}
	return items, nil
}
