package feed

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/matheuskafuri/devtrends/internal/fetch"
)

const devtoDefaultBase = "https://dev.to/api/articles"

type devtoArticle struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Reactions   int       `json:"positive_reactions_count"`
	Comments    int       `json:"comments_count"`
	PublishedAt time.Time `json:"published_at"`
}

// DevtoSource queries the Dev.to articles API by tag.
type DevtoSource struct {
	client  *fetch.Client
	name    string
	base    string
	timeout time.Duration
}

func NewDevtoSource(client *fetch.Client, name, base string, timeout time.Duration) *DevtoSource {
	if name == "" {
		name = "Dev.to"
	}
	if base == "" {
		base = devtoDefaultBase
	}
	return &DevtoSource{client: client, name: name, base: base, timeout: timeout}
}

func (s *DevtoSource) Name() string { return s.name }

// Fetch reduces a multi-word topic to its first keyword, since the tag
// endpoint only understands single terms.
func (s *DevtoSource) Fetch(ctx context.Context, query string) ([]Item, error) {
	term := query
	if fields := strings.Fields(query); len(fields) > 0 {
		term = fields[0]
	}

	params := url.Values{}
	params.Set("tag", strings.ToLower(term))
	params.Set("per_page", "5")
	params.Set("top", "7")

	var articles []devtoArticle
	if err := s.client.GetJSON(ctx, s.base+"?"+params.Encode(), s.timeout, &articles); err != nil {
		return nil, fmt.Errorf("searching %s: %w", s.name, err)
	}

	items := make([]Item, 0, len(articles))
	for _, a := range articles {
		if a.Title == "" || a.URL == "" {
			continue
		}
		items = append(items, Item{
			Title:       a.Title,
			URL:         a.URL,
			Points:      a.Reactions,
			Comments:    a.Comments,
			Source:      s.name,
			PublishedAt: a.PublishedAt,
		})
	}
	return items, nil
}
