package merge

import (
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/matheuskafuri/devtrends/internal/feed"
	"github.com/matheuskafuri/devtrends/internal/score"
)

// ScoredItem is an Item carrying its ranking score. Produced only by Merge;
// never stored upstream of it.
type ScoredItem struct {
	feed.Item
	Score int
}

// Merge flattens the per-source lists, scores every item against now, sorts
// descending by score, and keeps at most maxResults items with no two sharing
// a URL host. Ties keep their input order (stable sort), so the result is
// deterministic for a given input ordering regardless of which source
// finished first. An item whose URL does not yield a host is kept
// unconditionally: dropping real content beats suppressing a rare duplicate.
func Merge(lists [][]feed.Item, now time.Time, maxResults int) []ScoredItem {
	scored := lo.Map(lo.Flatten(lists), func(it feed.Item, _ int) ScoredItem {
		return ScoredItem{
			Item:  it,
			Score: score.Score(it.Points, it.Comments, now.Sub(it.PublishedAt)),
		}
	})

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	seen := make(map[string]bool)
	out := make([]ScoredItem, 0, len(scored))
	for _, it := range scored {
		if len(out) >= maxResults {
			break
		}
		host := normalizedHost(it.URL)
		if host != "" {
			if seen[host] {
				continue
			}
			seen[host] = true
		}
		out = append(out, it)
	}
	return out
}

// normalizedHost extracts the dedup key from an item URL. Empty means the
// URL has no usable host.
func normalizedHost(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
