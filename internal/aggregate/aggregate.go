package aggregate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/matheuskafuri/devtrends/internal/batch"
	"github.com/matheuskafuri/devtrends/internal/cache"
	"github.com/matheuskafuri/devtrends/internal/feed"
	"github.com/matheuskafuri/devtrends/internal/merge"
	"github.com/matheuskafuri/devtrends/internal/retry"
)

// ErrAllSourcesFailed reports that no source produced a result and nothing
// was cached. It is distinct from an empty result set so the caller can offer
// a retry instead of a permanent empty state.
var ErrAllSourcesFailed = errors.New("all sources failed")

// Options holds the pipeline knobs. Zero values fall back to the defaults
// below.
type Options struct {
	RetryAttempts int
	RetryDelay    time.Duration
	TrendingTTL   time.Duration
	FeedTTL       time.Duration
	BatchSize     int
	BatchDelay    time.Duration
	MaxResults    int
}

func (o Options) withDefaults() Options {
	if o.RetryAttempts <= 0 {
		o.RetryAttempts = 2
	}
	if o.RetryDelay <= 0 {
		o.RetryDelay = 1500 * time.Millisecond
	}
	if o.TrendingTTL <= 0 {
		o.TrendingTTL = 30 * time.Minute
	}
	if o.FeedTTL <= 0 {
		o.FeedTTL = 4 * time.Hour
	}
	if o.BatchSize <= 0 {
		o.BatchSize = 3
	}
	if o.BatchDelay <= 0 {
		o.BatchDelay = 300 * time.Millisecond
	}
	if o.MaxResults <= 0 {
		o.MaxResults = 3
	}
	return o
}

// Aggregator drives the fetch-merge-rank pipeline for trending topics and
// channel feeds, backed by process-lifetime TTL caches. Concurrent calls for
// the same key each run their own fetch; the last writer wins the cache slot.
type Aggregator struct {
	sources  []feed.Source
	channel  feed.Source
	trending *cache.Cache[[]merge.ScoredItem]
	feeds    *cache.Cache[[]feed.Item]
	opts     Options
	now      func() time.Time
}

func New(sources []feed.Source, channel feed.Source, opts Options) *Aggregator {
	return NewWithClock(sources, channel, opts, time.Now)
}

// NewWithClock builds an aggregator on an injectable clock; cache expiry and
// item ages both follow it.
func NewWithClock(sources []feed.Source, channel feed.Source, opts Options, now func() time.Time) *Aggregator {
	return &Aggregator{
		sources:  sources,
		channel:  channel,
		trending: cache.NewWithClock[[]merge.ScoredItem](now),
		feeds:    cache.NewWithClock[[]feed.Item](now),
		opts:     opts.withDefaults(),
		now:      now,
	}
}

func trendingKey(topic string) string { return "trending:" + topic }
func feedKey(channelID string) string { return "feed:" + channelID }

// Cached reports whether a fresh trending result for topic is already held,
// so callers can skip their loading indicator on a hit.
func (a *Aggregator) Cached(topic string) bool {
	_, ok := a.trending.Get(trendingKey(topic))
	return ok
}

// Aggregate returns the ranked trending items for a topic. A fresh cached
// result is returned as-is with zero network calls. On a miss every source is
// queried concurrently, each call retried and timeout-bounded on its own; a
// source that exhausts its retries contributes nothing. Only when every
// source fails and nothing is cached does the whole query fail.
func (a *Aggregator) Aggregate(ctx context.Context, topic string) ([]merge.ScoredItem, error) {
	key := trendingKey(topic)
	if items, ok := a.trending.Get(key); ok {
		return items, nil
	}

	tasks := lo.Map(a.sources, func(src feed.Source, _ int) batch.Task[[]feed.Item] {
		return func(ctx context.Context) ([]feed.Item, error) {
			return retry.Do(ctx, a.opts.RetryAttempts, a.opts.RetryDelay, func() ([]feed.Item, error) {
				return src.Fetch(ctx, topic)
			})
		}
	})

	outcomes := batch.Join(ctx, tasks)

	lists := make([][]feed.Item, 0, len(outcomes))
	failed := 0
	for i, out := range outcomes {
		if out.Err != nil {
			failed++
			log.WithFields(log.Fields{
				"source": a.sources[i].Name(),
				"topic":  topic,
			}).Warnf("source failed: %v", out.Err)
			continue
		}
		lists = append(lists, out.Value)
	}

	if len(a.sources) > 0 && failed == len(a.sources) {
		return nil, fmt.Errorf("aggregating %q: %w", topic, ErrAllSourcesFailed)
	}

	items := merge.Merge(lists, a.now(), a.opts.MaxResults)
	a.trending.Set(key, items, a.opts.TrendingTTL)
	return items, nil
}

// AggregateMany fetches many independent channel feeds in rate-limited
// batches. The result has one entry per channel id; a failed channel carries
// its error instead of aborting the rest.
func (a *Aggregator) AggregateMany(ctx context.Context, channelIDs []string) map[string]batch.Outcome[[]feed.Item] {
	tasks := lo.Map(channelIDs, func(id string, _ int) batch.Task[[]feed.Item] {
		return func(ctx context.Context) ([]feed.Item, error) {
			return a.fetchChannel(ctx, id)
		}
	})

	outcomes := batch.Run(ctx, tasks, a.opts.BatchSize, a.opts.BatchDelay)

	results := make(map[string]batch.Outcome[[]feed.Item], len(channelIDs))
	for i, id := range channelIDs {
		results[id] = outcomes[i]
	}
	return results
}

func (a *Aggregator) fetchChannel(ctx context.Context, channelID string) ([]feed.Item, error) {
	key := feedKey(channelID)
	if items, ok := a.feeds.Get(key); ok {
		return items, nil
	}

	items, err := retry.Do(ctx, a.opts.RetryAttempts, a.opts.RetryDelay, func() ([]feed.Item, error) {
		return a.channel.Fetch(ctx, channelID)
	})
	if err != nil {
		log.WithField("channel", channelID).Warnf("channel fetch failed: %v", err)
		return nil, err
	}

	a.feeds.Set(key, items, a.opts.FeedTTL)
	return items, nil
}
