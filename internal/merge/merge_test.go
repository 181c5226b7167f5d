package merge

import (
	"testing"
	"time"

	"github.com/matheuskafuri/devtrends/internal/feed"
)

var now = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func item(title, url string, points int, age time.Duration) feed.Item {
	return feed.Item{
		Title:       title,
		URL:         url,
		Points:      points,
		Source:      "test",
		PublishedAt: now.Add(-age),
	}
}

func TestMergeCapsResults(t *testing.T) {
	var items []feed.Item
	for i := 0; i < 10; i++ {
		items = append(items, item("t", "https://example"+string(rune('a'+i))+".com/p", 100, time.Hour))
	}

	got := Merge([][]feed.Item{items}, now, 3)
	if len(got) != 3 {
		t.Errorf("expected at most 3 results, got %d", len(got))
	}
}

func TestMergePicksHighestScoring(t *testing.T) {
	listA := []feed.Item{
		item("low", "https://a.example.com/1", 1, 10*24*time.Hour),
		item("high", "https://b.example.com/1", 500, time.Hour),
	}
	listB := []feed.Item{
		item("mid", "https://c.example.com/1", 50, 24*time.Hour),
		item("top", "https://d.example.com/1", 900, time.Minute),
	}

	got := Merge([][]feed.Item{listA, listB}, now, 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got))
	}
	if got[0].Title != "top" || got[1].Title != "high" || got[2].Title != "mid" {
		t.Errorf("unexpected ranking: %q, %q, %q", got[0].Title, got[1].Title, got[2].Title)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Errorf("scores must be non-increasing: %d before %d", got[i-1].Score, got[i].Score)
		}
	}
}

func TestMergeDedupesByHost(t *testing.T) {
	items := []feed.Item{
		item("first", "https://example.com/a", 500, time.Hour),
		item("duplicate", "https://EXAMPLE.com/b", 400, time.Hour),
		item("other", "https://other.com/c", 10, time.Hour),
	}

	got := Merge([][]feed.Item{items}, now, 3)
	if len(got) != 2 {
		t.Fatalf("expected 2 results after dedupe, got %d", len(got))
	}
	if got[0].Title != "first" {
		t.Errorf("higher-scoring item should win its host, got %q", got[0].Title)
	}
	for _, it := range got {
		if it.Title == "duplicate" {
			t.Error("second item on the same host should be dropped")
		}
	}
}

func TestMergeKeepsItemsWithoutAHost(t *testing.T) {
	items := []feed.Item{
		item("parseable", "https://example.com/a", 100, time.Hour),
		item("broken 1", "://not-a-url", 100, time.Hour),
		item("broken 2", "also not a url", 100, time.Hour),
	}

	got := Merge([][]feed.Item{items}, now, 5)
	if len(got) != 3 {
		t.Errorf("items with no usable host must be kept, got %d of 3", len(got))
	}
}

func TestMergeTieBreakKeepsInputOrder(t *testing.T) {
	listA := []feed.Item{item("a", "https://a.com/1", 10, time.Hour)}
	listB := []feed.Item{item("b", "https://b.com/1", 10, time.Hour)}

	got := Merge([][]feed.Item{listA, listB}, now, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].Title != "a" || got[1].Title != "b" {
		t.Errorf("equal scores should keep input order, got %q then %q", got[0].Title, got[1].Title)
	}
}

func TestMergeEmptyInput(t *testing.T) {
	if got := Merge(nil, now, 3); len(got) != 0 {
		t.Errorf("nil input should yield empty output, got %d items", len(got))
	}
	if got := Merge([][]feed.Item{{}, {}}, now, 3); len(got) != 0 {
		t.Errorf("empty lists should yield empty output, got %d items", len(got))
	}
}

func TestNormalizedHost(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://Example.COM/path", "example.com"},
		{"https://example.com:8080/path", "example.com"},
		{"no scheme at all", ""},
		{"://broken", ""},
	}
	for _, tt := range tests {
		if got := normalizedHost(tt.url); got != tt.want {
			t.Errorf("normalizedHost(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
