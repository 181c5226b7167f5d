package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/matheuskafuri/devtrends/internal/aggregate"
	"github.com/matheuskafuri/devtrends/internal/batch"
	"github.com/matheuskafuri/devtrends/internal/config"
	"github.com/matheuskafuri/devtrends/internal/feed"
)

var (
	// Adaptive colors for dark/light terminals
	colorPrimary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorDim     = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorAccent  = lipgloss.AdaptiveColor{Light: "#F25D94", Dark: "#F25D94"}
	colorGreen   = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	sourceStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	metaStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	loadingStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)
)

// Loading is shown only while a fetch is actually in flight; cache hits
// never see it.
func Loading(topic string) string {
	return loadingStyle.Render(fmt.Sprintf("Fetching trending resources for %q...", topic))
}

// Trending renders the tri-state aggregate result as a printable block.
func Trending(topic string, res aggregate.Result) string {
	switch res.Status {
	case aggregate.Failed:
		return errorStyle.Render(fmt.Sprintf("Could not load trending %q. Run the command again to retry.", topic))
	case aggregate.Empty:
		return metaStyle.Render("No trending resources found")
	case aggregate.Loading:
		return Loading(topic)
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Trending: %s", topic)) + "\n")
	for i, it := range res.Items {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, titleStyle.Render(it.Title)))
		b.WriteString("   " + sourceStyle.Render(it.Source) +
			" " + metaStyle.Render(fmt.Sprintf("· %d pts · %d comments · score %d · %s",
			it.Points, it.Comments, it.Score, relativeTime(it.PublishedAt))) + "\n")
		b.WriteString("   " + metaStyle.Render(it.URL) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Channels renders the per-channel outcomes from AggregateMany, channels in
// config order, and a failure count footer when any channel failed.
func Channels(channels []config.Channel, results map[string]batch.Outcome[[]feed.Item]) string {
	var b strings.Builder
	failed := 0

	for _, ch := range channels {
		out, ok := results[ch.ID]
		if !ok {
			continue
		}
		b.WriteString(headerStyle.Render(ch.Name) + "\n")
		if out.Err != nil {
			failed++
			b.WriteString("  " + errorStyle.Render("unavailable") + "\n")
			continue
		}
		if len(out.Value) == 0 {
			b.WriteString("  " + metaStyle.Render("no recent videos") + "\n")
			continue
		}
		for _, it := range out.Value {
			b.WriteString("  " + titleStyle.Render(it.Title) +
				" " + metaStyle.Render("· "+relativeTime(it.PublishedAt)) + "\n")
		}
	}

	if failed > 0 {
		b.WriteString(metaStyle.Render(fmt.Sprintf("%d channel(s) could not be loaded", failed)) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func relativeTime(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("Jan 2")
	}
}
