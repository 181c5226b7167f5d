package score

import (
	"math"
	"time"
)

const (
	engagementCap  = 50.0
	pointsWeight   = 5.0
	commentsWeight = 3.0
	recencyScale   = 50.0
	decayHours     = 14 * 24
)

// Score combines engagement and recency into a 0-100 ranking value. It is a
// pure function of its inputs: two items with identical engagement and age
// always score the same.
func Score(points, comments int, age time.Duration) int {
	return int(math.Round(engagement(points, comments) + recency(age)))
}

// engagement grows logarithmically so a single viral item cannot dominate.
// Capped at 50.
func engagement(points, comments int) float64 {
	e := math.Log2(1+float64(points))*pointsWeight +
		math.Log2(1+float64(comments))*commentsWeight
	return math.Min(engagementCap, e)
}

// recency decays exponentially on a 14-day scale; items older than about two
// weeks contribute near zero.
func recency(age time.Duration) float64 {
	hours := age.Hours()
	if hours < 0 {
		hours = 0
	}
	return recencyScale * math.Exp(-hours/decayHours)
}
