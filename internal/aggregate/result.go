package aggregate

import "github.com/matheuskafuri/devtrends/internal/merge"

// Status is the tri-state the rendering layer switches on. Loading is set by
// the caller while a fetch is in flight; the other three come from ResultOf.
type Status int

const (
	Loading Status = iota
	Results
	Empty
	Failed
)

// Result is what the rendering layer consumes.
type Result struct {
	Status Status
	Items  []merge.ScoredItem
	Err    error
}

// ResultOf folds an Aggregate outcome into a Result. Zero items with no
// error is Empty, a state callers must render as "no results" rather than as
// a failure.
func ResultOf(items []merge.ScoredItem, err error) Result {
	switch {
	case err != nil:
		return Result{Status: Failed, Err: err}
	case len(items) == 0:
		return Result{Status: Empty}
	default:
		return Result{Status: Results, Items: items}
	}
}
