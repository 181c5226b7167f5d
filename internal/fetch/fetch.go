package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrTimedOut reports a request that was cancelled by its deadline.
var ErrTimedOut = errors.New("request timed out")

// HTTPError is a response that arrived but carried a non-OK status.
type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Status)
}

// Client issues HTTP requests with a hard per-request deadline.
type Client struct {
	http *http.Client
}

func NewClient() *Client {
	return &Client{http: &http.Client{}}
}

// GetJSON fetches rawURL under a hard deadline and decodes the response body
// into v. The deadline timer is released on every exit path via the deferred
// cancel. Failures map to ErrTimedOut, *HTTPError, or a wrapped transport
// error.
func (c *Client) GetJSON(ctx context.Context, rawURL string, timeout time.Duration, v any) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrTimedOut
		}
		return fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &HTTPError{Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrTimedOut
		}
		return fmt.Errorf("decoding %s: %w", rawURL, err)
	}
	return nil
}

// WithTimeout runs op under a hard deadline, mapping deadline expiry to
// ErrTimedOut. Used by adapters whose underlying client takes a context
// rather than going through GetJSON.
func WithTimeout[T any](ctx context.Context, timeout time.Duration, op func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	v, err := op(ctx)
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		var zero T
		return zero, ErrTimedOut
	}
	return v, err
}
