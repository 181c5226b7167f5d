package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSucceedsAfterFailures(t *testing.T) {
	calls := 0
	got, err := Do(context.Background(), 3, time.Millisecond, func() (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("transient")
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if got != "ok" {
		t.Errorf("got %q, want %q", got, "ok")
	}
	if calls != 3 {
		t.Errorf("expected exactly 3 invocations, got %d", calls)
	}
}

func TestFirstAttemptSuccessSkipsRetries(t *testing.T) {
	calls := 0
	_, err := Do(context.Background(), 5, time.Millisecond, func() (int, error) {
		calls++
		return 42, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected a single invocation, got %d", calls)
	}
}

func TestExhaustedBudgetSurfacesLastFailure(t *testing.T) {
	calls := 0
	last := errors.New("failure 2")
	_, err := Do(context.Background(), 2, time.Millisecond, func() (int, error) {
		calls++
		if calls == 1 {
			return 0, errors.New("failure 1")
		}
		return 0, last
	})
	if !errors.Is(err, last) {
		t.Errorf("expected the last observed failure, got %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 invocations, got %d", calls)
	}
}

func TestAttemptsFloorIsOne(t *testing.T) {
	calls := 0
	_, err := Do(context.Background(), 0, time.Millisecond, func() (int, error) {
		calls++
		return 0, errors.New("nope")
	})
	if err == nil {
		t.Fatal("expected failure")
	}
	if calls != 1 {
		t.Errorf("expected 1 invocation, got %d", calls)
	}
}

func TestCancelledContextStopsRetrying(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	_, err := Do(ctx, 5, time.Hour, func() (int, error) {
		calls++
		cancel()
		return 0, errors.New("transient")
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Errorf("cancellation should stop further attempts, got %d calls", calls)
	}
}
