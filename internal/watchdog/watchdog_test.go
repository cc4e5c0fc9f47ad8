package watchdog

import (
	"context"
	"testing"
	"time"

	"github.com/oloc-go/oloc/internal/calcerr"
)

func TestRunReturnsResultWithinDeadline(t *testing.T) {
	got, err := Run(context.Background(), "1+1", 1.0, func(ctx context.Context) (int, error) {
		return 2, nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}

func TestRunTimesOutPastDeadline(t *testing.T) {
	_, err := Run(context.Background(), "slow()", 0.02, func(ctx context.Context) (int, error) {
		select {
		case <-time.After(2 * time.Second):
			return 1, nil
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	})
	if err == nil {
		t.Fatal("expected TIMEOUT error")
	}
	cerr, ok := err.(*calcerr.Error)
	if !ok || cerr.Kind != calcerr.TIMEOUT {
		t.Fatalf("expected TIMEOUT, got %v", err)
	}
}

func TestRunSkipsMonitoringForNegativeLimit(t *testing.T) {
	got, err := Run(context.Background(), "1+1", -1, func(ctx context.Context) (int, error) {
		return 42, nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got != 42 {
		t.Errorf("got %d, want 42", got)
	}
}
