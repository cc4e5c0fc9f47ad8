// Package watchdog bounds how long a single calculation may run. A negative
// time limit disables monitoring entirely; a non-negative one runs the work
// in a goroutine and races it against a context.WithTimeout deadline,
// returning a TIMEOUT error
// if the deadline passes first. Go goroutines cannot be forcibly terminated,
// so on timeout the goroutine is abandoned (and its result discarded) rather
// than killed, and the caller moves on.
package watchdog

import (
	"context"
	"time"

	"github.com/oloc-go/oloc/internal/calcerr"
)

// Run executes fn with no time bound at all when limit < 0, and otherwise
// races it against limit seconds, returning a Timeout-family calcerr.Error
// if fn has not produced a result by then. expr is carried only so the
// timeout error can render its marker line.
func Run[T any](ctx context.Context, expr string, limit float64, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if limit < 0 {
		return fn(ctx)
	}

	deadline := time.Duration(limit * float64(time.Second))
	runCtx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	type outcome struct {
		val T
		err error
	}
	done := make(chan outcome, 1)
	start := time.Now()

	go func() {
		v, err := fn(runCtx)
		done <- outcome{v, err}
	}()

	select {
	case o := <-done:
		return o.val, o.err
	case <-runCtx.Done():
		elapsed := time.Since(start).Seconds()
		err := calcerr.New(calcerr.TIMEOUT, expr, nil).WithTiming(limit, elapsed)
		return zero, err
	}
}
