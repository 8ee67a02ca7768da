// Package query serializes asynchronous list/search requests so that a
// superseded request can never clobber a newer one: last-request-wins,
// not first-response-wins.
package query

import (
	"context"
	"sync"
)

// Dispatcher runs at most one logical query at a time. Dispatching a
// new query cancels the in-flight one; a result is applied only if its
// request is still the newest when it completes.
type Dispatcher[T any] struct {
	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

// Dispatch starts fetch on its own goroutine. apply runs with the
// result only when this request is still the newest; results of
// superseded requests are dropped. onErr (optional) receives fetch
// errors under the same newest-only rule; context cancellation from
// supersession is swallowed.
func (d *Dispatcher[T]) Dispatch(
	ctx context.Context,
	fetch func(context.Context) (T, error),
	apply func(T),
	onErr func(error),
) {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.seq++
	seq := d.seq
	d.mu.Unlock()

	go func() {
		result, err := fetch(ctx)

		d.mu.Lock()
		current := seq == d.seq
		d.mu.Unlock()
		if !current {
			return
		}

		if err != nil {
			if onErr != nil && ctx.Err() == nil {
				onErr(err)
			}
			return
		}
		apply(result)
	}()
}

// Stop cancels any in-flight request and invalidates its result.
func (d *Dispatcher[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.seq++
}
