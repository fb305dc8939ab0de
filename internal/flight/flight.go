// Package flight coalesces identical concurrent reads on top of singleflight.
package flight

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"
)

// Timeout bounds a shared flight once it is detached from its callers.
const Timeout = 30 * time.Second

// Do runs fn once for every caller that asks for key while it is in flight.
// fn gets a context that no single caller can cancel; each caller still stops
// waiting when its own ctx is done.
func Do[T any](ctx context.Context, g *singleflight.Group, key string, fn func(ctx context.Context) (T, error)) (T, error) {
	ch := g.DoChan(key, func() (any, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), Timeout)
		defer cancel()
		return fn(fctx)
	})

	var zero T
	select {
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
