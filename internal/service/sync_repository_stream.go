package service

import "context"

// ListStream runs the same two-phase read as List and returns its deliveries
// as a channel. The channel yields the cached records first, then either the
// refreshed records or a failure, and is closed afterwards. It is never
// reused; call ListStream again for another refresh.
//
// Results bypass the dispatcher: the receiver decides where to consume them.
func (r *SyncRepository[T]) ListStream(ctx context.Context) <-chan Result[[]T] {
	out := make(chan Result[[]T], 2)

	r.spawn(ctx, func(ctx context.Context) {
		defer close(out)
		r.list(ctx, func(res Result[[]T]) { out <- res })
	})

	return out
}
