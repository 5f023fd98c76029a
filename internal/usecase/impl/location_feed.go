package impl

import (
	"context"
	"log/slog"

	"georemind/internal/domain/service"
)

// updateHandler evaluates one location update delivered on the given subscription generation.
type updateHandler func(ctx context.Context, generation uint64, update service.LocationUpdate)

// locationFeed drains one provider subscription on a single consumer goroutine.
// Updates are handled strictly one at a time in arrival order.
type locationFeed struct {
	sub        *service.Subscription
	generation uint64
	handle     updateHandler
	logger     *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

func newLocationFeed(sub *service.Subscription, generation uint64, handle updateHandler, logger *slog.Logger) *locationFeed {
	ctx, cancel := context.WithCancel(context.Background())

	return &locationFeed{
		sub:        sub,
		generation: generation,
		handle:     handle,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
		done:       make(chan struct{}),
	}
}

// run starts the consumer goroutine.
func (f *locationFeed) run() {
	go func() {
		defer close(f.done)

		f.logger.Debug("[Feed] Consumer started",
			slog.String("subscription_id", f.sub.ID),
			slog.Uint64("generation", f.generation),
		)

		for {
			select {
			case <-f.ctx.Done():
				return
			case update, ok := <-f.sub.Updates:
				if !ok {
					f.logger.Debug("[Feed] Subscription closed", slog.String("subscription_id", f.sub.ID))

					return
				}
				f.handle(f.ctx, f.generation, update)
			}
		}
	}()
}

// close stops the consumer and releases the provider subscription. It does not
// wait for an in-flight update; the engine drops its results by generation.
func (f *locationFeed) close(ctx context.Context, provider service.LocationProvider) error {
	f.cancel()

	return provider.Unsubscribe(ctx, f.sub)
}

// stopped is closed once the consumer goroutine has returned.
func (f *locationFeed) stopped() <-chan struct{} {
	return f.done
}
