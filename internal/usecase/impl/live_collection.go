package impl

import (
	"context"
	"log/slog"
	"sync"

	"market/internal/domain/entity"
	"market/internal/domain/lifecycle"
	"market/internal/domain/repository"
	"market/internal/errors"

	"go.uber.org/fx"
)

// LiveCollection keeps the latest snapshot of a feed in memory. At most one subscription is
// active; every snapshot replaces the held items wholesale.
type LiveCollection[T any] struct {
	name   string
	feed   repository.Feed[T]
	logger *slog.Logger

	mu         sync.RWMutex
	items      []T
	err        error
	sub        repository.Subscription
	generation uint64
}

// NewLiveCollection is the constructor for LiveCollection.
func NewLiveCollection[T any](name string, feed repository.Feed[T], logger *slog.Logger) *LiveCollection[T] {
	return &LiveCollection[T]{
		name:   name,
		feed:   feed,
		logger: logger,
	}
}

// Start subscribes to the feed, tearing down the current subscription first. Callbacks from a
// replaced subscription are dropped.
func (c *LiveCollection[T]) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.sub != nil {
		c.sub.Stop()
		c.sub = nil
	}
	c.generation++
	gen := c.generation
	c.mu.Unlock()

	sub, err := c.feed.Subscribe(ctx,
		func(items []T) { c.replace(gen, items) },
		func(err error) { c.fail(gen, err) },
	)
	if err != nil {
		c.fail(gen, err)

		return errors.Wrapf(err, "failed to subscribe to %s", c.name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// A concurrent Start or Stop won while we were subscribing.
	if gen != c.generation {
		sub.Stop()

		return nil
	}

	c.sub = sub
	c.logger.Debug("Live collection started", slog.String("collection", c.name))

	return nil
}

// Stop ends the subscription. The last snapshot stays readable.
func (c *LiveCollection[T]) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	if c.sub != nil {
		c.sub.Stop()
		c.sub = nil
		c.logger.Debug("Live collection stopped", slog.String("collection", c.name))
	}
}

// Snapshot returns a copy of the held items.
func (c *LiveCollection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)

	return out
}

// Err returns the last subscription error, cleared by the next snapshot.
func (c *LiveCollection[T]) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.err
}

// Running reports whether a subscription is attached.
func (c *LiveCollection[T]) Running() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.sub != nil
}

func (c *LiveCollection[T]) replace(gen uint64, items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return
	}

	c.items = items
	c.err = nil
}

func (c *LiveCollection[T]) fail(gen uint64, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return
	}

	c.err = err
	c.logger.Error("Live collection error", slog.String("collection", c.name), slog.Any("error", err))
}

// LiveCollectionsParams holds the feeds backing the live collections, injected by Fx
type LiveCollectionsParams struct {
	fx.In

	Lifecycle      fx.Lifecycle
	Offers         repository.Feed[*entity.Offer]
	Products       repository.Feed[*entity.Product]
	Users          repository.Feed[*entity.User]
	Authorizations repository.Feed[*entity.Authorization]
	Alerts         repository.Feed[*entity.Alert]
	News           repository.Feed[*entity.News]
	Logger         *slog.Logger
}

// LiveCollections holds one live collection per store.
type LiveCollections struct {
	Offers         *LiveCollection[*entity.Offer]
	Products       *LiveCollection[*entity.Product]
	Users          *LiveCollection[*entity.User]
	Authorizations *LiveCollection[*entity.Authorization]
	Alerts         *LiveCollection[*entity.Alert]
	News           *LiveCollection[*entity.News]
}

// NewLiveCollections builds the live collections and ties them to the application lifecycle.
func NewLiveCollections(params LiveCollectionsParams) *LiveCollections {
	lc := &LiveCollections{
		Offers:         NewLiveCollection("offers", params.Offers, params.Logger),
		Products:       NewLiveCollection("products", params.Products, params.Logger),
		Users:          NewLiveCollection("users", params.Users, params.Logger),
		Authorizations: NewLiveCollection("authorizations", params.Authorizations, params.Logger),
		Alerts:         NewLiveCollection("alerts", params.Alerts, params.Logger),
		News:           NewLiveCollection("news", params.News, params.Logger),
	}

	// Subscriptions outlive the start hook's context.
	listenCtx, cancel := context.WithCancel(context.Background())

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancelStart := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancelStart()

			done := make(chan error, 1)
			go func() { done <- lc.StartAll(listenCtx) }()

			select {
			case err := <-done:
				return err
			case <-ctx.Done():
				return errors.Wrap(ctx.Err(), "timed out starting live collections")
			}
		},
		OnStop: func(_ context.Context) error {
			lc.StopAll()
			cancel()

			return nil
		},
	})

	return lc
}

// StartAll starts every collection and stops them all again if one fails.
func (lc *LiveCollections) StartAll(ctx context.Context) error {
	starters := []func(context.Context) error{
		lc.Offers.Start,
		lc.Products.Start,
		lc.Users.Start,
		lc.Authorizations.Start,
		lc.Alerts.Start,
		lc.News.Start,
	}

	for _, start := range starters {
		if err := start(ctx); err != nil {
			lc.StopAll()

			return err
		}
	}

	return nil
}

// StopAll stops every collection.
func (lc *LiveCollections) StopAll() {
	lc.Offers.Stop()
	lc.Products.Stop()
	lc.Users.Stop()
	lc.Authorizations.Stop()
	lc.Alerts.Stop()
	lc.News.Stop()
}
