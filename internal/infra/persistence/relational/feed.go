package relational

import (
	"context"
	"log/slog"
	"reflect"
	"sync"
	"time"

	"market/config"
	"market/internal/domain/entity"
	"market/internal/domain/repository"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const defaultPollInterval = 5 * time.Second

// PollingFeed turns a list query into a repository.Feed. The query runs once on Subscribe and then
// every interval; a snapshot is delivered only when the result differs from the last one delivered.
type PollingFeed[T any] struct {
	fetch    func(ctx context.Context) ([]T, error)
	interval time.Duration
}

// NewPollingFeed is the constructor for PollingFeed. A non-positive interval uses the default.
func NewPollingFeed[T any](interval time.Duration, fetch func(ctx context.Context) ([]T, error)) *PollingFeed[T] {
	if interval <= 0 {
		interval = defaultPollInterval
	}

	return &PollingFeed[T]{fetch: fetch, interval: interval}
}

// Subscribe delivers the initial snapshot synchronously, then polls until the subscription is
// stopped or ctx is done. A failing initial query fails the subscription.
func (f *PollingFeed[T]) Subscribe(ctx context.Context, onSnapshot func([]T), onError func(error)) (repository.Subscription, error) {
	initial, err := f.fetch(ctx)
	if err != nil {
		return nil, err
	}

	onSnapshot(initial)

	pollCtx, cancel := context.WithCancel(ctx)
	sub := &pollingSubscription{cancel: cancel}

	go f.poll(pollCtx, initial, onSnapshot, onError)

	return sub, nil
}

func (f *PollingFeed[T]) poll(ctx context.Context, last []T, onSnapshot func([]T), onError func(error)) {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			next, err := f.fetch(ctx)
			if ctx.Err() != nil {
				return
			}

			if err != nil {
				if onError != nil {
					onError(err)
				}

				continue
			}

			if reflect.DeepEqual(last, next) {
				continue
			}

			last = next
			onSnapshot(next)
		}
	}
}

type pollingSubscription struct {
	once   sync.Once
	cancel context.CancelFunc
}

func (s *pollingSubscription) Stop() {
	s.once.Do(s.cancel)
}

// FeedParams defines the required parameters for the relational feeds.
type FeedParams struct {
	fx.In

	Config *config.Config
	DB     *gorm.DB
	Logger *slog.Logger
}

// Feeds holds one feed per live collection.
type Feeds struct {
	fx.Out

	Offers         repository.Feed[*entity.Offer]
	Products       repository.Feed[*entity.Product]
	Users          repository.Feed[*entity.User]
	Authorizations repository.Feed[*entity.Authorization]
	Alerts         repository.Feed[*entity.Alert]
	News           repository.Feed[*entity.News]
}

// NewFeeds builds polling feeds over repositories that read through the resolver's read sources.
// Without configured replicas the read clause resolves to the primary connection.
func NewFeeds(params FeedParams) Feeds {
	readDB := params.DB.Clauses(dbresolver.Read).Session(&gorm.Session{})

	interval := defaultPollInterval
	if params.Config.Store != nil && params.Config.Store.LivePollInterval > 0 {
		interval = params.Config.Store.LivePollInterval
	}

	params.Logger.Debug("Relational live feeds configured", slog.Duration("interval", interval))

	offers := NewOfferRepository(readDB)
	products := NewProductRepository(readDB)
	users := NewUserRepository(readDB)
	authorizations := NewAuthorizationRepository(readDB)
	alerts := NewAlertRepository(readDB)
	news := NewNewsRepository(readDB)

	findOffers := func(ctx context.Context) ([]*entity.Offer, error) {
		return offers.Find(ctx, entity.OfferFilter{})
	}
	findAlerts := func(ctx context.Context) ([]*entity.Alert, error) {
		return alerts.Find(ctx, entity.AlertFilter{})
	}

	return Feeds{
		Offers:         NewPollingFeed(interval, findOffers),
		Products:       NewPollingFeed(interval, products.FindAll),
		Users:          NewPollingFeed(interval, users.FindAll),
		Authorizations: NewPollingFeed(interval, authorizations.FindAll),
		Alerts:         NewPollingFeed(interval, findAlerts),
		News:           NewPollingFeed(interval, news.FindAll),
	}
}
