package document

import (
	"context"
	"sync"

	"market/internal/domain/entity"
	"market/internal/domain/repository"
	"market/internal/errors"

	"cloud.google.com/go/firestore"
	"go.uber.org/fx"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// snapshotFeed delivers the full result of a query every time Firestore reports a change.
type snapshotFeed[T any] struct {
	query  firestore.Query
	decode func(*firestore.DocumentSnapshot) (T, error)
	order  func([]T)
}

// Subscribe waits for the first snapshot, delivers it, then listens in the background. Firestore
// ends a listener after a stream error; the error is reported once and no further snapshots follow.
func (f *snapshotFeed[T]) Subscribe(ctx context.Context, onSnapshot func([]T), onError func(error)) (repository.Subscription, error) {
	listenCtx, cancel := context.WithCancel(ctx)
	it := f.query.Snapshots(listenCtx)

	sub := &listenerSubscription{stop: func() {
		it.Stop()
		cancel()
	}}

	first, err := f.next(it)
	if err != nil {
		sub.Stop()

		return nil, err
	}

	onSnapshot(first)

	go func() {
		for {
			items, err := f.next(it)
			if err != nil {
				if listenCtx.Err() == nil && !errors.Is(err, iterator.Done) && status.Code(err) != codes.Canceled && onError != nil {
					onError(err)
				}

				return
			}

			onSnapshot(items)
		}
	}()

	return sub, nil
}

func (f *snapshotFeed[T]) next(it *firestore.QuerySnapshotIterator) ([]T, error) {
	qs, err := it.Next()
	if err != nil {
		return nil, err
	}

	snaps, err := qs.Documents.GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read snapshot documents")
	}

	items, err := decodeAll(snaps, f.decode)
	if err != nil {
		return nil, err
	}

	if f.order != nil {
		f.order(items)
	}

	return items, nil
}

type listenerSubscription struct {
	once sync.Once
	stop func()
}

func (s *listenerSubscription) Stop() {
	s.once.Do(s.stop)
}

// Feeds holds one snapshot feed per live collection.
type Feeds struct {
	fx.Out

	Offers         repository.Feed[*entity.Offer]
	Products       repository.Feed[*entity.Product]
	Users          repository.Feed[*entity.User]
	Authorizations repository.Feed[*entity.Authorization]
	Alerts         repository.Feed[*entity.Alert]
	News           repository.Feed[*entity.News]
}

// NewFeeds builds the snapshot feeds. Offers are ordered newest first by timestamp, products by name.
func NewFeeds(client *firestore.Client) Feeds {
	return Feeds{
		Offers: &snapshotFeed[*entity.Offer]{
			query:  client.Collection(offersCollection).OrderBy("timestamp", firestore.Desc),
			decode: decodeOffer,
		},
		Products: &snapshotFeed[*entity.Product]{
			query:  client.Collection(productsCollection).OrderBy("name", firestore.Asc),
			decode: decodeProduct,
		},
		Users: &snapshotFeed[*entity.User]{
			query:  client.Collection(usersCollection).Query,
			decode: decodeUser,
		},
		Authorizations: &snapshotFeed[*entity.Authorization]{
			query:  client.Collection(authorizationsCollection).Query,
			decode: decodeAuthorization,
		},
		Alerts: &snapshotFeed[*entity.Alert]{
			query:  client.Collection(alertsCollection).Query,
			decode: decodeAlert,
			order:  sortAlertsNewestFirst,
		},
		News: &snapshotFeed[*entity.News]{
			query:  client.Collection(newsCollection).OrderBy("timestamp", firestore.Desc),
			decode: decodeNews,
		},
	}
}
