package impl

import (
	"context"
	"testing"

	"market/internal/domain/entity"
	"market/internal/domain/repository"
	"market/internal/errors"
	mockRepo "market/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// captureFeed makes feed deliver snapshots through the returned callbacks, one pair per Subscribe.
func captureFeed(
	feed *mockRepo.MockFeed[*entity.Offer],
	initial []*entity.Offer,
	sub *mockRepo.MockSubscription,
	snapshots *[]func([]*entity.Offer),
	failures *[]func(error),
) {
	feed.EXPECT().
		Subscribe(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, onSnapshot func([]*entity.Offer), onError func(error)) (repository.Subscription, error) {
			*snapshots = append(*snapshots, onSnapshot)
			*failures = append(*failures, onError)
			onSnapshot(initial)

			return sub, nil
		}).
		Once()
}

func TestLiveCollection_SnapshotReplacesItems(t *testing.T) {
	feed := mockRepo.NewMockFeed[*entity.Offer](t)
	sub := mockRepo.NewMockSubscription(t)

	var snapshots []func([]*entity.Offer)
	var failures []func(error)
	captureFeed(feed, []*entity.Offer{{ID: "offer-1"}}, sub, &snapshots, &failures)

	live := NewLiveCollection[*entity.Offer]("offers", feed, newDiscardLogger())
	require.NoError(t, live.Start(context.Background()))
	assert.True(t, live.Running())
	assert.Equal(t, []*entity.Offer{{ID: "offer-1"}}, live.Snapshot())

	snapshots[0]([]*entity.Offer{{ID: "offer-3"}, {ID: "offer-2"}})
	assert.Equal(t, []*entity.Offer{{ID: "offer-3"}, {ID: "offer-2"}}, live.Snapshot())

	// Snapshot hands out a copy.
	held := live.Snapshot()
	held[0] = nil
	assert.NotNil(t, live.Snapshot()[0])

	sub.EXPECT().Stop().Return().Once()
	live.Stop()
	assert.False(t, live.Running())
	assert.Len(t, live.Snapshot(), 2, "the last snapshot stays readable")
}

func TestLiveCollection_RestartDropsPreviousSubscription(t *testing.T) {
	feed := mockRepo.NewMockFeed[*entity.Offer](t)
	first := mockRepo.NewMockSubscription(t)
	second := mockRepo.NewMockSubscription(t)

	var snapshots []func([]*entity.Offer)
	var failures []func(error)
	captureFeed(feed, []*entity.Offer{{ID: "a"}}, first, &snapshots, &failures)

	live := NewLiveCollection[*entity.Offer]("offers", feed, newDiscardLogger())
	require.NoError(t, live.Start(context.Background()))

	first.EXPECT().Stop().Return().Once()
	captureFeed(feed, []*entity.Offer{{ID: "b"}}, second, &snapshots, &failures)
	require.NoError(t, live.Start(context.Background()))

	// A late callback from the replaced subscription is ignored.
	snapshots[0]([]*entity.Offer{{ID: "stale"}})
	failures[0](errors.New("stale listener failed"))

	assert.Equal(t, []*entity.Offer{{ID: "b"}}, live.Snapshot())
	assert.NoError(t, live.Err())

	second.EXPECT().Stop().Return().Once()
	live.Stop()
}

func TestLiveCollection_ErrorsAreKeptUntilNextSnapshot(t *testing.T) {
	feed := mockRepo.NewMockFeed[*entity.Offer](t)
	sub := mockRepo.NewMockSubscription(t)

	var snapshots []func([]*entity.Offer)
	var failures []func(error)
	captureFeed(feed, nil, sub, &snapshots, &failures)

	live := NewLiveCollection[*entity.Offer]("offers", feed, newDiscardLogger())
	require.NoError(t, live.Start(context.Background()))

	failures[0](errors.New("permission denied"))
	require.Error(t, live.Err())

	snapshots[0]([]*entity.Offer{{ID: "offer-1"}})
	assert.NoError(t, live.Err())
}

func TestLiveCollection_SubscribeFailure(t *testing.T) {
	feed := mockRepo.NewMockFeed[*entity.Offer](t)
	feed.EXPECT().Subscribe(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("unavailable"))

	live := NewLiveCollection[*entity.Offer]("offers", feed, newDiscardLogger())
	err := live.Start(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "offers")
	assert.False(t, live.Running())
	assert.Error(t, live.Err())
}
