package relational

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"market/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshotRecorder[T any] struct {
	mu        sync.Mutex
	snapshots [][]T
	errs      []error
}

func (r *snapshotRecorder[T]) onSnapshot(items []T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots = append(r.snapshots, items)
}

func (r *snapshotRecorder[T]) onError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

func (r *snapshotRecorder[T]) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.snapshots)
}

func (r *snapshotRecorder[T]) last() []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.snapshots[len(r.snapshots)-1]
}

func TestPollingFeed_DeliversOnlyChanges(t *testing.T) {
	var version atomic.Int32
	feed := NewPollingFeed(10*time.Millisecond, func(context.Context) ([]int32, error) {
		return []int32{version.Load()}, nil
	})

	rec := &snapshotRecorder[int32]{}
	sub, err := feed.Subscribe(context.Background(), rec.onSnapshot, rec.onError)
	require.NoError(t, err)
	defer sub.Stop()

	require.Equal(t, 1, rec.count(), "initial snapshot is delivered synchronously")

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, rec.count(), "unchanged results are not redelivered")

	version.Store(1)
	require.Eventually(t, func() bool { return rec.count() == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []int32{1}, rec.last())

	sub.Stop()
	sub.Stop()
	version.Store(2)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 2, rec.count(), "no snapshots after Stop")
}

func TestPollingFeed_ErrorsKeepSubscriptionAlive(t *testing.T) {
	var calls atomic.Int32
	feed := NewPollingFeed(10*time.Millisecond, func(context.Context) ([]string, error) {
		if calls.Add(1) == 2 {
			return nil, errors.New("temporary")
		}

		return []string{"a", string(rune('a' + calls.Load()))}, nil
	})

	rec := &snapshotRecorder[string]{}
	sub, err := feed.Subscribe(context.Background(), rec.onSnapshot, rec.onError)
	require.NoError(t, err)
	defer sub.Stop()

	require.Eventually(t, func() bool { return rec.count() >= 2 }, time.Second, 5*time.Millisecond)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.Len(t, rec.errs, 1)
	assert.EqualError(t, rec.errs[0], "temporary")
}

func TestPollingFeed_InitialFailure(t *testing.T) {
	feed := NewPollingFeed(time.Second, func(context.Context) ([]string, error) {
		return nil, errors.New("unavailable")
	})

	sub, err := feed.Subscribe(context.Background(), func([]string) {}, nil)
	assert.Error(t, err)
	assert.Nil(t, sub)
}

func TestPollingFeed_OverOfferRepository(t *testing.T) {
	db := newTestDB(t)
	producer := seedUser(t, db, "p@example.com", entity.RoleProducer)
	repo := NewOfferRepository(db)
	ctx := context.Background()

	feed := NewPollingFeed(10*time.Millisecond, func(ctx context.Context) ([]*entity.Offer, error) {
		return repo.Find(ctx, entity.OfferFilter{})
	})

	rec := &snapshotRecorder[*entity.Offer]{}
	sub, err := feed.Subscribe(ctx, rec.onSnapshot, rec.onError)
	require.NoError(t, err)
	defer sub.Stop()
	assert.Empty(t, rec.last())

	require.NoError(t, repo.Create(ctx, &entity.Offer{ProducerID: producer.ID, WeekNumber: 30, Status: entity.OfferStatusSubmitted}))

	require.Eventually(t, func() bool { return rec.count() == 2 }, time.Second, 5*time.Millisecond)
	assert.Len(t, rec.last(), 1)
}
