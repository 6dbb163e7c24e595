//go:build integration

package document

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newEmulatorClient connects to the Firestore emulator. Each test uses its own project so
// collections start empty.
func newEmulatorClient(t *testing.T) *firestore.Client {
	t.Helper()

	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST is not set")
	}

	client, err := firestore.NewClient(context.Background(), "market-"+uuid.NewString()[:8])
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestEmulator_OfferLifecycle(t *testing.T) {
	client := newEmulatorClient(t)
	repo := NewOfferRepository(client)
	ctx := context.Background()

	offer := &entity.Offer{
		ProducerID: "p1",
		WeekNumber: 35,
		Status:     entity.OfferStatusSubmitted,
		Products: []entity.OfferProduct{{
			ProductID:       "tomatoes",
			Price:           decimal.RequireFromString("2.50"),
			DailyQuantities: entity.DailyQuantities{"Monday": decimal.NewFromInt(100), "Wednesday": decimal.NewFromInt(50)},
		}},
	}
	require.NoError(t, repo.Create(ctx, offer))
	require.NotEmpty(t, offer.ID)
	assert.False(t, offer.CreatedAt.IsZero())

	status := entity.OfferStatusRejected
	feedback := "prices too high"
	now := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, repo.Update(ctx, offer.ID, &entity.OfferUpdate{Status: &status, Feedback: &feedback, ReviewedAt: &now, LastModified: &now}))

	got, err := repo.FindByID(ctx, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OfferStatusRejected, got.Status)
	assert.Equal(t, feedback, got.Feedback)
	require.Len(t, got.Products, 1)
	assert.Len(t, got.Products[0].DailyQuantities, 2)

	rejected, err := repo.Find(ctx, entity.OfferFilter{ProducerID: "p1", Status: entity.OfferStatusRejected})
	require.NoError(t, err)
	assert.Len(t, rejected, 1)

	require.NoError(t, repo.Delete(ctx, offer.ID))
	_, err = repo.FindByID(ctx, offer.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOfferNotFound)

	assert.ErrorIs(t, repo.Update(ctx, offer.ID, &entity.OfferUpdate{Feedback: &feedback}), domainerrors.ErrOfferNotFound)
}

func TestEmulator_OfferFeed(t *testing.T) {
	client := newEmulatorClient(t)
	repo := NewOfferRepository(client)
	feeds := NewFeeds(client)
	ctx := context.Background()

	var (
		mu        sync.Mutex
		snapshots [][]*entity.Offer
	)

	sub, err := feeds.Offers.Subscribe(ctx, func(offers []*entity.Offer) {
		mu.Lock()
		defer mu.Unlock()
		snapshots = append(snapshots, offers)
	}, func(err error) { t.Errorf("listener error: %v", err) })
	require.NoError(t, err)
	defer sub.Stop()

	require.NoError(t, repo.Create(ctx, &entity.Offer{ProducerID: "p1", WeekNumber: 35, Status: entity.OfferStatusSubmitted}))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()

		return len(snapshots) >= 2 && len(snapshots[len(snapshots)-1]) == 1
	}, 5*time.Second, 20*time.Millisecond)
}

func TestEmulator_UserRepository(t *testing.T) {
	client := newEmulatorClient(t)
	repo := NewUserRepository(client)
	ctx := context.Background()

	user := &entity.User{ID: "uid-1", Email: "a@example.com", Role: entity.RoleProducer}
	require.NoError(t, repo.Create(ctx, user))

	err := repo.Create(ctx, &entity.User{Email: "a@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)

	user.Email = "changed@example.com"
	user.Name = "Ana"
	require.NoError(t, repo.Update(ctx, user))

	got, err := repo.FindByID(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, "a@example.com", got.Email)

	assert.ErrorIs(t, repo.Update(ctx, &entity.User{ID: "missing"}), domainerrors.ErrUserNotFound)
}
