package relational

import (
	"context"
	"testing"
	"time"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dq(pairs map[string]int64) entity.DailyQuantities {
	out := make(entity.DailyQuantities, len(pairs))
	for day, qty := range pairs {
		out[day] = decimal.NewFromInt(qty)
	}

	return out
}

func TestOfferRepository_Create_InsertsHeaderLineItemsAndDailyRows(t *testing.T) {
	db := newTestDB(t)
	producer := seedUser(t, db, "p1@example.com", entity.RoleProducer)
	tomatoes := seedProduct(t, db, "Tomatoes", "Cherry")
	peppers := seedProduct(t, db, "Peppers")
	repo := NewOfferRepository(db)

	offer := &entity.Offer{
		ProducerID: producer.ID,
		WeekNumber: 35,
		Status:     entity.OfferStatusSubmitted,
		Products: []entity.OfferProduct{
			{
				ProductID:       tomatoes.ID,
				Variety:         "Cherry",
				Price:           decimal.RequireFromString("2.50"),
				TotalQuantity:   decimal.NewFromInt(150),
				DailyQuantities: dq(map[string]int64{"Monday": 100, "Wednesday": 50}),
			},
			{
				ProductID:       peppers.ID,
				Price:           decimal.RequireFromString("1.20"),
				TotalQuantity:   decimal.NewFromInt(30),
				DailyQuantities: dq(map[string]int64{"Sunday": 10, "Tuesday": 10, "Friday": 10}),
			},
		},
	}

	require.NoError(t, repo.Create(context.Background(), offer))
	assert.NotEmpty(t, offer.ID)

	// 1 header + 2 line items + (2 + 3) daily rows.
	assert.Equal(t, int64(1), countRows(t, db, "offers"))
	assert.Equal(t, int64(2), countRows(t, db, "offer_products"))
	assert.Equal(t, int64(5), countRows(t, db, "daily_quantities"))
}

func TestOfferRepository_Create_RollsBackOnNestedFailure(t *testing.T) {
	db := newTestDB(t)
	producer := seedUser(t, db, "p1@example.com", entity.RoleProducer)
	tomatoes := seedProduct(t, db, "Tomatoes")
	repo := NewOfferRepository(db)

	offer := &entity.Offer{
		ProducerID: producer.ID,
		WeekNumber: 35,
		Status:     entity.OfferStatusSubmitted,
		Products: []entity.OfferProduct{
			{
				ProductID:       tomatoes.ID,
				Price:           decimal.NewFromInt(2),
				DailyQuantities: dq(map[string]int64{"Monday": 1}),
			},
			{
				ProductID:       "no-such-product",
				Price:           decimal.NewFromInt(2),
				DailyQuantities: dq(map[string]int64{"Tuesday": 1}),
			},
		},
	}

	err := repo.Create(context.Background(), offer)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	assert.Zero(t, countRows(t, db, "offers"))
	assert.Zero(t, countRows(t, db, "offer_products"))
	assert.Zero(t, countRows(t, db, "daily_quantities"))
}

func TestOfferRepository_Find_WeekThirtyFiveTomatoes(t *testing.T) {
	db := newTestDB(t)
	producer := seedUser(t, db, "p1@example.com", entity.RoleProducer)
	other := seedUser(t, db, "p2@example.com", entity.RoleProducer)
	tomatoes := seedProduct(t, db, "Tomatoes")
	repo := NewOfferRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Offer{
		ProducerID: producer.ID,
		WeekNumber: 35,
		Status:     entity.OfferStatusSubmitted,
		Products: []entity.OfferProduct{{
			ProductID:       tomatoes.ID,
			Price:           decimal.RequireFromString("2.50"),
			TotalQuantity:   decimal.NewFromInt(150),
			DailyQuantities: dq(map[string]int64{"Monday": 100, "Wednesday": 50}),
		}},
	}))
	require.NoError(t, repo.Create(ctx, &entity.Offer{
		ProducerID: other.ID,
		WeekNumber: 35,
		Status:     entity.OfferStatusSubmitted,
	}))

	offers, err := repo.Find(ctx, entity.OfferFilter{ProducerID: producer.ID})
	require.NoError(t, err)
	require.Len(t, offers, 1)

	got := offers[0]
	assert.Equal(t, 35, got.WeekNumber)
	assert.Equal(t, producer.CompanyName, got.ProducerName)
	require.Len(t, got.Products, 1)

	item := got.Products[0]
	assert.Equal(t, "Tomatoes", item.ProductName)
	assert.True(t, item.Price.Equal(decimal.RequireFromString("2.50")), "price %s", item.Price)
	require.Len(t, item.DailyQuantities, 2)
	assert.True(t, item.DailyQuantities["Monday"].Equal(decimal.NewFromInt(100)))
	assert.True(t, item.DailyQuantities["Wednesday"].Equal(decimal.NewFromInt(50)))
	assert.NotContains(t, item.DailyQuantities, "Tuesday")
}

func TestOfferRepository_Find_FiltersAndOrdersNewestFirst(t *testing.T) {
	db := newTestDB(t)
	producer := seedUser(t, db, "p1@example.com", entity.RoleProducer)
	repo := NewOfferRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	statuses := []entity.OfferStatus{
		entity.OfferStatusApproved,
		entity.OfferStatusSubmitted,
		entity.OfferStatusApproved,
	}

	ids := make([]string, len(statuses))
	for i, status := range statuses {
		offer := &entity.Offer{
			ProducerID: producer.ID,
			WeekNumber: 35,
			Status:     status,
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, repo.Create(ctx, offer))
		ids[i] = offer.ID
	}

	approved, err := repo.Find(ctx, entity.OfferFilter{Status: entity.OfferStatusApproved})
	require.NoError(t, err)
	require.Len(t, approved, 2)
	assert.Equal(t, ids[2], approved[0].ID)
	assert.Equal(t, ids[0], approved[1].ID)

	all, err := repo.Find(ctx, entity.OfferFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, ids[2], all[0].ID)
	assert.Equal(t, ids[1], all[1].ID)
	assert.Equal(t, ids[0], all[2].ID)

	none, err := repo.Find(ctx, entity.OfferFilter{ProducerID: producer.ID, Status: entity.OfferStatusRejected})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOfferRepository_Find_KeepsOffersWithoutLineItems(t *testing.T) {
	db := newTestDB(t)
	producer := seedUser(t, db, "p1@example.com", entity.RoleProducer)
	repo := NewOfferRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Offer{ProducerID: producer.ID, WeekNumber: 40, Status: entity.OfferStatusSubmitted}))

	offers, err := repo.Find(ctx, entity.OfferFilter{})
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.NotNil(t, offers[0].Products)
	assert.Empty(t, offers[0].Products)
}

func TestOfferRepository_Update(t *testing.T) {
	db := newTestDB(t)
	producer := seedUser(t, db, "p1@example.com", entity.RoleProducer)
	tomatoes := seedProduct(t, db, "Tomatoes")
	repo := NewOfferRepository(db)
	ctx := context.Background()

	offer := &entity.Offer{
		ProducerID: producer.ID,
		WeekNumber: 35,
		Status:     entity.OfferStatusSubmitted,
		Products: []entity.OfferProduct{{
			ProductID:       tomatoes.ID,
			Price:           decimal.NewFromInt(2),
			DailyQuantities: dq(map[string]int64{"Monday": 10, "Tuesday": 20}),
		}},
	}
	require.NoError(t, repo.Create(ctx, offer))

	t.Run("status and feedback", func(t *testing.T) {
		now := time.Date(2026, 8, 3, 12, 0, 0, 0, time.UTC)
		status := entity.OfferStatusApproved
		feedback := "looks good"

		require.NoError(t, repo.Update(ctx, offer.ID, &entity.OfferUpdate{
			Status:       &status,
			Feedback:     &feedback,
			ReviewedAt:   &now,
			LastModified: &now,
		}))

		got, err := repo.FindByID(ctx, offer.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.OfferStatusApproved, got.Status)
		assert.Equal(t, "looks good", got.Feedback)
		require.NotNil(t, got.ReviewedAt)
		assert.True(t, got.ReviewedAt.Equal(now))
		require.Len(t, got.Products, 1, "line items are untouched without a products update")
	})

	t.Run("products and allocations replaced wholesale", func(t *testing.T) {
		allocations := entity.DeliveryAllocations{
			"store-1": dq(map[string]int64{"Monday": 5}),
		}

		require.NoError(t, repo.Update(ctx, offer.ID, &entity.OfferUpdate{
			Products: []entity.OfferProduct{{
				ProductID:       tomatoes.ID,
				Price:           decimal.NewFromInt(3),
				DailyQuantities: dq(map[string]int64{"Friday": 7}),
			}},
			DeliveryAllocations: allocations,
		}))

		got, err := repo.FindByID(ctx, offer.ID)
		require.NoError(t, err)
		require.Len(t, got.Products, 1)
		assert.Len(t, got.Products[0].DailyQuantities, 1)
		assert.True(t, got.Products[0].DailyQuantities["Friday"].Equal(decimal.NewFromInt(7)))
		require.Contains(t, got.DeliveryAllocations, "store-1")
		assert.True(t, got.DeliveryAllocations["store-1"]["Monday"].Equal(decimal.NewFromInt(5)))
		assert.Equal(t, int64(1), countRows(t, db, "daily_quantities"))
	})

	t.Run("missing offer", func(t *testing.T) {
		description := "x"
		err := repo.Update(ctx, "missing", &entity.OfferUpdate{Description: &description})
		assert.ErrorIs(t, err, domainerrors.ErrOfferNotFound)
	})
}

func TestOfferRepository_Delete_RemovesOwnedRows(t *testing.T) {
	db := newTestDB(t)
	producer := seedUser(t, db, "p1@example.com", entity.RoleProducer)
	tomatoes := seedProduct(t, db, "Tomatoes")
	repo := NewOfferRepository(db)
	ctx := context.Background()

	offer := &entity.Offer{
		ProducerID: producer.ID,
		WeekNumber: 35,
		Status:     entity.OfferStatusSubmitted,
		Products: []entity.OfferProduct{{
			ProductID:       tomatoes.ID,
			Price:           decimal.NewFromInt(2),
			DailyQuantities: dq(map[string]int64{"Monday": 10}),
		}},
	}
	require.NoError(t, repo.Create(ctx, offer))

	require.NoError(t, repo.Delete(ctx, offer.ID))

	_, err := repo.FindByID(ctx, offer.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOfferNotFound)
	assert.Zero(t, countRows(t, db, "offer_products"))
	assert.Zero(t, countRows(t, db, "daily_quantities"))

	// Deleting again is not an error.
	assert.NoError(t, repo.Delete(ctx, offer.ID))
}
