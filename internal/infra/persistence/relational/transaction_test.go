package relational

import (
	"context"
	"testing"

	"market/internal/domain/entity"
	"market/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("commit", func(t *testing.T) {
		db := newTestDB(t)
		producer := seedUser(t, db, "p@example.com", entity.RoleProducer)

		err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
			return f.NewOfferRepository().Create(ctx, &entity.Offer{ProducerID: producer.ID, WeekNumber: 30, Status: entity.OfferStatusSubmitted})
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), countRows(t, db, "offers"))
	})

	t.Run("cascade delete inside one transaction", func(t *testing.T) {
		db := newTestDB(t)
		producer := seedUser(t, db, "p@example.com", entity.RoleProducer)
		tomatoes := seedProduct(t, db, "Tomatoes")
		require.NoError(t, NewAuthorizationRepository(db).Create(ctx, &entity.Authorization{UserID: producer.ID, ProductID: tomatoes.ID}))
		require.NoError(t, NewOfferRepository(db).Create(ctx, &entity.Offer{ProducerID: producer.ID, WeekNumber: 30, Status: entity.OfferStatusSubmitted}))

		err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
			offers, err := f.NewOfferRepository().Find(ctx, entity.OfferFilter{ProducerID: producer.ID})
			if err != nil {
				return err
			}
			for _, o := range offers {
				if err := f.NewOfferRepository().Delete(ctx, o.ID); err != nil {
					return err
				}
			}

			grants, err := f.NewAuthorizationRepository().FindByUser(ctx, producer.ID)
			if err != nil {
				return err
			}
			for _, g := range grants {
				if err := f.NewAuthorizationRepository().Delete(ctx, g); err != nil {
					return err
				}
			}

			return f.NewUserRepository().Delete(ctx, producer.ID)
		})
		require.NoError(t, err)
		assert.Zero(t, countRows(t, db, "users"))
		assert.Zero(t, countRows(t, db, "offers"))
		assert.Zero(t, countRows(t, db, "authorized_products"))
	})

	t.Run("rollback on error", func(t *testing.T) {
		db := newTestDB(t)
		producer := seedUser(t, db, "p@example.com", entity.RoleProducer)
		boom := errors.New("boom")

		err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
			if err := f.NewOfferRepository().Create(ctx, &entity.Offer{ProducerID: producer.ID, WeekNumber: 30, Status: entity.OfferStatusSubmitted}); err != nil {
				return err
			}

			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Zero(t, countRows(t, db, "offers"))
	})

	t.Run("rollback on panic", func(t *testing.T) {
		db := newTestDB(t)
		producer := seedUser(t, db, "p@example.com", entity.RoleProducer)

		assert.Panics(t, func() {
			_ = NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
				require.NoError(t, f.NewOfferRepository().Create(ctx, &entity.Offer{ProducerID: producer.ID, WeekNumber: 30, Status: entity.OfferStatusSubmitted}))

				panic("boom")
			})
		})
		assert.Zero(t, countRows(t, db, "offers"))
	})
}
