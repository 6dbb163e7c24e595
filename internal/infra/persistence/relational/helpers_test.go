package relational

import (
	"context"
	"testing"
	"time"

	"market/internal/domain/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := OpenSQLite("file::memory:")
	require.NoError(t, err)

	db = configure(db, logger.Discard)
	require.NoError(t, Migrate(context.Background(), db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string, role entity.Role) *entity.User {
	t.Helper()

	user := &entity.User{
		Email:       email,
		Role:        role,
		Name:        "Test " + string(role),
		CompanyName: "Farm " + email,
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedProduct(t *testing.T, db *gorm.DB, name string, varieties ...string) *entity.Product {
	t.Helper()

	product := &entity.Product{
		ID:        entity.ProductSlug(name),
		Name:      name,
		Category:  "vegetables",
		Unit:      "kg",
		Varieties: varieties,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, NewProductRepository(db).Create(context.Background(), product))

	return product
}

func countRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)

	return n
}
