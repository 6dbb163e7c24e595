package repository

import (
	"context"

	"market/internal/domain/entity"
)

// ProductRepository persists the product catalog.
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Product, error)
	// FindAll lists products ordered by name.
	FindAll(ctx context.Context) ([]*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
