package usecase

import (
	"context"

	"market/internal/domain/entity"
)

// --- Input DTOs ---

// ProductInput defines the editable catalog fields of a product.
type ProductInput struct {
	Name      string
	Category  string
	Unit      string
	BoxSize   string
	Varieties []string
}

// NewsInput defines a new announcement. Active defaults to true when nil.
type NewsInput struct {
	Title     string
	Content   string
	Active    *bool
	CreatedBy string
}

// ProductUsecase manages the product catalog.
type ProductUsecase interface {
	// AddProduct stores a product whose id is the slug of its name.
	AddProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, productID string, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
}

// NewsUsecase manages announcements.
type NewsUsecase interface {
	AddNews(ctx context.Context, input *NewsInput) (*entity.News, error)
	UpdateNews(ctx context.Context, newsID string, update *entity.NewsUpdate) error
	DeleteNews(ctx context.Context, newsID string) error
	ListNews(ctx context.Context) ([]*entity.News, error)
}
