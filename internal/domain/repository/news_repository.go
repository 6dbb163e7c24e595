package repository

import (
	"context"
	"time"

	"market/internal/domain/entity"
)

// NewsRepository persists announcements.
type NewsRepository interface {
	FindByID(ctx context.Context, id string) (*entity.News, error)
	// FindAll lists news items, newest first.
	FindAll(ctx context.Context) ([]*entity.News, error)
	Create(ctx context.Context, news *entity.News) error
	Update(ctx context.Context, id string, update *entity.NewsUpdate, at time.Time) error
	Delete(ctx context.Context, id string) error
}
