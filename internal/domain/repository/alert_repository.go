package repository

import (
	"context"
	"time"

	"market/internal/domain/entity"
)

// AlertRepository persists alerts. Alerts are never deleted automatically.
type AlertRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Alert, error)
	// Find lists alerts matching filter, newest first.
	Find(ctx context.Context, filter entity.AlertFilter) ([]*entity.Alert, error)
	Create(ctx context.Context, alert *entity.Alert) error
	UpdateStatus(ctx context.Context, id string, status entity.AlertStatus, at time.Time) error
	Delete(ctx context.Context, id string) error
}
