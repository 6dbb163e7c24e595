package repository

import (
	"context"

	"market/internal/domain/entity"
)

// AuthorizationRepository persists producer to product grants.
type AuthorizationRepository interface {
	// Find returns every grant for the pair. Callers treat more than one as a duplicate.
	Find(ctx context.Context, userID, productID string) ([]*entity.Authorization, error)

	// FindByUser lists the grants held by a producer.
	FindByUser(ctx context.Context, userID string) ([]*entity.Authorization, error)

	// FindAll lists every grant.
	FindAll(ctx context.Context) ([]*entity.Authorization, error)

	// Create stores a new grant and sets its ID.
	Create(ctx context.Context, authorization *entity.Authorization) error

	// Delete removes a single grant. Deleting a missing grant is not an error.
	Delete(ctx context.Context, authorization *entity.Authorization) error
}
