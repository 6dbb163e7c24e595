package usecase

import (
	"context"

	"market/internal/domain/entity"
)

// AuthorizationUsecase manages which products a producer may offer.
type AuthorizationUsecase interface {
	// AddAuthorization grants productID to userID. Granting an existing pair is a no-op.
	AddAuthorization(ctx context.Context, userID, productID string) error

	// RemoveAuthorization revokes every grant for the pair. Revoking a missing grant is a no-op.
	RemoveAuthorization(ctx context.Context, userID, productID string) error

	ListAuthorizations(ctx context.Context, userID string) ([]*entity.Authorization, error)

	// AuthorizedProducts returns the catalog entries userID is authorized for, by name.
	AuthorizedProducts(ctx context.Context, userID string) ([]*entity.Product, error)
}
