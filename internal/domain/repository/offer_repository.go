package repository

import (
	"context"

	"market/internal/domain/entity"
)

// OfferRepository persists offers together with their line items and daily quantities.
type OfferRepository interface {
	// Create stores the offer and everything it owns atomically and sets offer.ID.
	Create(ctx context.Context, offer *entity.Offer) error

	// FindByID returns domainerrors.ErrOfferNotFound when the offer is absent.
	FindByID(ctx context.Context, id string) (*entity.Offer, error)

	// Find lists offers matching filter, newest first. Offers without line items are included.
	Find(ctx context.Context, filter entity.OfferFilter) ([]*entity.Offer, error)

	// Update merges the non-nil fields of update. Collection fields replace stored values wholesale.
	Update(ctx context.Context, id string, update *entity.OfferUpdate) error

	// Delete removes the offer and everything it owns.
	Delete(ctx context.Context, id string) error
}
