package usecase

import (
	"context"

	"market/internal/domain/entity"
)

// --- Input DTOs ---

// SubmitOfferInput defines the data a producer submits for a new offer.
type SubmitOfferInput struct {
	ProducerID  string
	WeekNumber  int
	Description string
	Products    []entity.OfferProduct
}

// UpdateOfferStatusInput defines a review decision. Allocations, when set, replace the stored ones.
type UpdateOfferStatusInput struct {
	Status              entity.OfferStatus
	Feedback            *string
	DeliveryAllocations entity.DeliveryAllocations
}

// OfferUsecase defines the offer lifecycle operations.
// Every mutation reports its outcome to the notifier; a nil error means success.
type OfferUsecase interface {
	// SubmitOffer creates an offer for the submission week. The status is always submitted.
	SubmitOffer(ctx context.Context, input *SubmitOfferInput) (*entity.Offer, error)

	// UpdateOffer merges a partial change and stamps lastModified.
	UpdateOffer(ctx context.Context, offerID string, update *entity.OfferUpdate) error

	// UpdateOfferStatus sets the status. Approvals and rejections also stamp reviewedAt.
	UpdateOfferStatus(ctx context.Context, offerID string, input *UpdateOfferStatusInput) error

	// UpdateDeliveryAllocations replaces the offer's delivery allocations.
	UpdateDeliveryAllocations(ctx context.Context, offerID string, allocations entity.DeliveryAllocations) error

	DeleteOffer(ctx context.Context, offerID string) error
	GetOffer(ctx context.Context, offerID string) (*entity.Offer, error)
	GetOffers(ctx context.Context, filter entity.OfferFilter) ([]*entity.Offer, error)

	// OfferQRCode renders a PNG label linking to the offer.
	OfferQRCode(ctx context.Context, offerID string) ([]byte, error)
	// ResolveQRCode returns the offer a scanned label points at.
	ResolveQRCode(ctx context.Context, data string) (*entity.Offer, error)
}
