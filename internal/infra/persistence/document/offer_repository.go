package document

import (
	"context"
	"time"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"

	"cloud.google.com/go/firestore"
)

// offerRepository implements repository.OfferRepository with one document per offer.
type offerRepository struct {
	client *firestore.Client
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(client *firestore.Client) repository.OfferRepository {
	return &offerRepository{client: client}
}

func (repo *offerRepository) collection() *firestore.CollectionRef {
	return repo.client.Collection(offersCollection)
}

// Create writes the whole offer as one document. A zero CreatedAt is stamped with the current time.
func (repo *offerRepository) Create(ctx context.Context, offer *entity.Offer) error {
	if offer.CreatedAt.IsZero() {
		offer.CreatedAt = time.Now().UTC()
	}

	ref := repo.collection().NewDoc()
	if offer.ID != "" {
		ref = repo.collection().Doc(offer.ID)
	}

	if _, err := ref.Create(ctx, fromOfferDomain(offer)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create offer")
	}

	offer.ID = ref.ID

	return nil
}

func (repo *offerRepository) FindByID(ctx context.Context, id string) (*entity.Offer, error) {
	snap, err := repo.collection().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, domainerrors.ErrOfferNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find offer by id")
	}

	return decodeOffer(snap)
}

// Find lists offers newest first. Filters are ANDed.
func (repo *offerRepository) Find(ctx context.Context, filter entity.OfferFilter) ([]*entity.Offer, error) {
	query := repo.collection().Query
	if filter.ProducerID != "" {
		query = query.Where("producerId", "==", filter.ProducerID)
	}
	if filter.Status != "" {
		query = query.Where("status", "==", string(filter.Status))
	}

	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list offers")
	}

	offers, err := decodeAll(snaps, decodeOffer)
	if err != nil {
		return nil, err
	}

	sortOffersNewestFirst(offers)

	return offers, nil
}

// Update merges the non-nil top-level fields. Nested maps and the product list are replaced, not merged.
func (repo *offerRepository) Update(ctx context.Context, id string, update *entity.OfferUpdate) error {
	if update.IsEmpty() {
		return nil
	}

	var updates []firestore.Update
	if update.WeekNumber != nil {
		updates = append(updates, firestore.Update{Path: "weekNumber", Value: *update.WeekNumber})
	}
	if update.Description != nil {
		updates = append(updates, firestore.Update{Path: "description", Value: *update.Description})
	}
	if update.Status != nil {
		updates = append(updates, firestore.Update{Path: "status", Value: string(*update.Status)})
	}
	if update.Feedback != nil {
		updates = append(updates, firestore.Update{Path: "feedback", Value: *update.Feedback})
	}
	if update.Products != nil {
		updates = append(updates, firestore.Update{Path: "products", Value: fromOfferProductsDomain(update.Products)})
	}
	if update.DeliveryAllocations != nil {
		updates = append(updates, firestore.Update{Path: "deliveryAllocations", Value: fromAllocationsDomain(update.DeliveryAllocations)})
	}
	if update.ReviewedAt != nil {
		updates = append(updates, firestore.Update{Path: "reviewedAt", Value: *update.ReviewedAt})
	}
	if update.LastModified != nil {
		updates = append(updates, firestore.Update{Path: "lastModified", Value: *update.LastModified})
	}

	if _, err := repo.collection().Doc(id).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return domainerrors.ErrOfferNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update offer")
	}

	return nil
}

// Delete removes the single offer document; its line items go with it.
func (repo *offerRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.collection().Doc(id).Delete(ctx); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete offer")
	}

	return nil
}

func decodeOffer(snap *firestore.DocumentSnapshot) (*entity.Offer, error) {
	var d offerDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode offer "+snap.Ref.ID)
	}

	return toOfferDomain(snap.Ref.ID, &d), nil
}

// decodeAll decodes every snapshot with decode, stopping at the first failure.
func decodeAll[T any](snaps []*firestore.DocumentSnapshot, decode func(*firestore.DocumentSnapshot) (T, error)) ([]T, error) {
	out := make([]T, 0, len(snaps))
	for _, snap := range snaps {
		item, err := decode(snap)
		if err != nil {
			return nil, err
		}

		out = append(out, item)
	}

	return out, nil
}
