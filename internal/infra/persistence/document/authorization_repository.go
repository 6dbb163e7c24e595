package document

import (
	"context"
	"time"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"

	"cloud.google.com/go/firestore"
)

// authorizationRepository implements repository.AuthorizationRepository with one document per grant.
// Nothing prevents duplicate pairs at the store level.
type authorizationRepository struct {
	client *firestore.Client
}

// NewAuthorizationRepository is the constructor for authorizationRepository.
func NewAuthorizationRepository(client *firestore.Client) repository.AuthorizationRepository {
	return &authorizationRepository{client: client}
}

func (repo *authorizationRepository) collection() *firestore.CollectionRef {
	return repo.client.Collection(authorizationsCollection)
}

func (repo *authorizationRepository) Find(ctx context.Context, userID, productID string) ([]*entity.Authorization, error) {
	return repo.findMany(ctx, repo.collection().
		Where("userId", "==", userID).
		Where("productId", "==", productID))
}

func (repo *authorizationRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Authorization, error) {
	return repo.findMany(ctx, repo.collection().Where("userId", "==", userID))
}

func (repo *authorizationRepository) FindAll(ctx context.Context) ([]*entity.Authorization, error) {
	return repo.findMany(ctx, repo.collection().Query)
}

func (repo *authorizationRepository) findMany(ctx context.Context, query firestore.Query) ([]*entity.Authorization, error) {
	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list authorizations")
	}

	return decodeAll(snaps, decodeAuthorization)
}

func (repo *authorizationRepository) Create(ctx context.Context, authorization *entity.Authorization) error {
	if authorization.AuthorizedAt.IsZero() {
		authorization.AuthorizedAt = time.Now().UTC()
	}

	ref, _, err := repo.collection().Add(ctx, &authorizationDoc{
		UserID:       authorization.UserID,
		ProductID:    authorization.ProductID,
		AuthorizedAt: authorization.AuthorizedAt,
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create authorization")
	}

	authorization.ID = ref.ID

	return nil
}

func (repo *authorizationRepository) Delete(ctx context.Context, authorization *entity.Authorization) error {
	if _, err := repo.collection().Doc(authorization.ID).Delete(ctx); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete authorization")
	}

	return nil
}

func decodeAuthorization(snap *firestore.DocumentSnapshot) (*entity.Authorization, error) {
	var d authorizationDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode authorization "+snap.Ref.ID)
	}

	return toAuthorizationDomain(snap.Ref.ID, &d), nil
}
