package document

import (
	"context"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"

	"cloud.google.com/go/firestore"
)

// productRepository implements repository.ProductRepository. The document ID is the product slug.
type productRepository struct {
	client *firestore.Client
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(client *firestore.Client) repository.ProductRepository {
	return &productRepository{client: client}
}

func (repo *productRepository) collection() *firestore.CollectionRef {
	return repo.client.Collection(productsCollection)
}

func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	snap, err := repo.collection().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product")
	}

	return decodeProduct(snap)
}

func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	snaps, err := repo.collection().OrderBy("name", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	return decodeAll(snaps, decodeProduct)
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if _, err := repo.collection().Doc(product.ID).Create(ctx, fromProductDomain(product)); err != nil {
		if isAlreadyExists(err) {
			return domainerrors.ErrProductAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	return nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	d := fromProductDomain(product)
	updates := []firestore.Update{
		{Path: "name", Value: d.Name},
		{Path: "category", Value: d.Category},
		{Path: "unit", Value: d.Unit},
		{Path: "boxSize", Value: d.BoxSize},
		{Path: "varieties", Value: d.Varieties},
		{Path: "updatedAt", Value: d.UpdatedAt},
	}

	if _, err := repo.collection().Doc(product.ID).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return domainerrors.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	return nil
}

// Delete removes the product document. Offers keep their embedded product names.
func (repo *productRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.collection().Doc(id).Delete(ctx); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}

	return nil
}

func decodeProduct(snap *firestore.DocumentSnapshot) (*entity.Product, error) {
	var d productDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode product "+snap.Ref.ID)
	}

	return toProductDomain(snap.Ref.ID, &d), nil
}
