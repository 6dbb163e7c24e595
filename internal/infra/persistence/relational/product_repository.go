package relational

import (
	"context"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// productRepository implements repository.ProductRepository using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var productM model.ProductModel

	err := repo.db.WithContext(ctx).
		Preload("Varieties", orderVarieties).
		Where("id = ?", id).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

// FindAll lists products ordered by name.
func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	var productMs []model.ProductModel

	err := repo.db.WithContext(ctx).
		Preload("Varieties", orderVarieties).
		Order("name ASC").
		Find(&productMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for i := range productMs {
		products = append(products, toProductDomain(&productMs[i]))
	}

	return products, nil
}

func orderVarieties(db *gorm.DB) *gorm.DB {
	return db.Order("name ASC")
}

// Create stores the product and its varieties.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(productM).Error
	})
	if err != nil {
		if violatedConstraint(err) == uniqueConstraint {
			return domainerrors.ErrProductAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt

	return nil
}

// Update writes the product columns and replaces its varieties.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.ProductModel{}).
			Where("id = ?", product.ID).
			Select("name", "category", "unit", "box_size", "updated_at").
			Updates(productM)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrProductNotFound
		}

		if err := tx.Where("product_id = ?", product.ID).Delete(&model.ProductVarietyModel{}).Error; err != nil {
			return err
		}

		if len(productM.Varieties) == 0 {
			return nil
		}

		return tx.Omit(clause.Associations).Create(&productM.Varieties).Error
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	return nil
}

// Delete removes the product and its varieties. Products referenced by offers cannot be deleted.
func (repo *productRepository) Delete(ctx context.Context, id string) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&model.ProductVarietyModel{}).Error; err != nil {
			return err
		}

		if err := tx.Where("product_id = ?", id).Delete(&model.AuthorizedProductModel{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", id).Delete(&model.ProductModel{}).Error
	})
	if err != nil {
		if violatedConstraint(err) == foreignKeyConstraint {
			return domainerrors.ErrConflict.WithDetails("product is referenced by offers")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}

	return nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	product := &entity.Product{
		ID:        data.ID,
		Name:      data.Name,
		Category:  data.Category,
		Unit:      data.Unit,
		BoxSize:   data.BoxSize,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	for _, v := range data.Varieties {
		product.Varieties = append(product.Varieties, v.Name)
	}

	return product
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	productM := &model.ProductModel{
		ID:        data.ID,
		Name:      data.Name,
		Category:  data.Category,
		Unit:      data.Unit,
		BoxSize:   data.BoxSize,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	for _, name := range data.Varieties {
		productM.Varieties = append(productM.Varieties, model.ProductVarietyModel{
			ProductID: data.ID,
			Name:      name,
		})
	}

	return productM
}
