package relational

import (
	"context"
	"time"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// authorizationRepository implements repository.AuthorizationRepository on the
// authorized_products join table. The composite key doubles as the grant ID.
type authorizationRepository struct {
	db *gorm.DB
}

// NewAuthorizationRepository is the constructor for authorizationRepository.
func NewAuthorizationRepository(db *gorm.DB) repository.AuthorizationRepository {
	return &authorizationRepository{db: db}
}

func (repo *authorizationRepository) Find(ctx context.Context, userID, productID string) ([]*entity.Authorization, error) {
	return repo.findMany(repo.db.WithContext(ctx).Where("user_id = ? AND product_id = ?", userID, productID))
}

func (repo *authorizationRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Authorization, error) {
	return repo.findMany(repo.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (repo *authorizationRepository) FindAll(ctx context.Context) ([]*entity.Authorization, error) {
	return repo.findMany(repo.db.WithContext(ctx))
}

func (repo *authorizationRepository) findMany(query *gorm.DB) ([]*entity.Authorization, error) {
	var rows []model.AuthorizedProductModel
	if err := query.Order("authorized_at DESC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list authorizations")
	}

	out := make([]*entity.Authorization, 0, len(rows))
	for i := range rows {
		out = append(out, toAuthorizationDomain(&rows[i]))
	}

	return out, nil
}

func (repo *authorizationRepository) Create(ctx context.Context, authorization *entity.Authorization) error {
	if authorization.AuthorizedAt.IsZero() {
		authorization.AuthorizedAt = time.Now().UTC()
	}

	row := &model.AuthorizedProductModel{
		UserID:       authorization.UserID,
		ProductID:    authorization.ProductID,
		AuthorizedAt: authorization.AuthorizedAt,
	}

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error; err != nil {
		switch violatedConstraint(err) {
		case uniqueConstraint:
			return domainerrors.ErrConflict.WithDetails("authorization already exists")
		case foreignKeyConstraint:
			return domainerrors.ErrValidationFailed.WithDetails("unknown user or product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create authorization")
	}

	authorization.ID = authorizationID(row.UserID, row.ProductID)
	authorization.AuthorizedAt = row.AuthorizedAt

	return nil
}

func (repo *authorizationRepository) Delete(ctx context.Context, authorization *entity.Authorization) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", authorization.UserID, authorization.ProductID).
		Delete(&model.AuthorizedProductModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete authorization")
	}

	return nil
}

func authorizationID(userID, productID string) string {
	return userID + "_" + productID
}

func toAuthorizationDomain(data *model.AuthorizedProductModel) *entity.Authorization {
	return &entity.Authorization{
		ID:           authorizationID(data.UserID, data.ProductID),
		UserID:       data.UserID,
		ProductID:    data.ProductID,
		AuthorizedAt: data.AuthorizedAt,
	}
}
