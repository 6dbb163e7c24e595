package relational

import (
	"context"
	"time"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// newestFirst orders by the quoted timestamp column, which is a type keyword in PostgreSQL.
var newestFirst = clause.OrderByColumn{Column: clause.Column{Name: "timestamp"}, Desc: true} //nolint:gochecknoglobals

// alertRepository implements repository.AlertRepository using GORM.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{db: db}
}

func (repo *alertRepository) FindByID(ctx context.Context, id string) (*entity.Alert, error) {
	var alertM model.AlertModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&alertM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrAlertNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find alert")
	}

	return toAlertDomain(&alertM), nil
}

// Find lists alerts matching filter, newest first.
func (repo *alertRepository) Find(ctx context.Context, filter entity.AlertFilter) ([]*entity.Alert, error) {
	query := repo.db.WithContext(ctx)

	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}

	if filter.CertificationType != "" {
		query = query.Where("certification_type = ?", string(filter.CertificationType))
	}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		query = query.Where("status IN ?", statuses)
	}

	var alertMs []model.AlertModel
	if err := query.Order(newestFirst).Find(&alertMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list alerts")
	}

	alerts := make([]*entity.Alert, 0, len(alertMs))
	for i := range alertMs {
		alerts = append(alerts, toAlertDomain(&alertMs[i]))
	}

	return alerts, nil
}

func (repo *alertRepository) Create(ctx context.Context, alert *entity.Alert) error {
	alertM := fromAlertDomain(alert)
	if err := repo.db.WithContext(ctx).Create(alertM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create alert")
	}

	alert.ID = alertM.ID

	return nil
}

func (repo *alertRepository) UpdateStatus(ctx context.Context, id string, status entity.AlertStatus, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AlertModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "last_modified": at})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update alert status")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAlertNotFound
	}

	return nil
}

func (repo *alertRepository) Delete(ctx context.Context, id string) error {
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AlertModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete alert")
	}

	return nil
}

func toAlertDomain(data *model.AlertModel) *entity.Alert {
	return &entity.Alert{
		ID:                data.ID,
		Type:              entity.AlertType(data.Type),
		Title:             data.Title,
		Message:           data.Message,
		UserID:            data.UserID,
		CertificationType: entity.CertificationType(data.CertificationType),
		ExpiryDate:        data.ExpiryDate,
		Status:            entity.AlertStatus(data.Status),
		Timestamp:         data.Timestamp,
		LastModified:      data.LastModified,
	}
}

func fromAlertDomain(data *entity.Alert) *model.AlertModel {
	return &model.AlertModel{
		ID:                data.ID,
		Type:              string(data.Type),
		Title:             data.Title,
		Message:           data.Message,
		UserID:            data.UserID,
		CertificationType: string(data.CertificationType),
		ExpiryDate:        data.ExpiryDate,
		Status:            string(data.Status),
		Timestamp:         data.Timestamp,
		LastModified:      data.LastModified,
	}
}
