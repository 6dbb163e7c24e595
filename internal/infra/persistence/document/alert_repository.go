package document

import (
	"context"
	"time"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"

	"cloud.google.com/go/firestore"
)

// alertRepository implements repository.AlertRepository.
type alertRepository struct {
	client *firestore.Client
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(client *firestore.Client) repository.AlertRepository {
	return &alertRepository{client: client}
}

func (repo *alertRepository) collection() *firestore.CollectionRef {
	return repo.client.Collection(alertsCollection)
}

func (repo *alertRepository) FindByID(ctx context.Context, id string) (*entity.Alert, error) {
	snap, err := repo.collection().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, domainerrors.ErrAlertNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find alert")
	}

	return decodeAlert(snap)
}

// Find lists alerts matching filter, newest first.
func (repo *alertRepository) Find(ctx context.Context, filter entity.AlertFilter) ([]*entity.Alert, error) {
	query := repo.collection().Query
	if filter.UserID != "" {
		query = query.Where("userId", "==", filter.UserID)
	}
	if filter.CertificationType != "" {
		query = query.Where("certificationType", "==", string(filter.CertificationType))
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		query = query.Where("status", "in", statuses)
	}

	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list alerts")
	}

	alerts, err := decodeAll(snaps, decodeAlert)
	if err != nil {
		return nil, err
	}

	sortAlertsNewestFirst(alerts)

	return alerts, nil
}

func (repo *alertRepository) Create(ctx context.Context, alert *entity.Alert) error {
	ref, _, err := repo.collection().Add(ctx, fromAlertDomain(alert))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create alert")
	}

	alert.ID = ref.ID

	return nil
}

func (repo *alertRepository) UpdateStatus(ctx context.Context, id string, status entity.AlertStatus, at time.Time) error {
	_, err := repo.collection().Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(status)},
		{Path: "lastModified", Value: at},
	})
	if err != nil {
		if isNotFound(err) {
			return domainerrors.ErrAlertNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update alert status")
	}

	return nil
}

func (repo *alertRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.collection().Doc(id).Delete(ctx); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete alert")
	}

	return nil
}

func decodeAlert(snap *firestore.DocumentSnapshot) (*entity.Alert, error) {
	var d alertDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode alert "+snap.Ref.ID)
	}

	return toAlertDomain(snap.Ref.ID, &d), nil
}
