package document

import (
	"context"
	"time"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"

	"cloud.google.com/go/firestore"
)

// newsRepository implements repository.NewsRepository.
type newsRepository struct {
	client *firestore.Client
}

// NewNewsRepository is the constructor for newsRepository.
func NewNewsRepository(client *firestore.Client) repository.NewsRepository {
	return &newsRepository{client: client}
}

func (repo *newsRepository) collection() *firestore.CollectionRef {
	return repo.client.Collection(newsCollection)
}

func (repo *newsRepository) FindByID(ctx context.Context, id string) (*entity.News, error) {
	snap, err := repo.collection().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, domainerrors.ErrNewsNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find news")
	}

	return decodeNews(snap)
}

func (repo *newsRepository) FindAll(ctx context.Context) ([]*entity.News, error) {
	snaps, err := repo.collection().OrderBy("timestamp", firestore.Desc).Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list news")
	}

	return decodeAll(snaps, decodeNews)
}

func (repo *newsRepository) Create(ctx context.Context, news *entity.News) error {
	ref, _, err := repo.collection().Add(ctx, &newsDoc{
		Title:     news.Title,
		Content:   news.Content,
		Active:    news.Active,
		CreatedBy: news.CreatedBy,
		Timestamp: news.Timestamp,
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create news")
	}

	news.ID = ref.ID

	return nil
}

func (repo *newsRepository) Update(ctx context.Context, id string, update *entity.NewsUpdate, at time.Time) error {
	updates := []firestore.Update{{Path: "updatedAt", Value: at}}
	if update.Title != nil {
		updates = append(updates, firestore.Update{Path: "title", Value: *update.Title})
	}
	if update.Content != nil {
		updates = append(updates, firestore.Update{Path: "content", Value: *update.Content})
	}
	if update.Active != nil {
		updates = append(updates, firestore.Update{Path: "active", Value: *update.Active})
	}

	if _, err := repo.collection().Doc(id).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return domainerrors.ErrNewsNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update news")
	}

	return nil
}

func (repo *newsRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.collection().Doc(id).Delete(ctx); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete news")
	}

	return nil
}

func decodeNews(snap *firestore.DocumentSnapshot) (*entity.News, error) {
	var d newsDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode news "+snap.Ref.ID)
	}

	return toNewsDomain(snap.Ref.ID, &d), nil
}
