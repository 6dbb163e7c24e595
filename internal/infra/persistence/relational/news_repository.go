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
)

// newsRepository implements repository.NewsRepository using GORM.
type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository is the constructor for newsRepository.
func NewNewsRepository(db *gorm.DB) repository.NewsRepository {
	return &newsRepository{db: db}
}

func (repo *newsRepository) FindByID(ctx context.Context, id string) (*entity.News, error) {
	var newsM model.NewsModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&newsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNewsNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find news")
	}

	return toNewsDomain(&newsM), nil
}

func (repo *newsRepository) FindAll(ctx context.Context) ([]*entity.News, error) {
	var newsMs []model.NewsModel
	if err := repo.db.WithContext(ctx).Order(newestFirst).Find(&newsMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list news")
	}

	out := make([]*entity.News, 0, len(newsMs))
	for i := range newsMs {
		out = append(out, toNewsDomain(&newsMs[i]))
	}

	return out, nil
}

func (repo *newsRepository) Create(ctx context.Context, news *entity.News) error {
	newsM := &model.NewsModel{
		ID:        news.ID,
		Title:     news.Title,
		Content:   news.Content,
		Active:    news.Active,
		CreatedBy: news.CreatedBy,
		Timestamp: news.Timestamp,
	}

	// Select everything so an inactive item is not replaced by the column default.
	if err := repo.db.WithContext(ctx).Select("*").Create(newsM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create news")
	}

	news.ID = newsM.ID

	return nil
}

func (repo *newsRepository) Update(ctx context.Context, id string, update *entity.NewsUpdate, at time.Time) error {
	updates := map[string]any{"updated_at": at}
	if update.Title != nil {
		updates["title"] = *update.Title
	}
	if update.Content != nil {
		updates["content"] = *update.Content
	}
	if update.Active != nil {
		updates["active"] = *update.Active
	}

	result := repo.db.WithContext(ctx).Model(&model.NewsModel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update news")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNewsNotFound
	}

	return nil
}

func (repo *newsRepository) Delete(ctx context.Context, id string) error {
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.NewsModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete news")
	}

	return nil
}

func toNewsDomain(data *model.NewsModel) *entity.News {
	return &entity.News{
		ID:        data.ID,
		Title:     data.Title,
		Content:   data.Content,
		Active:    data.Active,
		CreatedBy: data.CreatedBy,
		Timestamp: data.Timestamp,
		UpdatedAt: data.UpdatedAt,
	}
}
