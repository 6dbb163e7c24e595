package relational

import (
	"context"
	"encoding/json"
	"sort"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/domain/week"
	"market/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// offerRepository implements repository.OfferRepository using GORM.
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{db: db}
}

// Create inserts the offer header, then each line item, then each line item's daily rows,
// all in one transaction: 1 + N + sum(Di) rows or none at all.
func (repo *offerRepository) Create(ctx context.Context, offer *entity.Offer) error {
	offerM, err := fromOfferDomain(offer)
	if err != nil {
		return err
	}

	products := offerM.Products
	offerM.Products = nil

	err = repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(offerM).Error; err != nil {
			return err
		}

		return insertOfferProducts(tx, offerM.ID, products)
	})
	if err != nil {
		return translateOfferWriteError(err, "failed to create offer")
	}

	offer.ID = offerM.ID
	offer.CreatedAt = offerM.CreatedAt

	return nil
}

func insertOfferProducts(tx *gorm.DB, offerID string, products []model.OfferProductModel) error {
	for i := range products {
		productM := &products[i]
		productM.OfferID = offerID
		productM.Position = i

		dailies := productM.DailyQuantities
		productM.DailyQuantities = nil

		if err := tx.Omit(clause.Associations).Create(productM).Error; err != nil {
			return err
		}

		for j := range dailies {
			dailies[j].OfferProductID = productM.ID
			if err := tx.Create(&dailies[j]).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

// FindByID retrieves a single offer with its producer and line items.
func (repo *offerRepository) FindByID(ctx context.Context, id string) (*entity.Offer, error) {
	var offerM model.OfferModel

	err := repo.preloaded(repo.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&offerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrOfferNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find offer by id")
	}

	return toOfferDomain(&offerM)
}

// Find lists offers newest first. Filters are ANDed; offers without line items are kept.
func (repo *offerRepository) Find(ctx context.Context, filter entity.OfferFilter) ([]*entity.Offer, error) {
	query := repo.preloaded(repo.db.WithContext(ctx))

	if filter.ProducerID != "" {
		query = query.Where("producer_id = ?", filter.ProducerID)
	}

	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var offerMs []model.OfferModel
	if err := query.Order("created_at DESC").Order("id").Find(&offerMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list offers")
	}

	offers := make([]*entity.Offer, 0, len(offerMs))
	for i := range offerMs {
		offer, err := toOfferDomain(&offerMs[i])
		if err != nil {
			return nil, err
		}

		offers = append(offers, offer)
	}

	return offers, nil
}

func (repo *offerRepository) preloaded(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Producer").
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Products.Product").
		Preload("Products.DailyQuantities")
}

// Update merges the non-nil fields. New line items replace the old ones inside the same transaction.
func (repo *offerRepository) Update(ctx context.Context, id string, update *entity.OfferUpdate) error {
	if update.IsEmpty() {
		return nil
	}

	updates := map[string]any{}
	if update.WeekNumber != nil {
		updates["week_number"] = *update.WeekNumber
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Status != nil {
		updates["status"] = string(*update.Status)
	}
	if update.Feedback != nil {
		updates["feedback"] = *update.Feedback
	}
	if update.ReviewedAt != nil {
		updates["reviewed_at"] = *update.ReviewedAt
	}
	if update.LastModified != nil {
		updates["updated_at"] = *update.LastModified
	}
	if update.DeliveryAllocations != nil {
		raw, err := marshalAllocations(update.DeliveryAllocations)
		if err != nil {
			return err
		}
		updates["delivery_allocations"] = raw
	}

	var products []model.OfferProductModel
	if update.Products != nil {
		products = fromOfferProductsDomain(update.Products)
	}

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.OfferModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrOfferNotFound
		}

		if len(updates) > 0 {
			if err := tx.Model(&model.OfferModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}

		if update.Products == nil {
			return nil
		}

		if err := deleteOfferChildren(tx, id); err != nil {
			return err
		}

		return insertOfferProducts(tx, id, products)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrOfferNotFound) {
			return domainerrors.ErrOfferNotFound
		}

		return translateOfferWriteError(err, "failed to update offer")
	}

	return nil
}

// Delete removes the offer with its line items and daily rows. The foreign keys cascade as well;
// the explicit deletes keep databases without enforced foreign keys consistent.
func (repo *offerRepository) Delete(ctx context.Context, id string) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteOfferChildren(tx, id); err != nil {
			return err
		}

		return tx.Where("id = ?", id).Delete(&model.OfferModel{}).Error
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete offer")
	}

	return nil
}

func deleteOfferChildren(tx *gorm.DB, offerID string) error {
	lineItems := tx.Model(&model.OfferProductModel{}).Select("id").Where("offer_id = ?", offerID)

	if err := tx.Where("offer_product_id IN (?)", lineItems).Delete(&model.DailyQuantityModel{}).Error; err != nil {
		return err
	}

	return tx.Where("offer_id = ?", offerID).Delete(&model.OfferProductModel{}).Error
}

func translateOfferWriteError(err error, details string) error {
	switch violatedConstraint(err) {
	case foreignKeyConstraint:
		return domainerrors.ErrValidationFailed.WithDetails("offer references an unknown producer or product")
	case notNullConstraint:
		return domainerrors.ErrValidationFailed.WithDetails("offer is missing required information")
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// --- Mapper Functions ---

// toOfferDomain converts an OfferModel with its preloaded associations to a domain Offer.
func toOfferDomain(data *model.OfferModel) (*entity.Offer, error) {
	offer := &entity.Offer{
		ID:           data.ID,
		ProducerID:   data.ProducerID,
		WeekNumber:   data.WeekNumber,
		Description:  data.Description,
		Status:       entity.OfferStatus(data.Status),
		Feedback:     data.Feedback,
		Products:     make([]entity.OfferProduct, 0, len(data.Products)),
		CreatedAt:    data.CreatedAt,
		ReviewedAt:   data.ReviewedAt,
		LastModified: data.UpdatedAt,
	}

	if data.Producer != nil {
		offer.ProducerName = data.Producer.CompanyName
		if offer.ProducerName == "" {
			offer.ProducerName = data.Producer.Name
		}
	}

	for _, p := range data.Products {
		item := entity.OfferProduct{
			ID:              p.ID,
			ProductID:       p.ProductID,
			Variety:         p.Variety,
			Price:           p.Price,
			TotalQuantity:   p.TotalQuantity,
			DailyQuantities: make(entity.DailyQuantities, len(p.DailyQuantities)),
		}
		if p.Product != nil {
			item.ProductName = p.Product.Name
		}

		for _, dq := range p.DailyQuantities {
			item.DailyQuantities[dq.DayOfWeek] = dq.Quantity
		}

		offer.Products = append(offer.Products, item)
	}

	allocations, err := unmarshalAllocations(data.DeliveryAllocations)
	if err != nil {
		return nil, err
	}
	offer.DeliveryAllocations = allocations

	return offer, nil
}

// fromOfferDomain converts a domain Offer to an OfferModel with nested line items.
func fromOfferDomain(data *entity.Offer) (*model.OfferModel, error) {
	raw, err := marshalAllocations(data.DeliveryAllocations)
	if err != nil {
		return nil, err
	}

	return &model.OfferModel{
		ID:                  data.ID,
		ProducerID:          data.ProducerID,
		WeekNumber:          data.WeekNumber,
		Description:         data.Description,
		Status:              string(data.Status),
		Feedback:            data.Feedback,
		DeliveryAllocations: raw,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.LastModified,
		ReviewedAt:          data.ReviewedAt,
		Products:            fromOfferProductsDomain(data.Products),
	}, nil
}

func fromOfferProductsDomain(products []entity.OfferProduct) []model.OfferProductModel {
	out := make([]model.OfferProductModel, 0, len(products))
	for i, p := range products {
		out = append(out, model.OfferProductModel{
			ProductID:       p.ProductID,
			Position:        i,
			Variety:         p.Variety,
			Price:           p.Price,
			TotalQuantity:   p.TotalQuantity,
			DailyQuantities: fromDailyQuantitiesDomain(p.DailyQuantities),
		})
	}

	return out
}

// fromDailyQuantitiesDomain emits one row per day present, Sunday first.
func fromDailyQuantitiesDomain(d entity.DailyQuantities) []model.DailyQuantityModel {
	days := make([]string, 0, len(d))
	for day := range d {
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool {
		return dayIndex(days[i]) < dayIndex(days[j]) ||
			(dayIndex(days[i]) == dayIndex(days[j]) && days[i] < days[j])
	})

	out := make([]model.DailyQuantityModel, 0, len(days))
	for _, day := range days {
		out = append(out, model.DailyQuantityModel{DayOfWeek: day, Quantity: d[day]})
	}

	return out
}

func dayIndex(day string) int {
	for i, d := range week.DaysOfWeek {
		if d == day {
			return i
		}
	}

	return len(week.DaysOfWeek)
}

func marshalAllocations(a entity.DeliveryAllocations) (datatypes.JSON, error) {
	if a == nil {
		return datatypes.JSON("{}"), nil
	}

	raw, err := json.Marshal(a)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode delivery allocations")
	}

	return datatypes.JSON(raw), nil
}

func unmarshalAllocations(raw datatypes.JSON) (entity.DeliveryAllocations, error) {
	if len(raw) == 0 || string(raw) == "null" || string(raw) == "{}" {
		return nil, nil
	}

	var a entity.DeliveryAllocations
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, errors.Wrap(err, "failed to decode delivery allocations")
	}

	return a, nil
}
