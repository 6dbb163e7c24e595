package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/constants"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/domain/service"
	"market/internal/errors"
	"market/internal/usecase"
)

// productService implements the ProductUsecase interface.
type productService struct {
	products repository.ProductRepository
	notifier service.Notifier
	tracker  service.ActivityTracker
	logger   *slog.Logger
	now      func() time.Time
}

// NewProductService is the constructor for productService.
func NewProductService(
	products repository.ProductRepository,
	notifier service.Notifier,
	tracker service.ActivityTracker,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		products: products,
		notifier: notifier,
		tracker:  tracker,
		logger:   logger,
		now:      time.Now,
	}
}

// AddProduct stores a new catalog product keyed by the slug of its name.
func (srv *productService) AddProduct(ctx context.Context, input *usecase.ProductInput) (_ *entity.Product, err error) {
	defer trackCall(srv.tracker, constants.StoreProducts, "add")(&err)
	defer func() {
		notifyOutcome(ctx, srv.notifier, err, "Product added successfully", "Failed to add product")
	}()

	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := &entity.Product{
		ID:        entity.ProductSlug(input.Name),
		Name:      strings.TrimSpace(input.Name),
		Category:  input.Category,
		Unit:      input.Unit,
		BoxSize:   input.BoxSize,
		Varieties: normalizeVarieties(input.Varieties),
		CreatedAt: srv.now().UTC(),
	}

	if err := srv.products.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to add product")
	}

	deliverycontext.LoggerFrom(ctx, srv.logger).Info("Product added", slog.String("product_id", product.ID))

	return product, nil
}

// UpdateProduct overwrites the catalog fields of a product. Its id does not change with the name.
func (srv *productService) UpdateProduct(ctx context.Context, productID string, input *usecase.ProductInput) (_ *entity.Product, err error) {
	defer trackCall(srv.tracker, constants.StoreProducts, "update")(&err)
	defer func() {
		notifyOutcome(ctx, srv.notifier, err, "Product updated successfully", "Failed to update product")
	}()

	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product, err := srv.products.FindByID(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	now := srv.now().UTC()
	product.Name = strings.TrimSpace(input.Name)
	product.Category = input.Category
	product.Unit = input.Unit
	product.BoxSize = input.BoxSize
	product.Varieties = normalizeVarieties(input.Varieties)
	product.UpdatedAt = &now

	if err := srv.products.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes a catalog product.
func (srv *productService) DeleteProduct(ctx context.Context, productID string) (err error) {
	defer trackCall(srv.tracker, constants.StoreProducts, "delete")(&err)
	defer func() {
		notifyOutcome(ctx, srv.notifier, err, "Product deleted successfully", "Failed to delete product")
	}()

	if _, err := srv.products.FindByID(ctx, productID); err != nil {
		return errors.Wrap(err, "failed to find product")
	}

	if err := srv.products.Delete(ctx, productID); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

func (srv *productService) GetProduct(ctx context.Context, productID string) (_ *entity.Product, err error) {
	defer trackCall(srv.tracker, constants.StoreProducts, "get")(&err)

	product, err := srv.products.FindByID(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func (srv *productService) ListProducts(ctx context.Context) (_ []*entity.Product, err error) {
	defer trackCall(srv.tracker, constants.StoreProducts, "list")(&err)

	products, err := srv.products.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load products")
	}

	return products, nil
}

func validateProductInput(input *usecase.ProductInput) error {
	verr := domainerrors.NewValidationError()
	if input == nil {
		verr.Add("product", "is required")

		return verr
	}

	if entity.ProductSlug(input.Name) == "" {
		verr.Add("name", "is required")
	}

	if strings.TrimSpace(input.Category) == "" {
		verr.Add("category", "is required")
	}

	if strings.TrimSpace(input.Unit) == "" {
		verr.Add("unit", "is required")
	}

	return verr.OrNil()
}

// normalizeVarieties trims names and drops blanks and duplicates, keeping the first occurrence.
func normalizeVarieties(varieties []string) []string {
	if len(varieties) == 0 {
		return nil
	}

	out := make([]string, 0, len(varieties))
	seen := make(map[string]struct{}, len(varieties))
	for _, v := range varieties {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}

		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// newsService implements the NewsUsecase interface.
type newsService struct {
	news     repository.NewsRepository
	notifier service.Notifier
	tracker  service.ActivityTracker
	now      func() time.Time
}

// NewNewsService is the constructor for newsService.
func NewNewsService(
	news repository.NewsRepository,
	notifier service.Notifier,
	tracker service.ActivityTracker,
) usecase.NewsUsecase {
	return &newsService{
		news:     news,
		notifier: notifier,
		tracker:  tracker,
		now:      time.Now,
	}
}

// AddNews publishes an announcement. It is active unless stated otherwise.
func (srv *newsService) AddNews(ctx context.Context, input *usecase.NewsInput) (_ *entity.News, err error) {
	defer trackCall(srv.tracker, constants.StoreNews, "add")(&err)
	defer func() {
		notifyOutcome(ctx, srv.notifier, err, "News item added successfully", "Failed to add news")
	}()

	verr := domainerrors.NewValidationError()
	if input == nil || strings.TrimSpace(input.Title) == "" {
		verr.Add("title", "is required")
	}

	if input == nil || strings.TrimSpace(input.Content) == "" {
		verr.Add("content", "is required")
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	news := &entity.News{
		Title:     input.Title,
		Content:   input.Content,
		Active:    active,
		CreatedBy: input.CreatedBy,
		Timestamp: srv.now().UTC(),
	}

	if err := srv.news.Create(ctx, news); err != nil {
		return nil, errors.Wrap(err, "failed to add news")
	}

	return news, nil
}

// UpdateNews applies a partial change and stamps updatedAt.
func (srv *newsService) UpdateNews(ctx context.Context, newsID string, update *entity.NewsUpdate) (err error) {
	defer trackCall(srv.tracker, constants.StoreNews, "update")(&err)
	defer func() {
		notifyOutcome(ctx, srv.notifier, err, "News item updated successfully", "Failed to update news")
	}()

	if update == nil {
		update = &entity.NewsUpdate{}
	}

	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		verr := domainerrors.NewValidationError()
		verr.Add("title", "must not be empty")

		return verr
	}

	if err := srv.news.Update(ctx, newsID, update, srv.now().UTC()); err != nil {
		return errors.Wrap(err, "failed to update news")
	}

	return nil
}

// DeleteNews removes an announcement.
func (srv *newsService) DeleteNews(ctx context.Context, newsID string) (err error) {
	defer trackCall(srv.tracker, constants.StoreNews, "delete")(&err)
	defer func() {
		notifyOutcome(ctx, srv.notifier, err, "News item deleted successfully", "Failed to delete news")
	}()

	if newsID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("Invalid news ID")
	}

	if err := srv.news.Delete(ctx, newsID); err != nil {
		return errors.Wrap(err, "failed to delete news")
	}

	return nil
}

func (srv *newsService) ListNews(ctx context.Context) (_ []*entity.News, err error) {
	defer trackCall(srv.tracker, constants.StoreNews, "list")(&err)

	news, err := srv.news.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load news")
	}

	return news, nil
}
