package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/constants"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/domain/service"
	"market/internal/domain/week"
	"market/internal/errors"
	"market/internal/usecase"

	"go.uber.org/fx"
)

// OfferServiceParams holds dependencies for the offer service, injected by Fx
type OfferServiceParams struct {
	fx.In

	Offers         repository.OfferRepository
	Users          repository.UserRepository
	Products       repository.ProductRepository
	Authorizations repository.AuthorizationRepository
	Publisher      service.EventPublisher
	QRCode         service.QRCodeService
	Notifier       service.Notifier
	Tracker        service.ActivityTracker
	Logger         *slog.Logger
}

// offerService implements the OfferUsecase interface.
type offerService struct {
	offers         repository.OfferRepository
	users          repository.UserRepository
	products       repository.ProductRepository
	authorizations repository.AuthorizationRepository
	publisher      service.EventPublisher
	qrcode         service.QRCodeService
	notifier       service.Notifier
	tracker        service.ActivityTracker
	logger         *slog.Logger
	now            func() time.Time
}

// NewOfferService is the constructor for offerService.
func NewOfferService(params OfferServiceParams) usecase.OfferUsecase {
	return &offerService{
		offers:         params.Offers,
		users:          params.Users,
		products:       params.Products,
		authorizations: params.Authorizations,
		publisher:      params.Publisher,
		qrcode:         params.QRCode,
		notifier:       params.Notifier,
		tracker:        params.Tracker,
		logger:         params.Logger,
		now:            time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *offerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// SubmitOffer validates and stores a new offer for the submission week.
func (srv *offerService) SubmitOffer(ctx context.Context, input *usecase.SubmitOfferInput) (_ *entity.Offer, err error) {
	defer trackCall(srv.tracker, constants.StoreOffers, "submit")(&err)
	defer func() {
		notifyOutcome(ctx, srv.notifier, err, "Offer submitted successfully", "Failed to submit offer")
	}()

	if verr := validateSubmitOffer(input); verr != nil {
		return nil, verr
	}

	now := srv.now().UTC()

	// 1. Offers are only accepted for the week two weeks out
	if submissionWeek := week.Current(now).Next; input.WeekNumber != submissionWeek {
		return nil, domainerrors.ErrOfferWeekClosed.WithDetails(
			fmt.Sprintf("week %d is not open, submit for week %d", input.WeekNumber, submissionWeek))
	}

	// 2. The producer must exist and hold the producer role
	producer, err := srv.users.FindByID(ctx, input.ProducerID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			verr := domainerrors.NewValidationError()
			verr.Add("producerId", "unknown producer")

			return nil, verr
		}

		return nil, errors.Wrap(err, "failed to find producer")
	}

	if !producer.IsProducer() {
		return nil, domainerrors.ErrForbidden.WithDetails("only producers can submit offers")
	}

	// 3. Every line item must be an authorized catalog product
	products := make([]entity.OfferProduct, 0, len(input.Products))
	for _, item := range input.Products {
		line, err := srv.resolveLineItem(ctx, producer.ID, item)
		if err != nil {
			return nil, err
		}

		products = append(products, line)
	}

	offer := &entity.Offer{
		ProducerID:   producer.ID,
		ProducerName: producer.DisplayName(),
		WeekNumber:   input.WeekNumber,
		Description:  input.Description,
		Status:       entity.OfferStatusSubmitted,
		Products:     products,
		CreatedAt:    now,
	}

	if err := srv.offers.Create(ctx, offer); err != nil {
		srv.log(ctx).Error("Failed to create offer", slog.Any("error", err), slog.String("producer_id", producer.ID))

		return nil, errors.Wrap(err, "failed to create offer")
	}

	srv.log(ctx).Info("Offer submitted",
		slog.String("offer_id", offer.ID),
		slog.String("producer_id", producer.ID),
		slog.Int("week", offer.WeekNumber),
		slog.Int("products", len(offer.Products)),
	)
	srv.publish(ctx, service.OfferEventSubmitted, offer)

	return offer, nil
}

func (srv *offerService) resolveLineItem(ctx context.Context, producerID string, item entity.OfferProduct) (entity.OfferProduct, error) {
	grants, err := srv.authorizations.Find(ctx, producerID, item.ProductID)
	if err != nil {
		return entity.OfferProduct{}, errors.Wrap(err, "failed to check product authorization")
	}

	if len(grants) == 0 {
		return entity.OfferProduct{}, domainerrors.ErrProductNotAuthorized.WithDetails(item.ProductID)
	}

	product, err := srv.products.FindByID(ctx, item.ProductID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrProductNotFound) {
			return entity.OfferProduct{}, domainerrors.ErrProductNotFound.WithDetails(item.ProductID)
		}

		return entity.OfferProduct{}, errors.Wrap(err, "failed to find product")
	}

	line := item
	line.ID = ""
	line.DailyQuantities = item.DailyQuantities.Clone()
	if line.ProductName == "" {
		line.ProductName = product.Name
	}

	return line, nil
}

// UpdateOffer merges update into the stored offer and stamps lastModified.
func (srv *offerService) UpdateOffer(ctx context.Context, offerID string, update *entity.OfferUpdate) (err error) {
	defer trackCall(srv.tracker, constants.StoreOffers, "update")(&err)
	defer func() {
		notifyOutcome(ctx, srv.notifier, err, "Offer updated successfully", "Failed to update offer")
	}()

	var merged entity.OfferUpdate
	if update != nil {
		merged = *update
	}

	if merged.Status != nil && !merged.Status.IsValid() {
		return domainerrors.ErrInvalidOfferStatus.WithDetails(string(*merged.Status))
	}

	verr := domainerrors.NewValidationError()
	validateLineItems(verr, merged.Products)
	validateAllocations(verr, merged.DeliveryAllocations)
	if err := verr.OrNil(); err != nil {
		return err
	}

	now := srv.now().UTC()
	merged.LastModified = &now

	if err := srv.offers.Update(ctx, offerID, &merged); err != nil {
		return errors.Wrap(err, "failed to update offer")
	}

	srv.log(ctx).Info("Offer updated", slog.String("offer_id", offerID))

	return nil
}

// UpdateOfferStatus records a status change. Any known status is accepted from any other.
func (srv *offerService) UpdateOfferStatus(ctx context.Context, offerID string, input *usecase.UpdateOfferStatusInput) (err error) {
	defer trackCall(srv.tracker, constants.StoreOffers, "update_status")(&err)
	defer func() {
		notifyOutcome(ctx, srv.notifier, err, "Offer updated successfully", "Failed to update offer status")
	}()

	if input == nil || !input.Status.IsValid() {
		status := ""
		if input != nil {
			status = string(input.Status)
		}

		return domainerrors.ErrInvalidOfferStatus.WithDetails(status)
	}

	verr := domainerrors.NewValidationError()
	validateAllocations(verr, input.DeliveryAllocations)
	if err := verr.OrNil(); err != nil {
		return err
	}

	offer, err := srv.offers.FindByID(ctx, offerID)
	if err != nil {
		return errors.Wrap(err, "failed to find offer")
	}

	now := srv.now().UTC()
	status := input.Status
	update := &entity.OfferUpdate{
		Status:              &status,
		Feedback:            input.Feedback,
		DeliveryAllocations: input.DeliveryAllocations,
		LastModified:        &now,
	}
	if status.IsReview() {
		update.ReviewedAt = &now
	}

	if err := srv.offers.Update(ctx, offerID, update); err != nil {
		return errors.Wrap(err, "failed to update offer status")
	}

	update.Apply(offer)
	srv.log(ctx).Info("Offer status changed",
		slog.String("offer_id", offerID),
		slog.String("status", string(status)),
	)
	srv.publish(ctx, service.OfferEventStatusChanged, offer)

	return nil
}

// UpdateDeliveryAllocations replaces the allocations of an offer wholesale.
func (srv *offerService) UpdateDeliveryAllocations(ctx context.Context, offerID string, allocations entity.DeliveryAllocations) (err error) {
	defer trackCall(srv.tracker, constants.StoreOffers, "update_allocations")(&err)
	defer func() {
		notifyOutcome(ctx, srv.notifier, err, "Offer updated successfully", "Failed to update delivery allocations")
	}()

	if allocations == nil {
		allocations = entity.DeliveryAllocations{}
	}

	verr := domainerrors.NewValidationError()
	validateAllocations(verr, allocations)
	if err := verr.OrNil(); err != nil {
		return err
	}

	now := srv.now().UTC()
	update := &entity.OfferUpdate{
		DeliveryAllocations: allocations,
		LastModified:        &now,
	}

	if err := srv.offers.Update(ctx, offerID, update); err != nil {
		return errors.Wrap(err, "failed to update delivery allocations")
	}

	return nil
}

// DeleteOffer removes an offer with all its line items.
func (srv *offerService) DeleteOffer(ctx context.Context, offerID string) (err error) {
	defer trackCall(srv.tracker, constants.StoreOffers, "delete")(&err)
	defer func() {
		notifyOutcome(ctx, srv.notifier, err, "Offer deleted successfully", "Failed to delete offer")
	}()

	offer, err := srv.offers.FindByID(ctx, offerID)
	if err != nil {
		return errors.Wrap(err, "failed to find offer")
	}

	if err := srv.offers.Delete(ctx, offerID); err != nil {
		return errors.Wrap(err, "failed to delete offer")
	}

	srv.log(ctx).Info("Offer deleted", slog.String("offer_id", offerID))
	srv.publish(ctx, service.OfferEventDeleted, offer)

	return nil
}

// GetOffer returns a single offer.
func (srv *offerService) GetOffer(ctx context.Context, offerID string) (_ *entity.Offer, err error) {
	defer trackCall(srv.tracker, constants.StoreOffers, "get")(&err)

	offer, err := srv.offers.FindByID(ctx, offerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find offer")
	}

	return offer, nil
}

// GetOffers lists offers matching filter, newest first.
func (srv *offerService) GetOffers(ctx context.Context, filter entity.OfferFilter) (_ []*entity.Offer, err error) {
	defer trackCall(srv.tracker, constants.StoreOffers, "list")(&err)

	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domainerrors.ErrInvalidOfferStatus.WithDetails(string(filter.Status))
	}

	offers, err := srv.offers.Find(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to load offers", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load offers")
	}

	return offers, nil
}

// OfferQRCode renders the QR label of an existing offer.
func (srv *offerService) OfferQRCode(ctx context.Context, offerID string) (_ []byte, err error) {
	defer trackCall(srv.tracker, constants.StoreOffers, "qrcode")(&err)

	if _, err := srv.offers.FindByID(ctx, offerID); err != nil {
		return nil, errors.Wrap(err, "failed to find offer")
	}

	png, err := srv.qrcode.GenerateOfferQR(offerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate offer QR code")
	}

	return png, nil
}

// ResolveQRCode looks up the offer encoded in a scanned label.
func (srv *offerService) ResolveQRCode(ctx context.Context, data string) (_ *entity.Offer, err error) {
	defer trackCall(srv.tracker, constants.StoreOffers, "resolve_qrcode")(&err)

	offerID, err := srv.qrcode.ParseOfferQR(data)
	if err != nil {
		verr := domainerrors.NewValidationError()
		verr.Add("data", "is not an offer label")

		return nil, verr
	}

	offer, err := srv.offers.FindByID(ctx, offerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find offer")
	}

	return offer, nil
}

// publish emits an offer event. Publishing is best effort; failures are only logged.
func (srv *offerService) publish(ctx context.Context, eventType string, offer *entity.Offer) {
	event := &service.OfferEvent{
		RequestID:  deliverycontext.RequestIDFrom(ctx),
		ActorID:    deliverycontext.UserIDFrom(ctx),
		Type:       eventType,
		OfferID:    offer.ID,
		ProducerID: offer.ProducerID,
		WeekNumber: offer.WeekNumber,
		Status:     string(offer.Status),
		Feedback:   offer.Feedback,
		OccurredAt: srv.now().UTC(),
	}

	if err := srv.publisher.PublishOfferEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish offer event",
			slog.String("type", eventType),
			slog.String("offer_id", offer.ID),
			slog.Any("error", err),
		)
	}
}

// --- Validation ---

func validateSubmitOffer(input *usecase.SubmitOfferInput) error {
	verr := domainerrors.NewValidationError()
	if input == nil {
		verr.Add("offer", "is required")

		return verr
	}

	if input.ProducerID == "" {
		verr.Add("producerId", "is required")
	}

	if input.WeekNumber < 1 || input.WeekNumber > week.MaxWeekNumber {
		verr.Add("weekNumber", fmt.Sprintf("must be between 1 and %d", week.MaxWeekNumber))
	}

	if len(input.Products) == 0 {
		verr.Add("products", "at least one product is required")
	}

	validateLineItems(verr, input.Products)

	return verr.OrNil()
}

func validateLineItems(verr *domainerrors.ValidationError, products []entity.OfferProduct) {
	for i, p := range products {
		prefix := fmt.Sprintf("products[%d].", i)

		if p.ProductID == "" {
			verr.Add(prefix+"productId", "is required")
		}

		if !p.Price.IsPositive() {
			verr.Add(prefix+"price", "must be greater than 0")
		}

		if p.TotalQuantity.IsNegative() {
			verr.Add(prefix+"totalQuantity", "must not be negative")
		}

		validateDailyQuantities(verr, prefix+"dailyQuantities", p.DailyQuantities)
	}
}

func validateAllocations(verr *domainerrors.ValidationError, allocations entity.DeliveryAllocations) {
	for store, days := range allocations {
		if store == "" {
			verr.Add("deliveryAllocations", "supermarket id is required")
		}

		validateDailyQuantities(verr, "deliveryAllocations."+store, days)
	}
}

func validateDailyQuantities(verr *domainerrors.ValidationError, field string, quantities entity.DailyQuantities) {
	for day, qty := range quantities {
		if !week.IsDay(day) {
			verr.Add(field+"."+day, "unknown day")

			continue
		}

		if qty.IsNegative() {
			verr.Add(field+"."+day, "must not be negative")
		}
	}
}
