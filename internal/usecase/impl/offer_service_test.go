package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/constants"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/service"
	"market/internal/errors"
	"market/internal/infra/metrics"
	mockRepo "market/internal/mocks/repository"
	mockSvc "market/internal/mocks/service"
	"market/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// offerServiceFixtures holds all test dependencies for offer service tests.
type offerServiceFixtures struct {
	service        usecase.OfferUsecase
	offers         *mockRepo.MockOfferRepository
	users          *mockRepo.MockUserRepository
	products       *mockRepo.MockProductRepository
	authorizations *mockRepo.MockAuthorizationRepository
	publisher      *mockSvc.MockEventPublisher
	qrcode         *mockSvc.MockQRCodeService
	notifier       *mockSvc.MockNotifier
	tracker        *metrics.ActivityTracker
}

func createTestOfferService(t *testing.T) offerServiceFixtures {
	fixtures := offerServiceFixtures{
		offers:         mockRepo.NewMockOfferRepository(t),
		users:          mockRepo.NewMockUserRepository(t),
		products:       mockRepo.NewMockProductRepository(t),
		authorizations: mockRepo.NewMockAuthorizationRepository(t),
		publisher:      mockSvc.NewMockEventPublisher(t),
		qrcode:         mockSvc.NewMockQRCodeService(t),
		notifier:       mockSvc.NewMockNotifier(t),
		tracker:        newTestTracker(t),
	}

	srv := NewOfferService(OfferServiceParams{
		Offers:         fixtures.offers,
		Users:          fixtures.users,
		Products:       fixtures.products,
		Authorizations: fixtures.authorizations,
		Publisher:      fixtures.publisher,
		QRCode:         fixtures.qrcode,
		Notifier:       fixtures.notifier,
		Tracker:        fixtures.tracker,
		Logger:         newDiscardLogger(),
	}).(*offerService)
	srv.now = clock(fixedNow)
	fixtures.service = srv

	t.Cleanup(func() {
		assert.False(t, fixtures.tracker.Busy(constants.StoreOffers), "offer calls must not stay in flight")
	})

	return fixtures
}

func (f offerServiceFixtures) expectNotice(message string, severity service.Severity) {
	duration := service.DurationShort
	if severity == service.SeverityError {
		duration = service.DurationLong
	}

	f.notifier.EXPECT().Notify(mock.Anything, message, severity, duration).Return().Once()
}

func testProducer() *entity.User {
	return &entity.User{
		ID:          "producer-1",
		Email:       "finca@example.com",
		Name:        "Ana",
		CompanyName: "Finca Ana",
		Role:        entity.RoleProducer,
	}
}

func testSubmitInput() *usecase.SubmitOfferInput {
	return &usecase.SubmitOfferInput{
		ProducerID:  "producer-1",
		WeekNumber:  25,
		Description: "Early harvest",
		Products: []entity.OfferProduct{{
			ProductID:     "tomato",
			Price:         decimal.RequireFromString("1.25"),
			TotalQuantity: decimal.NewFromInt(300),
			DailyQuantities: entity.DailyQuantities{
				"Monday":   decimal.NewFromInt(100),
				"Thursday": decimal.NewFromInt(200),
			},
		}},
	}
}

func TestOfferService_SubmitOffer_Success(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	input := testSubmitInput()

	fx.users.EXPECT().FindByID(ctx, "producer-1").Return(testProducer(), nil)
	fx.authorizations.EXPECT().
		Find(ctx, "producer-1", "tomato").
		Return([]*entity.Authorization{{ID: "producer-1_tomato", UserID: "producer-1", ProductID: "tomato"}}, nil)
	fx.products.EXPECT().FindByID(ctx, "tomato").Return(&entity.Product{ID: "tomato", Name: "Tomato"}, nil)
	fx.offers.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Offer")).
		Run(func(_ context.Context, offer *entity.Offer) {
			offer.ID = "offer-1"
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishOfferEvent(ctx, mock.MatchedBy(func(e *service.OfferEvent) bool {
			return e.Type == service.OfferEventSubmitted && e.OfferID == "offer-1" && e.Status == "submitted"
		})).
		Return(nil)
	fx.expectNotice("Offer submitted successfully", service.SeveritySuccess)

	offer, err := fx.service.SubmitOffer(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "offer-1", offer.ID)
	assert.Equal(t, entity.OfferStatusSubmitted, offer.Status)
	assert.Equal(t, "Finca Ana", offer.ProducerName)
	assert.Equal(t, fixedNow, offer.CreatedAt)
	require.Len(t, offer.Products, 1)
	assert.Equal(t, "Tomato", offer.Products[0].ProductName)
	assert.True(t, offer.Products[0].TotalQuantity.Equal(decimal.NewFromInt(300)))

	// The stored line item does not share the caller's map.
	input.Products[0].DailyQuantities["Monday"] = decimal.Zero
	assert.True(t, offer.Products[0].DailyQuantities["Monday"].Equal(decimal.NewFromInt(100)))
}

func TestOfferService_SubmitOffer_WeekNotOpen(t *testing.T) {
	fx := createTestOfferService(t)

	input := testSubmitInput()
	input.WeekNumber = 24

	fx.expectNotice(domainerrors.ErrOfferWeekClosed.Message(), service.SeverityError)

	offer, err := fx.service.SubmitOffer(context.Background(), input)

	assert.Nil(t, offer)
	assert.ErrorIs(t, err, domainerrors.ErrOfferWeekClosed)
}

func TestOfferService_SubmitOffer_AcceptsSubmissionWeekAtYearEnd(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		week int
	}{
		{name: "iso week 52", now: time.Date(2025, time.December, 24, 9, 0, 0, 0, time.UTC), week: 54},
		{name: "iso week 53", now: time.Date(2026, time.December, 30, 9, 0, 0, 0, time.UTC), week: 55},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOfferService(t)
			fx.service.(*offerService).now = clock(tt.now)

			ctx := context.Background()
			input := testSubmitInput()
			input.WeekNumber = tt.week

			fx.users.EXPECT().FindByID(ctx, "producer-1").Return(testProducer(), nil)
			fx.authorizations.EXPECT().
				Find(ctx, "producer-1", "tomato").
				Return([]*entity.Authorization{{ID: "producer-1_tomato", UserID: "producer-1", ProductID: "tomato"}}, nil)
			fx.products.EXPECT().FindByID(ctx, "tomato").Return(&entity.Product{ID: "tomato", Name: "Tomato"}, nil)
			fx.offers.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Offer")).Return(nil)
			fx.publisher.EXPECT().PublishOfferEvent(ctx, mock.Anything).Return(nil)
			fx.expectNotice("Offer submitted successfully", service.SeveritySuccess)

			offer, err := fx.service.SubmitOffer(ctx, input)

			require.NoError(t, err)
			assert.Equal(t, tt.week, offer.WeekNumber)
		})
	}
}

func TestOfferService_SubmitOffer_YearEndRejectsOtherWeeks(t *testing.T) {
	for _, weekNumber := range []int{1, 2, 53} {
		fx := createTestOfferService(t)
		fx.service.(*offerService).now = clock(time.Date(2025, time.December, 24, 9, 0, 0, 0, time.UTC))

		input := testSubmitInput()
		input.WeekNumber = weekNumber

		fx.expectNotice(domainerrors.ErrOfferWeekClosed.Message(), service.SeverityError)

		_, err := fx.service.SubmitOffer(context.Background(), input)

		require.ErrorIs(t, err, domainerrors.ErrOfferWeekClosed, "week %d", weekNumber)
		assert.Contains(t, err.Error(), "submit for week 54")
	}
}

func TestOfferService_SubmitOffer_ValidationFailures(t *testing.T) {
	fx := createTestOfferService(t)

	input := testSubmitInput()
	input.ProducerID = ""
	input.Products[0].Price = decimal.Zero
	input.Products[0].DailyQuantities["Funday"] = decimal.NewFromInt(1)

	fx.expectNotice(domainerrors.ErrValidationFailed.Message(), service.SeverityError)

	_, err := fx.service.SubmitOffer(context.Background(), input)

	var verr *domainerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "producerId")
	assert.Contains(t, verr.Fields, "products[0].price")
	assert.Contains(t, verr.Fields, "products[0].dailyQuantities.Funday")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOfferService_SubmitOffer_UnknownProducer(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	fx.users.EXPECT().FindByID(ctx, "producer-1").Return(nil, domainerrors.ErrUserNotFound)
	fx.expectNotice(domainerrors.ErrValidationFailed.Message(), service.SeverityError)

	_, err := fx.service.SubmitOffer(ctx, testSubmitInput())

	var verr *domainerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "unknown producer", verr.Fields["producerId"])
}

func TestOfferService_SubmitOffer_RequiresProducerRole(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	buyer := testProducer()
	buyer.Role = entity.RoleSupermarket

	fx.users.EXPECT().FindByID(ctx, "producer-1").Return(buyer, nil)
	fx.expectNotice(domainerrors.ErrForbidden.Message(), service.SeverityError)

	_, err := fx.service.SubmitOffer(ctx, testSubmitInput())

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOfferService_SubmitOffer_ProductNotAuthorized(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	fx.users.EXPECT().FindByID(ctx, "producer-1").Return(testProducer(), nil)
	fx.authorizations.EXPECT().Find(ctx, "producer-1", "tomato").Return([]*entity.Authorization{}, nil)
	fx.expectNotice(domainerrors.ErrProductNotAuthorized.Message(), service.SeverityError)

	_, err := fx.service.SubmitOffer(ctx, testSubmitInput())

	assert.ErrorIs(t, err, domainerrors.ErrProductNotAuthorized)
}

func TestOfferService_SubmitOffer_StoreFailureHidesDetail(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	fx.users.EXPECT().FindByID(ctx, "producer-1").Return(testProducer(), nil)
	fx.authorizations.EXPECT().Find(ctx, "producer-1", "tomato").
		Return([]*entity.Authorization{{ID: "producer-1_tomato"}}, nil)
	fx.products.EXPECT().FindByID(ctx, "tomato").Return(&entity.Product{ID: "tomato", Name: "Tomato"}, nil)
	fx.offers.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Offer")).Return(errors.New("connection reset"))
	fx.expectNotice("Failed to submit offer", service.SeverityError)

	_, err := fx.service.SubmitOffer(ctx, testSubmitInput())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestOfferService_UpdateOfferStatus_ApprovalStampsReview(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := deliverycontext.WithUserID(context.Background(), "admin-1")
	feedback := "Looks good"
	stored := &entity.Offer{ID: "offer-1", ProducerID: "producer-1", WeekNumber: 25, Status: entity.OfferStatusSubmitted}

	fx.offers.EXPECT().FindByID(ctx, "offer-1").Return(stored, nil)
	fx.offers.EXPECT().
		Update(ctx, "offer-1", mock.MatchedBy(func(u *entity.OfferUpdate) bool {
			return *u.Status == entity.OfferStatusApproved &&
				*u.Feedback == feedback &&
				u.ReviewedAt != nil && u.ReviewedAt.Equal(fixedNow) &&
				u.LastModified != nil && u.LastModified.Equal(fixedNow)
		})).
		Return(nil)
	fx.publisher.EXPECT().
		PublishOfferEvent(ctx, mock.MatchedBy(func(e *service.OfferEvent) bool {
			return e.Type == service.OfferEventStatusChanged && e.Status == "approved" && e.Feedback == feedback &&
				e.ActorID == "admin-1"
		})).
		Return(nil)
	fx.expectNotice("Offer updated successfully", service.SeveritySuccess)

	err := fx.service.UpdateOfferStatus(ctx, "offer-1", &usecase.UpdateOfferStatusInput{
		Status:   entity.OfferStatusApproved,
		Feedback: &feedback,
	})

	require.NoError(t, err)
}

func TestOfferService_UpdateOfferStatus_RevisionLeavesReviewUnset(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	fx.offers.EXPECT().FindByID(ctx, "offer-1").Return(&entity.Offer{ID: "offer-1", Status: entity.OfferStatusApproved}, nil)
	fx.offers.EXPECT().
		Update(ctx, "offer-1", mock.MatchedBy(func(u *entity.OfferUpdate) bool {
			return *u.Status == entity.OfferStatusNeedsRevision && u.ReviewedAt == nil && u.Feedback == nil
		})).
		Return(nil)
	fx.publisher.EXPECT().PublishOfferEvent(ctx, mock.Anything).Return(nil)
	fx.expectNotice("Offer updated successfully", service.SeveritySuccess)

	// Any status may follow any other.
	err := fx.service.UpdateOfferStatus(ctx, "offer-1", &usecase.UpdateOfferStatusInput{
		Status: entity.OfferStatusNeedsRevision,
	})

	require.NoError(t, err)
}

func TestOfferService_UpdateOfferStatus_UnknownStatus(t *testing.T) {
	fx := createTestOfferService(t)

	fx.expectNotice(domainerrors.ErrInvalidOfferStatus.Message(), service.SeverityError)

	err := fx.service.UpdateOfferStatus(context.Background(), "offer-1", &usecase.UpdateOfferStatusInput{
		Status: "archived",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidOfferStatus)
}

func TestOfferService_UpdateOfferStatus_MissingOffer(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	fx.offers.EXPECT().FindByID(ctx, "missing").Return(nil, domainerrors.ErrOfferNotFound)
	fx.expectNotice(domainerrors.ErrOfferNotFound.Message(), service.SeverityError)

	err := fx.service.UpdateOfferStatus(ctx, "missing", &usecase.UpdateOfferStatusInput{Status: entity.OfferStatusRejected})

	assert.ErrorIs(t, err, domainerrors.ErrOfferNotFound)
}

func TestOfferService_UpdateOffer_ReplacesNestedMaps(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	description := "Second harvest"
	allocations := entity.DeliveryAllocations{
		"store-1": {"Monday": decimal.NewFromInt(40)},
	}

	fx.offers.EXPECT().
		Update(ctx, "offer-1", mock.MatchedBy(func(u *entity.OfferUpdate) bool {
			return *u.Description == description &&
				len(u.DeliveryAllocations) == 1 &&
				u.LastModified != nil && u.Status == nil
		})).
		Return(nil)
	fx.expectNotice("Offer updated successfully", service.SeveritySuccess)

	update := &entity.OfferUpdate{Description: &description, DeliveryAllocations: allocations}
	err := fx.service.UpdateOffer(ctx, "offer-1", update)

	require.NoError(t, err)
	assert.Nil(t, update.LastModified, "caller's update must not be modified")
}

func TestOfferService_UpdateDeliveryAllocations_NilClearsAllocations(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	fx.offers.EXPECT().
		Update(ctx, "offer-1", mock.MatchedBy(func(u *entity.OfferUpdate) bool {
			return u.DeliveryAllocations != nil && len(u.DeliveryAllocations) == 0 && u.Status == nil
		})).
		Return(nil)
	fx.expectNotice("Offer updated successfully", service.SeveritySuccess)

	require.NoError(t, fx.service.UpdateDeliveryAllocations(ctx, "offer-1", nil))
}

func TestOfferService_UpdateDeliveryAllocations_NegativeQuantity(t *testing.T) {
	fx := createTestOfferService(t)

	fx.expectNotice(domainerrors.ErrValidationFailed.Message(), service.SeverityError)

	err := fx.service.UpdateDeliveryAllocations(context.Background(), "offer-1", entity.DeliveryAllocations{
		"store-1": {"Monday": decimal.NewFromInt(-1)},
	})

	var verr *domainerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "deliveryAllocations.store-1.Monday")
}

func TestOfferService_DeleteOffer_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	fx.offers.EXPECT().FindByID(ctx, "offer-1").Return(&entity.Offer{ID: "offer-1", ProducerID: "producer-1"}, nil)
	fx.offers.EXPECT().Delete(ctx, "offer-1").Return(nil)
	fx.publisher.EXPECT().
		PublishOfferEvent(ctx, mock.MatchedBy(func(e *service.OfferEvent) bool {
			return e.Type == service.OfferEventDeleted
		})).
		Return(errors.New("broker unavailable"))
	fx.expectNotice("Offer deleted successfully", service.SeveritySuccess)

	require.NoError(t, fx.service.DeleteOffer(ctx, "offer-1"))
}

func TestOfferService_GetOffers(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	filter := entity.OfferFilter{ProducerID: "producer-1", Status: entity.OfferStatusApproved}
	want := []*entity.Offer{
		{ID: "offer-2", CreatedAt: fixedNow},
		{ID: "offer-1", CreatedAt: fixedNow.Add(-time.Hour)},
	}

	fx.offers.EXPECT().Find(ctx, filter).Return(want, nil)

	got, err := fx.service.GetOffers(ctx, filter)

	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = fx.service.GetOffers(ctx, entity.OfferFilter{Status: "archived"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOfferStatus)
}

func TestOfferService_OfferQRCode(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	fx.offers.EXPECT().FindByID(ctx, "offer-1").Return(&entity.Offer{ID: "offer-1"}, nil)
	fx.qrcode.EXPECT().GenerateOfferQR("offer-1").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.OfferQRCode(ctx, "offer-1")

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}

func TestOfferService_ResolveQRCode(t *testing.T) {
	ctx := context.Background()

	t.Run("label of a stored offer", func(t *testing.T) {
		fx := createTestOfferService(t)
		offer := &entity.Offer{ID: "offer-1", Status: entity.OfferStatusApproved}

		fx.qrcode.EXPECT().ParseOfferQR(`{"type":"offer","offer_id":"offer-1"}`).Return("offer-1", nil)
		fx.offers.EXPECT().FindByID(ctx, "offer-1").Return(offer, nil)

		got, err := fx.service.ResolveQRCode(ctx, `{"type":"offer","offer_id":"offer-1"}`)

		require.NoError(t, err)
		assert.Equal(t, offer, got)
	})

	t.Run("foreign label", func(t *testing.T) {
		fx := createTestOfferService(t)

		fx.qrcode.EXPECT().ParseOfferQR("hello").Return("", assert.AnError)

		_, err := fx.service.ResolveQRCode(ctx, "hello")

		var verr *domainerrors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "is not an offer label", verr.Fields["data"])
	})

	t.Run("offer gone", func(t *testing.T) {
		fx := createTestOfferService(t)

		fx.qrcode.EXPECT().ParseOfferQR(mock.Anything).Return("offer-9", nil)
		fx.offers.EXPECT().FindByID(ctx, "offer-9").Return(nil, domainerrors.ErrOfferNotFound)

		_, err := fx.service.ResolveQRCode(ctx, "label")

		assert.ErrorIs(t, err, domainerrors.ErrOfferNotFound)
	})
}
