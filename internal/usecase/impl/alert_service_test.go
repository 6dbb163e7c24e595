package impl

import (
	"context"
	"strings"
	"testing"

	"market/internal/domain/constants"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/service"
	"market/internal/errors"
	"market/internal/infra/metrics"
	mockRepo "market/internal/mocks/repository"
	mockSvc "market/internal/mocks/service"
	"market/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// alertServiceFixtures holds all test dependencies for alert service tests.
type alertServiceFixtures struct {
	service  usecase.AlertUsecase
	alerts   *mockRepo.MockAlertRepository
	users    *mockRepo.MockUserRepository
	notifier *mockSvc.MockNotifier
	tracker  *metrics.ActivityTracker
}

func createTestAlertService(t *testing.T) alertServiceFixtures {
	fixtures := alertServiceFixtures{
		alerts:   mockRepo.NewMockAlertRepository(t),
		users:    mockRepo.NewMockUserRepository(t),
		notifier: mockSvc.NewMockNotifier(t),
		tracker:  newTestTracker(t),
	}

	srv := NewAlertService(AlertServiceParams{
		Alerts:   fixtures.alerts,
		Users:    fixtures.users,
		Notifier: fixtures.notifier,
		Tracker:  fixtures.tracker,
		Logger:   newDiscardLogger(),
	}).(*alertService)
	srv.now = clock(fixedNow)
	fixtures.service = srv

	t.Cleanup(func() {
		assert.False(t, fixtures.tracker.Busy(constants.StoreAlerts))
	})

	return fixtures
}

func certifiedProducer(id string, certs map[entity.CertificationType]*entity.Certification) *entity.User {
	return &entity.User{
		ID:             id,
		Name:           "Ana",
		CompanyName:    "Finca Ana",
		Role:           entity.RoleProducer,
		Certifications: certs,
	}
}

func openAlertsFilter(userID string, certType entity.CertificationType) entity.AlertFilter {
	return entity.AlertFilter{
		UserID:            userID,
		CertificationType: certType,
		Statuses:          entity.OpenAlertStatuses,
	}
}

func TestAlertService_CheckCertificateExpiration_ExpiringSoon(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	user := certifiedProducer("producer-1", map[entity.CertificationType]*entity.Certification{
		entity.CertificationGlobalGap: {Number: "GG-1", ValidUntil: "2025-06-14"},
	})

	fx.alerts.EXPECT().Find(ctx, openAlertsFilter("producer-1", entity.CertificationGlobalGap)).Return(nil, nil)

	var created *entity.Alert
	fx.alerts.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Alert")).
		Run(func(_ context.Context, alert *entity.Alert) { created = alert }).
		Return(nil)

	count, err := fx.service.CheckCertificateExpiration(ctx, user)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.NotNil(t, created)
	assert.Equal(t, "GLOBALGAP Certificate Expiring Soon", created.Title)
	assert.Equal(t, "Finca Ana's GLOBALGAP certificate (GG-1) will expire in 10 days on June 14, 2025", created.Message)
	assert.Equal(t, entity.AlertTypeWarning, created.Type)
	assert.Equal(t, entity.AlertStatusNew, created.Status)
	assert.Equal(t, entity.CertificationGlobalGap, created.CertificationType)
	assert.Equal(t, "2025-06-14", created.ExpiryDate)
	assert.Equal(t, fixedNow, created.Timestamp)
}

func TestAlertService_CheckCertificateExpiration_Expired(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	user := certifiedProducer("producer-1", map[entity.CertificationType]*entity.Certification{
		entity.CertificationEco: {ValidUntil: "2025-05-30"},
	})

	fx.alerts.EXPECT().Find(ctx, openAlertsFilter("producer-1", entity.CertificationEco)).Return(nil, nil)

	var created *entity.Alert
	fx.alerts.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Alert")).
		Run(func(_ context.Context, alert *entity.Alert) { created = alert }).
		Return(nil)

	count, err := fx.service.CheckCertificateExpiration(ctx, user)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, "ECO Certificate Expired", created.Title)
	assert.Equal(t, "Finca Ana's ECO certificate expired 5 days ago on May 30, 2025", created.Message)
}

func TestAlertService_CheckCertificateExpiration_WindowBoundary(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	user := certifiedProducer("producer-1", map[entity.CertificationType]*entity.Certification{
		entity.CertificationGlobalGap: {ValidUntil: "2025-07-04"}, // 30 days out
		entity.CertificationGrasp:     {ValidUntil: "2025-07-05"}, // 31 days out
		entity.CertificationEco:       {ValidUntil: "not a date"},
	})

	fx.alerts.EXPECT().Find(ctx, openAlertsFilter("producer-1", entity.CertificationGlobalGap)).Return(nil, nil)
	fx.alerts.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Alert")).Return(nil).Once()

	count, err := fx.service.CheckCertificateExpiration(ctx, user)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAlertService_CheckCertificateExpiration_OpenAlertSuppressesDuplicate(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	user := certifiedProducer("producer-1", map[entity.CertificationType]*entity.Certification{
		entity.CertificationGrasp: {ValidUntil: "2025-06-10"},
	})

	fx.alerts.EXPECT().
		Find(ctx, openAlertsFilter("producer-1", entity.CertificationGrasp)).
		Return([]*entity.Alert{{ID: "alert-1", Status: entity.AlertStatusAcknowledged}}, nil)

	count, err := fx.service.CheckCertificateExpiration(ctx, user)

	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAlertService_CheckCertificateExpiration_SkipsNonProducers(t *testing.T) {
	fx := createTestAlertService(t)

	buyer := certifiedProducer("buyer-1", map[entity.CertificationType]*entity.Certification{
		entity.CertificationGrasp: {ValidUntil: "2025-06-10"},
	})
	buyer.Role = entity.RoleSupermarket

	count, err := fx.service.CheckCertificateExpiration(context.Background(), buyer)

	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = fx.service.CheckCertificateExpiration(context.Background(), certifiedProducer("producer-2", nil))

	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAlertService_CheckCertificateExpiration_SkipsUserWithoutID(t *testing.T) {
	fx := createTestAlertService(t)

	count, err := fx.service.CheckCertificateExpiration(context.Background(), nil)

	require.NoError(t, err)
	assert.Zero(t, count)

	user := certifiedProducer("", map[entity.CertificationType]*entity.Certification{
		entity.CertificationGlobalGap: {ValidUntil: "2025-06-10"},
	})
	count, err = fx.service.CheckCertificateExpiration(context.Background(), user)

	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAlertService_CheckCertificateExpiration_ContinuesAfterFailure(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	user := certifiedProducer("producer-1", map[entity.CertificationType]*entity.Certification{
		entity.CertificationGlobalGap: {ValidUntil: "2025-06-10"},
		entity.CertificationEco:       {ValidUntil: "2025-06-11"},
	})

	fx.alerts.EXPECT().
		Find(ctx, openAlertsFilter("producer-1", entity.CertificationGlobalGap)).
		Return(nil, errors.New("deadline exceeded"))
	fx.alerts.EXPECT().Find(ctx, openAlertsFilter("producer-1", entity.CertificationEco)).Return(nil, nil)
	fx.alerts.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Alert")).Return(nil)

	count, err := fx.service.CheckCertificateExpiration(ctx, user)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAlertService_CheckAllCertificates_CertificateFailureIsNotProducerFailure(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	user := certifiedProducer("producer-1", map[entity.CertificationType]*entity.Certification{
		entity.CertificationGlobalGap: {ValidUntil: "2025-06-10"},
	})

	fx.alerts.EXPECT().
		Find(ctx, openAlertsFilter("producer-1", entity.CertificationGlobalGap)).
		Return(nil, errors.New("deadline exceeded"))
	fx.notifier.EXPECT().
		Notify(ctx, "No new expiring certificates found", service.SeverityInfo, service.DurationShort).
		Return().Once()

	summary, err := fx.service.CheckAllCertificates(ctx, []*entity.User{user})

	require.NoError(t, err)
	assert.Empty(t, summary.Failures)
	assert.Zero(t, summary.Created)
}

func TestAlertService_CheckAllCertificates_Summary(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	first := certifiedProducer("producer-1", map[entity.CertificationType]*entity.Certification{
		entity.CertificationGlobalGap: {ValidUntil: "2025-06-10"},
	})
	second := certifiedProducer("producer-2", map[entity.CertificationType]*entity.Certification{
		entity.CertificationEco: {ValidUntil: "2025-06-20"},
	})
	buyer := &entity.User{ID: "buyer-1", Role: entity.RoleSupermarket}

	fx.alerts.EXPECT().Find(ctx, mock.AnythingOfType("entity.AlertFilter")).Return(nil, nil).Twice()
	fx.alerts.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Alert")).Return(nil).Twice()
	fx.notifier.EXPECT().
		Notify(ctx, "Created 2 new alerts for expiring certificates", service.SeveritySuccess, service.DurationShort).
		Return().Once()

	summary, err := fx.service.CheckAllCertificates(ctx, []*entity.User{first, buyer, second})

	require.NoError(t, err)
	assert.Equal(t, &usecase.CheckSummary{Producers: 2, Created: 2}, summary)
}

func TestAlertService_CheckAllCertificates_NothingNew(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	fx.notifier.EXPECT().
		Notify(ctx, "No new expiring certificates found", service.SeverityInfo, service.DurationShort).
		Return().Once()

	summary, err := fx.service.CheckAllCertificates(ctx, []*entity.User{certifiedProducer("producer-1", nil)})

	require.NoError(t, err)
	assert.Zero(t, summary.Created)
}

func TestAlertService_CheckAllCertificates_NoProducers(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	fx.notifier.EXPECT().
		Notify(ctx, "No producers found to check certificates", service.SeverityInfo, service.DurationShort).
		Return().Once()

	summary, err := fx.service.CheckAllCertificates(ctx, nil)

	require.NoError(t, err)
	assert.Zero(t, summary.Producers)
}

func TestAlertService_CheckAllCertificates_ReportsFailures(t *testing.T) {
	fx := createTestAlertService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	user := certifiedProducer("producer-1", map[entity.CertificationType]*entity.Certification{
		entity.CertificationGlobalGap: {ValidUntil: "2025-06-10"},
	})

	fx.notifier.EXPECT().
		Notify(ctx, mock.MatchedBy(func(message string) bool {
			return strings.HasPrefix(message, "Errors occurred while checking certificates:\n")
		}), service.SeverityError, service.DurationLong).
		Return().Once()

	summary, err := fx.service.CheckAllCertificates(ctx, []*entity.User{user})

	require.Error(t, err)
	require.Len(t, summary.Failures, 1)
	assert.Contains(t, summary.Failures[0], "Finca Ana: ")
	assert.Contains(t, summary.Failures[0], "certificate check aborted")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAlertService_SweepCertificates(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	fx.users.EXPECT().FindByRole(ctx, entity.RoleProducer).Return([]*entity.User{}, nil)
	fx.notifier.EXPECT().Notify(ctx, mock.Anything, service.SeverityInfo, service.DurationShort).Return().Once()

	summary, err := fx.service.SweepCertificates(ctx)

	require.NoError(t, err)
	assert.Zero(t, summary.Producers)
}

func TestAlertService_AddAlert(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	input := &entity.Alert{UserID: "producer-1", Title: "Delivery window moved", Status: entity.AlertStatusResolved}

	fx.alerts.EXPECT().
		Create(ctx, mock.MatchedBy(func(a *entity.Alert) bool {
			return a.Type == entity.AlertTypeInfo && a.Status == entity.AlertStatusNew && a.Timestamp.Equal(fixedNow)
		})).
		Return(nil)

	alert, err := fx.service.AddAlert(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.AlertTypeInfo, alert.Type)
	assert.Empty(t, input.Type, "caller's alert must not be modified")

	_, err = fx.service.AddAlert(ctx, &entity.Alert{Type: "fatal"})

	var verr *domainerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "userId")
	assert.Contains(t, verr.Fields, "title")
	assert.Contains(t, verr.Fields, "type")
}

func TestAlertService_UpdateAlertStatus(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	fx.alerts.EXPECT().UpdateStatus(ctx, "alert-1", entity.AlertStatusResolved, fixedNow).Return(nil)
	fx.notifier.EXPECT().
		Notify(ctx, "Alert resolved successfully", service.SeveritySuccess, service.DurationShort).
		Return().Once()

	require.NoError(t, fx.service.UpdateAlertStatus(ctx, "alert-1", entity.AlertStatusResolved))

	fx.notifier.EXPECT().
		Notify(ctx, domainerrors.ErrInvalidAlertStatus.Message(), service.SeverityError, service.DurationLong).
		Return().Once()

	err := fx.service.UpdateAlertStatus(ctx, "alert-1", "snoozed")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAlertStatus)
}

func TestAlertService_DeleteAlert_Missing(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	fx.alerts.EXPECT().FindByID(ctx, "alert-9").Return(nil, domainerrors.ErrAlertNotFound)
	fx.notifier.EXPECT().
		Notify(ctx, domainerrors.ErrAlertNotFound.Message(), service.SeverityError, service.DurationLong).
		Return().Once()

	err := fx.service.DeleteAlert(ctx, "alert-9")

	assert.ErrorIs(t, err, domainerrors.ErrAlertNotFound)
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name   string
		expiry string
		want   int
	}{
		{name: "same day", expiry: "2025-06-04", want: 0},
		{name: "tomorrow", expiry: "2025-06-05", want: 1},
		{name: "yesterday", expiry: "2025-06-03", want: -1},
		{name: "timestamp late in the day", expiry: "2025-06-05T23:59:00Z", want: 1},
	}

	today := startOfDay(fixedNow)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expiry, ok := parseExpiryDate(tt.expiry)
			require.True(t, ok)
			assert.Equal(t, tt.want, daysBetween(today, expiry))
		})
	}
}
