package impl

import (
	"context"
	"testing"
	"time"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/domain/service"
	"market/internal/errors"
	mockRepo "market/internal/mocks/repository"
	mockSvc "market/internal/mocks/service"
	"market/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
	users     *mockRepo.MockUserRepository
	notifier  *mockSvc.MockNotifier
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	fixtures := profileServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		users:     mockRepo.NewMockUserRepository(t),
		notifier:  mockSvc.NewMockNotifier(t),
	}

	srv := NewProfileService(ProfileServiceParams{
		Config:    newTestConfig(),
		TxManager: fixtures.txManager,
		Users:     fixtures.users,
		Notifier:  fixtures.notifier,
		Tracker:   newTestTracker(t),
		Logger:    newDiscardLogger(),
	}).(*profileService)
	srv.now = clock(fixedNow)
	fixtures.service = srv

	return fixtures
}

func TestProfileService_GetUserProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	expected := &entity.User{ID: "producer-1", Email: "finca@example.com", Role: entity.RoleProducer}

	fx.users.EXPECT().FindByID(ctx, "producer-1").Return(expected, nil)
	fx.users.EXPECT().FindByID(ctx, "ghost").Return(nil, domainerrors.ErrUserNotFound)

	user, err := fx.service.GetUserProfile(ctx, "producer-1")
	require.NoError(t, err)
	assert.Equal(t, expected, user)

	// An absent profile is not an error.
	user, err = fx.service.GetUserProfile(ctx, "ghost")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestProfileService_UpdateUserProfile_KeepsIdentityFields(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	createdAt := fixedNow.Add(-30 * 24 * time.Hour)
	stored := &entity.User{
		ID:        "producer-1",
		Email:     "finca@example.com",
		Role:      entity.RoleProducer,
		Name:      "Ana",
		CreatedAt: createdAt,
	}
	company := "Finca Ana"
	update := &entity.ProfileUpdate{
		CompanyName: &company,
		Certifications: map[entity.CertificationType]*entity.Certification{
			entity.CertificationGlobalGap: {Number: "GG-1", ValidUntil: "2026-01-31"},
		},
	}

	fx.users.EXPECT().FindByID(ctx, "producer-1").Return(stored, nil)
	fx.users.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "finca@example.com" && u.Role == entity.RoleProducer &&
				u.CreatedAt.Equal(createdAt) && u.CompanyName == company &&
				u.UpdatedAt != nil && u.UpdatedAt.Equal(fixedNow)
		})).
		Return(nil)
	fx.notifier.EXPECT().Notify(ctx, "Profile updated successfully", service.SeveritySuccess, service.DurationShort).Return().Once()

	user, err := fx.service.UpdateUserProfile(ctx, "producer-1", update)

	require.NoError(t, err)
	assert.Equal(t, "GG-1", user.Certifications[entity.CertificationGlobalGap].Number)
}

func TestProfileService_UpdateUserProfile_MissingProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	fx.users.EXPECT().FindByID(ctx, "ghost").Return(nil, domainerrors.ErrUserNotFound)
	fx.notifier.EXPECT().
		Notify(ctx, domainerrors.ErrUserNotFound.Message(), service.SeverityError, service.DurationLong).
		Return().Once()

	_, err := fx.service.UpdateUserProfile(ctx, "ghost", &entity.ProfileUpdate{})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_UpdateUserProfile_Validation(t *testing.T) {
	fx := createTestProfileService(t)

	fx.notifier.EXPECT().Notify(mock.Anything, mock.Anything, service.SeverityError, service.DurationLong).Return().Once()

	_, err := fx.service.UpdateUserProfile(context.Background(), "producer-1", &entity.ProfileUpdate{
		Certifications: map[entity.CertificationType]*entity.Certification{
			"organic":              {ValidUntil: "2026-01-31"},
			entity.CertificationEco: {ValidUntil: "31/01/2026"},
		},
	})

	var verr *domainerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "certifications.organic")
	assert.Contains(t, verr.Fields, "certifications.eco.validUntil")
}

func TestProfileService_EnsureProfile_CreatesDefaultProducer(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	identity := &service.Identity{UID: "firebase-uid", Email: "ana@example.com"}

	fx.users.EXPECT().FindByID(ctx, "firebase-uid").Return(nil, domainerrors.ErrUserNotFound)
	fx.users.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == "firebase-uid" && u.Role == entity.RoleProducer && u.Name == "ana" &&
				u.CreatedAt.Equal(fixedNow) && u.LastLogin != nil
		})).
		Return(nil)
	fx.notifier.EXPECT().Notify(ctx, "Welcome back!", service.SeveritySuccess, service.DurationShort).Return().Once()

	user, err := fx.service.EnsureProfile(ctx, identity)

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
}

func TestProfileService_EnsureProfile_RecordsLogin(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	stored := &entity.User{ID: "firebase-uid", Role: entity.RoleAdmin}

	fx.users.EXPECT().FindByID(ctx, "firebase-uid").Return(stored, nil)
	fx.users.EXPECT().Update(ctx, stored).Return(errors.New("write conflict"))
	fx.notifier.EXPECT().Notify(ctx, "Welcome back!", service.SeveritySuccess, service.DurationShort).Return().Once()

	user, err := fx.service.EnsureProfile(ctx, &service.Identity{UID: "firebase-uid"})

	// The login timestamp is best effort.
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	require.NotNil(t, user.LastLogin)
	assert.Equal(t, fixedNow, *user.LastLogin)
}

func TestProfileService_DeleteUser_Cascades(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthorizationRepository(t)
	offerRepo := mockRepo.NewMockOfferRepository(t)
	grant := &entity.Authorization{ID: "producer-1_tomato"}

	factory.EXPECT().NewUserRepository().Return(userRepo)
	factory.EXPECT().NewAuthorizationRepository().Return(authRepo)
	factory.EXPECT().NewOfferRepository().Return(offerRepo)

	userRepo.EXPECT().FindByID(ctx, "producer-1").Return(&entity.User{ID: "producer-1"}, nil)
	authRepo.EXPECT().FindByUser(ctx, "producer-1").Return([]*entity.Authorization{grant}, nil)
	authRepo.EXPECT().Delete(ctx, grant).Return(nil)
	offerRepo.EXPECT().Find(ctx, entity.OfferFilter{ProducerID: "producer-1"}).
		Return([]*entity.Offer{{ID: "offer-1"}, {ID: "offer-2"}}, nil)
	offerRepo.EXPECT().Delete(ctx, "offer-1").Return(nil)
	offerRepo.EXPECT().Delete(ctx, "offer-2").Return(nil)
	userRepo.EXPECT().Delete(ctx, "producer-1").Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	require.NoError(t, fx.service.DeleteUser(ctx, "producer-1"))
}

func TestProfileService_DeleteUser_MissingUser(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	factory.EXPECT().NewUserRepository().Return(userRepo)
	factory.EXPECT().NewAuthorizationRepository().Return(mockRepo.NewMockAuthorizationRepository(t))
	factory.EXPECT().NewOfferRepository().Return(mockRepo.NewMockOfferRepository(t))
	userRepo.EXPECT().FindByID(ctx, "ghost").Return(nil, domainerrors.ErrUserNotFound)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	assert.ErrorIs(t, fx.service.DeleteUser(ctx, "ghost"), domainerrors.ErrUserNotFound)
}

func TestProfileService_ListUsers(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	producers := []*entity.User{{ID: "producer-1", Role: entity.RoleProducer}}
	everyone := append([]*entity.User{{ID: "admin-1", Role: entity.RoleAdmin}}, producers...)

	fx.users.EXPECT().FindByRole(ctx, entity.RoleProducer).Return(producers, nil)
	fx.users.EXPECT().FindAll(ctx).Return(everyone, nil)

	got, err := fx.service.ListUsers(ctx, entity.RoleProducer)
	require.NoError(t, err)
	assert.Equal(t, producers, got)

	got, err = fx.service.ListUsers(ctx, "")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestProfileService_NearbyProducers(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	located := func(id string, lng, lat float64) *entity.User {
		return &entity.User{
			ID:      id,
			Role:    entity.RoleProducer,
			Address: &entity.Address{Location: &orb.Point{lng, lat}},
		}
	}

	// Murcia, Cartagena (~45 km), Valencia (~180 km), no location.
	murcia := located("murcia", -1.1307, 37.9922)
	cartagena := located("cartagena", -0.9857, 37.6257)
	valencia := located("valencia", -0.3763, 39.4699)
	unlocated := &entity.User{ID: "unlocated", Role: entity.RoleProducer}

	fx.users.EXPECT().FindByRole(ctx, entity.RoleProducer).
		Return([]*entity.User{valencia, cartagena, unlocated, murcia}, nil)

	nearby, err := fx.service.NearbyProducers(ctx, &usecase.NearbyQuery{Latitude: 37.9922, Longitude: -1.1307, Radius: 50_000})

	require.NoError(t, err)
	require.Len(t, nearby, 2)
	assert.Equal(t, "murcia", nearby[0].User.ID)
	assert.InDelta(t, 0, nearby[0].Distance, 1)
	assert.Equal(t, "cartagena", nearby[1].User.ID)
	assert.InDelta(t, 43_000, nearby[1].Distance, 3_000)
}

func TestProfileService_NearbyProducers_RejectsBadQuery(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.NearbyProducers(context.Background(), &usecase.NearbyQuery{Latitude: 91, Longitude: 0, Radius: 500_000})

	var verr *domainerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "lat")
	assert.Contains(t, verr.Fields, "radius")
}

func TestProfileService_ListUsers_UnknownRole(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.ListUsers(context.Background(), entity.Role("farmer"))

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
