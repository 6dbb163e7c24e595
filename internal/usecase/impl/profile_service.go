package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"market/config"
	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/constants"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/domain/service"
	"market/internal/errors"
	"market/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"go.uber.org/fx"
)

const (
	defaultNearbyRadius = 50_000.0  // meters
	maxNearbyRadius     = 500_000.0 // meters
)

// ProfileServiceParams holds dependencies for the profile service, injected by Fx
type ProfileServiceParams struct {
	fx.In

	Config    *config.Config
	TxManager repository.TransactionManager
	Users     repository.UserRepository
	Notifier  service.Notifier
	Tracker   service.ActivityTracker
	Logger    *slog.Logger
}

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager     repository.TransactionManager
	users         repository.UserRepository
	notifier      service.Notifier
	tracker       service.ActivityTracker
	logger        *slog.Logger
	defaultRadius float64
	maxRadius     float64
	now           func() time.Time
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	srv := &profileService{
		txManager:     params.TxManager,
		users:         params.Users,
		notifier:      params.Notifier,
		tracker:       params.Tracker,
		logger:        params.Logger,
		defaultRadius: defaultNearbyRadius,
		maxRadius:     maxNearbyRadius,
		now:           time.Now,
	}

	if cfg := params.Config; cfg != nil && cfg.Producers != nil {
		if cfg.Producers.DefaultRadius > 0 {
			srv.defaultRadius = cfg.Producers.DefaultRadius
		}

		if cfg.Producers.MaxRadius > 0 {
			srv.maxRadius = cfg.Producers.MaxRadius
		}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// GetUserProfile returns the stored profile, or nil when there is none.
func (srv *profileService) GetUserProfile(ctx context.Context, userID string) (_ *entity.User, err error) {
	defer trackCall(srv.tracker, constants.StoreUsers, "get_profile")(&err)

	user, err := srv.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to get user profile")
	}

	return user, nil
}

// UpdateUserProfile merges the editable fields into an existing profile.
func (srv *profileService) UpdateUserProfile(ctx context.Context, userID string, input *entity.ProfileUpdate) (_ *entity.User, err error) {
	defer trackCall(srv.tracker, constants.StoreUsers, "update_profile")(&err)
	defer func() {
		notifyOutcome(ctx, srv.notifier, err, "Profile updated successfully", "Failed to update profile")
	}()

	if userID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("Invalid user ID")
	}

	if err := validateProfileUpdate(input); err != nil {
		return nil, err
	}

	user, err := srv.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("User profile not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	now := srv.now().UTC()
	input.Apply(user)
	user.UpdatedAt = &now

	if err := srv.users.Update(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to update user profile", slog.Any("error", err), slog.String("user_id", userID))

		return nil, errors.Wrap(err, "failed to update user profile")
	}

	return user, nil
}

// EnsureProfile loads the profile of a verified identity and records the login, creating a
// default producer profile the first time the identity is seen.
func (srv *profileService) EnsureProfile(ctx context.Context, identity *service.Identity) (_ *entity.User, err error) {
	defer trackCall(srv.tracker, constants.StoreUsers, "ensure_profile")(&err)
	defer func() {
		notifyOutcome(ctx, srv.notifier, err, "Welcome back!", "Failed to load user profile")
	}()

	if identity == nil || identity.UID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("Invalid user ID")
	}

	now := srv.now().UTC()

	user, err := srv.users.FindByID(ctx, identity.UID)
	if err == nil {
		user.LastLogin = &now
		if err := srv.users.Update(ctx, user); err != nil {
			srv.log(ctx).Warn("Failed to record last login", slog.String("user_id", user.ID), slog.Any("error", err))
		}

		return user, nil
	}

	if !errors.Is(err, domainerrors.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user")
	}

	user = &entity.User{
		ID:        identity.UID,
		Email:     identity.Email,
		Name:      defaultDisplayName(identity),
		Role:      entity.DefaultRole,
		CreatedAt: now,
		LastLogin: &now,
	}
	if err := srv.users.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create default profile")
	}

	srv.log(ctx).Info("Default profile created", slog.String("user_id", user.ID))

	return user, nil
}

func defaultDisplayName(identity *service.Identity) string {
	if identity.Name != "" {
		return identity.Name
	}

	local, _, _ := strings.Cut(identity.Email, "@")

	return local
}

// DeleteUser removes a user with their authorizations and offers in one transaction where the
// store supports it.
func (srv *profileService) DeleteUser(ctx context.Context, userID string) (err error) {
	defer trackCall(srv.tracker, constants.StoreUsers, "delete")(&err)

	srv.log(ctx).Info("Deleting user", slog.String("user_id", userID))

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		authRepo := repoFactory.NewAuthorizationRepository()
		offerRepo := repoFactory.NewOfferRepository()

		// 1. Verify user exists
		if _, err := userRepo.FindByID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		// 2. Revoke product grants
		grants, err := authRepo.FindByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find authorizations")
		}

		for _, grant := range grants {
			if err := authRepo.Delete(ctx, grant); err != nil {
				return errors.Wrap(err, "failed to delete authorization")
			}
		}

		// 3. Remove offers with their line items
		offers, err := offerRepo.Find(ctx, entity.OfferFilter{ProducerID: userID})
		if err != nil {
			return errors.Wrap(err, "failed to find offers")
		}

		for _, offer := range offers {
			if err := offerRepo.Delete(ctx, offer.ID); err != nil {
				return errors.Wrap(err, "failed to delete offer")
			}
		}

		// 4. Remove the user
		if err := userRepo.Delete(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to delete user", slog.Any("error", err), slog.String("user_id", userID))

		return errors.Wrap(err, "failed to delete user")
	}

	return nil
}

// ListUsers lists users with role, or every user when role is empty.
func (srv *profileService) ListUsers(ctx context.Context, role entity.Role) (_ []*entity.User, err error) {
	defer trackCall(srv.tracker, constants.StoreUsers, "list")(&err)

	if role != "" && !role.IsValid() {
		return nil, domainerrors.NewValidationError().Add("role", "must be one of admin, producer, supermarket")
	}

	var users []*entity.User
	if role == "" {
		users, err = srv.users.FindAll(ctx)
	} else {
		users, err = srv.users.FindByRole(ctx, role)
	}

	if err != nil {
		return nil, errors.Wrap(err, "failed to load users")
	}

	return users, nil
}

// NearbyProducers finds producers with a located address inside the search radius.
func (srv *profileService) NearbyProducers(ctx context.Context, query *usecase.NearbyQuery) (_ []*entity.NearbyProducer, err error) {
	defer trackCall(srv.tracker, constants.StoreUsers, "nearby_producers")(&err)

	if query == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("location is required")
	}

	verr := domainerrors.NewValidationError()
	if query.Latitude < -90 || query.Latitude > 90 {
		verr.Add("lat", "must be between -90 and 90")
	}

	if query.Longitude < -180 || query.Longitude > 180 {
		verr.Add("lng", "must be between -180 and 180")
	}

	if query.Radius < 0 || query.Radius > srv.maxRadius {
		verr.Add("radius", "out of range")
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	radius := query.Radius
	if radius == 0 {
		radius = srv.defaultRadius
	}

	producers, err := srv.users.FindByRole(ctx, entity.RoleProducer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load producers")
	}

	center := orb.Point{query.Longitude, query.Latitude}
	nearby := make([]*entity.NearbyProducer, 0)
	for _, producer := range producers {
		if producer.Address == nil || producer.Address.Location == nil {
			continue
		}

		distance := geo.DistanceHaversine(center, *producer.Address.Location)
		if distance <= radius {
			nearby = append(nearby, &entity.NearbyProducer{User: producer, Distance: distance})
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].Distance < nearby[j].Distance
	})

	return nearby, nil
}

func validateProfileUpdate(input *entity.ProfileUpdate) error {
	verr := domainerrors.NewValidationError()
	if input == nil {
		verr.Add("profile", "is required")

		return verr
	}

	for certType, cert := range input.Certifications {
		if !certType.IsValid() {
			verr.Add("certifications."+string(certType), "unknown certification type")

			continue
		}

		if cert == nil {
			continue
		}

		if cert.ValidUntil != "" {
			if _, ok := parseExpiryDate(cert.ValidUntil); !ok {
				verr.Add("certifications."+string(certType)+".validUntil", "must be a date (YYYY-MM-DD)")
			}
		}
	}

	if a := input.Address; a != nil && a.Location != nil {
		if lat := a.Location.Lat(); lat < -90 || lat > 90 {
			verr.Add("address.location", "latitude must be between -90 and 90")
		}

		if lng := a.Location.Lon(); lng < -180 || lng > 180 {
			verr.Add("address.location", "longitude must be between -180 and 180")
		}
	}

	return verr.OrNil()
}
