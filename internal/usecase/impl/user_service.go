// Package impl contains the implementation of the application's business logic.
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

	"go.uber.org/fx"
)

// UserServiceParams holds dependencies for the user service, injected by Fx
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Users        repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Notifier     service.Notifier
	Tracker      service.ActivityTracker
	Logger       *slog.Logger
}

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	users        repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	notifier     service.Notifier
	tracker      service.ActivityTracker
	logger       *slog.Logger
	now          func() time.Time
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		users:        params.Users,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		notifier:     params.Notifier,
		tracker:      params.Tracker,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// RegisterUser creates a password account. Admin accounts cannot self-register.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (_ *entity.User, err error) {
	defer trackCall(srv.tracker, constants.StoreUsers, "register")(&err)

	role := input.Role
	if role == "" {
		role = entity.DefaultRole
	}

	if !role.SelfAssignable() {
		return nil, domainerrors.ErrForbidden.WithDetails("role cannot be self-assigned")
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.log(ctx).Info("Starting user registration", slog.String("email", email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	var registeredUser *entity.User

	// Execute the lookup and creation within a single transaction where the store supports it.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		// 1. Check if this email is already registered.
		_, err := userRepo.FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("user registration failed")
		}

		// We expect a 'not found' error. If it's a different error, something went wrong.
		if !errors.Is(err, domainerrors.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user by email")
		}

		// 2. Create the user with its credential.
		newUser := &entity.User{
			Email:        email,
			PasswordHash: hashedPassword,
			Role:         role,
			Name:         input.Name,
			CompanyName:  input.CompanyName,
			CreatedAt:    srv.now().UTC(),
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}
		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute user registration transaction", slog.Any("error", err), slog.String("email", email))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}
	srv.log(ctx).Debug("User registered successfully", slog.String("user_id", registeredUser.ID))

	return registeredUser, nil
}

// Login checks the password and issues a token pair.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (_ *usecase.LoginOutput, err error) {
	defer trackCall(srv.tracker, constants.StoreUsers, "login")(&err)
	defer func() {
		notifyOutcome(ctx, srv.notifier, err, "Welcome back!", "Failed to sign in")
	}()

	email := strings.ToLower(strings.TrimSpace(input.Email))

	// 1. Find the account. An unknown email is reported like a wrong password.
	user, err := srv.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	// 2. Check the password. Accounts managed by the identity provider have none.
	if user.PasswordHash == "" || !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if srv.hasher.NeedsRehash(user.PasswordHash) {
		if rehashed, err := srv.hasher.Hash(input.Password); err == nil {
			user.PasswordHash = rehashed
		} else {
			srv.log(ctx).Warn("Failed to upgrade password hash", slog.String("user_id", user.ID), slog.Any("error", err))
		}
	}

	// 3. Generate new tokens.
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, entity.Roles{user.Role}.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	// 4. Record the login and any upgraded hash. The tokens stay valid if this fails.
	now := srv.now().UTC()
	user.LastLogin = &now
	if err := srv.users.Update(ctx, user); err != nil {
		srv.log(ctx).Warn("Failed to record last login", slog.String("user_id", user.ID), slog.Any("error", err))
	}

	srv.log(ctx).Debug("User logged in successfully", slog.String("user_id", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// RefreshToken issues a new token pair for a valid refresh token. The user's current role is
// read again so role changes take effect on refresh.
func (srv *userService) RefreshToken(ctx context.Context, refreshToken string) (_ *usecase.RefreshTokenOutput, err error) {
	defer trackCall(srv.tracker, constants.StoreUsers, "refresh_token")(&err)

	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, err.Error())
	}

	user, err := srv.users.FindByID(ctx, claims.UserID())
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	accessToken, newRefreshToken, err := srv.tokenService.GenerateTokens(user.ID, entity.Roles{user.Role}.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new tokens")
	}

	return &usecase.RefreshTokenOutput{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}
