// Package usecase declares the application operations the delivery layer calls, with their
// inputs and outputs. Implementations live in usecase/impl.
package usecase

import (
	"context"

	"market/internal/domain/entity"
)

// UserUsecase covers accounts that sign in with email and password.
type UserUsecase interface {
	// RegisterUser creates an account. Role defaults to producer; admin cannot be chosen.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*entity.User, error)

	// Login checks the password and issues a token pair. Unknown emails and wrong passwords both
	// fail with ErrInvalidCredentials.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// RefreshToken exchanges a refresh token for a new pair carrying the user's current role.
	RefreshToken(ctx context.Context, refreshToken string) (*RefreshTokenOutput, error)
}

type RegisterUserInput struct {
	Name        string
	Email       string
	Password    string
	Role        entity.Role
	CompanyName string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}
