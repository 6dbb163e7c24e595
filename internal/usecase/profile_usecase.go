package usecase

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/domain/service"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// GetUserProfile returns nil without error when the user has no profile.
	GetUserProfile(ctx context.Context, userID string) (*entity.User, error)

	// UpdateUserProfile changes the editable fields of an existing profile. A missing profile is
	// an error. Email, role and creation time never change.
	UpdateUserProfile(ctx context.Context, userID string, input *entity.ProfileUpdate) (*entity.User, error)

	// EnsureProfile returns the profile for a verified identity, creating a producer profile on
	// first login.
	EnsureProfile(ctx context.Context, identity *service.Identity) (*entity.User, error)

	// DeleteUser removes the user together with their authorizations and offers.
	DeleteUser(ctx context.Context, userID string) error

	ListUsers(ctx context.Context, role entity.Role) ([]*entity.User, error)

	// NearbyProducers lists producers whose address lies within Radius meters of the query point, nearest first.
	NearbyProducers(ctx context.Context, query *NearbyQuery) ([]*entity.NearbyProducer, error)
}

// NearbyQuery is a location search. A zero Radius uses the configured default.
type NearbyQuery struct {
	Latitude  float64
	Longitude float64
	Radius    float64
}
