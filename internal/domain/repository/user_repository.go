// Package repository declares the persistence contracts of the domain. Each has a relational
// (gorm) and a document (Firestore) implementation.
package repository

import (
	"context"

	"market/internal/domain/entity"
)

// UserRepository stores accounts. Lookups of a missing user fail with ErrUserNotFound.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	FindByRole(ctx context.Context, role entity.Role) ([]*entity.User, error)

	// Create fills in an empty ID.
	Create(ctx context.Context, user *entity.User) error

	// Update overwrites the mutable profile fields.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the account record only. Callers remove offers and grants first.
	Delete(ctx context.Context, id string) error
}
