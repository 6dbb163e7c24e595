package document

import (
	"context"
	"time"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"

	"cloud.google.com/go/firestore"
)

// userRepository implements repository.UserRepository. The document ID is the identity provider UID.
type userRepository struct {
	client *firestore.Client
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (repo *userRepository) collection() *firestore.CollectionRef {
	return repo.client.Collection(usersCollection)
}

func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	snap, err := repo.collection().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return decodeUser(snap)
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	snaps, err := repo.collection().Where("email", "==", email).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by email")
	}
	if len(snaps) == 0 {
		return nil, domainerrors.ErrUserNotFound
	}

	return decodeUser(snaps[0])
}

func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	return repo.findMany(ctx, repo.collection().Query)
}

func (repo *userRepository) FindByRole(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	return repo.findMany(ctx, repo.collection().Where("role", "==", string(role)))
}

func (repo *userRepository) findMany(ctx context.Context, query firestore.Query) ([]*entity.User, error) {
	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	return decodeAll(snaps, decodeUser)
}

// Create writes a new user document. Email uniqueness is checked with a lookup first.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if _, err := repo.FindByEmail(ctx, user.Email); err == nil {
		return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
	}

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	ref := repo.collection().NewDoc()
	if user.ID != "" {
		ref = repo.collection().Doc(user.ID)
	}

	if _, err := ref.Create(ctx, fromUserDomain(user)); err != nil {
		if isAlreadyExists(err) {
			return domainerrors.ErrUserAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = ref.ID

	return nil
}

// Update rewrites the mutable profile fields. Email, role and createdAt are left as stored.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	d := fromUserDomain(user)
	updates := []firestore.Update{
		{Path: "name", Value: d.Name},
		{Path: "companyName", Value: d.CompanyName},
		{Path: "vatNumber", Value: d.VATNumber},
		{Path: "address", Value: d.Address},
		{Path: "certifications", Value: d.Certifications},
		{Path: "updatedAt", Value: d.UpdatedAt},
		{Path: "lastLogin", Value: d.LastLogin},
	}

	if _, err := repo.collection().Doc(user.ID).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	return nil
}

// Delete removes the user document only.
func (repo *userRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.collection().Doc(id).Delete(ctx); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user")
	}

	return nil
}

func decodeUser(snap *firestore.DocumentSnapshot) (*entity.User, error) {
	var d userDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode user "+snap.Ref.ID)
	}

	return toUserDomain(snap.Ref.ID, &d), nil
}
