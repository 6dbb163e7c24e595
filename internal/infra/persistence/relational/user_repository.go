package relational

import (
	"context"
	"time"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const certificationDateLayout = "2006-01-02"

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading certifications.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ?", email)
}

func (repo *userRepository) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var userM model.UserModel

	err := repo.db.WithContext(ctx).
		Preload("Certifications").
		Where(query, arg).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// FindAll lists every user ordered by creation time.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	return repo.findMany(repo.db.WithContext(ctx))
}

// FindByRole lists users with the given role.
func (repo *userRepository) FindByRole(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	return repo.findMany(repo.db.WithContext(ctx).Where("role = ?", string(role)))
}

func (repo *userRepository) findMany(query *gorm.DB) ([]*entity.User, error) {
	var userMs []model.UserModel
	if err := query.Preload("Certifications").Order("created_at ASC").Find(&userMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userMs))
	for i := range userMs {
		users = append(users, toUserDomain(&userMs[i]))
	}

	return users, nil
}

// Create persists a new user together with its certifications.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(userM).Error
	})
	if err != nil {
		switch violatedConstraint(err) {
		case uniqueConstraint:
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		case notNullConstraint:
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt

	return nil
}

// Update writes the mutable profile columns and replaces the certification rows.
// Email, role and creation time are never written here.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.UserModel{}).
			Where("id = ?", user.ID).
			Select("name", "company_name", "vat_number", "street", "city", "state", "country",
				"postal_code", "latitude", "longitude", "last_login", "updated_at").
			Updates(userM)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrUserNotFound
		}

		if err := tx.Where("user_id = ?", user.ID).Delete(&model.CertificationModel{}).Error; err != nil {
			return err
		}

		for i := range userM.Certifications {
			userM.Certifications[i].UserID = user.ID
		}

		if len(userM.Certifications) == 0 {
			return nil
		}

		return tx.Omit(clause.Associations).Create(&userM.Certifications).Error
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	return nil
}

// Delete removes the user and its certifications.
func (repo *userRepository) Delete(ctx context.Context, id string) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&model.CertificationModel{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", id).Delete(&model.UserModel{}).Error
	})
	if err != nil {
		if violatedConstraint(err) == foreignKeyConstraint {
			return domainerrors.ErrConflict.WithDetails("user still owns offers or authorizations")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user")
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.Password,
		Role:         entity.Role(data.Role),
		Name:         data.Name,
		CompanyName:  data.CompanyName,
		VATNumber:    data.VATNumber,
		CreatedAt:    data.CreatedAt,
		LastLogin:    data.LastLogin,
	}

	if !data.UpdatedAt.IsZero() {
		updatedAt := data.UpdatedAt
		user.UpdatedAt = &updatedAt
	}

	if data.Street != "" || data.City != "" || data.Country != "" || data.Latitude != nil {
		user.Address = &entity.Address{
			Street:     data.Street,
			City:       data.City,
			State:      data.State,
			Country:    data.Country,
			PostalCode: data.PostalCode,
		}
		if data.Latitude != nil && data.Longitude != nil {
			user.Address.Location = &orb.Point{*data.Longitude, *data.Latitude}
		}
	}

	if len(data.Certifications) > 0 {
		user.Certifications = make(map[entity.CertificationType]*entity.Certification, len(data.Certifications))
		for _, c := range data.Certifications {
			cert := &entity.Certification{Number: c.Number, Status: c.Status}
			if c.ValidUntil != nil {
				cert.ValidUntil = c.ValidUntil.Format(certificationDateLayout)
			}
			user.Certifications[entity.CertificationType(c.Type)] = cert
		}
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:          data.ID,
		Email:       data.Email,
		Password:    data.PasswordHash,
		Role:        string(data.Role),
		Name:        data.Name,
		CompanyName: data.CompanyName,
		VATNumber:   data.VATNumber,
		CreatedAt:   data.CreatedAt,
		LastLogin:   data.LastLogin,
	}

	if data.UpdatedAt != nil {
		userM.UpdatedAt = *data.UpdatedAt
	}

	if addr := data.Address; addr != nil {
		userM.Street = addr.Street
		userM.City = addr.City
		userM.State = addr.State
		userM.Country = addr.Country
		userM.PostalCode = addr.PostalCode
		if addr.Location != nil {
			lat, lng := addr.Location.Lat(), addr.Location.Lon()
			userM.Latitude = &lat
			userM.Longitude = &lng
		}
	}

	for certType, cert := range data.Certifications {
		if cert == nil {
			continue
		}

		userM.Certifications = append(userM.Certifications, model.CertificationModel{
			Type:       string(certType),
			Number:     cert.Number,
			ValidUntil: parseCertificationDate(cert.ValidUntil),
			Status:     cert.Status,
		})
	}

	return userM
}

// parseCertificationDate accepts a calendar date or an RFC 3339 timestamp. Anything else is
// stored as NULL, which expiry checks skip.
func parseCertificationDate(s string) *time.Time {
	for _, layout := range []string{certificationDateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

			return &d
		}
	}

	return nil
}
