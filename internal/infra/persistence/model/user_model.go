package model

import (
	"time"

	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID          string   `gorm:"type:varchar(36);primaryKey"`
	Email       string   `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password    string   `gorm:"type:varchar(255)"`
	Role        string   `gorm:"type:varchar(20);not null;default:producer;index"`
	Name        string   `gorm:"type:varchar(100)"`
	CompanyName string   `gorm:"type:varchar(200)"`
	VATNumber   string   `gorm:"column:vat_number;type:varchar(50)"`
	Street      string   `gorm:"type:varchar(255)"`
	City        string   `gorm:"type:varchar(100)"`
	State       string   `gorm:"type:varchar(100)"`
	Country     string   `gorm:"type:varchar(100)"`
	PostalCode  string   `gorm:"type:varchar(20)"`
	Latitude    *float64 `gorm:"type:decimal(10,8)"`
	Longitude   *float64 `gorm:"type:decimal(11,8)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	LastLogin   *time.Time

	Certifications []CertificationModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns the primary key.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// CertificationModel mirrors the 'certifications' table. One row per user and certificate type.
type CertificationModel struct {
	ID         string     `gorm:"type:varchar(36);primaryKey"`
	UserID     string     `gorm:"type:varchar(36);not null;uniqueIndex:idx_certifications_user_type"`
	Type       string     `gorm:"type:varchar(20);not null;uniqueIndex:idx_certifications_user_type"`
	Number     string     `gorm:"type:varchar(100)"`
	ValidUntil *time.Time `gorm:"type:date"`
	Status     string     `gorm:"type:varchar(20)"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CertificationModel) TableName() string {
	return "certifications"
}

// BeforeCreate assigns the primary key.
func (m *CertificationModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}
