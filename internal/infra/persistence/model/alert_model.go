package model

import (
	"time"

	"gorm.io/gorm"
)

// AlertModel mirrors the 'alerts' table.
type AlertModel struct {
	ID                string    `gorm:"type:varchar(36);primaryKey"`
	Type              string    `gorm:"type:varchar(20);not null"`
	Title             string    `gorm:"type:varchar(255);not null"`
	Message           string    `gorm:"type:text"`
	UserID            string    `gorm:"type:varchar(36);index:idx_alerts_user_cert"`
	CertificationType string    `gorm:"type:varchar(20);index:idx_alerts_user_cert"`
	ExpiryDate        string    `gorm:"type:varchar(32)"`
	Status            string    `gorm:"type:varchar(20);not null;default:new;index"`
	Timestamp         time.Time `gorm:"index"`
	LastModified      *time.Time
}

// TableName explicitly sets the table name for GORM.
func (AlertModel) TableName() string {
	return "alerts"
}

// BeforeCreate assigns the primary key.
func (m *AlertModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// NewsModel mirrors the 'news' table.
type NewsModel struct {
	ID        string     `gorm:"type:varchar(36);primaryKey"`
	Title     string     `gorm:"type:varchar(255);not null"`
	Content   string     `gorm:"type:text"`
	Active    bool       `gorm:"not null;default:true"`
	CreatedBy string     `gorm:"type:varchar(36)"`
	Timestamp time.Time  `gorm:"index"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (NewsModel) TableName() string {
	return "news"
}

// BeforeCreate assigns the primary key.
func (m *NewsModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}
