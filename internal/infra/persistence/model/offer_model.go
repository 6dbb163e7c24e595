package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OfferModel mirrors the 'offers' table.
type OfferModel struct {
	ID                  string         `gorm:"type:varchar(36);primaryKey"`
	ProducerID          string         `gorm:"type:varchar(36);not null;index"`
	WeekNumber          int            `gorm:"not null;index"`
	Description         string         `gorm:"type:text"`
	Status              string         `gorm:"type:varchar(20);not null;default:submitted;index"`
	Feedback            string         `gorm:"type:text"`
	DeliveryAllocations datatypes.JSON `gorm:"type:json"`
	CreatedAt           time.Time      `gorm:"index"`
	UpdatedAt           *time.Time     `gorm:"autoUpdateTime:false"`
	ReviewedAt          *time.Time

	Producer *UserModel          `gorm:"foreignKey:ProducerID;constraint:OnDelete:CASCADE"`
	Products []OfferProductModel `gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}

// BeforeCreate assigns the primary key.
func (m *OfferModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// OfferProductModel mirrors the 'offer_products' table. Position keeps the submitted order.
type OfferProductModel struct {
	ID            string          `gorm:"type:varchar(36);primaryKey"`
	OfferID       string          `gorm:"type:varchar(36);not null;index"`
	ProductID     string          `gorm:"type:varchar(100);not null"`
	Position      int             `gorm:"not null;default:0"`
	Variety       string          `gorm:"type:varchar(100)"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TotalQuantity decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt     time.Time

	Product         *ProductModel        `gorm:"foreignKey:ProductID"`
	DailyQuantities []DailyQuantityModel `gorm:"foreignKey:OfferProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OfferProductModel) TableName() string {
	return "offer_products"
}

// BeforeCreate assigns the primary key.
func (m *OfferProductModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// DailyQuantityModel mirrors the 'daily_quantities' table.
type DailyQuantityModel struct {
	ID             string          `gorm:"type:varchar(36);primaryKey"`
	OfferProductID string          `gorm:"type:varchar(36);not null;index"`
	DayOfWeek      string          `gorm:"type:varchar(10);not null"`
	Quantity       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (DailyQuantityModel) TableName() string {
	return "daily_quantities"
}

// BeforeCreate assigns the primary key.
func (m *DailyQuantityModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}
