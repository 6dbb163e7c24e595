package model

import (
	"time"

	"gorm.io/gorm"
)

// ProductModel mirrors the 'products' table. The ID is the slug of the name.
type ProductModel struct {
	ID        string     `gorm:"type:varchar(100);primaryKey"`
	Name      string     `gorm:"type:varchar(200);not null"`
	Category  string     `gorm:"type:varchar(100)"`
	Unit      string     `gorm:"type:varchar(50)"`
	BoxSize   string     `gorm:"type:varchar(50)"`
	CreatedAt time.Time
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false"`

	Varieties []ProductVarietyModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductVarietyModel mirrors the 'product_varieties' table.
type ProductVarietyModel struct {
	ID        string `gorm:"type:varchar(36);primaryKey"`
	ProductID string `gorm:"type:varchar(100);not null;index"`
	Name      string `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductVarietyModel) TableName() string {
	return "product_varieties"
}

// BeforeCreate assigns the primary key.
func (m *ProductVarietyModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// AuthorizedProductModel mirrors the 'authorized_products' join table.
type AuthorizedProductModel struct {
	UserID       string `gorm:"type:varchar(36);primaryKey"`
	ProductID    string `gorm:"type:varchar(100);primaryKey"`
	AuthorizedAt time.Time

	User    *UserModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AuthorizedProductModel) TableName() string {
	return "authorized_products"
}
