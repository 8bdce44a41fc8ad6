package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteItemModel is the GORM-specific struct for the 'favorite_items'
// table. ItemKey and BrandKey hold the normalized (lowercased, trimmed)
// forms; the composite unique index keys the catalog per consumer.
type FavoriteItemModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	ConsumerID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorite_consumer_item"`
	ItemKey         string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_favorite_consumer_item"`
	BrandKey        string    `gorm:"type:varchar(255);not null;default:'';uniqueIndex:idx_favorite_consumer_item"`
	ItemName        string    `gorm:"type:varchar(255);not null"`
	Brand           string    `gorm:"type:varchar(255)"`
	Category        string    `gorm:"type:varchar(64);not null"`
	IsBrandSpecific bool      `gorm:"not null;default:false"`
	IsOrganic       bool      `gorm:"not null;default:false"`
	Source          string    `gorm:"type:varchar(16);not null"`
	AddedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteItemModel) TableName() string {
	return "favorite_items"
}

// PurchaseModel is the GORM-specific struct for the 'purchases' table,
// the raw event log behind auto-favorite day counting.
type PurchaseModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	ConsumerID  uuid.UUID `gorm:"type:uuid;not null;index:idx_purchase_consumer_item"`
	ItemKey     string    `gorm:"type:varchar(255);not null;index:idx_purchase_consumer_item"`
	ItemName    string    `gorm:"type:varchar(255);not null"`
	PurchasedAt time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (PurchaseModel) TableName() string {
	return "purchases"
}
