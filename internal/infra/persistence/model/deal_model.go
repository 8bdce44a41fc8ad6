package model

import (
	"time"

	"github.com/google/uuid"
)

// DealModel is the GORM-specific struct for the 'deals' table.
type DealModel struct {
	ID                      uuid.UUID `gorm:"type:uuid;primary_key"`
	RetailerID              uuid.UUID `gorm:"type:uuid;not null;index"`
	Name                    string    `gorm:"type:varchar(255);not null"`
	Category                string    `gorm:"type:varchar(64);not null;index"`
	Brand                   string    `gorm:"type:varchar(255)"`
	RegularPrice            float64   `gorm:"type:decimal(10,2);not null"`
	DealPrice               float64   `gorm:"type:decimal(10,2);not null"`
	DiscountLevel           int       `gorm:"not null"`
	RetailerDiscountPercent float64   `gorm:"type:decimal(5,2);not null"`
	ConsumerDiscountPercent float64   `gorm:"type:decimal(5,2);not null"`
	Quantity                int       `gorm:"not null"`
	Expiry                  time.Time `gorm:"not null"`
	Status                  string    `gorm:"type:varchar(32);not null;index"`
	PostedAt                time.Time
}

// TableName explicitly sets the table name for GORM.
func (DealModel) TableName() string {
	return "deals"
}
