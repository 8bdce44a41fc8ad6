package model

import (
	"time"

	"github.com/google/uuid"
)

// RetailerModel is the GORM-specific struct for the 'retailers' table.
type RetailerModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name         string    `gorm:"type:varchar(255);not null"`
	StoreName    string    `gorm:"type:varchar(255);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Address      string    `gorm:"type:text"`
	Latitude     *float64  `gorm:"type:decimal(9,6)"`
	Longitude    *float64  `gorm:"type:decimal(9,6)"`
	StoreHours   string    `gorm:"type:varchar(255)"`
	LogoURL      string    `gorm:"type:text"`
	StoreStatus  string    `gorm:"type:varchar(32);not null;index"`
	Active       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (RetailerModel) TableName() string {
	return "retailers"
}
