// Package model contains the GORM-specific structs mapping domain
// entities onto PostgreSQL tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ConsumerModel is the GORM-specific struct for the 'consumers' table.
// Coordinates stay NULL until the delivery address has been geocoded.
type ConsumerModel struct {
	ID                        uuid.UUID `gorm:"type:uuid;primary_key"`
	Email                     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name                      string    `gorm:"type:varchar(255);not null"`
	PasswordHash              string    `gorm:"type:varchar(255);not null"`
	Address                   string    `gorm:"type:text"`
	Latitude                  *float64  `gorm:"type:decimal(9,6)"`
	Longitude                 *float64  `gorm:"type:decimal(9,6)"`
	RadiusMiles               float64   `gorm:"type:decimal(3,1);not null"`
	AutoFavoriteThresholdDays int       `gorm:"not null;default:0"`
	Active                    bool      `gorm:"not null;default:true"`
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConsumerModel) TableName() string {
	return "consumers"
}
