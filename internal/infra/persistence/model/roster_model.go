package model

import (
	"time"

	"github.com/google/uuid"
)

// RosterEntryModel is the GORM-specific struct for the 'roster_entries'
// table. The composite unique index enforces one entry per
// consumer-retailer pair.
type RosterEntryModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	ConsumerID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_roster_consumer_retailer"`
	RetailerID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_roster_consumer_retailer;index"`
	DistanceMiles   float64   `gorm:"type:decimal(6,3);not null;default:0"`
	InsideRadius    bool      `gorm:"not null;default:false"`
	ManuallyAdded   bool      `gorm:"not null;default:false"`
	ManuallyRemoved bool      `gorm:"not null;default:false"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (RosterEntryModel) TableName() string {
	return "roster_entries"
}
