package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// The composite unique index on (consumer_id, deal_id) is the idempotency key:
// re-posting a matching deal can never double-notify the same consumer.
type NotificationModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	ConsumerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_notification_consumer_deal"`
	DealID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_notification_consumer_deal"`
	Message    string    `gorm:"type:text;not null"`
	Read       bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
