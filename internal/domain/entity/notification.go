package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Notification is a durable per-consumer record of a matched deal.
// Exactly one exists per (consumer, deal) pair; the pair is the
// idempotency key, so re-running matching never duplicates it.
type Notification struct {
	ID         uuid.UUID `json:"id"`
	ConsumerID uuid.UUID `json:"consumer_id"`
	DealID     uuid.UUID `json:"deal_id"` // Weak reference.
	Message    string    `json:"message"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewDealNotification builds the notification record for a matched deal.
func NewDealNotification(consumerID uuid.UUID, deal *Deal, storeName string) *Notification {
	return &Notification{
		ID:         uuid.New(),
		ConsumerID: consumerID,
		DealID:     deal.ID,
		Message: fmt.Sprintf("New deal on %s - %.0f%% off at %s!",
			deal.Name, deal.ConsumerDiscountPercent, storeName),
		Read:      false,
		CreatedAt: time.Now(),
	}
}
