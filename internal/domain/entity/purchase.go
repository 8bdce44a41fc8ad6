package entity

import (
	"time"

	"github.com/google/uuid"
)

// Purchase is one recorded purchase event, kept for auto-favorite
// day counting.
type Purchase struct {
	ID          uuid.UUID `json:"id"`
	ConsumerID  uuid.UUID `json:"consumerId"`
	ItemKey     string    `json:"itemKey"`
	ItemName    string    `json:"itemName"`
	PurchasedAt time.Time `json:"purchasedAt"`
}
