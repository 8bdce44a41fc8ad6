package entity

import (
	"time"

	"github.com/google/uuid"
)

// RosterEntry links a consumer to one retailer they receive deals from.
// Exactly one entry exists per (consumer, retailer) pair; recomputation
// updates entries in place and never duplicates them.
type RosterEntry struct {
	ID              uuid.UUID `json:"id"`
	ConsumerID      uuid.UUID `json:"consumer_id"`
	RetailerID      uuid.UUID `json:"retailer_id"` // Weak reference, no ownership.
	DistanceMiles   float64   `json:"distance_miles"`
	InsideRadius    bool      `json:"inside_radius"`
	ManuallyAdded   bool      `json:"manually_added"`
	ManuallyRemoved bool      `json:"manually_removed"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Visible reports whether the entry is eligible for matching:
// (inside_radius OR manually_added) AND NOT manually_removed.
func (e *RosterEntry) Visible() bool {
	return (e.InsideRadius || e.ManuallyAdded) && !e.ManuallyRemoved
}

// Prunable reports whether the entry carries no information worth keeping:
// out of range with no manual history.
func (e *RosterEntry) Prunable() bool {
	return !e.InsideRadius && !e.ManuallyAdded && !e.ManuallyRemoved
}
