package entity

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/errors"
)

// DealStatus is the availability state of a posted deal.
// Status transitions never trigger re-matching.
type DealStatus string

const (
	DealAvailable    DealStatus = "available"
	DealUnavailable  DealStatus = "unavailable"
	DealAdminRemoved DealStatus = "admin_removed"
)

// CanTransitionTo reports whether the deal status may move to next.
func (s DealStatus) CanTransitionTo(next DealStatus) bool {
	switch s {
	case DealAvailable:
		return next == DealUnavailable || next == DealAdminRemoved
	case DealUnavailable:
		return next == DealAdminRemoved
	default:
		return false
	}
}

// ErrInvalidDiscountLevel is returned for discount levels outside 1-3.
var ErrInvalidDiscountLevel = errors.New("invalid discount level, only levels 1-3 are supported")

// DiscountForLevel maps a discount level to the retailer-side and
// consumer-side discount percentages.
//
//	Level 1: retailer 60%, consumer sees 50% off
//	Level 2: retailer 75%, consumer sees 60% off
//	Level 3: retailer 90%, consumer sees 75% off
func DiscountForLevel(level int) (retailerPct, consumerPct float64, err error) {
	switch level {
	case 1:
		return 60.0, 50.0, nil
	case 2:
		return 75.0, 60.0, nil
	case 3:
		return 90.0, 75.0, nil
	default:
		return 0, 0, ErrInvalidDiscountLevel
	}
}

// DealPrice computes the final consumer price for a regular price and
// consumer discount percentage, rounded to cents.
func DealPrice(regularPrice, consumerPct float64) float64 {
	return math.Round(regularPrice*(1-consumerPct/100)*100) / 100
}

// Deal is a retailer-posted, time-limited discounted item. Once matching
// has run against it, a deal is immutable except for quantity decrements
// and status transitions.
type Deal struct {
	ID                      uuid.UUID  `json:"id"`
	RetailerID              uuid.UUID  `json:"retailer_id"`
	Name                    string     `json:"name"`            // Generic item name, brand prefix stripped.
	Category                string     `json:"category"`        // One of the fixed taxonomy, auto-assigned if absent.
	Brand                   string     `json:"brand,omitempty"` // Empty for generic items.
	RegularPrice            float64    `json:"regular_price"`
	DealPrice               float64    `json:"deal_price"`
	DiscountLevel           int        `json:"discount_level"`
	RetailerDiscountPercent float64    `json:"retailer_discount_percent"`
	ConsumerDiscountPercent float64    `json:"consumer_discount_percent"`
	Quantity                int        `json:"quantity"`
	Expiry                  time.Time  `json:"expiry"`
	Status                  DealStatus `json:"status"`
	PostedAt                time.Time  `json:"posted_at"`
}
