package entity

import (
	"time"

	"github.com/google/uuid"
)

// StoreStatus is the lifecycle state of a retailer's storefront.
// Deals from a retailer are only matched while the store is live.
type StoreStatus string

const (
	StorePendingApproval StoreStatus = "pending_approval"
	StoreSandbox         StoreStatus = "sandbox"
	StorePendingLive     StoreStatus = "pending_live"
	StoreLive            StoreStatus = "live"
	StoreRejected        StoreStatus = "rejected"
	StoreSuspended       StoreStatus = "suspended"
)

// Terminal reports whether no further transitions are allowed from this state.
func (s StoreStatus) Terminal() bool {
	return s == StoreRejected || s == StoreSuspended
}

// CanTransitionTo reports whether the store-status state machine permits
// moving from s to next. Rejection and suspension are reachable from any
// non-terminal state by admin action.
func (s StoreStatus) CanTransitionTo(next StoreStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == StoreRejected || next == StoreSuspended {
		return true
	}

	switch s {
	case StorePendingApproval:
		return next == StoreSandbox
	case StoreSandbox:
		return next == StorePendingLive
	case StorePendingLive:
		return next == StoreLive
	default:
		return false
	}
}

// CanPostDeals reports whether the store may post deals at all. Sandbox
// stores post freely to stock up for the readiness checklist; only live
// stores ever generate notifications.
func (s StoreStatus) CanPostDeals() bool {
	return s == StoreSandbox || s == StorePendingLive || s == StoreLive
}

// Readiness thresholds gating the sandbox -> pending_live transition.
const (
	MinReadyDeals        = 2
	MinReadyDealQuantity = 5
)

// ReadinessChecklist captures what a sandbox retailer must have in place
// before requesting to go live.
type ReadinessChecklist struct {
	StoreHoursSet bool `json:"store_hours_set"`
	LogoPresent   bool `json:"logo_present"`
	ReadyDeals    int  `json:"ready_deals"` // Deals with quantity >= MinReadyDealQuantity.
}

// Satisfied reports whether every checklist item is met.
func (c ReadinessChecklist) Satisfied() bool {
	return c.StoreHoursSet && c.LogoPresent && c.ReadyDeals >= MinReadyDeals
}

// Retailer represents a store posting time-limited discounted deals.
type Retailer struct {
	ID           uuid.UUID    `json:"id"`
	Email        string       `json:"email"`
	Name         string       `json:"name"`       // Contact name.
	StoreName    string       `json:"store_name"` // Public storefront name used in notifications.
	PasswordHash string       `json:"-"`
	Address      string       `json:"address"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"` // Required before the retailer can appear in geo queries.
	StoreHours   string       `json:"store_hours"`
	LogoURL      string       `json:"logo_url"`
	StoreStatus  StoreStatus  `json:"store_status"`
	Active       bool         `json:"active"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Locatable reports whether the retailer may appear in geographic queries.
func (r *Retailer) Locatable() bool {
	return r.Active && r.Coordinates != nil
}

// Readiness builds the go-live checklist given the retailer's current
// count of sufficiently stocked deals.
func (r *Retailer) Readiness(readyDeals int) ReadinessChecklist {
	return ReadinessChecklist{
		StoreHoursSet: r.StoreHours != "",
		LogoPresent:   r.LogoURL != "",
		ReadyDeals:    readyDeals,
	}
}
