package entity

import (
	"time"

	"github.com/google/uuid"
)

// Radius bounds for a consumer's area of interest, in miles.
const (
	MinRadiusMiles = 0.1
	MaxRadiusMiles = 9.9
)

// Consumer represents a shopper receiving deal notifications.
type Consumer struct {
	ID               uuid.UUID         `json:"id"`                // The Global Unique Identifier (GUID) for the consumer.
	Email            string            `json:"email"`             // Login identifier; unique per role.
	Name             string            `json:"name"`              // Display name.
	PasswordHash     string            `json:"-"`                 // Bcrypt hash, never serialized.
	DeliveryLocation *DeliveryLocation `json:"delivery_location"` // Delivery address; coordinates nil until geocoded.
	RadiusMiles      float64           `json:"radius_miles"`      // Area of interest around the delivery location, [0.1, 9.9].
	// Number of distinct purchase days before an item is auto-added to
	// favorites. Zero disables auto-add. Only 0, 3 and 6 are valid.
	AutoFavoriteThresholdDays int       `json:"auto_favorite_threshold_days"`
	Active                    bool      `json:"active"` // Consumers are deactivated, never hard-deleted.
	CreatedAt                 time.Time `json:"created_at"`
	UpdatedAt                 time.Time `json:"updated_at"`
}

// ValidRadius reports whether a radius lies inside the allowed interval.
func ValidRadius(miles float64) bool {
	return miles >= MinRadiusMiles && miles <= MaxRadiusMiles
}

// ValidAutoFavoriteThreshold reports whether the threshold is one of the
// supported values.
func ValidAutoFavoriteThreshold(days int) bool {
	return days == 0 || days == 3 || days == 6
}
