package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// FavoriteSource records how a favorite entered the catalog.
type FavoriteSource string

const (
	FavoriteSourceManual FavoriteSource = "manual"
	FavoriteSourceAuto   FavoriteSource = "auto"
)

// FavoriteItem is one entry in a consumer's favorite-item catalog.
// Uniqueness per consumer is keyed on the normalized (name, brand) pair.
type FavoriteItem struct {
	ID              uuid.UUID      `json:"id"`
	ConsumerID      uuid.UUID      `json:"consumer_id"`
	ItemName        string         `json:"item_name"` // Generic item name, matching is case-insensitive.
	Brand           string         `json:"brand,omitempty"`
	Category        string         `json:"category"` // Auto-assigned from the fixed taxonomy.
	IsBrandSpecific bool           `json:"is_brand_specific"`
	IsOrganic       bool           `json:"is_organic"`
	Source          FavoriteSource `json:"source"`
	AddedAt         time.Time      `json:"added_at"`
}

// NormalizeFavoriteKey lowercases and trims a name or brand for the
// per-consumer uniqueness key.
func NormalizeFavoriteKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// MatchesDeal reports whether the favorite matches a classified deal:
// the categories must be equal, and a brand-specific favorite additionally
// requires the exact brand. A generic favorite matches any brand in its
// category.
func (f *FavoriteItem) MatchesDeal(deal *Deal) bool {
	if f.Category != deal.Category {
		return false
	}
	if !f.IsBrandSpecific {
		return true
	}

	return strings.EqualFold(f.Brand, deal.Brand)
}
