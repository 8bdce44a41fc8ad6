// Package classify maps free-text item names onto the fixed grocery
// taxonomy. Classification is pure and deterministic: the same input
// always yields the same result, so the favorite side and the deal side
// can compare categories and brands consistently.
package classify

import "strings"

// Result is the outcome of classifying a raw item name.
type Result struct {
	Name            string // Generic item name with any leading brand stripped.
	Brand           string // Empty when the input carried no brand prefix.
	Category        string // One of the fixed taxonomy, or Miscellaneous.
	IsBrandSpecific bool   // True iff a brand prefix was present.
	IsOrganic       bool
}

// Classify tags a raw item name with brand, category and organic flag.
// Input convention: a comma separates an optional leading brand from the
// generic name ("Quaker, Granola" -> brand "Quaker", name "Granola").
// Unmatched names fall into the Miscellaneous category; Classify never
// fails.
func Classify(raw string) Result {
	brand, name := splitBrand(raw)
	lower := strings.ToLower(name)

	return Result{
		Name:            name,
		Brand:           brand,
		Category:        categorize(lower),
		IsBrandSpecific: brand != "",
		IsOrganic:       strings.Contains(lower, "organic"),
	}
}

// splitBrand separates an optional "Brand, Name" prefix. Only the first
// comma is significant; the rest of the string is the generic name.
func splitBrand(raw string) (brand, name string) {
	before, after, found := strings.Cut(raw, ",")
	if !found {
		return "", strings.TrimSpace(raw)
	}

	brand = strings.TrimSpace(before)
	name = strings.TrimSpace(after)
	if name == "" {
		// A trailing comma with nothing after it is not a brand prefix.
		return "", brand
	}

	return brand, name
}

// categorize scores each category by the number of its keywords contained
// in the lowercase name and returns the best. Ties resolve to the earlier
// category in the fixed taxonomy order, keeping the result deterministic.
func categorize(lower string) string {
	bestCategory := CategoryMiscellaneous
	bestScore := 0

	for _, category := range Categories {
		score := 0
		for _, keyword := range categoryKeywords[category] {
			if strings.Contains(lower, keyword) {
				score++
			}
		}
		if score > bestScore {
			bestCategory = category
			bestScore = score
		}
	}

	return bestCategory
}
