// Package geo provides great-circle distance math and radius queries over
// retailer coordinates. Distances use a spherical-earth approximation;
// matching always compares the unrounded value against the radius, while
// display rounds to one decimal place.
package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
)

const metersPerMile = 1609.344

// DistanceMiles returns the great-circle distance between two coordinates
// in miles.
func DistanceMiles(a, b entity.Coordinates) float64 {
	pa := orb.Point{a.Longitude, a.Latitude}
	pb := orb.Point{b.Longitude, b.Latitude}

	return orbgeo.Distance(pa, pb) / metersPerMile
}

// RoundMiles rounds a distance to one decimal place for display.
func RoundMiles(miles float64) float64 {
	return math.Round(miles*10) / 10
}

// RetailerDistance pairs a retailer with its unrounded distance from a
// query point.
type RetailerDistance struct {
	Retailer      *entity.Retailer
	DistanceMiles float64
}

// Within returns every locatable retailer lying within radiusMiles of
// center, with distances. Retailers lacking coordinates or inactive are
// excluded silently.
func Within(center entity.Coordinates, radiusMiles float64, retailers []*entity.Retailer) []RetailerDistance {
	var result []RetailerDistance
	for _, r := range retailers {
		if !r.Locatable() {
			continue
		}
		d := DistanceMiles(center, *r.Coordinates)
		if d <= radiusMiles {
			result = append(result, RetailerDistance{Retailer: r, DistanceMiles: d})
		}
	}

	return result
}
