package geo

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
)

func coords(lat, lng float64) *entity.Coordinates {
	return &entity.Coordinates{Latitude: lat, Longitude: lng}
}

func retailerAt(lat, lng float64) *entity.Retailer {
	return &entity.Retailer{
		ID:          uuid.New(),
		Coordinates: coords(lat, lng),
		Active:      true,
		StoreStatus: entity.StoreLive,
	}
}

func TestDistanceMiles_KnownPairs(t *testing.T) {
	// One degree of latitude is roughly 69 miles.
	d := DistanceMiles(entity.Coordinates{Latitude: 40.0, Longitude: -75.0},
		entity.Coordinates{Latitude: 41.0, Longitude: -75.0})
	assert.InDelta(t, 69.0, d, 0.5)

	// Identical points are zero distance apart.
	p := entity.Coordinates{Latitude: 40.0, Longitude: -75.0}
	assert.Equal(t, 0.0, DistanceMiles(p, p))

	// Symmetry.
	a := entity.Coordinates{Latitude: 40.0, Longitude: -75.0}
	b := entity.Coordinates{Latitude: 40.1, Longitude: -75.2}
	assert.InDelta(t, DistanceMiles(a, b), DistanceMiles(b, a), 1e-9)
}

func TestRoundMiles(t *testing.T) {
	assert.Equal(t, 3.1, RoundMiles(3.14159))
	assert.Equal(t, 3.2, RoundMiles(3.15))
	assert.Equal(t, 0.0, RoundMiles(0.04))
}

func TestWithin_FiltersByRadius(t *testing.T) {
	center := entity.Coordinates{Latitude: 40.0, Longitude: -75.0}

	near := retailerAt(40.03, -75.0)  // ~2 miles north
	far := retailerAt(40.3, -75.0)    // ~20 miles north
	noCoords := &entity.Retailer{ID: uuid.New(), Active: true}
	inactive := retailerAt(40.03, -75.0)
	inactive.Active = false

	result := Within(center, 5.0, []*entity.Retailer{near, far, noCoords, inactive})

	if assert.Len(t, result, 1) {
		assert.Equal(t, near.ID, result[0].Retailer.ID)
		assert.InDelta(t, 2.07, result[0].DistanceMiles, 0.1)
	}
}

func TestWithin_UsesUnroundedDistance(t *testing.T) {
	center := entity.Coordinates{Latitude: 40.0, Longitude: -75.0}

	// ~5.04 miles away: rounds to 5.0 for display but must not match a
	// 5.0-mile radius, since matching uses the unrounded value.
	edge := retailerAt(40.073, -75.0)
	d := DistanceMiles(center, *edge.Coordinates)

	if d > 5.0 {
		assert.Empty(t, Within(center, 5.0, []*entity.Retailer{edge}))
	}
	assert.NotEmpty(t, Within(center, d, []*entity.Retailer{edge}))
}
