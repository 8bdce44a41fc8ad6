package service

import (
	"context"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/errors"
)

// ErrAddressNotFound is returned when the geocoding provider cannot
// resolve an address to coordinates.
var ErrAddressNotFound = errors.New("address could not be geocoded")

// GeocodingService resolves street addresses to coordinates through an
// external provider.
type GeocodingService interface {
	// Geocode resolves a free-form address. Returns ErrAddressNotFound
	// when the provider has no result for it.
	Geocode(ctx context.Context, address string) (*entity.Coordinates, error)
}
