// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Coordinates is a geographic point on the spherical-earth approximation
// used by all distance computations.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DeliveryLocation is a consumer's delivery address. Coordinates stay nil
// until the address has been successfully geocoded; roster computation
// requires resolved coordinates.
type DeliveryLocation struct {
	Address     string       `json:"address"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// Geocoded reports whether the location has resolved coordinates.
func (l *DeliveryLocation) Geocoded() bool {
	return l != nil && l.Coordinates != nil
}
