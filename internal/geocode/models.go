// Package geocode resolves free-text place names to coordinates.
package geocode

import "errors"

// Geocoding errors.
var (
	ErrNoResults           = errors.New("no geocoding results")
	ErrProviderUnavailable = errors.New("geocoding provider unavailable")
)

// Place is a resolved place name.
type Place struct {
	Name    string
	Country string
	Lat     float64
	Lon     float64
}
