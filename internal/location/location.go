// Package location provides a tagged representation of places a commute
// can start or end at. A Location is either a coordinate pair or a named
// place; the active variant is explicit, never inferred from string
// contents, so a place name containing a comma cannot be misread as
// coordinates.
package location

import (
	"errors"
	"fmt"
	"strconv"
)

// Kind identifies the active Location variant.
type Kind int

const (
	// KindCoordinates means the location is a lat/lon pair.
	KindCoordinates Kind = iota

	// KindNamed means the location is a free-text place name.
	KindNamed
)

// Errors returned by Location constructors.
var (
	ErrInvalidCoordinates = errors.New("coordinates out of range")
	ErrEmptyName          = errors.New("place name is empty")
)

// Location is either a coordinate pair or a named place.
// The zero value is not valid; use FromCoordinates or FromName.
type Location struct {
	kind Kind
	lat  float64
	lon  float64
	name string
}

// FromCoordinates creates a coordinate Location.
func FromCoordinates(lat, lon float64) (Location, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return Location{}, ErrInvalidCoordinates
	}
	return Location{kind: KindCoordinates, lat: lat, lon: lon}, nil
}

// FromName creates a named Location.
func FromName(name string) (Location, error) {
	if name == "" {
		return Location{}, ErrEmptyName
	}
	return Location{kind: KindNamed, name: name}, nil
}

// Kind returns the active variant.
func (l Location) Kind() Kind {
	return l.kind
}

// Coordinates returns the lat/lon pair and whether the location is a
// coordinate variant.
func (l Location) Coordinates() (lat, lon float64, ok bool) {
	if l.kind != KindCoordinates {
		return 0, 0, false
	}
	return l.lat, l.lon, true
}

// Name returns the place name and whether the location is a named variant.
func (l Location) Name() (string, bool) {
	if l.kind != KindNamed {
		return "", false
	}
	return l.name, true
}

// Query returns the location in the "lat,lon" or place-name form that
// the directions provider accepts as an origin/destination parameter.
func (l Location) Query() string {
	if l.kind == KindCoordinates {
		return strconv.FormatFloat(l.lat, 'f', 6, 64) + "," + strconv.FormatFloat(l.lon, 'f', 6, 64)
	}
	return l.name
}

// String implements fmt.Stringer for logging.
func (l Location) String() string {
	if l.kind == KindCoordinates {
		return fmt.Sprintf("coords(%.4f, %.4f)", l.lat, l.lon)
	}
	return "named(" + l.name + ")"
}
