package location_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcommute/smartcommute/internal/location"
)

func TestFromCoordinates(t *testing.T) {
	loc, err := location.FromCoordinates(52.370216, 4.895168)
	require.NoError(t, err)

	assert.Equal(t, location.KindCoordinates, loc.Kind())

	lat, lon, ok := loc.Coordinates()
	require.True(t, ok)
	assert.Equal(t, 52.370216, lat)
	assert.Equal(t, 4.895168, lon)

	_, named := loc.Name()
	assert.False(t, named)
}

func TestFromCoordinates_OutOfRange(t *testing.T) {
	cases := []struct {
		name     string
		lat, lon float64
	}{
		{"lat too high", 91, 0},
		{"lat too low", -91, 0},
		{"lon too high", 0, 181},
		{"lon too low", 0, -181},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := location.FromCoordinates(tc.lat, tc.lon)
			assert.ErrorIs(t, err, location.ErrInvalidCoordinates)
		})
	}
}

func TestFromName(t *testing.T) {
	loc, err := location.FromName("IIT Kharagpur")
	require.NoError(t, err)

	assert.Equal(t, location.KindNamed, loc.Kind())

	name, ok := loc.Name()
	require.True(t, ok)
	assert.Equal(t, "IIT Kharagpur", name)

	_, _, coords := loc.Coordinates()
	assert.False(t, coords)
}

func TestFromName_Empty(t *testing.T) {
	_, err := location.FromName("")
	assert.ErrorIs(t, err, location.ErrEmptyName)
}

func TestFromName_CommaIsNotCoordinates(t *testing.T) {
	// A comma in a place name must not flip the variant.
	loc, err := location.FromName("Washington, DC")
	require.NoError(t, err)

	assert.Equal(t, location.KindNamed, loc.Kind())
	assert.Equal(t, "Washington, DC", loc.Query())
}

func TestQuery_Coordinates(t *testing.T) {
	loc, err := location.FromCoordinates(22.3158, 87.31)
	require.NoError(t, err)

	assert.Equal(t, "22.315800,87.310000", loc.Query())
}
