package advisor

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/smartcommute/smartcommute/internal/airquality"
	"github.com/smartcommute/smartcommute/internal/directions"
	"github.com/smartcommute/smartcommute/internal/geocode"
	"github.com/smartcommute/smartcommute/internal/location"
	"github.com/smartcommute/smartcommute/internal/weather"
)

// AirQualityProvider fetches an air quality observation for a location.
type AirQualityProvider interface {
	GetObservation(ctx context.Context, loc location.Location) (*airquality.Observation, error)
}

// Geocoder resolves a place name to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, placeName string) (*geocode.Place, error)
}

// WeatherProvider fetches a weather report for coordinates.
type WeatherProvider interface {
	GetReport(ctx context.Context, lat, lon float64) (*weather.Report, error)
}

// DirectionsProvider fetches a commute leg for a travel mode.
type DirectionsProvider interface {
	GetLeg(ctx context.Context, origin, destination location.Location, mode directions.Mode) (*directions.Leg, error)
}

// ServiceConfig holds the providers the aggregator fans out to.
type ServiceConfig struct {
	AirQuality AirQualityProvider
	Geocoder   Geocoder
	Weather    WeatherProvider
	Directions DirectionsProvider

	// Logger for aggregation diagnostics.
	Logger zerolog.Logger
}

// Service aggregates provider signals into CommuteSignals.
type Service struct {
	airQuality AirQualityProvider
	geocoder   Geocoder
	weather    WeatherProvider
	directions DirectionsProvider
	logger     zerolog.Logger
}

// NewService creates a new aggregation service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		airQuality: cfg.AirQuality,
		geocoder:   cfg.Geocoder,
		weather:    cfg.Weather,
		directions: cfg.Directions,
		logger:     cfg.Logger,
	}
}

// Aggregate queries all providers for the given origin/destination pair
// and assembles whatever succeeded into a CommuteSignals record. Each
// provider is called exactly once; a failing provider only leaves its
// own field absent. Aggregate never returns an error: the all-absent
// signal set is a valid outcome.
func (s *Service) Aggregate(ctx context.Context, origin, destination location.Location) CommuteSignals {
	lat, lon, haveCoords := s.resolveCoordinates(ctx, origin)

	var (
		wg      sync.WaitGroup
		signals CommuteSignals
	)

	// The four calls are independent and each goroutine writes its own
	// field, so no lock is needed around the signal set.
	wg.Add(4)

	go func() {
		defer wg.Done()
		obs, err := s.airQuality.GetObservation(ctx, origin)
		if err != nil {
			s.logger.Warn().Err(err).Stringer("origin", origin).Msg("air quality unavailable")
			return
		}
		signals.Air = obs
	}()

	go func() {
		defer wg.Done()
		if !haveCoords {
			s.logger.Warn().Stringer("origin", origin).Msg("weather skipped: no coordinates for origin")
			return
		}
		report, err := s.weather.GetReport(ctx, lat, lon)
		if err != nil {
			s.logger.Warn().Err(err).Float64("lat", lat).Float64("lon", lon).Msg("weather unavailable")
			return
		}
		signals.Weather = report
	}()

	go func() {
		defer wg.Done()
		leg, err := s.directions.GetLeg(ctx, origin, destination, directions.ModeDriving)
		if err != nil {
			s.logger.Warn().Err(err).Msg("driving directions unavailable")
			return
		}
		signals.Driving = leg
	}()

	go func() {
		defer wg.Done()
		leg, err := s.directions.GetLeg(ctx, origin, destination, directions.ModeTransit)
		if err != nil {
			s.logger.Warn().Err(err).Msg("transit directions unavailable")
			return
		}
		signals.Transit = leg
	}()

	wg.Wait()
	return signals
}

// Forecast returns a weather report for explicit coordinates, for
// callers that want the hourly outlook without a full commute query.
func (s *Service) Forecast(ctx context.Context, lat, lon float64) (*weather.Report, error) {
	return s.weather.GetReport(ctx, lat, lon)
}

// resolveCoordinates returns the origin's coordinates, geocoding the
// place name when the caller did not supply them directly. A geocoding
// miss leaves coordinates absent; downstream callers degrade.
func (s *Service) resolveCoordinates(ctx context.Context, origin location.Location) (lat, lon float64, ok bool) {
	if lat, lon, ok = origin.Coordinates(); ok {
		return lat, lon, true
	}

	name, _ := origin.Name()
	place, err := s.geocoder.Geocode(ctx, name)
	if err != nil {
		s.logger.Warn().Err(err).Str("place", name).Msg("geocoding failed")
		return 0, 0, false
	}
	return place.Lat, place.Lon, true
}
