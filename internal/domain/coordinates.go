package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Immutable geographic coordinates (latitude, longitude) in decimal degrees.
type Location struct {
	Lat float64
	Lon float64
}

// Fallback reference location when the caller supplies none
// (downtown San Francisco, near the feed's coverage area).
var DefaultLocation = Location{Lat: 37.78240, Lon: -122.40705}

// Validate checks that the location holds usable decimal-degree coordinates.
func (l Location) Validate() error {
	if math.IsNaN(l.Lat) || math.IsNaN(l.Lon) {
		return fmt.Errorf("validate location: coordinates are NaN: %w", ErrInvalidCoordinate)
	}
	if l.Lat < -90 || l.Lat > 90 {
		return fmt.Errorf("validate location: latitude %v out of range [-90,90]: %w", l.Lat, ErrInvalidCoordinate)
	}
	if l.Lon < -180 || l.Lon > 180 {
		return fmt.Errorf("validate location: longitude %v out of range [-180,180]: %w", l.Lon, ErrInvalidCoordinate)
	}
	return nil
}

// ParseLocation parses a "lat,long" pair as given on the command line.
// Wrong arity, non-numeric parts, and out-of-range values all surface
// ErrInvalidLocation before any session starts.
func ParseLocation(s string) (Location, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return Location{}, fmt.Errorf("parse location %q: want lat,long: %w", s, ErrInvalidLocation)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Location{}, fmt.Errorf("parse location %q: latitude: %w", s, ErrInvalidLocation)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Location{}, fmt.Errorf("parse location %q: longitude: %w", s, ErrInvalidLocation)
	}

	loc := Location{Lat: lat, Lon: lon}
	if err := loc.Validate(); err != nil {
		return Location{}, fmt.Errorf("parse location %q: %w", s, ErrInvalidLocation)
	}
	return loc, nil
}
