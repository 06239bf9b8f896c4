package services

import (
	"fmt"

	"food-truck-finder/internal/domain"

	"github.com/umahmood/haversine"
)

// Distance returns the great-circle distance between two locations in
// statute miles ("as the crow flies").
//
// The computation is pure and deterministic: symmetric in its arguments and
// zero for identical inputs. Invalid coordinates are an error, never a
// silently wrong distance.
func Distance(a, b domain.Location) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, fmt.Errorf("distance: origin: %w", err)
	}
	if err := b.Validate(); err != nil {
		return 0, fmt.Errorf("distance: target: %w", err)
	}

	mi, _ := haversine.Distance(
		haversine.Coord{Lat: a.Lat, Lon: a.Lon},
		haversine.Coord{Lat: b.Lat, Lon: b.Lon},
	)
	return mi, nil
}
