package services

import (
	"strconv"
	"strings"

	"food-truck-finder/internal/domain"
	"food-truck-finder/internal/ports"
)

// Facility types worth visiting. The feed also lists push carts.
const facilityTypeTruck = "Truck"

// Permit status required for a truck to be rankable.
const statusApproved = "APPROVED"

// Normalize maps raw feed records into canonical Trucks.
//
// One bad record never aborts the batch: records missing an id, carrying
// unparsable or out-of-range coordinates, the feed's (0,0) placeholder
// coordinates, a non-truck facility type, or an unapproved permit are
// dropped silently. Duplicate ids keep the first occurrence so that every
// id is unique within one ranking pass. Input order is preserved, so
// identical input yields identical output.
func Normalize(records []ports.RawRecord) []domain.Truck {
	trucks := make([]domain.Truck, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for _, rec := range records {
		id := strings.TrimSpace(rec.LocationID)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		if rec.FacilityType != facilityTypeTruck {
			continue
		}
		if rec.Status != statusApproved {
			continue
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(rec.Latitude), 64)
		if err != nil {
			continue
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(rec.Longitude), 64)
		if err != nil {
			continue
		}
		// Some feed entries carry 0,0 instead of a real position.
		if lat == 0 && lon == 0 {
			continue
		}

		loc := domain.Location{Lat: lat, Lon: lon}
		if err := loc.Validate(); err != nil {
			continue
		}

		seen[id] = struct{}{}
		trucks = append(trucks, domain.Truck{
			ID:        id,
			Name:      rec.Applicant,
			Location:  loc,
			Address:   rec.Address,
			FoodItems: rec.FoodItems,
		})
	}

	return trucks
}
