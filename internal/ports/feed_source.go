package ports

import "context"

// One raw row from the mobile-food-facility feed, untyped and unvalidated.
// Field naming follows the feed's column headers; the normalizer decides
// what is usable.
type RawRecord struct {
	LocationID   string
	Applicant    string
	FacilityType string
	Address      string
	Status       string
	FoodItems    string
	Latitude     string
	Longitude    string
}

// Port: a boundary for retrieving the current raw truck feed.
type FeedSource interface {
	// Fetch returns the full set of raw feed records.
	Fetch(ctx context.Context) ([]RawRecord, error)
}
