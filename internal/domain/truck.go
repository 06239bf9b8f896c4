package domain

// A single permitted food truck from the open-data feed.
// ID is the feed's stable location identifier; Address and FoodItems are
// opaque passthrough fields kept only for display.
type Truck struct {
	ID        string
	Name      string
	Location  Location
	Address   string
	FoodItems string
}
