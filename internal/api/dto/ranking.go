package dto

type RankedTruckResponse struct {
	Rank          int     `json:"rank"`
	TruckID       string  `json:"truck_id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	FoodItems     string  `json:"food_items"`
	Visits        int     `json:"visits"`
	DistanceMiles float64 `json:"distance_miles"`
}

type RankingsResponse struct {
	Total    int                   `json:"total"`
	Offset   int                   `json:"offset"`
	PageSize int                   `json:"page_size"`
	Trucks   []RankedTruckResponse `json:"trucks"`
}
