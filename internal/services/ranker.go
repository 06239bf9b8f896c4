package services

import (
	"fmt"
	"sort"

	"food-truck-finder/internal/domain"
)

// Rank orders trucks by how worth visiting they are: fewest historical
// visits first, nearest first among equals.
//
// The sort key is (visits ascending, distance ascending, id lexicographic).
// The id tie-breaker makes repeated runs against identical inputs yield
// identical sequences. Pure: no I/O and no ledger mutation; ids absent from
// the snapshot count as zero visits.
func Rank(trucks []domain.Truck, snapshot map[string]int, ref domain.Location) ([]domain.RankedEntry, error) {
	entries := make([]domain.RankedEntry, 0, len(trucks))
	for _, t := range trucks {
		dist, err := Distance(ref, t.Location)
		if err != nil {
			return nil, fmt.Errorf("rank: truck %s: %w", t.ID, err)
		}
		entries = append(entries, domain.RankedEntry{
			Truck:         t,
			Visits:        snapshot[t.ID],
			DistanceMiles: dist,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Visits != b.Visits {
			return a.Visits < b.Visits
		}
		if a.DistanceMiles != b.DistanceMiles {
			return a.DistanceMiles < b.DistanceMiles
		}
		return a.Truck.ID < b.Truck.ID
	})

	return entries, nil
}
