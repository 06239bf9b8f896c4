package services

import (
	"fmt"
	"testing"

	"food-truck-finder/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func truckAt(id string, lat, lon float64) domain.Truck {
	return domain.Truck{ID: id, Name: "Truck " + id, Location: domain.Location{Lat: lat, Lon: lon}}
}

func TestRankOrdersByVisitsThenDistance(t *testing.T) {
	ref := domain.DefaultLocation

	// "near" is closest to ref, "far" is farthest.
	trucks := []domain.Truck{
		truckAt("far", 37.709642, -122.456898),
		truckAt("near", 37.782, -122.407),
		truckAt("mid", 37.794331, -122.394935),
	}
	snapshot := map[string]int{
		"near": 3, // visited often, should sink below the rest
	}

	entries, err := Rank(trucks, snapshot, ref)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "mid", entries[0].Truck.ID)
	assert.Equal(t, "far", entries[1].Truck.ID)
	assert.Equal(t, "near", entries[2].Truck.ID)

	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		less := prev.Visits < cur.Visits ||
			(prev.Visits == cur.Visits && prev.DistanceMiles < cur.DistanceMiles) ||
			(prev.Visits == cur.Visits && prev.DistanceMiles == cur.DistanceMiles && prev.Truck.ID <= cur.Truck.ID)
		assert.True(t, less, "entries %d and %d out of order", i-1, i)
	}
}

func TestRankBreaksTiesByID(t *testing.T) {
	// Same coordinates and same visit count: id decides, lexicographically.
	loc := domain.Location{Lat: 37.78, Lon: -122.41}
	trucks := []domain.Truck{
		{ID: "b", Location: loc},
		{ID: "a", Location: loc},
		{ID: "c", Location: loc},
	}

	entries, err := Rank(trucks, map[string]int{}, domain.DefaultLocation)
	require.NoError(t, err)

	assert.Equal(t, "a", entries[0].Truck.ID)
	assert.Equal(t, "b", entries[1].Truck.ID)
	assert.Equal(t, "c", entries[2].Truck.ID)
}

func TestRankDeterministic(t *testing.T) {
	trucks := []domain.Truck{
		truckAt("3", 37.79, -122.40),
		truckAt("1", 37.78, -122.41),
		truckAt("2", 37.77, -122.42),
	}
	snapshot := map[string]int{"1": 1, "2": 1}

	first, err := Rank(trucks, snapshot, domain.DefaultLocation)
	require.NoError(t, err)
	second, err := Rank(trucks, snapshot, domain.DefaultLocation)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRankOftenVisitedTruckSinksRegardlessOfDistance(t *testing.T) {
	ref := domain.DefaultLocation

	// Truck X sits right at the reference location but has two visits;
	// the other nine have none.
	trucks := []domain.Truck{{ID: "X", Location: ref}}
	for i := 1; i <= 9; i++ {
		trucks = append(trucks, truckAt(fmt.Sprintf("t%d", i), 37.70+float64(i)*0.01, -122.45))
	}
	snapshot := map[string]int{"X": 2}

	entries, err := Rank(trucks, snapshot, ref)
	require.NoError(t, err)
	require.Len(t, entries, 10)

	for i, e := range entries {
		if e.Truck.ID == "X" {
			assert.GreaterOrEqual(t, i+1, 9, "truck X must rank after every less-visited truck")
		}
	}
	assert.Equal(t, "X", entries[9].Truck.ID)
}

func TestRankSnapshotAbsenceMeansZero(t *testing.T) {
	trucks := []domain.Truck{truckAt("a", 37.78, -122.41)}

	entries, err := Rank(trucks, map[string]int{}, domain.DefaultLocation)
	require.NoError(t, err)
	assert.Equal(t, 0, entries[0].Visits)
}
