package services

import (
	"reflect"
	"testing"

	"food-truck-finder/internal/ports"
)

func validRecord(id, name string) ports.RawRecord {
	return ports.RawRecord{
		LocationID:   id,
		Applicant:    name,
		FacilityType: "Truck",
		Address:      "1 MARKET ST",
		Status:       "APPROVED",
		FoodItems:    "tacos",
		Latitude:     "37.794331",
		Longitude:    "-122.394935",
	}
}

func TestNormalizeDropsUnusableRecords(t *testing.T) {
	noID := validRecord("", "No Id")
	badLat := validRecord("2", "Bad Lat")
	badLat.Latitude = "not-a-number"
	outOfRange := validRecord("3", "Out Of Range")
	outOfRange.Latitude = "95.0"
	zeroZero := validRecord("4", "Placeholder")
	zeroZero.Latitude = "0"
	zeroZero.Longitude = "0"
	pushCart := validRecord("5", "Cart")
	pushCart.FacilityType = "Push Cart"
	expired := validRecord("6", "Expired")
	expired.Status = "EXPIRED"

	input := []ports.RawRecord{
		validRecord("1", "Good Truck"),
		noID,
		badLat,
		outOfRange,
		zeroZero,
		pushCart,
		expired,
		validRecord("7", "Another Good Truck"),
	}

	trucks := Normalize(input)

	if len(trucks) > len(input) {
		t.Fatalf("output longer than input: %d > %d", len(trucks), len(input))
	}
	if len(trucks) != 2 {
		t.Fatalf("expected 2 trucks, got %d", len(trucks))
	}
	if trucks[0].ID != "1" || trucks[1].ID != "7" {
		t.Fatalf("wrong survivors: %q, %q", trucks[0].ID, trucks[1].ID)
	}

	for _, truck := range trucks {
		if truck.ID == "" {
			t.Errorf("truck with empty id survived normalization")
		}
		if err := truck.Location.Validate(); err != nil {
			t.Errorf("truck %s has invalid location: %v", truck.ID, err)
		}
	}
}

func TestNormalizeKeepsFirstDuplicateID(t *testing.T) {
	first := validRecord("42", "First")
	second := validRecord("42", "Second")

	trucks := Normalize([]ports.RawRecord{first, second})

	if len(trucks) != 1 {
		t.Fatalf("expected 1 truck, got %d", len(trucks))
	}
	if trucks[0].Name != "First" {
		t.Fatalf("expected first occurrence to win, got %q", trucks[0].Name)
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	input := []ports.RawRecord{
		validRecord("3", "C"),
		validRecord("1", "A"),
		validRecord("2", "B"),
	}

	a := Normalize(input)
	b := Normalize(input)

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("normalize not deterministic:\n%v\n%v", a, b)
	}
	if a[0].ID != "3" || a[1].ID != "1" || a[2].ID != "2" {
		t.Fatalf("input order not preserved: %v", a)
	}
}
