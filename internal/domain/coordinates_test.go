package domain

import (
	"errors"
	"testing"
)

func TestParseLocation(t *testing.T) {
	loc, err := ParseLocation("37.78240,-122.40705")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.Lat != 37.78240 || loc.Lon != -122.40705 {
		t.Fatalf("parsed %+v", loc)
	}

	// Spaces around the comma are tolerated.
	if _, err := ParseLocation(" 37.78 , -122.40 "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseLocationRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"37.78",
		"37.78,-122.40,5",
		"north,west",
		"91,-122.40",
		"37.78,181",
	}

	for _, in := range cases {
		if _, err := ParseLocation(in); !errors.Is(err, ErrInvalidLocation) {
			t.Errorf("ParseLocation(%q) err = %v, want ErrInvalidLocation", in, err)
		}
	}
}
