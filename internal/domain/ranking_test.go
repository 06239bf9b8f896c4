package domain

import "testing"

func TestPageAt(t *testing.T) {
	entries := make([]RankedEntry, 7)

	first := PageAt(entries, 0, 5)
	if len(first.Entries) != 5 || first.Offset != 0 || first.Total != 7 {
		t.Fatalf("first page: %+v", first)
	}
	if first.GlobalRank(4) != 5 {
		t.Fatalf("GlobalRank(4) = %d, want 5", first.GlobalRank(4))
	}

	last := PageAt(entries, 5, 5)
	if len(last.Entries) != 2 || last.GlobalRank(0) != 6 {
		t.Fatalf("last page: %+v", last)
	}

	past := PageAt(entries, 10, 5)
	if len(past.Entries) != 0 {
		t.Fatalf("past-the-end page not empty: %+v", past)
	}
}
