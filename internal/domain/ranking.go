package domain

// One ranked truck: derived per run from a Truck, a ledger snapshot, and the
// reference location. Never persisted.
type RankedEntry struct {
	Truck         Truck
	Visits        int
	DistanceMiles float64
}

// A window over the ranked sequence handed to renderers.
// Offset is zero-based into the full sequence; Total is the sequence length.
type Page struct {
	Offset  int
	Total   int
	Entries []RankedEntry
}

// GlobalRank returns the 1-based rank of Entries[i] within the full sequence.
func (p Page) GlobalRank(i int) int { return p.Offset + i + 1 }

// PageAt slices the window [offset, offset+size) out of the ranked sequence.
// The last page may hold fewer than size entries.
func PageAt(entries []RankedEntry, offset, size int) Page {
	if offset < 0 {
		offset = 0
	}
	end := offset + size
	if end > len(entries) {
		end = len(entries)
	}
	if offset > len(entries) {
		offset = len(entries)
	}
	return Page{Offset: offset, Total: len(entries), Entries: entries[offset:end]}
}
