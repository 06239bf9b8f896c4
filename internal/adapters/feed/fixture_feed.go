package feed

import (
	"context"
	"fmt"
	"os"

	"food-truck-finder/internal/ports"
)

// FixtureFeed reads a canned feed CSV from disk. Used for test runs so the
// selection loop can be exercised without the network.
type FixtureFeed struct {
	path string
}

func NewFixtureFeed(path string) *FixtureFeed {
	return &FixtureFeed{path: path}
}

func (f *FixtureFeed) Fetch(ctx context.Context) ([]ports.RawRecord, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("fixture feed: open %q: %w", f.path, err)
	}
	defer file.Close()

	records, err := parseRecords(file)
	if err != nil {
		return nil, fmt.Errorf("fixture feed: %w", err)
	}

	return records, nil
}
