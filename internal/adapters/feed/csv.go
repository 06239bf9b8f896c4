package feed

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"food-truck-finder/internal/ports"
)

// Feed columns we consume. Lookup is header-driven so column reordering in
// the export does not break parsing; a missing required header does.
var requiredColumns = []string{
	"locationid",
	"Applicant",
	"FacilityType",
	"Address",
	"Status",
	"FoodItems",
	"Latitude",
	"Longitude",
}

// parseRecords reads the feed CSV (header row first) into raw records.
// Rows with the wrong field count are skipped; field-level validation
// belongs to the normalizer.
func parseRecords(r io.Reader) ([]ports.RawRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("parse feed: read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, label := range header {
		index[strings.TrimSpace(label)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("parse feed: header missing column %q (feed format changed?)", col)
		}
	}

	field := func(row []string, col string) string {
		i := index[col]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	records := make([]ports.RawRecord, 0, 512)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse feed: read row: %w", err)
		}
		if len(row) != len(header) {
			continue
		}

		records = append(records, ports.RawRecord{
			LocationID:   field(row, "locationid"),
			Applicant:    field(row, "Applicant"),
			FacilityType: field(row, "FacilityType"),
			Address:      field(row, "Address"),
			Status:       field(row, "Status"),
			FoodItems:    field(row, "FoodItems"),
			Latitude:     field(row, "Latitude"),
			Longitude:    field(row, "Longitude"),
		})
	}

	return records, nil
}
