package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"food-truck-finder/internal/platform/obs"
	"food-truck-finder/internal/ports"
)

// CSV export of San Francisco's mobile food facility permits.
const DefaultFeedURL = "https://data.sfgov.org/api/views/rqzj-sfat/rows.csv"

// SFGovFeed fetches the live permit feed over HTTP.
type SFGovFeed struct {
	url     string
	session *http.Client
}

func NewSFGovFeed(url string) *SFGovFeed {
	if strings.TrimSpace(url) == "" {
		url = DefaultFeedURL
	}
	return &SFGovFeed{
		url:     url,
		session: &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch downloads and parses the full feed.
func (f *SFGovFeed) Fetch(ctx context.Context) (_ []ports.RawRecord, err error) {
	defer obs.Time(ctx, "feed.sfgov.Fetch")(&err)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: create request: %w", err)
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := f.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: get %s: %w", f.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetch feed: get %s: status %d: %s", f.url, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	records, err := parseRecords(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}

	return records, nil
}
