package ports

import "context"

// Port: the durable truck_id -> visit_count mapping.
//
// Ids that were never picked are simply absent; callers treat absence as
// count zero. Implementations must make RecordVisit a true atomic
// increment so that independent runs against a shared store serialize
// correctly per id.
type VisitLedger interface {
	// Snapshot returns a point-in-time read of all known visit counts.
	Snapshot(ctx context.Context) (map[string]int, error)

	// RecordVisit atomically increments the count for one truck and
	// returns the resulting count.
	RecordVisit(ctx context.Context, truckID string) (int, error)

	// CountOf returns the current count for one truck (0 if never picked).
	CountOf(ctx context.Context, truckID string) (int, error)
}
