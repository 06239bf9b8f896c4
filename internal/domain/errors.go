package domain

import "errors"

var (
	// A coordinate pair is NaN or outside valid decimal-degree ranges.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// The caller-supplied reference location could not be parsed.
	ErrInvalidLocation = errors.New("invalid location")

	// The visit store cannot be opened, read, or written. Fatal: a ranking
	// computed without visit counts would be silently wrong.
	ErrLedgerUnavailable = errors.New("visit ledger unavailable")

	// A selection input was unparseable or outside the visible page.
	ErrInvalidSelection = errors.New("invalid selection input")
)
