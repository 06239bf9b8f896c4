package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"food-truck-finder/internal/domain"
	"food-truck-finder/internal/ports"
)

// Session lifecycle states.
type SessionState int

const (
	// Walking the ranking page by page, waiting for intents.
	StatePaging SessionState = iota
	// A truck was picked; terminal.
	StateSelected
	// No selection will happen; terminal.
	StateQuit
)

// The quit token recognized on the input line.
const quitToken = "q"

// DefaultPageSize is how many ranked trucks one page shows.
const DefaultPageSize = 5

// ParseIntent maps one raw input line to a user intent: an empty line asks
// for the next page, the quit token quits, a positive integer picks that
// global rank. Everything else is the invalid intent.
func ParseIntent(line string) domain.Intent {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return domain.Intent{Kind: domain.IntentNext}
	}
	if trimmed == quitToken {
		return domain.Intent{Kind: domain.IntentQuit}
	}
	if n, err := strconv.Atoi(trimmed); err == nil && n > 0 {
		return domain.Intent{Kind: domain.IntentPick, Rank: n, Raw: line}
	}
	return domain.Intent{Kind: domain.IntentInvalid, Raw: line}
}

// Session is the paginated selection state machine over one ranking.
//
// The ranked sequence is fixed at construction and never recomputed: a pick
// changes the ledger for future runs, not the pages the user is currently
// reading. The ledger is written at most once per session, on the
// transition into StateSelected.
type Session struct {
	entries  []domain.RankedEntry
	pageSize int
	ledger   ports.VisitLedger

	offset   int
	state    SessionState
	selected *domain.RankedEntry
	visits   int
	reason   domain.QuitReason
}

func NewSession(entries []domain.RankedEntry, pageSize int, ledger ports.VisitLedger) (*Session, error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("new session: page size must be positive, got %d", pageSize)
	}
	if ledger == nil {
		return nil, errors.New("new session: ledger must be non-nil")
	}
	return &Session{
		entries:  entries,
		pageSize: pageSize,
		ledger:   ledger,
		state:    StatePaging,
	}, nil
}

func (s *Session) State() SessionState { return s.state }

// Page returns the window of the ranking currently on display.
func (s *Session) Page() domain.Page {
	return domain.PageAt(s.entries, s.offset, s.pageSize)
}

// Selected returns the chosen truck and its post-pick visit count.
// Only meaningful in StateSelected.
func (s *Session) Selected() (domain.Truck, int) {
	if s.selected == nil {
		return domain.Truck{}, 0
	}
	return s.selected.Truck, s.visits
}

// QuitReason distinguishes a user-initiated quit from running out of pages.
// Only meaningful in StateQuit.
func (s *Session) QuitReason() domain.QuitReason { return s.reason }

// Apply feeds one intent into the state machine.
//
// Invalid input (unparseable, or a pick outside the visible page) returns
// an error wrapping domain.ErrInvalidSelection and leaves the session
// unchanged so the same page is re-presented. A ledger failure during a
// pick is fatal and wraps domain.ErrLedgerUnavailable.
func (s *Session) Apply(ctx context.Context, intent domain.Intent) error {
	if s.state != StatePaging {
		return fmt.Errorf("apply intent: session already terminal")
	}

	switch intent.Kind {
	case domain.IntentNext:
		s.offset += s.pageSize
		if s.offset >= len(s.entries) {
			s.state = StateQuit
			s.reason = domain.QuitExhausted
		}
		return nil

	case domain.IntentQuit:
		s.state = StateQuit
		s.reason = domain.QuitUser
		return nil

	case domain.IntentPick:
		page := s.Page()
		if intent.Rank <= s.offset || intent.Rank > s.offset+len(page.Entries) {
			return fmt.Errorf("pick %d: not on the current page: %w", intent.Rank, domain.ErrInvalidSelection)
		}
		entry := s.entries[intent.Rank-1]
		s.state = StateSelected
		s.selected = &entry

		visits, err := s.ledger.RecordVisit(ctx, entry.Truck.ID)
		if err != nil {
			return fmt.Errorf("record visit for %s: %w", entry.Truck.ID, err)
		}
		s.visits = visits
		return nil

	default:
		return fmt.Errorf("input %q: %w", intent.Raw, domain.ErrInvalidSelection)
	}
}

// Run drives a session to a terminal state against an intent source and a
// renderer. It returns the final state; fatal errors (ledger or input
// channel failures) abort the loop.
func Run(ctx context.Context, s *Session, in ports.IntentSource, out ports.Renderer) (SessionState, error) {
	for s.state == StatePaging {
		out.RenderPage(s.Page())

		intent, err := in.Next(ctx)
		if err != nil {
			return s.state, fmt.Errorf("run session: read intent: %w", err)
		}

		if err := s.Apply(ctx, intent); err != nil {
			if errors.Is(err, domain.ErrInvalidSelection) {
				// Non-fatal: report and re-present the same page.
				out.RenderInvalid(intent.Raw)
				continue
			}
			return s.state, fmt.Errorf("run session: %w", err)
		}
	}

	switch s.state {
	case StateSelected:
		truck, visits := s.Selected()
		out.RenderSelected(truck, visits)
	case StateQuit:
		out.RenderQuit(s.reason)
	}
	return s.state, nil
}
