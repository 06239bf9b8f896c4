package domain

// The three recognized user intents plus the catch-all for anything else.
type IntentKind int

const (
	IntentInvalid IntentKind = iota
	IntentPick
	IntentNext
	IntentQuit
)

// A single user intent. Rank is the 1-based global rank for IntentPick and
// zero otherwise. Raw keeps the original input for error reporting.
type Intent struct {
	Kind IntentKind
	Rank int
	Raw  string
}

// Why a session reached the Quit state.
type QuitReason int

const (
	// The user entered the quit token.
	QuitUser QuitReason = iota
	// Paging ran past the end of the ranked sequence.
	QuitExhausted
)
