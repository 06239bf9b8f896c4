package ports

import (
	"context"
	"food-truck-finder/internal/domain"
)

// Port: supplies the next user intent. Implementations translate whatever
// the real input channel produces (terminal lines, a scripted slice in
// tests) into one of the recognized intents.
type IntentSource interface {
	Next(ctx context.Context) (domain.Intent, error)
}

// Port: receives session output for display. The session core never
// formats text itself.
type Renderer interface {
	// RenderPage shows the current window of the ranking.
	RenderPage(page domain.Page)
	// RenderInvalid reports a rejected input before the page is re-presented.
	RenderInvalid(raw string)
	// RenderSelected shows the chosen truck and its updated visit count.
	RenderSelected(truck domain.Truck, visits int)
	// RenderQuit shows the terminal no-selection outcome.
	RenderQuit(reason domain.QuitReason)
}
