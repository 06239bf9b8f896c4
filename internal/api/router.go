package api

import (
	"net/http"

	"food-truck-finder/internal/api/handlers"
	"food-truck-finder/internal/domain"
	"food-truck-finder/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(feed ports.FeedSource, ledger ports.VisitLedger, ref domain.Location, pageSize int) http.Handler {
	mux := http.NewServeMux()

	rankings := &handlers.RankingsHandler{
		Feed:     feed,
		Ledger:   ledger,
		Default:  ref,
		PageSize: pageSize,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/rankings", rankings.List)

	return loggingMiddleware(mux)
}
