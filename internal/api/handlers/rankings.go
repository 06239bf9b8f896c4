package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"food-truck-finder/internal/api/dto"
	"food-truck-finder/internal/domain"
	"food-truck-finder/internal/ports"
	"food-truck-finder/internal/services"
)

// RankingsHandler exposes the current ranking as a read-only page. It never
// writes the ledger: selection stays an interactive, single-user concern.
type RankingsHandler struct {
	Feed     ports.FeedSource
	Ledger   ports.VisitLedger
	Default  domain.Location
	PageSize int
}

// List handles GET /rankings?at=lat,long&page=N.
func (h *RankingsHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	ref := h.Default
	if at := r.URL.Query().Get("at"); at != "" {
		loc, err := domain.ParseLocation(at)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "at must be lat,long in valid ranges")
			return
		}
		ref = loc
	}

	page := 1
	if p := r.URL.Query().Get("page"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 {
			writeError(w, r, http.StatusBadRequest, "page must be a positive integer")
			return
		}
		page = n
	}

	pageSize := h.PageSize
	if ps := r.URL.Query().Get("page_size"); ps != "" {
		n, err := strconv.Atoi(ps)
		if err != nil || n < 1 {
			writeError(w, r, http.StatusBadRequest, "page_size must be a positive integer")
			return
		}
		pageSize = n
	}

	ctx := r.Context()

	records, err := h.Feed.Fetch(ctx)
	if err != nil {
		log.Printf("rankings: fetch feed failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "truck feed unavailable")
		return
	}

	snapshot, err := h.Ledger.Snapshot(ctx)
	if err != nil {
		log.Printf("rankings: ledger snapshot failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "visit ledger unavailable")
		return
	}

	entries, err := services.Rank(services.Normalize(records), snapshot, ref)
	if err != nil {
		log.Printf("rankings: rank failed: %v", err)
		if errors.Is(err, domain.ErrInvalidCoordinate) {
			writeError(w, r, http.StatusBadGateway, "feed produced unusable coordinates")
			return
		}
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	window := domain.PageAt(entries, (page-1)*pageSize, pageSize)

	res := dto.RankingsResponse{
		Total:    window.Total,
		Offset:   window.Offset,
		PageSize: pageSize,
		Trucks:   make([]dto.RankedTruckResponse, 0, len(window.Entries)),
	}
	for i, e := range window.Entries {
		res.Trucks = append(res.Trucks, dto.RankedTruckResponse{
			Rank:          window.GlobalRank(i),
			TruckID:       e.Truck.ID,
			Name:          e.Truck.Name,
			Address:       e.Truck.Address,
			FoodItems:     e.Truck.FoodItems,
			Visits:        e.Visits,
			DistanceMiles: e.DistanceMiles,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
