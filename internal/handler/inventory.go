package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/osse101/InventoryViewer_Go/internal/domain"
	"github.com/osse101/InventoryViewer_Go/internal/logger"
)

// InventoryLoader is the part of the inventory loader the view depends on
type InventoryLoader interface {
	LoadInventory(ctx context.Context, caseID string)
	State() domain.LoaderState
}

// InventoryView renders the inventory of one case. Every GET triggers a
// load, the way the page loads on mount, and responds with the settled
// loader state. A failed load still renders: the failure is in state.error.
type InventoryView struct {
	loader InventoryLoader
	caseID string
}

// NewInventoryView creates the view for caseID
func NewInventoryView(loader InventoryLoader, caseID string) *InventoryView {
	return &InventoryView{loader: loader, caseID: caseID}
}

func (v *InventoryView) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	raw := strings.ToLower(strings.TrimSpace(r.URL.Query().Get(QueryParamFilter)))
	if !domain.IsValidFilterCategory(raw) {
		log.Warn(LogMsgInvalidFilter, "filter", raw)
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidFilter, raw, validFilters()))
		return
	}

	v.loader.LoadInventory(r.Context(), v.caseID)

	state := v.loader.State()
	if raw != "" {
		state.Items = domain.FilterItems(state.Items, domain.FilterCategory(raw))
	}

	log.Debug(LogMsgInventoryServed, "case", v.caseID, "items", len(state.Items), "has_error", state.Error != nil)
	respondJSON(w, http.StatusOK, state)
}

func validFilters() string {
	all := domain.AllFilterCategories()
	names := make([]string, len(all))
	for i, c := range all {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
