// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/undokai/rostercheck/internal/domain/types"
)

// SearchDependencies defines the interface for participant search.
type SearchDependencies interface {
	Search(ctx context.Context, query string) (results []types.Participant, submitted bool)
}

// SearchHandler handles participant search requests.
type SearchHandler struct {
	deps SearchDependencies
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(deps SearchDependencies) *SearchHandler {
	return &SearchHandler{deps: deps}
}

// HandleSearch handles GET /search?q= requests. A query that normalizes to
// nothing means "no query submitted" and returns 204, distinct from a
// submitted query with no matches, which returns 200 and an empty array.
func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	results, submitted := h.deps.Search(r.Context(), r.URL.Query().Get("q"))
	if !submitted {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, results)
}
