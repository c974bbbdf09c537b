package handlers

import (
	"fmt"
	"net/http"

	"creative-api/internal/segments"
)

// Segments lists the audience segment catalog, or returns a single segment
// when an id query parameter is present.
func (a *App) Segments(w http.ResponseWriter, r *http.Request) {
	if id := r.URL.Query().Get("id"); id != "" {
		seg, ok := segments.ByID(id)
		if !ok {
			a.error(w, http.StatusNotFound, fmt.Sprintf("Segment not found: %s", id))
			return
		}
		a.json(w, http.StatusOK, map[string]any{"segment": seg})
		return
	}

	all := segments.All()
	a.json(w, http.StatusOK, map[string]any{
		"segments": all,
		"total":    len(all),
	})
}
