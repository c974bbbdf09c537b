package handlers

import "net/http"

// History returns a fixed empty payload: generation results are not
// persisted anywhere in this deployment.
func (a *App) History(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"history": []any{},
		"total":   0,
		"message": "History is not persisted in the current serverless deployment. " +
			"Connect a database for persistent history.",
	})
}
