package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"creative-api/internal/generate"
)

// GenerateImages handles POST /api/generate: decode, validate, fan out one
// upstream call per requested segment, and answer with the aggregate
// envelope. The response status code mirrors the batch outcome.
func (a *App) GenerateImages(w http.ResponseWriter, r *http.Request) {
	if r.Body == nil || r.ContentLength == 0 {
		a.error(w, http.StatusBadRequest, "Request body is required.")
		return
	}

	var req generate.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, fmt.Sprintf("Invalid JSON in request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		a.error(w, http.StatusBadRequest, err.Error())
		return
	}

	a.Logger.Info().
		Int("segments", len(req.Segments)).
		Str("aspect_ratio", req.AspectRatio).
		Bool("brand_ci", req.BrandCIBase64 != "").
		Msg("generation batch accepted")

	resp := a.Generate.Run(r.Context(), &req)
	a.json(w, resp.HTTPStatus(), resp)
}
