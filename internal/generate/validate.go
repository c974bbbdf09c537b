package generate

import (
	"fmt"
	"sort"
	"strings"

	"creative-api/internal/segments"
)

var validAspectRatios = map[string]bool{
	"auto": true,
	"1:1":  true,
	"16:9": true,
	"9:16": true,
}

var validEditAreas = map[string]bool{
	"actor":      true,
	"background": true,
	"text":       true,
}

var validImageMIMEs = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
	"image/webp": true,
	"image/gif":  true,
}

// defaultEditAreas applies when the request omits edit_areas entirely.
var defaultEditAreas = []string{"actor", "background", "text"}

// Validate checks the request against the endpoint contract. Checks run in a
// fixed order and the first violation wins, so error messages are
// deterministic. A nil return means every segment ID resolves.
func (r *Request) Validate() error {
	if r.ReferenceImageBase64 == "" {
		return fmt.Errorf("reference_image_base64 is required.")
	}
	if r.ReferenceImageMIME == "" {
		return fmt.Errorf("reference_image_mime is required.")
	}
	if !validImageMIMEs[r.ReferenceImageMIME] {
		return fmt.Errorf("Invalid reference_image_mime. Must be one of: %s", sortedKeys(validImageMIMEs))
	}
	if len(r.ReferenceImageBase64) > MaxImageSizeBytes {
		return fmt.Errorf("Reference image too large. Max base64 size: %d bytes.", MaxImageSizeBytes)
	}
	if len(r.Segments) == 0 {
		return fmt.Errorf("segments must be a non-empty array of segment IDs.")
	}
	if len(r.Segments) > MaxSegmentsPerRequest {
		return fmt.Errorf("Maximum %d segments per request.", MaxSegmentsPerRequest)
	}
	for _, id := range r.Segments {
		if _, ok := segments.ByID(id); !ok {
			return fmt.Errorf("Unknown segment ID: %s", id)
		}
	}
	if r.AspectRatio != "" && !validAspectRatios[r.AspectRatio] {
		return fmt.Errorf("Invalid aspect_ratio. Must be one of: %s", sortedKeys(validAspectRatios))
	}
	if r.EditAreas != nil {
		var invalid []string
		seen := map[string]bool{}
		for _, area := range r.EditAreas {
			if !validEditAreas[area] && !seen[area] {
				invalid = append(invalid, area)
				seen[area] = true
			}
		}
		if len(invalid) > 0 {
			return fmt.Errorf("Invalid edit_areas: %s. Must be from: %s",
				strings.Join(invalid, ", "), sortedKeys(validEditAreas))
		}
	}
	return nil
}

// normalized returns the effective aspect ratio and edit areas after
// defaulting: an unset aspect ratio becomes "auto", an absent edit_areas
// field becomes the full area list, while an explicitly empty list stays
// empty.
func (r *Request) normalized() (aspectRatio string, editAreas []string) {
	aspectRatio = r.AspectRatio
	if aspectRatio == "" {
		aspectRatio = "auto"
	}
	if r.EditAreas == nil {
		return aspectRatio, defaultEditAreas
	}
	return aspectRatio, r.EditAreas
}

func sortedKeys(set map[string]bool) string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
