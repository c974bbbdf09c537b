package generate

import (
	"strings"
	"testing"
)

func validRequest() *Request {
	return &Request{
		ReferenceImageBase64: "cmVmZXJlbmNl",
		ReferenceImageMIME:   "image/png",
		Segments:             []string{"young_professionals"},
	}
}

func TestValidateAcceptsValidRequest(t *testing.T) {
	if err := validRequest().Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	nineSegments := make([]string, 9)
	for i := range nineSegments {
		nineSegments[i] = "young_professionals"
	}

	cases := []struct {
		name    string
		mutate  func(*Request)
		message string
	}{
		{
			name:    "missing reference image",
			mutate:  func(r *Request) { r.ReferenceImageBase64 = "" },
			message: "reference_image_base64 is required.",
		},
		{
			name:    "missing mime",
			mutate:  func(r *Request) { r.ReferenceImageMIME = "" },
			message: "reference_image_mime is required.",
		},
		{
			name:    "unsupported mime",
			mutate:  func(r *Request) { r.ReferenceImageMIME = "image/svg" },
			message: "Invalid reference_image_mime. Must be one of: image/gif, image/jpeg, image/jpg, image/png, image/webp",
		},
		{
			name:    "oversize image",
			mutate:  func(r *Request) { r.ReferenceImageBase64 = strings.Repeat("a", MaxImageSizeBytes+1) },
			message: "Reference image too large. Max base64 size: 20971520 bytes.",
		},
		{
			name:    "empty segments",
			mutate:  func(r *Request) { r.Segments = nil },
			message: "segments must be a non-empty array of segment IDs.",
		},
		{
			name:    "too many segments",
			mutate:  func(r *Request) { r.Segments = nineSegments },
			message: "Maximum 8 segments per request.",
		},
		{
			name:    "unknown segment",
			mutate:  func(r *Request) { r.Segments = []string{"nonexistent_id"} },
			message: "Unknown segment ID: nonexistent_id",
		},
		{
			name:    "invalid aspect ratio",
			mutate:  func(r *Request) { r.AspectRatio = "4:3" },
			message: "Invalid aspect_ratio. Must be one of: 16:9, 1:1, 9:16, auto",
		},
		{
			name:    "invalid edit area",
			mutate:  func(r *Request) { r.EditAreas = []string{"logo"} },
			message: "Invalid edit_areas: logo. Must be from: actor, background, text",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)
			err := req.Validate()
			if err == nil {
				t.Fatalf("expected rejection")
			}
			if err.Error() != tc.message {
				t.Fatalf("message mismatch:\ngot  %q\nwant %q", err.Error(), tc.message)
			}
		})
	}
}

func TestValidateFirstViolationWins(t *testing.T) {
	req := validRequest()
	req.ReferenceImageMIME = "image/svg"
	req.Segments = nil

	err := req.Validate()
	if err == nil || !strings.HasPrefix(err.Error(), "Invalid reference_image_mime") {
		t.Fatalf("expected the mime check to fire first, got %v", err)
	}
}

func TestValidateAllowsEmptyEditAreas(t *testing.T) {
	req := validRequest()
	req.EditAreas = []string{}
	if err := req.Validate(); err != nil {
		t.Fatalf("explicitly empty edit_areas should be valid: %v", err)
	}
}

func TestNormalizedDefaults(t *testing.T) {
	req := validRequest()

	aspect, areas := req.normalized()
	if aspect != "auto" {
		t.Fatalf("aspect default mismatch: %q", aspect)
	}
	if len(areas) != 3 || areas[0] != "actor" || areas[1] != "background" || areas[2] != "text" {
		t.Fatalf("absent edit_areas should default to all areas: %v", areas)
	}

	req.EditAreas = []string{}
	_, areas = req.normalized()
	if len(areas) != 0 {
		t.Fatalf("explicitly empty edit_areas must stay empty: %v", areas)
	}

	req.AspectRatio = "16:9"
	req.EditAreas = []string{"text"}
	aspect, areas = req.normalized()
	if aspect != "16:9" || len(areas) != 1 || areas[0] != "text" {
		t.Fatalf("explicit values should pass through: %q %v", aspect, areas)
	}
}
