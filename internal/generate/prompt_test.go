package generate

import (
	"strings"
	"testing"

	"creative-api/internal/segments"
)

func testSegment(t *testing.T) segments.Segment {
	t.Helper()
	seg, ok := segments.ByID("health_wellness_enthusiasts")
	if !ok {
		t.Fatalf("catalog segment missing")
	}
	return seg
}

func TestBuildPromptDeterministic(t *testing.T) {
	seg := testSegment(t)
	areas := []string{"actor", "background", "text"}

	first := BuildPrompt(seg, areas, "16:9", true)
	second := BuildPrompt(seg, areas, "16:9", true)
	if first != second {
		t.Fatalf("prompt is not deterministic")
	}
}

func TestBuildPromptSubstitutesSegmentAttributes(t *testing.T) {
	seg := testSegment(t)

	got := BuildPrompt(seg, []string{"actor", "background"}, "auto", false)

	checks := []string{
		"- Segment: Health & Wellness Enthusiasts",
		"- Age Range: 25-45",
		"- Visual Style: natural, organic, warm lighting",
		"- Color Tones: greens, earth tones, soft whites",
		"- Mood: calm, energized, balanced",
		"the Health & Wellness Enthusiasts segment (age range 25-45)",
		"Use natural, organic, warm lighting aesthetics with greens, earth tones, soft whites color palette",
		"ASPECT RATIO: auto (1024x1024)",
		"IMPORTANT GUIDELINES:",
	}
	for _, expect := range checks {
		if !strings.Contains(got, expect) {
			t.Fatalf("prompt missing %q:\n%s", expect, got)
		}
	}
	if strings.Contains(got, "TEXT/COPY OVERLAY") {
		t.Fatalf("unrequested edit area leaked into prompt")
	}
	if strings.Contains(got, "BRAND CI REFERENCE") {
		t.Fatalf("brand note must be omitted without a brand asset")
	}
}

func TestBuildPromptPreservesEditAreaOrder(t *testing.T) {
	seg := testSegment(t)

	got := BuildPrompt(seg, []string{"text", "actor"}, "auto", false)

	textIdx := strings.Index(got, "TEXT/COPY OVERLAY")
	actorIdx := strings.Index(got, "ACTOR/MODEL")
	if textIdx < 0 || actorIdx < 0 {
		t.Fatalf("expected both instructions in prompt")
	}
	if textIdx > actorIdx {
		t.Fatalf("instructions should follow request order: text before actor")
	}
}

func TestBuildPromptEmptyEditAreasFallsBack(t *testing.T) {
	seg := testSegment(t)

	got := BuildPrompt(seg, nil, "auto", false)

	if !strings.Contains(got, "- Apply general visual adjustments to match the target segment's aesthetic preferences, color palette, and mood.") {
		t.Fatalf("fallback instruction missing:\n%s", got)
	}
	if strings.Contains(got, "ACTOR/MODEL") {
		t.Fatalf("no area instructions expected for empty edit areas")
	}
}

func TestBuildPromptBrandNote(t *testing.T) {
	seg := testSegment(t)

	got := BuildPrompt(seg, []string{"actor"}, "auto", true)
	if !strings.Contains(got, "BRAND CI REFERENCE:") {
		t.Fatalf("brand note missing")
	}
	if !strings.Contains(got, "Do not alter protected brand elements.") {
		t.Fatalf("brand note truncated:\n%s", got)
	}
}

func TestBuildPromptAspectRatioDimensions(t *testing.T) {
	seg := testSegment(t)

	cases := map[string]string{
		"auto": "ASPECT RATIO: auto (1024x1024)",
		"1:1":  "ASPECT RATIO: 1:1 (1024x1024)",
		"16:9": "ASPECT RATIO: 16:9 (1344x756)",
		"9:16": "ASPECT RATIO: 9:16 (756x1344)",
		// unrecognized values fall back to the auto dimensions
		"4:3": "ASPECT RATIO: 4:3 (1024x1024)",
	}
	for ratio, expect := range cases {
		got := BuildPrompt(seg, nil, ratio, false)
		if !strings.Contains(got, expect) {
			t.Fatalf("ratio %s: missing %q", ratio, expect)
		}
	}
}

func TestBuildPromptTrimmed(t *testing.T) {
	seg := testSegment(t)

	got := BuildPrompt(seg, []string{"actor"}, "auto", false)
	if got != strings.TrimSpace(got) {
		t.Fatalf("prompt should carry no leading or trailing whitespace")
	}
}
