package generate

import (
	"fmt"
	"strings"

	"creative-api/internal/segments"
)

type dimensions struct {
	width  int
	height int
}

// aspectRatioDimensions maps a ratio to the approximate pixel size quoted in
// the prompt. Unknown values fall back to the "auto" entry; the request
// validator already restricts the enum, so the fallback is defensive only.
var aspectRatioDimensions = map[string]dimensions{
	"auto": {1024, 1024},
	"1:1":  {1024, 1024},
	"16:9": {1344, 756},
	"9:16": {756, 1344},
}

// Per-area instruction templates. Placeholders are substituted from the
// segment's attributes.
var editAreaInstructions = map[string]string{
	"actor": "ACTOR/MODEL: Adapt the person/model in the image to resonate with the target " +
		"audience. Adjust styling, clothing, expressions, and demographics to reflect " +
		"the {segment_name} segment (age range {age_range}). The model should feel " +
		"relatable and aspirational to this audience.",
	"background": "BACKGROUND/ENVIRONMENT: Transform the background setting to match the visual " +
		"preferences of the {segment_name} segment. Use {visual_style} aesthetics with " +
		"{color_tone} color palette. The environment should evoke a {mood} feeling.",
	"text": "TEXT/COPY OVERLAY: If there is text in the image, adapt the typography, font " +
		"style, and messaging tone to appeal to the {segment_name} audience. Use a " +
		"style that is {visual_style} and conveys a {mood} tone. Ensure text remains " +
		"legible and professional.",
}

const fallbackInstruction = "Apply general visual adjustments to match the target segment's " +
	"aesthetic preferences, color palette, and mood."

const brandCINote = "\nBRAND CI REFERENCE:\n" +
	"A brand CI document has been provided. Ensure all modifications respect " +
	"the brand guidelines including logo usage, brand colors, typography rules, " +
	"and overall brand identity. Do not alter protected brand elements.\n"

// BuildPrompt renders the full generation prompt for one segment. It is
// deterministic: identical inputs always produce byte-identical output.
// Modification instructions follow the order edit areas were requested in.
func BuildPrompt(seg segments.Segment, editAreas []string, aspectRatio string, hasBrandCI bool) string {
	dims, ok := aspectRatioDimensions[aspectRatio]
	if !ok {
		dims = aspectRatioDimensions["auto"]
	}

	var modificationLines []string
	for _, area := range editAreas {
		tpl, ok := editAreaInstructions[area]
		if !ok {
			continue
		}
		modificationLines = append(modificationLines, "- "+substituteSegment(tpl, seg))
	}
	if len(modificationLines) == 0 {
		modificationLines = append(modificationLines, "- "+fallbackInstruction)
	}

	note := ""
	if hasBrandCI {
		note = brandCINote
	}

	prompt := fmt.Sprintf(`You are a marketing creative AI specializing in creating personalized advertising visuals.

TASK: Modify the provided reference image for the target audience segment.

TARGET AUDIENCE:
- Segment: %s
- Age Range: %s
- Visual Style: %s
- Color Tones: %s
- Mood: %s
- Description: %s

MODIFICATIONS REQUIRED:
%s
%s
ASPECT RATIO: %s (%dx%d)

IMPORTANT GUIDELINES:
- Maintain the product/brand as the focal point
- Keep professional marketing quality suitable for advertising campaigns
- The image should feel authentic to the target segment
- Preserve brand elements (logo, product placement)
- Ensure the output is visually cohesive and polished
- The result should be immediately usable in a marketing context
- Generate an image that matches the specified aspect ratio`,
		seg.Name,
		seg.AgeRange,
		seg.VisualStyle,
		seg.ColorTone,
		seg.Mood,
		seg.Description,
		strings.Join(modificationLines, "\n"),
		note,
		aspectRatio,
		dims.width,
		dims.height,
	)

	return strings.TrimSpace(prompt)
}

func substituteSegment(tpl string, seg segments.Segment) string {
	return strings.NewReplacer(
		"{segment_name}", seg.Name,
		"{age_range}", seg.AgeRange,
		"{visual_style}", seg.VisualStyle,
		"{color_tone}", seg.ColorTone,
		"{mood}", seg.Mood,
	).Replace(tpl)
}
