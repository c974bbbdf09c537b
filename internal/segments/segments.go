package segments

// Segment is a predefined target-audience profile with the visual and tonal
// attributes used to steer creative generation. The catalog is static: loaded
// once at process start and never mutated, so concurrent reads need no
// synchronization.
type Segment struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	AgeRange    string `json:"age_range"`
	Description string `json:"description"`
	VisualStyle string `json:"visual_style"`
	ColorTone   string `json:"color_tone"`
	Mood        string `json:"mood"`
}

var catalog = []Segment{
	{
		ID:       "health_wellness_enthusiasts",
		Name:     "Health & Wellness Enthusiasts",
		AgeRange: "25-45",
		Description: "Individuals passionate about healthy living, fitness, nutrition, and holistic " +
			"well-being. They value natural products and mindful lifestyle choices.",
		VisualStyle: "natural, organic, warm lighting",
		ColorTone:   "greens, earth tones, soft whites",
		Mood:        "calm, energized, balanced",
	},
	{
		ID:       "young_professionals",
		Name:     "Young Professionals / Office Workers",
		AgeRange: "25-35",
		Description: "Career-driven individuals in urban settings who seek efficiency, style, and " +
			"products that complement their fast-paced professional lifestyle.",
		VisualStyle: "clean, modern, aspirational, urban",
		ColorTone:   "cool blues, whites, minimal",
		Mood:        "confident, ambitious, productive",
	},
	{
		ID:       "outdoor_adventure_seekers",
		Name:     "Outdoor & Adventure Seekers",
		AgeRange: "20-40",
		Description: "Active individuals who thrive on outdoor activities, travel, and exploration. " +
			"They value durability, performance, and connection with nature.",
		VisualStyle: "dynamic, rugged, natural landscapes",
		ColorTone:   "earth tones, sky blues, forest greens",
		Mood:        "adventurous, free, energetic",
	},
	{
		ID:       "eco_conscious_consumers",
		Name:     "Eco-Conscious Consumers",
		AgeRange: "22-45",
		Description: "Environmentally aware individuals who prioritize sustainability, ethical sourcing, " +
			"and minimal environmental impact in their purchasing decisions.",
		VisualStyle: "sustainable, minimal, nature-inspired",
		ColorTone:   "forest greens, recycled textures, earth",
		Mood:        "responsible, mindful, hopeful",
	},
	{
		ID:       "gen_z_social_media",
		Name:     "Gen Z / Social Media Savvy",
		AgeRange: "16-27",
		Description: "Digital natives who are highly active on social platforms, value authenticity, " +
			"and are drawn to bold, trend-forward visual content.",
		VisualStyle: "bold, trendy, vibrant, meme-inspired",
		ColorTone:   "neon, pastels, gradient",
		Mood:        "playful, authentic, expressive",
	},
	{
		ID:       "busy_parents",
		Name:     "Busy Parents / On-the-Go",
		AgeRange: "28-45",
		Description: "Parents juggling family responsibilities and work who value convenience, " +
			"reliability, and family-oriented products and messaging.",
		VisualStyle: "warm, family-friendly, practical",
		ColorTone:   "warm yellows, soft blues, nurturing",
		Mood:        "caring, efficient, happy",
	},
	{
		ID:       "premium_luxury_seekers",
		Name:     "Premium / Luxury Seekers",
		AgeRange: "30-55",
		Description: "Discerning consumers who seek premium quality, exclusivity, and sophisticated " +
			"brand experiences. They appreciate craftsmanship and status.",
		VisualStyle: "elegant, sophisticated, high-end",
		ColorTone:   "gold, black, deep jewel tones",
		Mood:        "exclusive, refined, aspirational",
	},
	{
		ID:       "active_seniors",
		Name:     "Active Seniors",
		AgeRange: "55+",
		Description: "Older adults who maintain active lifestyles, value clarity and accessibility, " +
			"and appreciate straightforward, trustworthy messaging.",
		VisualStyle: "bright, accessible, friendly",
		ColorTone:   "warm, soft pastels, classic",
		Mood:        "active, content, wise",
	},
}

var byID = func() map[string]Segment {
	m := make(map[string]Segment, len(catalog))
	for _, seg := range catalog {
		m[seg.ID] = seg
	}
	return m
}()

// All returns every audience segment in catalog order.
func All() []Segment {
	out := make([]Segment, len(catalog))
	copy(out, catalog)
	return out
}

// ByID returns the segment with the given ID.
func ByID(id string) (Segment, bool) {
	seg, ok := byID[id]
	return seg, ok
}

// ByIDs returns the segments matching the given IDs in input order, skipping
// any ID not present in the catalog.
func ByIDs(ids []string) []Segment {
	out := make([]Segment, 0, len(ids))
	for _, id := range ids {
		if seg, ok := byID[id]; ok {
			out = append(out, seg)
		}
	}
	return out
}
