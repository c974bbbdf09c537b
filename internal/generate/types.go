package generate

// Wire types for the multi-segment generation endpoint. Image payloads are
// carried as base64 strings end to end; the server never decodes them.

const (
	StatusSuccess = "success"
	StatusPartial = "partial"
	StatusFailed  = "failed"
)

const (
	// MaxSegmentsPerRequest caps the fan-out size of a single batch.
	MaxSegmentsPerRequest = 8
	// MaxImageSizeBytes limits the encoded (base64) reference image size.
	MaxImageSizeBytes = 20 * 1024 * 1024
)

// Request is the decoded POST /api/generate body.
type Request struct {
	ReferenceImageBase64 string   `json:"reference_image_base64"`
	ReferenceImageMIME   string   `json:"reference_image_mime"`
	Segments             []string `json:"segments"`
	AspectRatio          string   `json:"aspect_ratio"`
	// EditAreas distinguishes absent (nil, defaults to all areas) from
	// explicitly empty (generic adjustment instruction).
	EditAreas     []string `json:"edit_areas"`
	BrandCIBase64 string   `json:"brand_ci_base64"`
}

// SegmentResult describes one successful per-segment generation.
type SegmentResult struct {
	SegmentID             string  `json:"segment_id"`
	SegmentName           string  `json:"segment_name"`
	ImageBase64           string  `json:"image_base64"`
	ImageMIME             string  `json:"image_mime"`
	Description           string  `json:"description,omitempty"`
	PromptUsed            string  `json:"prompt_used"`
	GenerationTimeSeconds float64 `json:"generation_time_seconds"`
	Status                string  `json:"status"`
}

// SegmentError describes one failed per-segment generation. A failure is
// scoped to its segment and never aborts the rest of the batch.
type SegmentError struct {
	SegmentID             string  `json:"segment_id"`
	SegmentName           string  `json:"segment_name"`
	Error                 string  `json:"error"`
	Details               any     `json:"details,omitempty"`
	GenerationTimeSeconds float64 `json:"generation_time_seconds"`
	Status                string  `json:"status"`
}

// Metadata summarizes the whole batch.
type Metadata struct {
	TotalSegments    int      `json:"total_segments"`
	Successful       int      `json:"successful"`
	Failed           int      `json:"failed"`
	TotalTimeSeconds float64  `json:"total_time_seconds"`
	AspectRatio      string   `json:"aspect_ratio"`
	EditAreas        []string `json:"edit_areas"`
}

// Response is the aggregate envelope returned for a generation batch.
type Response struct {
	Status   string          `json:"status"`
	Results  []SegmentResult `json:"results"`
	Errors   []SegmentError  `json:"errors"`
	Metadata Metadata        `json:"metadata"`
}

// HTTPStatus maps the aggregate outcome to its response status code: 200 for
// full success, 207 when some segments failed, 502 when all did.
func (r *Response) HTTPStatus() int {
	switch r.Status {
	case StatusFailed:
		return 502
	case StatusPartial:
		return 207
	default:
		return 200
	}
}
