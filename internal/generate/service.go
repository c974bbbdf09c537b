package generate

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"creative-api/internal/gemini"
	"creative-api/internal/segments"
)

// Generator abstracts the upstream image client so the orchestrator can be
// exercised without network access.
type Generator interface {
	Generate(ctx context.Context, p gemini.Params) (*gemini.Result, error)
}

// Service orchestrates a multi-segment generation batch: per segment it
// builds a prompt, calls the upstream client, and records the outcome.
// Segment failures are isolated; one segment going down never aborts its
// siblings.
type Service struct {
	generator   Generator
	concurrency int
	logger      zerolog.Logger
}

// NewService builds the orchestrator. concurrency caps in-flight upstream
// calls; values below 2 give the strictly sequential fan-out of the original
// deployment.
func NewService(generator Generator, concurrency int, logger zerolog.Logger) *Service {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Service{generator: generator, concurrency: concurrency, logger: logger}
}

// Run executes one validated generation request and aggregates the per-segment
// outcomes. Response ordering always follows the request's segment order,
// also under parallel fan-out.
func (s *Service) Run(ctx context.Context, req *Request) *Response {
	start := time.Now()

	aspectRatio, editAreas := req.normalized()
	resolved := segments.ByIDs(req.Segments)
	hasBrandCI := req.BrandCIBase64 != ""

	results := make([]*SegmentResult, len(resolved))
	segErrors := make([]*SegmentError, len(resolved))

	if s.concurrency > 1 {
		// Bounded parallel fan-out. Slots are index-addressed so ordering is
		// preserved; workers only ever return nil, keeping the group from
		// cancelling siblings on a segment failure.
		eg, egCtx := errgroup.WithContext(ctx)
		eg.SetLimit(s.concurrency)
		for i, seg := range resolved {
			i, seg := i, seg
			eg.Go(func() error {
				results[i], segErrors[i] = s.generateOne(egCtx, seg, req, editAreas, aspectRatio, hasBrandCI)
				return nil
			})
		}
		_ = eg.Wait()
	} else {
		for i, seg := range resolved {
			results[i], segErrors[i] = s.generateOne(ctx, seg, req, editAreas, aspectRatio, hasBrandCI)
		}
	}

	resp := &Response{
		Results: make([]SegmentResult, 0, len(resolved)),
		Errors:  make([]SegmentError, 0),
	}
	for i := range resolved {
		if results[i] != nil {
			resp.Results = append(resp.Results, *results[i])
		}
		if segErrors[i] != nil {
			resp.Errors = append(resp.Errors, *segErrors[i])
		}
	}

	switch {
	case len(resp.Results) == 0 && len(resp.Errors) > 0:
		resp.Status = StatusFailed
	case len(resp.Errors) > 0:
		resp.Status = StatusPartial
	default:
		resp.Status = StatusSuccess
	}

	resp.Metadata = Metadata{
		TotalSegments:    len(resolved),
		Successful:       len(resp.Results),
		Failed:           len(resp.Errors),
		TotalTimeSeconds: roundSeconds(time.Since(start)),
		AspectRatio:      aspectRatio,
		EditAreas:        editAreas,
	}

	s.logger.Info().
		Str("status", resp.Status).
		Int("total_segments", resp.Metadata.TotalSegments).
		Int("successful", resp.Metadata.Successful).
		Int("failed", resp.Metadata.Failed).
		Float64("total_time_seconds", resp.Metadata.TotalTimeSeconds).
		Msg("generation batch finished")

	return resp
}

func (s *Service) generateOne(ctx context.Context, seg segments.Segment, req *Request, editAreas []string, aspectRatio string, hasBrandCI bool) (result *SegmentResult, segErr *SegmentError) {
	start := time.Now()

	// A panic in one segment must not take down the batch; it is converted
	// to a segment-scoped internal error like any other unexpected failure.
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Interface("panic", r).Str("segment_id", seg.ID).Msg("panic during segment generation")
			result = nil
			segErr = &SegmentError{
				SegmentID:             seg.ID,
				SegmentName:           seg.Name,
				Error:                 fmt.Sprintf("Internal error: %v", r),
				GenerationTimeSeconds: roundSeconds(time.Since(start)),
				Status:                "error",
			}
		}
	}()

	prompt := BuildPrompt(seg, editAreas, aspectRatio, hasBrandCI)

	params := gemini.Params{
		Prompt:               prompt,
		ReferenceImageBase64: req.ReferenceImageBase64,
		ReferenceImageMIME:   req.ReferenceImageMIME,
	}
	if hasBrandCI {
		params.BrandAssetBase64 = req.BrandCIBase64
	}

	generated, err := s.generator.Generate(ctx, params)
	elapsed := roundSeconds(time.Since(start))

	if err != nil {
		s.logger.Error().Err(err).Str("segment_id", seg.ID).Msg("segment generation failed")
		segErr := &SegmentError{
			SegmentID:             seg.ID,
			SegmentName:           seg.Name,
			GenerationTimeSeconds: elapsed,
			Status:                "error",
		}
		var gerr *gemini.Error
		if errors.As(err, &gerr) {
			segErr.Error = gerr.Message
			segErr.Details = gerr.Details
		} else {
			segErr.Error = fmt.Sprintf("Internal error: %v", err)
		}
		return nil, segErr
	}

	return &SegmentResult{
		SegmentID:             seg.ID,
		SegmentName:           seg.Name,
		ImageBase64:           generated.ImageBase64,
		ImageMIME:             generated.ImageMIME,
		Description:           generated.Text,
		PromptUsed:            prompt,
		GenerationTimeSeconds: elapsed,
		Status:                "success",
	}, nil
}

func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}
