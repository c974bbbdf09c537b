package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the public Generative Language API endpoint.
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	// DefaultModel supports image output via responseModalities.
	DefaultModel = "gemini-2.0-flash-exp"
	// DefaultTimeout bounds a single generateContent call. No retries are
	// performed; a timeout is classified and returned to the caller.
	DefaultTimeout = 120 * time.Second

	defaultImageMIME = "image/png"
	brandAssetMIME   = "application/pdf"
)

// Options controls how the Gemini client is configured.
type Options struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     zerolog.Logger
}

// Client wraps the Gemini generateContent REST call for image generation.
// It performs exactly one outbound request per Generate call.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Params carries one generation request. Image payloads stay base64-encoded
// end to end; the API consumes them in that form.
type Params struct {
	Prompt               string
	ReferenceImageBase64 string
	ReferenceImageMIME   string
	BrandAssetBase64     string
}

// Result is the normalized successful outcome of a generation call.
type Result struct {
	ImageBase64 string
	ImageMIME   string
	// Text holds any descriptive text the model returned alongside the image.
	Text string
}

// Request wire types. The API accepts snake_case field names on input.

type generateContentRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []requestPart `json:"parts"`
}

type requestPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseModalities []string `json:"responseModalities"`
	Temperature        float64  `json:"temperature"`
	TopP               float64  `json:"topP"`
}

// Response wire types. The API emits camelCase field names.

type generateContentResponse struct {
	Candidates     []candidate     `json:"candidates"`
	PromptFeedback json.RawMessage `json:"promptFeedback,omitempty"`
}

type candidate struct {
	Content      responseContent `json:"content"`
	FinishReason string          `json:"finishReason,omitempty"`
}

type responseContent struct {
	Parts []responsePart `json:"parts"`
}

type responsePart struct {
	Text       string              `json:"text,omitempty"`
	InlineData *responseInlineData `json:"inlineData,omitempty"`
}

type responseInlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"`
}

type promptFeedback struct {
	BlockReason string `json:"blockReason,omitempty"`
}

type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code,omitempty"`
		Message string `json:"message,omitempty"`
	} `json:"error"`
}

// NewClient constructs a Gemini client with sane defaults. Callers may pass a
// nil HTTP client; one with the configured timeout is created in that case.
func NewClient(opts Options) *Client {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	model := opts.Model
	if model == "" {
		model = DefaultModel
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		apiKey:     strings.TrimSpace(opts.APIKey),
		baseURL:    base,
		model:      model,
		httpClient: httpClient,
		logger:     opts.Logger,
	}
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// Generate performs one generateContent call and extracts the generated
// image. Every failure is returned as a *Error carrying its classification.
func (c *Client) Generate(ctx context.Context, p Params) (*Result, error) {
	if c.apiKey == "" {
		return nil, &Error{
			Kind:       KindConfig,
			StatusCode: http.StatusInternalServerError,
			Message:    "GOOGLE_AI_STUDIO_API_KEY environment variable is not set.",
		}
	}

	parts := []requestPart{
		{Text: p.Prompt},
		{InlineData: &inlineData{MimeType: p.ReferenceImageMIME, Data: p.ReferenceImageBase64}},
	}
	if p.BrandAssetBase64 != "" {
		parts = append(parts, requestPart{
			InlineData: &inlineData{MimeType: brandAssetMIME, Data: p.BrandAssetBase64},
		})
	}

	payload := generateContentRequest{
		Contents: []content{{Parts: parts}},
		GenerationConfig: generationConfig{
			ResponseModalities: []string{"IMAGE", "TEXT"},
			Temperature:        0.8,
			TopP:               0.95,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &Error{
			Kind:       KindTransport,
			StatusCode: http.StatusInternalServerError,
			Message:    fmt.Sprintf("Unexpected error: %v", err),
		}
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, url.PathEscape(c.model))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &Error{
			Kind:       KindTransport,
			StatusCode: http.StatusInternalServerError,
			Message:    fmt.Sprintf("Unexpected error: %v", err),
		}
	}
	q := req.URL.Query()
	q.Set("key", c.apiKey)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug().Str("model", c.model).Msg("gemini: calling generateContent")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Msg("gemini: connection error")
		return nil, &Error{
			Kind:       KindTransport,
			StatusCode: http.StatusBadGateway,
			Message:    fmt.Sprintf("Failed to connect to Gemini API: %v", err),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, c.upstreamError(resp)
	}

	var decoded generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &Error{
			Kind:       KindTransport,
			StatusCode: http.StatusBadGateway,
			Message:    fmt.Sprintf("Failed to connect to Gemini API: %v", err),
		}
	}

	return c.parseResponse(decoded)
}

func (c *Client) upstreamError(resp *http.Response) *Error {
	raw, _ := io.ReadAll(resp.Body)
	message := strings.TrimSpace(string(raw))
	var apiErr apiErrorResponse
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Error.Message != "" {
		message = apiErr.Error.Message
	}
	if message == "" {
		message = resp.Status
	}
	c.logger.Error().Int("status", resp.StatusCode).Str("message", message).Msg("gemini: upstream HTTP error")
	return &Error{
		Kind:       KindUpstreamHTTP,
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("Gemini API error: %s", message),
		Details:    message,
	}
}

func (c *Client) parseResponse(decoded generateContentResponse) (*Result, error) {
	if len(decoded.Candidates) == 0 {
		var feedback promptFeedback
		if len(decoded.PromptFeedback) > 0 {
			_ = json.Unmarshal(decoded.PromptFeedback, &feedback)
		}
		if feedback.BlockReason != "" {
			return nil, &Error{
				Kind:       KindSafetyBlocked,
				StatusCode: http.StatusUnprocessableEntity,
				Message:    fmt.Sprintf("Generation blocked by safety filter: %s", feedback.BlockReason),
				Details:    decoded.PromptFeedback,
			}
		}
		return nil, &Error{
			Kind:       KindNoImage,
			StatusCode: http.StatusBadGateway,
			Message:    "No candidates returned from Gemini API.",
		}
	}

	first := decoded.Candidates[0]
	result := &Result{}
	for _, part := range first.Content.Parts {
		switch {
		case part.InlineData != nil:
			result.ImageBase64 = part.InlineData.Data
			result.ImageMIME = part.InlineData.MimeType
			if result.ImageMIME == "" {
				result.ImageMIME = defaultImageMIME
			}
		case part.Text != "":
			result.Text = part.Text
		}
	}

	if result.ImageBase64 == "" {
		finishReason := first.FinishReason
		if finishReason == "" {
			finishReason = "UNKNOWN"
		}
		return nil, &Error{
			Kind:       KindNoImage,
			StatusCode: http.StatusBadGateway,
			Message:    fmt.Sprintf("No image generated. Finish reason: %s", finishReason),
			Details:    map[string]any{"finish_reason": finishReason, "text": result.Text},
		}
	}

	return result, nil
}
