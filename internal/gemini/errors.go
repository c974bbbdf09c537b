package gemini

// Kind classifies a client failure so the caller can decide how to report it.
type Kind int

const (
	// KindConfig means the client is missing required configuration, such as
	// the API key. Server fault, fatal for the request.
	KindConfig Kind = iota
	// KindTransport means no application-level response was received
	// (connection refused, DNS failure, timeout).
	KindTransport
	// KindUpstreamHTTP means the API answered with a non-2xx status.
	KindUpstreamHTTP
	// KindSafetyBlocked means the prompt was rejected by the content-safety
	// filter before any candidate was produced.
	KindSafetyBlocked
	// KindNoImage means the response was well-formed but contained no usable
	// image data.
	KindNoImage
)

// Error is returned for every failure mode of the Gemini client. StatusCode
// is the HTTP classification the caller should map the failure to; for
// KindUpstreamHTTP it is the status the API itself returned.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Details    any
}

func (e *Error) Error() string {
	return e.Message
}
