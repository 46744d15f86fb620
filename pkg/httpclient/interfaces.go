package httpclient

import "context"

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client abstracts a single HTTP round trip so callers can inject fakes or different transports.
// Implementations return transport faults as plain errors and leave classification to the caller.
type Client interface {
	Do(ctx context.Context, baseURL string, req Request) (Response, error)
}
