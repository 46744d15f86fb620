package httpclient

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds a call when neither the request nor the client sets a timeout.
const DefaultTimeout = 30 * time.Second

// Params is a query parameter bag. Values are strings, booleans or numbers;
// nil values and nil pointers are dropped.
type Params map[string]any

// Request describes one HTTP round trip. It is built per call and discarded afterwards.
type Request struct {
	Method  string
	Path    string
	Query   Params
	Body    any
	Headers map[string]string
	Timeout time.Duration
}

// URL joins baseURL and Path verbatim and appends the encoded query, if any.
func (r Request) URL(baseURL string) string {
	u := baseURL + r.Path
	if q := EncodeQuery(r.Query); q != "" {
		u += "?" + q
	}
	return u
}

// HasBody reports whether the request body should be sent. Only POST and PUT carry one.
func (r Request) HasBody() bool {
	if r.Body == nil {
		return false
	}
	switch strings.ToUpper(r.Method) {
	case http.MethodPost, http.MethodPut:
		return true
	default:
		return false
	}
}

// DefaultHeaders returns the headers every request starts from.
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}
}

// MergeHeaders overlays headers on top of DefaultHeaders. Keys are compared in
// canonical form and the caller wins on conflict.
func MergeHeaders(headers map[string]string) map[string]string {
	merged := DefaultHeaders()
	for k, v := range headers {
		merged[http.CanonicalHeaderKey(k)] = v
	}
	return merged
}

// encodeBody renders body as JSON text. Raw bytes and strings are sent untouched.
func encodeBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case []byte:
		return b, nil
	case json.RawMessage:
		return b, nil
	case string:
		return []byte(b), nil
	default:
		return json.Marshal(body)
	}
}
