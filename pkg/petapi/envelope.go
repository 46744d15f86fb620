package petapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/wxtcc/petcare-client/pkg/httpclient"
)

// SuccessCode is the envelope code the backend uses for a successful call.
const SuccessCode = "0"

// Envelope wraps every response body returned by the backend.
type Envelope[T any] struct {
	Code        Text `json:"code"`
	Message     Text `json:"message"`
	Data        T    `json:"data"`
	Timestamp   Text `json:"timestamp,omitempty"`
	ExecuteTime Text `json:"executeTime,omitempty"`
}

// Text is an envelope metadata value. The backend is not consistent about
// quoting, so any non-string JSON value is kept as its literal text and null
// reads as "".
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*t = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
	default:
		*t = Text(b)
	}
	return nil
}

// DataList is the paginated payload shape.
type DataList[T any] struct {
	Total int `json:"total" yaml:"total"`
	List  []T `json:"list" yaml:"list"`
}

// DecodeEnvelope validates the status range and decodes body. The body is never
// inspected when status falls outside [200, 300).
func DecodeEnvelope[T any](status int, body []byte) (*Envelope[T], error) {
	if !successStatus(status) {
		return nil, httpError(status)
	}
	var env *Envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, unknownError(fmt.Errorf("decode envelope: %w", err))
	}
	if env == nil {
		return nil, unknownError(errors.New("decode envelope: null body"))
	}
	return env, nil
}

// decodeResponse is DecodeEnvelope over a transport response. The body is only
// read once the status has been accepted.
func decodeResponse[T any](resp httpclient.Response) (*Envelope[T], error) {
	status := resp.StatusCode()
	if !successStatus(status) {
		return nil, httpError(status)
	}
	return DecodeEnvelope[T](status, resp.Body())
}

func successStatus(status int) bool { return status >= 200 && status < 300 }

// Normalize returns the envelope's data. The envelope code and message are not
// checked; a 2xx response with a non-success code still yields its data.
func Normalize[T any](status int, body []byte) (T, error) {
	env, err := DecodeEnvelope[T](status, body)
	if err != nil {
		var zero T
		return zero, err
	}
	return env.Data, nil
}
