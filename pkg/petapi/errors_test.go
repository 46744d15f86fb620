package petapi

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestErrorTimestampIsISO8601UTC(t *testing.T) {
	orig := now
	now = func() time.Time {
		return time.Date(2024, 3, 9, 18, 4, 5, 123_000_000, time.FixedZone("CST", 8*3600))
	}
	t.Cleanup(func() { now = orig })

	err := httpError(401)
	if err.Timestamp != "2024-03-09T10:04:05.123Z" {
		t.Fatalf("timestamp = %q", err.Timestamp)
	}
	if err.Error() != "petapi: HTTP Error: 401 (code 401)" {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestAsErrorPassesTypedErrorsThrough(t *testing.T) {
	orig := httpError(503)
	wrapped := fmt.Errorf("transport: %w", orig)

	if got := asError(orig); got != orig {
		t.Fatalf("expected identical error, got %+v", got)
	}
	if got := asError(wrapped); got != orig {
		t.Fatalf("expected wrapped typed error to be unwrapped unchanged, got %+v", got)
	}
}

func TestAsErrorClassifiesUnknown(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	got := asError(cause)
	if got.Code != CodeUnknown || got.Message != "network or unknown error" {
		t.Fatalf("unexpected error %+v", got)
	}
	if !errors.Is(got, cause) {
		t.Fatalf("expected cause to be reachable via errors.Is")
	}
}

func TestIsHTTPStatus(t *testing.T) {
	err := fmt.Errorf("call: %w", httpError(404))
	if !IsHTTPStatus(err, 404) {
		t.Fatalf("expected 404 to match")
	}
	if IsHTTPStatus(err, 500) {
		t.Fatalf("did not expect 500 to match")
	}
	if IsHTTPStatus(errors.New("plain"), CodeUnknown) {
		t.Fatalf("plain errors are not typed errors")
	}
}
