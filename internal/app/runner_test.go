package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/wxtcc/petcare-client/internal/config"
	"github.com/wxtcc/petcare-client/pkg/petapi"
)

// newBackend serves canned envelopes keyed by request path and records the raw queries.
func newBackend(t *testing.T, payloads map[string]string) (*httptest.Server, map[string]string) {
	t.Helper()
	queries := make(map[string]string)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, ok := payloads[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		queries[r.URL.Path] = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":"0","message":"ok","data":` + data + `}`))
	}))
	t.Cleanup(srv.Close)
	return srv, queries
}

func newTestRunner(t *testing.T, baseURL, output string) (*Runner, *bytes.Buffer) {
	t.Helper()
	cfg := &config.Config{BaseURL: baseURL, Timeout: 2 * time.Second, Output: output}
	var out bytes.Buffer
	r, err := NewRunner(cfg, nil, &out, nil)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	return r, &out
}

func TestRunPetsPrintsJSON(t *testing.T) {
	srv, queries := newBackend(t, map[string]string{
		"/officelease/pets/getPets": `[{"id":1,"userId":1,"petName":"Milo"}]`,
	})
	r, out := newTestRunner(t, srv.URL, config.OutputJSON)

	if err := r.Run(context.Background(), []string{"pets", "--key", "key123"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if queries["/officelease/pets/getPets"] != "key=key123&userId=1" {
		t.Fatalf("unexpected query %q", queries["/officelease/pets/getPets"])
	}

	var pets []petapi.Pet
	if err := json.Unmarshal(out.Bytes(), &pets); err != nil {
		t.Fatalf("decode output %q: %v", out.String(), err)
	}
	if len(pets) != 1 || pets[0].PetName != "Milo" {
		t.Fatalf("unexpected output %+v", pets)
	}
}

func TestRunMonitoringPrintsYAML(t *testing.T) {
	srv, _ := newBackend(t, map[string]string{
		"/officelease/pets/getMonitoring": `{"userId":"1","temperature":"22.5","airQuality":"Good"}`,
	})
	r, out := newTestRunner(t, srv.URL, config.OutputYAML)

	if err := r.Run(context.Background(), []string{"monitoring", "--key", "k"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := out.String()
	for _, want := range []string{`temperature: "22.5"`, "airQuality: Good", `userId: "1"`} {
		if !strings.Contains(got, want) {
			t.Fatalf("yaml output missing %q:\n%s", want, got)
		}
	}
}

func TestRunHealthHistoryEncodesTimes(t *testing.T) {
	srv, queries := newBackend(t, map[string]string{
		"/officelease/pets/getPetHealthHistory": `{"total":1,"list":[{"petName":"Milo"}]}`,
	})
	r, out := newTestRunner(t, srv.URL, config.OutputJSON)

	err := r.Run(context.Background(), []string{
		"health-history", "--key", "k", "--pet-id", "3",
		"--start", "2024-01-01 10:00", "--end", "2024-01-31 23:59",
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := "endTime=2024-01-31+23:59&key=k&page=1&petId=3&size=10&startTime=2024-01-01+10:00"
	if got := queries["/officelease/pets/getPetHealthHistory"]; got != want {
		t.Fatalf("query = %q, want %q", got, want)
	}
	if !strings.Contains(out.String(), `"total": 1`) {
		t.Fatalf("unexpected output %s", out.String())
	}
}

func TestRunAddFeedingDeviceUsesDefaults(t *testing.T) {
	srv, queries := newBackend(t, map[string]string{
		"/officelease/pets/addFeedingDevices": `"success"`,
	})
	r, out := newTestRunner(t, srv.URL, config.OutputJSON)

	err := r.Run(context.Background(), []string{
		"add-feeding-device", "--key", "k", "--pet-id", "3", "--time", "08:00:00", "--amount", "50", "--info", "breakfast",
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := "deviceId=1&foodAmount=50&isActive=true&key=k&petId=3&scheduleIndo=breakfast&scheduleTime=08:00:00"
	if got := queries["/officelease/pets/addFeedingDevices"]; got != want {
		t.Fatalf("query = %q, want %q", got, want)
	}
	if strings.TrimSpace(out.String()) != `"success"` {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRunSurfacesTypedErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()
	r, out := newTestRunner(t, srv.URL, config.OutputJSON)

	err := r.Run(context.Background(), []string{"login", "--user", "amy", "--password", "pw"})
	var apiErr *petapi.Error
	if !errors.As(err, &apiErr) || apiErr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 typed error, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output on failure, got %q", out.String())
	}
}

func TestRunValidatesArguments(t *testing.T) {
	r, _ := newTestRunner(t, "http://127.0.0.1:1", config.OutputJSON)
	cases := map[string][]string{
		"no command":        nil,
		"unknown command":   {"feed-now"},
		"missing key":       {"pets"},
		"bad type":          {"set-userinfo", "--user", "a", "--password", "b", "--type", "2"},
		"unknown flag":      {"monitoring", "--key", "k", "--colour", "red"},
		"stray positional":  {"monitoring", "--key", "k", "extra"},
		"missing schedule":  {"add-feeding-device", "--key", "k", "--pet-id", "1"},
		"missing pet id":    {"feeding-schedules", "--key", "k"},
		"missing update id": {"update-pets", "--key", "k"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			if err := r.Run(context.Background(), args); err == nil {
				t.Fatalf("expected error for %v", args)
			}
		})
	}
}

func TestRunHelpListsCommands(t *testing.T) {
	r, out := newTestRunner(t, "http://127.0.0.1:1", config.OutputJSON)
	if err := r.Run(context.Background(), []string{"help"}); err != nil {
		t.Fatalf("Run help: %v", err)
	}
	for _, name := range []string{"login", "set-userinfo", "pets", "update-pets", "feeding-schedules", "add-feeding-device", "health-history", "monitoring"} {
		if !strings.Contains(out.String(), name) {
			t.Fatalf("usage missing %q:\n%s", name, out.String())
		}
	}
}

func TestNewRunnerRequiresConfig(t *testing.T) {
	if _, err := NewRunner(nil, nil, nil, nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
}
