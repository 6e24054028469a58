package transporthttp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"animesh/internal/schedule"
)

type fakeRunner struct {
	got    schedule.Request
	result *schedule.Result
	err    error
}

func (f *fakeRunner) Run(ctx context.Context, req schedule.Request) (*schedule.Result, error) {
	f.got = req
	return f.result, f.err
}

func TestScheduleEndpoint(t *testing.T) {
	runner := &fakeRunner{result: &schedule.Result{
		Timezone: schedule.Timezone{Name: "JST", Offset: 9 * 3600},
		Window:   schedule.Window{Start: 10, End: 10 + 2*86400},
		Rows:     []schedule.Row{{Title: "Frieren", Episode: 7, Status: "in 3h"}},
	}}
	srv := NewServer(runner, "UTC", nil)

	req := httptest.NewRequest(http.MethodGet, "/schedule?day=friday&days=2&timezone=JST", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if runner.got.Day != "friday" || runner.got.Days != 2 || runner.got.Timezone != "JST" {
		t.Fatalf("unexpected request: %+v", runner.got)
	}

	var payload schedule.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Rows) != 1 || payload.Rows[0].Title != "Frieren" {
		t.Fatalf("unexpected rows: %+v", payload.Rows)
	}
}

func TestScheduleEndpointDefaults(t *testing.T) {
	runner := &fakeRunner{result: &schedule.Result{}}
	srv := NewServer(runner, "IST", nil)

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schedule", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if runner.got.Days != 1 || runner.got.Timezone != "IST" || runner.got.Day != "" {
		t.Fatalf("unexpected defaults: %+v", runner.got)
	}
}

func TestScheduleEndpointRejectsBadDays(t *testing.T) {
	srv := NewServer(&fakeRunner{result: &schedule.Result{}}, "", nil)

	for _, q := range []string{"days=-1", "days=abc", "days=99"} {
		rec := httptest.NewRecorder()
		srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schedule?"+q, nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected status 400, got %d", q, rec.Code)
		}
	}
}

func TestScheduleEndpointUpstreamFailure(t *testing.T) {
	srv := NewServer(&fakeRunner{err: errors.New("anilist: api error 500")}, "", nil)

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schedule", nil))

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", rec.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := NewServer(&fakeRunner{}, "", nil)

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}
