package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/yzho285/public-holidays-display/internal/cache"
	"github.com/yzho285/public-holidays-display/internal/model"
	"github.com/yzho285/public-holidays-display/internal/remote"
	"github.com/yzho285/public-holidays-display/internal/resolver"
)

type stubFetcher struct {
	result remote.FetchResult
}

func (f *stubFetcher) FetchYears(context.Context, string, []int) remote.FetchResult {
	return f.result
}

func testServer(t *testing.T, result remote.FetchResult) *httptest.Server {
	t.Helper()
	svc := resolver.New(resolver.Config{
		Fetcher: &stubFetcher{result: result},
		Cache:   cache.NewMemory(time.Now),
	})
	s := New(Config{
		Resolver: svc,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	srv := httptest.NewServer(s.Router())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	return resp, body
}

func TestHolidays_FallbackServesCatalogWithNote(t *testing.T) {
	srv := testServer(t, remote.Failure(errors.New("remote down")))

	resp, body := get(t, srv.URL+"/api/v1/holidays?province=ON&start=2024-01-01&end=2024-12-31")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}

	var payload struct {
		Source   string          `json:"source"`
		Note     string          `json:"note"`
		Count    int             `json:"count"`
		Holidays []model.Holiday `json:"holidays"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Source != "fallback" || payload.Note == "" {
		t.Errorf("source=%s note=%q", payload.Source, payload.Note)
	}
	if payload.Count == 0 || payload.Count != len(payload.Holidays) {
		t.Errorf("count=%d holidays=%d", payload.Count, len(payload.Holidays))
	}
	var names []string
	for _, h := range payload.Holidays {
		names = append(names, h.Name)
	}
	joined := strings.Join(names, ",")
	if !strings.Contains(joined, "Canada Day") || strings.Contains(joined, "Saint-Jean-Baptiste") {
		t.Errorf("names = %v", names)
	}
}

func TestHolidays_SearchAndFilter(t *testing.T) {
	srv := testServer(t, remote.Failure(errors.New("down")))

	_, body := get(t, srv.URL+"/api/v1/holidays?province=ON&start=2024-01-01&end=2024-12-31&search=canada&filter=federal")
	var payload struct {
		Holidays []model.Holiday `json:"holidays"`
	}
	json.Unmarshal(body, &payload)
	if len(payload.Holidays) != 1 || payload.Holidays[0].Name != "Canada Day" {
		t.Errorf("holidays = %+v", payload.Holidays)
	}
}

func TestHolidays_InvalidInput(t *testing.T) {
	srv := testServer(t, remote.Success(nil))

	cases := []string{
		"/api/v1/holidays?province=XX&start=2024-01-01&end=2024-12-31",
		"/api/v1/holidays?province=ON&start=2024-12-31&end=2024-01-01",
		"/api/v1/holidays?province=ON&start=notadate&end=2024-12-31",
		"/api/v1/holidays?start=2024-01-01&end=2024-12-31", // missing province
		"/api/v1/holidays?province=ON&start=2024-01-01&end=2024-12-31&filter=bogus",
	}
	for _, path := range cases {
		resp, _ := get(t, srv.URL+path)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: status %d, want 400", path, resp.StatusCode)
		}
	}
}

func TestProvinces(t *testing.T) {
	srv := testServer(t, remote.Success(nil))

	resp, body := get(t, srv.URL+"/api/v1/provinces")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var provs []model.Province
	if err := json.Unmarshal(body, &provs); err != nil {
		t.Fatal(err)
	}
	if len(provs) != 13 {
		t.Errorf("got %d provinces, want 13", len(provs))
	}
}

func TestExport_CSV(t *testing.T) {
	srv := testServer(t, remote.Failure(errors.New("down")))

	resp, body := get(t, srv.URL+"/api/v1/holidays/export?format=csv&province=ON&start=2024-01-01&end=2024-12-31")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("content-type = %s", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "canadian_holidays_ON_") {
		t.Errorf("content-disposition = %s", cd)
	}
	if !strings.Contains(string(body), "Holiday Name,Date,Observed Date") {
		t.Errorf("missing csv header:\n%s", body)
	}
}

func TestExport_ICS(t *testing.T) {
	srv := testServer(t, remote.Failure(errors.New("down")))

	resp, body := get(t, srv.URL+"/api/v1/holidays/export?format=ics&province=QC&start=2024-01-01&end=2024-12-31")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Errorf("content-type = %s", ct)
	}
	out := string(body)
	if !strings.Contains(out, "BEGIN:VCALENDAR") || !strings.Contains(out, "Saint-Jean-Baptiste Day") {
		t.Errorf("ics body:\n%s", out)
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	srv := testServer(t, remote.Success(nil))
	resp, _ := get(t, srv.URL+"/api/v1/holidays/export?format=pdf&province=ON")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestResolutions_DisabledWithoutJournal(t *testing.T) {
	srv := testServer(t, remote.Success(nil))
	resp, _ := get(t, srv.URL+"/api/v1/resolutions")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestRequestID_Echoed(t *testing.T) {
	srv := testServer(t, remote.Success(nil))
	resp, _ := get(t, srv.URL+"/api/v1/health")
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}
