package httpadapter

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"threatscan/internal/adapters/memory"
	api "threatscan/internal/api"
	"threatscan/internal/domain"
	"threatscan/internal/logging"
	"threatscan/internal/services/verdicts"
)

// stubScanner records what it was asked to scan and replays a canned outcome.
type stubScanner struct {
	configured bool
	outcome    domain.BatchOutcome
	err        error
	calls      [][]string
}

func (s *stubScanner) Configured() bool { return s.configured }

func (s *stubScanner) Scan(ctx context.Context, indicators []string) (domain.BatchOutcome, error) {
	s.calls = append(s.calls, indicators)
	return s.outcome, s.err
}

type fixture struct {
	scanner *stubScanner
	store   *memory.Store
	handler http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.New()
	sc := &stubScanner{configured: true}
	srv := New(sc, verdicts.New(store), Options{Logger: logging.Discard()})
	return &fixture{scanner: sc, store: store, handler: srv.Routes()}
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

func TestPostScanFullSuccess(t *testing.T) {
	f := newFixture(t)
	f.scanner.outcome = domain.BatchOutcome{
		Results: []domain.Verdict{{ID: "a", Indicator: "1.1.1.1", Type: domain.TypeIP, Status: domain.StatusClean}},
	}

	rec := f.do(http.MethodPost, "/api/scan", `{"indicators":["1.1.1.1"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var body map[string]json.RawMessage
	decode(t, rec, &body)
	if _, ok := body["errors"]; ok {
		t.Errorf("full success should omit errors: %s", rec.Body)
	}
	if string(body["partialSuccess"]) != "false" {
		t.Errorf("partialSuccess = %s", body["partialSuccess"])
	}
	if len(f.scanner.calls) != 1 || f.scanner.calls[0][0] != "1.1.1.1" {
		t.Errorf("scanner calls = %v", f.scanner.calls)
	}
}

func TestPostScanPartialSuccess(t *testing.T) {
	f := newFixture(t)
	f.scanner.outcome = domain.BatchOutcome{
		Results:        []domain.Verdict{{ID: "a", Indicator: "1.1.1.1"}},
		Failures:       []domain.Failure{{Indicator: "2.2.2.2", Error: "VirusTotal API error: 500 Internal Server Error"}},
		PartialSuccess: true,
	}

	rec := f.do(http.MethodPost, "/api/scan", `{"indicators":["1.1.1.1","2.2.2.2"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body api.ScanResponse
	decode(t, rec, &body)
	if !body.PartialSuccess || body.Errors == nil || len(*body.Errors) != 1 || len(body.Results) != 1 {
		t.Errorf("body = %+v", body)
	}
}

func TestPostScanRateLimitedTotalFailure(t *testing.T) {
	f := newFixture(t)
	f.scanner.outcome = domain.BatchOutcome{
		Failures: []domain.Failure{
			{Indicator: "1.1.1.1", Error: "VirusTotal API error: 429 Too Many Requests"},
			{Indicator: domain.RateLimitIndicator, Error: "quota spent"},
		},
		RateLimited: true,
	}

	rec := f.do(http.MethodPost, "/api/scan", `{"indicators":["1.1.1.1","2.2.2.2"]}`)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	var body struct {
		Error   string           `json:"error"`
		Message string           `json:"message"`
		Details []domain.Failure `json:"details"`
	}
	decode(t, rec, &body)
	if body.Error != "Scan failed" || body.Message != "quota spent" || len(body.Details) != 2 {
		t.Errorf("body = %+v", body)
	}
}

func TestPostScanTotalFailureWithoutRateLimit(t *testing.T) {
	f := newFixture(t)
	f.scanner.outcome = domain.BatchOutcome{
		Failures: []domain.Failure{{Indicator: "1.1.1.1", Error: "VirusTotal API error: 401 Unauthorized"}},
	}
	rec := f.do(http.MethodPost, "/api/scan", `{"indicators":["1.1.1.1"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body api.ScanResponse
	decode(t, rec, &body)
	if len(body.Results) != 0 || body.Errors == nil || len(*body.Errors) != 1 || body.PartialSuccess {
		t.Errorf("body = %+v", body)
	}
}

func TestPostScanValidation(t *testing.T) {
	tooMany := make([]string, 101)
	for i := range tooMany {
		tooMany[i] = fmt.Sprintf("10.0.0.%d", i%256)
	}
	big, _ := json.Marshal(map[string][]string{"indicators": tooMany})

	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"malformed", `{"indicators":`},
		{"missing", `{}`},
		{"empty list", `{"indicators":[]}`},
		{"non strings", `{"indicators":[1,2]}`},
		{"over limit", string(big)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			rec := f.do(http.MethodPost, "/api/scan", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (%s)", rec.Code, rec.Body)
			}
			var body api.ValidationError
			decode(t, rec, &body)
			if body.Error != "Invalid request" || len(body.Details) == 0 {
				t.Errorf("body = %s", rec.Body)
			}
			if len(f.scanner.calls) != 0 {
				t.Errorf("scanner called %d times, want 0", len(f.scanner.calls))
			}
		})
	}
}

func TestPostScanNotConfigured(t *testing.T) {
	f := newFixture(t)
	f.scanner.configured = false
	rec := f.do(http.MethodPost, "/api/scan", `{"indicators":["1.1.1.1"]}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "not configured") {
		t.Errorf("body = %s", rec.Body)
	}
	if len(f.scanner.calls) != 0 {
		t.Error("scanner should not run without a key")
	}
}

func TestPostScanStorageFailure(t *testing.T) {
	f := newFixture(t)
	f.scanner.err = fmt.Errorf("%w: boom", domain.ErrStorage)
	rec := f.do(http.MethodPost, "/api/scan", `{"indicators":["1.1.1.1"]}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var body api.Error
	decode(t, rec, &body)
	if body.Error != "Failed to scan indicators" || body.Message == nil || !strings.Contains(*body.Message, "boom") {
		t.Errorf("body = %+v", body)
	}
}

func TestGetScanByID(t *testing.T) {
	f := newFixture(t)
	saved, _ := f.store.Create(context.Background(), domain.Verdict{Indicator: "8.8.8.8", Type: domain.TypeIP, Status: domain.StatusClean})

	rec := f.do(http.MethodGet, "/api/scan/"+saved.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got domain.Verdict
	decode(t, rec, &got)
	if got.ID != saved.ID || got.Indicator != "8.8.8.8" {
		t.Errorf("got %+v", got)
	}

	for _, id := range []string{"6f1c1e4e-8f43-4c5e-a0a4-3a3d0b2f9d11", "not-a-uuid"} {
		if rec := f.do(http.MethodGet, "/api/scan/"+id, ""); rec.Code != http.StatusNotFound {
			t.Errorf("GET %s status = %d, want 404", id, rec.Code)
		}
	}
}

func TestGetScansFilter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.store.Create(ctx, domain.Verdict{Indicator: "1.1.1.1", Status: domain.StatusClean})
	f.store.Create(ctx, domain.Verdict{Indicator: "2.2.2.2", Status: domain.StatusMalicious})

	var all api.ScanListResponse
	decode(t, f.do(http.MethodGet, "/api/scans", ""), &all)
	if len(all.Results) != 2 {
		t.Errorf("results = %d, want 2", len(all.Results))
	}

	var bad api.ScanListResponse
	decode(t, f.do(http.MethodGet, "/api/scans?status=malicious", ""), &bad)
	if len(bad.Results) != 1 || bad.Results[0].Indicator != "2.2.2.2" {
		t.Errorf("malicious = %+v", bad.Results)
	}

	if rec := f.do(http.MethodGet, "/api/scans?status=weird", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("bad status filter = %d, want 400", rec.Code)
	}
}

func TestGetLatestByIndicator(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.store.Create(ctx, domain.Verdict{Indicator: "1.1.1.1", Status: domain.StatusClean})
	f.store.Create(ctx, domain.Verdict{Indicator: "1.1.1.1", Status: domain.StatusSuspicious})

	var got domain.Verdict
	decode(t, f.do(http.MethodGet, "/api/indicators/1.1.1.1", ""), &got)
	if got.Status != domain.StatusSuspicious {
		t.Errorf("status = %q, want latest (suspicious)", got.Status)
	}
	if rec := f.do(http.MethodGet, "/api/indicators/9.9.9.9", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown indicator = %d, want 404", rec.Code)
	}
}

func TestExportCSV(t *testing.T) {
	f := newFixture(t)
	f.store.Create(context.Background(), domain.Verdict{Indicator: "1.1.1.1", Type: domain.TypeIP, Status: domain.StatusClean, Detections: 0, TotalVendors: 90})

	rec := f.do(http.MethodGet, "/api/scans/export?format=csv", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "threatscan-results-") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	rows, err := csv.NewReader(rec.Body).ReadAll()
	if err != nil {
		t.Fatalf("csv: %v", err)
	}
	if len(rows) != 2 || rows[0][4] != "Total Vendors" || rows[1][0] != "1.1.1.1" || rows[1][4] != "90" {
		t.Errorf("rows = %v", rows)
	}
}

func TestExportJSONAndBadFormat(t *testing.T) {
	f := newFixture(t)
	f.store.Create(context.Background(), domain.Verdict{Indicator: "1.1.1.1"})

	var got []domain.Verdict
	decode(t, f.do(http.MethodGet, "/api/scans/export?format=json", ""), &got)
	if len(got) != 1 {
		t.Errorf("exported %d verdicts, want 1", len(got))
	}
	if rec := f.do(http.MethodGet, "/api/scans/export?format=xml", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("xml export = %d, want 400", rec.Code)
	}
}

func TestPostValidate(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodPost, "/api/validate", `{"text":"1.1.1.1, bogus\n8.8.8.8"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var v domain.Validation
	decode(t, rec, &v)
	if len(v.Valid) != 2 || len(v.Invalid) != 1 || v.Invalid[0] != "bogus" {
		t.Errorf("validation = %+v", v)
	}
}

func TestHealthRootAndNotFound(t *testing.T) {
	f := newFixture(t)
	if rec := f.do(http.MethodGet, "/api/health", ""); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok":true`) {
		t.Errorf("health = %d %s", rec.Code, rec.Body)
	}
	if rec := f.do(http.MethodGet, "/", ""); !strings.Contains(rec.Body.String(), `"activeStatus":true`) {
		t.Errorf("root = %s", rec.Body)
	}
	rec := f.do(http.MethodGet, "/nope", "")
	if rec.Code != http.StatusNotFound || !strings.Contains(rec.Body.String(), "Not Found") {
		t.Errorf("unknown route = %d %s", rec.Code, rec.Body)
	}
}

func TestMetricsMountedWhenProvided(t *testing.T) {
	store := memory.New()
	called := false
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })
	h := New(&stubScanner{}, verdicts.New(store), Options{Metrics: metrics, Logger: logging.Discard()}).Routes()

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !called {
		t.Error("metrics handler not mounted")
	}
}

func TestPostScanKeyCheckPrecedesBodyValidation(t *testing.T) {
	f := newFixture(t)
	f.scanner.configured = false
	rec := f.do(http.MethodPost, "/api/scan", `{"indicators":`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestPostValidateMalformedBody(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodPost, "/api/validate", `{"text":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body api.ValidationError
	decode(t, rec, &body)
	if body.Error != "Invalid request" || len(body.Details) != 1 {
		t.Errorf("body = %+v", body)
	}
}

// blockingScanner holds every Scan until release is closed.
type blockingScanner struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingScanner) Configured() bool { return true }

func (b *blockingScanner) Scan(ctx context.Context, indicators []string) (domain.BatchOutcome, error) {
	b.started <- struct{}{}
	<-b.release
	return domain.BatchOutcome{}, nil
}

func TestDrainReportsRunningBatches(t *testing.T) {
	sc := &blockingScanner{started: make(chan struct{}, 1), release: make(chan struct{})}
	srv := New(sc, verdicts.New(memory.New()), Options{Logger: logging.Discard()})
	h := srv.Routes()

	finished := make(chan int, 1)
	go func() {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/scan", strings.NewReader(`{"indicators":["1.1.1.1"]}`)))
		finished <- rec.Code
	}()
	<-sc.started

	if got := srv.InFlight(); got != 1 {
		t.Errorf("InFlight = %d, want 1", got)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if n := srv.Drain(ctx); n != 1 {
		t.Errorf("Drain with expired deadline = %d, want 1", n)
	}

	close(sc.release)
	if code := <-finished; code != http.StatusOK {
		t.Errorf("scan status = %d, want 200", code)
	}
	if n := srv.Drain(context.Background()); n != 0 {
		t.Errorf("Drain after completion = %d, want 0", n)
	}
}
