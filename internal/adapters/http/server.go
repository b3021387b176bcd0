package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	api "threatscan/internal/api"
	"threatscan/internal/domain"
	"threatscan/internal/ports"
)

const maxBodyBytes = 1 << 20

var _ api.StrictServerInterface = (*Server)(nil)

// Server implements the generated StrictServerInterface.
type Server struct {
	scanner  ports.Scanner
	verdicts ports.Verdicts
	metrics  http.Handler
	log      *slog.Logger
	maxBatch int
	now      func() time.Time

	inflight sync.WaitGroup
	active   atomic.Int64
}

type Options struct {
	// MaxBatchSize caps indicators per POST /api/scan. Defaults to 100.
	MaxBatchSize int
	// Metrics, when set, is mounted at /metrics.
	Metrics http.Handler
	Logger  *slog.Logger
}

func New(scanner ports.Scanner, verdicts ports.Verdicts, opts Options) *Server {
	s := &Server{
		scanner:  scanner,
		verdicts: verdicts,
		metrics:  opts.Metrics,
		log:      opts.Logger,
		maxBatch: opts.MaxBatchSize,
		now:      func() time.Time { return time.Now().UTC() },
	}
	if s.maxBatch <= 0 {
		s.maxBatch = 100
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	return s
}

// Routes returns a chi.Router mounting the generated handlers.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestSize(maxBodyBytes))

	if s.metrics != nil {
		r.Handle("/metrics", s.metrics)
	}
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, api.Error{Error: "Not Found"})
	})

	// Generated handler wiring
	handler := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.requestError,
		ResponseErrorHandlerFunc: s.responseError,
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      []api.MiddlewareFunc{s.requireScanner},
		ErrorHandlerFunc: s.paramError,
	})
	return r
}

// InFlight reports how many scan batches are running.
func (s *Server) InFlight() int { return int(s.active.Load()) }

// Drain blocks until every running batch has finished or ctx ends, and
// returns how many were still running.
func (s *Server) Drain(ctx context.Context) int {
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return 0
	case <-ctx.Done():
		return s.InFlight()
	}
}

func (s *Server) track() func() {
	s.inflight.Add(1)
	s.active.Add(1)
	return func() {
		s.active.Add(-1)
		s.inflight.Done()
	}
}

// Strict handler methods

func (s *Server) GetRoot(ctx context.Context, _ api.GetRootRequestObject) (api.GetRootResponseObject, error) {
	return api.GetRoot200JSONResponse{ActiveStatus: true, Error: false}, nil
}

func (s *Server) GetHealth(ctx context.Context, _ api.GetHealthRequestObject) (api.GetHealthResponseObject, error) {
	return api.GetHealth200JSONResponse{Ok: true, Ts: s.now()}, nil
}

func (s *Server) PostScan(ctx context.Context, req api.PostScanRequestObject) (api.PostScanResponseObject, error) {
	if detail, ok := s.checkIndicators(req.Body); !ok {
		return api.PostScan400JSONResponse(invalidRequest(detail)), nil
	}

	done := s.track()
	defer done()
	// A batch is not cancelled when the client goes away; its verdicts are
	// still persisted.
	out, err := s.scanner.Scan(context.WithoutCancel(ctx), req.Body.Indicators)
	if err != nil {
		if errors.Is(err, domain.ErrNotConfigured) {
			return api.PostScan500JSONResponse{Error: err.Error()}, nil
		}
		s.log.Error("scan failed", "error", err, "request_id", middleware.GetReqID(ctx))
		msg := err.Error()
		return api.PostScan500JSONResponse{Error: "Failed to scan indicators", Message: &msg}, nil
	}

	if len(out.Results) == 0 && out.RateLimited {
		msg, _ := out.RateLimitMessage()
		return api.PostScan429JSONResponse{Error: "Scan failed", Message: msg, Details: toFailures(out.Failures)}, nil
	}
	resp := api.ScanResponse{
		Results:        toScanResults(out.Results),
		PartialSuccess: out.PartialSuccess,
	}
	if len(out.Failures) > 0 {
		errs := toFailures(out.Failures)
		resp.Errors = &errs
	}
	return api.PostScan200JSONResponse(resp), nil
}

// checkIndicators enforces the request schema's presence and size bounds.
func (s *Server) checkIndicators(body *api.ScanRequest) (api.ErrorDetail, bool) {
	path := []string{"indicators"}
	switch {
	case body == nil || body.Indicators == nil:
		return api.ErrorDetail{Path: path, Message: "Required"}, false
	case len(body.Indicators) == 0:
		return api.ErrorDetail{Path: path, Message: "Array must contain at least 1 element(s)"}, false
	case len(body.Indicators) > s.maxBatch:
		return api.ErrorDetail{Path: path, Message: fmt.Sprintf("Array must contain at most %d element(s)", s.maxBatch)}, false
	}
	return api.ErrorDetail{}, true
}

func (s *Server) GetScan(ctx context.Context, req api.GetScanRequestObject) (api.GetScanResponseObject, error) {
	v, err := s.verdicts.Get(ctx, req.Id.String())
	if errors.Is(err, domain.ErrNotFound) {
		return api.GetScan404JSONResponse{Error: "Scan not found"}, nil
	}
	if err != nil {
		s.log.Error("get scan failed", "id", req.Id.String(), "error", err)
		return api.GetScan500JSONResponse{Error: "Failed to retrieve scan"}, nil
	}
	return api.GetScan200JSONResponse(toScanResult(v)), nil
}

func (s *Server) GetLatestVerdict(ctx context.Context, req api.GetLatestVerdictRequestObject) (api.GetLatestVerdictResponseObject, error) {
	v, err := s.verdicts.Latest(ctx, req.Indicator)
	if errors.Is(err, domain.ErrNotFound) {
		return api.GetLatestVerdict404JSONResponse{Error: "Scan not found"}, nil
	}
	if err != nil {
		s.log.Error("get latest verdict failed", "error", err)
		return api.GetLatestVerdict500JSONResponse{Error: "Failed to retrieve scan"}, nil
	}
	return api.GetLatestVerdict200JSONResponse(toScanResult(v)), nil
}

func (s *Server) ListScans(ctx context.Context, req api.ListScansRequestObject) (api.ListScansResponseObject, error) {
	filter, detail, ok := statusFilter(req.Params.Status)
	if !ok {
		return api.ListScans400JSONResponse(invalidRequest(detail)), nil
	}
	results, err := s.verdicts.List(ctx, filter)
	if err != nil {
		s.log.Error("list scans failed", "error", err)
		return api.ListScans500JSONResponse{Error: "Failed to retrieve scans"}, nil
	}
	return api.ListScans200JSONResponse{Results: toScanResults(results)}, nil
}

// statusFilter maps ?status= onto a store filter; absent and "all" mean none.
func statusFilter(p *api.StatusFilter) (*domain.Status, api.ErrorDetail, bool) {
	if p == nil || *p == api.StatusFilterAll {
		return nil, api.ErrorDetail{}, true
	}
	st, ok := domain.ParseStatus(string(*p))
	if !ok {
		return nil, api.ErrorDetail{Path: []string{"status"}, Message: fmt.Sprintf("unknown status %q", string(*p))}, false
	}
	return &st, api.ErrorDetail{}, true
}

func (s *Server) ValidateIndicators(ctx context.Context, req api.ValidateIndicatorsRequestObject) (api.ValidateIndicatorsResponseObject, error) {
	v := domain.Validate(req.Body.Text)
	return api.ValidateIndicators200JSONResponse{Valid: v.Valid, Invalid: v.Invalid}, nil
}

// requireScanner answers POST /api/scan with 500 before the body is read
// when no reputation client is configured.
func (s *Server) requireScanner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/api/scan" && !s.scanner.Configured() {
			writeJSON(w, http.StatusInternalServerError, api.Error{Error: domain.ErrNotConfigured.Error()})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requestError(w http.ResponseWriter, _ *http.Request, err error) {
	msg := fmt.Sprintf("Malformed JSON body: %v", err)
	if errors.Is(err, io.EOF) {
		msg = "Request body is required"
	}
	writeJSON(w, http.StatusBadRequest, invalidRequest(api.ErrorDetail{Path: []string{}, Message: msg}))
}

func (s *Server) responseError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Error("handler failed", "path", r.URL.Path, "error", err, "request_id", middleware.GetReqID(r.Context()))
	writeJSON(w, http.StatusInternalServerError, api.Error{Error: "Internal Server Error"})
}

func (s *Server) paramError(w http.ResponseWriter, _ *http.Request, err error) {
	var pe *api.InvalidParamFormatError
	if errors.As(err, &pe) && pe.ParamName == "id" {
		// Only UUIDs are ever issued, so anything else cannot exist.
		writeJSON(w, http.StatusNotFound, api.Error{Error: "Scan not found"})
		return
	}
	writeJSON(w, http.StatusBadRequest, invalidRequest(api.ErrorDetail{Path: []string{}, Message: err.Error()}))
}

func invalidRequest(details ...api.ErrorDetail) api.ValidationError {
	return api.ValidationError{Error: "Invalid request", Details: details}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// requestLogger logs one line per request once the response is written.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
