package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/net/netutil"

	httpadapter "threatscan/internal/adapters/http"
	"threatscan/internal/adapters/memory"
	"threatscan/internal/adapters/virustotal"
	"threatscan/internal/config"
	"threatscan/internal/logging"
	"threatscan/internal/metrics"
	"threatscan/internal/ports"
	scansvc "threatscan/internal/services/scanner"
	verdictsvc "threatscan/internal/services/verdicts"
	"threatscan/internal/telemetry"
	"threatscan/internal/workers/scanrunner"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	log := logging.New("threatscan", cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Init(ctx, telemetry.Config{
		Endpoint:    cfg.Telemetry.OTLPEndpoint,
		Insecure:    cfg.Telemetry.Insecure,
		Service:     cfg.Telemetry.ServiceName,
		Environment: cfg.Env,
	}, log)
	if err != nil {
		log.Warn("tracing disabled", "error", err)
	}
	defer telemetry.Flush(context.Background(), shutdownTracing, log)

	store := memory.New()
	var _ ports.VerdictRepository = store
	m := metrics.New()

	var lookup ports.ReputationLookup
	if cfg.VirusTotal.APIKey != "" {
		lookup = virustotal.New(virustotal.Config{
			BaseURL: cfg.VirusTotal.BaseURL,
			APIKey:  cfg.VirusTotal.APIKey,
			Timeout: cfg.VirusTotal.Timeout,
		})
	} else {
		log.Warn("VIRUSTOTAL_API_KEY not set; scan requests will fail")
	}

	scanner := scansvc.New(lookup, store,
		scansvc.WithPacer(pacerFor(cfg.Scan)),
		scansvc.WithLogger(log),
		scansvc.WithMetrics(m),
	)
	srv := httpadapter.New(scanner, verdictsvc.New(store), httpadapter.Options{
		MaxBatchSize: cfg.Scan.MaxBatchSize,
		Metrics:      m.Handler(),
		Logger:       log,
	})
	r := chi.NewRouter()
	r.Mount("/", srv.Routes())

	ln, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	if cfg.MaxConnections > 0 {
		ln = netutil.LimitListener(ln, cfg.MaxConnections)
	}

	// No write timeout: a full batch is paced over several minutes.
	httpSrv := &http.Server{
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.Serve(ln) }()
	log.Info("listening", "addr", ln.Addr().String(), "env", cfg.Env, "pacing", cfg.Scan.Pacing)

	select {
	case <-ctx.Done():
		log.Info("shutting down", "in_flight_batches", srv.InFlight(), "timeout", cfg.ShutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		err := httpSrv.Shutdown(shutdownCtx)
		if n := srv.Drain(shutdownCtx); n > 0 {
			log.Warn("abandoning in-flight batches; their verdicts are not persisted", "count", n)
		}
		if err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	}
}

func pacerFor(cfg config.Scan) scanrunner.Pacer {
	if cfg.Pacing == "token_bucket" {
		return scanrunner.NewTokenBucket(cfg.RatePerMinute, 1)
	}
	return scanrunner.FixedDelay(cfg.Delay)
}
