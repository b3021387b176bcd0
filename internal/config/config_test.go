package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("VIRUSTOTAL_API_KEY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want :8080", cfg.ListenAddr)
	}
	if cfg.Scan.Delay != 15*time.Second {
		t.Errorf("Scan.Delay = %v, want 15s", cfg.Scan.Delay)
	}
	if cfg.Scan.MaxBatchSize != 100 {
		t.Errorf("MaxBatchSize = %d, want 100", cfg.Scan.MaxBatchSize)
	}
	if cfg.VirusTotal.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", cfg.VirusTotal.APIKey)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "threatscan.yaml")
	yml := []byte("listen_addr: \":9000\"\nvirustotal:\n  api_key: from-file\nscan:\n  delay: 2s\n  pacing: token_bucket\n  rate_per_minute: 6\n")
	if err := os.WriteFile(path, yml, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("VIRUSTOTAL_API_KEY", "from-env")
	t.Setenv("SCAN_DELAY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":9000" {
		t.Errorf("ListenAddr = %q, want :9000", cfg.ListenAddr)
	}
	if cfg.VirusTotal.APIKey != "from-env" {
		t.Errorf("APIKey = %q, want env to win", cfg.VirusTotal.APIKey)
	}
	if cfg.Scan.Delay != 2*time.Second || cfg.Scan.Pacing != "token_bucket" || cfg.Scan.RatePerMinute != 6 {
		t.Errorf("Scan = %+v", cfg.Scan)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("SCAN_DELAY=3s\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("SCAN_DELAY", "")
	os.Unsetenv("SCAN_DELAY")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Scan.Delay != 3*time.Second {
		t.Errorf("Scan.Delay = %v, want 3s from .env", cfg.Scan.Delay)
	}
}

func TestLoadRejectsBadPacing(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("SCAN_PACING", "burst")
	if _, err := Load(); err == nil {
		t.Error("expected error for unknown pacing")
	}
}

func TestGetenvHelpers(t *testing.T) {
	t.Setenv("X_INT", "12")
	t.Setenv("X_BAD_INT", "twelve")
	t.Setenv("X_DUR", "1m")
	if got := getenvInt("X_INT", 1); got != 12 {
		t.Errorf("getenvInt = %d", got)
	}
	if got := getenvInt("X_BAD_INT", 1); got != 1 {
		t.Errorf("getenvInt bad = %d, want default", got)
	}
	if got := getenvDuration("X_DUR", 0); got != time.Minute {
		t.Errorf("getenvDuration = %v", got)
	}
}

func TestLoadTelemetryAndShutdown(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4317")
	t.Setenv("OTEL_EXPORTER_OTLP_INSECURE", "false")
	t.Setenv("OTEL_SERVICE_NAME", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "2m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Telemetry.OTLPEndpoint != "collector:4317" || cfg.Telemetry.Insecure {
		t.Errorf("Telemetry = %+v", cfg.Telemetry)
	}
	if cfg.Telemetry.ServiceName != "threatscan" {
		t.Errorf("ServiceName = %q, want threatscan", cfg.Telemetry.ServiceName)
	}
	if cfg.ShutdownTimeout != 2*time.Minute {
		t.Errorf("ShutdownTimeout = %v, want 2m", cfg.ShutdownTimeout)
	}
}
