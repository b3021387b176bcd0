package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Env            string `yaml:"env"`
	ListenAddr     string `yaml:"listen_addr"`
	MaxConnections int    `yaml:"max_connections"`
	// ShutdownTimeout bounds how long in-flight batches may finish after a
	// termination signal.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	LogLevel        string        `yaml:"log_level"`
	LogFormat       string        `yaml:"log_format"`
	VirusTotal      VirusTotal    `yaml:"virustotal"`
	Scan            Scan          `yaml:"scan"`
	Telemetry       Telemetry     `yaml:"telemetry"`
}

type Telemetry struct {
	// OTLPEndpoint enables span export when set.
	OTLPEndpoint string `yaml:"otlp_endpoint"`
	Insecure     bool   `yaml:"insecure"`
	ServiceName  string `yaml:"service_name"`
}

type VirusTotal struct {
	APIKey  string        `yaml:"api_key"`
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type Scan struct {
	// Pacing is "fixed" (sleep Delay between lookups) or "token_bucket".
	Pacing        string        `yaml:"pacing"`
	Delay         time.Duration `yaml:"delay"`
	RatePerMinute float64       `yaml:"rate_per_minute"`
	MaxBatchSize  int           `yaml:"max_batch_size"`
}

func defaults() Config {
	return Config{
		Env:             "development",
		ListenAddr:      ":8080",
		ShutdownTimeout: 30 * time.Second,
		LogLevel:        "info",
		LogFormat:       "text",
		VirusTotal: VirusTotal{
			BaseURL: "https://www.virustotal.com/api/v3",
			Timeout: 30 * time.Second,
		},
		Scan: Scan{
			Pacing:        "fixed",
			Delay:         15 * time.Second,
			RatePerMinute: 4,
			MaxBatchSize:  100,
		},
		Telemetry: Telemetry{
			Insecure:    true,
			ServiceName: "threatscan",
		},
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads .env (if present), then CONFIG_FILE (if set), then the
// environment; later sources win. A missing API key is not an error here:
// the server starts and scan requests report it.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	cfg := defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}
	cfg.Env = getenv("APP_ENV", cfg.Env)
	cfg.ListenAddr = getenv("LISTEN_ADDR", cfg.ListenAddr)
	cfg.MaxConnections = getenvInt("MAX_CONNECTIONS", cfg.MaxConnections)
	cfg.ShutdownTimeout = getenvDuration("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	cfg.LogLevel = getenv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getenv("LOG_FORMAT", cfg.LogFormat)
	cfg.VirusTotal.APIKey = getenv("VIRUSTOTAL_API_KEY", cfg.VirusTotal.APIKey)
	cfg.VirusTotal.BaseURL = getenv("VIRUSTOTAL_BASE_URL", cfg.VirusTotal.BaseURL)
	cfg.VirusTotal.Timeout = getenvDuration("VIRUSTOTAL_TIMEOUT", cfg.VirusTotal.Timeout)
	cfg.Scan.Pacing = strings.ToLower(getenv("SCAN_PACING", cfg.Scan.Pacing))
	cfg.Scan.Delay = getenvDuration("SCAN_DELAY", cfg.Scan.Delay)
	cfg.Scan.RatePerMinute = getenvFloat("SCAN_RATE_PER_MINUTE", cfg.Scan.RatePerMinute)
	cfg.Scan.MaxBatchSize = getenvInt("MAX_BATCH_SIZE", cfg.Scan.MaxBatchSize)
	cfg.Telemetry.OTLPEndpoint = getenv("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Telemetry.OTLPEndpoint)
	cfg.Telemetry.Insecure = getenvBool("OTEL_EXPORTER_OTLP_INSECURE", cfg.Telemetry.Insecure)
	cfg.Telemetry.ServiceName = getenv("OTEL_SERVICE_NAME", cfg.Telemetry.ServiceName)
	return cfg, cfg.validate()
}

func loadFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c Config) validate() error {
	switch c.Scan.Pacing {
	case "fixed", "token_bucket":
	default:
		return fmt.Errorf("SCAN_PACING must be fixed or token_bucket, got %q", c.Scan.Pacing)
	}
	if c.Scan.Delay < 0 {
		return fmt.Errorf("SCAN_DELAY must not be negative")
	}
	if c.Scan.Pacing == "token_bucket" && c.Scan.RatePerMinute <= 0 {
		return fmt.Errorf("SCAN_RATE_PER_MINUTE must be positive")
	}
	if c.ShutdownTimeout < 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must not be negative")
	}
	if c.Scan.MaxBatchSize < 1 {
		return fmt.Errorf("MAX_BATCH_SIZE must be at least 1")
	}
	return nil
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var out int
		_, err := fmt.Sscanf(v, "%d", &out)
		if err == nil {
			return out
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		var out float64
		_, err := fmt.Sscanf(v, "%g", &out)
		if err == nil {
			return out
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
