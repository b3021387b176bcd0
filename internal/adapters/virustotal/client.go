// Package virustotal is the reputation client for the VirusTotal v3 API.
package virustotal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"threatscan/internal/domain"
)

const (
	DefaultBaseURL = "https://www.virustotal.com/api/v3"
	apiKeyHeader   = "x-apikey"
	maxBodyBytes   = 16 << 20
)

type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	tracer     trace.Tracer
	now        func() time.Time
}

func New(cfg Config) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	tp := cfg.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &Client{
		baseURL:    base,
		apiKey:     cfg.APIKey,
		httpClient: hc,
		tracer:     tp.Tracer("threatscan/virustotal"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Lookup classifies indicator and fetches the matching report. Text that is
// neither a hash nor an IPv4 address fails with *domain.InvalidIndicatorError
// before any request is made.
func (c *Client) Lookup(ctx context.Context, indicator string) (domain.Verdict, error) {
	indicator = strings.TrimSpace(indicator)
	switch domain.Classify(indicator) {
	case domain.ClassHash:
		return c.fetch(ctx, domain.TypeHash, "files", indicator)
	case domain.ClassIPv4:
		return c.fetch(ctx, domain.TypeIP, "ip_addresses", indicator)
	default:
		return domain.Verdict{}, &domain.InvalidIndicatorError{Indicator: indicator}
	}
}

func (c *Client) fetch(ctx context.Context, typ domain.IndicatorType, collection, indicator string) (v domain.Verdict, err error) {
	ctx, span := c.tracer.Start(ctx, "virustotal.lookup", trace.WithAttributes(
		attribute.String("indicator.type", string(typ)),
		attribute.String("indicator.value", indicator),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(attribute.String("verdict.status", string(v.Status)))
		}
		span.End()
	}()

	endpoint := c.baseURL + "/" + collection + "/" + url.PathEscape(indicator)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Drop the URL: it embeds the indicator, and callers match on the text.
		var ue *url.Error
		if errors.As(err, &ue) {
			err = ue.Err
		}
		return domain.Verdict{}, fmt.Errorf("virustotal request failed: %w", err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode == http.StatusNotFound {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return unknownVerdict(indicator, typ, c.now()), nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return domain.Verdict{}, &domain.LookupError{StatusCode: resp.StatusCode, Reason: reasonPhrase(resp)}
	}

	var rep report
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&rep); err != nil {
		return domain.Verdict{}, fmt.Errorf("decode %s report: %w", typ, err)
	}
	return normalize(indicator, typ, rep, c.now()), nil
}

// reasonPhrase strips the numeric code from resp.Status ("429 Too Many Requests").
func reasonPhrase(resp *http.Response) string {
	if _, reason, ok := strings.Cut(resp.Status, " "); ok && reason != "" {
		return reason
	}
	return http.StatusText(resp.StatusCode)
}
