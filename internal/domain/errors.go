package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrNotConfigured means no reputation service credential is set.
	ErrNotConfigured = errors.New("VirusTotal API key not configured")
	// ErrStorage wraps any failure to persist a verdict.
	ErrStorage = errors.New("storage failure")
)

// InvalidIndicatorError is returned for text that is neither a hash nor an
// IPv4 address. No network call is made for such input.
type InvalidIndicatorError struct {
	Indicator string
}

func (e *InvalidIndicatorError) Error() string {
	return fmt.Sprintf("Invalid indicator format: %s", e.Indicator)
}

// LookupError is a non-404 error status from the reputation service.
type LookupError struct {
	StatusCode int
	Reason     string
}

func (e *LookupError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("VirusTotal API error: %d %s", e.StatusCode, reason)
}
