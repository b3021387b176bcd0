package domain

import "time"

// Core domain models shared by the reputation client, the scanner service and
// the HTTP adapter. JSON tags are the wire contract of the /api endpoints.

type IndicatorType string

const (
	TypeHash IndicatorType = "hash"
	TypeIP   IndicatorType = "ip"
)

type Status string

const (
	StatusMalicious  Status = "malicious"
	StatusSuspicious Status = "suspicious"
	StatusClean      Status = "clean"
	StatusUnknown    Status = "unknown"
)

// ParseStatus reports whether s names one of the four verdict statuses.
func ParseStatus(s string) (Status, bool) {
	switch st := Status(s); st {
	case StatusMalicious, StatusSuspicious, StatusClean, StatusUnknown:
		return st, true
	}
	return "", false
}

// VendorDetection is one engine's row in a verdict.
type VendorDetection struct {
	Vendor   string `json:"vendor"`
	Detected bool   `json:"detected"`
	Category string `json:"category,omitempty"` // engine's free-text label
	Result   string `json:"result"`             // engine's category bucket
}

type Verdict struct {
	ID            string            `json:"id"`
	Indicator     string            `json:"indicator"`
	Type          IndicatorType     `json:"type"`
	Status        Status            `json:"status"`
	Detections    int               `json:"detections"`
	TotalVendors  int               `json:"totalVendors"`
	VendorResults []VendorDetection `json:"vendorResults"`
	LastScanned   time.Time         `json:"lastScanned"`
}

// Clone returns a copy that shares no memory with v.
func (v Verdict) Clone() Verdict {
	out := v
	if v.VendorResults != nil {
		out.VendorResults = make([]VendorDetection, len(v.VendorResults))
		copy(out.VendorResults, v.VendorResults)
	}
	return out
}

// DeriveStatus applies the verdict rule: malicious dominates suspicious,
// suspicious dominates any vendor coverage, no coverage is unknown.
func DeriveStatus(malicious, suspicious, totalVendors int) Status {
	switch {
	case malicious > 0:
		return StatusMalicious
	case suspicious > 0:
		return StatusSuspicious
	case totalVendors > 0:
		return StatusClean
	default:
		return StatusUnknown
	}
}

// RateLimitIndicator keys the synthetic failure appended when a batch stops
// on an upstream rate limit.
const RateLimitIndicator = "rate_limit"

type Failure struct {
	Indicator string `json:"indicator"`
	Error     string `json:"error"`
}

// BatchOutcome is the result of one batch run. Results and Failures keep
// submission order.
type BatchOutcome struct {
	Results        []Verdict
	Failures       []Failure
	PartialSuccess bool
	RateLimited    bool
}

// RateLimitMessage returns the sentinel failure's text, if present.
func (o BatchOutcome) RateLimitMessage() (string, bool) {
	for _, f := range o.Failures {
		if f.Indicator == RateLimitIndicator {
			return f.Error, true
		}
	}
	return "", false
}
