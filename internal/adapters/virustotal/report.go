package virustotal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"threatscan/internal/domain"
)

// report is the subset of a v3 file or IP address object the normalizer
// reads. Both endpoints share it.
type report struct {
	Data struct {
		Attributes struct {
			LastAnalysisStats   analysisStats `json:"last_analysis_stats"`
			LastAnalysisResults engineResults `json:"last_analysis_results"`
			LastAnalysisDate    int64         `json:"last_analysis_date"`
		} `json:"attributes"`
	} `json:"data"`
}

type analysisStats struct {
	Malicious  int `json:"malicious"`
	Suspicious int `json:"suspicious"`
	Undetected int `json:"undetected"`
	Harmless   int `json:"harmless"`
}

type engineResult struct {
	Category   string  `json:"category"`
	EngineName string  `json:"engine_name"`
	Result     *string `json:"result"`
}

type engineEntry struct {
	Key string
	engineResult
}

// engineResults keeps last_analysis_results in document order. A repeated
// key replaces the earlier value in place.
type engineResults []engineEntry

func (r *engineResults) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*r = nil
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("last_analysis_results: expected object, got %v", tok)
	}
	out := engineResults{}
	index := map[string]int{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		var res engineResult
		if err := dec.Decode(&res); err != nil {
			return fmt.Errorf("last_analysis_results[%s]: %w", key, err)
		}
		if i, dup := index[key]; dup {
			out[i].engineResult = res
			continue
		}
		index[key] = len(out)
		out = append(out, engineEntry{Key: key, engineResult: res})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*r = out
	return nil
}

// normalize maps a report onto a verdict. The vendor count is the size of the
// per-engine map, while detections come from the stats block; upstream can
// make the two disagree and neither is corrected.
func normalize(indicator string, typ domain.IndicatorType, rep report, now time.Time) domain.Verdict {
	attrs := rep.Data.Attributes
	stats := attrs.LastAnalysisStats
	total := len(attrs.LastAnalysisResults)

	vendors := make([]domain.VendorDetection, 0, total)
	for _, e := range attrs.LastAnalysisResults {
		name := e.EngineName
		if name == "" {
			name = e.Key
		}
		vd := domain.VendorDetection{
			Vendor:   name,
			Detected: e.Category == "malicious" || e.Category == "suspicious",
			Result:   e.Category,
		}
		if e.Result != nil {
			vd.Category = *e.Result
		}
		vendors = append(vendors, vd)
	}

	scanned := now
	if attrs.LastAnalysisDate > 0 {
		scanned = time.Unix(attrs.LastAnalysisDate, 0).UTC()
	}
	return domain.Verdict{
		Indicator:     indicator,
		Type:          typ,
		Status:        domain.DeriveStatus(stats.Malicious, stats.Suspicious, total),
		Detections:    stats.Malicious + stats.Suspicious,
		TotalVendors:  total,
		VendorResults: vendors,
		LastScanned:   scanned,
	}
}

// unknownVerdict is the answer for an indicator the service has no record of.
func unknownVerdict(indicator string, typ domain.IndicatorType, now time.Time) domain.Verdict {
	return domain.Verdict{
		Indicator:     indicator,
		Type:          typ,
		Status:        domain.StatusUnknown,
		VendorResults: []domain.VendorDetection{},
		LastScanned:   now,
	}
}
