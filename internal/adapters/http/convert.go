package httpadapter

import (
	api "threatscan/internal/api"
	"threatscan/internal/domain"
)

// Domain to API shape. Slices are never nil so they encode as [].

func toScanResult(v domain.Verdict) api.ScanResult {
	vendors := make([]api.VendorResult, 0, len(v.VendorResults))
	for _, d := range v.VendorResults {
		vr := api.VendorResult{Vendor: d.Vendor, Detected: d.Detected, Result: d.Result}
		if d.Category != "" {
			category := d.Category
			vr.Category = &category
		}
		vendors = append(vendors, vr)
	}
	return api.ScanResult{
		Id:            v.ID,
		Indicator:     v.Indicator,
		Type:          api.IndicatorType(v.Type),
		Status:        api.VerdictStatus(v.Status),
		Detections:    v.Detections,
		TotalVendors:  v.TotalVendors,
		VendorResults: vendors,
		LastScanned:   v.LastScanned,
	}
}

func toScanResults(vs []domain.Verdict) []api.ScanResult {
	out := make([]api.ScanResult, 0, len(vs))
	for _, v := range vs {
		out = append(out, toScanResult(v))
	}
	return out
}

func toFailures(fs []domain.Failure) []api.ScanFailure {
	out := make([]api.ScanFailure, 0, len(fs))
	for _, f := range fs {
		out = append(out, api.ScanFailure{Indicator: f.Indicator, Error: f.Error})
	}
	return out
}
