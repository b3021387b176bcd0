package httpadapter

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	api "threatscan/internal/api"
	"threatscan/internal/domain"
)

var csvHeader = []string{"Indicator", "Type", "Status", "Detections", "Total Vendors", "Last Scanned"}

// ExportScans serves stored verdicts as a downloadable CSV or JSON file.
// Accepts the same ?status= filter as GET /api/scans.
func (s *Server) ExportScans(ctx context.Context, req api.ExportScansRequestObject) (api.ExportScansResponseObject, error) {
	format := api.Csv
	if req.Params.Format != nil {
		format = *req.Params.Format
	}
	if format != api.Csv && format != api.Json {
		return api.ExportScans400JSONResponse(invalidRequest(api.ErrorDetail{
			Path:    []string{"format"},
			Message: "format must be csv or json",
		})), nil
	}
	filter, detail, ok := statusFilter(req.Params.Status)
	if !ok {
		return api.ExportScans400JSONResponse(invalidRequest(detail)), nil
	}
	results, err := s.verdicts.List(ctx, filter)
	if err != nil {
		s.log.Error("export scans failed", "error", err)
		return api.ExportScans500JSONResponse{Error: "Failed to retrieve scans"}, nil
	}

	name := fmt.Sprintf("threatscan-results-%d.%s", s.now().UnixMilli(), format)
	headers := api.ExportScans200ResponseHeaders{ContentDisposition: fmt.Sprintf("attachment; filename=%q", name)}
	if format == api.Json {
		return api.ExportScans200JSONResponse{Body: toScanResults(results), Headers: headers}, nil
	}

	var buf bytes.Buffer
	if err := writeCSV(&buf, results); err != nil {
		return nil, fmt.Errorf("render csv export: %w", err)
	}
	return api.ExportScans200TextcsvResponse{Body: &buf, Headers: headers, ContentLength: int64(buf.Len())}, nil
}

func writeCSV(w io.Writer, results []domain.Verdict) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, v := range results {
		row := []string{
			v.Indicator,
			string(v.Type),
			string(v.Status),
			strconv.Itoa(v.Detections),
			strconv.Itoa(v.TotalVendors),
			v.LastScanned.UTC().Format(time.RFC3339Nano),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
