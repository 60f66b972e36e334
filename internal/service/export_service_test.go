package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"
)

func setupTestExportService() ExportService {
	return NewExportService(comparisonFixture(), zap.NewNop())
}

func TestExportService_ExportComparison_CSV(t *testing.T) {
	svc := setupTestExportService()

	buf, filename, contentType, err := svc.ExportComparison(context.Background(),
		[]string{"Acme University", "Beta College"},
		"Cost & Financial",
		[]string{"in_state_tuition"},
		FormatCSV)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantName := fmt.Sprintf("school_comparison_%s.csv", time.Now().Format("20060102"))
	if filename != wantName {
		t.Errorf("filename = %q, want %q", filename, wantName)
	}
	if contentType != "text/csv; charset=utf-8" {
		t.Errorf("unexpected content type: %q", contentType)
	}

	// Re-parsing the CSV yields the formatted table verbatim.
	records, err := csv.NewReader(buf).ReadAll()
	if err != nil {
		t.Fatalf("export is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d records", len(records))
	}
	if records[0][0] != "School" || records[0][1] != "In-State Tuition" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][0] != "Acme University" || records[1][1] != "$10,000" {
		t.Errorf("unexpected first row: %v", records[1])
	}
	if records[2][1] != "$20,000" {
		t.Errorf("unexpected second row: %v", records[2])
	}
}

func TestExportService_ExportComparison_EmptySelection(t *testing.T) {
	svc := setupTestExportService()

	buf, _, _, err := svc.ExportComparison(context.Background(),
		nil, "Cost & Financial", []string{"in_state_tuition"}, FormatCSV)
	if err != nil {
		t.Fatalf("an empty selection must still export, got %v", err)
	}

	records, err := csv.NewReader(buf).ReadAll()
	if err != nil {
		t.Fatalf("export is not valid CSV: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected a header-only file, got %d records", len(records))
	}
}

func TestExportService_ExportComparison_XLSX(t *testing.T) {
	svc := setupTestExportService()

	buf, filename, contentType, err := svc.ExportComparison(context.Background(),
		[]string{"Acme University"},
		"Cost & Financial",
		[]string{"in_state_tuition", "median_debt"},
		FormatXLSX)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantName := fmt.Sprintf("school_comparison_%s.xlsx", time.Now().Format("20060102"))
	if filename != wantName {
		t.Errorf("filename = %q, want %q", filename, wantName)
	}
	if contentType != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("unexpected content type: %q", contentType)
	}
	// XLSX is a zip container.
	if !bytes.HasPrefix(buf.Bytes(), []byte("PK")) {
		t.Error("expected zip magic at the start of the xlsx payload")
	}
}

func TestExportService_ExportComparison_BadFormat(t *testing.T) {
	svc := setupTestExportService()

	_, _, _, err := svc.ExportComparison(context.Background(),
		[]string{"Acme University"}, "Cost & Financial", []string{"in_state_tuition"}, "pdf")
	if !errors.Is(err, ErrExportBadFormat) {
		t.Errorf("expected ErrExportBadFormat, got %v", err)
	}
}

func TestExportService_ExportComparison_AssemblerErrorPropagates(t *testing.T) {
	svc := setupTestExportService()

	_, _, _, err := svc.ExportComparison(context.Background(),
		[]string{"Acme University"}, "Nonsense", []string{"in_state_tuition"}, FormatCSV)
	if !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("expected assembler error to propagate, got %v", err)
	}
}
