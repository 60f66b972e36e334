package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/dto"
)

// ── export business errors ──

var (
	ErrExportBadFormat    = errors.New("unsupported export format")
	ErrExportGenerateFail = errors.New("failed to generate export file")
)

// Export formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// ExportService serializes an assembled comparison to a downloadable byte
// stream. The export carries the formatted display table, not the raw
// numbers: re-parsing a CSV export yields exactly the strings the assembler
// produced. An empty selection exports a header-only file.
type ExportService interface {
	// ExportComparison returns the file content, a date-stamped filename
	// (school_comparison_<YYYYMMDD>.<ext>), and the MIME content type.
	ExportComparison(ctx context.Context, names []string, category string, metricKeys []string, format string) (*bytes.Buffer, string, string, error)
}

type exportService struct {
	compare CompareService
	logger  *zap.Logger
}

// NewExportService creates an ExportService instance.
func NewExportService(compare CompareService, logger *zap.Logger) ExportService {
	return &exportService{compare: compare, logger: logger}
}

func (s *exportService) ExportComparison(ctx context.Context, names []string, category string, metricKeys []string, format string) (*bytes.Buffer, string, string, error) {
	if format != FormatCSV && format != FormatXLSX {
		return nil, "", "", fmt.Errorf("%w: %q", ErrExportBadFormat, format)
	}

	comparison, err := s.compare.Compare(ctx, names, category, metricKeys)
	if err != nil {
		return nil, "", "", err
	}

	var (
		buf         *bytes.Buffer
		contentType string
	)
	switch format {
	case FormatCSV:
		buf, err = writeCSV(comparison.Columns, comparison.Rows)
		contentType = "text/csv; charset=utf-8"
	case FormatXLSX:
		buf, err = writeXLSX(comparison.Columns, comparison.Rows)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	if err != nil {
		s.logger.Error("comparison export failed", zap.String("format", format), zap.Error(err))
		return nil, "", "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("school_comparison_%s.%s", time.Now().Format("20060102"), format)
	return buf, filename, contentType, nil
}

func writeCSV(columns []string, rows []dto.ComparisonRow) (*bytes.Buffer, error) {
	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)

	if err := w.Write(columns); err != nil {
		return nil, err
	}
	for _, row := range rows {
		record := append([]string{row.School}, row.Cells...)
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf, nil
}

const exportSheet = "Comparison"

func writeXLSX(columns []string, rows []dto.ComparisonRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportSheet, cell, col)
		f.SetCellStyle(exportSheet, cell, cell, headerStyle)
		name, _ := excelize.ColumnNumberToName(i + 1)
		width := 18.0
		if i == 0 {
			width = 32.0
		}
		f.SetColWidth(exportSheet, name, name, width)
	}

	for r, row := range rows {
		record := append([]string{row.School}, row.Cells...)
		for c, value := range record {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(exportSheet, cell, value)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf, nil
}
