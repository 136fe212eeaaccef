// Package report serializes group summaries into a spreadsheet artifact.
// It holds no analysis logic.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/starford/retrolens/internal/apperr"
	"github.com/starford/retrolens/internal/models"
)

// SheetName is the worksheet the xlsx writer fills.
const SheetName = "Summary"

var header = []string{
	"Team", "Topic", "Notes", "% Positive", "% Negative", "Score",
	"Top Positive Quotes", "Top Negative Quotes",
}

// Write serializes summaries to path. The format follows the file
// extension: .xlsx or .csv.
func Write(path string, summaries []models.GroupSummary) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return writeXLSX(path, summaries)
	case ".csv":
		return writeCSV(path, summaries)
	default:
		return fmt.Errorf("report: %w: %s", apperr.ErrUnknownFormat, path)
	}
}

func writeXLSX(path string, summaries []models.GroupSummary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("report: rename sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &[]any{
		header[0], header[1], header[2], header[3], header[4], header[5], header[6], header[7],
	}); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}

	for i, s := range summaries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("report: cell name: %w", err)
		}
		row := []any{
			s.Team, s.Topic, s.Count,
			formatPercent(s.PercentPositive), formatPercent(s.PercentNegative),
			s.Score,
			joinQuotes(s.TopPositive), joinQuotes(s.TopNegative),
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("report: write row %d: %w", i+1, err)
		}
	}

	// Keep the header in view when scrolling.
	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return fmt.Errorf("report: freeze header: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("report: save workbook: %w", err)
	}
	return nil
}

func writeCSV(path string, summaries []models.GroupSummary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create output: %w", err)
	}

	w := csv.NewWriter(f)
	rows := [][]string{header}
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Team, s.Topic, strconv.Itoa(s.Count),
			formatPercent(s.PercentPositive), formatPercent(s.PercentNegative),
			strconv.Itoa(s.Score),
			joinQuotes(s.TopPositive), joinQuotes(s.TopNegative),
		})
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("report: write rows: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("report: close output: %w", err)
	}
	return nil
}

// formatPercent renders a percentage with one decimal, the only place
// percentages are rounded.
func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func joinQuotes(quotes []models.Quote) string {
	texts := make([]string, 0, len(quotes))
	for _, q := range quotes {
		texts = append(texts, q.Text)
	}
	return strings.Join(texts, " | ")
}
