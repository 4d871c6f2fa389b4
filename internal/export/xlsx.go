package export

import (
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"

	"voterkyc/internal/domain"
)

const resultsSheet = "Results"

// WriteXLSX writes the results as a single-sheet workbook to w.
func WriteXLSX(w io.Writer, tallies []domain.CandidateTally) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), resultsSheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(resultsSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	if err := f.SetCellStyle(resultsSheet, "A1", "E1", bold); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	total := totalVotes(tallies)
	for i := range tallies {
		t := &tallies[i]
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			i + 1,
			t.Name,
			t.Party,
			t.Votes,
			math.Round(share(t.Votes, total)*100) / 100,
		}
		if err := f.SetSheetRow(resultsSheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if err := f.SetColWidth(resultsSheet, "B", "C", 30); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
