package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"voterkyc/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the results header row.
var columns = []string{
	"Rank",
	"Candidate",
	"Party",
	"Votes",
	"Share (%)",
}

// CSVWriter wraps csv.Writer for exporting election results.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *CSVWriter) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteTallies writes one row per candidate in the given order.
func (w *CSVWriter) WriteTallies(tallies []domain.CandidateTally) error {
	total := totalVotes(tallies)
	for i := range tallies {
		if err := w.csv.Write(tallyToRow(i, &tallies[i], total)); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *CSVWriter) Error() error {
	return w.csv.Error()
}

// WriteCSV writes BOM, header and rows to w.
func WriteCSV(w io.Writer, tallies []domain.CandidateTally) error {
	if _, err := w.Write(BOM); err != nil {
		return err
	}
	cw := NewCSVWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return err
	}
	if err := cw.WriteTallies(tallies); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func tallyToRow(i int, t *domain.CandidateTally, total int) []string {
	return []string{
		strconv.Itoa(i + 1),
		t.Name,
		t.Party,
		strconv.Itoa(t.Votes),
		formatShare(t.Votes, total),
	}
}

func totalVotes(tallies []domain.CandidateTally) int {
	total := 0
	for i := range tallies {
		total += tallies[i].Votes
	}
	return total
}

func share(votes, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(votes) * 100 / float64(total)
}

func formatShare(votes, total int) string {
	return strconv.FormatFloat(share(votes, total), 'f', 2, 64)
}
