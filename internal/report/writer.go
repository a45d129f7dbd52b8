// Package report writes file summaries as CSV.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/gedankenexperimenter/musicburst/internal/domain/summary"
)

// Delimiter names accepted on the command line and in config.
const (
	DelimiterComma = "comma"
	DelimiterTab   = "tab"
	DelimiterASCII = "ascii" // US unit separator, 0x1f
)

// DelimiterRune maps a delimiter name to its field-separator rune.
func DelimiterRune(name string) (rune, error) {
	switch name {
	case DelimiterComma:
		return ',', nil
	case DelimiterTab:
		return '\t', nil
	case DelimiterASCII:
		return '\x1f', nil
	default:
		return 0, fmt.Errorf("unknown delimiter %q (want comma, tab or ascii)", name)
	}
}

// Writer emits summary rows. Zero-valued cells are written blank, keeping
// spreadsheet imports uncluttered.
type Writer struct {
	csv *csv.Writer
}

func NewWriter(w io.Writer, delimiter rune) *Writer {
	cw := csv.NewWriter(w)
	cw.Comma = delimiter
	return &Writer{csv: cw}
}

func (w *Writer) WriteHeader(header []string) error {
	return w.csv.Write(header)
}

func (w *Writer) WriteSummary(s summary.FileSummary) error {
	row := []string{s.Name, blankZero(s.TotalTime)}
	for _, tier := range s.Tiers {
		row = append(row, blankZero(tier.Segments), blankZero(tier.Duration))
	}
	return w.csv.Write(row)
}

// Write emits the header and all rows in order, then flushes. This is the
// single output step: summaries are collected first, written once.
func Write(w io.Writer, delimiter rune, header []string, summaries []summary.FileSummary) error {
	rw := NewWriter(w, delimiter)
	if err := rw.WriteHeader(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, s := range summaries {
		if err := rw.WriteSummary(s); err != nil {
			return fmt.Errorf("writing row for %s: %w", s.Name, err)
		}
	}
	return rw.Flush()
}

func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

func blankZero(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
