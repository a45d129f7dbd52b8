package output

import (
	"fmt"
	"io"

	"github.com/gedankenexperimenter/musicburst/internal/domain/summary"
)

type Formatter struct {
	w io.Writer
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

func (f *Formatter) ReportWritten(path string, rows int) {
	noun := "rows"
	if rows == 1 {
		noun = "row"
	}
	fmt.Fprintf(f.w, "📊 Report saved: %s (%d %s)\n", path, rows, noun)
}

func (f *Formatter) FileSkipped(fe summary.FileError) {
	fmt.Fprintf(f.w, "⚠️  Skipped %s: %v\n", fe.Path, fe.Err)
}

func (f *Formatter) Error(msg string) {
	fmt.Fprintf(f.w, "❌ %s\n", msg)
}

func (f *Formatter) Info(msg string) {
	fmt.Fprintf(f.w, "ℹ️  %s\n", msg)
}

func (f *Formatter) Success(msg string) {
	fmt.Fprintf(f.w, "✅ %s\n", msg)
}

func (f *Formatter) Warning(msg string) {
	fmt.Fprintf(f.w, "⚠️  %s\n", msg)
}

func (f *Formatter) TierListHeader(name string) {
	fmt.Fprintf(f.w, "📁 %s:\n", name)
}

func (f *Formatter) TierListItem(id string, annotations int) {
	fmt.Fprintf(f.w, "  %s (%d annotations)\n", id, annotations)
}

func (f *Formatter) Watching(dir string) {
	fmt.Fprintf(f.w, "👀 Watching %s for new EAF files (Ctrl+C to stop)\n", dir)
}

func (f *Formatter) SetupCheck(name string, ok bool, detail string) {
	if ok {
		fmt.Fprintf(f.w, "  ✅ %s: %s\n", name, detail)
	} else {
		fmt.Fprintf(f.w, "  ❌ %s: %s\n", name, detail)
	}
}
