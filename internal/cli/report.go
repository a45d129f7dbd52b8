package cli

import (
	"fmt"
	"os"

	"github.com/gedankenexperimenter/musicburst/internal/output"
	"github.com/gedankenexperimenter/musicburst/internal/report"
)

// runReport is the root command's action: aggregate every input file, then
// write the collected summaries in one step. A file that fails to parse is
// reported and skipped; its failure surfaces in the exit status.
func runReport(deps *Dependencies, args []string) error {
	formatter := output.NewFormatter(os.Stdout)
	errFormatter := output.NewFormatter(os.Stderr)

	prof, err := loadProfile(deps.ProfilePath)
	if err != nil {
		return err
	}
	delimiter, err := report.DelimiterRune(deps.Delimiter)
	if err != nil {
		return err
	}

	result := deps.App.GenerateReport.Execute(args, prof)

	file, err := os.Create(deps.Output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", deps.Output, err)
	}
	if err := report.Write(file, delimiter, prof.Header(), result.Summaries); err != nil {
		file.Close()
		return fmt.Errorf("writing %s: %w", deps.Output, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", deps.Output, err)
	}

	formatter.ReportWritten(deps.Output, len(result.Summaries))

	for _, fe := range result.Failed {
		errFormatter.FileSkipped(fe)
	}
	if n := len(result.Failed); n > 0 {
		return fmt.Errorf("%d of %d files could not be processed", n, n+len(result.Summaries))
	}
	return nil
}
