package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gedankenexperimenter/musicburst/internal/domain/summary"
	"github.com/gedankenexperimenter/musicburst/internal/output"
	"github.com/gedankenexperimenter/musicburst/internal/report"
	"github.com/gedankenexperimenter/musicburst/internal/watcher"
)

func NewWatchCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <directory>",
		Short: "Watch a directory and aggregate new EAF files as they appear",
		Long: "Monitor a directory for newly created .eaf files. Each file is\n" +
			"aggregated when it appears and the report is rewritten with all rows\n" +
			"collected so far. Stop with Ctrl+C.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)

			prof, err := loadProfile(deps.ProfilePath)
			if err != nil {
				return err
			}
			delimiter, err := report.DelimiterRune(deps.Delimiter)
			if err != nil {
				return err
			}

			// Rows accumulate here across events; the CSV is rewritten as a
			// whole after each file so it is always complete and ordered by
			// arrival.
			var summaries []summary.FileSummary

			handler := func(ctx context.Context, path string) error {
				result := deps.App.GenerateReport.Execute([]string{path}, prof)
				if len(result.Failed) > 0 {
					return result.Failed[0].Err
				}
				summaries = append(summaries, result.Summaries...)

				file, err := os.Create(deps.Output)
				if err != nil {
					return fmt.Errorf("creating %s: %w", deps.Output, err)
				}
				if err := report.Write(file, delimiter, prof.Header(), summaries); err != nil {
					file.Close()
					return fmt.Errorf("writing %s: %w", deps.Output, err)
				}
				if err := file.Close(); err != nil {
					return err
				}
				formatter.ReportWritten(deps.Output, len(summaries))
				return nil
			}

			w, err := watcher.New(args[0], handler, deps.App.Logger)
			if err != nil {
				return err
			}
			defer w.Stop()

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			formatter.Watching(args[0])
			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
