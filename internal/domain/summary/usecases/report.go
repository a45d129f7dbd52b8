package usecases

import (
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/gedankenexperimenter/musicburst/internal/domain/summary"
	"github.com/gedankenexperimenter/musicburst/internal/eaf"
	"github.com/gedankenexperimenter/musicburst/internal/profile"
)

// GenerateReport parses a batch of EAF files and aggregates each into a
// summary row. Files are handled sequentially in argument order; a file
// that fails to parse is recorded and skipped, never aborting the batch.
type GenerateReport struct {
	Logger *zap.SugaredLogger
}

// ReportResult holds the rows and failures of one batch.
type ReportResult struct {
	Summaries []summary.FileSummary
	Failed    []summary.FileError
}

// Execute processes the given paths. Arguments containing glob
// metacharacters are expanded; the expansion of each argument is sorted so
// output order stays deterministic.
func (g *GenerateReport) Execute(paths []string, prof *profile.Profile) *ReportResult {
	result := &ReportResult{}

	for _, path := range expandGlobs(paths) {
		g.Logger.Infof("processing %s", path)

		doc, err := eaf.Parse(path)
		if err != nil {
			g.Logger.Errorf("skipping %s: %v", path, err)
			result.Failed = append(result.Failed, summary.FileError{Path: path, Err: err})
			continue
		}
		g.Logger.Debugf("%s tiers: %s", path, strings.Join(doc.TierIDs(), ", "))

		s := Aggregate(doc, prof)
		for i, spec := range prof.Tiers {
			if _, ok := doc.Tier(spec.Tier); !ok {
				g.Logger.Warnf("missing %s tier in file %s", spec.Tier, path)
			}
			g.Logger.Debugf("%s %s: %d segments, %d ms",
				s.Name, spec.Tier, s.Tiers[i].Segments, s.Tiers[i].Duration)
		}
		result.Summaries = append(result.Summaries, s)
	}
	return result
}

// expandGlobs passes plain paths through untouched so that a missing file
// is reported as a parse failure rather than silently dropped.
func expandGlobs(args []string) []string {
	var paths []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[") {
			paths = append(paths, arg)
			continue
		}
		matches, err := filepath.Glob(arg)
		if err != nil || len(matches) == 0 {
			paths = append(paths, arg)
			continue
		}
		sort.Strings(matches)
		paths = append(paths, matches...)
	}
	return paths
}
