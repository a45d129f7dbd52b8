package usecases

import (
	"github.com/gedankenexperimenter/musicburst/internal/domain/summary"
	"github.com/gedankenexperimenter/musicburst/internal/eaf"
	"github.com/gedankenexperimenter/musicburst/internal/profile"
)

// Aggregate computes one summary row from a parsed document. Total time
// spans every tier in the document, not just the ones the profile reports,
// so the row reflects the full annotated length of the recording.
func Aggregate(doc *eaf.Document, prof *profile.Profile) summary.FileSummary {
	s := summary.FileSummary{Name: doc.Name()}

	for _, tier := range doc.Tiers {
		for _, a := range tier.Annotations {
			if a.End > s.TotalTime {
				s.TotalTime = a.End
			}
		}
	}

	for _, spec := range prof.Tiers {
		stats := summary.TierStats{Label: spec.Label}
		if tier, ok := doc.Tier(spec.Tier); ok {
			for _, a := range tier.Annotations {
				if spec.Value != "" && a.Value != spec.Value {
					continue
				}
				stats.Segments++
				stats.Duration += a.End - a.Start
			}
		}
		s.Tiers = append(s.Tiers, stats)
	}
	return s
}
