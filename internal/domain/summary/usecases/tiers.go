package usecases

import (
	"go.uber.org/zap"

	"github.com/gedankenexperimenter/musicburst/internal/eaf"
)

// ListTiers reports the tier inventory of EAF files.
type ListTiers struct {
	Logger *zap.SugaredLogger
}

// TierInfo describes one tier in one file.
type TierInfo struct {
	ID          string
	Annotations int
}

// FileTiers is the inventory of a single file.
type FileTiers struct {
	Name  string
	Tiers []TierInfo
}

// Execute parses each file and collects its tier inventory. Like report
// generation, a bad file is recorded and skipped.
func (l *ListTiers) Execute(paths []string) ([]FileTiers, []error) {
	var inventories []FileTiers
	var failures []error

	for _, path := range expandGlobs(paths) {
		doc, err := eaf.Parse(path)
		if err != nil {
			l.Logger.Errorf("skipping %s: %v", path, err)
			failures = append(failures, err)
			continue
		}

		ft := FileTiers{Name: doc.Name()}
		for _, tier := range doc.Tiers {
			ft.Tiers = append(ft.Tiers, TierInfo{ID: tier.ID, Annotations: len(tier.Annotations)})
		}
		inventories = append(inventories, ft)
	}
	return inventories, failures
}
