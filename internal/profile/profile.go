// Package profile defines which tiers a report aggregates and how their
// columns are labeled.
package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TierSpec selects one tier for aggregation. When Value is set, only
// annotations whose value label matches it are counted.
type TierSpec struct {
	Tier  string `yaml:"tier"`
	Label string `yaml:"label"`
	Value string `yaml:"value,omitempty"`
}

type Profile struct {
	Tiers []TierSpec `yaml:"tiers"`
}

// Default reproduces the standard MusicBurst report: every MusicBurst
// annotation, plus Source annotations marked "1" (singing).
func Default() *Profile {
	return &Profile{
		Tiers: []TierSpec{
			{Tier: "MusicBurst", Label: "music"},
			{Tier: "Source", Label: "singing", Value: "1"},
		},
	}
}

// Load reads a profile from a YAML file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	return &p, nil
}

func (p *Profile) Validate() error {
	if len(p.Tiers) == 0 {
		return fmt.Errorf("at least one tier is required")
	}
	labels := make(map[string]bool, len(p.Tiers))
	for i := range p.Tiers {
		t := &p.Tiers[i]
		if t.Tier == "" {
			return fmt.Errorf("tiers[%d]: tier name is required", i)
		}
		if t.Label == "" {
			t.Label = t.Tier
		}
		if labels[t.Label] {
			return fmt.Errorf("duplicate column label %q", t.Label)
		}
		labels[t.Label] = true
	}
	return nil
}

// Header returns the CSV header row for this profile.
func (p *Profile) Header() []string {
	header := []string{"filename", "total time"}
	for _, t := range p.Tiers {
		header = append(header, t.Label+" segments", t.Label+" time")
	}
	return header
}
