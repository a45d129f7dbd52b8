package profile

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultHeader(t *testing.T) {
	want := []string{
		"filename", "total time",
		"music segments", "music time",
		"singing segments", "singing time",
	}
	if got := Default().Header(); !reflect.DeepEqual(got, want) {
		t.Errorf("Header() = %v, want %v", got, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		wantErr bool
	}{
		{
			name: "valid",
			profile: Profile{Tiers: []TierSpec{
				{Tier: "MusicBurst", Label: "music"},
				{Tier: "Source", Label: "singing", Value: "1"},
			}},
			wantErr: false,
		},
		{
			name:    "no tiers",
			profile: Profile{},
			wantErr: true,
		},
		{
			name: "missing tier name",
			profile: Profile{Tiers: []TierSpec{
				{Label: "music"},
			}},
			wantErr: true,
		},
		{
			name: "duplicate labels",
			profile: Profile{Tiers: []TierSpec{
				{Tier: "A", Label: "music"},
				{Tier: "B", Label: "music"},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaultsLabel(t *testing.T) {
	p := Profile{Tiers: []TierSpec{{Tier: "Speech"}}}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if p.Tiers[0].Label != "Speech" {
		t.Errorf("Label = %q, want %q", p.Tiers[0].Label, "Speech")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	content := `
tiers:
  - tier: MusicBurst
    label: music
  - tier: Source
    label: singing
    value: "1"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(p.Tiers) != 2 {
		t.Fatalf("len(Tiers) = %d, want 2", len(p.Tiers))
	}
	if p.Tiers[1].Value != "1" {
		t.Errorf("Tiers[1].Value = %q, want %q", p.Tiers[1].Value, "1")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() should fail for a missing file")
	}
}
