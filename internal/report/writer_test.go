package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gedankenexperimenter/musicburst/internal/domain/summary"
	"github.com/gedankenexperimenter/musicburst/internal/profile"
)

func sampleSummaries() []summary.FileSummary {
	return []summary.FileSummary{
		{
			Name:      "session-01",
			TotalTime: 1200,
			Tiers: []summary.TierStats{
				{Label: "music", Segments: 1, Duration: 500},
				{Label: "singing", Segments: 1, Duration: 700},
			},
		},
		{
			Name: "session-02",
			Tiers: []summary.TierStats{
				{Label: "music"},
				{Label: "singing"},
			},
		},
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, ',', profile.Default().Header(), sampleSummaries()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	want := strings.Join([]string{
		"filename,total time,music segments,music time,singing segments,singing time",
		"session-01,1200,1,500,1,700",
		"session-02,,,,,", // zero cells stay blank
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("Write() output:\n%q\nwant:\n%q", got, want)
	}
}

func TestWriteTabDelimiter(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, '\t', []string{"filename", "total time"}, nil); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if got := buf.String(); got != "filename\ttotal time\n" {
		t.Errorf("Write() output = %q", got)
	}
}

func TestWriteDeterministic(t *testing.T) {
	var first, second bytes.Buffer
	header := profile.Default().Header()
	if err := Write(&first, ',', header, sampleSummaries()); err != nil {
		t.Fatal(err)
	}
	if err := Write(&second, ',', header, sampleSummaries()); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("two runs over the same summaries produced different output")
	}
}

func TestDelimiterRune(t *testing.T) {
	tests := []struct {
		name    string
		want    rune
		wantErr bool
	}{
		{name: DelimiterComma, want: ','},
		{name: DelimiterTab, want: '\t'},
		{name: DelimiterASCII, want: '\x1f'},
		{name: "semicolon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DelimiterRune(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DelimiterRune() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("DelimiterRune() = %q, want %q", got, tt.want)
			}
		})
	}
}
