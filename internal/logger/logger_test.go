package logger

import "testing"

func TestFromVerbosity(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{count: 0, want: "warn"},
		{count: 1, want: "info"},
		{count: 2, want: "debug"},
		{count: 5, want: "debug"},
	}

	for _, tt := range tests {
		if got := FromVerbosity(tt.count); got != tt.want {
			t.Errorf("FromVerbosity(%d) = %q, want %q", tt.count, got, tt.want)
		}
	}
}

func TestNewUnknownLevel(t *testing.T) {
	// Must not panic; unknown names fall back to warn.
	log := New("chatty")
	if log == nil {
		t.Fatal("New() returned nil")
	}
}
