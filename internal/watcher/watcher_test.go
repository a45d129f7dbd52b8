package watcher

import "testing"

func TestIsEAFFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "session.eaf", want: true},
		{path: "SESSION.EAF", want: true},
		{path: "/data/in/nested.eaf", want: true},
		{path: "session.eaf.bak", want: false},
		{path: "notes.txt", want: false},
		{path: "eaf", want: false},
	}

	for _, tt := range tests {
		if got := isEAFFile(tt.path); got != tt.want {
			t.Errorf("isEAFFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
