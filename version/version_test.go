package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, GitCommit, BuildDate
	t.Cleanup(func() { Version, GitCommit, BuildDate = oldVersion, oldCommit, oldDate })

	tests := []struct {
		version, commit, date string
		want                  string
	}{
		{"dev", "abc", "today", "dev"},
		{"1.2.0", "0123456789abcdef", "2026-01-02", "1.2.0 (commit 0123456, built 2026-01-02)"},
		{"1.2.1", "abc", "unknown", "1.2.1 (commit abc, built unknown)"},
	}

	for _, tt := range tests {
		Version, GitCommit, BuildDate = tt.version, tt.commit, tt.date
		if got := GetFullVersion(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
		if GetVersion() != tt.version {
			t.Errorf("expected version %q, got %q", tt.version, GetVersion())
		}
	}
}
