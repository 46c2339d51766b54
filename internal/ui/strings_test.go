package ui

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"fits", "Frieren", 10, "Frieren"},
		{"ellipsis", "Sousou no Frieren", 10, "Sousou ..."},
		{"tiny limit", "Frieren", 3, "Fri"},
		{"no limit", "  padded  ", 0, "padded"},
		{"wide runes", "葬送のフリーレン", 7, "葬送..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.in, tt.limit); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
			}
		})
	}
}

func TestPadding(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Errorf("padRight = %q", got)
	}
	if got := padLeft("ab", 4); got != "  ab" {
		t.Errorf("padLeft = %q", got)
	}
	if got := padRight("abcdef", 4); got != "abcdef" {
		t.Errorf("padRight should not cut, got %q", got)
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{950, "950"},
		{9_999, "9999"},
		{12_345, "12.3K"},
		{900_000, "900K"},
		{1_000_000, "1M"},
		{2_460_000, "2.5M"},
	}
	for _, tt := range tests {
		if got := formatCount(tt.in); got != tt.want {
			t.Errorf("formatCount(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatScore(t *testing.T) {
	if got := formatScore(8.5, true); got != "8.50" {
		t.Errorf("formatScore = %q", got)
	}
	if got := formatScore(0, false); got != "N/A" {
		t.Errorf("formatScore unscored = %q", got)
	}
}
