package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	for _, name := range names {
		if GetTheme(name).Name != name {
			t.Fatalf("GetTheme(%q) returned %q", name, GetTheme(name).Name)
		}
	}
}

func TestNextTheme(t *testing.T) {
	tests := map[string]string{
		"Nightfox": "Kanagawa",
		"Kanagawa": "Sakura",
		"Sakura":   "Nightfox",
		"Unknown":  "Nightfox",
	}
	for in, want := range tests {
		if got := NextTheme(in); got != want {
			t.Errorf("NextTheme(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGetTheme_UnknownFallsBack(t *testing.T) {
	if got := GetTheme("Dracula").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(unknown) = %q, want Nightfox", got)
	}
}

func TestThemes_CoverCommonSources(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, src := range []string{"Manga", "Original", "Light novel", "Unknown"} {
			if th.SourceColors[src] == "" {
				t.Errorf("%s theme has no color for source %q", name, src)
			}
		}
	}
}
