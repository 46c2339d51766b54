package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/shiki/internal/jikan"
)

// unsetEnv clears key for the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("Unsetenv(%s): %v", key, err)
	}
}

func clearShikiEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SHIKI_API_BASE_URL", "SHIKI_API_YEAR", "SHIKI_API_SEASON",
		"SHIKI_API_PAGE_DELAY", "SHIKI_API_TIMEOUT", "SHIKI_STORAGE_FAVORITES_DB",
		"SHIKI_LOGGING_FILE", "SHIKI_LOGGING_LEVEL", "SHIKI_TRANSLATE_TARGET",
	} {
		unsetEnv(t, key)
	}
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearShikiEnv(t)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.File != "" {
		t.Fatalf("File = %q, want empty for missing config", cfg.File)
	}
	if cfg.API.BaseURL != jikan.DefaultBaseURL || cfg.API.Year != defaultYear || cfg.API.Season != defaultSeason {
		t.Fatalf("API = %#v, want defaults", cfg.API)
	}
	if cfg.API.PageDelay != 300*time.Millisecond {
		t.Fatalf("PageDelay = %v, want 300ms", cfg.API.PageDelay)
	}
	want := filepath.Join(home, ".local/share/shiki/favorites.db")
	if cfg.Storage.FavoritesDB != want || cfg.FavoritesPath() != want {
		t.Fatalf("FavoritesDB = %q, want %q", cfg.Storage.FavoritesDB, want)
	}
	if !strings.HasPrefix(cfg.Logging.File, home) {
		t.Fatalf("Logging.File = %q, want it under HOME", cfg.Logging.File)
	}
	if cfg.Translate.Target != "zh-TW" {
		t.Fatalf("Translate.Target = %q, want zh-TW", cfg.Translate.Target)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearShikiEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `
[api]
base_url = "  http://localhost:8080/v4  "
year = 2024
season = " Summer "
page_delay = "1s"
timeout = "5s"

[storage]
favorites_db = "  ~/favs.db  "

[logging]
level = "debug"

[translate]
target = "ja"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.File != path {
		t.Fatalf("File = %q, want %q", cfg.File, path)
	}
	if cfg.API.BaseURL != "http://localhost:8080/v4" {
		t.Fatalf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.Year != 2024 || cfg.API.Season != "summer" {
		t.Fatalf("season = %d %q, want 2024 summer", cfg.API.Year, cfg.API.Season)
	}
	if cfg.API.PageDelay != time.Second || cfg.API.Timeout != 5*time.Second {
		t.Fatalf("durations = %v / %v", cfg.API.PageDelay, cfg.API.Timeout)
	}
	if cfg.Storage.FavoritesDB != filepath.Join(home, "favs.db") {
		t.Fatalf("FavoritesDB = %q, want expanded under HOME", cfg.Storage.FavoritesDB)
	}
	if cfg.Logging.Level != "debug" || cfg.Translate.Target != "ja" {
		t.Fatalf("logging/translate = %q / %q", cfg.Logging.Level, cfg.Translate.Target)
	}
	if cfg.SeasonLabel() != "Summer 2024" {
		t.Fatalf("SeasonLabel = %q", cfg.SeasonLabel())
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	clearShikiEnv(t)
	t.Setenv("SHIKI_API_YEAR", "2025")
	t.Setenv("SHIKI_STORAGE_FAVORITES_DB", "memory")

	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[api]\nyear = 2020\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.API.Year != 2025 {
		t.Fatalf("Year = %d, want env override 2025", cfg.API.Year)
	}
	if cfg.FavoritesPath() != "" {
		t.Fatalf("FavoritesPath = %q, want memory-only", cfg.FavoritesPath())
	}
}

func TestLoad_DotEnvBesideConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	clearShikiEnv(t)

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env"), "SHIKI_API_SEASON=fall\n")
	path := filepath.Join(dir, "config.toml")
	writeFile(t, path, "[api]\nseason = \"spring\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.API.Season != "fall" {
		t.Fatalf("Season = %q, want fall from .env", cfg.API.Season)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	clearShikiEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `
[api]
base_url = "   "
season = ""

[translate]
target = ""
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.API.BaseURL != jikan.DefaultBaseURL || cfg.API.Season != defaultSeason || cfg.Translate.Target != defaultTarget {
		t.Fatalf("cfg = %#v, want defaults for blank values", cfg)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	clearShikiEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `api = [`)

	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_RejectsUnknownSeason(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	clearShikiEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[api]\nseason = \"monsoon\"\n")

	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "api.season") {
		t.Fatalf("Load error = %v, want api.season error", err)
	}
}

func TestValidate_Year(t *testing.T) {
	cfg := Default()
	cfg.API.Year = 1800
	if err := cfg.Validate(); err == nil {
		t.Fatalf("Validate accepted year 1800")
	}
	cfg.API.Year = 2026
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate error for default: %v", err)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
