package app

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/shiki/internal/catalog"
)

const seasonPage1 = `{
  "pagination": {"last_visible_page": 2, "has_next_page": true, "current_page": 1, "items": {"count": 2, "total": 3, "per_page": 2}},
  "data": [
    {"mal_id": 52991, "url": "https://myanimelist.net/anime/52991", "title": "Sousou no Frieren", "title_english": "Frieren: Beyond Journey's End",
     "type": "TV", "source": "Manga", "score": 9.3, "members": 900000, "genres": [{"mal_id": 2, "name": "Adventure"}, {"mal_id": 8, "name": "Drama"}]},
    {"mal_id": 100, "title": "Original Robot", "type": "TV", "source": "Original", "score": null, "members": 1200, "genres": [{"mal_id": 1, "name": "Action"}]}
  ]
}`

const seasonPage2 = `{
  "pagination": {"last_visible_page": 2, "has_next_page": false, "current_page": 2, "items": {"count": 1, "total": 3, "per_page": 2}},
  "data": [
    {"mal_id": 200, "title": "Game Adaptation", "type": "ONA", "source": null, "score": 7.1, "members": 50000, "genres": [{"mal_id": 1, "name": "Action"}]}
  ]
}`

// testOptions serves two season pages and writes a config pointing at them
// with all files under a temp dir.
func testOptions(t *testing.T) Options {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/seasons/2026/winter") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("page") {
		case "1":
			fmt.Fprint(w, seasonPage1)
		case "2":
			fmt.Fprint(w, seasonPage2)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	cfgPath := filepath.Join(dir, "config.toml")
	cfg := fmt.Sprintf(`[api]
base_url = %q
year = 2026
season = "winter"
page_delay = "0s"

[storage]
favorites_db = %q

[logging]
file = %q
level = "debug"
`, server.URL+"/v4", filepath.Join(dir, "favorites.db"), filepath.Join(dir, "shiki.log"))
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return Options{ConfigPath: cfgPath, PrefsPath: filepath.Join(dir, "prefs.toml")}
}

func newTestEnv(t *testing.T) *Env {
	t.Helper()
	env, err := Open(testOptions(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = env.Close() })
	return env
}

func TestList_WalksPagesAndFilters(t *testing.T) {
	env := newTestEnv(t)
	var out, errOut bytes.Buffer

	err := List(context.Background(), env, &out, &errOut, ListOptions{Genre: "action", Sort: "score", Pages: 5})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Game Adaptation") || !strings.Contains(got, "Original Robot") {
		t.Fatalf("output missing action titles:\n%s", got)
	}
	if strings.Contains(got, "Frieren") {
		t.Fatalf("output should not include non-action titles:\n%s", got)
	}
	if strings.Index(got, "Game Adaptation") > strings.Index(got, "Original Robot") {
		t.Fatalf("scored title should sort before unscored:\n%s", got)
	}
	if !strings.Contains(got, "2 of 3 titles") || !strings.Contains(got, "Winter 2026") {
		t.Fatalf("summary line wrong:\n%s", got)
	}
	if !strings.Contains(got, catalog.UnknownSource) {
		t.Fatalf("missing source should render as %q:\n%s", catalog.UnknownSource, got)
	}
}

func TestList_SourceSuggestion(t *testing.T) {
	env := newTestEnv(t)
	var out, errOut bytes.Buffer

	if err := List(context.Background(), env, &out, &errOut, ListOptions{Source: "mang"}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if !strings.Contains(errOut.String(), `did you mean "Manga"`) {
		t.Fatalf("stderr = %q, want suggestion", errOut.String())
	}
	if !strings.Contains(out.String(), "0 of 2 titles") {
		t.Fatalf("unknown source should match nothing:\n%s", out.String())
	}

	out.Reset()
	errOut.Reset()
	if err := List(context.Background(), env, &out, &errOut, ListOptions{Source: "manga"}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if errOut.Len() != 0 || !strings.Contains(out.String(), "Frieren") {
		t.Fatalf("case-insensitive source should match, stderr=%q", errOut.String())
	}
}

func TestList_RejectsBadSortAndGenre(t *testing.T) {
	env := newTestEnv(t)
	var out, errOut bytes.Buffer

	if err := List(context.Background(), env, &out, &errOut, ListOptions{Sort: "alphabetical"}); err == nil {
		t.Fatalf("List accepted an unknown sort")
	}
	err := List(context.Background(), env, &out, &errOut, ListOptions{Genre: "Dramma"})
	if err == nil || !strings.Contains(err.Error(), `did you mean "Drama"`) {
		t.Fatalf("err = %v, want genre suggestion", err)
	}
}

func TestFavorites_ToggleListAndPersist(t *testing.T) {
	env := newTestEnv(t)
	var out bytes.Buffer

	if err := ToggleFavorite(env, 52991, &out); err != nil {
		t.Fatalf("ToggleFavorite: %v", err)
	}
	if !strings.Contains(out.String(), "52991 added to favorites") {
		t.Fatalf("output = %q", out.String())
	}

	out.Reset()
	if err := List(context.Background(), env, &out, &bytes.Buffer{}, ListOptions{Favorites: true}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if !strings.Contains(out.String(), "Frieren") || !strings.Contains(out.String(), "1 of 2 titles") {
		t.Fatalf("favorites-only list wrong:\n%s", out.String())
	}

	out.Reset()
	if err := PrintFavorites(env, &out); err != nil {
		t.Fatalf("PrintFavorites: %v", err)
	}
	if strings.TrimSpace(out.String()) != "52991" {
		t.Fatalf("favorites = %q", out.String())
	}

	if err := ToggleFavorite(env, 0, &out); err == nil {
		t.Fatalf("ToggleFavorite accepted id 0")
	}
}

func TestPrintLogs_FormatsRecords(t *testing.T) {
	env := newTestEnv(t)
	var out bytes.Buffer
	if err := ToggleFavorite(env, 7, &out); err != nil {
		t.Fatalf("ToggleFavorite: %v", err)
	}

	out.Reset()
	if err := PrintLogs(env.Config.Logging.File, 50, false, &out); err != nil {
		t.Fatalf("PrintLogs: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "INFO favorite toggled favorite=true id=7") {
		t.Fatalf("logs = %q", got)
	}
	if strings.Contains(got, `"msg"`) {
		t.Fatalf("logs should be formatted, not raw JSON")
	}
}

func TestDescribeFor_Localizes(t *testing.T) {
	en := describeFor("en")
	if got := en(nil); got != "" {
		t.Fatalf("describe(nil) = %q", got)
	}
	if got := en(fmt.Errorf("x")); got != "Failed to load the season listing. Please try again." {
		t.Fatalf("describe(fetch) = %q", got)
	}
	zh := describeFor("zh")
	if got := zh(fmt.Errorf("x")); got == en(fmt.Errorf("x")) {
		t.Fatalf("zh message should differ from en")
	}
}
