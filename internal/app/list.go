package app

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/five82/shiki/internal/catalog"
)

// ListOptions select what `shiki list` prints.
type ListOptions struct {
	Source    string
	Genre     string // genre ID or name
	Search    string
	Favorites bool
	Sort      string
	Pages     int
}

// List loads opts.Pages pages, applies the filters and sort, and writes a
// table to out. Hints about unknown filter values go to errOut.
func List(ctx context.Context, env *Env, out, errOut io.Writer, opts ListOptions) error {
	sortBy, err := catalog.ParseSort(opts.Sort)
	if err != nil {
		return err
	}
	pages := opts.Pages
	if pages <= 0 {
		pages = 1
	}

	if err := loadPages(ctx, env.Loader, pages, defaultRetryBase, env.Logger); err != nil {
		return fmt.Errorf("load season: %w", err)
	}
	snap := env.Loader.Catalog().Snapshot()
	facets := catalog.BuildFacets(snap.Items)

	criteria := catalog.Criteria{
		Source:        strings.TrimSpace(opts.Source),
		Search:        opts.Search,
		FavoritesOnly: opts.Favorites,
	}
	if criteria.Source != "" {
		criteria.Source = matchSource(criteria.Source, facets, errOut)
	}
	if g := strings.TrimSpace(opts.Genre); g != "" {
		id, err := resolveGenre(g, facets)
		if err != nil {
			return err
		}
		criteria.Genre = id
	}

	items := catalog.Derive(snap.Items, criteria, env.Favorites.Set(), sortBy)
	_, err = fmt.Fprintln(out, renderTable(items, env.Favorites.Set()))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%d of %d titles · %s · page %d%s\n",
		len(items), len(snap.Items), env.Config.SeasonLabel(), snap.Page, moreHint(snap.HasNext))
	return err
}

func moreHint(hasNext bool) string {
	if hasNext {
		return " (more available)"
	}
	return ""
}

// matchSource returns the loaded source label equal to query ignoring case.
// Unknown labels are kept as given so the filter matches nothing, and a
// suggestion is written to errOut.
func matchSource(query string, facets catalog.Facets, errOut io.Writer) string {
	labels := make([]string, len(facets.Sources))
	for i, sc := range facets.Sources {
		if strings.EqualFold(sc.Source, query) {
			return sc.Source
		}
		labels[i] = sc.Source
	}
	if s := suggest(query, labels); s != "" {
		fmt.Fprintf(errOut, "no source %q in the loaded pages; did you mean %q?\n", query, s)
	} else if len(labels) > 0 {
		fmt.Fprintf(errOut, "no source %q in the loaded pages; available: %s\n", query, strings.Join(labels, ", "))
	}
	return query
}

// resolveGenre accepts a numeric genre ID or a genre name present in facets.
func resolveGenre(value string, facets catalog.Facets) (int, error) {
	if id, err := strconv.Atoi(value); err == nil {
		if id <= 0 {
			return 0, fmt.Errorf("invalid genre id %d", id)
		}
		return id, nil
	}
	names := make([]string, len(facets.Genres))
	for i, gc := range facets.Genres {
		if strings.EqualFold(gc.Genre.Name, value) {
			return gc.Genre.ID, nil
		}
		names[i] = gc.Genre.Name
	}
	if s := suggest(value, names); s != "" {
		return 0, fmt.Errorf("unknown genre %q (did you mean %q?)", value, s)
	}
	return 0, fmt.Errorf("unknown genre %q", value)
}

// suggest returns the closest candidate to query: the best fuzzy
// subsequence match, else the nearest by edit distance when it is close.
func suggest(query string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	if ranks := fuzzy.RankFindFold(query, candidates); len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	best, bestDist := "", -1
	lower := strings.ToLower(query)
	for _, c := range candidates {
		d := fuzzy.LevenshteinDistance(lower, strings.ToLower(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist > len(query)/2+1 {
		return ""
	}
	return best
}

// renderTable formats items as a lipgloss table.
func renderTable(items []catalog.Item, favs catalog.IDSet) string {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		fav := ""
		if favs.Contains(item.ID) {
			fav = "♥"
		}
		score := "N/A"
		if item.HasScore {
			score = fmt.Sprintf("%.2f", item.Score)
		}
		names := make([]string, 0, len(item.Genres))
		for _, g := range item.Genres {
			names = append(names, g.Name)
		}
		rows = append(rows, []string{
			strconv.Itoa(item.ID),
			fav,
			score,
			item.DisplayTitle(),
			item.Type,
			item.Source,
			strconv.Itoa(item.Members),
			strings.Join(names, ", "),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "♥", "Score", "Title", "Type", "Source", "Members", "Genres").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	return t.Render()
}
