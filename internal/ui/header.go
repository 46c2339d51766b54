package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shiki/internal/catalog"
	"github.com/five82/shiki/internal/state"
)

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	text := m.text()
	sep := bg.Spaces(2)

	parts := []string{bg.Render("shiki", styles.Logo)}
	if m.seasonLabel != "" {
		parts = append(parts, bg.Render(m.seasonLabel, styles.AccentText.Bold(true)))
	}
	if m.width >= LayoutCompactWidth {
		parts = append(parts, bg.Render(text.Subtitle, styles.FaintText))
	}

	// Result count
	parts = append(parts,
		bg.Render(fmt.Sprintf("%d", len(m.visible)), styles.Text.Bold(true))+bg.Space()+
			bg.Render(text.FoundTitles, styles.MutedText),
	)

	if page := m.pageLabel(); page != "" {
		parts = append(parts, bg.Render("p."+page, styles.FaintText))
	}

	parts = append(parts,
		bg.Render(text.SortBy+":", styles.MutedText)+bg.Space()+
			bg.Render(m.sortLabel(), styles.Text),
	)

	parts = append(parts,
		bg.Render("♥", styles.Favorite)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", len(m.favs)), styles.Text),
	)

	switch {
	case m.status != state.StatusIdle:
		parts = append(parts, bg.Render(m.spinner.View(), styles.WarningText))
	case m.snapshot.IsOffline():
		parts = append(parts, bg.Render("● "+text.Offline, styles.DangerText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
}

// renderFilterBar shows the active criteria, or the search input while
// editing.
func (m Model) renderFilterBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	bg := NewBgStyle(m.theme.Background)
	text := m.text()

	if m.searchActive {
		return lipgloss.NewStyle().
			Background(lipgloss.Color(m.theme.Background)).
			Width(m.width).
			Padding(0, 1).
			Render(m.searchInput.View())
	}

	var parts []string
	if m.criteria.Search != "" {
		parts = append(parts, bg.Render("/", styles.AccentText)+bg.Render(m.criteria.Search, styles.Text))
	}
	if m.criteria.Source != "" {
		parts = append(parts,
			bg.Render(text.Source+":", styles.MutedText)+bg.Space()+
				bg.Render(m.criteria.Source, m.theme.Styles().SourceStyle(m.criteria.Source)))
	}
	if m.criteria.Genre != 0 {
		name, ok := m.facets.GenreName(m.criteria.Genre)
		if !ok {
			name = fmt.Sprintf("#%d", m.criteria.Genre)
		}
		parts = append(parts,
			bg.Render(text.Genres+":", styles.MutedText)+bg.Space()+
				bg.Render(name, styles.InfoText))
	}
	if m.criteria.FavoritesOnly {
		parts = append(parts, bg.Render("♥ "+text.MyFavorites, styles.Favorite))
	}

	var content string
	if len(parts) == 0 {
		content = bg.Render(text.Filters+":", styles.FaintText) + bg.Space() +
			bg.Render(text.ShowAll, styles.FaintText)
	} else {
		content = bg.Render(text.Filters+":", styles.MutedText) + bg.Space() +
			bg.Join(parts, "  ")
	}
	return bg.FillLine(bg.Space()+content, m.width)
}

// renderFooter shows pagination state, the last error, or a key hint.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	text := m.text()

	var left string
	switch {
	case m.status == state.StatusLoadingMore:
		left = bg.Render(m.spinner.View()+" "+text.LoadingMore, styles.WarningText)
	case m.status == state.StatusInitialLoading:
		left = bg.Render(m.spinner.View()+" "+text.Scanning, styles.WarningText)
	case m.snapshot.LastError != nil:
		left = bg.Render(m.errorText(), styles.DangerText) + bg.Spaces(2) +
			bg.Render("r", styles.WarningText) + bg.Space() + bg.Render(text.Retry, styles.MutedText)
	case m.notice != "":
		left = bg.Render(m.notice, styles.InfoText)
	case m.snapshot.Loaded && !m.snapshot.HasNext:
		left = bg.Render(text.NoMoreResults, styles.MutedText)
	case m.snapshot.Loaded && !m.filtered():
		left = bg.Render("m", styles.WarningText) + bg.Space() + bg.Render(text.LoadMore, styles.MutedText)
	}

	right := bg.Render("?", styles.WarningText) + bg.Space() + bg.Render(text.Help, styles.MutedText)

	gap := m.width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return styles.Footer.Width(m.width).Render(left + bg.Spaces(gap) + right)
}

// sortLabel returns the localized name of the current sort.
func (m Model) sortLabel() string {
	text := m.text()
	switch m.sortBy {
	case catalog.SortScore:
		return text.SortScore
	case catalog.SortMembers:
		return text.SortMembers
	default:
		return text.SortDefault
	}
}

// pageLabel summarises loaded pages, e.g. "2/5".
func (m Model) pageLabel() string {
	if !m.snapshot.Loaded {
		return ""
	}
	if m.snapshot.LastVisiblePage > 0 {
		return fmt.Sprintf("%d/%d", m.snapshot.Page, m.snapshot.LastVisiblePage)
	}
	return fmt.Sprintf("%d", m.snapshot.Page)
}
