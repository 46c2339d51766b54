package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shiki/internal/catalog"
	"github.com/five82/shiki/internal/state"
)

// listHeight is the number of item rows that fit under the column header.
func (m Model) listHeight() int {
	h := m.bodyHeight() - 1
	if h < 1 {
		return 1
	}
	return h
}

// renderList renders the column header and the visible window of rows, or
// an empty state.
func (m Model) renderList() string {
	if len(m.visible) == 0 {
		return m.renderEmpty()
	}

	styles := m.theme.Styles()
	titleWidth := m.titleWidth()

	var b strings.Builder
	b.WriteString(styles.MutedText.Bold(true).Render(m.columnHeader(titleWidth)))
	b.WriteString("\n")

	end := m.offset + m.listHeight()
	if end > len(m.visible) {
		end = len(m.visible)
	}
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(m.visible[i], i == m.selectedRow, titleWidth))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) showGenres() bool {
	return m.width >= LayoutGenresWidth
}

// titleWidth gives the title column whatever the fixed columns leave over.
func (m Model) titleWidth() int {
	fixed := 1 + colFav + colScore + 1 + colType + 1 + colSource + 1 + colMembers + 1
	if m.showGenres() {
		fixed += colGenres + 1
	}
	return maxInt(m.width-fixed, 12)
}

func (m Model) columnHeader(titleWidth int) string {
	text := m.text()
	cols := []string{
		" " + padRight("", colFav),
		padLeft(text.Score, colScore),
		padRight("Title", titleWidth),
		padRight("Type", colType),
		padRight(text.Source, colSource),
		padLeft(text.Members, colMembers),
	}
	if m.showGenres() {
		cols = append(cols, padRight(text.Genres, colGenres))
	}
	return strings.Join(cols, " ")
}

// renderRow renders one catalog item.
func (m Model) renderRow(item catalog.Item, selected bool, titleWidth int) string {
	rowBg := m.theme.Background
	if selected {
		rowBg = m.theme.SelectionBg
	}
	styles := m.theme.Styles().WithBackground(rowBg)
	bg := NewBgStyle(rowBg)

	fav := padRight("", colFav)
	if m.favs.Contains(item.ID) {
		fav = padRight("♥", colFav)
	}
	score := padLeft(formatScore(item.Score, item.HasScore), colScore)
	title := padRight(truncate(item.DisplayTitle(), titleWidth), titleWidth)
	typ := padRight(truncate(item.Type, colType), colType)
	source := padRight(truncate(item.Source, colSource), colSource)
	members := padLeft(formatCount(item.Members), colMembers)

	scoreStyle := styles.ScoreStyle(item.Score, item.HasScore).Background(bg.Color())
	sourceStyle := styles.SourceStyle(item.Source).Background(bg.Color())
	titleStyle := styles.Text
	if selected {
		titleStyle = titleStyle.Foreground(lipgloss.Color(m.theme.SelectionText)).Bold(true)
	}

	cols := []string{
		bg.Space() + bg.Render(fav, styles.Favorite),
		scoreStyle.Render(score),
		titleStyle.Render(title),
		bg.Render(typ, styles.MutedText),
		sourceStyle.Render(source),
		bg.Render(members, styles.MutedText),
	}
	if m.showGenres() {
		names := make([]string, 0, len(item.Genres))
		for _, g := range item.Genres {
			names = append(names, g.Name)
		}
		genres := padRight(truncate(strings.Join(names, ", "), colGenres), colGenres)
		cols = append(cols, bg.Render(genres, styles.FaintText))
	}
	return bg.FillLine(bg.Join(cols, " "), m.width)
}

// renderEmpty covers first load, a failed first load, and filters that
// match nothing.
func (m Model) renderEmpty() string {
	styles := m.theme.Styles()
	text := m.text()

	var lines []string
	switch {
	case !m.snapshot.Loaded && m.snapshot.LastError == nil:
		lines = []string{styles.WarningText.Render(m.spinner.View() + " " + text.Scanning)}
	case !m.snapshot.Loaded || (len(m.snapshot.Items) == 0 && m.snapshot.LastError != nil):
		lines = []string{
			styles.DangerText.Render(m.errorText()),
			"",
			styles.WarningText.Render("r") + " " + styles.MutedText.Render(text.Retry),
		}
	case m.status == state.StatusInitialLoading:
		lines = []string{styles.WarningText.Render(m.spinner.View() + " " + text.Scanning)}
	default:
		lines = []string{
			styles.MutedText.Render(text.NoResults),
			"",
			styles.WarningText.Render("c") + " " + styles.MutedText.Render(text.ClearFilters) +
				"   " + styles.WarningText.Render("C") + " " + styles.MutedText.Render(text.ShowAll),
		}
	}

	return lipgloss.Place(
		m.width,
		m.bodyHeight(),
		lipgloss.Center,
		lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...),
	)
}
