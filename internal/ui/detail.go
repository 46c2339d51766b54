package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/five82/shiki/internal/catalog"
	"github.com/five82/shiki/internal/translate"
)

// updateDetailViewport re-renders the selected item into the viewport.
func (m *Model) updateDetailViewport() {
	if !m.ready || !m.showDetail {
		return
	}
	item, ok := m.selectedItem()
	if !ok {
		m.showDetail = false
		return
	}
	m.detailViewport.SetContent(m.detailContent(item, m.detailViewport.Width))
}

// renderDetail renders the detail pane.
func (m Model) renderDetail() string {
	return lipgloss.NewStyle().
		Padding(0, 2).
		Render(m.detailViewport.View())
}

// detailContent builds the full detail text for item at the given width.
func (m Model) detailContent(item catalog.Item, width int) string {
	styles := m.theme.Styles()
	text := m.text()
	width = maxInt(width, 20)

	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteString("\n")
	}
	field := func(label, value string) {
		line(styles.MutedText.Render(padRight(label, 10)) + value)
	}

	// Titles
	title := item.DisplayTitle()
	if m.favs.Contains(item.ID) {
		title = styles.Favorite.Render("♥ ") + styles.Text.Bold(true).Render(title)
	} else {
		title = styles.Text.Bold(true).Render(title)
	}
	line(title)
	if item.TitleEnglish != "" && item.Title != item.TitleEnglish {
		line(styles.MutedText.Render(item.Title))
	}
	if item.TitleJapanese != "" {
		line(styles.FaintText.Render(item.TitleJapanese))
	}
	line("")

	// Stats
	field(text.Score, styles.ScoreStyle(item.Score, item.HasScore).Render(formatScore(item.Score, item.HasScore)))
	field(text.Members, styles.Text.Render(fmt.Sprintf("%d", item.Members)))
	field(text.Favs, styles.Text.Render(fmt.Sprintf("%d", item.Favorites)))
	field(text.Source, styles.SourceStyle(item.Source).Render(item.Source))

	var meta []string
	for _, v := range []string{item.Type, episodesLabel(item.Episodes), item.Status, item.Rating} {
		if v != "" {
			meta = append(meta, v)
		}
	}
	if item.Year > 0 {
		meta = append(meta, fmt.Sprintf("%d", item.Year))
	}
	if len(meta) > 0 {
		line(styles.FaintText.Render(strings.Join(meta, " · ")))
	}

	if len(item.Genres) > 0 {
		names := make([]string, 0, len(item.Genres))
		for _, g := range item.Genres {
			names = append(names, g.Name)
		}
		field(text.Genres, styles.InfoText.Render(wordwrap.String(strings.Join(names, ", "), maxInt(width-10, 10))))
	}
	line("")

	// Synopsis
	line(styles.AccentText.Bold(true).Render(text.Synopsis))
	if strings.TrimSpace(item.Synopsis) == "" {
		line(styles.FaintText.Render(text.NoSynopsis))
	} else {
		line(styles.Text.Render(wordwrap.String(item.Synopsis, width)))
		line("")
		line(styles.MutedText.Render(text.Translate+": ") +
			styles.InfoText.Render(translate.URL(item.Synopsis, m.translateTarget)))
	}
	line("")

	// Links
	if watch := item.Trailer.WatchURL(); watch != "" {
		field(text.Trailer, styles.InfoText.Render(watch))
	} else {
		field(text.Trailer, styles.FaintText.Render(text.NoTrailer))
	}
	if item.URL != "" {
		line(styles.MutedText.Render(text.ViewMAL+": ") + styles.InfoText.Render(item.URL))
	}

	return strings.TrimRight(b.String(), "\n")
}

func episodesLabel(n int) string {
	if n <= 0 {
		return ""
	}
	if n == 1 {
		return "1 ep"
	}
	return fmt.Sprintf("%d eps", n)
}
