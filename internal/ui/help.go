package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	text := m.text()

	groups := m.keys.FullHelp()
	sections := []helpSection{
		{title: "Navigation", items: helpItems(groups[0])},
		{title: "Catalog", items: helpItems(groups[1])},
		{title: text.Filters, items: helpItems(groups[2])},
		{title: "General", items: helpItems(groups[3])},
	}

	var b strings.Builder

	// Title
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Width(10)

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	return renderModal(m.theme, m.width, m.height, 42, strings.TrimRight(b.String(), "\n"))
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}

func helpItems(bindings []key.Binding) []helpItem {
	items := make([]helpItem, 0, len(bindings))
	for _, binding := range bindings {
		h := binding.Help()
		items = append(items, helpItem{key: h.Key, desc: h.Desc})
	}
	return items
}
