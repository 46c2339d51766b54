package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BgStyle renders segments that share one background color. Styling each
// word separately and joining with pre-styled spaces keeps the background
// unbroken across ANSI resets between segments.
type BgStyle struct {
	bg    lipgloss.Color
	fill  lipgloss.Style
	space string
}

// NewBgStyle creates a helper for the given background color.
func NewBgStyle(bgColor string) BgStyle {
	bg := lipgloss.Color(bgColor)
	fill := lipgloss.NewStyle().Background(bg)
	return BgStyle{bg: bg, fill: fill, space: fill.Render(" ")}
}

// Render applies style plus the background to every word of text.
func (b BgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	style = style.Background(b.bg)
	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" {
			words[i] = style.Render(w)
		}
	}
	return strings.Join(words, b.space)
}

// Space returns one background-colored space.
func (b BgStyle) Space() string {
	return b.space
}

// Spaces returns n background-colored spaces.
func (b BgStyle) Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return b.fill.Render(strings.Repeat(" ", n))
}

// Join joins already rendered parts with a background-colored separator.
func (b BgStyle) Join(parts []string, sep string) string {
	return strings.Join(parts, b.fill.Render(sep))
}

// Color returns the background color.
func (b BgStyle) Color() lipgloss.Color {
	return b.bg
}

// FillLine pads rendered content to width with the background color.
func (b BgStyle) FillLine(content string, width int) string {
	return b.fill.Width(width).Render(content)
}
