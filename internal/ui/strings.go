package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// truncate shortens a string to the given display width, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	if lipgloss.Width(value) <= limit {
		return value
	}
	runes := []rune(value)
	if limit <= 3 {
		return cutWidth(runes, limit)
	}
	return cutWidth(runes, limit-3) + "..."
}

// cutWidth keeps runes while they fit in width cells. CJK titles take two
// cells per rune.
func cutWidth(runes []rune, width int) string {
	var b strings.Builder
	used := 0
	for _, r := range runes {
		w := lipgloss.Width(string(r))
		if used+w > width {
			break
		}
		b.WriteRune(r)
		used += w
	}
	return b.String()
}

// padRight pads a string with spaces to the given display width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// padLeft right-aligns a string within width.
func padLeft(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}

// formatCount renders large counts compactly: 950, 12.3K, 1.2M.
func formatCount(n int) string {
	switch {
	case n >= 1_000_000:
		return trimZero(fmt.Sprintf("%.1f", float64(n)/1_000_000)) + "M"
	case n >= 10_000:
		return trimZero(fmt.Sprintf("%.1f", float64(n)/1_000)) + "K"
	default:
		return strconv.Itoa(n)
	}
}

func trimZero(s string) string {
	return strings.TrimSuffix(s, ".0")
}

// formatScore renders a score with two decimals, or "N/A" when absent.
func formatScore(score float64, has bool) string {
	if !has {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", score)
}

// maxInt returns the larger of two integers.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
