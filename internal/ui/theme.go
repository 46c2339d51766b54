package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header and footer bars
	SurfaceAlt string // Secondary surfaces

	// List colors
	SelectionBg   string // Selected row background
	SelectionText string // Selected row text

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// Source label badge colors
	SourceColors map[string]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		SurfaceAlt: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Favorite: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)),

		sourceColors: t.SourceColors,
		background:   t.Background,
		muted:        t.Muted,
		success:      t.Success,
		warning:      t.Warning,
		faint:        t.Faint,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Base
	Background lipgloss.Style
	Surface    lipgloss.Style
	SurfaceAlt lipgloss.Style

	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	// Components
	Header   lipgloss.Style
	Footer   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style
	Favorite lipgloss.Style

	sourceColors map[string]string
	background   string
	muted        string
	success      string
	warning      string
	faint        string
}

// SourceStyle returns a badge style for a source label.
func (s Styles) SourceStyle(source string) lipgloss.Style {
	color := s.sourceColors[source]
	if color == "" {
		color = s.muted
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// ScoreStyle colors a score: high green, middling yellow, unscored faint.
func (s Styles) ScoreStyle(score float64, has bool) lipgloss.Style {
	switch {
	case !has:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(s.faint))
	case score >= 8:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(s.success)).Bold(true)
	case score >= 7:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(s.warning))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(s.muted))
	}
}

// WithBackground returns a copy of Styles with all text styles having the specified background.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)

	out := s
	out.Background = s.Background.Background(bg)
	out.Surface = s.Surface.Background(bg)
	out.SurfaceAlt = s.SurfaceAlt.Background(bg)
	out.Text = s.Text.Background(bg)
	out.MutedText = s.MutedText.Background(bg)
	out.FaintText = s.FaintText.Background(bg)
	out.AccentText = s.AccentText.Background(bg)
	out.SuccessText = s.SuccessText.Background(bg)
	out.WarningText = s.WarningText.Background(bg)
	out.DangerText = s.DangerText.Background(bg)
	out.InfoText = s.InfoText.Background(bg)
	out.Header = s.Header.Background(bg)
	out.Footer = s.Footer.Background(bg)
	out.Logo = s.Logo.Background(bg)
	out.Favorite = s.Favorite.Background(bg)
	return out
}

// Theme definitions

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Sakura":   sakuraTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Sakura"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		SurfaceAlt: "#212e3f", // bg2

		SelectionBg:   "#2b3b51", // sel0
		SelectionText: "#cdcecf", // fg1

		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Faint:   "#71839b", // fg3
		Accent:  "#719cd6", // blue
		Success: "#81b29a", // green
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
		Info:    "#63cdcf", // cyan

		SourceColors: map[string]string{
			"Manga":        "#719cd6", // blue
			"Web manga":    "#63cdcf", // cyan
			"Light novel":  "#9d79d6", // magenta
			"Novel":        "#9d79d6", // magenta
			"Web novel":    "#9d79d6", // magenta
			"Original":     "#81b29a", // green
			"Game":         "#f4a261", // orange
			"Visual novel": "#f4a261", // orange
			"4-koma manga": "#63cdcf", // cyan
			"Unknown":      "#71839b", // fg3
		},
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",

		Background: "#16161D", // sumiInk0
		Surface:    "#1F1F28", // sumiInk3
		SurfaceAlt: "#2A2A37", // sumiInk4

		SelectionBg:   "#2D4F67", // waveBlue1
		SelectionText: "#DCD7BA", // fujiWhite

		Text:    "#DCD7BA", // fujiWhite
		Muted:   "#C8C093", // oldWhite
		Faint:   "#727169", // fujiGray
		Accent:  "#7E9CD8", // crystalBlue
		Success: "#98BB6C", // springGreen
		Warning: "#E6C384", // carpYellow
		Danger:  "#E46876", // waveRed
		Info:    "#7FB4CA", // springBlue

		SourceColors: map[string]string{
			"Manga":        "#7E9CD8", // crystalBlue
			"Web manga":    "#7FB4CA", // springBlue
			"Light novel":  "#957FB8", // oniViolet
			"Novel":        "#957FB8", // oniViolet
			"Web novel":    "#957FB8", // oniViolet
			"Original":     "#98BB6C", // springGreen
			"Game":         "#FFA066", // surimiOrange
			"Visual novel": "#FFA066", // surimiOrange
			"4-koma manga": "#7FB4CA", // springBlue
			"Unknown":      "#727169", // fujiGray
		},
	}
}

func sakuraTheme() Theme {
	return Theme{
		Name: "Sakura",

		Background: "#1d1720",
		Surface:    "#271e2b",
		SurfaceAlt: "#322738",

		SelectionBg:   "#5a3350",
		SelectionText: "#fbeef3",

		Text:    "#f2e4ea",
		Muted:   "#b39aa8",
		Faint:   "#7d6874",
		Accent:  "#f4a7c0",
		Success: "#a8d5a2",
		Warning: "#f1c77a",
		Danger:  "#e8778f",
		Info:    "#9cc7e0",

		SourceColors: map[string]string{
			"Manga":        "#9cc7e0",
			"Web manga":    "#8fd3cf",
			"Light novel":  "#c9a4e8",
			"Novel":        "#c9a4e8",
			"Web novel":    "#c9a4e8",
			"Original":     "#a8d5a2",
			"Game":         "#f3a96b",
			"Visual novel": "#f3a96b",
			"4-koma manga": "#8fd3cf",
			"Unknown":      "#7d6874",
		},
	}
}
