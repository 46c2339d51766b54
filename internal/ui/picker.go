package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/five82/shiki/internal/catalog"
	"github.com/five82/shiki/internal/i18n"
)

type facetKind int

const (
	facetSource facetKind = iota
	facetGenre
)

// facetOption is one row of the picker. The zero source/genre row means
// "show all".
type facetOption struct {
	label  string
	count  int
	source string
	genre  int
}

// facetPicker is a type-ahead modal over the sources or genres present in
// the loaded data.
type facetPicker struct {
	kind     facetKind
	title    string
	options  []facetOption
	filtered []int
	cursor   int
	active   int // index into options of the current criteria value
	input    textinput.Model
	chosen   bool
}

const pickerVisibleRows = 12

func newSourcePicker(f catalog.Facets, current string, text i18n.Strings) *facetPicker {
	opts := []facetOption{{label: text.ShowAll}}
	active := 0
	for _, sc := range f.Sources {
		if sc.Source == current {
			active = len(opts)
		}
		opts = append(opts, facetOption{label: sc.Source, count: sc.Count, source: sc.Source})
	}
	return newFacetPicker(facetSource, text.Source, opts, active, text)
}

func newGenrePicker(f catalog.Facets, current int, text i18n.Strings) *facetPicker {
	opts := []facetOption{{label: text.ShowAll}}
	active := 0
	for _, gc := range f.Genres {
		if gc.Genre.ID == current {
			active = len(opts)
		}
		opts = append(opts, facetOption{label: gc.Genre.Name, count: gc.Count, genre: gc.Genre.ID})
	}
	return newFacetPicker(facetGenre, text.Genres, opts, active, text)
}

func newFacetPicker(kind facetKind, title string, opts []facetOption, active int, text i18n.Strings) *facetPicker {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = text.Filters
	input.CharLimit = 40

	p := &facetPicker{
		kind:    kind,
		title:   title,
		options: opts,
		active:  active,
		input:   input,
	}
	p.applyFilter()
	for i, idx := range p.filtered {
		if idx == active {
			p.cursor = i
		}
	}
	return p
}

func (p *facetPicker) focus() tea.Cmd {
	return p.input.Focus()
}

// applyFilter narrows the options by fuzzy match on their labels. The
// "show all" row is always kept first.
func (p *facetPicker) applyFilter() {
	query := strings.TrimSpace(p.input.Value())
	p.cursor = 0
	if query == "" {
		p.filtered = make([]int, len(p.options))
		for i := range p.options {
			p.filtered[i] = i
		}
		return
	}

	lowerLabels := make([]string, len(p.options)-1)
	for i, opt := range p.options[1:] {
		lowerLabels[i] = strings.ToLower(opt.label)
	}
	matches := fuzzy.Find(strings.ToLower(query), lowerLabels)

	p.filtered = make([]int, 0, len(matches)+1)
	p.filtered = append(p.filtered, 0)
	for _, match := range matches {
		p.filtered = append(p.filtered, match.Index+1)
	}
}

// choice returns the option under the cursor.
func (p *facetPicker) choice() facetOption {
	if p.cursor < 0 || p.cursor >= len(p.filtered) {
		return facetOption{}
	}
	return p.options[p.filtered[p.cursor]]
}

// Update implements Modal.
func (p *facetPicker) Update(msg tea.Msg, _ keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd, false
	}

	switch keyMsg.Type {
	case tea.KeyEsc:
		p.input.Blur()
		return p, nil, true
	case tea.KeyEnter:
		p.input.Blur()
		p.chosen = len(p.filtered) > 0
		return p, nil, true
	case tea.KeyUp, tea.KeyCtrlP:
		if p.cursor > 0 {
			p.cursor--
		}
		return p, nil, false
	case tea.KeyDown, tea.KeyCtrlN:
		if p.cursor < len(p.filtered)-1 {
			p.cursor++
		}
		return p, nil, false
	case tea.KeyCtrlC:
		return p, tea.Quit, true
	}

	before := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(keyMsg)
	if p.input.Value() != before {
		p.applyFilter()
	}
	return p, cmd, false
}

// View implements Modal.
func (p *facetPicker) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(p.title))
	b.WriteString("\n")
	b.WriteString(p.input.View())
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n")

	start := 0
	if p.cursor >= pickerVisibleRows {
		start = p.cursor - pickerVisibleRows + 1
	}
	end := start + pickerVisibleRows
	if end > len(p.filtered) {
		end = len(p.filtered)
	}

	for row := start; row < end; row++ {
		idx := p.filtered[row]
		opt := p.options[idx]

		marker := "  "
		if idx == p.active {
			marker = "● "
		}
		label := truncate(opt.label, 22)
		line := marker + padRight(label, 22)
		if idx != 0 {
			line += fmt.Sprintf(" %4d", opt.count)
		}

		switch {
		case row == p.cursor:
			b.WriteString(styles.Selected.Render(padRight(line, 30)))
		case p.kind == facetSource && idx != 0:
			b.WriteString(styles.SourceStyle(opt.source).Render(line))
		default:
			b.WriteString(styles.Text.Render(line))
		}
		b.WriteString("\n")
	}
	if len(p.filtered) <= 1 && strings.TrimSpace(p.input.Value()) != "" {
		b.WriteString(styles.MutedText.Render("  (0)"))
		b.WriteString("\n")
	}

	return renderModal(theme, width, height, 36, strings.TrimRight(b.String(), "\n"))
}
