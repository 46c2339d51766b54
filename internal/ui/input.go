package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/shiki/internal/state"
)

// handleKey routes keyboard input to the active overlay or the list.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.picker != nil {
		return m.handlePickerKey(msg)
	}

	if m.searchActive {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyTheme()
		m.updateDetailViewport()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Language):
		m.lang = m.lang.Next()
		m.searchInput.Placeholder = m.text().SearchPlaceholder
		m.notice = ""
		m.updateDetailViewport()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		switch {
		case m.showDetail:
			m.showDetail = false
		case m.criteria.Search != "":
			m.criteria.Search = ""
			m.searchInput.SetValue("")
			m.rederive()
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleFavorite):
		m.toggleFavorite()
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m, m.requestReset()

	case key.Matches(msg, m.keys.LoadMore):
		return m, m.requestMore()
	}

	if m.showDetail {
		return m.handleDetailKey(msg)
	}
	return m.handleListKey(msg)
}

// handleListKey processes keys for the catalog list.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
		return m, m.maybeAutoLoad()
	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
		m.clampSelection()
	case key.Matches(msg, m.keys.Bottom):
		m.selectedRow = len(m.visible) - 1
		m.clampSelection()
		return m, m.maybeAutoLoad()
	case key.Matches(msg, m.keys.PageUp):
		m.moveSelection(-m.listHeight())
	case key.Matches(msg, m.keys.PageDown):
		m.moveSelection(m.listHeight())
		return m, m.maybeAutoLoad()

	case key.Matches(msg, m.keys.OpenDetail):
		if _, ok := m.selectedItem(); ok {
			m.showDetail = true
			m.updateDetailViewport()
			m.detailViewport.GotoTop()
		}

	case key.Matches(msg, m.keys.Search):
		m.searchActive = true
		m.searchInput.SetValue(m.criteria.Search)
		m.searchInput.CursorEnd()
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.FavoritesOnly):
		m.criteria.FavoritesOnly = !m.criteria.FavoritesOnly
		m.rederive()

	case key.Matches(msg, m.keys.CycleSort):
		m.sortBy = m.sortBy.Next()
		m.rederive()
		m.savePrefs()

	case key.Matches(msg, m.keys.PickSource):
		fp := newSourcePicker(m.facets, m.criteria.Source, m.text())
		m.picker = fp
		return m, fp.focus()

	case key.Matches(msg, m.keys.PickGenre):
		fp := newGenrePicker(m.facets, m.criteria.Genre, m.text())
		m.picker = fp
		return m, fp.focus()

	case key.Matches(msg, m.keys.ClearFilters):
		m.criteria = m.criteria.ClearFacets()
		m.rederive()

	case key.Matches(msg, m.keys.ClearAll):
		m.criteria = m.criteria.ClearFacets()
		m.criteria.Search = ""
		m.searchInput.SetValue("")
		m.rederive()
	}
	return m, nil
}

// handleDetailKey scrolls the detail viewport.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.detailViewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.detailViewport.ScrollDown(1)
	case key.Matches(msg, m.keys.Top):
		m.detailViewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.detailViewport.GotoBottom()
	case key.Matches(msg, m.keys.PageUp):
		m.detailViewport.HalfPageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.detailViewport.HalfPageDown()
	}
	return m, nil
}

// handleSearchKey edits the search text; the list filters as you type.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.searchActive = false
		m.searchInput.Blur()
		return m, nil
	case tea.KeyEsc:
		m.searchActive = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.criteria.Search = ""
		m.rederive()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if value := m.searchInput.Value(); value != m.criteria.Search {
		m.criteria.Search = value
		m.rederive()
	}
	return m, cmd
}

// handlePickerKey forwards input to the open facet picker and applies its
// choice when it closes.
func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	next, cmd, done := m.picker.Update(msg, m.keys)
	if !done {
		m.picker = next
		return m, cmd
	}
	m.picker = nil
	if fp, ok := next.(*facetPicker); ok && fp.chosen {
		m.applyFacet(fp)
	}
	return m, cmd
}

// applyFacet sets the picked facet. Picking the active value clears it.
func (m *Model) applyFacet(fp *facetPicker) {
	choice := fp.choice()
	switch fp.kind {
	case facetSource:
		if choice.source == m.criteria.Source {
			m.criteria.Source = ""
		} else {
			m.criteria.Source = choice.source
		}
	case facetGenre:
		if choice.genre == m.criteria.Genre {
			m.criteria.Genre = 0
		} else {
			m.criteria.Genre = choice.genre
		}
	}
	m.selectedRow = 0
	m.rederive()
}

func (m *Model) toggleFavorite() {
	item, ok := m.selectedItem()
	if !ok || m.favorites == nil {
		return
	}
	if _, err := m.favorites.Toggle(item.ID); err != nil {
		m.logger.Error("favorites write failed", "id", item.ID, "error", err)
	}
	m.refreshFavorites()
	m.rederive()
}

func (m *Model) moveSelection(delta int) {
	m.selectedRow += delta
	m.clampSelection()
}

// clampSelection keeps the cursor on a visible row and scrolls the window.
func (m *Model) clampSelection() {
	if m.selectedRow >= len(m.visible) {
		m.selectedRow = len(m.visible) - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
	height := m.listHeight()
	if m.selectedRow < m.offset {
		m.offset = m.selectedRow
	}
	if m.selectedRow >= m.offset+height {
		m.offset = m.selectedRow - height + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// filtered reports whether any criterion, search included, narrows the list.
func (m Model) filtered() bool {
	return m.criteria.Active() || m.criteria.Search != ""
}

// maybeAutoLoad requests the next page once the cursor reaches the last row
// of the unfiltered list, unless the previous attempt failed.
func (m *Model) maybeAutoLoad() tea.Cmd {
	if len(m.visible) == 0 || m.selectedRow < len(m.visible)-1 || m.filtered() {
		return nil
	}
	if !m.snapshot.HasNext || m.snapshot.LastError != nil || m.status != state.StatusIdle {
		return nil
	}
	return m.requestMore()
}
