package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shiki/internal/catalog"
	"github.com/five82/shiki/internal/favorites"
	"github.com/five82/shiki/internal/i18n"
	"github.com/five82/shiki/internal/prefs"
	"github.com/five82/shiki/internal/state"
	"github.com/five82/shiki/internal/translate"
)

// Options configures the UI.
type Options struct {
	Context         context.Context
	Loader          *state.Loader
	Favorites       *favorites.Store
	Logger          *slog.Logger
	Prefs           prefs.Prefs
	PrefsPath       string
	SeasonLabel     string
	TranslateTarget string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx             context.Context
	loader          *state.Loader
	catalog         *state.Catalog
	favorites       *favorites.Store
	logger          *slog.Logger
	prefsPath       string
	prefs           prefs.Prefs
	seasonLabel     string
	translateTarget string
	keys            keyMap

	// UI state
	theme  Theme
	lang   i18n.Language
	width  int
	height int
	ready  bool

	// Data state
	snapshot state.Snapshot
	status   state.Status
	favs     catalog.IDSet
	criteria catalog.Criteria
	sortBy   catalog.SortOption
	visible  []catalog.Item
	facets   catalog.Facets

	// List state
	selectedRow int
	offset      int

	// Detail state
	showDetail     bool
	detailViewport viewport.Model

	// Overlays
	showHelp     bool
	searchActive bool
	searchInput  textinput.Model
	picker       Modal

	spinner spinner.Model
	notice  string
}

// loadDoneMsg reports the outcome of a Reset or LoadMore.
type loadDoneMsg struct {
	err error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	target := opts.TranslateTarget
	if target == "" {
		target = translate.DefaultTarget
	}
	sortBy, err := catalog.ParseSort(opts.Prefs.Sort)
	if err != nil {
		logger.Warn("ignoring saved sort", "sort", opts.Prefs.Sort, "error", err)
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.CharLimit = 80

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:             ctx,
		loader:          opts.Loader,
		favorites:       opts.Favorites,
		logger:          logger,
		prefsPath:       prefsPath,
		prefs:           opts.Prefs,
		seasonLabel:     opts.SeasonLabel,
		translateTarget: target,
		keys:            DefaultKeyMap(),
		theme:           GetTheme(opts.Prefs.Theme),
		lang:            i18n.Parse(opts.Prefs.Language),
		sortBy:          sortBy,
		searchInput:     search,
		spinner:         sp,
	}
	if opts.Loader != nil {
		m.catalog = opts.Loader.Catalog()
		m.snapshot = m.catalog.Snapshot()
	}
	m.searchInput.Placeholder = m.text().SearchPlaceholder
	m.applyTheme()
	m.refreshFavorites()
	m.rederive()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.loader != nil {
		cmds = append(cmds, resetCmd(m.ctx, m.loader))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.detailViewport = viewport.New(m.detailWidth(), m.bodyHeight())
		}
		m.ready = true
		m.detailViewport.Width = m.detailWidth()
		m.detailViewport.Height = m.bodyHeight()
		m.clampSelection()
		m.updateDetailViewport()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.catalog != nil {
			m.status = m.catalog.Status()
		}
		return m, cmd

	case loadDoneMsg:
		return m.handleLoadDone(msg)
	}

	if m.searchActive {
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return m.text().Scanning
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.picker != nil {
		return m.picker.View(m.theme, m.width, m.height)
	}
	return m.renderMain()
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	opts.Context = ctx
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func resetCmd(ctx context.Context, l *state.Loader) tea.Cmd {
	return func() tea.Msg {
		return loadDoneMsg{err: l.Reset(ctx)}
	}
}

func loadMoreCmd(ctx context.Context, l *state.Loader) tea.Cmd {
	return func() tea.Msg {
		return loadDoneMsg{err: l.LoadMore(ctx)}
	}
}

// handleLoadDone refreshes derived state after a load finishes.
func (m Model) handleLoadDone(msg loadDoneMsg) (tea.Model, tea.Cmd) {
	switch {
	case errors.Is(msg.err, state.ErrSuperseded):
		m.status = m.catalog.Status()
		return m, nil
	case errors.Is(msg.err, state.ErrBusy):
		return m, nil
	case errors.Is(msg.err, state.ErrExhausted):
		m.notice = m.text().NoMoreResults
		return m, nil
	}
	m.refreshSnapshot()
	return m, nil
}

// requestMore starts a load-more unless one is already running or the
// listing is exhausted.
func (m *Model) requestMore() tea.Cmd {
	if m.loader == nil || m.loader.Busy() {
		return nil
	}
	if m.snapshot.Loaded && !m.snapshot.HasNext {
		m.notice = m.text().NoMoreResults
		return nil
	}
	m.status = state.StatusLoadingMore
	if !m.snapshot.Loaded {
		m.status = state.StatusInitialLoading
	}
	return loadMoreCmd(m.ctx, m.loader)
}

// requestReset reloads from page 1. It always proceeds.
func (m *Model) requestReset() tea.Cmd {
	if m.loader == nil {
		return nil
	}
	m.notice = ""
	m.status = state.StatusInitialLoading
	return resetCmd(m.ctx, m.loader)
}

func (m *Model) refreshSnapshot() {
	if m.catalog == nil {
		return
	}
	m.snapshot = m.catalog.Snapshot()
	m.status = m.snapshot.Status
	m.facets = catalog.BuildFacets(m.snapshot.Items)
	m.rederive()
}

func (m *Model) refreshFavorites() {
	if m.favorites == nil {
		m.favs = catalog.IDSet{}
		return
	}
	m.favs = m.favorites.Set()
}

// rederive recomputes the visible list from the accumulated items.
func (m *Model) rederive() {
	var selectedID int
	if item, ok := m.selectedItem(); ok {
		selectedID = item.ID
	}
	m.visible = catalog.Derive(m.snapshot.Items, m.criteria, m.favs, m.sortBy)
	if selectedID != 0 {
		for i, item := range m.visible {
			if item.ID == selectedID {
				m.selectedRow = i
				break
			}
		}
	}
	m.clampSelection()
	m.updateDetailViewport()
}

func (m Model) selectedItem() (catalog.Item, bool) {
	if m.selectedRow < 0 || m.selectedRow >= len(m.visible) {
		return catalog.Item{}, false
	}
	return m.visible[m.selectedRow], true
}

func (m Model) text() i18n.Strings {
	return i18n.For(m.lang)
}

// errorText localizes the last fetch failure.
func (m Model) errorText() string {
	switch m.snapshot.ErrorKind {
	case state.ErrorRateLimited:
		return m.text().RateLimited
	case state.ErrorFetch:
		return m.text().Error
	default:
		return ""
	}
}

func (m *Model) applyTheme() {
	styles := m.theme.Styles()
	m.searchInput.PromptStyle = styles.AccentText
	m.searchInput.TextStyle = styles.Text
	m.searchInput.PlaceholderStyle = styles.FaintText
	m.spinner.Style = styles.WarningText
}

func (m *Model) savePrefs() {
	m.prefs.Theme = m.theme.Name
	m.prefs.Language = string(m.lang)
	m.prefs.Sort = m.sortBy.String()
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Warn("save prefs failed", "path", m.prefsPath, "error", err)
	}
}

// bodyHeight is the number of rows between header and footer.
func (m Model) bodyHeight() int {
	h := m.height - headerHeight - footerHeight
	if h < 1 {
		return 1
	}
	return h
}

func (m Model) detailWidth() int {
	w := m.width - 4
	if w < 20 {
		return 20
	}
	return w
}

// renderMain composes header, body and footer.
func (m Model) renderMain() string {
	var body string
	if m.showDetail {
		body = m.renderDetail()
	} else {
		body = m.renderList()
	}
	body = lipgloss.NewStyle().
		Width(m.width).
		Height(m.bodyHeight()).
		MaxHeight(m.bodyHeight()).
		Background(lipgloss.Color(m.theme.Background)).
		Render(body)

	return strings.Join([]string{
		m.renderHeader(),
		m.renderFilterBar(),
		body,
		m.renderFooter(),
	}, "\n")
}
