package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	zone "github.com/lrstanley/bubblezone"

	"github.com/Nomadcxx/plura/internal/catalog"
	"github.com/Nomadcxx/plura/internal/config"
	"github.com/Nomadcxx/plura/internal/focus"
	"github.com/Nomadcxx/plura/internal/logging"
)

// Activation messages queued by focusable elements
type enterAppMsg struct{}
type focusSearchMsg struct{}
type closeDetailMsg struct{}
type switchViewMsg struct{ view catalog.View }
type switchCategoryMsg struct{ category string }
type openDetailMsg struct{ item catalog.Item }
type toggleLibraryMsg struct{ item catalog.Item }
type watchMsg struct{ item catalog.Item }
type trailerMsg struct{ item catalog.Item }

// catalogReloadMsg carries a watcher result into the update loop
type catalogReloadMsg catalog.Event

// Screen is the top-level screen being shown
type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenBrowse
)

// Options configures the TUI
type Options struct {
	Config  *config.Config
	Catalog *catalog.Catalog
	Library *catalog.Library
	Logger  *log.Logger
	// Reload delivers catalog file changes, nil disables live reload
	Reload <-chan catalog.Event
}

// session is the mutable state shared by every copy of the Model. The focus
// engine calls back into it, so it must not live in the value-typed Model.
type session struct {
	engine *focus.Engine
	mounts *mountSet

	// layout is what the engine navigates on, in screen cells
	layout focus.StaticGeometry
	// grid holds card rects in viewport content space
	grid focus.StaticGeometry

	// Mouse hit-testing
	screenZones *zone.Manager
	gridZones   *zone.Manager
	pointer     focus.Geometry
	body        focus.Rect
	gridShown   bool

	// Screen position of the grid content origin
	gridX, gridY int

	frame    string
	scrollTo string
	pending  []tea.Msg
}

func (s *session) activate(msg tea.Msg) {
	s.pending = append(s.pending, msg)
}

// Model represents the TUI state
type Model struct {
	cfg     *config.Config
	keys    keyMap
	logger  *log.Logger
	catalog *catalog.Catalog
	library *catalog.Library
	reload  <-chan catalog.Event
	s       *session

	screen   Screen
	view     catalog.View
	category map[catalog.View]string
	detail   *catalog.Item
	search   textinput.Model
	viewport viewport.Model

	width  int
	height int
	ready  bool
	status string
	notice string
}

// New creates the TUI model
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Sample()
	}
	lib := opts.Library
	if lib == nil {
		lib = catalog.NewLibrary()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	s := &session{
		layout:      focus.StaticGeometry{},
		grid:        focus.StaticGeometry{},
		screenZones: zone.New(),
		gridZones:   zone.New(),
	}
	s.engine = focus.New(cfg.UI.InitialFocus,
		focus.GeometryFunc(func(id string) (focus.Rect, bool) { return s.layout.Bounds(id) }),
		focus.WithLogger(logger.WithPrefix("focus")),
		focus.WithScroller(focus.ScrollFunc(func(id string) { s.scrollTo = id })),
	)
	s.mounts = newMountSet(s.engine)

	m := Model{
		cfg:      cfg,
		keys:     newKeyMap(cfg.Keys),
		logger:   logger,
		catalog:  cat,
		library:  lib,
		reload:   opts.Reload,
		s:        s,
		screen:   ScreenWelcome,
		view:     catalog.Movies,
		category: make(map[catalog.View]string),
		width:    100,
		height:   32,
	}
	for _, v := range catalog.Views {
		if cats := catalog.Categories(v); len(cats) > 0 {
			m.category[v] = cats[0].ID
		}
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Search titles..."
	ti.CharLimit = 64
	ti.Width = cardInner - 1
	m.search = ti

	m.viewport = viewport.New(m.width, 10)
	m.viewport.MouseWheelEnabled = true

	s.pointer = focus.Layers{
		focus.ZoneGeometry{Manager: s.screenZones},
		focus.ZoneGeometry{
			Manager: s.gridZones,
			Active:  func() bool { return s.gridShown },
			Offset:  func() (int, int) { return s.gridX, s.gridY },
			Clip:    func() focus.Rect { return s.body },
		},
	}

	m.sync()
	return m
}

// Init initializes the TUI
func (m Model) Init() tea.Cmd {
	return m.waitForReload()
}

// Close stops the zone workers
func (m Model) Close() {
	m.s.screenZones.Close()
	m.s.gridZones.Close()
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.sync()
		return m, nil

	case catalogReloadMsg:
		if msg.Err != nil {
			m.logger.Warn("catalog reload failed", "err", msg.Err)
			m.status = FormatStatusFail(fmt.Sprintf("Catalog reload failed: %v", msg.Err))
		} else {
			m.catalog = msg.Catalog
			if m.detail != nil {
				m.closeDetail()
			}
			m.logger.Info("catalog reloaded", "items", msg.Catalog.Count())
			m.status = FormatStatusOK(fmt.Sprintf("Catalog reloaded (%d items)", msg.Catalog.Count()))
		}
		return m, tea.Batch(m.flush(), m.waitForReload())

	case tea.KeyMsg:
		if m.search.Focused() {
			return m.updateSearch(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Search):
			if m.screen == ScreenBrowse && m.detail == nil {
				m.s.engine.Focus(searchInputID)
				m.s.activate(focusSearchMsg{})
			}

		case key.Matches(msg, m.keys.Back):
			switch {
			case m.detail != nil:
				m.closeDetail()
			case m.search.Value() != "":
				m.search.SetValue("")
				m.viewport.SetYOffset(0)
			}

		default:
			if cmd, ok := m.keys.command(msg); ok {
				m.s.engine.Dispatch(cmd)
			}
		}
		return m, m.flush()

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if f := m.hit(msg.X, msg.Y); f != nil {
				if m.search.Focused() && f.ID() != searchInputID {
					m.blurSearch()
				}
				f.Activate()
			}
			return m, m.flush()
		}
		if m.s.gridShown && tea.MouseEvent(msg).IsWheel() {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			m.sync()
			return m, cmd
		}
	}

	return m, nil
}

// updateSearch routes keys to the search input while it is being edited
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.search.SetValue("")
		m.blurSearch()
		m.viewport.SetYOffset(0)
		return m, m.flush()
	case tea.KeyEnter:
		m.blurSearch()
		return m, m.flush()
	}

	prev := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != prev {
		m.viewport.SetYOffset(0)
	}
	m.sync()
	return m, cmd
}

func (m *Model) blurSearch() {
	m.search.Blur()
	m.s.engine.SetNavigationEnabled(true)
}

// flush applies queued activations, then lays out the result and scrolls the
// newly focused element into view
func (m *Model) flush() tea.Cmd {
	var cmds []tea.Cmd
	for len(m.s.pending) > 0 {
		msg := m.s.pending[0]
		m.s.pending = m.s.pending[1:]
		cmds = append(cmds, m.apply(msg))
	}

	m.sync()
	if id := m.s.scrollTo; id != "" {
		m.s.scrollTo = ""
		if m.scrollIntoView(id) {
			m.sync()
		}
	}
	return tea.Batch(cmds...)
}

// apply handles one activation
func (m *Model) apply(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case enterAppMsg:
		m.logger.Debug("enter app")
		m.screen = ScreenBrowse

	case focusSearchMsg:
		m.s.engine.SetNavigationEnabled(false)
		return m.search.Focus()

	case switchViewMsg:
		if m.detail != nil {
			m.closeDetail()
		}
		if m.view != msg.view {
			m.logger.Debug("switch view", "view", msg.view)
			m.view = msg.view
			m.viewport.SetYOffset(0)
		}

	case switchCategoryMsg:
		if m.category[m.view] != msg.category {
			m.category[m.view] = msg.category
			m.viewport.SetYOffset(0)
		}

	case openDetailMsg:
		item := msg.item
		m.detail = &item
		m.notice = ""
		m.logger.Debug("open detail", "id", item.ID, "title", item.Title)
		// Trap picks from registered elements, so mount the panel first
		m.sync()
		m.s.engine.Trap(focus.PrefixRegion(detailPrefix))

	case closeDetailMsg:
		m.closeDetail()

	case toggleLibraryMsg:
		if m.library.Toggle(msg.item) {
			m.status = FormatStatusOK(fmt.Sprintf("Added %s to My List", msg.item.Title))
		} else {
			m.status = FormatStatusInfo(fmt.Sprintf("Removed %s from My List", msg.item.Title))
		}

	case watchMsg:
		m.status = FormatStatusInfo("Where to watch: " + msg.item.WatchURL())

	case trailerMsg:
		if u, ok := msg.item.TrailerURL(); ok {
			m.notice = ""
			m.status = FormatStatusInfo("Trailer: " + u)
		} else {
			m.notice = "No trailer available."
		}
	}
	return nil
}

func (m *Model) closeDetail() {
	m.logger.Debug("close detail")
	m.detail = nil
	m.notice = ""
	m.s.engine.Release()
}

// scrollIntoView centers a grid card in the viewport. It reports whether the
// offset changed.
func (m *Model) scrollIntoView(id string) bool {
	r, ok := m.s.grid[id]
	if !ok {
		return false
	}

	prev := m.viewport.YOffset
	m.viewport.SetYOffset(r.Y + r.H/2 - m.viewport.Height/2)
	return m.viewport.YOffset != prev
}

// hit returns the reachable element under a pointer position
func (m Model) hit(x, y int) *focus.Focusable {
	for _, f := range m.s.mounts.list() {
		if !m.s.engine.Reachable(f.ID()) {
			continue
		}
		if r, ok := m.s.pointer.Bounds(f.ID()); ok && r.Contains(x, y) {
			return f
		}
	}
	return nil
}

func (m Model) waitForReload() tea.Cmd {
	if m.reload == nil {
		return nil
	}
	ch := m.reload
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return catalogReloadMsg(ev)
	}
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return m.s.screenZones.Scan(m.s.frame)
}

// Focused returns the focused element id
func (m Model) Focused() string {
	id, _ := m.s.engine.Focused()
	return id
}

// Mounted returns the registered element ids in registration order
func (m Model) Mounted() []string {
	return m.s.engine.IDs()
}

// Bounds returns the on-screen rect of a mounted element
func (m Model) Bounds(id string) (focus.Rect, bool) {
	return m.s.engine.Bounds(id)
}

// Screen returns the screen being shown
func (m Model) Screen() Screen { return m.screen }

// ActiveView returns the selected bottom-nav view
func (m Model) ActiveView() catalog.View { return m.view }

// ActiveCategory returns the selected tab of the current view
func (m Model) ActiveCategory() string { return m.category[m.view] }

// Detail returns the item shown in the detail panel, if any
func (m Model) Detail() (catalog.Item, bool) {
	if m.detail == nil {
		return catalog.Item{}, false
	}
	return *m.detail, true
}

// Searching reports whether the search input is being edited
func (m Model) Searching() bool { return m.search.Focused() }

// NavigationEnabled reports whether directional input reaches the engine
func (m Model) NavigationEnabled() bool { return m.s.engine.NavigationEnabled() }

// Status returns the status line message
func (m Model) Status() string { return m.status }

// Notice returns the detail panel notice
func (m Model) Notice() string { return m.notice }

// YOffset returns the grid scroll offset
func (m Model) YOffset() int { return m.viewport.YOffset }
