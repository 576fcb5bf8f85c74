package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Nomadcxx/plura/internal/catalog"
	"github.com/Nomadcxx/plura/internal/focus"
)

const (
	margin    = 2  // left margin of the browse screen
	cardInner = 20 // card text width
	cardWidth = cardInner + 4
	cardGap   = 2
	minBody   = 3

	// Rows below the body: status, bottom nav, footer
	bottomChrome = 3
)

// sync renders the current state, remounts focusable elements to match it
// and records their layout for the engine
func (m *Model) sync() {
	var f *frame
	if m.screen == ScreenWelcome {
		f = m.renderWelcome()
	} else {
		f = m.renderBrowse()
	}

	m.s.mounts.reconcile(f.elements(), m.s.activate)
	m.s.layout = f.geometry()
	m.s.frame = f.String()
}

func (m *Model) renderWelcome() *frame {
	m.s.gridShown = false
	m.s.grid = focus.StaticGeometry{}

	header := FormatASCIIHeader()
	tagline := FormatTagline()
	style := WelcomeButtonStyle
	if m.s.engine.IsFocused(welcomeEnterID) {
		style = FocusedWelcomeButtonStyle
	}
	button := style.Render("Begin  →")

	contentH := lipgloss.Height(header) + 1 + lipgloss.Height(tagline) + 2 + lipgloss.Height(button)

	f := newFrame(m.s.screenZones)
	f.blank(max(0, (m.height-contentH)/2))
	f.row(centered(m.width, header), 0, block{view: header})
	f.blank(1)
	f.row(centered(m.width, tagline), 0, block{view: tagline})
	f.blank(2)
	f.row(centered(m.width, button), 0, block{
		view: button,
		el:   &element{id: welcomeEnterID, shape: focus.Circle, msg: enterAppMsg{}},
	})
	return f
}

func (m *Model) renderBrowse() *frame {
	f := newFrame(m.s.screenZones)

	f.text(FormatHeader(m.title(), m.width))
	f.blank(1)
	f.row(margin, 0, block{
		view: m.renderSearch(),
		el:   &element{id: searchInputID, shape: focus.Rectangle, msg: focusSearchMsg{}},
	})
	f.blank(1)

	// Tabs sit on the card columns and wrap when they outnumber them
	cols := m.columns()
	tabs := m.tabs()
	for i := 0; i < len(tabs); i += cols {
		f.row(margin, cardGap, tabs[i:min(i+cols, len(tabs))]...)
	}
	f.blank(1)

	bodyH := max(minBody, m.height-f.height-bottomChrome)
	m.s.body = focus.Rect{X: 0, Y: f.height, W: m.width, H: bodyH}

	if m.detail != nil {
		m.s.gridShown = false
		m.s.grid = focus.StaticGeometry{}

		panel, inner := m.renderDetail(bodyH)
		f.nest((m.width-lipgloss.Width(panel))/2, panel, inner, 2, 1)
		f.blank(bodyH - lipgloss.Height(panel))
	} else {
		grid := m.renderGrid()
		m.s.grid = grid.geometry()
		m.viewport.Width = m.width
		m.viewport.Height = bodyH
		m.viewport.SetContent(m.s.gridZones.Scan(grid.String()))

		m.s.gridShown = true
		m.s.gridX, m.s.gridY = 0, f.height-m.viewport.YOffset
		f.nest(0, m.viewport.View(), grid, 0, -m.viewport.YOffset)
	}

	f.text(lipgloss.NewStyle().MaxWidth(m.width).Render(" " + m.status))
	f.row(margin, 2, m.navButtons()...)
	f.text(m.footer())
	return f
}

// title is the header line, e.g. "Trending Now Movies"
func (m *Model) title() string {
	t := "PLURA  ·  "
	if m.view == catalog.MyList {
		t += catalog.MyList.Label()
	} else {
		t += catalog.CategoryLabel(m.view, m.category[m.view]) + " " + m.view.Label()
	}
	if q := strings.TrimSpace(m.search.Value()); q != "" {
		t += fmt.Sprintf("  ·  %q", q)
	}
	return t
}

func (m *Model) renderSearch() string {
	style := PillStyle
	switch {
	case m.search.Focused():
		style = ActivePillStyle
	case m.s.engine.IsFocused(searchInputID):
		style = FocusedPillStyle
	}
	return style.Width(cardWidth).Render(m.search.View())
}

// tabs renders the category tabs, one card column wide each, or the list
// heading for My List
func (m *Model) tabs() []block {
	cats := catalog.Categories(m.view)
	if len(cats) == 0 {
		return []block{{view: TitleStyle.Render(catalog.MyList.Label())}}
	}

	blocks := make([]block, 0, len(cats))
	for _, c := range cats {
		id := categoryID(c.ID)
		style := PillStyle
		switch {
		case m.s.engine.IsFocused(id):
			style = FocusedPillStyle
		case m.category[m.view] == c.ID:
			style = ActivePillStyle
		}
		blocks = append(blocks, block{
			view: style.Width(cardWidth).Align(lipgloss.Center).Render(truncate(c.Label, cardInner)),
			el:   &element{id: id, shape: focus.Rectangle, msg: switchCategoryMsg{category: c.ID}},
		})
	}
	return blocks
}

func (m *Model) navButtons() []block {
	blocks := make([]block, 0, len(catalog.Views))
	for _, v := range catalog.Views {
		id := navID(v)
		label := v.Label()
		if v == catalog.MyList && m.library.Len() > 0 {
			label = fmt.Sprintf("%s (%d)", label, m.library.Len())
		}

		style := PillStyle
		switch {
		case m.s.engine.IsFocused(id):
			style = FocusedPillStyle
		case m.view == v:
			style = ActivePillStyle
		}
		blocks = append(blocks, block{
			view: style.Render(label),
			el:   &element{id: id, shape: focus.Circle, msg: switchViewMsg{view: v}},
		})
	}
	return blocks
}

func (m *Model) footer() string {
	return FormatFooter(m.width,
		FormatKeybinding("←↑↓→", "Navigate"),
		FormatKeybinding(m.keys.Activate.Help().Key, "Select"),
		FormatKeybinding(m.keys.Search.Help().Key, "Search"),
		FormatKeybinding(m.keys.Back.Help().Key, "Back"),
		FormatKeybinding(m.keys.Quit.Help().Key, "Quit"),
	)
}

// gridItems returns the items of the active tab, the subset matching the
// search query and the category used in their card ids
func (m *Model) gridItems() (all, shown []catalog.Item, cat string) {
	cat = string(catalog.MyList)
	if m.view == catalog.MyList {
		all = m.library.Items()
	} else {
		cat = m.category[m.view]
		all = m.catalog.Items(m.view, cat)
	}
	return all, catalog.Filter(all, m.search.Value()), cat
}

// columns returns the configured column count, or as many as fit
func (m *Model) columns() int {
	if m.cfg.UI.Columns > 0 {
		return m.cfg.UI.Columns
	}
	return max(1, (m.width-2*margin+cardGap)/(cardWidth+cardGap))
}

// renderGrid lays out the cards in viewport content space
func (m *Model) renderGrid() *frame {
	g := newFrame(m.s.gridZones)
	all, items, cat := m.gridItems()

	if len(items) == 0 {
		g.blank(1)
		for _, line := range m.emptyMessage(all) {
			g.row(margin, 0, block{view: line})
		}
		return g
	}

	cols := m.columns()
	for i := 0; i < len(items); i += cols {
		row := items[i:min(i+cols, len(items))]
		blocks := make([]block, 0, len(row))
		for _, it := range row {
			id := cardID(cat, it.ID)
			blocks = append(blocks, block{
				view: m.renderCard(id, it, cat == "upcoming"),
				el:   &element{id: id, shape: focus.Rectangle, msg: openDetailMsg{item: it}},
			})
		}
		g.row(margin, cardGap, blocks...)
		g.blank(1)
	}
	g.row(margin, 0, block{view: MutedStyle.Render("You've reached the end!")})
	return g
}

func (m *Model) emptyMessage(all []catalog.Item) []string {
	if q := strings.TrimSpace(m.search.Value()); q != "" {
		lines := []string{MutedStyle.Render(fmt.Sprintf("No titles match %q.", q))}
		if it, ok := catalog.Suggest(all, q); ok {
			lines = append(lines, InfoStyle.Render(fmt.Sprintf("Did you mean %q?", it.Title)))
		}
		return lines
	}
	if m.view == catalog.MyList {
		return []string{
			TitleStyle.Render("Your List is Empty"),
			MutedStyle.Render("Add movies and shows to your list to see them here."),
		}
	}
	return []string{MutedStyle.Render("Nothing here yet.")}
}

func (m *Model) renderCard(id string, it catalog.Item, showDate bool) string {
	rating := RatingStyle.Render(fmt.Sprintf("★ %.1f", it.Rating))
	if showDate && it.ReleaseDate != "" {
		rating += MutedStyle.Render("  " + formatDate(it.ReleaseDate, "Jan 2, 2006"))
	}

	genres := make([]string, 0, len(it.Genres))
	for _, g := range it.Genres {
		genres = append(genres, g.Name)
	}

	lines := []string{
		ContentStyle.Bold(true).Render(truncate(it.Title, cardInner)),
		rating,
		MutedStyle.Render(truncate(strings.Join(genres, " · "), cardInner)),
	}

	style := CardStyle
	if m.s.engine.IsFocused(id) {
		style = FocusedCardStyle
	}
	return style.Width(cardInner + 2).Render(strings.Join(lines, "\n"))
}

// renderDetail renders the detail panel for the body area. The returned
// frame holds the panel content, whose origin sits at (2, 1) in the panel.
func (m *Model) renderDetail(bodyH int) (string, *frame) {
	it := *m.detail
	innerW := max(20, min(m.width-2*margin, 84)-4)
	in := newFrame(m.s.screenZones)

	closeID := detailID("close", it.ID)
	closeBtn := m.button(closeID, "✕")
	title := TitleStyle.Render(truncate(it.Title, innerW-lipgloss.Width(closeBtn)-1))
	in.row(0, max(1, innerW-lipgloss.Width(title)-lipgloss.Width(closeBtn)),
		block{view: title},
		block{view: closeBtn, el: &element{id: closeID, shape: focus.Circle, msg: closeDetailMsg{}}},
	)

	meta := []string{RatingStyle.Render(fmt.Sprintf("★ %.1f", it.Rating)) + MutedStyle.Render(" / 10")}
	if it.ReleaseDate != "" {
		meta = append([]string{InfoStyle.Render(formatDate(it.ReleaseDate, "January 2, 2006"))}, meta...)
	}
	meta = append(meta, MutedStyle.Render(it.TypeLabel()))
	in.text(strings.Join(meta, MutedStyle.Render("  ·  ")))
	in.blank(1)

	// Everything but the description: border, title, meta, blanks, genres,
	// buttons and the notice line
	descH := max(1, bodyH-10)
	in.text(ContentStyle.Width(innerW).MaxHeight(descH).Render(it.Description))
	in.blank(1)
	in.text(MutedStyle.Render(truncate(it.GenreNames(), innerW)))
	in.blank(1)

	addLabel := "+ Add to List"
	if m.library.Contains(it.ID) {
		addLabel = "✓ In My List"
	}
	actions := []struct {
		action string
		label  string
		msg    any
	}{
		{"watch", "▶ Watch Now", watchMsg{item: it}},
		{"trailer", "Play Trailer", trailerMsg{item: it}},
		{"add", addLabel, toggleLibraryMsg{item: it}},
	}
	buttons := make([]block, 0, len(actions))
	for _, a := range actions {
		id := detailID(a.action, it.ID)
		buttons = append(buttons, block{
			view: m.button(id, a.label),
			el:   &element{id: id, shape: focus.Rectangle, msg: a.msg},
		})
	}
	in.row(0, 2, buttons...)
	in.text(WarningStyle.Render(m.notice))

	return PanelStyle.Width(innerW + 2).Render(in.String()), in
}

func (m *Model) button(id, label string) string {
	if m.s.engine.IsFocused(id) {
		return FocusedButtonStyle.Render(label)
	}
	return ButtonStyle.Render(label)
}

// centered returns the column that centers s in width
func centered(width int, s string) int {
	return max(0, (width-lipgloss.Width(s))/2)
}

func truncate(s string, width int) string {
	return runewidth.Truncate(s, max(0, width), "…")
}

// formatDate reformats an ISO date, leaving unparseable input as is
func formatDate(s, layout string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.Format(layout)
}
