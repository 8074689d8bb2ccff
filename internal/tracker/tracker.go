package tracker

import "github.com/atomicstack/termfolio/internal/logging/events"

// Result describes what one evaluation changed.
type Result struct {
	Active        string
	ActiveChanged bool
	Hidden        bool
	Scrolled      bool
	ShowTop       bool
	Narrow        bool
	MenuClosed    bool
}

// Tracker keeps the active section and navbar state current. It is driven by
// the host's scroll and resize signals and is not safe for concurrent use;
// the host serialises calls.
type Tracker struct {
	metrics  Metrics
	viewport Viewport
	layout   Layout
	menu     Menu
	nav      *Nav

	active  string
	last    int
	narrow  bool
	showTop bool
}

// New wires a tracker to its inputs. menu may be nil when the host has no
// overlay menu.
func New(metrics Metrics, viewport Viewport, layout Layout, menu Menu, nav *Nav) *Tracker {
	return &Tracker{
		metrics:  metrics,
		viewport: viewport,
		layout:   layout,
		menu:     menu,
		nav:      nav,
		narrow:   metrics.Narrow(viewport.Width()),
	}
}

func (t *Tracker) Active() string   { return t.active }
func (t *Tracker) Nav() *Nav        { return t.nav }
func (t *Tracker) Narrow() bool     { return t.narrow }
func (t *Tracker) Metrics() Metrics { return t.metrics }
func (t *Tracker) ShowTop() bool    { return t.showTop }

// OnScrollOrResize runs one full evaluation: navbar visibility, scrolled
// style, last position, active section and link highlight.
func (t *Tracker) OnScrollOrResize() Result {
	pos := t.viewport.ScrollOffset()
	t.narrow = t.metrics.Narrow(t.viewport.Width())

	hidden := false
	if t.menu == nil || !t.menu.MenuOpen() {
		hidden = pos > t.last && pos > t.metrics.HideAfter
	}
	scrolled := pos > t.metrics.ScrolledAt(t.narrow)
	if hidden != t.nav.hidden || scrolled != t.nav.scrolled {
		events.Nav.Navbar(hidden, scrolled)
	}
	t.nav.hidden = hidden
	t.nav.scrolled = scrolled
	t.last = pos
	t.showTop = pos > t.metrics.ScrollTopAfter

	res := Result{Hidden: hidden, Scrolled: scrolled, ShowTop: t.showTop, Narrow: t.narrow}
	current := ActiveSection(t.layout.Sections(), t.metrics.Offset(t.narrow), pos)
	if current != t.active {
		events.Nav.Active(t.active, current)
		t.active = current
		t.nav.Highlight(current)
		res.ActiveChanged = true
	}
	res.Active = t.active
	return res
}

// OnResize re-categorises the viewport and re-evaluates. Leaving the narrow
// layout closes an open menu.
func (t *Tracker) OnResize() Result {
	wasNarrow := t.narrow
	width := t.viewport.Width()
	narrow := t.metrics.Narrow(width)
	closed := false
	if wasNarrow && !narrow && t.menu != nil && t.menu.MenuOpen() {
		t.menu.CloseMenu()
		closed = true
	}
	if wasNarrow != narrow {
		events.Scroll.Resize(width, narrow)
	}
	res := t.OnScrollOrResize()
	res.MenuClosed = closed
	return res
}
