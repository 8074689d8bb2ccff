// Package tracker decides which page section is in view and keeps the
// navigation bar in sync with it. All positions are abstract units; the host
// scales terminal cells into units before calling in.
package tracker

// Section is one tracked block of the page.
type Section struct {
	ID     string
	Top    int
	Height int
}

// Viewport is the host's scroll position and width.
type Viewport interface {
	ScrollOffset() int
	Width() int
}

// Layout reports section geometry. It is read on every evaluation and never
// cached, so a relayout is picked up by the next scroll or resize.
type Layout interface {
	Sections() []Section
}

// Menu is the navigation overlay owned by the host.
type Menu interface {
	MenuOpen() bool
	CloseMenu()
}

// Metrics are the breakpoints and thresholds of the tracker.
type Metrics struct {
	NarrowWidth    int // widths at or below this are narrow
	HideAfter      int // navbar may hide only past this offset
	ScrolledNarrow int
	ScrolledWide   int
	OffsetNarrow   int
	OffsetWide     int
	ScrollTopAfter int
}

func DefaultMetrics() Metrics {
	return Metrics{
		NarrowWidth:    768,
		HideAfter:      200,
		ScrolledNarrow: 50,
		ScrolledWide:   100,
		OffsetNarrow:   120,
		OffsetWide:     150,
		ScrollTopAfter: 300,
	}
}

// Narrow reports whether width counts as a narrow viewport.
func (m Metrics) Narrow(width int) bool {
	return width <= m.NarrowWidth
}

// Offset returns the section lead-in for the viewport class.
func (m Metrics) Offset(narrow bool) int {
	if narrow {
		return m.OffsetNarrow
	}
	return m.OffsetWide
}

// ScrolledAt returns the offset past which the navbar switches to its
// scrolled style.
func (m Metrics) ScrolledAt(narrow bool) int {
	if narrow {
		return m.ScrolledNarrow
	}
	return m.ScrolledWide
}

// ActiveSection returns the id of the section whose offset-adjusted interval
// [Top-offset, Top-offset+Height) contains pos. When several match, the last
// one in document order wins. No match yields "".
func ActiveSection(sections []Section, offset, pos int) string {
	current := ""
	for _, s := range sections {
		top := s.Top - offset
		if pos >= top && pos < top+s.Height {
			current = s.ID
		}
	}
	return current
}
