package events

import "github.com/atomicstack/termfolio/internal/logging"

type TypingTracer struct{}

type ScrollTracer struct{}

type NavTracer struct{}

var (
	Typing = TypingTracer{}
	Scroll = ScrollTracer{}
	Nav    = NavTracer{}
)

func (TypingTracer) Start(phrases int) {
	logging.Trace("typing.start", map[string]interface{}{"phrases": phrases})
}

func (TypingTracer) Stop() {
	logging.Trace("typing.stop", nil)
}

func (TypingTracer) PhraseComplete(index int, phrase string) {
	logging.Trace("typing.phrase", map[string]interface{}{"index": index, "phrase": phrase})
}

func (ScrollTracer) Throttled(offset int) {
	logging.Trace("scroll.throttled", map[string]interface{}{"offset": offset})
}

func (ScrollTracer) Resize(width int, narrow bool) {
	logging.Trace("scroll.resize", map[string]interface{}{"width": width, "narrow": narrow})
}

func (ScrollTracer) Jump(section string, target int) {
	logging.Trace("scroll.jump", map[string]interface{}{"section": section, "target": target})
}

func (NavTracer) Active(previous, current string) {
	logging.Trace("nav.active", map[string]interface{}{"previous": previous, "section": current})
}

func (NavTracer) Navbar(hidden, scrolled bool) {
	logging.Trace("nav.navbar", map[string]interface{}{"hidden": hidden, "scrolled": scrolled})
}

func (NavTracer) MenuOpen(open bool) {
	logging.Trace("nav.menu", map[string]interface{}{"open": open})
}

func (NavTracer) MenuFilter(filter string, matches int) {
	logging.Trace("nav.menu.filter", map[string]interface{}{"filter": filter, "matches": matches})
}
