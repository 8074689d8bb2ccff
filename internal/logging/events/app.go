package events

import "github.com/atomicstack/termfolio/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) PageReady(sections int) {
	logging.Trace("app.page.ready", map[string]interface{}{"sections": sections})
}

func (AppTracer) Quit(reason string) {
	logging.Trace("app.quit", map[string]interface{}{"reason": reason})
}

func (AppTracer) ReducedMotion(enabled bool) {
	logging.Trace("app.reduced_motion", map[string]interface{}{"enabled": enabled})
}
