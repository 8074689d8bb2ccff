package events

import "github.com/atomicstack/termfolio/internal/logging"

type ContactTracer struct{}

type RelayTracer struct{}

type contactReason string

const (
	ContactReasonInvalid contactReason = "invalid"
	ContactReasonBusy    contactReason = "busy"
)

var (
	Contact = ContactTracer{}
	Relay   = RelayTracer{}
)

func (ContactTracer) Focus(field string) {
	logging.Trace("contact.focus", map[string]interface{}{"field": field})
}

func (ContactTracer) Submit(name, email string) {
	logging.Trace("contact.submit", map[string]interface{}{"name": name, "email": email})
}

func (ContactTracer) Reject(reason contactReason, fields []string) {
	logging.Trace("contact.reject", map[string]interface{}{"reason": string(reason), "fields": fields})
}

func (ContactTracer) Outcome(id string, ok bool) {
	logging.Trace("contact.outcome", map[string]interface{}{"id": id, "ok": ok})
}

func (RelayTracer) Queue(id, relay string) {
	logging.Trace("relay.queue", map[string]interface{}{"id": id, "relay": relay})
}

func (RelayTracer) Sent(id, relay string) {
	logging.Trace("relay.sent", map[string]interface{}{"id": id, "relay": relay})
}

func (RelayTracer) Error(id, relay string, err error) {
	if err == nil {
		return
	}
	logging.Trace("relay.error", map[string]interface{}{"id": id, "relay": relay, "error": err.Error()})
}
