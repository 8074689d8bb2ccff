package testutil

import (
	"fmt"
	"sync"

	"github.com/atomicstack/termfolio/internal/relay"
)

// Outbox records submissions without delivering them. Results are never
// published; tests feed outcomes to the consumer directly.
type Outbox struct {
	// Err, when set, is returned by Submit instead of queueing.
	Err error

	mu   sync.Mutex
	sent []relay.Message
}

// Submit records msg and returns a sequential id.
func (o *Outbox) Submit(msg relay.Message) (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.Err != nil {
		return "", o.Err
	}
	o.sent = append(o.sent, msg)
	return fmt.Sprintf("msg-%d", len(o.sent)), nil
}

// Results returns a channel that never delivers.
func (o *Outbox) Results() <-chan relay.Result {
	return nil
}

// Sent returns a copy of the recorded messages.
func (o *Outbox) Sent() []relay.Message {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]relay.Message(nil), o.sent...)
}
