// Package relay hands contact-form messages to an external delivery service.
// The service is opaque: a send either succeeds or fails, and the caller only
// uses that outcome to pick a notification.
package relay

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by relays missing required credentials.
var ErrNotConfigured = errors.New("relay: not configured")

// Message is one contact-form submission.
type Message struct {
	Name  string
	Email string
	Body  string
}

// Relay delivers messages.
type Relay interface {
	Name() string
	Send(ctx context.Context, msg Message) error
}

// Discard accepts and drops every message. Used when no relay is configured
// and in tests.
type Discard struct{}

func (Discard) Name() string { return "none" }

func (Discard) Send(ctx context.Context, _ Message) error { return ctx.Err() }

// Func adapts a function to Relay.
type Func func(ctx context.Context, msg Message) error

func (Func) Name() string { return "func" }

func (f Func) Send(ctx context.Context, msg Message) error { return f(ctx, msg) }
