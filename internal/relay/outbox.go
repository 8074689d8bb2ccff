package relay

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/atomicstack/termfolio/internal/logging/events"
	"github.com/atomicstack/termfolio/internal/schedule"
	"github.com/google/uuid"
)

var (
	// ErrBusy is returned when the submission queue is full.
	ErrBusy = errors.New("relay: outbox busy")
	// ErrClosed is returned after Stop.
	ErrClosed = errors.New("relay: outbox closed")
)

// Result is the outcome of one submission.
type Result struct {
	ID      string
	Relay   string
	Message Message
	Err     error
}

// OK reports whether the message was delivered.
func (r Result) OK() bool { return r.Err == nil }

// OutboxConfig tunes the worker.
type OutboxConfig struct {
	Timeout     time.Duration // per send
	MinInterval time.Duration // between sends
	QueueSize   int
}

func DefaultOutboxConfig() OutboxConfig {
	return OutboxConfig{Timeout: 20 * time.Second, MinInterval: 2 * time.Second, QueueSize: 4}
}

type submission struct {
	id  string
	msg Message
}

// Outbox sends submissions on a background worker and publishes results.
type Outbox struct {
	relay    Relay
	timeout  time.Duration
	throttle *schedule.Throttle

	ctx    context.Context
	cancel context.CancelFunc

	queue   chan submission
	results chan Result
	wg      sync.WaitGroup
	done    chan struct{}
}

// NewOutbox starts a worker delivering through r.
func NewOutbox(r Relay, cfg OutboxConfig) *Outbox {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	o := &Outbox{
		relay:    r,
		timeout:  cfg.Timeout,
		throttle: schedule.NewThrottle(cfg.MinInterval),
		ctx:      ctx,
		cancel:   cancel,
		queue:    make(chan submission, cfg.QueueSize),
		results:  make(chan Result, cfg.QueueSize),
		done:     make(chan struct{}),
	}

	o.wg.Add(1)
	go o.run()

	go func() {
		o.wg.Wait()
		close(o.results)
		close(o.done)
	}()

	return o
}

// RelayName names the underlying relay.
func (o *Outbox) RelayName() string { return o.relay.Name() }

// Submit queues msg and returns its id without waiting for delivery.
func (o *Outbox) Submit(msg Message) (string, error) {
	if o.ctx.Err() != nil {
		return "", ErrClosed
	}
	sub := submission{id: uuid.NewString(), msg: msg}
	select {
	case o.queue <- sub:
		events.Relay.Queue(sub.id, o.relay.Name())
		return sub.id, nil
	default:
		return "", ErrBusy
	}
}

// Results returns the channel of delivery outcomes. It is closed once the
// worker exits after Stop.
func (o *Outbox) Results() <-chan Result {
	return o.results
}

// Stop cancels the worker. An in-flight send is cancelled through its
// context.
func (o *Outbox) Stop() {
	o.cancel()
}

// Wait blocks until the worker has exited and Results is closed.
func (o *Outbox) Wait() {
	<-o.done
}

func (o *Outbox) run() {
	defer o.wg.Done()
	for {
		select {
		case <-o.ctx.Done():
			return
		case sub := <-o.queue:
			if err := o.throttle.Wait(o.ctx); err != nil {
				return
			}
			res := o.deliver(sub)
			select {
			case <-o.ctx.Done():
				return
			case o.results <- res:
			}
		}
	}
}

func (o *Outbox) deliver(sub submission) Result {
	ctx := o.ctx
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(o.ctx, o.timeout)
		defer cancel()
	}
	err := o.relay.Send(ctx, sub.msg)
	if err != nil {
		events.Relay.Error(sub.id, o.relay.Name(), err)
	} else {
		events.Relay.Sent(sub.id, o.relay.Name())
	}
	return Result{ID: sub.id, Relay: o.relay.Name(), Message: sub.msg, Err: err}
}
