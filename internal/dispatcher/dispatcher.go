// Package dispatcher delivers outbound notifications in the background.
//
// One worker drains a bounded FIFO queue and hands each notification to the
// mail sender. Producers block while the queue is full. There is no retry and
// no dead letter: a failed send is logged and counted, then the worker moves on.
// Notifications still queued when the worker stops are lost.
//
// Example:
//
//	d := dispatcher.NewDispatcher(smtpSender, 16, metrics, logger)
//	go func() { _ = d.Run(ctx) }()
//
//	if err := d.Enqueue(reqCtx, n); err != nil {
//	    logger.Error("not queued", "error", err)
//	}
package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"storefront/internal/core/domain/model/notification"
	"storefront/internal/core/ports"
)

// DefaultCapacity is the queue size used when a non-positive capacity is given.
const DefaultCapacity = 16

var (
	// ErrQueueFull is returned when the caller's context ends while waiting for a free slot.
	ErrQueueFull = errors.New("notification queue is full")

	// ErrDispatcherStopped is returned by Enqueue once the worker has stopped.
	ErrDispatcherStopped = errors.New("notification dispatcher is stopped")

	// ErrAlreadyRunning is returned by a second call to Run.
	ErrAlreadyRunning = errors.New("notification dispatcher is already running")
)

// Recorder observes delivery outcomes.
type Recorder interface {
	NotificationSent(elapsed time.Duration)
	NotificationFailed(elapsed time.Duration)
}

// Dispatcher owns the queue and its single worker.
type Dispatcher struct {
	sender   ports.MailSender
	recorder Recorder
	logger   *slog.Logger

	queue   chan notification.Notification
	stopped chan struct{}
	started atomic.Bool
}

// NewDispatcher creates a dispatcher with the given queue capacity.
func NewDispatcher(sender ports.MailSender, capacity int, recorder Recorder, logger *slog.Logger) *Dispatcher {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Dispatcher{
		sender:   sender,
		recorder: recorder,
		logger:   logger.With("component", "dispatcher"),
		queue:    make(chan notification.Notification, capacity),
		stopped:  make(chan struct{}),
	}
}

// Enqueue hands n to the worker. It blocks while the queue is full.
func (d *Dispatcher) Enqueue(ctx context.Context, n notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	select {
	case <-d.stopped:
		return ErrDispatcherStopped
	default:
	}

	select {
	case d.queue <- n:
		return nil
	default:
	}

	d.logger.WarnContext(ctx, "queue full, waiting", "id", n.ID().String(), "capacity", cap(d.queue))

	select {
	case d.queue <- n:
		return nil
	case <-d.stopped:
		return ErrDispatcherStopped
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrQueueFull, ctx.Err())
	}
}

// Len reports how many notifications are waiting.
func (d *Dispatcher) Len() int {
	return len(d.queue)
}

// Capacity reports the queue size.
func (d *Dispatcher) Capacity() int {
	return cap(d.queue)
}

// Run processes the queue until ctx ends. A send in progress when ctx ends
// is allowed to finish. Run must be called at most once.
func (d *Dispatcher) Run(ctx context.Context) error {
	if !d.started.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	d.logger.InfoContext(ctx, "dispatcher started", "capacity", cap(d.queue))

	defer func() {
		close(d.stopped)
		if lost := len(d.queue); lost > 0 {
			d.logger.Warn("dispatcher stopped with undelivered notifications", "lost", lost)
		} else {
			d.logger.Info("dispatcher stopped")
		}
	}()

	for {
		if ctx.Err() != nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case n := <-d.queue:
			d.deliver(context.WithoutCancel(ctx), n)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, n notification.Notification) {
	start := time.Now()
	err := d.sender.Send(ctx, n)
	elapsed := time.Since(start)

	if err != nil {
		d.recorder.NotificationFailed(elapsed)
		d.logger.ErrorContext(ctx, "notification failed",
			"id", n.ID().String(),
			"to", n.To().Email,
			"elapsed", elapsed,
			"error", err,
		)
		return
	}

	d.recorder.NotificationSent(elapsed)
	d.logger.InfoContext(ctx, "notification sent",
		"id", n.ID().String(),
		"to", n.To().Email,
		"elapsed", elapsed,
	)
}
