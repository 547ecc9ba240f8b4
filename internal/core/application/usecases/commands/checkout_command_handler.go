package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"storefront/internal/core/domain/model/notification"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// DefaultCheckoutMaxAttempts bounds tracking code regeneration on collisions.
const DefaultCheckoutMaxAttempts = 5

// ErrTrackingCodeExhausted is returned when every generated tracking code collided.
var ErrTrackingCodeExhausted = errors.New("could not allocate a unique tracking code")

// CheckoutSettings carries the store-wide values every order is created with.
type CheckoutSettings struct {
	// Sender is the From address of confirmation emails and is stored on each order.
	Sender notification.Address

	// SiteURL is the public base URL placed into confirmation emails.
	SiteURL string

	// MaxAttempts is how many tracking codes to try before giving up.
	// Zero means DefaultCheckoutMaxAttempts.
	MaxAttempts int
}

// CheckoutResult is what the storefront shows after a successful checkout.
type CheckoutResult struct {
	Code         string
	Confirmation ports.ConfirmationData
}

// CheckoutCommandHandler creates orders and queues their confirmation email.
//
// Example:
//
//	handler := NewCheckoutCommandHandler(uowFactory, generator, renderer, dispatcher, metrics, settings, logger)
//	cmd, _ := NewCheckoutCommand("Ada", "3", "ada@example.com", "123-45-6789")
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	// The order exists in Shipped status; the email is on its way.
type CheckoutCommandHandler struct {
	uowFactory OrderUoWFactory
	generator  services.TrackingCodeGenerator
	renderer   ports.ConfirmationRenderer
	notifier   ports.Notifier
	recorder   ports.LifecycleRecorder
	settings   CheckoutSettings
	logger     *slog.Logger
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(
	uowFactory OrderUoWFactory,
	generator services.TrackingCodeGenerator,
	renderer ports.ConfirmationRenderer,
	notifier ports.Notifier,
	recorder ports.LifecycleRecorder,
	settings CheckoutSettings,
	logger *slog.Logger,
) CheckoutCommandHandler {
	if settings.MaxAttempts <= 0 {
		settings.MaxAttempts = DefaultCheckoutMaxAttempts
	}

	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		generator:  generator,
		renderer:   renderer,
		notifier:   notifier,
		recorder:   recorder,
		settings:   settings,
		logger:     logger.With("component", "checkout"),
	}
}

// Handle persists a new Shipped order under a fresh tracking code and
// enqueues the confirmation email.
//
// A tracking code collision is retried with a new code up to MaxAttempts
// times. Once the order is committed the checkout succeeds even if the email
// cannot be queued; that failure is only logged.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (CheckoutResult, error) {
	if err := cmd.Validate(); err != nil {
		return CheckoutResult{}, err
	}

	var code order.TrackingCode
	for attempt := 1; ; attempt++ {
		var err error
		code, err = h.create(ctx, cmd)
		if err == nil {
			break
		}

		if !errors.Is(err, errs.ErrObjectAlreadyExists) {
			return CheckoutResult{}, err
		}

		h.recorder.CheckoutCollision()
		h.logger.WarnContext(ctx, "tracking code collision", "attempt", attempt, "error", err)

		if attempt >= h.settings.MaxAttempts {
			return CheckoutResult{}, fmt.Errorf("%w after %d attempts", ErrTrackingCodeExhausted, attempt)
		}
	}

	h.recorder.OrderCreated()

	data := ports.ConfirmationData{
		Code:     code.String(),
		Name:     cmd.Name(),
		Quantity: cmd.Quantity(),
		Email:    cmd.Email(),
		SiteURL:  h.settings.SiteURL,
	}

	if err := h.notify(ctx, data); err != nil {
		h.logger.ErrorContext(ctx, "confirmation email not queued", "code", data.Code, "error", err)
	}

	return CheckoutResult{Code: data.Code, Confirmation: data}, nil
}

func (h *CheckoutCommandHandler) create(ctx context.Context, cmd CheckoutCommand) (order.TrackingCode, error) {
	code, err := h.generator.Generate()
	if err != nil {
		return order.TrackingCode{}, err
	}

	newOrder, err := order.NewOrder(
		code,
		cmd.Name(),
		cmd.Quantity(),
		cmd.Email(),
		h.settings.Sender.Email,
		cmd.Reference(),
	)
	if err != nil {
		return order.TrackingCode{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return order.TrackingCode{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return order.TrackingCode{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.TrackingCode{}, err
	}

	return code, nil
}

func (h *CheckoutCommandHandler) notify(ctx context.Context, data ports.ConfirmationData) error {
	email, err := h.renderer.RenderConfirmationEmail(data)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	n, err := notification.NewNotification(
		h.settings.Sender,
		notification.Address{Name: data.Name, Email: data.Email},
		email.Subject,
		email.HTMLBody,
	)
	if err != nil {
		return err
	}

	return h.notifier.Enqueue(ctx, n)
}
