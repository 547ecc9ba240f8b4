package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/ports"
)

// ChangeOrderStatusCommandHandler applies an operator transition to one order.
// Advancing a Delivered order or reverting a Shipped one succeeds without change.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	recorder   ports.LifecycleRecorder
	logger     *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	recorder ports.LifecycleRecorder,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		recorder:   recorder,
		logger:     logger.With("component", "order_status"),
	}
}

// Handle loads the order, applies the transition and saves it in one transaction.
// Returns errs.ErrObjectNotFound for unknown codes.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.Code())
	if err != nil {
		return err
	}

	from := o.Status()
	if err = o.Apply(cmd.Transition()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.recorder.OrderStatusChanged(cmd.Transition().String())
	h.logger.InfoContext(ctx, "order status changed",
		"code", cmd.Code().String(),
		"transition", cmd.Transition().String(),
		"from", from.String(),
		"to", o.Status().String(),
	)

	return nil
}
