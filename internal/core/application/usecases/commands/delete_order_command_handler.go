package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/ports"
)

// DeleteOrderCommandHandler removes orders on the administrator's request.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	recorder   ports.LifecycleRecorder
	logger     *slog.Logger
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	recorder ports.LifecycleRecorder,
	logger *slog.Logger,
) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		recorder:   recorder,
		logger:     logger.With("component", "order_delete"),
	}
}

// Handle deletes the order. Returns errs.ErrObjectNotFound for unknown codes.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	if err := uow.OrderRepository().Delete(ctx, cmd.Code()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.recorder.OrderDeleted()
	h.logger.InfoContext(ctx, "order deleted", "code", cmd.Code().String())

	return nil
}
