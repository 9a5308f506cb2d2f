package commands

import (
	"context"
)

// CancelOrderCommandHandler deletes an order.
//
// Example:
//
//	removed, err := handler.Handle(ctx, cmd)
//	if err == nil && removed == 0 {
//	    // there was nothing to cancel
//	}
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for cancellations.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the order and returns how many rows went away (0 or 1).
// Cancelling a missing order is not an error.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.OrderRepository().Delete(ctx, cmd.Username(), cmd.PackageID())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
