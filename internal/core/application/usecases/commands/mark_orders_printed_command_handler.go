package commands

import (
	"context"
)

// MarkOrdersPrintedCommandHandler flags orders as printed in one
// transaction. Marking is idempotent: re-printing a label leaves the flag
// set and is not an error.
type MarkOrdersPrintedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrdersPrintedCommandHandler creates a handler for print marking.
func NewMarkOrdersPrintedCommandHandler(uowFactory OrderUoWFactory) MarkOrdersPrintedCommandHandler {
	return MarkOrdersPrintedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks every order of the batch printed. The batch is atomic: a
// missing order or failed write rolls the whole marking back.
func (h *MarkOrdersPrintedCommandHandler) Handle(ctx context.Context, cmd MarkOrdersPrintedCommand) error {
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
	for _, orderID := range cmd.OrderIDs() {
		printed, err := orderRepo.Get(ctx, orderID)
		if err != nil {
			return err
		}

		printed.MarkPrinted()
		if err = orderRepo.Update(ctx, printed); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
