package commands

import (
	"context"
)

// DeleteItemCommandHandler handles the business logic for item removal.
// Container views recompute from the remaining items, so deleting the last
// member of a container also makes the container disappear.
type DeleteItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewDeleteItemCommandHandler creates a handler for item removal operations.
func NewDeleteItemCommandHandler(uowFactory ItemUoWFactory) DeleteItemCommandHandler {
	return DeleteItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete command.
// Returns ObjectNotFoundError if the item does not exist.
func (h *DeleteItemCommandHandler) Handle(ctx context.Context, cmd DeleteItemCommand) error {
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

	if err := uow.ItemRepository().Delete(ctx, cmd.ItemID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
