package commands

import (
	"context"

	"freight/internal/core/ports"
)

// UnloadItemFromContainerCommandHandler handles the business logic for
// removing a single item from its container. Unloading clears the container
// reference and resets the item to china_warehouse; if it was the last
// member, the container simply ceases to exist.
type UnloadItemFromContainerCommandHandler struct {
	uowFactory   ItemUoWFactory
	rateProvider ports.RateProvider
}

// NewUnloadItemFromContainerCommandHandler creates a handler for unload operations.
func NewUnloadItemFromContainerCommandHandler(
	uowFactory ItemUoWFactory,
	rateProvider ports.RateProvider,
) UnloadItemFromContainerCommandHandler {
	return UnloadItemFromContainerCommandHandler{
		uowFactory:   uowFactory,
		rateProvider: rateProvider,
	}
}

// Handle processes the unload command.
// The item must currently be assigned to a container. Measurements survive
// unloading, so the item is repriced with the current rates on the way out.
func (h *UnloadItemFromContainerCommandHandler) Handle(ctx context.Context, cmd UnloadItemFromContainerCommand) error {
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

	itemRepo := uow.ItemRepository()
	aggregate, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = aggregate.UnloadFromContainer(); err != nil {
		return err
	}

	rates, err := h.rateProvider.Get(ctx)
	if err != nil {
		return err
	}

	if err = aggregate.Reprice(rates); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
