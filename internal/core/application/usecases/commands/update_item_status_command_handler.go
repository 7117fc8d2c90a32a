package commands

import (
	"context"

	"freight/internal/core/ports"
)

// UpdateItemStatusCommandHandler handles the business logic for advancing a
// single item's lifecycle status. Status transition rules live on the
// aggregate; the handler supplies transaction management and repricing.
type UpdateItemStatusCommandHandler struct {
	uowFactory   ItemUoWFactory
	rateProvider ports.RateProvider
}

// NewUpdateItemStatusCommandHandler creates a handler for status advancement operations.
func NewUpdateItemStatusCommandHandler(
	uowFactory ItemUoWFactory,
	rateProvider ports.RateProvider,
) UpdateItemStatusCommandHandler {
	return UpdateItemStatusCommandHandler{
		uowFactory:   uowFactory,
		rateProvider: rateProvider,
	}
}

// Handle processes the status update command.
// The item is repriced with the rates in force at the moment of the change,
// so the stored cost never outlives a rate edit.
func (h *UpdateItemStatusCommandHandler) Handle(ctx context.Context, cmd UpdateItemStatusCommand) error {
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

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
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
