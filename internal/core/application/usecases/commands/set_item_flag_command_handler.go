package commands

import (
	"context"

	"freight/internal/core/ports"
)

// SetItemFlagCommandHandler handles the business logic for toggling an
// item's exception flags.
type SetItemFlagCommandHandler struct {
	uowFactory   ItemUoWFactory
	rateProvider ports.RateProvider
}

// NewSetItemFlagCommandHandler creates a handler for flag toggle operations.
func NewSetItemFlagCommandHandler(
	uowFactory ItemUoWFactory,
	rateProvider ports.RateProvider,
) SetItemFlagCommandHandler {
	return SetItemFlagCommandHandler{
		uowFactory:   uowFactory,
		rateProvider: rateProvider,
	}
}

// Handle processes the flag command.
// Setting a flag to its current value is a no-op that still succeeds. The
// item is repriced with the current rates before persisting, like every
// other mutation.
func (h *SetItemFlagCommandHandler) Handle(ctx context.Context, cmd SetItemFlagCommand) error {
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

	switch cmd.Flag() {
	case FlagDamaged:
		aggregate.SetDamaged(cmd.Value())
	case FlagMissing:
		aggregate.SetMissing(cmd.Value())
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
