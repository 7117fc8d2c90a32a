package commands

import (
	"context"

	"freight/internal/core/ports"
)

// RecomputeCostsCommandHandler handles the business logic for inventory-wide
// repricing. Rates are read once at the start of the run and applied to
// every item, so a whole run prices against a single rate snapshot.
type RecomputeCostsCommandHandler struct {
	uowFactory   ItemUoWFactory
	rateProvider ports.RateProvider
}

// NewRecomputeCostsCommandHandler creates a handler for repricing operations.
func NewRecomputeCostsCommandHandler(
	uowFactory ItemUoWFactory,
	rateProvider ports.RateProvider,
) RecomputeCostsCommandHandler {
	return RecomputeCostsCommandHandler{
		uowFactory:   uowFactory,
		rateProvider: rateProvider,
	}
}

// Handle processes the repricing command.
// Returns the number of items whose stored cost actually changed. The run is
// a single transaction: either the whole inventory reprices or none of it.
func (h *RecomputeCostsCommandHandler) Handle(ctx context.Context, cmd RecomputeCostsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	rates, err := h.rateProvider.Get(ctx)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.ItemRepository()
	items, err := itemRepo.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	repriced := 0
	for _, aggregate := range items {
		before := aggregate.Cost()

		if err = aggregate.Reprice(rates); err != nil {
			return 0, err
		}

		if aggregate.Cost().USD().Equal(before.USD()) && aggregate.Cost().Cedis().Equal(before.Cedis()) {
			continue
		}

		if err = itemRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
		repriced++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return repriced, nil
}
