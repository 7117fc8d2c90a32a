package commands

import (
	"context"

	"freight/internal/core/ports"
)

// TagItemCommandHandler handles the business logic for item tagging.
// Resolves the customer, applies the tagging to the aggregate, and reprices
// the item with the rates in force at the moment of the change.
type TagItemCommandHandler struct {
	uowFactory   UoWFactory
	rateProvider ports.RateProvider
}

// NewTagItemCommandHandler creates a handler for item tagging operations.
// Requires a UoWFactory spanning items and customers, and a RateProvider
// for cost recomputation.
func NewTagItemCommandHandler(uowFactory UoWFactory, rateProvider ports.RateProvider) TagItemCommandHandler {
	return TagItemCommandHandler{
		uowFactory:   uowFactory,
		rateProvider: rateProvider,
	}
}

// Handle processes the tagging command.
// The customer must exist; the aggregate enforces the measurement rules for
// the chosen shipping method. Cost is recomputed before persisting so the
// stored figures always reflect the new tagging.
func (h *TagItemCommandHandler) Handle(ctx context.Context, cmd TagItemCommand) error {
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

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	itemRepo := uow.ItemRepository()
	aggregate, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = aggregate.Tag(cmd.CustomerID(), cmd.ShippingMethod(), cmd.Dimensions(), cmd.Weight()); err != nil {
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
