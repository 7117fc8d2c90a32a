package commands

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/pricing"
	"freight/internal/core/ports"
)

// LoadItemResult reports the outcome of loading one item into a container.
// Message carries the failure reason when Success is false.
type LoadItemResult struct {
	ItemID  kernel.UUID
	Success bool
	Message string
}

// LoadItemsIntoContainerCommandHandler handles the business logic for
// container loading. Each item is loaded in its own transaction: one item
// failing to load never unwinds the items already loaded, and the caller
// receives a per-item outcome instead of a single error.
type LoadItemsIntoContainerCommandHandler struct {
	uowFactory   ItemUoWFactory
	rateProvider ports.RateProvider
}

// NewLoadItemsIntoContainerCommandHandler creates a handler for container
// loading operations. Requires an ItemUoWFactory for per-item transactions
// and a RateProvider for repricing the loaded items.
func NewLoadItemsIntoContainerCommandHandler(
	uowFactory ItemUoWFactory,
	rateProvider ports.RateProvider,
) LoadItemsIntoContainerCommandHandler {
	return LoadItemsIntoContainerCommandHandler{
		uowFactory:   uowFactory,
		rateProvider: rateProvider,
	}
}

// Handle processes the container loading command.
// Items are loaded in submission order. Rates are read once at the start so
// every item of the load prices against the same snapshot. The returned
// slice has one entry per requested item; the error is reserved for command
// validation failures and the rate read.
func (h *LoadItemsIntoContainerCommandHandler) Handle(
	ctx context.Context,
	cmd LoadItemsIntoContainerCommand,
) ([]LoadItemResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	rates, err := h.rateProvider.Get(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]LoadItemResult, 0, len(cmd.ItemIDs()))
	for _, itemID := range cmd.ItemIDs() {
		result := LoadItemResult{ItemID: itemID, Success: true}
		if err := h.loadOne(ctx, itemID, cmd.ContainerNumber(), rates); err != nil {
			result.Success = false
			result.Message = err.Error()
		}
		results = append(results, result)
	}

	return results, nil
}

func (h *LoadItemsIntoContainerCommandHandler) loadOne(
	ctx context.Context,
	itemID kernel.UUID,
	containerNumber string,
	rates pricing.Rates,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.ItemRepository()
	aggregate, err := itemRepo.Get(ctx, itemID)
	if err != nil {
		return err
	}

	if err = aggregate.LoadIntoContainer(containerNumber); err != nil {
		return err
	}

	if err = aggregate.Reprice(rates); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
