package commands

import (
	"context"

	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// MarkContainerArrivedCommandHandler handles the business logic for container
// arrival. Every member item is forced to arrived_ghana in one transaction,
// including members an operator had already advanced past arrival; members
// already at arrived_ghana are skipped, so repeating the command is harmless.
type MarkContainerArrivedCommandHandler struct {
	uowFactory   ItemUoWFactory
	rateProvider ports.RateProvider
}

// NewMarkContainerArrivedCommandHandler creates a handler for container arrival operations.
func NewMarkContainerArrivedCommandHandler(
	uowFactory ItemUoWFactory,
	rateProvider ports.RateProvider,
) MarkContainerArrivedCommandHandler {
	return MarkContainerArrivedCommandHandler{
		uowFactory:   uowFactory,
		rateProvider: rateProvider,
	}
}

// Handle processes the arrival command.
// Rates are read once so every stamped member prices against the same
// snapshot. Returns the number of items whose status actually changed. A
// container number no item references yields an ObjectNotFoundError.
func (h *MarkContainerArrivedCommandHandler) Handle(ctx context.Context, cmd MarkContainerArrivedCommand) (int, error) {
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
	members, err := itemRepo.GetByContainer(ctx, cmd.ContainerNumber())
	if err != nil {
		return 0, err
	}

	if len(members) == 0 {
		return 0, errs.NewObjectNotFoundError("containerNumber", cmd.ContainerNumber())
	}

	updated := 0
	for _, member := range members {
		if !member.MarkArrived() {
			continue
		}

		if err = member.Reprice(rates); err != nil {
			return 0, err
		}

		if err = itemRepo.Update(ctx, member); err != nil {
			return 0, err
		}
		updated++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return updated, nil
}
