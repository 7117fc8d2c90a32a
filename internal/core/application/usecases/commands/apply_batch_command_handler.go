package commands

import (
	"context"
	"sync"

	"freight/internal/core/domain/model/pricing"
	"freight/internal/core/ports"
)

// RowResult reports the outcome of one batch row.
// Message carries the failure reason when Success is false.
type RowResult struct {
	TrackingNumber string
	Success        bool
	Message        string
}

// BatchResult summarizes a bulk update: per-row outcomes in submission order
// plus aggregate counts.
type BatchResult struct {
	Total     int
	Succeeded int
	Failed    int
	Rows      []RowResult
}

// ApplyBatchCommandHandler handles the business logic for bulk updates.
//
// Every row runs in its own transaction on its own goroutine: a row that
// fails validation or names an unknown tracking number is reported in the
// result and never blocks or unwinds the other rows. Duplicate tracking
// numbers within one batch are therefore applied in arbitrary order.
type ApplyBatchCommandHandler struct {
	uowFactory   ItemUoWFactory
	rateProvider ports.RateProvider
}

// NewApplyBatchCommandHandler creates a handler for bulk update operations.
// Requires an ItemUoWFactory to give each row an isolated transaction and a
// RateProvider for repricing the mutated items.
func NewApplyBatchCommandHandler(
	uowFactory ItemUoWFactory,
	rateProvider ports.RateProvider,
) ApplyBatchCommandHandler {
	return ApplyBatchCommandHandler{
		uowFactory:   uowFactory,
		rateProvider: rateProvider,
	}
}

// Handle processes the bulk update command.
// Rates are read once at the start so every row of the batch prices against
// the same snapshot. The returned result has one entry per submitted row, in
// submission order; the error is reserved for command validation failures
// and the rate read.
func (h *ApplyBatchCommandHandler) Handle(ctx context.Context, cmd ApplyBatchCommand) (BatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return BatchResult{}, err
	}

	rates, err := h.rateProvider.Get(ctx)
	if err != nil {
		return BatchResult{}, err
	}

	rows := cmd.Rows()
	results := make([]RowResult, len(rows))

	var wg sync.WaitGroup
	for index, row := range rows {
		wg.Add(1)
		go func(index int, row BatchRow) {
			defer wg.Done()

			result := RowResult{TrackingNumber: row.TrackingNumber, Success: true}
			if err := h.applyRow(ctx, row, rates); err != nil {
				result.Success = false
				result.Message = err.Error()
			}
			results[index] = result
		}(index, row)
	}
	wg.Wait()

	batchResult := BatchResult{
		Total: len(rows),
		Rows:  results,
	}
	for _, result := range results {
		if result.Success {
			batchResult.Succeeded++
		} else {
			batchResult.Failed++
		}
	}

	return batchResult, nil
}

// applyRow applies one row's patch inside its own transaction.
// Container changes run before status changes so a row can load an item and
// advance it past china_warehouse in one go.
func (h *ApplyBatchCommandHandler) applyRow(ctx context.Context, row BatchRow, rates pricing.Rates) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.ItemRepository()
	aggregate, err := itemRepo.GetByTrackingNumber(ctx, row.TrackingNumber)
	if err != nil {
		return err
	}

	if row.Patch.ContainerNumber != nil {
		if *row.Patch.ContainerNumber == "" {
			err = aggregate.UnloadFromContainer()
		} else {
			err = aggregate.LoadIntoContainer(*row.Patch.ContainerNumber)
		}
		if err != nil {
			return err
		}
	}

	if row.Patch.Status != nil {
		if err = aggregate.ChangeStatus(*row.Patch.Status); err != nil {
			return err
		}
	}

	if row.Patch.Damaged != nil {
		aggregate.SetDamaged(*row.Patch.Damaged)
	}

	if row.Patch.Missing != nil {
		aggregate.SetMissing(*row.Patch.Missing)
	}

	if err = aggregate.Reprice(rates); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
