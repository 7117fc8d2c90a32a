package commands

import (
	"errors"

	"freight/internal/core/domain/model/item"
	"freight/internal/pkg/guard"
)

var (
	ErrApplyBatchCommandIsNotConstructed = errors.New(
		"ApplyBatchCommand must be created via NewApplyBatchCommand constructor",
	)
	ErrBatchRowsAreRequired = errors.New("at least one batch row is required")
	ErrBatchRowHasNoChanges = errors.New("batch row carries no changes")
)

// ItemPatch is the set of optional changes a batch row applies to one item.
// Nil fields are left untouched. An empty ContainerNumber unloads the item
// from its current container.
type ItemPatch struct {
	Status          *item.Status
	ContainerNumber *string
	Damaged         *bool
	Missing         *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p ItemPatch) IsEmpty() bool {
	return p.Status == nil && p.ContainerNumber == nil && p.Damaged == nil && p.Missing == nil
}

// BatchRow is one row of a bulk update, keyed by the carrier tracking number
// that supplier manifests and spreadsheets share with this system.
type BatchRow struct {
	TrackingNumber string
	Patch          ItemPatch
}

// ApplyBatchCommand represents a bulk update request, typically produced by
// parsing an uploaded manifest. Each row targets one item and carries its
// own patch; rows succeed or fail independently.
type ApplyBatchCommand struct { //nolint:recvcheck //using for validation
	rows []BatchRow

	guard guard.ConstructorGuard
}

// NewApplyBatchCommand creates a command for a bulk update.
// Validates that the batch is non-empty and every row names a tracking
// number, carries at least one change, and any status change is to a known
// status. Row-level business failures are reported per row at handle time,
// not here.
func NewApplyBatchCommand(rows []BatchRow) (ApplyBatchCommand, error) {
	batchCommand := ApplyBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := batchCommand.setRows(rows); err != nil {
		return ApplyBatchCommand{}, err
	}

	return batchCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrApplyBatchCommandIsNotConstructed if validation fails.
func (c ApplyBatchCommand) Validate() error {
	return c.guard.Validate(ErrApplyBatchCommandIsNotConstructed)
}

// Rows returns the batch rows in submission order.
func (c ApplyBatchCommand) Rows() []BatchRow {
	return c.rows
}

func (c *ApplyBatchCommand) setRows(rows []BatchRow) error {
	if len(rows) == 0 {
		return ErrBatchRowsAreRequired
	}

	for _, row := range rows {
		if row.TrackingNumber == "" {
			return ErrTrackingNumberIsRequired
		}
		if row.Patch.IsEmpty() {
			return ErrBatchRowHasNoChanges
		}
		if row.Patch.Status != nil {
			if err := row.Patch.Status.Validate(); err != nil {
				return err
			}
		}
	}

	c.rows = rows
	return nil
}
