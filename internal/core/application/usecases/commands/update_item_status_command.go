package commands

import (
	"errors"

	"freight/internal/core/domain/model/item"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrUpdateItemStatusCommandIsNotConstructed = errors.New(
	"UpdateItemStatusCommand must be created via NewUpdateItemStatusCommand constructor",
)

// UpdateItemStatusCommand represents a request to advance an item to a later
// lifecycle status. Skipping intermediate statuses is allowed; moving
// backward is not.
type UpdateItemStatusCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	status item.Status

	guard guard.ConstructorGuard
}

// NewUpdateItemStatusCommand creates a command to advance an item's status.
// Validates that the item ID is valid and the target status is known.
func NewUpdateItemStatusCommand(itemID kernel.UUID, status item.Status) (UpdateItemStatusCommand, error) {
	statusCommand := UpdateItemStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setItemID(itemID),
		statusCommand.setStatus(status),
	); err != nil {
		return UpdateItemStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateItemStatusCommandIsNotConstructed if validation fails.
func (c UpdateItemStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemStatusCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to advance.
func (c UpdateItemStatusCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Status returns the target lifecycle status.
func (c UpdateItemStatusCommand) Status() item.Status {
	return c.status
}

func (c *UpdateItemStatusCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *UpdateItemStatusCommand) setStatus(status item.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
