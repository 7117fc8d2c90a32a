package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrDeleteItemCommandIsNotConstructed = errors.New(
	"DeleteItemCommand must be created via NewDeleteItemCommand constructor",
)

// DeleteItemCommand represents a request to permanently remove an item.
// There is no soft delete: the record and its photos are gone once the
// command commits.
type DeleteItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteItemCommand creates a command to delete an item.
func NewDeleteItemCommand(itemID kernel.UUID) (DeleteItemCommand, error) {
	deleteCommand := DeleteItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deleteCommand.setItemID(itemID); err != nil {
		return DeleteItemCommand{}, err
	}

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteItemCommandIsNotConstructed if validation fails.
func (c DeleteItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to delete.
func (c DeleteItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *DeleteItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
