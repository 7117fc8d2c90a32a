package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrUnloadItemCommandIsNotConstructed = errors.New(
	"UnloadItemFromContainerCommand must be created via NewUnloadItemFromContainerCommand constructor",
)

// UnloadItemFromContainerCommand represents a request to take an item back
// out of its container, returning it to the warehouse flow.
type UnloadItemFromContainerCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUnloadItemFromContainerCommand creates a command to unload an item.
func NewUnloadItemFromContainerCommand(itemID kernel.UUID) (UnloadItemFromContainerCommand, error) {
	unloadCommand := UnloadItemFromContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := unloadCommand.setItemID(itemID); err != nil {
		return UnloadItemFromContainerCommand{}, err
	}

	return unloadCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUnloadItemCommandIsNotConstructed if validation fails.
func (c UnloadItemFromContainerCommand) Validate() error {
	return c.guard.Validate(ErrUnloadItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to unload.
func (c UnloadItemFromContainerCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *UnloadItemFromContainerCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
