package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrLoadItemsCommandIsNotConstructed = errors.New(
		"LoadItemsIntoContainerCommand must be created via NewLoadItemsIntoContainerCommand constructor",
	)
	ErrContainerNumberIsRequired = errors.New("container number is required")
	ErrItemIDsAreRequired        = errors.New("at least one item id is required")
)

// LoadItemsIntoContainerCommand represents a request to load a set of items
// into a shipment container. Loading the first item is what brings the
// container into existence.
type LoadItemsIntoContainerCommand struct { //nolint:recvcheck //using for validation
	containerNumber string
	itemIDs         []kernel.UUID

	guard guard.ConstructorGuard
}

// NewLoadItemsIntoContainerCommand creates a command to load items into a container.
// Validates that the container number is not empty and every item ID is valid.
func NewLoadItemsIntoContainerCommand(
	containerNumber string,
	itemIDs []kernel.UUID,
) (LoadItemsIntoContainerCommand, error) {
	loadCommand := LoadItemsIntoContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loadCommand.setContainerNumber(containerNumber),
		loadCommand.setItemIDs(itemIDs),
	); err != nil {
		return LoadItemsIntoContainerCommand{}, err
	}

	return loadCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrLoadItemsCommandIsNotConstructed if validation fails.
func (c LoadItemsIntoContainerCommand) Validate() error {
	return c.guard.Validate(ErrLoadItemsCommandIsNotConstructed)
}

// ContainerNumber returns the target container number.
func (c LoadItemsIntoContainerCommand) ContainerNumber() string {
	return c.containerNumber
}

// ItemIDs returns the identifiers of the items to load.
func (c LoadItemsIntoContainerCommand) ItemIDs() []kernel.UUID {
	return c.itemIDs
}

func (c *LoadItemsIntoContainerCommand) setContainerNumber(containerNumber string) error {
	if containerNumber == "" {
		return ErrContainerNumberIsRequired
	}

	c.containerNumber = containerNumber
	return nil
}

func (c *LoadItemsIntoContainerCommand) setItemIDs(itemIDs []kernel.UUID) error {
	if len(itemIDs) == 0 {
		return ErrItemIDsAreRequired
	}

	for _, id := range itemIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.itemIDs = itemIDs
	return nil
}
