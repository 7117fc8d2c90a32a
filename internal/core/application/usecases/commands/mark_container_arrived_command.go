package commands

import (
	"errors"

	"freight/internal/pkg/guard"
)

var ErrMarkArrivedCommandIsNotConstructed = errors.New(
	"MarkContainerArrivedCommand must be created via NewMarkContainerArrivedCommand constructor",
)

// MarkContainerArrivedCommand represents a request to record that a container
// has arrived in Ghana, stamping every member item as arrived.
type MarkContainerArrivedCommand struct { //nolint:recvcheck //using for validation
	containerNumber string

	guard guard.ConstructorGuard
}

// NewMarkContainerArrivedCommand creates a command to mark a container arrived.
// Validates that the container number is not empty.
func NewMarkContainerArrivedCommand(containerNumber string) (MarkContainerArrivedCommand, error) {
	arrivedCommand := MarkContainerArrivedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := arrivedCommand.setContainerNumber(containerNumber); err != nil {
		return MarkContainerArrivedCommand{}, err
	}

	return arrivedCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkArrivedCommandIsNotConstructed if validation fails.
func (c MarkContainerArrivedCommand) Validate() error {
	return c.guard.Validate(ErrMarkArrivedCommandIsNotConstructed)
}

// ContainerNumber returns the number of the arriving container.
func (c MarkContainerArrivedCommand) ContainerNumber() string {
	return c.containerNumber
}

func (c *MarkContainerArrivedCommand) setContainerNumber(containerNumber string) error {
	if containerNumber == "" {
		return ErrContainerNumberIsRequired
	}

	c.containerNumber = containerNumber
	return nil
}
