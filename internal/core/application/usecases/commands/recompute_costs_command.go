package commands

import (
	"errors"

	"freight/internal/pkg/guard"
)

var ErrRecomputeCostsCommandIsNotConstructed = errors.New(
	"RecomputeCostsCommand must be created via NewRecomputeCostsCommand constructor",
)

// RecomputeCostsCommand represents a request to reprice the whole inventory
// against the currently configured rates. Issued after a rate change and by
// the nightly reconciliation job.
type RecomputeCostsCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewRecomputeCostsCommand creates a command to reprice all items.
func NewRecomputeCostsCommand() (RecomputeCostsCommand, error) {
	return RecomputeCostsCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecomputeCostsCommandIsNotConstructed if validation fails.
func (c RecomputeCostsCommand) Validate() error {
	return c.guard.Validate(ErrRecomputeCostsCommandIsNotConstructed)
}
