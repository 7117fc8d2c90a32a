package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrSetItemFlagCommandIsNotConstructed = errors.New(
		"SetItemFlagCommand must be created via NewSetItemFlagCommand constructor",
	)
	ErrFlagIsInvalid = errors.New("flag must be damaged or missing")
)

// ItemFlag identifies one of the exception flags an item can carry.
type ItemFlag string

const (
	// FlagDamaged marks an item that arrived with visible damage.
	FlagDamaged ItemFlag = "damaged"
	// FlagMissing marks an item that cannot be located.
	FlagMissing ItemFlag = "missing"
)

// SetItemFlagCommand represents a request to set or clear an exception flag
// on an item. Flags are independent of lifecycle status: a damaged item still
// moves through the pipeline.
type SetItemFlagCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	flag   ItemFlag
	value  bool

	guard guard.ConstructorGuard
}

// NewSetItemFlagCommand creates a command to toggle an exception flag.
// Validates that the item ID is valid and the flag is known.
func NewSetItemFlagCommand(itemID kernel.UUID, flag ItemFlag, value bool) (SetItemFlagCommand, error) {
	flagCommand := SetItemFlagCommand{
		value: value,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		flagCommand.setItemID(itemID),
		flagCommand.setFlag(flag),
	); err != nil {
		return SetItemFlagCommand{}, err
	}

	return flagCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetItemFlagCommandIsNotConstructed if validation fails.
func (c SetItemFlagCommand) Validate() error {
	return c.guard.Validate(ErrSetItemFlagCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to flag.
func (c SetItemFlagCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Flag returns which exception flag to change.
func (c SetItemFlagCommand) Flag() ItemFlag {
	return c.flag
}

// Value returns the desired flag state.
func (c SetItemFlagCommand) Value() bool {
	return c.value
}

func (c *SetItemFlagCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *SetItemFlagCommand) setFlag(flag ItemFlag) error {
	if flag != FlagDamaged && flag != FlagMissing {
		return ErrFlagIsInvalid
	}

	c.flag = flag
	return nil
}
