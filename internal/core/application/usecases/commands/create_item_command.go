package commands

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrCreateItemCommandIsNotConstructed = errors.New(
		"CreateItemCommand must be created via NewCreateItemCommand constructor",
	)
	ErrTrackingNumberIsRequired = errors.New("tracking number is required")
	ErrReceivingDateIsRequired  = errors.New("receiving date is required")
)

// CreateItemCommand represents a request to register a parcel received at the
// China warehouse. Photos are identified by URL; their position in the slice
// is their display order.
//
// Example:
//
//	itemID := kernel.NewUUID()
//	cmd, err := NewCreateItemCommand(itemID, "SF1234567890", receivingDate, photoURLs)
//	if err != nil {
//	    return fmt.Errorf("invalid intake data: %w", err)
//	}
//
//	handler := NewCreateItemCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register item: %w", err)
//	}
type CreateItemCommand struct { //nolint:recvcheck //using for validation
	itemID         kernel.UUID
	trackingNumber string
	receivingDate  time.Time
	photoURLs      []string

	guard guard.ConstructorGuard
}

// NewCreateItemCommand creates a command to register a received parcel.
// Validates that item ID is valid, tracking number is not empty, and the
// receiving date is set. Photos are optional.
func NewCreateItemCommand(
	itemID kernel.UUID,
	trackingNumber string,
	receivingDate time.Time,
	photoURLs []string,
) (CreateItemCommand, error) {
	createCommand := CreateItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		createCommand.setItemID(itemID),
		createCommand.setTrackingNumber(trackingNumber),
		createCommand.setReceivingDate(receivingDate),
	); err != nil {
		return CreateItemCommand{}, err
	}

	createCommand.photoURLs = photoURLs
	return createCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateItemCommandIsNotConstructed if validation fails.
func (c CreateItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateItemCommandIsNotConstructed)
}

// ItemID returns the unique identifier for the item.
func (c CreateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// TrackingNumber returns the carrier tracking number printed on the parcel.
func (c CreateItemCommand) TrackingNumber() string {
	return c.trackingNumber
}

// ReceivingDate returns the date the parcel was received at the warehouse.
func (c CreateItemCommand) ReceivingDate() time.Time {
	return c.receivingDate
}

// PhotoURLs returns the intake photo URLs in display order.
func (c CreateItemCommand) PhotoURLs() []string {
	return c.photoURLs
}

func (c *CreateItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *CreateItemCommand) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}

	c.trackingNumber = trackingNumber
	return nil
}

func (c *CreateItemCommand) setReceivingDate(receivingDate time.Time) error {
	if receivingDate.IsZero() {
		return ErrReceivingDateIsRequired
	}

	c.receivingDate = receivingDate
	return nil
}
