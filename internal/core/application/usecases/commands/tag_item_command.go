package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/pricing"
	"freight/internal/pkg/guard"
)

var ErrTagItemCommandIsNotConstructed = errors.New(
	"TagItemCommand must be created via NewTagItemCommand constructor",
)

// TagItemCommand represents a request to attach a customer and shipping
// method to a received item. Dimensions and weight are optional at the
// command level; the aggregate enforces which measurement the chosen
// shipping method requires.
//
// Example:
//
//	dims, _ := pricing.NewDimensions(100, 50, 40, pricing.Centimeters)
//	cmd, err := NewTagItemCommand(itemID, customerID, pricing.Sea, &dims, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid tagging data: %w", err)
//	}
//
//	handler := NewTagItemCommandHandler(uowFactory, rateProvider)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to tag item: %w", err)
//	}
type TagItemCommand struct { //nolint:recvcheck //using for validation
	itemID         kernel.UUID
	customerID     kernel.UUID
	shippingMethod pricing.Method
	dimensions     *pricing.Dimensions
	weight         *pricing.Weight

	guard guard.ConstructorGuard
}

// NewTagItemCommand creates a command to tag an item for a customer.
// Validates that both identifiers are valid and the shipping method is known.
func NewTagItemCommand(
	itemID kernel.UUID,
	customerID kernel.UUID,
	shippingMethod pricing.Method,
	dimensions *pricing.Dimensions,
	weight *pricing.Weight,
) (TagItemCommand, error) {
	tagCommand := TagItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tagCommand.setItemID(itemID),
		tagCommand.setCustomerID(customerID),
		tagCommand.setShippingMethod(shippingMethod),
	); err != nil {
		return TagItemCommand{}, err
	}

	tagCommand.dimensions = dimensions
	tagCommand.weight = weight
	return tagCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTagItemCommandIsNotConstructed if validation fails.
func (c TagItemCommand) Validate() error {
	return c.guard.Validate(ErrTagItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to tag.
func (c TagItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// CustomerID returns the identifier of the owning customer.
func (c TagItemCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ShippingMethod returns the selected shipping method.
func (c TagItemCommand) ShippingMethod() pricing.Method {
	return c.shippingMethod
}

// Dimensions returns the measured dimensions, or nil if not measured.
func (c TagItemCommand) Dimensions() *pricing.Dimensions {
	return c.dimensions
}

// Weight returns the measured weight, or nil if not measured.
func (c TagItemCommand) Weight() *pricing.Weight {
	return c.weight
}

func (c *TagItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *TagItemCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *TagItemCommand) setShippingMethod(shippingMethod pricing.Method) error {
	if err := shippingMethod.Validate(); err != nil {
		return err
	}

	c.shippingMethod = shippingMethod
	return nil
}
