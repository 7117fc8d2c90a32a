// Package customer contains the Customer entity. Customers are provisioned
// out of band; the freight core only reads them to resolve item tagging, so
// the entity is deliberately minimal and read-only.
package customer

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via RestoreCustomer constructor")
	// ErrNameIsRequired is returned when restoring a customer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Customer is lookup data referenced by tagged items.
type Customer struct {
	id    kernel.UUID
	name  string
	phone string

	guard guard.ConstructorGuard
}

// RestoreCustomer reconstructs a Customer from the record store. There is no
// NewCustomer: provisioning happens outside this core.
func RestoreCustomer(id kernel.UUID, name, phone string) (*Customer, error) {
	customer := &Customer{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	customer.id = id

	if name == "" {
		return nil, ErrNameIsRequired
	}
	customer.name = name

	return customer, nil
}

// Validate ensures the Customer was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || c.guard.Validate(ErrCustomerIsNotConstructed) != nil {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Phone returns the customer's contact phone number, possibly empty.
func (c *Customer) Phone() string {
	return c.phone
}
