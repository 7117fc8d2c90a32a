// Package customerrepo provides data transfer objects and mapping functions for
// customer lookups. Customers are provisioned outside this service, so the
// repository is read-only.
package customerrepo

import (
	"github.com/google/uuid"

	"freight/internal/core/domain/model/customer"
	"freight/internal/core/domain/model/kernel"
)

// CustomerDTO represents the database structure for customer records.
type CustomerDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255);not null"`
	Phone string    `gorm:"type:varchar(32);not null;default:''"`
}

// TableName specifies the database table name for customer entities.
// Overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// toDomain converts a database DTO to a customer entity.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Phone)
}
