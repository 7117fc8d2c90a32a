package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"freight/internal/core/domain/model/kernel"
)

// GetAllCustomersQueryHandler retrieves all customer information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCustomersQueryHandler creates a handler for customer retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllCustomersQueryHandler(db *gorm.DB) GetAllCustomersQueryHandler {
	return GetAllCustomersQueryHandler{db: db}
}

// Handle executes the query to retrieve all customers.
// Returns a slice of customer read models sorted by name.
func (h GetAllCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCustomersQuery,
) ([]GetAllCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customers := make([]GetAllCustomersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone
		FROM customers
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var customer GetAllCustomersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&customer.Name,
			&customer.Phone,
		)
		if err != nil {
			return nil, err
		}

		customerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		customer.ID = customerID

		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
