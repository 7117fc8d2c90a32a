// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"freight/internal/core/domain/model/item"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetItemsQueryIsNotConstructed = errors.New(
	"GetItemsQuery must be created via NewGetItemsQuery constructor",
)

// GetItemsQuery retrieves items with optional filters. All filters combine
// with AND; an empty filter set returns the whole inventory.
//
// Example:
//
//	query, err := NewGetItemsQuery([]item.Status{item.ArrivedGhana}, nil, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid filter: %w", err)
//	}
//
//	handler := NewGetItemsQueryHandler(db)
//	items, err := handler.Handle(ctx, query)
type GetItemsQuery struct {
	statuses        []item.Status
	customerID      *kernel.UUID
	containerNumber *string

	guard guard.ConstructorGuard
}

// NewGetItemsQuery creates a query to retrieve items.
// Validates every status filter value; nil filters mean "no filter".
func NewGetItemsQuery(
	statuses []item.Status,
	customerID *kernel.UUID,
	containerNumber *string,
) (GetItemsQuery, error) {
	for _, status := range statuses {
		if err := status.Validate(); err != nil {
			return GetItemsQuery{}, err
		}
	}

	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return GetItemsQuery{}, err
		}
	}

	return GetItemsQuery{
		statuses:        statuses,
		customerID:      customerID,
		containerNumber: containerNumber,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetItemsQueryIsNotConstructed if validation fails.
func (q GetItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetItemsQueryIsNotConstructed)
}

// Statuses returns the status filter, empty when unfiltered.
func (q GetItemsQuery) Statuses() []item.Status {
	return q.statuses
}

// CustomerID returns the customer filter, nil when unfiltered.
func (q GetItemsQuery) CustomerID() *kernel.UUID {
	return q.customerID
}

// ContainerNumber returns the container filter, nil when unfiltered.
func (q GetItemsQuery) ContainerNumber() *string {
	return q.containerNumber
}

// GetItemsQueryResponse represents one item in the read model. Statuses and
// shipping methods use their wire strings; money figures are exact decimals.
type GetItemsQueryResponse struct {
	ID              kernel.UUID
	TrackingNumber  string
	CustomerID      *kernel.UUID
	ContainerNumber string
	ReceivingDate   time.Time
	ShippingMethod  string
	CBM             float64
	CostUSD         decimal.Decimal
	CostCedis       decimal.Decimal
	Status          string
	IsDamaged       bool
	IsMissing       bool
	PhotoURLs       []string
	UpdatedAt       time.Time
}
