package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"freight/internal/pkg/guard"
)

var ErrGetContainersQueryIsNotConstructed = errors.New(
	"GetContainersQuery must be created via NewGetContainersQuery constructor",
)

// GetContainersQuery retrieves the virtual container list. Containers are
// never stored, so every execution derives them fresh from the current items.
//
// Example:
//
//	query := NewGetContainersQuery()
//	handler := NewGetContainersQueryHandler(db)
//
//	containers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve containers: %w", err)
//	}
type GetContainersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetContainersQuery creates a query to derive all containers.
// This is a parameterless query over the full inventory.
func NewGetContainersQuery() GetContainersQuery {
	return GetContainersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetContainersQueryIsNotConstructed if validation fails.
func (q GetContainersQuery) Validate() error {
	return q.guard.Validate(ErrGetContainersQueryIsNotConstructed)
}

// GetContainersQueryResponse represents one derived container in the read
// model. StatusCounts always carries the full per-status breakdown; Status is
// the shared wire string only when every member agrees, otherwise Mixed is
// set and Status is "unknown".
type GetContainersQueryResponse struct {
	ContainerNumber string
	ItemCount       int
	TotalCBM        float64
	TotalValueUSD   decimal.Decimal
	ReceivingDate   time.Time
	Status          string
	StatusCounts    map[string]int
	Mixed           bool
}
