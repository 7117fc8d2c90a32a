package queries

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"freight/internal/core/domain/model/item"
	"freight/internal/core/domain/services"
)

// GetContainersQueryHandler derives virtual containers from the items table.
// Reads a thin member projection with raw SQL and hands the grouping to the
// ContainerAggregator domain service, so reads and domain rules agree on
// what a container is.
type GetContainersQueryHandler struct {
	db         *gorm.DB
	aggregator services.ContainerAggregator
}

// NewGetContainersQueryHandler creates a handler for container derivation queries.
// Requires a GORM database connection for query execution.
func NewGetContainersQueryHandler(db *gorm.DB) GetContainersQueryHandler {
	return GetContainersQueryHandler{
		db:         db,
		aggregator: services.NewContainerAggregator(),
	}
}

// Handle executes the query to derive all containers.
// Returns containers ordered by container number descending.
func (h GetContainersQueryHandler) Handle(
	ctx context.Context,
	query GetContainersQuery,
) ([]GetContainersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			container_number,
			cbm,
			cost_usd,
			receiving_date,
			status
		FROM items
		WHERE container_number <> ''
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]services.ContainerMember, 0)

	for rows.Next() {
		var member services.ContainerMember
		var costUSD, status string

		err = rows.Scan(
			&member.ContainerNumber,
			&member.CBM,
			&costUSD,
			&member.ReceivingDate,
			&status,
		)
		if err != nil {
			return nil, err
		}

		if member.CostUSD, err = decimal.NewFromString(costUSD); err != nil {
			return nil, err
		}
		if member.Status, err = item.StatusFromString(status); err != nil {
			return nil, err
		}

		members = append(members, member)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	containers, err := h.aggregator.Derive(members)
	if err != nil {
		return nil, err
	}

	responses := make([]GetContainersQueryResponse, 0, len(containers))
	for _, container := range containers {
		statusCounts := make(map[string]int, len(container.StatusCounts))
		for status, count := range container.StatusCounts {
			statusCounts[status.String()] = count
		}

		responses = append(responses, GetContainersQueryResponse{
			ContainerNumber: container.ContainerNumber,
			ItemCount:       container.ItemCount,
			TotalCBM:        container.TotalCBM,
			TotalValueUSD:   container.TotalValueUSD,
			ReceivingDate:   container.ReceivingDate,
			Status:          container.Status.String(),
			StatusCounts:    statusCounts,
			Mixed:           container.Mixed,
		})
	}

	return responses, nil
}
