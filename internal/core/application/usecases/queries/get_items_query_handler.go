package queries

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"freight/internal/core/domain/model/kernel"
)

// GetItemsQueryHandler retrieves item read models from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern;
// photos are folded into each row with an ordered array aggregate.
type GetItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetItemsQueryHandler creates a handler for item retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetItemsQueryHandler(db *gorm.DB) GetItemsQueryHandler {
	return GetItemsQueryHandler{db: db}
}

// Handle executes the query to retrieve items.
// Returns item read models sorted by most recently updated first.
func (h GetItemsQueryHandler) Handle(
	ctx context.Context,
	query GetItemsQuery,
) ([]GetItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			i.id,
			i.tracking_number,
			i.customer_id,
			i.container_number,
			i.receiving_date,
			i.shipping_method,
			i.cbm,
			i.cost_usd,
			i.cost_cedis,
			i.status,
			i.is_damaged,
			i.is_missing,
			COALESCE(
				array_agg(p.url ORDER BY p.photo_order) FILTER (WHERE p.url IS NOT NULL),
				'{}'
			),
			i.updated_at
		FROM items i
		LEFT JOIN item_photos p ON p.item_id = i.id
	`

	where := ""
	args := make([]interface{}, 0, 3)

	appendCondition := func(condition string, arg interface{}) {
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		args = append(args, arg)
		where += fmt.Sprintf(condition, len(args))
	}

	if statuses := query.Statuses(); len(statuses) > 0 {
		statusStrings := make([]string, 0, len(statuses))
		for _, status := range statuses {
			statusStrings = append(statusStrings, status.String())
		}
		appendCondition("i.status = ANY($%d)", pq.Array(statusStrings))
	}

	if customerID := query.CustomerID(); customerID != nil {
		appendCondition("i.customer_id = $%d", customerID.String())
	}

	if containerNumber := query.ContainerNumber(); containerNumber != nil {
		appendCondition("i.container_number = $%d", *containerNumber)
	}

	sql += where + `
		GROUP BY i.id
		ORDER BY i.updated_at DESC
	`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetItemsQueryResponse, 0)

	for rows.Next() {
		var response GetItemsQueryResponse
		var id uuid.UUID
		var customerID *uuid.UUID
		var costUSD, costCedis string
		var photoURLs pq.StringArray

		err = rows.Scan(
			&id,
			&response.TrackingNumber,
			&customerID,
			&response.ContainerNumber,
			&response.ReceivingDate,
			&response.ShippingMethod,
			&response.CBM,
			&costUSD,
			&costCedis,
			&response.Status,
			&response.IsDamaged,
			&response.IsMissing,
			&photoURLs,
			&response.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = itemID

		if customerID != nil {
			ownerID, ownerErr := kernel.UUIDFromBytes(customerID[:])
			if ownerErr != nil {
				return nil, ownerErr
			}
			response.CustomerID = &ownerID
		}

		if response.CostUSD, err = decimal.NewFromString(costUSD); err != nil {
			return nil, err
		}
		if response.CostCedis, err = decimal.NewFromString(costCedis); err != nil {
			return nil, err
		}

		response.PhotoURLs = photoURLs
		items = append(items, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
