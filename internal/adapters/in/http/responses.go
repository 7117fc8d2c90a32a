package http

import (
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
)

// ItemResponse is the JSON representation of one item read model.
// Money amounts are decimal strings.
type ItemResponse struct {
	ID              string    `json:"id"`
	TrackingNumber  string    `json:"trackingNumber"`
	CustomerID      *string   `json:"customerId,omitempty"`
	ContainerNumber string    `json:"containerNumber"`
	ReceivingDate   time.Time `json:"receivingDate"`
	ShippingMethod  string    `json:"shippingMethod"`
	CBM             float64   `json:"cbm"`
	CostUSD         string    `json:"costUsd"`
	CostCedis       string    `json:"costCedis"`
	Status          string    `json:"status"`
	IsDamaged       bool      `json:"isDamaged"`
	IsMissing       bool      `json:"isMissing"`
	PhotoURLs       []string  `json:"photoUrls"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ContainerResponse is the JSON representation of one derived container.
type ContainerResponse struct {
	ContainerNumber string         `json:"containerNumber"`
	ItemCount       int            `json:"itemCount"`
	TotalCBM        float64        `json:"totalCbm"`
	TotalValueUSD   string         `json:"totalValueUsd"`
	ReceivingDate   time.Time      `json:"receivingDate"`
	Status          string         `json:"status"`
	StatusCounts    map[string]int `json:"statusCounts"`
	Mixed           bool           `json:"mixed"`
}

// CustomerResponse is the JSON representation of one customer.
type CustomerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// LoadItemResponse reports one item's outcome of a container load.
type LoadItemResponse struct {
	ItemID  string `json:"itemId"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// BatchRowResponse reports one row's outcome of a bulk update.
type BatchRowResponse struct {
	TrackingNumber string `json:"trackingNumber"`
	Success        bool   `json:"success"`
	Message        string `json:"message,omitempty"`
}

// BatchResponse summarizes a bulk update.
type BatchResponse struct {
	Total     int                `json:"total"`
	Succeeded int                `json:"succeeded"`
	Failed    int                `json:"failed"`
	Rows      []BatchRowResponse `json:"rows"`
}

func toItemResponses(items []queries.GetItemsQueryResponse) []ItemResponse {
	response := make([]ItemResponse, len(items))
	for i, it := range items {
		var customerID *string
		if it.CustomerID != nil {
			id := it.CustomerID.String()
			customerID = &id
		}

		photoURLs := it.PhotoURLs
		if photoURLs == nil {
			photoURLs = []string{}
		}

		response[i] = ItemResponse{
			ID:              it.ID.String(),
			TrackingNumber:  it.TrackingNumber,
			CustomerID:      customerID,
			ContainerNumber: it.ContainerNumber,
			ReceivingDate:   it.ReceivingDate,
			ShippingMethod:  it.ShippingMethod,
			CBM:             it.CBM,
			CostUSD:         it.CostUSD.String(),
			CostCedis:       it.CostCedis.String(),
			Status:          it.Status,
			IsDamaged:       it.IsDamaged,
			IsMissing:       it.IsMissing,
			PhotoURLs:       photoURLs,
			UpdatedAt:       it.UpdatedAt,
		}
	}
	return response
}

func toContainerResponses(containers []queries.GetContainersQueryResponse) []ContainerResponse {
	response := make([]ContainerResponse, len(containers))
	for i, c := range containers {
		response[i] = ContainerResponse{
			ContainerNumber: c.ContainerNumber,
			ItemCount:       c.ItemCount,
			TotalCBM:        c.TotalCBM,
			TotalValueUSD:   c.TotalValueUSD.String(),
			ReceivingDate:   c.ReceivingDate,
			Status:          c.Status,
			StatusCounts:    c.StatusCounts,
			Mixed:           c.Mixed,
		}
	}
	return response
}

func toCustomerResponses(customers []queries.GetAllCustomersQueryResponse) []CustomerResponse {
	response := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		response[i] = CustomerResponse{
			ID:    c.ID.String(),
			Name:  c.Name,
			Phone: c.Phone,
		}
	}
	return response
}

func toLoadItemResponses(results []commands.LoadItemResult) []LoadItemResponse {
	response := make([]LoadItemResponse, len(results))
	for i, r := range results {
		response[i] = LoadItemResponse{
			ItemID:  r.ItemID.String(),
			Success: r.Success,
			Message: r.Message,
		}
	}
	return response
}

func toBatchResponse(result commands.BatchResult) BatchResponse {
	rows := make([]BatchRowResponse, len(result.Rows))
	for i, r := range result.Rows {
		rows[i] = BatchRowResponse{
			TrackingNumber: r.TrackingNumber,
			Success:        r.Success,
			Message:        r.Message,
		}
	}
	return BatchResponse{
		Total:     result.Total,
		Succeeded: result.Succeeded,
		Failed:    result.Failed,
		Rows:      rows,
	}
}
