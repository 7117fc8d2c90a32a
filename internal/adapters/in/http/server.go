// Package http exposes the freight tracking use cases over a REST API.
// Handlers bind and validate request payloads, translate them into commands
// and queries, and map domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/item"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/pricing"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Error is the JSON error body returned by every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RatesResponse is the JSON representation of the pricing rates settings.
type RatesResponse struct {
	CBMRateUSD         string `json:"cbmRateUsd"`
	WeightRateUSDPerKg string `json:"weightRateUsdPerKg"`
	USDToGHSRate       string `json:"usdToGhsRate"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	validate *validator.Validate

	// Command handlers
	createItemHandler           commands.CreateItemCommandHandler
	tagItemHandler              commands.TagItemCommandHandler
	loadItemsHandler            commands.LoadItemsIntoContainerCommandHandler
	unloadItemHandler           commands.UnloadItemFromContainerCommandHandler
	markContainerArrivedHandler commands.MarkContainerArrivedCommandHandler
	updateItemStatusHandler     commands.UpdateItemStatusCommandHandler
	setItemFlagHandler          commands.SetItemFlagCommandHandler
	applyBatchHandler           commands.ApplyBatchCommandHandler
	deleteItemHandler           commands.DeleteItemCommandHandler
	recomputeCostsHandler       commands.RecomputeCostsCommandHandler

	// Query handlers
	getItemsHandler        queries.GetItemsQueryHandler
	getContainersHandler   queries.GetContainersQueryHandler
	getAllCustomersHandler queries.GetAllCustomersQueryHandler

	// Rates administration
	rateStore ports.RateStore
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createItemHandler commands.CreateItemCommandHandler,
	tagItemHandler commands.TagItemCommandHandler,
	loadItemsHandler commands.LoadItemsIntoContainerCommandHandler,
	unloadItemHandler commands.UnloadItemFromContainerCommandHandler,
	markContainerArrivedHandler commands.MarkContainerArrivedCommandHandler,
	updateItemStatusHandler commands.UpdateItemStatusCommandHandler,
	setItemFlagHandler commands.SetItemFlagCommandHandler,
	applyBatchHandler commands.ApplyBatchCommandHandler,
	deleteItemHandler commands.DeleteItemCommandHandler,
	recomputeCostsHandler commands.RecomputeCostsCommandHandler,
	getItemsHandler queries.GetItemsQueryHandler,
	getContainersHandler queries.GetContainersQueryHandler,
	getAllCustomersHandler queries.GetAllCustomersQueryHandler,
	rateStore ports.RateStore,
) *Server {
	return &Server{
		validate:                    validator.New(),
		createItemHandler:           createItemHandler,
		tagItemHandler:              tagItemHandler,
		loadItemsHandler:            loadItemsHandler,
		unloadItemHandler:           unloadItemHandler,
		markContainerArrivedHandler: markContainerArrivedHandler,
		updateItemStatusHandler:     updateItemStatusHandler,
		setItemFlagHandler:          setItemFlagHandler,
		applyBatchHandler:           applyBatchHandler,
		deleteItemHandler:           deleteItemHandler,
		recomputeCostsHandler:       recomputeCostsHandler,
		getItemsHandler:             getItemsHandler,
		getContainersHandler:        getContainersHandler,
		getAllCustomersHandler:      getAllCustomersHandler,
		rateStore:                   rateStore,
	}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/items", s.CreateItem)
	api.GET("/items", s.GetItems)
	api.DELETE("/items/:id", s.DeleteItem)
	api.POST("/items/:id/tag", s.TagItem)
	api.POST("/items/:id/unload", s.UnloadItem)
	api.PUT("/items/:id/status", s.UpdateItemStatus)
	api.PUT("/items/:id/flag", s.SetItemFlag)
	api.POST("/items/batch", s.ApplyBatch)

	api.GET("/containers", s.GetContainers)
	api.POST("/containers/:containerNumber/load", s.LoadItems)
	api.POST("/containers/:containerNumber/arrived", s.MarkContainerArrived)

	api.GET("/customers", s.GetAllCustomers)

	api.GET("/rates", s.GetRates)
	api.PUT("/rates", s.UpdateRates)
	api.POST("/costs/recompute", s.RecomputeCosts)
}

// CreateItem handles POST /api/v1/items - registers a parcel at intake.
func (s *Server) CreateItem(ctx echo.Context) error {
	var req CreateItemRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	receivingDate := time.Now().UTC()
	if req.ReceivingDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.ReceivingDate)
		if err != nil {
			return badRequest(ctx, err)
		}
		receivingDate = parsed
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewCreateItemCommand(itemID, req.TrackingNumber, receivingDate, req.PhotoURLs)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.createItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": itemID.String()})
}

// GetItems handles GET /api/v1/items - lists item read models.
// Supports repeated status filters plus customerId and containerNumber.
func (s *Server) GetItems(ctx echo.Context) error {
	var statuses []item.Status
	for _, raw := range ctx.QueryParams()["status"] {
		status, err := item.StatusFromString(raw)
		if err != nil {
			return badRequest(ctx, err)
		}
		statuses = append(statuses, status)
	}

	var customerID *kernel.UUID
	if raw := ctx.QueryParam("customerId"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, err)
		}
		customerID = &id
	}

	var containerNumber *string
	if raw := ctx.QueryParam("containerNumber"); raw != "" {
		containerNumber = &raw
	}

	query, err := queries.NewGetItemsQuery(statuses, customerID, containerNumber)
	if err != nil {
		return badRequest(ctx, err)
	}

	items, err := s.getItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toItemResponses(items))
}

// DeleteItem handles DELETE /api/v1/items/:id - permanently removes an item.
func (s *Server) DeleteItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDeleteItemCommand(itemID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.deleteItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TagItem handles POST /api/v1/items/:id/tag - assigns customer and method.
func (s *Server) TagItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req TagItemRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	method, err := pricing.MethodFromString(req.ShippingMethod)
	if err != nil {
		return badRequest(ctx, err)
	}

	var dimensions *pricing.Dimensions
	if req.Dimensions != nil {
		unit, unitErr := pricing.DimensionUnitFromString(req.Dimensions.Unit)
		if unitErr != nil {
			return badRequest(ctx, unitErr)
		}
		dims, dimsErr := pricing.NewDimensions(req.Dimensions.Length, req.Dimensions.Width, req.Dimensions.Height, unit)
		if dimsErr != nil {
			return badRequest(ctx, dimsErr)
		}
		dimensions = &dims
	}

	var weight *pricing.Weight
	if req.Weight != nil {
		unit, unitErr := pricing.WeightUnitFromString(req.Weight.Unit)
		if unitErr != nil {
			return badRequest(ctx, unitErr)
		}
		w, weightErr := pricing.NewWeight(req.Weight.Value, unit)
		if weightErr != nil {
			return badRequest(ctx, weightErr)
		}
		weight = &w
	}

	cmd, err := commands.NewTagItemCommand(itemID, customerID, method, dimensions, weight)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.tagItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// UnloadItem handles POST /api/v1/items/:id/unload - removes the item from
// its container and resets it to china_warehouse.
func (s *Server) UnloadItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUnloadItemFromContainerCommand(itemID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.unloadItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// UpdateItemStatus handles PUT /api/v1/items/:id/status - forward move only.
func (s *Server) UpdateItemStatus(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req UpdateItemStatusRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	status, err := item.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateItemStatusCommand(itemID, status)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.updateItemStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// SetItemFlag handles PUT /api/v1/items/:id/flag - toggles damaged/missing.
func (s *Server) SetItemFlag(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req SetItemFlagRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewSetItemFlagCommand(itemID, commands.ItemFlag(req.Flag), req.Value)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.setItemFlagHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ApplyBatch handles POST /api/v1/items/batch - bulk manifest updates.
// Rows succeed or fail independently; the response reports each row.
func (s *Server) ApplyBatch(ctx echo.Context) error {
	var req ApplyBatchRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	rows := make([]commands.BatchRow, 0, len(req.Rows))
	for _, row := range req.Rows {
		patch := commands.ItemPatch{
			ContainerNumber: row.ContainerNumber,
			Damaged:         row.Damaged,
			Missing:         row.Missing,
		}
		if row.Status != nil {
			status, err := item.StatusFromString(*row.Status)
			if err != nil {
				return badRequest(ctx, err)
			}
			patch.Status = &status
		}
		rows = append(rows, commands.BatchRow{
			TrackingNumber: row.TrackingNumber,
			Patch:          patch,
		})
	}

	cmd, err := commands.NewApplyBatchCommand(rows)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.applyBatchHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toBatchResponse(result))
}

// GetContainers handles GET /api/v1/containers - derived container summaries.
func (s *Server) GetContainers(ctx echo.Context) error {
	query := queries.NewGetContainersQuery()

	containers, err := s.getContainersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toContainerResponses(containers))
}

// LoadItems handles POST /api/v1/containers/:containerNumber/load.
// Items are loaded one by one; the response reports each item.
func (s *Server) LoadItems(ctx echo.Context) error {
	var req LoadItemsRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	itemIDs := make([]kernel.UUID, 0, len(req.ItemIDs))
	for _, raw := range req.ItemIDs {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, err)
		}
		itemIDs = append(itemIDs, id)
	}

	cmd, err := commands.NewLoadItemsIntoContainerCommand(ctx.Param("containerNumber"), itemIDs)
	if err != nil {
		return badRequest(ctx, err)
	}

	results, err := s.loadItemsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toLoadItemResponses(results))
}

// MarkContainerArrived handles POST /api/v1/containers/:containerNumber/arrived.
// Stamps every member of the container as arrived in one transaction.
func (s *Server) MarkContainerArrived(ctx echo.Context) error {
	cmd, err := commands.NewMarkContainerArrivedCommand(ctx.Param("containerNumber"))
	if err != nil {
		return badRequest(ctx, err)
	}

	updated, err := s.markContainerArrivedHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]int{"updated": updated})
}

// GetAllCustomers handles GET /api/v1/customers - lists customers by name.
func (s *Server) GetAllCustomers(ctx echo.Context) error {
	query := queries.NewGetAllCustomersQuery()

	customers, err := s.getAllCustomersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCustomerResponses(customers))
}

// GetRates handles GET /api/v1/rates - returns the current pricing rates.
func (s *Server) GetRates(ctx echo.Context) error {
	rates, err := s.rateStore.Get(ctx.Request().Context())
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RatesResponse{
		CBMRateUSD:         rates.CBMRateUSD().String(),
		WeightRateUSDPerKg: rates.WeightRateUSDPerKg().String(),
		USDToGHSRate:       rates.USDToGHSRate().String(),
	})
}

// UpdateRates handles PUT /api/v1/rates - replaces the pricing rates.
// Stored item costs are untouched; use POST /costs/recompute to apply the
// new rates to the existing inventory.
func (s *Server) UpdateRates(ctx echo.Context) error {
	var req UpdateRatesRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	cbmRate, err := decimal.NewFromString(req.CBMRateUSD)
	if err != nil {
		return badRequest(ctx, err)
	}
	weightRate, err := decimal.NewFromString(req.WeightRateUSDPerKg)
	if err != nil {
		return badRequest(ctx, err)
	}
	fxRate, err := decimal.NewFromString(req.USDToGHSRate)
	if err != nil {
		return badRequest(ctx, err)
	}

	rates, err := pricing.NewRates(cbmRate, weightRate, fxRate)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.rateStore.Save(ctx.Request().Context(), rates); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RecomputeCosts handles POST /api/v1/costs/recompute - full reprice sweep
// over every tagged item using the current rates.
func (s *Server) RecomputeCosts(ctx echo.Context) error {
	cmd, err := commands.NewRecomputeCostsCommand()
	if err != nil {
		return errorResponse(ctx, err)
	}

	repriced, err := s.recomputeCostsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]int{"repriced": repriced})
}

// bind decodes the JSON body and runs struct validation on it.
func (s *Server) bind(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return err
	}
	return s.validate.Struct(req)
}

// badRequest reports a malformed or invalid request payload.
func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// errorResponse maps use case failures onto HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, item.ErrItemNotInContainer):
		code = http.StatusConflict
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
