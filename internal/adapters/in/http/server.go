// Package http exposes the delivery core over an echo-based REST API.
// Handlers translate between wire DTOs and application commands/queries and
// map domain failures to HTTP status codes; no business logic lives here.
package http

import (
	"errors"
	"net/http"

	"parcelnet/internal/core/application/usecases/commands"
	"parcelnet/internal/core/application/usecases/queries"
	"parcelnet/internal/core/domain/model/kernel"
	"parcelnet/internal/core/domain/model/order"
	"parcelnet/internal/core/domain/services"
	"parcelnet/internal/core/ports"
	"parcelnet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler       commands.CreateOrderCommandHandler
	submitScanHandler        commands.SubmitScanCommandHandler
	submitShipperScanHandler commands.SubmitShipperScanCommandHandler
	arrangePickupHandler     commands.ArrangePickupCommandHandler
	arrangeDeliveryHandler   commands.ArrangeDeliveryCommandHandler
	bulkCancelHandler        commands.BulkCancelCommandHandler
	markPrintedHandler       commands.MarkOrdersPrintedCommandHandler

	trackOrderHandler      queries.TrackOrderQueryHandler
	getOfficeOrdersHandler queries.GetOfficeOrdersQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	submitScanHandler commands.SubmitScanCommandHandler,
	submitShipperScanHandler commands.SubmitShipperScanCommandHandler,
	arrangePickupHandler commands.ArrangePickupCommandHandler,
	arrangeDeliveryHandler commands.ArrangeDeliveryCommandHandler,
	bulkCancelHandler commands.BulkCancelCommandHandler,
	markPrintedHandler commands.MarkOrdersPrintedCommandHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	getOfficeOrdersHandler queries.GetOfficeOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		submitScanHandler:        submitScanHandler,
		submitShipperScanHandler: submitShipperScanHandler,
		arrangePickupHandler:     arrangePickupHandler,
		arrangeDeliveryHandler:   arrangeDeliveryHandler,
		bulkCancelHandler:        bulkCancelHandler,
		markPrintedHandler:       markPrintedHandler,
		trackOrderHandler:        trackOrderHandler,
		getOfficeOrdersHandler:   getOfficeOrdersHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/arrange-pickup", s.ArrangePickup)
	api.POST("/orders/arrange-delivery", s.ArrangeDelivery)
	api.POST("/orders/bulk-cancel", s.BulkCancel)
	api.POST("/orders/mark-printed", s.MarkPrinted)
	api.POST("/scans", s.SubmitScan)
	api.POST("/shipper-scans", s.SubmitShipperScan)
	api.GET("/tracking/:code", s.TrackOrder)
	api.GET("/offices/:id/orders", s.GetOfficeOrders)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	sellerID, err := kernel.UUIDFromString(req.SellerID)
	if err != nil {
		return badRequest(ctx, "invalid seller_id")
	}
	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "invalid customer_id")
	}
	pickupProvinceID, err := kernel.UUIDFromString(req.PickupProvinceID)
	if err != nil {
		return badRequest(ctx, "invalid pickup_province_id")
	}
	deliveryProvinceID, err := kernel.UUIDFromString(req.DeliveryProvinceID)
	if err != nil {
		return badRequest(ctx, "invalid delivery_province_id")
	}
	pickupWardID, err := optionalUUID(req.PickupWardID)
	if err != nil {
		return badRequest(ctx, "invalid pickup_ward_id")
	}
	deliveryWardID, err := optionalUUID(req.DeliveryWardID)
	if err != nil {
		return badRequest(ctx, "invalid delivery_ward_id")
	}

	codAmount, err := parseAmount(req.CODAmount)
	if err != nil {
		return badRequest(ctx, "invalid cod_amount")
	}
	shipFee, err := parseAmount(req.ShipFee)
	if err != nil {
		return badRequest(ctx, "invalid ship_fee")
	}

	products := make([]order.Product, 0, len(req.Products))
	for _, p := range req.Products {
		products = append(products, order.Product{SKU: p.SKU, Name: p.Name, Qty: p.Qty})
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), sellerID, customerID,
		products,
		req.COD,
		codAmount, shipFee,
		req.TotalWeight,
		pickupWardID, pickupProvinceID,
		deliveryWardID, deliveryProvinceID,
	)
	if err != nil {
		return badRequest(ctx, "invalid order data: "+err.Error())
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, services.ErrOfficeNotFound) || errors.Is(err, services.ErrTopologyIncomplete) {
			return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Code:    http.StatusUnprocessableEntity,
				Message: err.Error(),
			})
		}
		return internalError(ctx, "failed to create order")
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		OrderID:      result.OrderID.String(),
		TrackingCode: result.TrackingCode,
	})
}

// SubmitScan handles POST /api/v1/scans.
func (s *Server) SubmitScan(ctx echo.Context) error {
	var req SubmitScanRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	officeID, err := kernel.UUIDFromString(req.OfficeID)
	if err != nil {
		return badRequest(ctx, "invalid office_id")
	}

	cmd, err := commands.NewSubmitScanCommand(
		req.TrackingCode, officeID, order.EventType(req.EventType), req.Note,
	)
	if err != nil {
		return badRequest(ctx, "invalid scan: "+err.Error())
	}

	scanned, err := s.submitScanHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return scanError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, scanResponseFrom(scanned))
}

// SubmitShipperScan handles POST /api/v1/shipper-scans.
func (s *Server) SubmitShipperScan(ctx echo.Context) error {
	var req SubmitShipperScanRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	shipperID, err := kernel.UUIDFromString(req.ShipperID)
	if err != nil {
		return badRequest(ctx, "invalid shipper_id")
	}

	cmd, err := commands.NewSubmitShipperScanCommand(
		req.TrackingCode, shipperID, order.EventType(req.EventType), req.Note, req.ProofImages,
	)
	if err != nil {
		return badRequest(ctx, "invalid scan: "+err.Error())
	}

	scanned, err := s.submitShipperScanHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, commands.ErrNoTaskForShipper) {
			return ctx.JSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: err.Error(),
			})
		}
		return scanError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, scanResponseFrom(scanned))
}

// scanResponseFrom projects the freshly written order onto the wire shape
// scan terminals display after a successful scan.
func scanResponseFrom(scanned *order.Order) ScanResponse {
	return ScanResponse{
		OrderID:      scanned.ID().String(),
		TrackingCode: scanned.TrackingCode(),
		Status:       scanned.Status().String(),
		CurrentType:  scanned.CurrentType().String(),
	}
}

// ArrangePickup handles POST /api/v1/orders/arrange-pickup.
func (s *Server) ArrangePickup(ctx echo.Context) error {
	cmd, ok := bindOrderIDs(ctx, func(ids []kernel.UUID, _ string) (commands.ArrangePickupCommand, error) {
		return commands.NewArrangePickupCommand(ids)
	})
	if !ok {
		return nil
	}

	result, err := s.arrangePickupHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "failed to arrange pickup")
	}

	return ctx.JSON(http.StatusOK, dispatchResponseFrom(result))
}

// ArrangeDelivery handles POST /api/v1/orders/arrange-delivery.
func (s *Server) ArrangeDelivery(ctx echo.Context) error {
	cmd, ok := bindOrderIDs(ctx, func(ids []kernel.UUID, _ string) (commands.ArrangeDeliveryCommand, error) {
		return commands.NewArrangeDeliveryCommand(ids)
	})
	if !ok {
		return nil
	}

	result, err := s.arrangeDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "failed to arrange delivery")
	}

	return ctx.JSON(http.StatusOK, dispatchResponseFrom(result))
}

// dispatchResponseFrom maps a batch dispatch result onto the wire shape
// shared by the arrange-pickup and arrange-delivery endpoints.
func dispatchResponseFrom(result commands.ArrangePickupResult) ArrangePickupResponse {
	response := ArrangePickupResponse{
		Arranged: make([]ArrangedOrderResponse, 0, len(result.Arranged)),
		Failed:   make([]FailedOrderResponse, 0, len(result.Failed)),
	}
	for _, a := range result.Arranged {
		response.Arranged = append(response.Arranged, ArrangedOrderResponse{
			OrderID:   a.OrderID.String(),
			ShipperID: a.ShipperID.String(),
			TaskID:    a.TaskID.String(),
			ZoneID:    a.ZoneID.String(),
		})
	}
	for _, f := range result.Failed {
		response.Failed = append(response.Failed, FailedOrderResponse{
			OrderID: f.OrderID.String(),
			Reason:  string(f.Reason),
		})
	}

	return response
}

// BulkCancel handles POST /api/v1/orders/bulk-cancel.
func (s *Server) BulkCancel(ctx echo.Context) error {
	cmd, ok := bindOrderIDs(ctx, commands.NewBulkCancelCommand)
	if !ok {
		return nil
	}

	result, err := s.bulkCancelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "failed to cancel orders")
	}

	response := BulkCancelResponse{
		Cancelled: make([]string, 0, len(result.Cancelled)),
		Skipped:   make([]SkippedOrderResponse, 0, len(result.Skipped)),
	}
	for _, id := range result.Cancelled {
		response.Cancelled = append(response.Cancelled, id.String())
	}
	for _, skipped := range result.Skipped {
		response.Skipped = append(response.Skipped, SkippedOrderResponse{
			OrderID: skipped.OrderID.String(),
			Status:  skipped.Status,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// MarkPrinted handles POST /api/v1/orders/mark-printed.
func (s *Server) MarkPrinted(ctx echo.Context) error {
	cmd, ok := bindOrderIDs(ctx, func(ids []kernel.UUID, _ string) (commands.MarkOrdersPrintedCommand, error) {
		return commands.NewMarkOrdersPrintedCommand(ids)
	})
	if !ok {
		return nil
	}

	if err := s.markPrintedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, err.Error())
		}
		return internalError(ctx, "failed to mark orders printed")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TrackOrder handles GET /api/v1/tracking/:code.
func (s *Server) TrackOrder(ctx echo.Context) error {
	query, err := queries.NewTrackOrderQuery(ctx.Param("code"))
	if err != nil {
		return badRequest(ctx, "invalid tracking code")
	}

	result, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "unknown tracking code")
		}
		return internalError(ctx, "failed to track order")
	}

	events := make([]TrackingEventResponse, 0, len(result.Events))
	for _, e := range result.Events {
		events = append(events, TrackingEventResponse{
			EventType: e.EventType,
			OfficeID:  e.OfficeID,
			Note:      e.Note,
			Timestamp: e.Timestamp,
		})
	}

	return ctx.JSON(http.StatusOK, TrackingResponse{
		TrackingCode: result.TrackingCode,
		Status:       result.Status,
		CurrentType:  result.CurrentType,
		Events:       events,
	})
}

// GetOfficeOrders handles GET /api/v1/offices/:id/orders.
func (s *Server) GetOfficeOrders(ctx echo.Context) error {
	officeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid office id")
	}

	query, err := queries.NewGetOfficeOrdersQuery(officeID)
	if err != nil {
		return badRequest(ctx, "invalid office id")
	}

	result, err := s.getOfficeOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "failed to list office orders")
	}

	response := make([]OfficeOrderResponse, 0, len(result))
	for _, o := range result {
		response = append(response, OfficeOrderResponse{
			OrderID:      o.ID.String(),
			TrackingCode: o.TrackingCode,
			Status:       o.Status,
			CurrentType:  o.CurrentType,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// bindOrderIDs handles the shared bind-and-parse path of batch endpoints.
// When ok is false the error response has already been written.
func bindOrderIDs[C any](ctx echo.Context, build func([]kernel.UUID, string) (C, error)) (C, bool) {
	var zero C

	var req OrderIDsRequest
	if err := ctx.Bind(&req); err != nil {
		_ = badRequest(ctx, "invalid request body")
		return zero, false
	}

	ids := make([]kernel.UUID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			_ = badRequest(ctx, "invalid order id: "+raw)
			return zero, false
		}
		ids = append(ids, id)
	}

	cmd, err := build(ids, req.Note)
	if err != nil {
		_ = badRequest(ctx, "invalid request: "+err.Error())
		return zero, false
	}

	return cmd, true
}

// scanError maps scan rejections to their HTTP statuses. Route violations
// and duplicates are client conflicts, not server faults.
func scanError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return notFound(ctx, "unknown tracking code")
	case errors.Is(err, order.ErrDuplicateScan),
		errors.Is(err, services.ErrNoRoutePlan),
		errors.Is(err, services.ErrOfficeNotOnRoute),
		errors.Is(err, services.ErrWrongOfficeForArrival),
		errors.Is(err, services.ErrWrongOfficeForDeparture),
		errors.Is(err, services.ErrRouteAlreadyComplete),
		errors.Is(err, ports.ErrConcurrencyConflict):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return internalError(ctx, "failed to record scan")
	}
}

func parseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}

func optionalUUID(raw string) (*kernel.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, ErrorResponse{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
