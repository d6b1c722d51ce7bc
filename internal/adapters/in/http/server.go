// Package http is the inbound HTTP adapter. It translates REST requests into
// commands and queries, and domain errors into status codes. Authentication is
// out of scope: the caller's identity arrives pre-verified in the X-Actor-Role
// and X-Actor-Id headers, and this adapter only enforces tenant scoping on it.
package http

import (
	"errors"
	"net/http"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	createRiderHandler       commands.CreateRiderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	assignRiderHandler       commands.AssignRiderCommandHandler
	reportLocationHandler    commands.ReportLocationCommandHandler

	// Query handlers
	listOrdersHandler       queries.ListOrdersQueryHandler
	getRiderLocationHandler queries.GetRiderLocationQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	createRiderHandler commands.CreateRiderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	assignRiderHandler commands.AssignRiderCommandHandler,
	reportLocationHandler commands.ReportLocationCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getRiderLocationHandler queries.GetRiderLocationQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		createRiderHandler:       createRiderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		assignRiderHandler:       assignRiderHandler,
		reportLocationHandler:    reportLocationHandler,
		listOrdersHandler:        listOrdersHandler,
		getRiderLocationHandler:  getRiderLocationHandler,
	}
}

// RegisterRoutes attaches all routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.PUT("/orders/status/:orderId", s.ChangeOrderStatus)
	api.PUT("/orders/assign/:orderId", s.AssignRider)
	api.GET("/orders/restaurant/:restaurantId", s.ListRestaurantOrders)
	api.GET("/orders/rider/:riderId", s.ListRiderOrders)
	api.GET("/orders/customer/:customerId", s.ListCustomerOrders)

	api.POST("/riders", s.CreateRider)
	api.POST("/riders/:riderId/location", s.ReportRiderLocation)
	api.GET("/riders/:riderId/location", s.GetRiderLocation)

	e.GET("/health", s.Health)
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// identity is the pre-authenticated caller extracted from request headers.
type identity struct {
	role order.Actor
	id   kernel.UUID
}

// actorIdentity reads the caller's identity from the X-Actor-Role and
// X-Actor-Id headers. Both must be present and well formed.
func actorIdentity(ctx echo.Context) (identity, error) {
	role, err := order.ActorFromString(ctx.Request().Header.Get("X-Actor-Role"))
	if err != nil {
		return identity{}, err
	}

	id, err := kernel.UUIDFromString(ctx.Request().Header.Get("X-Actor-Id"))
	if err != nil {
		return identity{}, err
	}

	return identity{role: role, id: id}, nil
}

// canActFor reports whether the caller may operate within the scope owned by
// ownerRole/ownerID. Admins may act for anyone.
func (i identity) canActFor(ownerRole order.Actor, ownerID kernel.UUID) bool {
	if i.role == order.ActorAdmin {
		return true
	}
	return i.role == ownerRole && i.id.IsEqual(ownerID)
}

// mapErrorStatus classifies a use-case error into an HTTP status code.
func mapErrorStatus(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, queries.ErrLocationUnavailable):
		return http.StatusNotFound
	case errors.Is(err, order.ErrActorNotAllowed):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrRiderAssignmentNotAllowed),
		errors.Is(err, order.ErrRiderNotAssigned),
		errors.Is(err, services.ErrRiderBusy):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrOrderItemsAreRequired):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// fail writes the error payload for a failed use case. Internal errors are
// not echoed back to the client.
func fail(ctx echo.Context, err error) error {
	status := mapErrorStatus(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: "missing or malformed actor identity headers",
	})
}

func forbidden(ctx echo.Context) error {
	return ctx.JSON(http.StatusForbidden, ErrorResponse{
		Code:    http.StatusForbidden,
		Message: "caller is not allowed to access this scope",
	})
}

// NewOrderItem is one order line of a placement request. Prices are integral
// minor currency units.
type NewOrderItem struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int64  `json:"unitPrice"`
}

// NewOrderRequest is the payload of POST /api/v1/orders.
type NewOrderRequest struct {
	CustomerID      string         `json:"customerId"`
	RestaurantID    string         `json:"restaurantId"`
	Items           []NewOrderItem `json:"items"`
	DeliveryAddress string         `json:"deliveryAddress"`
}

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// CreateOrder handles POST /api/v1/orders - places a new order in Pending
// status. Only the customer themselves (or an admin) may place it.
func (s *Server) CreateOrder(ctx echo.Context) error {
	caller, err := actorIdentity(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return fail(ctx, err)
	}

	if !caller.canActFor(order.ActorCustomer, customerID) {
		return forbidden(ctx)
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return fail(ctx, err)
	}

	items := make([]commands.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		menuItemID, idErr := kernel.UUIDFromString(item.MenuItemID)
		if idErr != nil {
			return fail(ctx, idErr)
		}

		items = append(items, commands.OrderItemInput{
			MenuItemID: menuItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
		})
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, restaurantID, items, req.DeliveryAddress)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// NewRiderRequest is the payload of POST /api/v1/riders.
type NewRiderRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// CreateRider handles POST /api/v1/riders - registers a new rider. Rider
// onboarding is an admin operation.
func (s *Server) CreateRider(ctx echo.Context) error {
	caller, err := actorIdentity(ctx)
	if err != nil {
		return unauthorized(ctx)
	}
	if caller.role != order.ActorAdmin {
		return forbidden(ctx)
	}

	var req NewRiderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	riderID := kernel.NewUUID()

	cmd, err := commands.NewCreateRiderCommand(riderID, req.Name, req.Phone)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.createRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: riderID.String()})
}

// ChangeStatusRequest is the payload of PUT /api/v1/orders/status/:orderId.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// ChangeOrderStatus handles PUT /api/v1/orders/status/:orderId - moves an
// order along its lifecycle on behalf of the calling actor.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	caller, err := actorIdentity(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return fail(ctx, err)
	}

	var req ChangeStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target, caller.role, caller.id)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignRiderRequest is the payload of PUT /api/v1/orders/assign/:orderId.
type AssignRiderRequest struct {
	RiderID string `json:"riderId"`
}

// AssignRider handles PUT /api/v1/orders/assign/:orderId - manually assigns a
// specific rider to an order.
func (s *Server) AssignRider(ctx echo.Context) error {
	caller, err := actorIdentity(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return fail(ctx, err)
	}

	var req AssignRiderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	riderID, err := kernel.UUIDFromString(req.RiderID)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewAssignRiderCommand(orderID, riderID, caller.role, caller.id)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.assignRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RiderSummaryResponse describes the rider carrying an order.
type RiderSummaryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// OrderSummaryResponse is one row of an order listing.
type OrderSummaryResponse struct {
	ID              string                `json:"id"`
	CustomerID      string                `json:"customerId"`
	RestaurantID    string                `json:"restaurantId"`
	Status          string                `json:"status"`
	TotalAmount     int64                 `json:"totalAmount"`
	DeliveryAddress string                `json:"deliveryAddress"`
	CreatedAt       time.Time             `json:"createdAt"`
	StatusUpdatedAt time.Time             `json:"statusUpdatedAt"`
	Rider           *RiderSummaryResponse `json:"rider,omitempty"`
}

// ListOrdersResponse is the payload of the order listing endpoints.
type ListOrdersResponse struct {
	Orders       []OrderSummaryResponse `json:"orders"`
	StatusCounts map[string]int         `json:"statusCounts"`
}

// ListRestaurantOrders handles GET /api/v1/orders/restaurant/:restaurantId.
func (s *Server) ListRestaurantOrders(ctx echo.Context) error {
	return s.listOrders(ctx, queries.ScopeRestaurant, order.ActorRestaurant, "restaurantId")
}

// ListRiderOrders handles GET /api/v1/orders/rider/:riderId.
func (s *Server) ListRiderOrders(ctx echo.Context) error {
	return s.listOrders(ctx, queries.ScopeRider, order.ActorRider, "riderId")
}

// ListCustomerOrders handles GET /api/v1/orders/customer/:customerId.
func (s *Server) ListCustomerOrders(ctx echo.Context) error {
	return s.listOrders(ctx, queries.ScopeCustomer, order.ActorCustomer, "customerId")
}

// listOrders serves one listing scope. The caller must own the scope or be an
// admin. An optional ?status= parameter narrows the listing to one status.
func (s *Server) listOrders(
	ctx echo.Context,
	scope queries.OrderScope,
	ownerRole order.Actor,
	paramName string,
) error {
	caller, err := actorIdentity(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	scopeID, err := kernel.UUIDFromString(ctx.Param(paramName))
	if err != nil {
		return fail(ctx, err)
	}

	if !caller.canActFor(ownerRole, scopeID) {
		return forbidden(ctx)
	}

	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, parseErr := order.StatusFromString(raw)
		if parseErr != nil {
			return fail(ctx, parseErr)
		}
		statusFilter = &status
	}

	query, err := queries.NewListOrdersQuery(scope, scopeID, statusFilter)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	orders := make([]OrderSummaryResponse, len(result.Orders))
	for i, summary := range result.Orders {
		orders[i] = OrderSummaryResponse{
			ID:              summary.ID.String(),
			CustomerID:      summary.CustomerID.String(),
			RestaurantID:    summary.RestaurantID.String(),
			Status:          summary.Status,
			TotalAmount:     summary.TotalAmount,
			DeliveryAddress: summary.DeliveryAddress,
			CreatedAt:       summary.CreatedAt,
			StatusUpdatedAt: summary.StatusUpdatedAt,
		}

		if summary.Rider != nil {
			orders[i].Rider = &RiderSummaryResponse{
				ID:    summary.Rider.ID.String(),
				Name:  summary.Rider.Name,
				Phone: summary.Rider.Phone,
			}
		}
	}

	return ctx.JSON(http.StatusOK, ListOrdersResponse{
		Orders:       orders,
		StatusCounts: result.StatusCounts,
	})
}

// LocationReportRequest is the payload of POST /api/v1/riders/:riderId/location.
type LocationReportRequest struct {
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	RecordedAt time.Time `json:"timestamp"`
}

// ReportRiderLocation handles POST /api/v1/riders/:riderId/location - records
// a rider's position. Only the rider themselves (or an admin) may report.
func (s *Server) ReportRiderLocation(ctx echo.Context) error {
	caller, err := actorIdentity(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	riderID, err := kernel.UUIDFromString(ctx.Param("riderId"))
	if err != nil {
		return fail(ctx, err)
	}

	if !caller.canActFor(order.ActorRider, riderID) {
		return forbidden(ctx)
	}

	var req LocationReportRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	point, err := kernel.NewGeoPoint(req.Lat, req.Lng)
	if err != nil {
		return fail(ctx, err)
	}

	recordedAt := req.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now().UTC()
	}

	cmd, err := commands.NewReportLocationCommand(riderID, point, recordedAt)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.reportLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RiderLocationResponse is the payload of GET /api/v1/riders/:riderId/location.
type RiderLocationResponse struct {
	RiderID    string    `json:"riderId"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	RecordedAt time.Time `json:"recordedAt"`
}

// GetRiderLocation handles GET /api/v1/riders/:riderId/location - returns the
// rider's latest known position, subject to the caller's visibility scope.
func (s *Server) GetRiderLocation(ctx echo.Context) error {
	caller, err := actorIdentity(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	riderID, err := kernel.UUIDFromString(ctx.Param("riderId"))
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetRiderLocationQuery(riderID, queries.Viewer{
		Role: caller.role,
		ID:   caller.id,
	})
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.getRiderLocationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RiderLocationResponse{
		RiderID:    result.RiderID.String(),
		Lat:        result.Lat,
		Lng:        result.Lng,
		RecordedAt: result.RecordedAt,
	})
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
