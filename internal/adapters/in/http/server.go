// Package http implements the inbound HTTP adapter. It translates echo
// requests into command/query handler calls and domain errors into response
// status codes: not-found maps to 404, validation failures to 422, malformed
// requests to 400 and everything unmapped to 500.
package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

// Server handles the order API routes, coordinating between HTTP handlers
// and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler  commands.PlaceOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	cancelOrderHandler commands.CancelOrderCommandHandler
	payOrderHandler    commands.PayOrderCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler

	// Query handlers
	getOrderHandler  queries.GetOrderQueryHandler
	getOrdersHandler queries.GetOrdersQueryHandler

	openapiDoc *openapi3.T
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	payOrderHandler commands.PayOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	openapiDoc *openapi3.T,
) *Server {
	return &Server{
		placeOrderHandler:  placeOrderHandler,
		updateOrderHandler: updateOrderHandler,
		cancelOrderHandler: cancelOrderHandler,
		payOrderHandler:    payOrderHandler,
		deleteOrderHandler: deleteOrderHandler,
		getOrderHandler:    getOrderHandler,
		getOrdersHandler:   getOrdersHandler,
		openapiDoc:         openapiDoc,
	}
}

// RegisterRoutes wires the order API routes into the echo instance.
func RegisterRoutes(e *echo.Echo, s *Server) {
	e.GET("/orders", s.GetOrders)
	e.POST("/orders", s.CreateOrder)
	e.GET("/orders/:id", s.GetOrder)
	e.PUT("/orders/:id", s.UpdateOrder)
	e.DELETE("/orders/:id", s.DeleteOrder)
	e.POST("/orders/:id/cancel", s.CancelOrder)
	e.POST("/orders/:id/pay", s.PayOrder)
	e.GET("/openapi.json", s.GetOpenAPIDocument)
}

// GetOrders handles GET /orders - lists orders, optionally filtered by
// cancellation state and truncated to the first "limit" entries.
func (s *Server) GetOrders(ctx echo.Context) error {
	var cancelled *bool
	if raw := ctx.QueryParam("cancelled"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return ctx.JSON(http.StatusUnprocessableEntity, Error{
				Code:    http.StatusUnprocessableEntity,
				Message: fmt.Sprintf("Invalid cancelled filter: %q", raw),
			})
		}
		cancelled = &value
	}

	var limit *int
	if raw := ctx.QueryParam("limit"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return ctx.JSON(http.StatusUnprocessableEntity, Error{
				Code:    http.StatusUnprocessableEntity,
				Message: fmt.Sprintf("Invalid limit: %q", raw),
			})
		}
		limit = &value
	}

	query, err := queries.NewGetOrdersQuery(cancelled, limit)
	if err != nil {
		return s.respondError(ctx, err, "")
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "")
	}

	return ctx.JSON(http.StatusOK, fromDomainOrders(orders))
}

// CreateOrder handles POST /orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var payload CreateOrderRequest
	if err := ctx.Bind(&payload); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items, err := toDomainItems(payload.Items)
	if err != nil {
		return s.respondError(ctx, err, "")
	}

	cmd, err := commands.NewPlaceOrderCommand(items)
	if err != nil {
		return s.respondError(ctx, err, "")
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "")
	}

	return ctx.JSON(http.StatusCreated, fromDomainOrder(placed))
}

// GetOrder handles GET /orders/{id} - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, ok := s.bindOrderID(ctx)
	if !ok {
		return nil
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.respondError(ctx, err, orderID.String())
	}

	aggregate, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, orderID.String())
	}

	return ctx.JSON(http.StatusOK, fromDomainOrder(aggregate))
}

// UpdateOrder handles PUT /orders/{id} - replaces an order's items.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, ok := s.bindOrderID(ctx)
	if !ok {
		return nil
	}

	var payload CreateOrderRequest
	if err := ctx.Bind(&payload); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items, err := toDomainItems(payload.Items)
	if err != nil {
		return s.respondError(ctx, err, orderID.String())
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, items)
	if err != nil {
		return s.respondError(ctx, err, orderID.String())
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, orderID.String())
	}

	return ctx.JSON(http.StatusOK, fromDomainOrder(updated))
}

// DeleteOrder handles DELETE /orders/{id} - removes an order.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, ok := s.bindOrderID(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return s.respondError(ctx, err, orderID.String())
	}

	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err, orderID.String())
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /orders/{id}/cancel - cancels an order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, ok := s.bindOrderID(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return s.respondError(ctx, err, orderID.String())
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, orderID.String())
	}

	return ctx.JSON(http.StatusOK, fromDomainOrder(cancelled))
}

// PayOrder handles POST /orders/{id}/pay - marks an order as paid.
func (s *Server) PayOrder(ctx echo.Context) error {
	orderID, ok := s.bindOrderID(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewPayOrderCommand(orderID)
	if err != nil {
		return s.respondError(ctx, err, orderID.String())
	}

	paid, err := s.payOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, orderID.String())
	}

	return ctx.JSON(http.StatusOK, fromDomainOrder(paid))
}

// bindOrderID parses the order id path parameter. On failure it writes a 400
// response and returns ok=false.
func (s *Server) bindOrderID(ctx echo.Context) (kernel.UUID, bool) {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		_ = ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: fmt.Sprintf("Invalid order ID: %q", ctx.Param("id")),
		})
		return kernel.UUID{}, false
	}
	return orderID, true
}

// respondError maps domain errors to HTTP responses. The orderID, when
// known, is included in not-found messages.
func (s *Server) respondError(ctx echo.Context, err error, orderID string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: fmt.Sprintf("Order with ID %s not found", orderID),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
