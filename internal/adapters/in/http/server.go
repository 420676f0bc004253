package http

import (
	"context"
	"net/http"
	"time"

	"salesdesk/internal/core/application/usecases/commands"
	"salesdesk/internal/core/application/usecases/queries"
	"salesdesk/internal/core/application/views"
	"salesdesk/internal/core/domain/model/kernel"
	"salesdesk/internal/core/domain/services"
	"salesdesk/internal/pkg/clock"
	"salesdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Use case ports consumed by the server. The application handlers satisfy
// them directly.
type (
	OrderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (views.OrderView, error)
	}

	ConfirmationUpdater interface {
		Handle(ctx context.Context, cmd commands.UpdateConfirmationCommand) (views.OrderView, error)
	}

	FulfillmentUpdater interface {
		Handle(ctx context.Context, cmd commands.UpdateFulfillmentCommand) (views.OrderView, error)
	}

	OrderDeleter interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
		HandleAll(ctx context.Context, cmd commands.DeleteAllOrdersCommand) (int64, error)
	}

	OrderGetter interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (views.OrderView, error)
	}

	OrderLister interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]views.OrderView, error)
	}
)

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	CreateOrder        OrderCreator
	UpdateConfirmation ConfirmationUpdater
	UpdateFulfillment  FulfillmentUpdater
	DeleteOrder        OrderDeleter
	GetOrder           OrderGetter
	ListOrders         OrderLister
}

// Server translates HTTP requests into commands and queries and renders their
// results.
type Server struct {
	handlers Handlers
	hub      NotificationHub
	clock    clock.Clock
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, hub NotificationHub, clk clock.Clock) *Server {
	return &Server{
		handlers: handlers,
		hub:      hub,
		clock:    clk,
	}
}

type healthResponse struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type orderResponse struct {
	Message string          `json:"message"`
	Order   views.OrderView `json:"order"`
}

type deleteResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

// GetHealth handles GET /api/health.
func (s *Server) GetHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Message:   "Server is running",
		Timestamp: s.clock.Now(),
	})
}

// CreatePublicOrder handles POST /api/orders. Submissions through the public
// form are always unassigned, whoever sends them.
func (s *Server) CreatePublicOrder(c echo.Context) error {
	var req createOrderRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	req.ConfirmerID, req.BuyerID = nil, nil

	return s.createOrder(c, kernel.Anonymous(), req)
}

// CreateOrder handles POST /api/orders/authenticated. Staff may assign the
// order on creation.
func (s *Server) CreateOrder(c echo.Context) error {
	principal := principalFrom(c)
	if !principal.IsAuthenticated() {
		return errs.NewAccessDeniedError("authentication required")
	}

	var req createOrderRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	return s.createOrder(c, principal, req)
}

func (s *Server) createOrder(c echo.Context, principal kernel.Principal, req createOrderRequest) error {
	input, err := req.toInput()
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), principal, input)
	if err != nil {
		return err
	}

	created, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, orderResponse{
		Message: "Order created successfully",
		Order:   created,
	})
}

// ListRecentOrders handles GET /api/orders/recent.
func (s *Server) ListRecentOrders(c echo.Context) error {
	return s.listOrders(c, services.ScopeRecent)
}

// ListAllOrders handles GET /api/orders/all.
func (s *Server) ListAllOrders(c echo.Context) error {
	return s.listOrders(c, services.ScopeAll)
}

// ListConfirmerOrders handles GET /api/orders/confirmer.
func (s *Server) ListConfirmerOrders(c echo.Context) error {
	return s.listOrders(c, services.ScopeConfirmer)
}

// ListUnassignedOrders handles GET /api/orders/unassigned.
func (s *Server) ListUnassignedOrders(c echo.Context) error {
	return s.listOrders(c, services.ScopeUnassigned)
}

// ListBuyerOrders handles GET /api/orders/buyer.
func (s *Server) ListBuyerOrders(c echo.Context) error {
	return s.listOrders(c, services.ScopeBuyer)
}

func (s *Server) listOrders(c echo.Context, scope services.Scope) error {
	query, err := queries.NewListOrdersQuery(principalFrom(c), scope)
	if err != nil {
		return err
	}

	orders, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(orderID, principalFrom(c))
	if err != nil {
		return err
	}

	found, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, found)
}

// UpdateConfirmerStatus handles PUT /api/orders/:id/confirmer-status.
func (s *Server) UpdateConfirmerStatus(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return err
	}

	var req confirmationRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	patch, err := req.toPatch()
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateConfirmationCommand(orderID, principalFrom(c), patch)
	if err != nil {
		return err
	}

	updated, err := s.handlers.UpdateConfirmation.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orderResponse{
		Message: "Order status updated successfully",
		Order:   updated,
	})
}

// UpdateBuyerStatus handles PUT /api/orders/:id/buyer-status.
func (s *Server) UpdateBuyerStatus(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return err
	}

	var req fulfillmentRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	patch, err := req.toPatch()
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateFulfillmentCommand(orderID, principalFrom(c), patch)
	if err != nil {
		return err
	}

	updated, err := s.handlers.UpdateFulfillment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orderResponse{
		Message: "Buyer status updated successfully",
		Order:   updated,
	})
}

// DeleteOrder handles DELETE /api/orders/:id.
func (s *Server) DeleteOrder(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, principalFrom(c))
	if err != nil {
		return err
	}

	if err := s.handlers.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, deleteResponse{
		Message:      "Order deleted successfully",
		DeletedCount: 1,
	})
}

// DeleteAllOrders handles DELETE /api/orders.
func (s *Server) DeleteAllOrders(c echo.Context) error {
	cmd := commands.NewDeleteAllOrdersCommand(principalFrom(c))

	deleted, err := s.handlers.DeleteOrder.HandleAll(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, deleteResponse{
		Message:      "All orders deleted successfully",
		DeletedCount: deleted,
	})
}
