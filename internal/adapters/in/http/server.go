// Package http exposes the kitchenpos use cases as a JSON API on echo.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// Handler is any command or query handler of the application layer.
type Handler[C, R any] interface {
	Handle(ctx context.Context, c C) (R, error)
}

type (
	orderHandler[C any] Handler[C, *order.Order]
	tableHandler[C any] Handler[C, *ordertable.OrderTable]
)

// Handlers lists the use cases served by the API.
type Handlers struct {
	CreateOrder      orderHandler[commands.CreateOrderCommand]
	AcceptOrder      orderHandler[commands.AcceptOrderCommand]
	ServeOrder       orderHandler[commands.ServeOrderCommand]
	StartDelivery    orderHandler[commands.StartDeliveryCommand]
	CompleteDelivery orderHandler[commands.CompleteDeliveryCommand]
	CompleteOrder    orderHandler[commands.CompleteOrderCommand]
	GetAllOrders     Handler[queries.GetAllOrdersQuery, []queries.GetAllOrdersQueryResponse]

	CreateOrderTable     tableHandler[commands.CreateOrderTableCommand]
	SitOrderTable        tableHandler[commands.SitOrderTableCommand]
	ClearOrderTable      tableHandler[commands.ClearOrderTableCommand]
	ChangeNumberOfGuests tableHandler[commands.ChangeNumberOfGuestsCommand]
	GetAllOrderTables    Handler[queries.GetAllOrderTablesQuery, []queries.GetAllOrderTablesQueryResponse]

	SyncMenu Handler[commands.SyncMenuCommand, *menu.Menu]
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{handlers: handlers, logger: logger.With(slog.String("component", "http"))}
}

// Register mounts the API routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetOrders)
	v1.PUT("/orders/:id/accept", s.AcceptOrder)
	v1.PUT("/orders/:id/serve", s.ServeOrder)
	v1.PUT("/orders/:id/start-delivery", s.StartDelivery)
	v1.PUT("/orders/:id/complete-delivery", s.CompleteDelivery)
	v1.PUT("/orders/:id/complete", s.CompleteOrder)

	v1.POST("/order-tables", s.CreateOrderTable)
	v1.GET("/order-tables", s.GetOrderTables)
	v1.PUT("/order-tables/:id/sit", s.SitOrderTable)
	v1.PUT("/order-tables/:id/clear", s.ClearOrderTable)
	v1.PUT("/order-tables/:id/number-of-guests", s.ChangeNumberOfGuests)

	v1.PUT("/menus/:id", s.SyncMenu)
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{Code: http.StatusBadRequest, Message: message})
}

func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	orderType, err := order.ParseType(req.Type)
	if err != nil {
		return s.writeError(ctx, err, http.StatusBadRequest)
	}

	lineItems := make([]services.RequestedLineItem, 0, len(req.LineItems))
	for _, li := range req.LineItems {
		menuID, err := kernel.UUIDFromString(li.MenuID)
		if err != nil {
			return s.writeError(ctx, err, http.StatusBadRequest)
		}
		lineItems = append(lineItems, services.RequestedLineItem{
			MenuID:   menuID,
			Quantity: li.Quantity,
			Price:    li.Price,
		})
	}

	var tableID *kernel.UUID
	if req.OrderTableID != nil {
		id, err := kernel.UUIDFromString(*req.OrderTableID)
		if err != nil {
			return s.writeError(ctx, err, http.StatusBadRequest)
		}
		tableID = &id
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), orderType, lineItems, req.DeliveryAddress, tableID)
	if err != nil {
		return s.writeError(ctx, err, http.StatusBadRequest)
	}

	o, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err, http.StatusInternalServerError)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(o))
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.handlers.GetAllOrders.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.writeError(ctx, err, http.StatusInternalServerError)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = fromOrderReadModel(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptOrder handles PUT /api/v1/orders/:id/accept. A failed delivery
// dispatch is reported as 502.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	return transitionOrder(s, ctx, commands.NewAcceptOrderCommand, s.handlers.AcceptOrder)
}

func (s *Server) ServeOrder(ctx echo.Context) error {
	return transitionOrder(s, ctx, commands.NewServeOrderCommand, s.handlers.ServeOrder)
}

func (s *Server) StartDelivery(ctx echo.Context) error {
	return transitionOrder(s, ctx, commands.NewStartDeliveryCommand, s.handlers.StartDelivery)
}

func (s *Server) CompleteDelivery(ctx echo.Context) error {
	return transitionOrder(s, ctx, commands.NewCompleteDeliveryCommand, s.handlers.CompleteDelivery)
}

func (s *Server) CompleteOrder(ctx echo.Context) error {
	return transitionOrder(s, ctx, commands.NewCompleteOrderCommand, s.handlers.CompleteOrder)
}

func transitionOrder[C any](
	s *Server,
	ctx echo.Context,
	newCommand func(kernel.UUID) (C, error),
	handler orderHandler[C],
) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.writeError(ctx, err, http.StatusBadRequest)
	}

	cmd, err := newCommand(id)
	if err != nil {
		return s.writeError(ctx, err, http.StatusBadRequest)
	}

	o, err := handler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err, http.StatusInternalServerError)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// CreateOrderTable handles POST /api/v1/order-tables.
func (s *Server) CreateOrderTable(ctx echo.Context) error {
	var req CreateOrderTableRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderTableCommand(kernel.NewUUID(), req.Name)
	if err != nil {
		return s.writeError(ctx, err, http.StatusBadRequest)
	}

	t, err := s.handlers.CreateOrderTable.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err, http.StatusInternalServerError)
	}

	return ctx.JSON(http.StatusCreated, toOrderTableResponse(t))
}

// GetOrderTables handles GET /api/v1/order-tables.
func (s *Server) GetOrderTables(ctx echo.Context) error {
	tables, err := s.handlers.GetAllOrderTables.Handle(ctx.Request().Context(), queries.NewGetAllOrderTablesQuery())
	if err != nil {
		return s.writeError(ctx, err, http.StatusInternalServerError)
	}

	response := make([]OrderTableResponse, len(tables))
	for i, t := range tables {
		response[i] = fromOrderTableReadModel(t)
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) SitOrderTable(ctx echo.Context) error {
	return changeOrderTable(s, ctx, commands.NewSitOrderTableCommand, s.handlers.SitOrderTable)
}

func (s *Server) ClearOrderTable(ctx echo.Context) error {
	return changeOrderTable(s, ctx, commands.NewClearOrderTableCommand, s.handlers.ClearOrderTable)
}

// ChangeNumberOfGuests handles PUT /api/v1/order-tables/:id/number-of-guests.
func (s *Server) ChangeNumberOfGuests(ctx echo.Context) error {
	var req ChangeNumberOfGuestsRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	return changeOrderTable(s, ctx, func(id kernel.UUID) (commands.ChangeNumberOfGuestsCommand, error) {
		return commands.NewChangeNumberOfGuestsCommand(id, req.NumberOfGuests)
	}, s.handlers.ChangeNumberOfGuests)
}

func changeOrderTable[C any](
	s *Server,
	ctx echo.Context,
	newCommand func(kernel.UUID) (C, error),
	handler tableHandler[C],
) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.writeError(ctx, err, http.StatusBadRequest)
	}

	cmd, err := newCommand(id)
	if err != nil {
		return s.writeError(ctx, err, http.StatusBadRequest)
	}

	t, err := handler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err, http.StatusInternalServerError)
	}

	return ctx.JSON(http.StatusOK, toOrderTableResponse(t))
}

// SyncMenu handles PUT /api/v1/menus/:id. The menu catalog owns menus; this
// endpoint stores the snapshot that order creation validates against.
func (s *Server) SyncMenu(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.writeError(ctx, err, http.StatusBadRequest)
	}

	var req SyncMenuRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSyncMenuCommand(id, req.Name, req.Price, req.Displayed)
	if err != nil {
		return s.writeError(ctx, err, http.StatusBadRequest)
	}

	m, err := s.handlers.SyncMenu.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err, http.StatusInternalServerError)
	}

	return ctx.JSON(http.StatusOK, toMenuResponse(m))
}
