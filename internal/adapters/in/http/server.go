// Package http exposes the order engine over HTTP with echo. Requests are
// validated against the embedded OpenAPI document before they reach a handler.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"fnbpos/internal/core/application/usecases/commands"
	"fnbpos/internal/core/application/usecases/queries"
	"fnbpos/internal/core/domain/model/kernel"
	"fnbpos/internal/core/domain/model/order"
	"fnbpos/internal/core/domain/services"
	"fnbpos/internal/core/ports"
	"fnbpos/internal/pkg/logging"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server handles HTTP requests by delegating to the application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	executeActionHandler  commands.ExecuteOrderActionCommandHandler
	addLineItemHandler    commands.AddLineItemCommandHandler
	changeQuantityHandler commands.ChangeLineItemQuantityCommandHandler
	removeLineItemHandler commands.RemoveLineItemCommandHandler

	// Query handlers
	overviewHandler     queries.GetOrderOverviewQueryHandler
	previewHandler      queries.PreviewOrderQueryHandler
	openOrdersHandler   queries.GetOpenOrdersQueryHandler
	dailyRevenueHandler queries.GetDailyRevenueQueryHandler

	probe  ports.CapabilityProbe
	logger *slog.Logger
}

// Handlers groups the use cases a Server delegates to.
type Handlers struct {
	CreateOrder    commands.CreateOrderCommandHandler
	ExecuteAction  commands.ExecuteOrderActionCommandHandler
	AddLineItem    commands.AddLineItemCommandHandler
	ChangeQuantity commands.ChangeLineItemQuantityCommandHandler
	RemoveLineItem commands.RemoveLineItemCommandHandler

	Overview     queries.GetOrderOverviewQueryHandler
	Preview      queries.PreviewOrderQueryHandler
	OpenOrders   queries.GetOpenOrdersQueryHandler
	DailyRevenue queries.GetDailyRevenueQueryHandler
}

// NewServer creates a new HTTP server. The probe is asked for capabilities on
// every overview request.
func NewServer(h Handlers, probe ports.CapabilityProbe, logger *slog.Logger) *Server {
	return &Server{
		createOrderHandler:    h.CreateOrder,
		executeActionHandler:  h.ExecuteAction,
		addLineItemHandler:    h.AddLineItem,
		changeQuantityHandler: h.ChangeQuantity,
		removeLineItemHandler: h.RemoveLineItem,
		overviewHandler:       h.Overview,
		previewHandler:        h.Preview,
		openOrdersHandler:     h.OpenOrders,
		dailyRevenueHandler:   h.DailyRevenue,
		probe:                 probe,
		logger:                logger,
	}
}

type createOrderRequest struct {
	Order        order.Order     `json:"order"`
	Items        order.LineItems `json:"items"`
	PrintKitchen bool            `json:"printKitchen"`
}

type createdOrder struct {
	ID kernel.UUID `json:"id"`
}

type previewOrderRequest struct {
	Order           order.Order     `json:"order"`
	Items           order.LineItems `json:"items"`
	Mode            services.Mode   `json:"mode"`
	Voucher         *order.Voucher  `json:"voucher,omitempty"`
	AllowAddProduct *bool           `json:"allowAddProduct,omitempty"`
}

type changeQuantityRequest struct {
	Value int                `json:"value"`
	Mode  order.QuantityMode `json:"mode"`
}

// CreateOrder handles POST /api/v1/orders - saves a create-mode order.
// A draft without id gets a new one.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	if req.Order.ID.IsZero() {
		req.Order.ID = kernel.NewUUID()
	}

	cmd, err := commands.NewCreateOrderCommand(req.Order, req.Items, req.PrintKitchen)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdOrder{ID: req.Order.ID})
}

// PreviewOrder handles POST /api/v1/orders/preview - evaluates a client-held order.
func (s *Server) PreviewOrder(ctx echo.Context) error {
	var req previewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	allowAddProduct := req.AllowAddProduct == nil || *req.AllowAddProduct
	query, err := queries.NewPreviewOrderQuery(req.Order, req.Items, req.Mode, req.Voucher, allowAddProduct)
	if err != nil {
		return s.writeError(ctx, err)
	}

	view, err := s.previewHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, view)
}

// GetOpenOrders handles GET /api/v1/orders/open - lists open orders.
func (s *Server) GetOpenOrders(ctx echo.Context) error {
	orders, err := s.openOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetOpenOrdersQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetOrderOverview handles GET /api/v1/orders/{orderId} - evaluates a saved order.
func (s *Server) GetOrderOverview(ctx echo.Context) error {
	orderID, err := bindUUID(ctx, "orderId")
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}
	allowAddProduct, err := bindAllowAddProduct(ctx)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	capabilities, err := s.probe.Probe(ctx.Request().Context())
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetOrderOverviewQuery(orderID, capabilities, allowAddProduct)
	if err != nil {
		return s.writeError(ctx, err)
	}

	overview, err := s.overviewHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, overview)
}

// ExecuteOrderAction handles POST /api/v1/orders/{orderId}/actions/{action}.
func (s *Server) ExecuteOrderAction(ctx echo.Context) error {
	orderID, err := bindUUID(ctx, "orderId")
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	action, err := services.ParseAction(ctx.Param("action"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewExecuteOrderActionCommand(orderID, action)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.executeActionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	logging.FromCtx(ctx.Request().Context()).InfoContext(ctx.Request().Context(), "order action executed",
		"order_id", orderID.String(), "action", action.String())
	return ctx.NoContent(http.StatusNoContent)
}

// AddLineItem handles POST /api/v1/orders/{orderId}/lines.
func (s *Server) AddLineItem(ctx echo.Context) error {
	orderID, err := bindUUID(ctx, "orderId")
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}
	allowAddProduct, err := bindAllowAddProduct(ctx)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	var item order.LineItem
	if err = ctx.Bind(&item); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddLineItemCommand(orderID, item, allowAddProduct)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.addLineItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeLineItemQuantity handles PATCH /api/v1/orders/{orderId}/lines/{lineId}.
// The mode defaults to absolute.
func (s *Server) ChangeLineItemQuantity(ctx echo.Context) error {
	orderID, err := bindUUID(ctx, "orderId")
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}
	lineID, err := bindUUID(ctx, "lineId")
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}
	allowAddProduct, err := bindAllowAddProduct(ctx)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	var req changeQuantityRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}
	if req.Mode == "" {
		req.Mode = order.QuantityAbsolute
	}

	cmd, err := commands.NewChangeLineItemQuantityCommand(orderID, lineID, req.Value, req.Mode, allowAddProduct)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.changeQuantityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveLineItem handles DELETE /api/v1/orders/{orderId}/lines/{lineId}.
func (s *Server) RemoveLineItem(ctx echo.Context) error {
	orderID, err := bindUUID(ctx, "orderId")
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}
	lineID, err := bindUUID(ctx, "lineId")
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRemoveLineItemCommand(orderID, lineID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.removeLineItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDailyRevenue handles GET /api/v1/reports/daily-revenue?day=YYYY-MM-DD.
func (s *Server) GetDailyRevenue(ctx echo.Context) error {
	var day openapi_types.Date
	if err := runtime.BindQueryParameter("form", true, true, "day", ctx.QueryParams(), &day); err != nil {
		return s.badRequest(ctx, "Invalid format for parameter day: "+err.Error())
	}

	query, err := queries.NewGetDailyRevenueQuery(time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local))
	if err != nil {
		return s.writeError(ctx, err)
	}

	revenue, err := s.dailyRevenueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, revenue)
}

func bindUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, err
	}
	return kernel.UUIDFromBytes(id[:])
}

// bindAllowAddProduct reads the optional allowAddProduct query flag; absent
// means true.
func bindAllowAddProduct(ctx echo.Context) (bool, error) {
	var allow *bool
	if err := runtime.BindQueryParameter("form", true, false, "allowAddProduct", ctx.QueryParams(), &allow); err != nil {
		return false, err
	}
	return allow == nil || *allow, nil
}
