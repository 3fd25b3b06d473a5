package http

import (
	"context"
	"net/http"

	"shoppingcart/internal/core/application/usecases/commands"
	"shoppingcart/internal/core/application/usecases/queries"
	"shoppingcart/internal/core/domain/model/order"
	"shoppingcart/internal/generated/servers"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

// CommandHandler is any use case that only reports success or failure.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// ResultHandler is any use case that returns a value.
type ResultHandler[C, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}

// Handlers are the use cases the HTTP API exposes.
type Handlers struct {
	// Command handlers
	CreateOrUpdateCategory ResultHandler[commands.CreateOrUpdateCategoryCommand, int64]
	DeleteCategory         CommandHandler[commands.DeleteCategoryCommand]
	PlaceOrder             ResultHandler[commands.PlaceOrderCommand, int64]
	UpdateOrderDetails     CommandHandler[commands.UpdateOrderDetailsCommand]
	RecordPayment          CommandHandler[commands.RecordPaymentCommand]
	StartProcessing        CommandHandler[commands.StartProcessingCommand]
	ShipOrder              CommandHandler[commands.ShipOrderCommand]
	CancelOrder            CommandHandler[commands.CancelOrderCommand]
	RefundOrder            CommandHandler[commands.RefundOrderCommand]
	SettleDelayedPayment   CommandHandler[commands.SettleDelayedPaymentCommand]

	// Query handlers
	ListCategories  ResultHandler[queries.ListCategoriesQuery, []queries.ListCategoriesQueryResponse]
	ListOrders      ResultHandler[queries.ListOrdersQuery, []queries.ListOrdersQueryResponse]
	GetOrderDetails ResultHandler[queries.GetOrderDetailsQuery, queries.OrderVM]
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *log.Entry
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *log.Entry) *Server {
	if logger == nil {
		logger = log.New().WithField("component", "http")
	}
	return &Server{
		handlers: handlers,
		logger:   logger,
	}
}

// ListCategories handles GET /api/v1/categories.
func (s *Server) ListCategories(ctx echo.Context) error {
	categories, err := s.handlers.ListCategories.Handle(ctx.Request().Context(), queries.NewListCategoriesQuery())
	if err != nil {
		return s.fail(ctx, "Failed to retrieve categories", err)
	}

	response := make([]servers.Category, len(categories))
	for i, category := range categories {
		response[i] = servers.Category{
			Id:   category.ID,
			Name: category.Name,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrUpdateCategory handles POST /api/v1/categories.
func (s *Server) CreateOrUpdateCategory(ctx echo.Context) error {
	var body servers.CreateOrUpdateCategoryJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewCreateOrUpdateCategoryCommand(deref(body.Id), body.Name)
	if err != nil {
		return s.fail(ctx, "Invalid category data", err)
	}

	id, err := s.handlers.CreateOrUpdateCategory.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "Failed to store category", err)
	}

	return ctx.JSON(http.StatusOK, servers.CreatedResource{Id: id})
}

// DeleteCategory handles DELETE /api/v1/categories/{categoryId}.
func (s *Server) DeleteCategory(ctx echo.Context, categoryID servers.CategoryId) error {
	cmd, err := commands.NewDeleteCategoryCommand(categoryID)
	if err != nil {
		return s.fail(ctx, "Invalid category id", err)
	}

	if err := s.handlers.DeleteCategory.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "Failed to delete category", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	query, err := queries.NewListOrdersQuery(
		string(deref(params.Status)),
		string(deref(params.PaymentStatus)),
		deref(params.UserId),
		deref(params.Limit),
	)
	if err != nil {
		return s.fail(ctx, "Invalid order filter", err)
	}

	orders, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "Failed to retrieve orders", err)
	}

	response := make([]servers.OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = servers.OrderSummary{
			Id:            o.ID,
			UserId:        o.UserID,
			UserName:      o.UserName,
			OrderDate:     o.OrderDate,
			Total:         o.Total.String(),
			Status:        servers.OrderStatus(o.Status.String()),
			PaymentStatus: servers.PaymentStatus(o.PaymentStatus.String()),
			LineCount:     o.LineCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var body servers.PlaceOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	contact, err := toContact(body.Contact)
	if err != nil {
		return s.fail(ctx, "Invalid contact", err)
	}

	lines := make([]commands.OrderLine, len(body.Lines))
	for i, line := range body.Lines {
		lines[i] = commands.OrderLine{ProductID: line.ProductId, Quantity: line.Quantity}
	}

	cmd, err := commands.NewPlaceOrderCommand(body.UserId, contact, lines)
	if err != nil {
		return s.fail(ctx, "Invalid order data", err)
	}

	id, err := s.handlers.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "Failed to place order", err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResource{Id: id})
}

// GetOrderDetails handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrderDetails(ctx echo.Context, orderID servers.OrderId) error {
	query, err := queries.NewGetOrderDetailsQuery(orderID)
	if err != nil {
		return s.fail(ctx, "Invalid order id", err)
	}

	vm, err := s.handlers.GetOrderDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "Failed to retrieve order", err)
	}

	return ctx.JSON(http.StatusOK, toOrderDetails(vm))
}

// UpdateOrderDetails handles PUT /api/v1/orders/{orderId}.
func (s *Server) UpdateOrderDetails(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.UpdateOrderDetailsJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	contact, err := toContact(body.Contact)
	if err != nil {
		return s.fail(ctx, "Invalid contact", err)
	}

	cmd, err := commands.NewUpdateOrderDetailsCommand(orderID, contact, deref(body.Carrier), deref(body.TrackingNumber))
	if err != nil {
		return s.fail(ctx, "Invalid order data", err)
	}

	return s.noContent(ctx, "Failed to update order", s.handlers.UpdateOrderDetails.Handle(ctx.Request().Context(), cmd))
}

// RecordPayment handles POST /api/v1/orders/{orderId}/payment.
func (s *Server) RecordPayment(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.RecordPaymentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	outcome, err := order.ParsePaymentStatus(string(body.Outcome))
	if err != nil {
		return s.fail(ctx, "Invalid payment outcome", err)
	}

	cmd, err := commands.NewRecordPaymentCommand(orderID, outcome, deref(body.PaymentIntentId), deref(body.SessionId))
	if err != nil {
		return s.fail(ctx, "Invalid payment data", err)
	}

	return s.noContent(ctx, "Failed to record payment", s.handlers.RecordPayment.Handle(ctx.Request().Context(), cmd))
}

// StartProcessing handles POST /api/v1/orders/{orderId}/processing.
func (s *Server) StartProcessing(ctx echo.Context, orderID servers.OrderId) error {
	cmd, err := commands.NewStartProcessingCommand(orderID)
	if err != nil {
		return s.fail(ctx, "Invalid order id", err)
	}

	return s.noContent(ctx, "Failed to start processing", s.handlers.StartProcessing.Handle(ctx.Request().Context(), cmd))
}

// ShipOrder handles POST /api/v1/orders/{orderId}/shipment.
func (s *Server) ShipOrder(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.ShipOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewShipOrderCommand(orderID, body.Carrier, body.TrackingNumber)
	if err != nil {
		return s.fail(ctx, "Invalid shipment data", err)
	}

	return s.noContent(ctx, "Failed to ship order", s.handlers.ShipOrder.Handle(ctx.Request().Context(), cmd))
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancellation.
func (s *Server) CancelOrder(ctx echo.Context, orderID servers.OrderId) error {
	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, "Invalid order id", err)
	}

	return s.noContent(ctx, "Failed to cancel order", s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd))
}

// RefundOrder handles POST /api/v1/orders/{orderId}/refund.
func (s *Server) RefundOrder(ctx echo.Context, orderID servers.OrderId) error {
	cmd, err := commands.NewRefundOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, "Invalid order id", err)
	}

	return s.noContent(ctx, "Failed to refund order", s.handlers.RefundOrder.Handle(ctx.Request().Context(), cmd))
}

// SettleDelayedPayment handles POST /api/v1/orders/{orderId}/settlement.
func (s *Server) SettleDelayedPayment(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.SettleDelayedPaymentJSONRequestBody
	if ctx.Request().ContentLength != 0 {
		if err := ctx.Bind(&body); err != nil {
			return invalidBody(ctx)
		}
	}

	cmd, err := commands.NewSettleDelayedPaymentCommand(orderID, deref(body.Customer), deref(body.PaymentMethod))
	if err != nil {
		return s.fail(ctx, "Invalid settlement data", err)
	}

	return s.noContent(ctx, "Failed to settle payment", s.handlers.SettleDelayedPayment.Handle(ctx.Request().Context(), cmd))
}

func (s *Server) noContent(ctx echo.Context, message string, err error) error {
	if err != nil {
		return s.fail(ctx, message, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func toContact(c servers.Contact) (order.Contact, error) {
	return order.NewContact(c.Name, c.PhoneNumber, c.StreetAddress, c.City, c.State, c.PostalCode)
}

func toOrderDetails(vm queries.OrderVM) servers.OrderDetails {
	h := vm.Header
	contact := h.Contact()

	response := servers.OrderDetails{
		Id:              h.ID(),
		UserId:          h.UserID(),
		OrderDate:       h.OrderDate(),
		ShippingDate:    h.ShippingDate(),
		Total:           h.Total().String(),
		Status:          servers.OrderStatus(h.Status().String()),
		PaymentStatus:   servers.PaymentStatus(h.PaymentStatus().String()),
		PaymentIntentId: optional(h.PaymentIntentID()),
		SessionId:       optional(h.SessionID()),
		PaymentDate:     h.PaymentDate(),
		PaymentDueDate:  h.PaymentDueDate(),
		RefundId:        optional(h.RefundID()),
		Carrier:         optional(h.Carrier()),
		TrackingNumber:  optional(h.TrackingNumber()),
		Contact: servers.Contact{
			Name:          contact.Name(),
			PhoneNumber:   contact.PhoneNumber(),
			StreetAddress: contact.StreetAddress(),
			City:          contact.City(),
			State:         contact.State(),
			PostalCode:    contact.PostalCode(),
		},
		Lines: make([]servers.OrderDetailLine, len(vm.Details)),
	}

	if vm.User != nil {
		response.User = &servers.Customer{
			Id:          vm.User.ID(),
			Name:        vm.User.Name(),
			Email:       vm.User.Email(),
			PhoneNumber: optional(vm.User.PhoneNumber()),
		}
	}

	for i, d := range vm.Details {
		line := servers.OrderDetailLine{
			Id:        d.ID(),
			ProductId: d.ProductID(),
			Quantity:  d.Quantity(),
			Price:     d.Price().String(),
			LineTotal: d.LineTotal().String(),
		}
		if p := d.Product(); p != nil {
			line.ProductName = optional(p.Name())
		}
		response.Lines[i] = line
	}

	return response
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
