package servers

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"github.com/swaggo/swag"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List categories
	// (GET /api/v1/categories)
	ListCategories(ctx echo.Context) error
	// Create a category, or rename it when id is given
	// (POST /api/v1/categories)
	CreateOrUpdateCategory(ctx echo.Context) error
	// Delete a category no product references
	// (DELETE /api/v1/categories/{categoryId})
	DeleteCategory(ctx echo.Context, categoryId CategoryId) error
	// List order summaries
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// Place an order from a checked-out cart
	// (POST /api/v1/orders)
	PlaceOrder(ctx echo.Context) error
	// Get an order with its customer and lines
	// (GET /api/v1/orders/{orderId})
	GetOrderDetails(ctx echo.Context, orderId OrderId) error
	// Replace the shipping contact and shipment details
	// (PUT /api/v1/orders/{orderId})
	UpdateOrderDetails(ctx echo.Context, orderId OrderId) error
	// Cancel the order, refunding a captured payment
	// (POST /api/v1/orders/{orderId}/cancellation)
	CancelOrder(ctx echo.Context, orderId OrderId) error
	// Record the outcome of the checkout payment
	// (POST /api/v1/orders/{orderId}/payment)
	RecordPayment(ctx echo.Context, orderId OrderId) error
	// Start fulfilling a confirmed order
	// (POST /api/v1/orders/{orderId}/processing)
	StartProcessing(ctx echo.Context, orderId OrderId) error
	// Refund a shipped order
	// (POST /api/v1/orders/{orderId}/refund)
	RefundOrder(ctx echo.Context, orderId OrderId) error
	// Charge the customer of a delayed-payment order
	// (POST /api/v1/orders/{orderId}/settlement)
	SettleDelayedPayment(ctx echo.Context, orderId OrderId) error
	// Hand the order to a carrier
	// (POST /api/v1/orders/{orderId}/shipment)
	ShipOrder(ctx echo.Context, orderId OrderId) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListCategories converts echo context to params.
func (w *ServerInterfaceWrapper) ListCategories(ctx echo.Context) error {
	return w.Handler.ListCategories(ctx)
}

// CreateOrUpdateCategory converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrUpdateCategory(ctx echo.Context) error {
	return w.Handler.CreateOrUpdateCategory(ctx)
}

// DeleteCategory converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteCategory(ctx echo.Context) error {
	var categoryId CategoryId
	if err := bindPathID(ctx, "categoryId", &categoryId); err != nil {
		return err
	}
	return w.Handler.DeleteCategory(ctx, categoryId)
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams

	query := ctx.QueryParams()
	if err := runtime.BindQueryParameter("form", true, false, "status", query, &params.Status); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "paymentStatus", query, &params.PaymentStatus); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter paymentStatus: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "userId", query, &params.UserId); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter userId: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", query, &params.Limit); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	return w.Handler.ListOrders(ctx, params)
}

// PlaceOrder converts echo context to params.
func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	return w.Handler.PlaceOrder(ctx)
}

// GetOrderDetails converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderDetails(ctx echo.Context) error {
	var orderId OrderId
	if err := bindPathID(ctx, "orderId", &orderId); err != nil {
		return err
	}
	return w.Handler.GetOrderDetails(ctx, orderId)
}

// UpdateOrderDetails converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrderDetails(ctx echo.Context) error {
	var orderId OrderId
	if err := bindPathID(ctx, "orderId", &orderId); err != nil {
		return err
	}
	return w.Handler.UpdateOrderDetails(ctx, orderId)
}

// CancelOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	var orderId OrderId
	if err := bindPathID(ctx, "orderId", &orderId); err != nil {
		return err
	}
	return w.Handler.CancelOrder(ctx, orderId)
}

// RecordPayment converts echo context to params.
func (w *ServerInterfaceWrapper) RecordPayment(ctx echo.Context) error {
	var orderId OrderId
	if err := bindPathID(ctx, "orderId", &orderId); err != nil {
		return err
	}
	return w.Handler.RecordPayment(ctx, orderId)
}

// StartProcessing converts echo context to params.
func (w *ServerInterfaceWrapper) StartProcessing(ctx echo.Context) error {
	var orderId OrderId
	if err := bindPathID(ctx, "orderId", &orderId); err != nil {
		return err
	}
	return w.Handler.StartProcessing(ctx, orderId)
}

// RefundOrder converts echo context to params.
func (w *ServerInterfaceWrapper) RefundOrder(ctx echo.Context) error {
	var orderId OrderId
	if err := bindPathID(ctx, "orderId", &orderId); err != nil {
		return err
	}
	return w.Handler.RefundOrder(ctx, orderId)
}

// SettleDelayedPayment converts echo context to params.
func (w *ServerInterfaceWrapper) SettleDelayedPayment(ctx echo.Context) error {
	var orderId OrderId
	if err := bindPathID(ctx, "orderId", &orderId); err != nil {
		return err
	}
	return w.Handler.SettleDelayedPayment(ctx, orderId)
}

// ShipOrder converts echo context to params.
func (w *ServerInterfaceWrapper) ShipOrder(ctx echo.Context) error {
	var orderId OrderId
	if err := bindPathID(ctx, "orderId", &orderId); err != nil {
		return err
	}
	return w.Handler.ShipOrder(ctx, orderId)
}

func bindPathID(ctx echo.Context, name string, dest *int64) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), dest,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

// EchoRouter is the subset of echo routing used to register handlers, so both
// *echo.Echo and *echo.Group work.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/categories", wrapper.ListCategories)
	router.POST(baseURL+"/api/v1/categories", wrapper.CreateOrUpdateCategory)
	router.DELETE(baseURL+"/api/v1/categories/:categoryId", wrapper.DeleteCategory)
	router.GET(baseURL+"/api/v1/orders", wrapper.ListOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.PlaceOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.GetOrderDetails)
	router.PUT(baseURL+"/api/v1/orders/:orderId", wrapper.UpdateOrderDetails)
	router.POST(baseURL+"/api/v1/orders/:orderId/cancellation", wrapper.CancelOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/payment", wrapper.RecordPayment)
	router.POST(baseURL+"/api/v1/orders/:orderId/processing", wrapper.StartProcessing)
	router.POST(baseURL+"/api/v1/orders/:orderId/refund", wrapper.RefundOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/settlement", wrapper.SettleDelayedPayment)
	router.POST(baseURL+"/api/v1/orders/:orderId/shipment", wrapper.ShipOrder)
}

//go:embed openapi.yaml
var openAPISpec []byte

// GetSwagger returns the parsed OpenAPI document the routes above implement.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPISpec)
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI document: %w", err)
	}
	return doc, nil
}

// swaggerDoc serves the OpenAPI document to echo-swagger as JSON.
type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

// RegisterSwaggerDoc publishes the OpenAPI document under the default swag
// instance name, which is where echo-swagger's doc.json handler reads it from.
func RegisterSwaggerDoc() error {
	doc, err := GetSwagger()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("error encoding OpenAPI document: %w", err)
	}
	if swag.GetSwagger(swag.Name) == nil {
		swag.Register(swag.Name, swaggerDoc{json: string(raw)})
	}
	return nil
}
