// Package servers holds the HTTP contract of the shop API: the wire types, the
// ServerInterface implemented by the adapter, and the echo wiring that binds
// path and query parameters before calling it. openapi.yaml is the source of truth.
package servers

import (
	"time"
)

// Defines values for OrderStatus.
const (
	OrderStatusCancelled  OrderStatus = "Cancelled"
	OrderStatusConfirmed  OrderStatus = "Confirmed"
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusRefunded   OrderStatus = "Refunded"
	OrderStatusShipped    OrderStatus = "Shipped"
)

// Defines values for PaymentStatus.
const (
	PaymentStatusApproved       PaymentStatus = "Approved"
	PaymentStatusDelayedPayment PaymentStatus = "DelayedPayment"
	PaymentStatusPending        PaymentStatus = "Pending"
	PaymentStatusRefunded       PaymentStatus = "Refunded"
	PaymentStatusRejected       PaymentStatus = "Rejected"
)

// Defines values for PaymentOutcomeOutcome.
const (
	Approved       PaymentOutcomeOutcome = "Approved"
	DelayedPayment PaymentOutcomeOutcome = "DelayedPayment"
	Rejected       PaymentOutcomeOutcome = "Rejected"
)

// Category defines model for Category.
type Category struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

// CategoryInput defines model for CategoryInput.
type CategoryInput struct {
	Id   *int64 `json:"id,omitempty"`
	Name string `json:"name"`
}

// Contact defines model for Contact.
type Contact struct {
	City          string `json:"city"`
	Name          string `json:"name"`
	PhoneNumber   string `json:"phoneNumber"`
	PostalCode    string `json:"postalCode"`
	State         string `json:"state"`
	StreetAddress string `json:"streetAddress"`
}

// CreatedResource defines model for CreatedResource.
type CreatedResource struct {
	Id int64 `json:"id"`
}

// Customer defines model for Customer.
type Customer struct {
	Email       string  `json:"email"`
	Id          string  `json:"id"`
	Name        string  `json:"name"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Contact Contact     `json:"contact"`
	Lines   []OrderLine `json:"lines"`
	UserId  string      `json:"userId"`
}

// OrderDetailLine defines model for OrderDetailLine.
type OrderDetailLine struct {
	Id          int64   `json:"id"`
	LineTotal   string  `json:"lineTotal"`
	Price       string  `json:"price"`
	ProductId   int64   `json:"productId"`
	ProductName *string `json:"productName,omitempty"`
	Quantity    int     `json:"quantity"`
}

// OrderDetails defines model for OrderDetails.
type OrderDetails struct {
	Carrier         *string           `json:"carrier,omitempty"`
	Contact         Contact           `json:"contact"`
	Id              int64             `json:"id"`
	Lines           []OrderDetailLine `json:"lines"`
	OrderDate       time.Time         `json:"orderDate"`
	PaymentDate     *time.Time        `json:"paymentDate,omitempty"`
	PaymentDueDate  *time.Time        `json:"paymentDueDate,omitempty"`
	PaymentIntentId *string           `json:"paymentIntentId,omitempty"`
	PaymentStatus   PaymentStatus     `json:"paymentStatus"`
	RefundId        *string           `json:"refundId,omitempty"`
	SessionId       *string           `json:"sessionId,omitempty"`
	ShippingDate    *time.Time        `json:"shippingDate,omitempty"`
	Status          OrderStatus       `json:"status"`
	Total           string            `json:"total"`
	TrackingNumber  *string           `json:"trackingNumber,omitempty"`
	User            *Customer         `json:"user,omitempty"`
	UserId          string            `json:"userId"`
}

// OrderLine defines model for OrderLine.
type OrderLine struct {
	ProductId int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// OrderSummary defines model for OrderSummary.
type OrderSummary struct {
	Id            int64         `json:"id"`
	LineCount     int           `json:"lineCount"`
	OrderDate     time.Time     `json:"orderDate"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	Status        OrderStatus   `json:"status"`
	Total         string        `json:"total"`
	UserId        string        `json:"userId"`
	UserName      string        `json:"userName"`
}

// OrderUpdate defines model for OrderUpdate.
type OrderUpdate struct {
	Carrier        *string `json:"carrier,omitempty"`
	Contact        Contact `json:"contact"`
	TrackingNumber *string `json:"trackingNumber,omitempty"`
}

// PaymentOutcome defines model for PaymentOutcome.
type PaymentOutcome struct {
	Outcome         PaymentOutcomeOutcome `json:"outcome"`
	PaymentIntentId *string               `json:"paymentIntentId,omitempty"`
	SessionId       *string               `json:"sessionId,omitempty"`
}

// PaymentOutcomeOutcome defines model for PaymentOutcome.Outcome.
type PaymentOutcomeOutcome string

// PaymentStatus defines model for PaymentStatus.
type PaymentStatus string

// Settlement defines model for Settlement.
type Settlement struct {
	Customer      *string `json:"customer,omitempty"`
	PaymentMethod *string `json:"paymentMethod,omitempty"`
}

// Shipment defines model for Shipment.
type Shipment struct {
	Carrier        string `json:"carrier"`
	TrackingNumber string `json:"trackingNumber"`
}

// CategoryId defines model for CategoryId.
type CategoryId = int64

// OrderId defines model for OrderId.
type OrderId = int64

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Status        *OrderStatus   `form:"status,omitempty" json:"status,omitempty"`
	PaymentStatus *PaymentStatus `form:"paymentStatus,omitempty" json:"paymentStatus,omitempty"`
	UserId        *string        `form:"userId,omitempty" json:"userId,omitempty"`
	Limit         *int           `form:"limit,omitempty" json:"limit,omitempty"`
}

// CreateOrUpdateCategoryJSONRequestBody defines body for CreateOrUpdateCategory for application/json ContentType.
type CreateOrUpdateCategoryJSONRequestBody = CategoryInput

// PlaceOrderJSONRequestBody defines body for PlaceOrder for application/json ContentType.
type PlaceOrderJSONRequestBody = NewOrder

// UpdateOrderDetailsJSONRequestBody defines body for UpdateOrderDetails for application/json ContentType.
type UpdateOrderDetailsJSONRequestBody = OrderUpdate

// RecordPaymentJSONRequestBody defines body for RecordPayment for application/json ContentType.
type RecordPaymentJSONRequestBody = PaymentOutcome

// ShipOrderJSONRequestBody defines body for ShipOrder for application/json ContentType.
type ShipOrderJSONRequestBody = Shipment

// SettleDelayedPaymentJSONRequestBody defines body for SettleDelayedPayment for application/json ContentType.
type SettleDelayedPaymentJSONRequestBody = Settlement
