// Package order provides the order aggregate of the shoppingcart domain: the
// Header aggregate root, its Detail line items, and the two independent state
// machines that govern an order's life.
//
// The package includes:
//   - Header: the aggregate root carrying customer, totals, fulfilment and payment state
//   - Detail: a line item referencing its header and product by id
//   - Status: fulfilment state machine (Pending -> Confirmed -> Processing -> Shipped)
//   - PaymentStatus: money-movement state machine (Pending -> Approved -> Refunded, ...)
//   - Contact: the shipping contact value object
//
// Key business rules:
//   - Status and PaymentStatus are tracked separately, so a cash-on-delivery order
//     can be Shipped while its payment is still DelayedPayment
//   - An Approved payment always carries a payment reference
//   - Orders are never deleted; they are cancelled or refunded
//   - Cancelling an order whose payment was Approved requires a refund first; the
//     use case layer decides and performs it, the aggregate only records the outcome
package order
