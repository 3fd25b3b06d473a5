// Package payment implements ports.PaymentGateway: a Stripe-backed gateway for
// production and an in-memory gateway for local runs and tests. Both issue at
// most one refund or charge per idempotency key.
package payment
