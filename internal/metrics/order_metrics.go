// Package metrics exposes Prometheus instruments for the order lifecycle.
// A nil *OrderMetrics is valid and records nothing.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics holds the counters and histograms of lifecycle operations.
type OrderMetrics struct {
	transitions       *prometheus.CounterVec
	refunds           prometheus.Counter
	refundedAmount    prometheus.Counter
	gatewayFailures   *prometheus.CounterVec
	persistRetries    *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
}

// NewOrderMetrics registers the order instruments with registerer, or with the
// default registerer when it is nil. Registering twice reuses the existing collectors.
func NewOrderMetrics(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		transitions: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shoppingcart_order_transitions_total",
			Help: "Committed order lifecycle operations by operation and resulting status",
		}, []string{"operation", "status"})),
		refunds: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shoppingcart_order_refunds_total",
			Help: "Refunds recorded on committed orders",
		})),
		refundedAmount: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shoppingcart_order_refunded_amount_total",
			Help: "Sum of refunded order totals in the store currency",
		})),
		gatewayFailures: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shoppingcart_payment_gateway_failures_total",
			Help: "Payment gateway calls that failed, by operation",
		}, []string{"operation"})),
		persistRetries: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shoppingcart_order_persist_retries_total",
			Help: "Lifecycle operations re-run after a failed save, by operation",
		}, []string{"operation"})),
		operationDuration: register(registerer, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "shoppingcart_order_operation_duration_seconds",
			Help:    "Duration of lifecycle operations in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"})),
	}
}

func register[C prometheus.Collector](registerer prometheus.Registerer, collector C) C {
	if err := registerer.Register(collector); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			existing, ok := alreadyRegistered.ExistingCollector.(C)
			if !ok {
				panic(fmt.Sprintf("collector already registered with unexpected type: %v", err))
			}
			return existing
		}
		panic(fmt.Sprintf("register collector: %v", err))
	}
	return collector
}

// RecordTransition counts a committed lifecycle operation.
func (m *OrderMetrics) RecordTransition(operation, status string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(operation, status).Inc()
}

// RecordRefund counts a committed refund of amount.
func (m *OrderMetrics) RecordRefund(amount float64) {
	if m == nil {
		return
	}
	m.refunds.Inc()
	m.refundedAmount.Add(amount)
}

func (m *OrderMetrics) RecordGatewayFailure(operation string) {
	if m == nil {
		return
	}
	m.gatewayFailures.WithLabelValues(operation).Inc()
}

func (m *OrderMetrics) RecordPersistRetry(operation string) {
	if m == nil {
		return
	}
	m.persistRetries.WithLabelValues(operation).Inc()
}

func (m *OrderMetrics) ObserveDuration(operation string, d time.Duration) {
	if m == nil {
		return
	}
	m.operationDuration.WithLabelValues(operation).Observe(d.Seconds())
}
