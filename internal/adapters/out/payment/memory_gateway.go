package payment

import (
	"context"
	"errors"
	"sync"

	"shoppingcart/internal/core/domain/model/kernel"
	"shoppingcart/internal/core/ports"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// MemoryGateway is an in-process payment processor. It remembers every
// idempotency key, so a retried request returns the original result instead
// of moving money again.
type MemoryGateway struct {
	mu      sync.Mutex
	refunds map[string]ports.RefundResult
	charges map[string]ports.ChargeResult
	logger  *log.Entry

	// refunded accumulates the amount refunded per payment reference.
	refunded map[string]kernel.Money
	issued   int

	// RefundErr and ChargeErr, when set, fail the next matching call and are then cleared.
	RefundErr error
	ChargeErr error

	RefundCalls int
	ChargeCalls int
}

func NewMemoryGateway(logger *log.Entry) *MemoryGateway {
	if logger == nil {
		logger = log.New().WithField("component", "memory-gateway")
	}
	return &MemoryGateway{
		refunds:  make(map[string]ports.RefundResult),
		charges:  make(map[string]ports.ChargeResult),
		refunded: make(map[string]kernel.Money),
		logger:   logger,
	}
}

func (g *MemoryGateway) CreateRefund(_ context.Context, req ports.RefundRequest) (ports.RefundResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.RefundCalls++
	if err := g.RefundErr; err != nil {
		g.RefundErr = nil
		return ports.RefundResult{}, err
	}
	if req.PaymentReference == "" {
		return ports.RefundResult{}, errors.New("refund requires a payment reference")
	}

	if res, ok := g.refunds[req.IdempotencyKey]; ok && req.IdempotencyKey != "" {
		g.logger.WithField("idempotency_key", req.IdempotencyKey).Debug("Replaying refund")
		return res, nil
	}

	res := ports.RefundResult{RefundID: "re_" + uuid.NewString(), Status: "succeeded"}
	if req.IdempotencyKey != "" {
		g.refunds[req.IdempotencyKey] = res
	}
	total, ok := g.refunded[req.PaymentReference]
	if !ok {
		total = kernel.ZeroMoney()
	}
	g.refunded[req.PaymentReference] = total.Add(req.Amount)
	g.issued++
	return res, nil
}

func (g *MemoryGateway) CreateCharge(_ context.Context, req ports.ChargeRequest) (ports.ChargeResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ChargeCalls++
	if err := g.ChargeErr; err != nil {
		g.ChargeErr = nil
		return ports.ChargeResult{}, err
	}

	if res, ok := g.charges[req.IdempotencyKey]; ok && req.IdempotencyKey != "" {
		return res, nil
	}

	res := ports.ChargeResult{PaymentReference: "pi_" + uuid.NewString(), Status: "succeeded"}
	if req.IdempotencyKey != "" {
		g.charges[req.IdempotencyKey] = res
	}
	return res, nil
}

// RefundsIssued returns how many refunds actually moved money. Replays of a
// known idempotency key are not counted.
func (g *MemoryGateway) RefundsIssued() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.issued
}

// RefundedAmount returns the total refunded against a payment reference.
func (g *MemoryGateway) RefundedAmount(paymentReference string) kernel.Money {
	g.mu.Lock()
	defer g.mu.Unlock()
	if total, ok := g.refunded[paymentReference]; ok {
		return total
	}
	return kernel.ZeroMoney()
}

var _ ports.PaymentGateway = (*MemoryGateway)(nil)
