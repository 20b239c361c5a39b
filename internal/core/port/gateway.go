package port

import (
	"context"

	"github.com/robekc/topup-service/internal/core/domain"
)

//go:generate mockgen -source=gateway.go -destination=mock/gateway.go -package=mock

// CheckoutSession is what the gateway hands back when a payment session
// is opened for an order.
type CheckoutSession struct {
	PaymentRef string
	PayURL     string
}

// PaymentGateway is the external payment provider, opaque beyond session
// creation and status polling.
type PaymentGateway interface {
	CreateSession(ctx context.Context, orderID domain.OrderID, amount int64) (*CheckoutSession, error)
	SessionStatus(ctx context.Context, paymentRef string) (domain.PaymentOutcome, error)
}
