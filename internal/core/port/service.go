package port

import (
	"context"

	"github.com/robekc/topup-service/internal/core/domain"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock

type Service interface {
	// CreateOrder validates the request, persists a Pending order, opens
	// a checkout session at the payment gateway and returns the order in
	// AwaitingPayment with PayURL set.
	CreateOrder(ctx context.Context, productID string, userID string) (*domain.Order, error)
	GetOrder(ctx context.Context, id domain.OrderID) (*domain.Order, error)

	// ApplyPaymentResult applies a verified gateway callback. Duplicate
	// and late deliveries are absorbed as idempotent no-ops.
	ApplyPaymentResult(ctx context.Context, paymentRef string, outcome domain.PaymentOutcome) error

	CancelOrder(ctx context.Context, id domain.OrderID) (*domain.Order, error)
	NotifyOrder(ctx context.Context, id domain.OrderID) error
	ListRecentOrders(ctx context.Context, limit uint64) ([]*domain.Order, error)

	// SweepStaleOrders expires orders stuck past the configured window,
	// reconciling AwaitingPayment ones against the gateway first.
	SweepStaleOrders(ctx context.Context) error
}
