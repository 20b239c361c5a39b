package port

import (
	"context"
	"time"

	"github.com/robekc/topup-service/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock

// TransitionFn mutates an order inside TransitionOrder, after the status
// check passed and before the new status is persisted.
type TransitionFn func(*domain.Order) error

type Repository interface {
	// CreateOrder stores a new order, returning domain.ErrOrderExists
	// if the id is already taken.
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, id domain.OrderID) (*domain.Order, error)
	ReadOrderByPaymentRef(ctx context.Context, paymentRef string) (*domain.Order, error)

	// TransitionOrder is the sole mutation path for stored orders. It
	// atomically checks that the order is in status from, applies mutate
	// and persists the order with status to and a fresh UpdatedAt.
	// A status mismatch returns domain.ErrOrderStateConflict; of two
	// concurrent transitions from the same status at most one wins.
	TransitionOrder(ctx context.Context, id domain.OrderID,
		from, to domain.OrderStatus, mutate TransitionFn) (*domain.Order, error)

	ListStaleOrders(ctx context.Context, statuses []domain.OrderStatus, olderThan time.Duration) ([]*domain.Order, error)
	ListRecentOrders(ctx context.Context, limit uint64) ([]*domain.Order, error)

	// Notification dedup set, keyed by (order, channel, status).
	NotificationSent(ctx context.Context, id domain.OrderID, channel string, status domain.OrderStatus) (bool, error)
	MarkNotificationSent(ctx context.Context, id domain.OrderID, channel string, status domain.OrderStatus) error
}
