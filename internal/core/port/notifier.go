package port

import (
	"context"

	"github.com/robekc/topup-service/internal/core/domain"
)

//go:generate mockgen -source=notifier.go -destination=mock/notifier.go -package=mock

// Notifier is a single delivery channel (Telegram bot, email, ...).
type Notifier interface {
	Channel() string
	Notify(ctx context.Context, order *domain.Order, status domain.OrderStatus) error
}

// Dispatcher fans order state changes out to the configured channels,
// at least once per channel, deduplicated per (order, channel, status).
type Dispatcher interface {
	Dispatch(orderID domain.OrderID, status domain.OrderStatus)
}
