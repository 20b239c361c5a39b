package domain

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusPending         OrderStatus = "PENDING"
	OrderStatusAwaitingPayment OrderStatus = "AWAITING_PAYMENT"
	OrderStatusPaid            OrderStatus = "PAID"
	OrderStatusFailed          OrderStatus = "FAILED"
	OrderStatusCancelled       OrderStatus = "CANCELLED"
	OrderStatusExpired         OrderStatus = "EXPIRED"
)

// Terminal reports whether no further transition is accepted from s.
func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderStatusPaid, OrderStatusFailed, OrderStatusCancelled, OrderStatusExpired:
		return true
	}
	return false
}

type OrderID string

type Order struct {
	ID        OrderID
	ProductID string
	UserID    string
	// Amount is in the smallest currency unit. Fixed at creation,
	// never recomputed from the catalog afterwards.
	Amount     int64
	Status     OrderStatus
	PaymentRef string
	PayURL     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PaymentOutcome is the result reported by the payment gateway for a
// checkout session, either in a webhook or in a status poll.
type PaymentOutcome string

const (
	PaymentOutcomePaid    PaymentOutcome = "paid"
	PaymentOutcomeFailed  PaymentOutcome = "failed"
	PaymentOutcomeUnknown PaymentOutcome = "unknown"
)

// TargetStatus maps a gateway outcome to the order status it drives.
func (o PaymentOutcome) TargetStatus() (OrderStatus, bool) {
	switch o {
	case PaymentOutcomePaid:
		return OrderStatusPaid, true
	case PaymentOutcomeFailed:
		return OrderStatusFailed, true
	}
	return "", false
}
