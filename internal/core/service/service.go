package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/robekc/topup-service/internal/core/domain"
	"github.com/robekc/topup-service/internal/core/port"
	"go.uber.org/zap"
)

// createSessionRetries bounds gateway retries inside one CreateOrder call.
const createSessionRetries = 3

type Service struct {
	repo       port.Repository
	catalog    port.Catalog
	gateway    port.PaymentGateway
	dispatcher port.Dispatcher
	idgen      port.IDGenerator
	orderTTL   time.Duration
	logger     *zap.Logger
}

func NewService(repo port.Repository, catalog port.Catalog, gateway port.PaymentGateway,
	dispatcher port.Dispatcher, idgen port.IDGenerator,
	orderTTL time.Duration, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:       repo,
		catalog:    catalog,
		gateway:    gateway,
		dispatcher: dispatcher,
		idgen:      idgen,
		orderTTL:   orderTTL,
		logger:     logger,
	}, nil
}

func (s *Service) CreateOrder(ctx context.Context, productID string, userID string) (*domain.Order, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(productID) == "" {
		return nil, domain.ErrInvalidRequest
	}

	product, err := s.catalog.Product(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownProduct) {
			return nil, domain.ErrUnknownProduct
		}
		s.logger.Error("Catalog lookup", zap.String("product", productID), zap.Error(err))
		return nil, domain.ErrInternal
	}

	// Amount is a snapshot of the catalog price at this instant and is
	// never recomputed for this order.
	now := time.Now()
	order := &domain.Order{
		ID:        s.idgen.NewOrderID(),
		ProductID: product.ID,
		UserID:    userID,
		Amount:    product.Price,
		Status:    domain.OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	order, err = s.repo.CreateOrder(ctx, order)
	if err != nil {
		if errors.Is(err, domain.ErrOrderExists) {
			// 128-bit ids make this a generator bug, not bad luck.
			s.logger.Error("Order id collision", zap.String("order", string(order.ID)))
		} else {
			s.logger.Error("Create order", zap.Error(err))
		}
		return nil, domain.ErrInternal
	}

	session, err := s.createSession(ctx, order)
	if err != nil {
		s.logger.Error("Checkout session", zap.String("order", string(order.ID)), zap.Error(err))
		s.mustTransition(ctx, order.ID, domain.OrderStatusPending, domain.OrderStatusFailed, nil)
		return nil, domain.ErrGatewayUnavailable
	}

	order, err = s.repo.TransitionOrder(ctx, order.ID,
		domain.OrderStatusPending, domain.OrderStatusAwaitingPayment,
		func(o *domain.Order) error {
			o.PaymentRef = session.PaymentRef
			o.PayURL = session.PayURL
			return nil
		})
	if err != nil {
		if errors.Is(err, domain.ErrOrderStateConflict) {
			// Swept or cancelled between insert and session open.
			return s.repo.ReadOrder(ctx, order.ID)
		}
		s.logger.Error("Open order", zap.String("order", string(order.ID)), zap.Error(err))
		return nil, domain.ErrInternal
	}

	s.dispatcher.Dispatch(order.ID, order.Status)

	return order, nil
}

func (s *Service) createSession(ctx context.Context, order *domain.Order) (*port.CheckoutSession, error) {
	var session *port.CheckoutSession

	op := func() error {
		var err error
		session, err = s.gateway.CreateSession(ctx, order.ID, order.Amount)
		return err
	}

	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), createSessionRetries), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *Service) GetOrder(ctx context.Context, id domain.OrderID) (*domain.Order, error) {
	return s.repo.ReadOrder(ctx, id)
}

func (s *Service) ListRecentOrders(ctx context.Context, limit uint64) ([]*domain.Order, error) {
	list, err := s.repo.ListRecentOrders(ctx, limit)
	if err != nil {
		s.logger.Error("List recent orders", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}

// ApplyPaymentResult applies a verified gateway callback. Gateways deliver
// webhooks at least once and out of order, so everything but the first
// delivery must degrade to a no-op.
func (s *Service) ApplyPaymentResult(ctx context.Context, paymentRef string, outcome domain.PaymentOutcome) error {
	target, ok := outcome.TargetStatus()
	if !ok {
		return domain.ErrUnknownOutcome
	}

	order, err := s.repo.ReadOrderByPaymentRef(ctx, paymentRef)
	if err != nil {
		return err
	}

	_, err = s.repo.TransitionOrder(ctx, order.ID,
		domain.OrderStatusAwaitingPayment, target, nil)
	if err != nil {
		if errors.Is(err, domain.ErrOrderStateConflict) {
			return s.absorbLostWebhook(ctx, order.ID, target)
		}
		s.logger.Error("Apply payment result",
			zap.String("order", string(order.ID)), zap.Error(err))
		return domain.ErrInternal
	}

	s.dispatcher.Dispatch(order.ID, target)

	return nil
}

// absorbLostWebhook decides what a lost transition race means. Same terminal
// outcome is a duplicate delivery; a different one is a gateway inconsistency.
// Neither is surfaced to the gateway as a failure.
func (s *Service) absorbLostWebhook(ctx context.Context, id domain.OrderID, target domain.OrderStatus) error {
	current, err := s.repo.ReadOrder(ctx, id)
	if err != nil {
		return err
	}

	if current.Status == target {
		s.logger.Debug("Duplicate webhook delivery",
			zap.String("order", string(id)), zap.String("status", string(target)))
		return nil
	}

	s.logger.Warn("Webhook outcome conflicts with stored status",
		zap.String("order", string(id)),
		zap.String("stored", string(current.Status)),
		zap.String("reported", string(target)))
	return nil
}

// CancelOrder cancels a not-yet-terminal order. Cancelling a terminal order
// is an idempotent no-op returning the current record.
func (s *Service) CancelOrder(ctx context.Context, id domain.OrderID) (*domain.Order, error) {
	for _, from := range []domain.OrderStatus{domain.OrderStatusPending, domain.OrderStatusAwaitingPayment} {
		order, err := s.repo.TransitionOrder(ctx, id, from, domain.OrderStatusCancelled, nil)
		if err == nil {
			s.dispatcher.Dispatch(id, domain.OrderStatusCancelled)
			return order, nil
		}
		if !errors.Is(err, domain.ErrOrderStateConflict) {
			return nil, err
		}
	}

	return s.repo.ReadOrder(ctx, id)
}

// NotifyOrder re-dispatches the current status of an order on demand.
// Channel dedup keeps it from double-sending.
func (s *Service) NotifyOrder(ctx context.Context, id domain.OrderID) error {
	order, err := s.repo.ReadOrder(ctx, id)
	if err != nil {
		return err
	}

	s.dispatcher.Dispatch(order.ID, order.Status)

	return nil
}

// SweepStaleOrders expires orders stuck past the configured window.
// Pending orders never got a checkout session and expire outright.
// AwaitingPayment orders are reconciled against the gateway first, so a
// confirmation whose webhook was lost still lands as Paid.
func (s *Service) SweepStaleOrders(ctx context.Context) error {
	stale, err := s.repo.ListStaleOrders(ctx,
		[]domain.OrderStatus{domain.OrderStatusPending, domain.OrderStatusAwaitingPayment},
		s.orderTTL)
	if err != nil {
		s.logger.Error("List stale orders", zap.Error(err))
		return err
	}

	for _, order := range stale {
		switch order.Status {
		case domain.OrderStatusPending:
			s.mustTransition(ctx, order.ID, domain.OrderStatusPending, domain.OrderStatusExpired, nil)
		case domain.OrderStatusAwaitingPayment:
			s.reconcileOrder(ctx, order)
		}
	}

	return nil
}

func (s *Service) reconcileOrder(ctx context.Context, order *domain.Order) {
	target := domain.OrderStatusExpired

	outcome, err := s.gateway.SessionStatus(ctx, order.PaymentRef)
	if err != nil {
		// Leave the order for the next sweep rather than guess.
		s.logger.Warn("Gateway status poll",
			zap.String("order", string(order.ID)), zap.Error(err))
		return
	}
	if st, ok := outcome.TargetStatus(); ok {
		target = st
	}

	s.mustTransition(ctx, order.ID, domain.OrderStatusAwaitingPayment, target, nil)
}

// mustTransition applies a transition, treating a lost race as a benign
// outcome and dispatching a notification on the win.
func (s *Service) mustTransition(ctx context.Context, id domain.OrderID,
	from, to domain.OrderStatus, mutate port.TransitionFn) {
	_, err := s.repo.TransitionOrder(ctx, id, from, to, mutate)
	if err != nil {
		if !errors.Is(err, domain.ErrOrderStateConflict) {
			s.logger.Error("Transition order", zap.String("order", string(id)),
				zap.String("to", string(to)), zap.Error(err))
		}
		return
	}

	s.dispatcher.Dispatch(id, to)
}
