package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/robekc/topup-service/internal/core/domain"
	"github.com/robekc/topup-service/internal/core/port"
	"github.com/robekc/topup-service/internal/core/port/mock"
	"github.com/robekc/topup-service/internal/core/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type prepareMocks func(repo *mock.MockRepository, catalog *mock.MockCatalog,
	gateway *mock.MockPaymentGateway, dispatcher *mock.MockDispatcher, idgen *mock.MockIDGenerator)

const testOrderTTL = 15 * time.Minute

func newService(t *testing.T, mockCtrl *gomock.Controller, prepare prepareMocks) *service.Service {
	t.Helper()

	logger, _ := zap.NewProduction()

	repo := mock.NewMockRepository(mockCtrl)
	catalog := mock.NewMockCatalog(mockCtrl)
	gateway := mock.NewMockPaymentGateway(mockCtrl)
	dispatcher := mock.NewMockDispatcher(mockCtrl)
	idgen := mock.NewMockIDGenerator(mockCtrl)
	prepare(repo, catalog, gateway, dispatcher, idgen)

	s, err := service.NewService(repo, catalog, gateway, dispatcher, idgen, testOrderTTL, logger)
	assert.NoError(t, err)

	return s
}

func TestService_CreateOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	product := domain.Product{ID: "p100", Name: "Diamond 50", Price: 12000}
	orderID := domain.OrderID("ROBEKC-TEST1")

	pending := domain.Order{
		ID:        orderID,
		ProductID: product.ID,
		UserID:    "u1",
		Amount:    product.Price,
		Status:    domain.OrderStatusPending,
	}
	awaiting := pending
	awaiting.Status = domain.OrderStatusAwaitingPayment
	awaiting.PaymentRef = "ref-1"
	awaiting.PayURL = "https://gw.example/checkout/ref-1"

	type createOrderTest struct {
		name      string
		productID string
		userID    string
		mock      prepareMocks
		expError  error
		expResult *domain.Order
	}

	tests := []createOrderTest{
		{
			name:      "Create good order",
			productID: "p100",
			userID:    "u1",
			mock: func(repo *mock.MockRepository, catalog *mock.MockCatalog,
				gateway *mock.MockPaymentGateway, dispatcher *mock.MockDispatcher, idgen *mock.MockIDGenerator) {
				catalog.EXPECT().Product(gomock.Any(), "p100").Return(&product, nil)
				idgen.EXPECT().NewOrderID().Return(orderID)
				repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(&pending, nil)
				gateway.EXPECT().CreateSession(gomock.Any(), orderID, product.Price).
					Return(&port.CheckoutSession{
						PaymentRef: awaiting.PaymentRef,
						PayURL:     awaiting.PayURL,
					}, nil)
				repo.EXPECT().TransitionOrder(gomock.Any(), orderID,
					domain.OrderStatusPending, domain.OrderStatusAwaitingPayment, gomock.Any()).
					Return(&awaiting, nil)
				dispatcher.EXPECT().Dispatch(orderID, domain.OrderStatusAwaitingPayment)
			},
			expError:  nil,
			expResult: &awaiting,
		},
		{
			name:      "Unknown product",
			productID: "p999",
			userID:    "u1",
			mock: func(repo *mock.MockRepository, catalog *mock.MockCatalog,
				gateway *mock.MockPaymentGateway, dispatcher *mock.MockDispatcher, idgen *mock.MockIDGenerator) {
				catalog.EXPECT().Product(gomock.Any(), "p999").Return(nil, domain.ErrUnknownProduct)
			},
			expError:  domain.ErrUnknownProduct,
			expResult: nil,
		},
		{
			name:      "Empty user id",
			productID: "p100",
			userID:    "  ",
			mock: func(repo *mock.MockRepository, catalog *mock.MockCatalog,
				gateway *mock.MockPaymentGateway, dispatcher *mock.MockDispatcher, idgen *mock.MockIDGenerator) {
			},
			expError:  domain.ErrInvalidRequest,
			expResult: nil,
		},
		{
			name:      "Gateway down marks order failed",
			productID: "p100",
			userID:    "u1",
			mock: func(repo *mock.MockRepository, catalog *mock.MockCatalog,
				gateway *mock.MockPaymentGateway, dispatcher *mock.MockDispatcher, idgen *mock.MockIDGenerator) {
				catalog.EXPECT().Product(gomock.Any(), "p100").Return(&product, nil)
				idgen.EXPECT().NewOrderID().Return(orderID)
				repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(&pending, nil)
				gateway.EXPECT().CreateSession(gomock.Any(), orderID, product.Price).
					Return(nil, errors.New("connection refused")).Times(4)
				failed := pending
				failed.Status = domain.OrderStatusFailed
				repo.EXPECT().TransitionOrder(gomock.Any(), orderID,
					domain.OrderStatusPending, domain.OrderStatusFailed, gomock.Nil()).
					Return(&failed, nil)
				dispatcher.EXPECT().Dispatch(orderID, domain.OrderStatusFailed)
			},
			expError:  domain.ErrGatewayUnavailable,
			expResult: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newService(t, mockCtrl, test.mock)

			result, err := s.CreateOrder(context.Background(), test.productID, test.userID)

			assert.Equal(t, test.expResult, result)
			assert.Equal(t, test.expError, err)
		})
	}
}

// The amount stored at creation is the catalog snapshot and is the amount
// the order still carries when it reaches a terminal status.
func TestService_CreateOrder_AmountSnapshot(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	product := domain.Product{ID: "p200", Name: "Diamond 120", Price: 30000}
	orderID := domain.OrderID("ROBEKC-TEST2")

	var created *domain.Order

	s := newService(t, mockCtrl, func(repo *mock.MockRepository, catalog *mock.MockCatalog,
		gateway *mock.MockPaymentGateway, dispatcher *mock.MockDispatcher, idgen *mock.MockIDGenerator) {
		catalog.EXPECT().Product(gomock.Any(), "p200").Return(&product, nil)
		idgen.EXPECT().NewOrderID().Return(orderID)
		repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o *domain.Order) (*domain.Order, error) {
				created = o
				return o, nil
			})
		gateway.EXPECT().CreateSession(gomock.Any(), orderID, product.Price).
			Return(&port.CheckoutSession{PaymentRef: "ref-2", PayURL: "https://pay"}, nil)
		repo.EXPECT().TransitionOrder(gomock.Any(), orderID,
			domain.OrderStatusPending, domain.OrderStatusAwaitingPayment, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.OrderID, _, to domain.OrderStatus,
				mutate port.TransitionFn) (*domain.Order, error) {
				o := *created
				if mutate != nil {
					assert.NoError(t, mutate(&o))
				}
				o.Status = to
				return &o, nil
			})
		dispatcher.EXPECT().Dispatch(orderID, domain.OrderStatusAwaitingPayment)
	})

	result, err := s.CreateOrder(context.Background(), "p200", "u1")
	assert.NoError(t, err)

	assert.Equal(t, product.Price, created.Amount)
	assert.Equal(t, product.Price, result.Amount)
	assert.Equal(t, "ref-2", result.PaymentRef)
}

func TestService_ApplyPaymentResult(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	orderID := domain.OrderID("ROBEKC-TEST3")
	awaiting := domain.Order{
		ID:         orderID,
		ProductID:  "p100",
		UserID:     "u1",
		Amount:     12000,
		Status:     domain.OrderStatusAwaitingPayment,
		PaymentRef: "ref-3",
	}

	type applyTest struct {
		name     string
		ref      string
		outcome  domain.PaymentOutcome
		mock     prepareMocks
		expError error
	}

	tests := []applyTest{
		{
			name:    "Webhook wins the transition",
			ref:     "ref-3",
			outcome: domain.PaymentOutcomePaid,
			mock: func(repo *mock.MockRepository, catalog *mock.MockCatalog,
				gateway *mock.MockPaymentGateway, dispatcher *mock.MockDispatcher, idgen *mock.MockIDGenerator) {
				repo.EXPECT().ReadOrderByPaymentRef(gomock.Any(), "ref-3").Return(&awaiting, nil)
				paid := awaiting
				paid.Status = domain.OrderStatusPaid
				repo.EXPECT().TransitionOrder(gomock.Any(), orderID,
					domain.OrderStatusAwaitingPayment, domain.OrderStatusPaid, gomock.Nil()).
					Return(&paid, nil)
				dispatcher.EXPECT().Dispatch(orderID, domain.OrderStatusPaid)
			},
			expError: nil,
		},
		{
			name:    "Duplicate delivery is a no-op",
			ref:     "ref-3",
			outcome: domain.PaymentOutcomePaid,
			mock: func(repo *mock.MockRepository, catalog *mock.MockCatalog,
				gateway *mock.MockPaymentGateway, dispatcher *mock.MockDispatcher, idgen *mock.MockIDGenerator) {
				paid := awaiting
				paid.Status = domain.OrderStatusPaid
				repo.EXPECT().ReadOrderByPaymentRef(gomock.Any(), "ref-3").Return(&paid, nil)
				repo.EXPECT().TransitionOrder(gomock.Any(), orderID,
					domain.OrderStatusAwaitingPayment, domain.OrderStatusPaid, gomock.Nil()).
					Return(nil, domain.ErrOrderStateConflict)
				repo.EXPECT().ReadOrder(gomock.Any(), orderID).Return(&paid, nil)
			},
			expError: nil,
		},
		{
			name:    "Conflicting outcome is absorbed",
			ref:     "ref-3",
			outcome: domain.PaymentOutcomeFailed,
			mock: func(repo *mock.MockRepository, catalog *mock.MockCatalog,
				gateway *mock.MockPaymentGateway, dispatcher *mock.MockDispatcher, idgen *mock.MockIDGenerator) {
				paid := awaiting
				paid.Status = domain.OrderStatusPaid
				repo.EXPECT().ReadOrderByPaymentRef(gomock.Any(), "ref-3").Return(&paid, nil)
				repo.EXPECT().TransitionOrder(gomock.Any(), orderID,
					domain.OrderStatusAwaitingPayment, domain.OrderStatusFailed, gomock.Nil()).
					Return(nil, domain.ErrOrderStateConflict)
				repo.EXPECT().ReadOrder(gomock.Any(), orderID).Return(&paid, nil)
			},
			expError: nil,
		},
		{
			name:    "Late webhook after expiry stays expired",
			ref:     "ref-3",
			outcome: domain.PaymentOutcomePaid,
			mock: func(repo *mock.MockRepository, catalog *mock.MockCatalog,
				gateway *mock.MockPaymentGateway, dispatcher *mock.MockDispatcher, idgen *mock.MockIDGenerator) {
				expired := awaiting
				expired.Status = domain.OrderStatusExpired
				repo.EXPECT().ReadOrderByPaymentRef(gomock.Any(), "ref-3").Return(&expired, nil)
				repo.EXPECT().TransitionOrder(gomock.Any(), orderID,
					domain.OrderStatusAwaitingPayment, domain.OrderStatusPaid, gomock.Nil()).
					Return(nil, domain.ErrOrderStateConflict)
				repo.EXPECT().ReadOrder(gomock.Any(), orderID).Return(&expired, nil)
			},
			expError: nil,
		},
		{
			name:    "Unknown reference",
			ref:     "ref-unknown",
			outcome: domain.PaymentOutcomePaid,
			mock: func(repo *mock.MockRepository, catalog *mock.MockCatalog,
				gateway *mock.MockPaymentGateway, dispatcher *mock.MockDispatcher, idgen *mock.MockIDGenerator) {
				repo.EXPECT().ReadOrderByPaymentRef(gomock.Any(), "ref-unknown").
					Return(nil, domain.ErrOrderNotFound)
			},
			expError: domain.ErrOrderNotFound,
		},
		{
			name:    "Unknown outcome",
			ref:     "ref-3",
			outcome: domain.PaymentOutcome("refunded"),
			mock: func(repo *mock.MockRepository, catalog *mock.MockCatalog,
				gateway *mock.MockPaymentGateway, dispatcher *mock.MockDispatcher, idgen *mock.MockIDGenerator) {
			},
			expError: domain.ErrUnknownOutcome,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newService(t, mockCtrl, test.mock)

			err := s.ApplyPaymentResult(context.Background(), test.ref, test.outcome)

			assert.Equal(t, test.expError, err)
		})
	}
}

func TestService_CancelOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	orderID := domain.OrderID("ROBEKC-TEST4")

	type cancelTest struct {
		name      string
		mock      prepareMocks
		expStatus domain.OrderStatus
	}

	tests := []cancelTest{
		{
			name: "Cancel pending order",
			mock: func(repo *mock.MockRepository, catalog *mock.MockCatalog,
				gateway *mock.MockPaymentGateway, dispatcher *mock.MockDispatcher, idgen *mock.MockIDGenerator) {
				cancelled := domain.Order{ID: orderID, Status: domain.OrderStatusCancelled}
				repo.EXPECT().TransitionOrder(gomock.Any(), orderID,
					domain.OrderStatusPending, domain.OrderStatusCancelled, gomock.Nil()).
					Return(&cancelled, nil)
				dispatcher.EXPECT().Dispatch(orderID, domain.OrderStatusCancelled)
			},
			expStatus: domain.OrderStatusCancelled,
		},
		{
			name: "Cancel awaiting order",
			mock: func(repo *mock.MockRepository, catalog *mock.MockCatalog,
				gateway *mock.MockPaymentGateway, dispatcher *mock.MockDispatcher, idgen *mock.MockIDGenerator) {
				cancelled := domain.Order{ID: orderID, Status: domain.OrderStatusCancelled}
				repo.EXPECT().TransitionOrder(gomock.Any(), orderID,
					domain.OrderStatusPending, domain.OrderStatusCancelled, gomock.Nil()).
					Return(nil, domain.ErrOrderStateConflict)
				repo.EXPECT().TransitionOrder(gomock.Any(), orderID,
					domain.OrderStatusAwaitingPayment, domain.OrderStatusCancelled, gomock.Nil()).
					Return(&cancelled, nil)
				dispatcher.EXPECT().Dispatch(orderID, domain.OrderStatusCancelled)
			},
			expStatus: domain.OrderStatusCancelled,
		},
		{
			name: "Cancel paid order is a no-op",
			mock: func(repo *mock.MockRepository, catalog *mock.MockCatalog,
				gateway *mock.MockPaymentGateway, dispatcher *mock.MockDispatcher, idgen *mock.MockIDGenerator) {
				paid := domain.Order{ID: orderID, Status: domain.OrderStatusPaid}
				repo.EXPECT().TransitionOrder(gomock.Any(), orderID,
					domain.OrderStatusPending, domain.OrderStatusCancelled, gomock.Nil()).
					Return(nil, domain.ErrOrderStateConflict)
				repo.EXPECT().TransitionOrder(gomock.Any(), orderID,
					domain.OrderStatusAwaitingPayment, domain.OrderStatusCancelled, gomock.Nil()).
					Return(nil, domain.ErrOrderStateConflict)
				repo.EXPECT().ReadOrder(gomock.Any(), orderID).Return(&paid, nil)
			},
			expStatus: domain.OrderStatusPaid,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newService(t, mockCtrl, test.mock)

			result, err := s.CancelOrder(context.Background(), orderID)

			assert.NoError(t, err)
			assert.Equal(t, test.expStatus, result.Status)
		})
	}
}

func TestService_SweepStaleOrders(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	pendingID := domain.OrderID("ROBEKC-SWEEP1")
	awaitingID := domain.OrderID("ROBEKC-SWEEP2")
	staleStatuses := []domain.OrderStatus{domain.OrderStatusPending, domain.OrderStatusAwaitingPayment}

	type sweepTest struct {
		name string
		mock prepareMocks
	}

	tests := []sweepTest{
		{
			name: "Stale pending expires",
			mock: func(repo *mock.MockRepository, catalog *mock.MockCatalog,
				gateway *mock.MockPaymentGateway, dispatcher *mock.MockDispatcher, idgen *mock.MockIDGenerator) {
				stale := domain.Order{ID: pendingID, Status: domain.OrderStatusPending}
				repo.EXPECT().ListStaleOrders(gomock.Any(), staleStatuses, testOrderTTL).
					Return([]*domain.Order{&stale}, nil)
				expired := stale
				expired.Status = domain.OrderStatusExpired
				repo.EXPECT().TransitionOrder(gomock.Any(), pendingID,
					domain.OrderStatusPending, domain.OrderStatusExpired, gomock.Nil()).
					Return(&expired, nil)
				dispatcher.EXPECT().Dispatch(pendingID, domain.OrderStatusExpired)
			},
		},
		{
			name: "Stale awaiting reconciled to paid",
			mock: func(repo *mock.MockRepository, catalog *mock.MockCatalog,
				gateway *mock.MockPaymentGateway, dispatcher *mock.MockDispatcher, idgen *mock.MockIDGenerator) {
				stale := domain.Order{ID: awaitingID, Status: domain.OrderStatusAwaitingPayment, PaymentRef: "ref-s2"}
				repo.EXPECT().ListStaleOrders(gomock.Any(), staleStatuses, testOrderTTL).
					Return([]*domain.Order{&stale}, nil)
				gateway.EXPECT().SessionStatus(gomock.Any(), "ref-s2").
					Return(domain.PaymentOutcomePaid, nil)
				paid := stale
				paid.Status = domain.OrderStatusPaid
				repo.EXPECT().TransitionOrder(gomock.Any(), awaitingID,
					domain.OrderStatusAwaitingPayment, domain.OrderStatusPaid, gomock.Nil()).
					Return(&paid, nil)
				dispatcher.EXPECT().Dispatch(awaitingID, domain.OrderStatusPaid)
			},
		},
		{
			name: "Stale awaiting with unknown gateway outcome expires",
			mock: func(repo *mock.MockRepository, catalog *mock.MockCatalog,
				gateway *mock.MockPaymentGateway, dispatcher *mock.MockDispatcher, idgen *mock.MockIDGenerator) {
				stale := domain.Order{ID: awaitingID, Status: domain.OrderStatusAwaitingPayment, PaymentRef: "ref-s2"}
				repo.EXPECT().ListStaleOrders(gomock.Any(), staleStatuses, testOrderTTL).
					Return([]*domain.Order{&stale}, nil)
				gateway.EXPECT().SessionStatus(gomock.Any(), "ref-s2").
					Return(domain.PaymentOutcomeUnknown, nil)
				expired := stale
				expired.Status = domain.OrderStatusExpired
				repo.EXPECT().TransitionOrder(gomock.Any(), awaitingID,
					domain.OrderStatusAwaitingPayment, domain.OrderStatusExpired, gomock.Nil()).
					Return(&expired, nil)
				dispatcher.EXPECT().Dispatch(awaitingID, domain.OrderStatusExpired)
			},
		},
		{
			name: "Sweep loses race against webhook",
			mock: func(repo *mock.MockRepository, catalog *mock.MockCatalog,
				gateway *mock.MockPaymentGateway, dispatcher *mock.MockDispatcher, idgen *mock.MockIDGenerator) {
				stale := domain.Order{ID: awaitingID, Status: domain.OrderStatusAwaitingPayment, PaymentRef: "ref-s2"}
				repo.EXPECT().ListStaleOrders(gomock.Any(), staleStatuses, testOrderTTL).
					Return([]*domain.Order{&stale}, nil)
				gateway.EXPECT().SessionStatus(gomock.Any(), "ref-s2").
					Return(domain.PaymentOutcomeUnknown, nil)
				repo.EXPECT().TransitionOrder(gomock.Any(), awaitingID,
					domain.OrderStatusAwaitingPayment, domain.OrderStatusExpired, gomock.Nil()).
					Return(nil, domain.ErrOrderStateConflict)
			},
		},
		{
			name: "Gateway poll failure leaves order for next sweep",
			mock: func(repo *mock.MockRepository, catalog *mock.MockCatalog,
				gateway *mock.MockPaymentGateway, dispatcher *mock.MockDispatcher, idgen *mock.MockIDGenerator) {
				stale := domain.Order{ID: awaitingID, Status: domain.OrderStatusAwaitingPayment, PaymentRef: "ref-s2"}
				repo.EXPECT().ListStaleOrders(gomock.Any(), staleStatuses, testOrderTTL).
					Return([]*domain.Order{&stale}, nil)
				gateway.EXPECT().SessionStatus(gomock.Any(), "ref-s2").
					Return(domain.PaymentOutcomeUnknown, errors.New("gateway timeout"))
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newService(t, mockCtrl, test.mock)

			err := s.SweepStaleOrders(context.Background())

			assert.NoError(t, err)
		})
	}
}

func TestService_NotifyOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	orderID := domain.OrderID("ROBEKC-TEST5")

	t.Run("Re-dispatch current status", func(t *testing.T) {
		s := newService(t, mockCtrl, func(repo *mock.MockRepository, catalog *mock.MockCatalog,
			gateway *mock.MockPaymentGateway, dispatcher *mock.MockDispatcher, idgen *mock.MockIDGenerator) {
			paid := domain.Order{ID: orderID, Status: domain.OrderStatusPaid}
			repo.EXPECT().ReadOrder(gomock.Any(), orderID).Return(&paid, nil)
			dispatcher.EXPECT().Dispatch(orderID, domain.OrderStatusPaid)
		})

		assert.NoError(t, s.NotifyOrder(context.Background(), orderID))
	})

	t.Run("Unknown order", func(t *testing.T) {
		s := newService(t, mockCtrl, func(repo *mock.MockRepository, catalog *mock.MockCatalog,
			gateway *mock.MockPaymentGateway, dispatcher *mock.MockDispatcher, idgen *mock.MockIDGenerator) {
			repo.EXPECT().ReadOrder(gomock.Any(), orderID).Return(nil, domain.ErrOrderNotFound)
		})

		assert.Equal(t, domain.ErrOrderNotFound, s.NotifyOrder(context.Background(), orderID))
	})
}
