package notify

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/robekc/topup-service/internal/core/domain"
	"github.com/robekc/topup-service/internal/core/port"
	"go.uber.org/zap"
)

// maxDeliveryAttempts caps retries per channel per event.
const maxDeliveryAttempts = 5

// drainTimeout bounds delivery of events still queued at shutdown.
const drainTimeout = 10 * time.Second

type event struct {
	orderID domain.OrderID
	status  domain.OrderStatus
}

// Dispatcher delivers order state changes to the configured channels.
// Delivery is at-least-once with bounded backoff, deduplicated through the
// repository's (order, channel, status) set. The order transition is already
// persisted by the time an event lands here; a failed delivery never rolls
// it back.
type Dispatcher struct {
	repo     port.Repository
	channels []port.Notifier
	queue    chan event
	logger   *zap.Logger
	wg       sync.WaitGroup

	// RetryInterval seeds the exponential backoff between attempts.
	RetryInterval time.Duration
}

func NewDispatcher(repo port.Repository, channels []port.Notifier, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		repo:          repo,
		channels:      channels,
		queue:         make(chan event, 64),
		logger:        logger,
		RetryInterval: 500 * time.Millisecond,
	}
}

// Dispatch enqueues a state change for delivery. Blocks if the queue is
// full so events are never silently dropped.
func (d *Dispatcher) Dispatch(orderID domain.OrderID, status domain.OrderStatus) {
	d.queue <- event{orderID: orderID, status: status}
}

// Run starts the delivery workers. They stop when ctx is cancelled, after
// draining whatever is still queued.
func (d *Dispatcher) Run(ctx context.Context, workers int) {
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			for {
				select {
				case ev := <-d.queue:
					d.deliver(ctx, ev)
				case <-ctx.Done():
					d.drain()
					return
				}
			}
		}()
	}
}

// drain delivers the events enqueued before cancellation. Runs on a fresh
// bounded context, the run context is already dead.
func (d *Dispatcher) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	for {
		select {
		case ev := <-d.queue:
			d.deliver(ctx, ev)
		default:
			return
		}
	}
}

func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) deliver(ctx context.Context, ev event) {
	order, err := d.repo.ReadOrder(ctx, ev.orderID)
	if err != nil {
		d.logger.Error("Read order for notification",
			zap.String("order", string(ev.orderID)), zap.Error(err))
		return
	}

	for _, channel := range d.channels {
		d.deliverToChannel(ctx, channel, order, ev.status)
	}
}

func (d *Dispatcher) deliverToChannel(ctx context.Context, channel port.Notifier,
	order *domain.Order, status domain.OrderStatus) {
	sent, err := d.repo.NotificationSent(ctx, order.ID, channel.Channel(), status)
	if err != nil {
		d.logger.Error("Notification dedup lookup",
			zap.String("order", string(order.ID)), zap.Error(err))
		return
	}
	if sent {
		return
	}

	op := func() error {
		return channel.Notify(ctx, order, status)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = d.RetryInterval
	err = backoff.Retry(op, backoff.WithContext(
		backoff.WithMaxRetries(bo, maxDeliveryAttempts-1), ctx))
	if err != nil {
		// Permanent failure on one channel must not block the others.
		d.logger.Error("Giving up on notification",
			zap.String("order", string(order.ID)),
			zap.String("channel", channel.Channel()),
			zap.String("status", string(status)),
			zap.Error(err))
		return
	}

	// Recorded only after the channel confirmed. A crash between confirm
	// and record means one extra delivery, which at-least-once allows.
	err = d.repo.MarkNotificationSent(ctx, order.ID, channel.Channel(), status)
	if err != nil {
		d.logger.Error("Record notification",
			zap.String("order", string(order.ID)),
			zap.String("channel", channel.Channel()),
			zap.Error(err))
	}
}
