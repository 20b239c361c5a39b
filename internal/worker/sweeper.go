package worker

import (
	"context"
	"time"

	"github.com/robekc/topup-service/internal/core/port"
	"go.uber.org/zap"
)

// Sweeper periodically expires orders stuck past the payment window. The
// sweep goes through the same transition primitive as webhooks, so it can
// race an in-flight confirmation and lose safely.
type Sweeper struct {
	service  port.Service
	interval time.Duration
	logger   *zap.Logger
}

func NewSweeper(service port.Service, interval time.Duration, logger *zap.Logger) *Sweeper {
	return &Sweeper{
		service:  service,
		interval: interval,
		logger:   logger,
	}
}

func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("Expiry sweeper started", zap.Duration("interval", s.interval))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Expiry sweeper stopped")
			return
		case <-ticker.C:
			if err := s.service.SweepStaleOrders(ctx); err != nil {
				s.logger.Error("Sweep failed", zap.Error(err))
			}
		}
	}
}
