package scheduler

import (
	"context"
	"time"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type transferExpirer interface {
	ExpireTransfers(ctx context.Context) ([]*domain.TransferRequest, error)
}

// Scheduler closes pending transfer requests once they pass their expiry.
// Accept also checks expiry, so the sweep only keeps listings accurate.
type Scheduler struct {
	transferService transferExpirer
	interval        time.Duration
	logger          logger.Logger
}

func New(
	transferService transferExpirer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		transferService: transferService,
		interval:        interval,
		logger:          logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			_, _ = s.Sweep(ctx)
		}
	}
}

// Sweep runs a single expiry pass and returns how many requests it closed.
func (s *Scheduler) Sweep(ctx context.Context) (int, error) {
	expired, err := s.transferService.ExpireTransfers(ctx)
	if err != nil {
		s.logger.Error("failed to expire transfers",
			logger.String("error", err.Error()),
		)
		return 0, err
	}

	for _, tr := range expired {
		s.logger.Info("transfer expired",
			logger.String("transfer_id", tr.ID),
			logger.String("ticket_id", tr.TicketID),
			logger.String("from_user_id", tr.FromUserID),
		)
	}

	return len(expired), nil
}
