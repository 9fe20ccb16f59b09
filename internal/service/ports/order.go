package ports

import (
	"context"
	"time"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
)

type OrderRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	// ApplyRefund writes the refund, order, tickets, inventory and audit rows
	// in one transaction.
	ApplyRefund(ctx context.Context, in domain.ApplyRefundInput) error
	UpdateRefundStatus(ctx context.Context, providerRefundID string, status domain.RefundStatus, at time.Time) error
}
