package ports

import (
	"context"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
)

type Notifier interface {
	NotifyTransferOffer(ctx context.Context, offer domain.TransferOffer)
	NotifyTransferAccepted(ctx context.Context, sender, recipient *domain.User, event *domain.Event)
	NotifyRefundIssued(ctx context.Context, purchaser *domain.User, event *domain.Event, refund *domain.Refund)
	NotifyCapacityFreed(ctx context.Context, entry *domain.WaitlistEntry, event *domain.Event)
}
