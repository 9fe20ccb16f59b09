package notification

import (
	"context"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
	"github.com/ghxstship/grasshopper26.00-sub002/internal/service/ports"
)

// Fanout delivers every notification through each channel in order.
type Fanout struct {
	channels []ports.Notifier
}

func NewFanout(channels ...ports.Notifier) *Fanout {
	return &Fanout{channels: channels}
}

func (f *Fanout) NotifyTransferOffer(ctx context.Context, offer domain.TransferOffer) {
	for _, n := range f.channels {
		n.NotifyTransferOffer(ctx, offer)
	}
}

func (f *Fanout) NotifyTransferAccepted(ctx context.Context, sender, recipient *domain.User, event *domain.Event) {
	for _, n := range f.channels {
		n.NotifyTransferAccepted(ctx, sender, recipient, event)
	}
}

func (f *Fanout) NotifyRefundIssued(ctx context.Context, purchaser *domain.User, event *domain.Event, refund *domain.Refund) {
	for _, n := range f.channels {
		n.NotifyRefundIssued(ctx, purchaser, event, refund)
	}
}

func (f *Fanout) NotifyCapacityFreed(ctx context.Context, entry *domain.WaitlistEntry, event *domain.Event) {
	for _, n := range f.channels {
		n.NotifyCapacityFreed(ctx, entry, event)
	}
}
