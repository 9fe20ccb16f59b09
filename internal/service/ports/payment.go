package ports

import (
	"context"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
)

type PaymentGateway interface {
	Refund(ctx context.Context, req domain.ProviderRefundRequest) (*domain.ProviderRefund, error)
	ParseWebhook(payload []byte, signature string) (*domain.ProviderEvent, error)
}
