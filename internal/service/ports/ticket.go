package ports

import (
	"context"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
)

type TicketRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	ListByOrder(ctx context.Context, orderID string) ([]*domain.Ticket, error)
}
