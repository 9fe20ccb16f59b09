package ports

import (
	"context"
	"time"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event, policy *domain.RefundPolicy) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	Cancel(ctx context.Context, id string, at time.Time) error
	// GetPolicy returns nil without error when the event has no policy row.
	GetPolicy(ctx context.Context, eventID string) (*domain.RefundPolicy, error)
	UpsertPolicy(ctx context.Context, p *domain.RefundPolicy) error
}
