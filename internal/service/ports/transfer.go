package ports

import (
	"context"
	"time"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
)

type TransferRepo interface {
	// Create returns domain.ErrTransferPending when the ticket already has a
	// pending request.
	Create(ctx context.Context, tr *domain.TransferRequest) error
	HasPending(ctx context.Context, ticketID string) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.TransferRequest, error)
	GetByCodeHash(ctx context.Context, codeHash string) (*domain.TransferRequest, error)
	ListByUser(ctx context.Context, userID, email string) ([]*domain.TransferRequest, error)
	// Complete reassigns the ticket and closes the request in one transaction.
	Complete(ctx context.Context, in domain.CompleteTransferInput) error
	Cancel(ctx context.Context, id string, at time.Time) error
	MarkExpired(ctx context.Context, id string, at time.Time) error
	ExpireDue(ctx context.Context, now time.Time) ([]*domain.TransferRequest, error)
}
