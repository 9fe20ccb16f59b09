package ports

import (
	"context"
	"time"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
)

type WaitlistRepo interface {
	// ClaimWaiting marks up to limit waiting entries of a rate plan as
	// notified and returns them, oldest first.
	ClaimWaiting(ctx context.Context, ratePlanID string, limit int, at time.Time) ([]*domain.WaitlistEntry, error)
}
