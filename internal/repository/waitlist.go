package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type WaitlistRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewWaitlistRepo(db *dbpg.DB) *WaitlistRepository {
	return &WaitlistRepository{db: db, strategy: defaultStrategy()}
}

// ClaimWaiting flips the oldest waiting entries of a rate plan to notified.
// SKIP LOCKED lets concurrent refunds of the same plan claim disjoint entries.
func (r *WaitlistRepository) ClaimWaiting(ctx context.Context, ratePlanID string, limit int, at time.Time) ([]*domain.WaitlistEntry, error) {
	if limit <= 0 {
		return nil, nil
	}

	query := `UPDATE waitlist_entries
			  SET status = $3, notified_at = $4
			  WHERE id IN (
				  SELECT id FROM waitlist_entries
				  WHERE rate_plan_id = $1 AND status = $2
				  ORDER BY created_at
				  LIMIT $5
				  FOR UPDATE SKIP LOCKED
			  )
			  RETURNING id, rate_plan_id, event_id, email, user_id, status, created_at, notified_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query,
		ratePlanID, domain.WaitlistStatusWaiting, domain.WaitlistStatusNotified, at, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("claim waiting list: %w", err)
	}
	defer rows.Close()

	var res []*domain.WaitlistEntry
	for rows.Next() {
		var e domain.WaitlistEntry
		if err = rows.Scan(
			&e.ID, &e.RatePlanID, &e.EventID, &e.Email, &e.UserID,
			&e.Status, &e.CreatedAt, &e.NotifiedAt,
		); err != nil {
			return nil, fmt.Errorf("scan waitlist entry: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}
