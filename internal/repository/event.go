package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const eventColumns = `id, title, description, starts_at, status, transfers_allowed, created_at, updated_at`

const upsertPolicyQuery = `INSERT INTO refund_policies (event_id, refunds_allowed, cutoff_hours, refund_percentage, partial_allowed, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW())
			  ON CONFLICT (event_id) DO UPDATE
			  SET refunds_allowed = EXCLUDED.refunds_allowed,
				  cutoff_hours = EXCLUDED.cutoff_hours,
				  refund_percentage = EXCLUDED.refund_percentage,
				  partial_allowed = EXCLUDED.partial_allowed,
				  updated_at = EXCLUDED.updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{db: db, strategy: defaultStrategy()}
}

// Create inserts the event and, when given, its refund policy together.
func (r *EventRepository) Create(ctx context.Context, e *domain.Event, policy *domain.RefundPolicy) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO events (`+eventColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.Title, e.Description, e.StartsAt, e.Status, e.TransfersAllowed, e.CreatedAt, e.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	if policy != nil {
		if _, err = tx.ExecContext(ctx, upsertPolicyQuery,
			e.ID, policy.RefundsAllowed, policy.CutoffHours, policy.RefundPercentage, policy.PartialAllowed,
		); err != nil {
			return fmt.Errorf("insert refund policy: %w", err)
		}
	}

	return tx.Commit()
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  ORDER BY starts_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *EventRepository) Cancel(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE events
			  SET status = $3, updated_at = $4
			  WHERE id = $1 AND status = $2`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		id, domain.EventStatusActive, domain.EventStatusCancelled, at,
	)
	if err != nil {
		return fmt.Errorf("cancel event: %w", err)
	}

	return expectOneRow(res, domain.ErrEventAlreadyCancelled)
}

func (r *EventRepository) GetPolicy(ctx context.Context, eventID string) (*domain.RefundPolicy, error) {
	query := `SELECT event_id, refunds_allowed, cutoff_hours, refund_percentage, partial_allowed
			  FROM refund_policies
			  WHERE event_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("get refund policy: %w", err)
	}

	var p domain.RefundPolicy
	if err = row.Scan(&p.EventID, &p.RefundsAllowed, &p.CutoffHours, &p.RefundPercentage, &p.PartialAllowed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan refund policy: %w", err)
	}

	return &p, nil
}

func (r *EventRepository) UpsertPolicy(ctx context.Context, p *domain.RefundPolicy) error {
	_, err := r.db.ExecWithRetry(ctx, r.strategy, upsertPolicyQuery,
		p.EventID, p.RefundsAllowed, p.CutoffHours, p.RefundPercentage, p.PartialAllowed,
	)
	if err != nil {
		return fmt.Errorf("upsert refund policy: %w", err)
	}

	return nil
}

func scanEvent(s scanner) (*domain.Event, error) {
	var e domain.Event
	err := s.Scan(
		&e.ID, &e.Title, &e.Description, &e.StartsAt, &e.Status,
		&e.TransfersAllowed, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
