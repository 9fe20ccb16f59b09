package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const ticketColumns = `id, order_id, event_id, rate_plan_id, owner_id, status,
		price_amount, scanned_at, transferred_at, created_at, updated_at`

type TicketRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTicketRepo(db *dbpg.DB) *TicketRepository {
	return &TicketRepository{db: db, strategy: defaultStrategy()}
}

func (r *TicketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + `
			  FROM tickets
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	t, err := scanTicket(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("scan ticket: %w", err)
	}

	return t, nil
}

func (r *TicketRepository) ListByOrder(ctx context.Context, orderID string) ([]*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + `
			  FROM tickets
			  WHERE order_id = $1
			  ORDER BY created_at, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list tickets by order: %w", err)
	}
	defer rows.Close()

	var res []*domain.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		res = append(res, t)
	}

	return res, rows.Err()
}

func scanTicket(s scanner) (*domain.Ticket, error) {
	var t domain.Ticket
	err := s.Scan(
		&t.ID, &t.OrderID, &t.EventID, &t.RatePlanID, &t.OwnerID, &t.Status,
		&t.PriceAmount, &t.ScannedAt, &t.TransferredAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
