package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const providerRefundIndex = "idx_refunds_provider"

type OrderRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOrderRepo(db *dbpg.DB) *OrderRepository {
	return &OrderRepository{db: db, strategy: defaultStrategy()}
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT id, user_id, event_id, status, total_amount, currency, payment_charge_id,
				refunded_amount, refunded_at, created_at, updated_at
			  FROM orders
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	var o domain.Order
	if err = row.Scan(
		&o.ID, &o.UserID, &o.EventID, &o.Status, &o.TotalAmount, &o.Currency, &o.PaymentChargeID,
		&o.RefundedAmount, &o.RefundedAt, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}

	return &o, nil
}

// ApplyRefund records an executed refund. The order update only matches an
// order that is still refundable, and the ticket update must match every
// requested ticket, so two refunds racing for the same tickets cannot both land.
func (r *OrderRepository) ApplyRefund(ctx context.Context, in domain.ApplyRefundInput) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	ref := in.Refund
	var providerID *string
	if ref.ProviderRefundID != "" {
		providerID = &ref.ProviderRefundID
	}

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO refunds (id, order_id, amount, currency, provider_refund_id, status, reason, ticket_ids, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		ref.ID, ref.OrderID, ref.Amount, ref.Currency, providerID, ref.Status, ref.Reason,
		pq.Array(ref.TicketIDs), ref.CreatedAt, ref.UpdatedAt,
	); err != nil {
		return insertRefundError(err)
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE orders
		 SET status = $3, refunded_amount = refunded_amount + $4, refunded_at = $5, updated_at = $5
		 WHERE id = $1 AND status IN ($2, $6)`,
		ref.OrderID, domain.OrderStatusCompleted, in.OrderStatus, ref.Amount, in.At,
		domain.OrderStatusPartiallyRefunded,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if err = expectOneRow(res, domain.ErrOrderNotRefundable); err != nil {
		return err
	}

	res, err = tx.ExecContext(ctx,
		`UPDATE tickets
		 SET status = $3, updated_at = $4
		 WHERE order_id = $1 AND id = ANY($2) AND status = $5 AND scanned_at IS NULL`,
		ref.OrderID, pq.Array(in.TicketIDs), domain.TicketStatusRefunded, in.At, domain.TicketStatusActive,
	)
	if err != nil {
		return fmt.Errorf("update tickets: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("tickets rows affected: %w", err)
	}
	if int(n) != len(in.TicketIDs) {
		return domain.ErrOrderNotRefundable
	}

	for ratePlanID, count := range in.RatePlanCounts {
		if _, err = tx.ExecContext(ctx, `SELECT decrement_tickets_sold($1, $2)`, ratePlanID, count); err != nil {
			return fmt.Errorf("release inventory: %w", err)
		}
	}

	if err = recordAuditTx(ctx, tx, in.Audit); err != nil {
		return err
	}

	return tx.Commit()
}

// insertRefundError maps a duplicate provider refund id to a conflict: a
// concurrent request with the same idempotency key already recorded it.
func insertRefundError(err error) error {
	if isUniqueViolation(err, providerRefundIndex) {
		return fmt.Errorf("%w: %w", domain.ErrOrderNotRefundable, domain.ErrRefundDuplicate)
	}
	return fmt.Errorf("insert refund: %w", err)
}

func (r *OrderRepository) UpdateRefundStatus(ctx context.Context, providerRefundID string, status domain.RefundStatus, at time.Time) error {
	query := `UPDATE refunds
			  SET status = $2, updated_at = $3
			  WHERE provider_refund_id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, providerRefundID, status, at)
	if err != nil {
		return fmt.Errorf("update refund status: %w", err)
	}

	return expectOneRow(res, domain.ErrRefundNotFound)
}
