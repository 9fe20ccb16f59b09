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

const transferColumns = `id, ticket_id, from_user_id, to_email, to_user_id, code_hash, status,
		created_at, expires_at, completed_at, cancelled_at`

const pendingTransferIndex = "idx_transfer_requests_pending"

type TransferRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTransferRepo(db *dbpg.DB) *TransferRepository {
	return &TransferRepository{db: db, strategy: defaultStrategy()}
}

func (r *TransferRepository) Create(ctx context.Context, tr *domain.TransferRequest) error {
	query := `INSERT INTO transfer_requests (id, ticket_id, from_user_id, to_email, code_hash, status, created_at, expires_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		tr.ID, tr.TicketID, tr.FromUserID, tr.ToEmail, tr.CodeHash,
		tr.Status, tr.CreatedAt, tr.ExpiresAt,
	)
	if err != nil {
		if isUniqueViolation(err, pendingTransferIndex) {
			return domain.ErrTransferPending
		}
		return fmt.Errorf("insert transfer: %w", err)
	}

	return nil
}

func (r *TransferRepository) HasPending(ctx context.Context, ticketID string) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1 FROM transfer_requests
				WHERE ticket_id = $1 AND status = $2
			  )`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, ticketID, domain.TransferStatusPending)
	if err != nil {
		return false, fmt.Errorf("check pending transfer: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan pending transfer: %w", err)
	}

	return exists, nil
}

func (r *TransferRepository) GetByID(ctx context.Context, id string) (*domain.TransferRequest, error) {
	query := `SELECT ` + transferColumns + `
			  FROM transfer_requests
			  WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *TransferRepository) GetByCodeHash(ctx context.Context, codeHash string) (*domain.TransferRequest, error) {
	query := `SELECT ` + transferColumns + `
			  FROM transfer_requests
			  WHERE code_hash = $1`
	return r.getOne(ctx, query, codeHash)
}

func (r *TransferRepository) ListByUser(ctx context.Context, userID, email string) ([]*domain.TransferRequest, error) {
	query := `SELECT ` + transferColumns + `
			  FROM transfer_requests
			  WHERE from_user_id = $1 OR to_user_id = $1 OR to_email = $2
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID, email)
	if err != nil {
		return nil, fmt.Errorf("list transfers by user: %w", err)
	}
	defer rows.Close()

	return collectTransfers(rows)
}

// Complete closes the request and moves the ticket to the recipient. Both
// updates are conditional, so a request that expired or a ticket that changed
// hands since it was read leaves nothing behind.
func (r *TransferRepository) Complete(ctx context.Context, in domain.CompleteTransferInput) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE transfer_requests
		 SET status = $3, to_user_id = $4, completed_at = $5
		 WHERE id = $1 AND status = $2 AND expires_at > $5`,
		in.TransferID, domain.TransferStatusPending, domain.TransferStatusCompleted, in.ToUserID, in.At,
	)
	if err != nil {
		return fmt.Errorf("complete transfer: %w", err)
	}
	if err = expectOneRow(res, domain.ErrTransferNotPending); err != nil {
		return err
	}

	res, err = tx.ExecContext(ctx,
		`UPDATE tickets
		 SET owner_id = $3, transferred_at = $4, updated_at = $4
		 WHERE id = $1 AND owner_id = $2 AND status = $5 AND scanned_at IS NULL`,
		in.TicketID, in.FromUserID, in.ToUserID, in.At, domain.TicketStatusActive,
	)
	if err != nil {
		return fmt.Errorf("reassign ticket: %w", err)
	}
	if err = expectOneRow(res, domain.ErrTicketNotTransferable); err != nil {
		return err
	}

	if err = recordAuditTx(ctx, tx, in.Audit); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *TransferRepository) Cancel(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE transfer_requests
			  SET status = $3, cancelled_at = $4
			  WHERE id = $1 AND status = $2`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		id, domain.TransferStatusPending, domain.TransferStatusCancelled, at,
	)
	if err != nil {
		return fmt.Errorf("cancel transfer: %w", err)
	}

	return expectOneRow(res, domain.ErrTransferNotPending)
}

// MarkExpired closes a single request found past its expiry on access. A
// request whose expires_at is still ahead of at is left alone.
func (r *TransferRepository) MarkExpired(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE transfer_requests
			  SET status = $3
			  WHERE id = $1 AND status = $2 AND expires_at <= $4`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		id, domain.TransferStatusPending, domain.TransferStatusExpired, at,
	)
	if err != nil {
		return fmt.Errorf("expire transfer: %w", err)
	}

	return expectOneRow(res, domain.ErrTransferNotPending)
}

func (r *TransferRepository) ExpireDue(ctx context.Context, now time.Time) ([]*domain.TransferRequest, error) {
	query := `UPDATE transfer_requests
			  SET status = $2
			  WHERE status = $1 AND expires_at <= $3
			  RETURNING ` + transferColumns

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query,
		domain.TransferStatusPending, domain.TransferStatusExpired, now,
	)
	if err != nil {
		return nil, fmt.Errorf("expire transfers: %w", err)
	}
	defer rows.Close()

	return collectTransfers(rows)
}

func (r *TransferRepository) getOne(ctx context.Context, query string, arg any) (*domain.TransferRequest, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get transfer: %w", err)
	}

	tr, err := scanTransfer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTransferNotFound
		}
		return nil, fmt.Errorf("scan transfer: %w", err)
	}

	return tr, nil
}

func collectTransfers(rows *sql.Rows) ([]*domain.TransferRequest, error) {
	var res []*domain.TransferRequest
	for rows.Next() {
		tr, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		res = append(res, tr)
	}

	return res, rows.Err()
}

func scanTransfer(s scanner) (*domain.TransferRequest, error) {
	var tr domain.TransferRequest
	err := s.Scan(
		&tr.ID, &tr.TicketID, &tr.FromUserID, &tr.ToEmail, &tr.ToUserID, &tr.CodeHash, &tr.Status,
		&tr.CreatedAt, &tr.ExpiresAt, &tr.CompletedAt, &tr.CancelledAt,
	)
	if err != nil {
		return nil, err
	}
	return &tr, nil
}

func expectOneRow(res sql.Result, notMatched error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notMatched
	}
	return nil
}
