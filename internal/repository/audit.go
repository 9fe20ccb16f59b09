package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const insertAuditQuery = `INSERT INTO audit_entries (id, actor_id, action, entity_type, entity_id, details, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

type AuditRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAuditRepo(db *dbpg.DB) *AuditRepository {
	return &AuditRepository{db: db, strategy: defaultStrategy()}
}

func (r *AuditRepository) Record(ctx context.Context, e *domain.AuditEntry) error {
	details, err := auditDetails(e)
	if err != nil {
		return err
	}

	_, err = r.db.ExecWithRetry(ctx, r.strategy, insertAuditQuery,
		e.ID, e.ActorID, e.Action, e.EntityType, e.EntityID, details, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}

	return nil
}

// recordAuditTx writes the entry inside a caller-owned transaction so it
// commits or rolls back with the change it describes.
func recordAuditTx(ctx context.Context, tx *sql.Tx, e *domain.AuditEntry) error {
	if e == nil {
		return nil
	}

	details, err := auditDetails(e)
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, insertAuditQuery,
		e.ID, e.ActorID, e.Action, e.EntityType, e.EntityID, details, e.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}

	return nil
}

func auditDetails(e *domain.AuditEntry) ([]byte, error) {
	if len(e.Details) == 0 {
		return []byte(`{}`), nil
	}
	b, err := json.Marshal(e.Details)
	if err != nil {
		return nil, fmt.Errorf("marshal audit details: %w", err)
	}
	return b, nil
}
