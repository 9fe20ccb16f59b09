package ports

import (
	"context"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
)

type AuditRepo interface {
	Record(ctx context.Context, entry *domain.AuditEntry) error
}
