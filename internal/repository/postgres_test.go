package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUniqueViolation(t *testing.T) {
	pending := &pq.Error{Code: uniqueViolation, Constraint: pendingTransferIndex}
	codeHash := &pq.Error{Code: uniqueViolation, Constraint: "transfer_requests_code_hash_key"}
	fk := &pq.Error{Code: "23503", Constraint: pendingTransferIndex}

	assert.True(t, isUniqueViolation(pending, pendingTransferIndex))
	assert.True(t, isUniqueViolation(fmt.Errorf("exec: %w", pending), pendingTransferIndex))
	assert.True(t, isUniqueViolation(codeHash, ""))
	assert.False(t, isUniqueViolation(codeHash, pendingTransferIndex))
	assert.False(t, isUniqueViolation(fk, pendingTransferIndex))
	assert.False(t, isUniqueViolation(errors.New("boom"), ""))
}

func TestAuditDetails(t *testing.T) {
	b, err := auditDetails(&domain.AuditEntry{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(b))

	b, err = auditDetails(&domain.AuditEntry{Details: map[string]string{"ticket_id": "t1"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ticket_id":"t1"}`, string(b))
}

func TestInsertRefundError(t *testing.T) {
	dup := &pq.Error{Code: uniqueViolation, Constraint: providerRefundIndex}

	err := insertRefundError(fmt.Errorf("exec: %w", dup))
	assert.ErrorIs(t, err, domain.ErrOrderNotRefundable)
	assert.ErrorIs(t, err, domain.ErrRefundDuplicate)

	err = insertRefundError(&pq.Error{Code: uniqueViolation, Constraint: "refunds_pkey"})
	assert.NotErrorIs(t, err, domain.ErrOrderNotRefundable)

	err = insertRefundError(errors.New("conn reset"))
	assert.NotErrorIs(t, err, domain.ErrOrderNotRefundable)
	assert.Contains(t, err.Error(), "insert refund")
}
