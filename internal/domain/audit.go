package domain

import "time"

const (
	AuditTransferInitiated = "transfer.initiated"
	AuditTransferAccepted  = "transfer.accepted"
	AuditTransferCancelled = "transfer.cancelled"
	AuditRefundProcessed   = "refund.processed"
)

// AuditEntry records who changed what. Details must not carry payment secrets.
type AuditEntry struct {
	ID         string            `json:"id"`
	ActorID    string            `json:"actor_id"`
	Action     string            `json:"action"`
	EntityType string            `json:"entity_type"`
	EntityID   string            `json:"entity_id"`
	Details    map[string]string `json:"details,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}
