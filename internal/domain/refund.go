package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RefundPolicy is owned by event configuration; CutoffHours is the minimum
// lead time before the event start for a refund to be accepted.
type RefundPolicy struct {
	EventID          string          `json:"event_id"`
	RefundsAllowed   bool            `json:"refunds_allowed"`
	CutoffHours      int             `json:"cutoff_hours"`
	RefundPercentage decimal.Decimal `json:"refund_percentage"`
	PartialAllowed   bool            `json:"partial_allowed"`
}

const DefaultRefundCutoffHours = 24

// DefaultRefundPolicy applies to events without a configured policy.
func DefaultRefundPolicy(eventID string) RefundPolicy {
	return RefundPolicy{
		EventID:          eventID,
		RefundsAllowed:   true,
		CutoffHours:      DefaultRefundCutoffHours,
		RefundPercentage: decimal.NewFromInt(100),
		PartialAllowed:   false,
	}
}

type RefundStatus string

const (
	RefundStatusPending   RefundStatus = "pending"
	RefundStatusSucceeded RefundStatus = "succeeded"
	RefundStatusFailed    RefundStatus = "failed"
	RefundStatusCanceled  RefundStatus = "canceled"
)

type Refund struct {
	ID               string       `json:"id"`
	OrderID          string       `json:"order_id"`
	Amount           int64        `json:"amount"`
	Currency         string       `json:"currency"`
	ProviderRefundID string       `json:"provider_refund_id"`
	Status           RefundStatus `json:"status"`
	Reason           string       `json:"reason,omitempty"`
	TicketIDs        []string     `json:"ticket_ids"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// RefundInput asks for a refund of a whole order, or of TicketIDs only when set.
type RefundInput struct {
	Actor     Actor
	OrderID   string
	TicketIDs []string
	Reason    string
}

// ApplyRefundInput is the local write set of an executed refund. It is
// applied in one transaction after the provider accepted the refund.
type ApplyRefundInput struct {
	Refund         *Refund
	OrderStatus    OrderStatus
	TicketIDs      []string
	RatePlanCounts map[string]int
	Audit          *AuditEntry
	At             time.Time
}

type BatchRefundFailure struct {
	OrderID string `json:"order_id"`
	Error   string `json:"error"`
}

type BatchRefundResult struct {
	Requested int                  `json:"requested"`
	Succeeded int                  `json:"succeeded"`
	Failed    []BatchRefundFailure `json:"failed"`
}

// ProviderRefundRequest is what the payment gateway needs to reverse a charge.
type ProviderRefundRequest struct {
	ChargeID       string
	Amount         int64
	Currency       string
	Reason         string
	IdempotencyKey string
	OrderID        string
}

type ProviderRefund struct {
	ID     string
	Status RefundStatus
	Amount int64
}

// ProviderEvent is a verified webhook notification about a refund.
type ProviderEvent struct {
	Type             string
	ProviderRefundID string
	Status           RefundStatus
}
