package domain

import "time"

type TransferStatus string

const (
	TransferStatusPending   TransferStatus = "pending"
	TransferStatusCompleted TransferStatus = "completed"
	TransferStatusCancelled TransferStatus = "cancelled"
	TransferStatusExpired   TransferStatus = "expired"
)

// TransferCodePrefix marks every opaque transfer code handed to recipients.
const TransferCodePrefix = "XFER-"

// TransferRequest is a single-use offer to move a ticket to another holder.
// Only the digest of the code is persisted.
type TransferRequest struct {
	ID          string         `json:"id"`
	TicketID    string         `json:"ticket_id"`
	FromUserID  string         `json:"from_user_id"`
	ToEmail     string         `json:"to_email"`
	ToUserID    *string        `json:"to_user_id,omitempty"`
	CodeHash    string         `json:"-"`
	Status      TransferStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	ExpiresAt   time.Time      `json:"expires_at"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	CancelledAt *time.Time     `json:"cancelled_at,omitempty"`
}

func (r *TransferRequest) ExpiredAt(now time.Time) bool {
	return !r.ExpiresAt.After(now)
}

// TransferInitiation is the outcome of an initiate call. Code and Transfer are
// set only when Decision.Eligible is true.
type TransferInitiation struct {
	Decision Decision
	Transfer *TransferRequest
	Code     string
}

// TransferOffer is the payload sent to the recipient of a new transfer.
type TransferOffer struct {
	RecipientEmail string
	SenderName     string
	EventTitle     string
	EventStartsAt  time.Time
	Code           string
	ExpiresAt      time.Time
}

// CompleteTransferInput carries the values written by an accepted transfer.
type CompleteTransferInput struct {
	TransferID string
	TicketID   string
	FromUserID string
	ToUserID   string
	At         time.Time
	Audit      *AuditEntry
}
