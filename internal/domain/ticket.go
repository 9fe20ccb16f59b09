package domain

import "time"

type TicketStatus string

const (
	TicketStatusActive      TicketStatus = "active"
	TicketStatusUsed        TicketStatus = "used"
	TicketStatusRefunded    TicketStatus = "refunded"
	TicketStatusTransferred TicketStatus = "transferred"
	TicketStatusCancelled   TicketStatus = "cancelled"
)

type Ticket struct {
	ID            string       `json:"id"`
	OrderID       string       `json:"order_id"`
	EventID       string       `json:"event_id"`
	RatePlanID    string       `json:"rate_plan_id"`
	OwnerID       string       `json:"owner_id"`
	Status        TicketStatus `json:"status"`
	PriceAmount   int64        `json:"price_amount"`
	ScannedAt     *time.Time   `json:"scanned_at,omitempty"`
	TransferredAt *time.Time   `json:"transferred_at,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// Consumed reports whether the ticket has been used, either scanned at the
// door or marked used without a scan record.
func (t *Ticket) Consumed() bool {
	return t.ScannedAt != nil || t.Status == TicketStatusUsed
}
