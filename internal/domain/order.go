package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending           OrderStatus = "pending"
	OrderStatusCompleted         OrderStatus = "completed"
	OrderStatusRefunded          OrderStatus = "refunded"
	OrderStatusPartiallyRefunded OrderStatus = "partially_refunded"
	OrderStatusCancelled         OrderStatus = "cancelled"
)

// Order owns its tickets. Amounts are in minor currency units.
type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"user_id"`
	EventID         string      `json:"event_id"`
	Status          OrderStatus `json:"status"`
	TotalAmount     int64       `json:"total_amount"`
	Currency        string      `json:"currency"`
	PaymentChargeID *string     `json:"payment_charge_id,omitempty"`
	RefundedAmount  int64       `json:"refunded_amount"`
	RefundedAt      *time.Time  `json:"refunded_at,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

func (o *Order) HasPayment() bool {
	return o.PaymentChargeID != nil && *o.PaymentChargeID != ""
}

// Refundable reports whether the order status still admits a refund of its
// remaining active tickets.
func (o *Order) Refundable() bool {
	return o.Status == OrderStatusCompleted || o.Status == OrderStatusPartiallyRefunded
}
