package domain

import "time"

type EventStatus string

const (
	EventStatusActive    EventStatus = "active"
	EventStatusCancelled EventStatus = "cancelled"
)

type Event struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	StartsAt         time.Time   `json:"starts_at"`
	Status           EventStatus `json:"status"`
	TransfersAllowed bool        `json:"transfers_allowed"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

type EventDetails struct {
	Event  Event        `json:"event"`
	Policy RefundPolicy `json:"refund_policy"`
}

type CreateEventInput struct {
	Title            string
	Description      string
	StartsAt         time.Time
	TransfersAllowed *bool
	Policy           *RefundPolicy
}
