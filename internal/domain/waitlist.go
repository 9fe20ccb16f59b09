package domain

import "time"

type WaitlistStatus string

const (
	WaitlistStatusWaiting  WaitlistStatus = "waiting"
	WaitlistStatusNotified WaitlistStatus = "notified"
)

type WaitlistEntry struct {
	ID         string         `json:"id"`
	RatePlanID string         `json:"rate_plan_id"`
	EventID    string         `json:"event_id"`
	Email      string         `json:"email"`
	UserID     *string        `json:"user_id,omitempty"`
	Status     WaitlistStatus `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	NotifiedAt *time.Time     `json:"notified_at,omitempty"`
}
