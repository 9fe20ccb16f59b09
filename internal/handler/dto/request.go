package dto

import (
	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
	"github.com/shopspring/decimal"
)

type InitiateTransferRequest struct {
	RecipientEmail string `json:"recipient_email" binding:"required"`
}

type AcceptTransferRequest struct {
	Code string `json:"code" binding:"required"`
}

type RefundRequest struct {
	TicketIDs []string `json:"ticket_ids" binding:"omitempty,dive,uuid"`
	Reason    string   `json:"reason" binding:"max=500"`
}

type BatchRefundRequest struct {
	OrderIDs []string `json:"order_ids" binding:"required,min=1,max=500,dive,uuid"`
	Reason   string   `json:"reason" binding:"max=500"`
}

type CreateEventRequest struct {
	Title            string               `json:"title" binding:"required"`
	Description      string               `json:"description"`
	StartsAt         string               `json:"starts_at" binding:"required"`
	TransfersAllowed *bool                `json:"transfers_allowed"`
	RefundPolicy     *RefundPolicyRequest `json:"refund_policy"`
}

// RefundPolicyRequest fields left out fall back to the default policy.
type RefundPolicyRequest struct {
	RefundsAllowed   *bool            `json:"refunds_allowed"`
	CutoffHours      *int             `json:"cutoff_hours"`
	RefundPercentage *decimal.Decimal `json:"refund_percentage"`
	PartialAllowed   bool             `json:"partial_allowed"`
}

func (r RefundPolicyRequest) ToDomain(eventID string) domain.RefundPolicy {
	p := domain.DefaultRefundPolicy(eventID)
	if r.RefundsAllowed != nil {
		p.RefundsAllowed = *r.RefundsAllowed
	}
	if r.CutoffHours != nil {
		p.CutoffHours = *r.CutoffHours
	}
	if r.RefundPercentage != nil {
		p.RefundPercentage = *r.RefundPercentage
	}
	p.PartialAllowed = r.PartialAllowed
	return p
}

type CreateUserRequest struct {
	Email          string `json:"email" binding:"required"`
	Username       string `json:"username" binding:"required"`
	Role           string `json:"role" binding:"omitempty,oneof=customer admin"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
