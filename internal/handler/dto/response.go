package dto

import (
	"time"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
)

type ErrorResponse struct {
	Error     string `json:"error"`
	Retryable bool   `json:"retryable,omitempty"`
}

type DecisionResponse struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
	Denial   string `json:"denial,omitempty"`
}

type TransferResponse struct {
	ID          string  `json:"id"`
	TicketID    string  `json:"ticket_id"`
	FromUserID  string  `json:"from_user_id"`
	ToEmail     string  `json:"to_email"`
	ToUserID    *string `json:"to_user_id,omitempty"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	ExpiresAt   string  `json:"expires_at"`
	CompletedAt *string `json:"completed_at,omitempty"`
	CancelledAt *string `json:"cancelled_at,omitempty"`
}

// InitiateTransferResponse is the only place the plain code is ever shown.
type InitiateTransferResponse struct {
	DecisionResponse
	Transfer *TransferResponse `json:"transfer,omitempty"`
	Code     string            `json:"code,omitempty"`
}

type RefundEligibilityResponse struct {
	DecisionResponse
	RefundableAmount int64  `json:"refundable_amount"`
	Currency         string `json:"currency"`
	CanPartialRefund bool   `json:"can_partial_refund"`
	CutoffHours      int    `json:"cutoff_hours"`
	Partial          bool   `json:"partial"`
}

type RefundResponse struct {
	ID               string   `json:"id"`
	OrderID          string   `json:"order_id"`
	Amount           int64    `json:"amount"`
	Currency         string   `json:"currency"`
	Status           string   `json:"status"`
	ProviderRefundID string   `json:"provider_refund_id,omitempty"`
	TicketIDs        []string `json:"ticket_ids"`
	Reason           string   `json:"reason,omitempty"`
	CreatedAt        string   `json:"created_at"`
}

type BatchRefundFailure struct {
	OrderID string `json:"order_id"`
	Error   string `json:"error"`
}

type BatchRefundResponse struct {
	Requested int                  `json:"requested"`
	Succeeded int                  `json:"succeeded"`
	Failed    []BatchRefundFailure `json:"failed"`
}

type EventResponse struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	StartsAt         string `json:"starts_at"`
	Status           string `json:"status"`
	TransfersAllowed bool   `json:"transfers_allowed"`
	CreatedAt        string `json:"created_at"`
}

type RefundPolicyResponse struct {
	RefundsAllowed   bool   `json:"refunds_allowed"`
	CutoffHours      int    `json:"cutoff_hours"`
	RefundPercentage string `json:"refund_percentage"`
	PartialAllowed   bool   `json:"partial_allowed"`
}

type EventDetailsResponse struct {
	Event        EventResponse        `json:"event"`
	RefundPolicy RefundPolicyResponse `json:"refund_policy"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Username       string `json:"username"`
	Role           string `json:"role"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

func ToDecisionResponse(d domain.Decision) DecisionResponse {
	return DecisionResponse{
		Eligible: d.Eligible,
		Reason:   d.Reason,
		Denial:   string(d.Denial),
	}
}

func ToTransferResponse(tr *domain.TransferRequest) TransferResponse {
	return TransferResponse{
		ID:          tr.ID,
		TicketID:    tr.TicketID,
		FromUserID:  tr.FromUserID,
		ToEmail:     tr.ToEmail,
		ToUserID:    tr.ToUserID,
		Status:      string(tr.Status),
		CreatedAt:   tr.CreatedAt.Format(time.RFC3339),
		ExpiresAt:   tr.ExpiresAt.Format(time.RFC3339),
		CompletedAt: formatOptional(tr.CompletedAt),
		CancelledAt: formatOptional(tr.CancelledAt),
	}
}

func ToInitiateTransferResponse(res *domain.TransferInitiation) InitiateTransferResponse {
	resp := InitiateTransferResponse{
		DecisionResponse: ToDecisionResponse(res.Decision),
		Code:             res.Code,
	}
	if res.Transfer != nil {
		tr := ToTransferResponse(res.Transfer)
		resp.Transfer = &tr
	}
	return resp
}

func ToRefundEligibilityResponse(d *domain.RefundDecision) RefundEligibilityResponse {
	return RefundEligibilityResponse{
		DecisionResponse: ToDecisionResponse(d.Decision),
		RefundableAmount: d.RefundableAmount,
		Currency:         d.Currency,
		CanPartialRefund: d.CanPartialRefund,
		CutoffHours:      d.CutoffHours,
		Partial:          d.Partial,
	}
}

func ToRefundResponse(r *domain.Refund) RefundResponse {
	ids := r.TicketIDs
	if ids == nil {
		ids = []string{}
	}
	return RefundResponse{
		ID:               r.ID,
		OrderID:          r.OrderID,
		Amount:           r.Amount,
		Currency:         r.Currency,
		Status:           string(r.Status),
		ProviderRefundID: r.ProviderRefundID,
		TicketIDs:        ids,
		Reason:           r.Reason,
		CreatedAt:        r.CreatedAt.Format(time.RFC3339),
	}
}

func ToBatchRefundResponse(res *domain.BatchRefundResult) BatchRefundResponse {
	failed := make([]BatchRefundFailure, 0, len(res.Failed))
	for _, f := range res.Failed {
		failed = append(failed, BatchRefundFailure{OrderID: f.OrderID, Error: f.Error})
	}
	return BatchRefundResponse{
		Requested: res.Requested,
		Succeeded: res.Succeeded,
		Failed:    failed,
	}
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:               e.ID,
		Title:            e.Title,
		Description:      e.Description,
		StartsAt:         e.StartsAt.Format(time.RFC3339),
		Status:           string(e.Status),
		TransfersAllowed: e.TransfersAllowed,
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
	}
}

func ToRefundPolicyResponse(p *domain.RefundPolicy) RefundPolicyResponse {
	return RefundPolicyResponse{
		RefundsAllowed:   p.RefundsAllowed,
		CutoffHours:      p.CutoffHours,
		RefundPercentage: p.RefundPercentage.String(),
		PartialAllowed:   p.PartialAllowed,
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	return EventDetailsResponse{
		Event:        ToEventResponse(&d.Event),
		RefundPolicy: ToRefundPolicyResponse(&d.Policy),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		Username:       u.Username,
		Role:           string(u.Role),
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
