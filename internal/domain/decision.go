package domain

// DenialCode identifies which rule rejected a transition.
type DenialCode string

const (
	DenialNone              DenialCode = ""
	DenialNotOwner          DenialCode = "not_owner"
	DenialTicketStatus      DenialCode = "ticket_status"
	DenialAlreadyUsed       DenialCode = "already_used"
	DenialTransferPending   DenialCode = "transfer_pending"
	DenialTransfersDisabled DenialCode = "transfers_disabled"
	DenialEventCancelled    DenialCode = "event_cancelled"
	DenialCutoff            DenialCode = "cutoff"
	DenialInvalidRecipient  DenialCode = "invalid_recipient"
	DenialSelfTransfer      DenialCode = "self_transfer"
	DenialOrderStatus       DenialCode = "order_status"
	DenialNoPayment         DenialCode = "no_payment"
	DenialRefundsDisabled   DenialCode = "refunds_disabled"
	DenialPartialNotAllowed DenialCode = "partial_not_allowed"
	DenialInvalidTickets    DenialCode = "invalid_tickets"
)

// Decision is the result of an eligibility check. A denial is a normal
// business outcome and never an error.
type Decision struct {
	Eligible bool       `json:"eligible"`
	Reason   string     `json:"reason,omitempty"`
	Denial   DenialCode `json:"denial,omitempty"`
}

func Allow() Decision {
	return Decision{Eligible: true}
}

func Deny(code DenialCode, reason string) Decision {
	return Decision{Eligible: false, Denial: code, Reason: reason}
}

type RefundDecision struct {
	Decision
	RefundableAmount int64  `json:"refundable_amount"`
	Currency         string `json:"currency"`
	CanPartialRefund bool   `json:"can_partial_refund"`
	CutoffHours      int    `json:"cutoff_hours"`
	Partial          bool   `json:"partial"`
}
