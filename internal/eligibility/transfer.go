// Package eligibility answers whether a ticket may change hands or an order
// may be refunded. Every function here is pure over already fetched data.
package eligibility

import (
	"fmt"
	"strings"
	"time"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
	"github.com/go-playground/validator/v10"
)

// TransferCutoff is the minimum lead time before the event start.
const TransferCutoff = 24 * time.Hour

var validate = validator.New()

type TransferFacts struct {
	Ticket             *domain.Ticket
	Event              *domain.Event
	Actor              domain.Actor
	RecipientEmail     string
	HasPendingTransfer bool
	Now                time.Time
}

// Transfer applies the transfer rules in precedence order; the first failing
// rule decides the reason.
func Transfer(f TransferFacts) domain.Decision {
	t, e := f.Ticket, f.Event

	if t.OwnerID != f.Actor.UserID {
		return domain.Deny(domain.DenialNotOwner, "you do not own this ticket")
	}

	if t.Status != domain.TicketStatusActive {
		return domain.Deny(domain.DenialTicketStatus, ticketStatusReason(t.Status))
	}

	if t.Consumed() {
		return domain.Deny(domain.DenialAlreadyUsed, "ticket has already been used")
	}

	if f.HasPendingTransfer {
		return domain.Deny(domain.DenialTransferPending, "transfer already pending")
	}

	if !e.TransfersAllowed {
		return domain.Deny(domain.DenialTransfersDisabled, "transfers are not allowed for this event")
	}

	if e.Status == domain.EventStatusCancelled {
		return domain.Deny(domain.DenialEventCancelled, "event has been cancelled")
	}

	if !e.StartsAt.After(f.Now.Add(TransferCutoff)) {
		return domain.Deny(domain.DenialCutoff, fmt.Sprintf(
			"transfers are closed within %d hours of the event start", int(TransferCutoff.Hours()),
		))
	}

	return recipientDecision(f.RecipientEmail, f.Actor.Email)
}

func recipientDecision(recipient, self string) domain.Decision {
	recipient = strings.TrimSpace(recipient)
	if err := validate.Var(recipient, "required,email"); err != nil {
		return domain.Deny(domain.DenialInvalidRecipient, "invalid recipient")
	}
	if strings.EqualFold(recipient, strings.TrimSpace(self)) {
		return domain.Deny(domain.DenialSelfTransfer, "cannot transfer to self")
	}
	return domain.Allow()
}

func ticketStatusReason(s domain.TicketStatus) string {
	switch s {
	case domain.TicketStatusUsed:
		return "ticket has already been used"
	case domain.TicketStatusRefunded:
		return "ticket has been refunded"
	case domain.TicketStatusTransferred:
		return "ticket has already been transferred"
	case domain.TicketStatusCancelled:
		return "ticket has been cancelled"
	default:
		return fmt.Sprintf("ticket is %s", s)
	}
}
