package eligibility

import (
	"fmt"
	"time"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type RefundFacts struct {
	Order   *domain.Order
	Tickets []*domain.Ticket
	Event   *domain.Event
	Policy  domain.RefundPolicy
	// TicketIDs narrows the refund to a subset of the order; empty means all.
	TicketIDs []string
	Now       time.Time
}

// Refund applies the refund rules in precedence order and derives the
// refundable amount for an eligible request.
func Refund(f RefundFacts) domain.RefundDecision {
	o, p := f.Order, f.Policy

	consumed := false
	for _, t := range f.Tickets {
		if t.Consumed() {
			consumed = true
			break
		}
	}

	res := domain.RefundDecision{
		Currency:         o.Currency,
		CanPartialRefund: p.PartialAllowed && !consumed,
		CutoffHours:      p.CutoffHours,
	}

	deny := func(code domain.DenialCode, reason string) domain.RefundDecision {
		res.Decision = domain.Deny(code, reason)
		return res
	}

	if !o.Refundable() {
		return deny(domain.DenialOrderStatus, orderStatusReason(o.Status))
	}

	if consumed {
		return deny(domain.DenialAlreadyUsed, "tickets in this order have already been used")
	}

	if !o.HasPayment() {
		return deny(domain.DenialNoPayment, "no payment on record for this order")
	}

	if !p.RefundsAllowed {
		return deny(domain.DenialRefundsDisabled, "refunds are not allowed for this event")
	}

	cutoff := time.Duration(p.CutoffHours) * time.Hour
	if !f.Event.StartsAt.After(f.Now.Add(cutoff)) {
		return deny(domain.DenialCutoff, fmt.Sprintf(
			"refunds are closed within %d hours of the event start", p.CutoffHours,
		))
	}

	active := ActiveTickets(f.Tickets)
	if len(active) == 0 {
		return deny(domain.DenialInvalidTickets, "no refundable tickets left in this order")
	}

	selected, partial, err := selectTickets(active, f.TicketIDs)
	if err != nil {
		return deny(domain.DenialInvalidTickets, err.Error())
	}

	if !partial {
		res.Decision = domain.Allow()
		res.RefundableAmount = RefundableAmount(remainingAmount(o, f.Tickets, active), p.RefundPercentage)
		return res
	}

	if !res.CanPartialRefund {
		return deny(domain.DenialPartialNotAllowed, "partial refunds are not allowed for this order")
	}

	var subtotal int64
	for _, t := range selected {
		subtotal += t.PriceAmount
	}
	res.Decision = domain.Allow()
	res.Partial = true
	res.RefundableAmount = RefundableAmount(subtotal, p.RefundPercentage)
	return res
}

// RefundableAmount returns amount × percentage / 100 rounded half away from
// zero to the minor currency unit.
func RefundableAmount(amount int64, percentage decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).
		Mul(percentage).
		Div(hundred).
		Round(0).
		IntPart()
}

// ActiveTickets returns the tickets of an order that a refund can still cover.
func ActiveTickets(all []*domain.Ticket) []*domain.Ticket {
	out := make([]*domain.Ticket, 0, len(all))
	for _, t := range all {
		if t.Status == domain.TicketStatusActive {
			out = append(out, t)
		}
	}
	return out
}

// remainingAmount is the order total while every ticket is still active and
// unrefunded, otherwise the price of the active tickets only.
func remainingAmount(o *domain.Order, all, active []*domain.Ticket) int64 {
	if o.Status == domain.OrderStatusCompleted && len(active) == len(all) {
		return o.TotalAmount
	}

	var sum int64
	for _, t := range active {
		sum += t.PriceAmount
	}
	return sum
}

// selectTickets resolves the requested subset of the active tickets. partial
// is false when nothing was requested or the request covers every active
// ticket.
func selectTickets(active []*domain.Ticket, ids []string) ([]*domain.Ticket, bool, error) {
	if len(ids) == 0 {
		return active, false, nil
	}

	byID := make(map[string]*domain.Ticket, len(active))
	for _, t := range active {
		byID[t.ID] = t
	}

	seen := make(map[string]struct{}, len(ids))
	selected := make([]*domain.Ticket, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		t, ok := byID[id]
		if !ok {
			return nil, false, fmt.Errorf("ticket %s is not an active ticket of this order", id)
		}
		selected = append(selected, t)
	}

	return selected, len(selected) < len(active), nil
}

func orderStatusReason(s domain.OrderStatus) string {
	switch s {
	case domain.OrderStatusRefunded:
		return "order has already been refunded"
	case domain.OrderStatusCancelled:
		return "order has been cancelled"
	case domain.OrderStatusPending:
		return "order payment has not completed"
	default:
		return fmt.Sprintf("order is %s", s)
	}
}
