package eligibility

import (
	"testing"
	"time"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func refundFacts() RefundFacts {
	charge := "ch_123"
	return RefundFacts{
		Order: &domain.Order{
			ID:              "o1",
			UserID:          "u1",
			Status:          domain.OrderStatusCompleted,
			TotalAmount:     10000,
			Currency:        "usd",
			PaymentChargeID: &charge,
		},
		Tickets: []*domain.Ticket{
			{ID: "t1", OrderID: "o1", Status: domain.TicketStatusActive, PriceAmount: 5000},
			{ID: "t2", OrderID: "o1", Status: domain.TicketStatusActive, PriceAmount: 5000},
		},
		Event: &domain.Event{ID: "e1", StartsAt: now.Add(48 * time.Hour)},
		Policy: domain.RefundPolicy{
			EventID:          "e1",
			RefundsAllowed:   true,
			CutoffHours:      24,
			RefundPercentage: decimal.NewFromInt(100),
			PartialAllowed:   true,
		},
		Now: now,
	}
}

func TestRefund_FullRefund(t *testing.T) {
	d := Refund(refundFacts())

	require.True(t, d.Eligible)
	assert.Equal(t, int64(10000), d.RefundableAmount)
	assert.True(t, d.CanPartialRefund)
	assert.False(t, d.Partial)
	assert.Equal(t, "usd", d.Currency)
}

func TestRefund_Percentage(t *testing.T) {
	f := refundFacts()
	f.Order.TotalAmount = 9999
	f.Policy.RefundPercentage = decimal.NewFromInt(50)

	d := Refund(f)

	require.True(t, d.Eligible)
	assert.Equal(t, int64(5000), d.RefundableAmount)
}

func TestRefund_Rules(t *testing.T) {
	scanned := now.Add(-time.Hour)

	tests := []struct {
		name   string
		mutate func(f *RefundFacts)
		denial domain.DenialCode
	}{
		{
			name:   "order already refunded",
			mutate: func(f *RefundFacts) { f.Order.Status = domain.OrderStatusRefunded },
			denial: domain.DenialOrderStatus,
		},
		{
			name:   "pending order",
			mutate: func(f *RefundFacts) { f.Order.Status = domain.OrderStatusPending },
			denial: domain.DenialOrderStatus,
		},
		{
			name:   "one ticket scanned",
			mutate: func(f *RefundFacts) { f.Tickets[1].ScannedAt = &scanned },
			denial: domain.DenialAlreadyUsed,
		},
		{
			name:   "ticket marked used without scan record",
			mutate: func(f *RefundFacts) { f.Tickets[0].Status = domain.TicketStatusUsed },
			denial: domain.DenialAlreadyUsed,
		},
		{
			name: "nothing left to refund",
			mutate: func(f *RefundFacts) {
				f.Order.Status = domain.OrderStatusPartiallyRefunded
				f.Tickets[0].Status = domain.TicketStatusRefunded
				f.Tickets[1].Status = domain.TicketStatusRefunded
			},
			denial: domain.DenialInvalidTickets,
		},
		{
			name: "already refunded ticket requested",
			mutate: func(f *RefundFacts) {
				f.Order.Status = domain.OrderStatusPartiallyRefunded
				f.Tickets[0].Status = domain.TicketStatusRefunded
				f.TicketIDs = []string{"t1"}
			},
			denial: domain.DenialInvalidTickets,
		},
		{
			name:   "no payment reference",
			mutate: func(f *RefundFacts) { f.Order.PaymentChargeID = nil },
			denial: domain.DenialNoPayment,
		},
		{
			name:   "refunds disabled",
			mutate: func(f *RefundFacts) { f.Policy.RefundsAllowed = false },
			denial: domain.DenialRefundsDisabled,
		},
		{
			name:   "inside policy cutoff",
			mutate: func(f *RefundFacts) { f.Policy.CutoffHours = 72 },
			denial: domain.DenialCutoff,
		},
		{
			name: "partial not allowed",
			mutate: func(f *RefundFacts) {
				f.Policy.PartialAllowed = false
				f.TicketIDs = []string{"t1"}
			},
			denial: domain.DenialPartialNotAllowed,
		},
		{
			name:   "foreign ticket",
			mutate: func(f *RefundFacts) { f.TicketIDs = []string{"t9"} },
			denial: domain.DenialInvalidTickets,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := refundFacts()
			tt.mutate(&f)

			d := Refund(f)

			assert.False(t, d.Eligible)
			assert.Equal(t, tt.denial, d.Denial)
			assert.NotEmpty(t, d.Reason)
			assert.Zero(t, d.RefundableAmount)
		})
	}
}

func TestRefund_ScannedTicketDisablesPartial(t *testing.T) {
	scanned := now
	f := refundFacts()
	f.Tickets[0].ScannedAt = &scanned

	d := Refund(f)

	assert.False(t, d.Eligible)
	assert.False(t, d.CanPartialRefund)
}

func TestRefund_PartialSubset(t *testing.T) {
	f := refundFacts()
	f.Policy.RefundPercentage = decimal.NewFromInt(90)
	f.TicketIDs = []string{"t1", "t1"}

	d := Refund(f)

	require.True(t, d.Eligible)
	assert.True(t, d.Partial)
	assert.Equal(t, int64(4500), d.RefundableAmount)
}

func TestRefund_SubsetCoveringOrderIsFull(t *testing.T) {
	f := refundFacts()
	f.Policy.PartialAllowed = false
	f.TicketIDs = []string{"t2", "t1"}

	d := Refund(f)

	require.True(t, d.Eligible)
	assert.False(t, d.Partial)
	assert.Equal(t, int64(10000), d.RefundableAmount)
}

func TestRefund_AfterPartialRefund(t *testing.T) {
	tests := []struct {
		name      string
		ticketIDs []string
	}{
		{"remaining ticket by id", []string{"t2"}},
		{"rest of the order", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := refundFacts()
			f.Order.Status = domain.OrderStatusPartiallyRefunded
			f.Order.RefundedAmount = 5000
			f.Tickets[0].Status = domain.TicketStatusRefunded
			f.TicketIDs = tt.ticketIDs

			d := Refund(f)

			require.True(t, d.Eligible, d.Reason)
			assert.False(t, d.Partial)
			assert.Equal(t, int64(5000), d.RefundableAmount)
		})
	}
}

func TestRefund_InactiveTicketsExcludedFromAmount(t *testing.T) {
	f := refundFacts()
	f.Tickets[0].Status = domain.TicketStatusCancelled

	d := Refund(f)

	require.True(t, d.Eligible)
	assert.False(t, d.Partial)
	assert.Equal(t, int64(5000), d.RefundableAmount)
}

func TestRefundableAmount(t *testing.T) {
	tests := []struct {
		amount int64
		pct    string
		want   int64
	}{
		{10000, "100", 10000},
		{10000, "0", 0},
		{1999, "50", 1000},
		{1001, "33.33", 334},
		{2500, "12.5", 313},
		{7, "100", 7},
	}

	for _, tt := range tests {
		got := RefundableAmount(tt.amount, decimal.RequireFromString(tt.pct))
		assert.Equal(t, tt.want, got, "%d x %s%%", tt.amount, tt.pct)
	}
}
