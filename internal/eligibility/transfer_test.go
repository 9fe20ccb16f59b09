package eligibility

import (
	"testing"
	"time"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func transferFacts() TransferFacts {
	return TransferFacts{
		Ticket: &domain.Ticket{
			ID:      "t1",
			OwnerID: "u1",
			Status:  domain.TicketStatusActive,
		},
		Event: &domain.Event{
			ID:               "e1",
			StartsAt:         now.Add(48 * time.Hour),
			Status:           domain.EventStatusActive,
			TransfersAllowed: true,
		},
		Actor:          domain.Actor{UserID: "u1", Email: "owner@example.com"},
		RecipientEmail: "x@y.com",
		Now:            now,
	}
}

func TestTransfer_Eligible(t *testing.T) {
	d := Transfer(transferFacts())

	assert.True(t, d.Eligible)
	assert.Empty(t, d.Reason)
}

func TestTransfer_Rules(t *testing.T) {
	scanned := now.Add(-time.Hour)

	tests := []struct {
		name   string
		mutate func(f *TransferFacts)
		denial domain.DenialCode
		reason string
	}{
		{
			name:   "not owner",
			mutate: func(f *TransferFacts) { f.Actor.UserID = "u2" },
			denial: domain.DenialNotOwner,
		},
		{
			name:   "refunded ticket",
			mutate: func(f *TransferFacts) { f.Ticket.Status = domain.TicketStatusRefunded },
			denial: domain.DenialTicketStatus,
			reason: "ticket has been refunded",
		},
		{
			name:   "scanned ticket",
			mutate: func(f *TransferFacts) { f.Ticket.ScannedAt = &scanned },
			denial: domain.DenialAlreadyUsed,
			reason: "ticket has already been used",
		},
		{
			name:   "pending transfer",
			mutate: func(f *TransferFacts) { f.HasPendingTransfer = true },
			denial: domain.DenialTransferPending,
			reason: "transfer already pending",
		},
		{
			name:   "transfers disabled",
			mutate: func(f *TransferFacts) { f.Event.TransfersAllowed = false },
			denial: domain.DenialTransfersDisabled,
		},
		{
			name:   "event cancelled",
			mutate: func(f *TransferFacts) { f.Event.Status = domain.EventStatusCancelled },
			denial: domain.DenialEventCancelled,
		},
		{
			name:   "inside cutoff",
			mutate: func(f *TransferFacts) { f.Event.StartsAt = now.Add(12 * time.Hour) },
			denial: domain.DenialCutoff,
		},
		{
			name:   "exactly at cutoff",
			mutate: func(f *TransferFacts) { f.Event.StartsAt = now.Add(TransferCutoff) },
			denial: domain.DenialCutoff,
		},
		{
			name:   "malformed recipient",
			mutate: func(f *TransferFacts) { f.RecipientEmail = "not-an-email" },
			denial: domain.DenialInvalidRecipient,
			reason: "invalid recipient",
		},
		{
			name:   "empty recipient",
			mutate: func(f *TransferFacts) { f.RecipientEmail = "  " },
			denial: domain.DenialInvalidRecipient,
		},
		{
			name:   "self transfer ignores case",
			mutate: func(f *TransferFacts) { f.RecipientEmail = "Owner@Example.com" },
			denial: domain.DenialSelfTransfer,
			reason: "cannot transfer to self",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := transferFacts()
			tt.mutate(&f)

			d := Transfer(f)

			assert.False(t, d.Eligible)
			assert.Equal(t, tt.denial, d.Denial)
			if tt.reason != "" {
				assert.Equal(t, tt.reason, d.Reason)
			}
		})
	}
}

func TestTransfer_CutoffReasonNamesHours(t *testing.T) {
	f := transferFacts()
	f.Event.StartsAt = now.Add(12 * time.Hour)

	d := Transfer(f)

	assert.False(t, d.Eligible)
	assert.Contains(t, d.Reason, "24 hours")
}

func TestTransfer_FirstFailingRuleWins(t *testing.T) {
	scanned := now
	f := transferFacts()
	f.Actor.UserID = "intruder"
	f.Ticket.ScannedAt = &scanned
	f.Event.Status = domain.EventStatusCancelled

	d := Transfer(f)

	assert.Equal(t, domain.DenialNotOwner, d.Denial)
}

func TestTransfer_ConsumedTicketNeverEligible(t *testing.T) {
	scanned := now.Add(-time.Minute)
	for _, status := range []domain.TicketStatus{
		domain.TicketStatusActive,
		domain.TicketStatusUsed,
		domain.TicketStatusTransferred,
	} {
		f := transferFacts()
		f.Ticket.Status = status
		f.Ticket.ScannedAt = &scanned

		assert.False(t, Transfer(f).Eligible, "status %s", status)
	}
}
