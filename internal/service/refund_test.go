package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/clock"
	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
	"github.com/ghxstship/grasshopper26.00-sub002/internal/service/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type refundMocks struct {
	orders   *mocks.MockOrderRepo
	tickets  *mocks.MockTicketRepo
	events   *mocks.MockEventRepo
	users    *mocks.MockUserRepo
	waitlist *mocks.MockWaitlistRepo
	payments *mocks.MockPaymentGateway
	notifier *mocks.MockNotifier
}

func newRefundService(t *testing.T) (*RefundService, refundMocks) {
	m := refundMocks{
		orders:   mocks.NewMockOrderRepo(t),
		tickets:  mocks.NewMockTicketRepo(t),
		events:   mocks.NewMockEventRepo(t),
		users:    mocks.NewMockUserRepo(t),
		waitlist: mocks.NewMockWaitlistRepo(t),
		payments: mocks.NewMockPaymentGateway(t),
		notifier: mocks.NewMockNotifier(t),
	}
	svc := NewRefundService(
		m.orders, m.tickets, m.events, m.users, m.waitlist, m.payments, m.notifier,
		clock.NewFixed(testNow), newTestLogger(t),
	)
	return svc, m
}

func paidOrder(id string) *domain.Order {
	charge := "ch_" + id
	return &domain.Order{
		ID:              id,
		UserID:          "u1",
		EventID:         "e1",
		Status:          domain.OrderStatusCompleted,
		TotalAmount:     10000,
		Currency:        "usd",
		PaymentChargeID: &charge,
	}
}

func orderTickets(orderID string) []*domain.Ticket {
	return []*domain.Ticket{
		{ID: orderID + "-t1", OrderID: orderID, EventID: "e1", RatePlanID: "rp1", OwnerID: "u1", Status: domain.TicketStatusActive, PriceAmount: 5000},
		{ID: orderID + "-t2", OrderID: orderID, EventID: "e1", RatePlanID: "rp1", OwnerID: "u1", Status: domain.TicketStatusActive, PriceAmount: 5000},
	}
}

// expectFacts stubs the reads every refund starts with.
func expectFacts(m refundMocks, order *domain.Order, event *domain.Event, policy *domain.RefundPolicy) {
	m.orders.EXPECT().GetByID(mock.Anything, order.ID).Return(order, nil)
	m.tickets.EXPECT().ListByOrder(mock.Anything, order.ID).Return(orderTickets(order.ID), nil)
	m.events.EXPECT().GetByID(mock.Anything, order.EventID).Return(event, nil)
	m.events.EXPECT().GetPolicy(mock.Anything, order.EventID).Return(policy, nil)
}

func TestRefundService_CheckEligibility_DefaultPolicy(t *testing.T) {
	svc, m := newRefundService(t)
	expectFacts(m, paidOrder("o1"), upcomingEvent(48*time.Hour), nil)

	d, err := svc.CheckEligibility(context.Background(), owner, "o1", nil)

	require.NoError(t, err)
	assert.True(t, d.Eligible)
	assert.Equal(t, int64(10000), d.RefundableAmount)
	assert.Equal(t, "usd", d.Currency)
	assert.Equal(t, domain.DefaultRefundCutoffHours, d.CutoffHours)
	assert.False(t, d.CanPartialRefund)
}

func TestRefundService_CheckEligibility_InsideCutoff(t *testing.T) {
	svc, m := newRefundService(t)
	expectFacts(m, paidOrder("o1"), upcomingEvent(12*time.Hour), nil)

	d, err := svc.CheckEligibility(context.Background(), owner, "o1", nil)

	require.NoError(t, err)
	assert.False(t, d.Eligible)
	assert.Equal(t, domain.DenialCutoff, d.Denial)
	assert.Contains(t, d.Reason, "24 hours")
}

func TestRefundService_CheckEligibility_ForeignOrder(t *testing.T) {
	svc, m := newRefundService(t)
	m.orders.EXPECT().GetByID(mock.Anything, "o1").Return(paidOrder("o1"), nil)

	_, err := svc.CheckEligibility(context.Background(), recipient, "o1", nil)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRefundService_CheckEligibility_AdminMaySeeAnyOrder(t *testing.T) {
	svc, m := newRefundService(t)
	expectFacts(m, paidOrder("o1"), upcomingEvent(48*time.Hour), nil)

	admin := domain.Actor{UserID: "a1", Email: "admin@example.com", Role: domain.RoleAdmin}
	d, err := svc.CheckEligibility(context.Background(), admin, "o1", nil)

	require.NoError(t, err)
	assert.True(t, d.Eligible)
}

func TestRefundService_ProcessRefund_FullOrder(t *testing.T) {
	svc, m := newRefundService(t)
	order := paidOrder("o1")
	event := upcomingEvent(48 * time.Hour)
	purchaser := &domain.User{ID: "u1", Email: "owner@example.com"}
	expectFacts(m, order, event, nil)

	m.payments.EXPECT().Refund(mock.Anything, mock.MatchedBy(func(r domain.ProviderRefundRequest) bool {
		return r.ChargeID == "ch_o1" &&
			r.Amount == 10000 &&
			r.Currency == "usd" &&
			r.IdempotencyKey == refundIdempotencyKey("o1", []string{"o1-t2", "o1-t1"})
	})).Return(&domain.ProviderRefund{ID: "re_1", Status: domain.RefundStatusSucceeded, Amount: 10000}, nil)

	var applied domain.ApplyRefundInput
	m.orders.EXPECT().ApplyRefund(mock.Anything, mock.Anything).
		Run(func(_ context.Context, in domain.ApplyRefundInput) { applied = in }).
		Return(nil)

	entry := &domain.WaitlistEntry{ID: "w1", RatePlanID: "rp1", EventID: "e1", Email: "next@example.com"}
	m.waitlist.EXPECT().ClaimWaiting(mock.Anything, "rp1", 2, testNow).Return([]*domain.WaitlistEntry{entry}, nil)

	freed := make(chan struct{})
	m.notifier.EXPECT().NotifyCapacityFreed(mock.Anything, entry, event).
		Run(func(context.Context, *domain.WaitlistEntry, *domain.Event) { close(freed) }).
		Return()

	issued := make(chan struct{})
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(purchaser, nil)
	m.notifier.EXPECT().NotifyRefundIssued(mock.Anything, purchaser, event, mock.Anything).
		Run(func(context.Context, *domain.User, *domain.Event, *domain.Refund) { close(issued) }).
		Return()

	refund, err := svc.ProcessRefund(context.Background(), domain.RefundInput{Actor: owner, OrderID: "o1", Reason: "requested_by_customer"})

	require.NoError(t, err)
	assert.Equal(t, int64(10000), refund.Amount)
	assert.Equal(t, "re_1", refund.ProviderRefundID)
	assert.Equal(t, domain.RefundStatusSucceeded, refund.Status)

	assert.Equal(t, domain.OrderStatusRefunded, applied.OrderStatus)
	assert.ElementsMatch(t, []string{"o1-t1", "o1-t2"}, applied.TicketIDs)
	assert.Equal(t, map[string]int{"rp1": 2}, applied.RatePlanCounts)
	require.NotNil(t, applied.Audit)
	assert.Equal(t, domain.AuditRefundProcessed, applied.Audit.Action)
	assert.Equal(t, "10000", applied.Audit.Details["amount"])
	assert.Same(t, refund, applied.Refund)

	waitFor(t, freed)
	waitFor(t, issued)
}

func TestRefundService_ProcessRefund_PartialSubset(t *testing.T) {
	svc, m := newRefundService(t)
	order := paidOrder("o1")
	event := upcomingEvent(48 * time.Hour)
	policy := &domain.RefundPolicy{
		EventID:          "e1",
		RefundsAllowed:   true,
		CutoffHours:      24,
		RefundPercentage: decimal.NewFromInt(90),
		PartialAllowed:   true,
	}
	expectFacts(m, order, event, policy)

	m.payments.EXPECT().Refund(mock.Anything, mock.MatchedBy(func(r domain.ProviderRefundRequest) bool {
		return r.Amount == 4500
	})).Return(&domain.ProviderRefund{ID: "re_2", Status: domain.RefundStatusPending, Amount: 4500}, nil)

	m.orders.EXPECT().ApplyRefund(mock.Anything, mock.MatchedBy(func(in domain.ApplyRefundInput) bool {
		return in.OrderStatus == domain.OrderStatusPartiallyRefunded &&
			len(in.TicketIDs) == 1 && in.TicketIDs[0] == "o1-t1" &&
			in.RatePlanCounts["rp1"] == 1
	})).Return(nil)
	m.waitlist.EXPECT().ClaimWaiting(mock.Anything, "rp1", 1, testNow).Return(nil, nil)

	issued := make(chan struct{})
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.notifier.EXPECT().NotifyRefundIssued(mock.Anything, mock.Anything, event, mock.Anything).
		Run(func(context.Context, *domain.User, *domain.Event, *domain.Refund) { close(issued) }).
		Return()

	refund, err := svc.ProcessRefund(context.Background(), domain.RefundInput{
		Actor:     owner,
		OrderID:   "o1",
		TicketIDs: []string{"o1-t1"},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(4500), refund.Amount)
	assert.Equal(t, domain.RefundStatusPending, refund.Status)
	waitFor(t, issued)
}

func TestRefundService_ProcessRefund_ProviderFailureLeavesOrderUntouched(t *testing.T) {
	svc, m := newRefundService(t)
	expectFacts(m, paidOrder("o1"), upcomingEvent(48*time.Hour), nil)

	m.payments.EXPECT().Refund(mock.Anything, mock.Anything).
		Return(nil, &domain.PaymentError{Code: "charge_disputed", Message: "charge is disputed"})

	_, err := svc.ProcessRefund(context.Background(), domain.RefundInput{Actor: owner, OrderID: "o1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentProvider)
	var pe *domain.PaymentError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "charge_disputed", pe.Code)

	m.orders.AssertNotCalled(t, "ApplyRefund", mock.Anything, mock.Anything)
	m.waitlist.AssertNotCalled(t, "ClaimWaiting", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRefundService_ProcessRefund_NotEligible(t *testing.T) {
	svc, m := newRefundService(t)
	order := paidOrder("o1")
	order.Status = domain.OrderStatusRefunded
	expectFacts(m, order, upcomingEvent(48*time.Hour), nil)

	_, err := svc.ProcessRefund(context.Background(), domain.RefundInput{Actor: owner, OrderID: "o1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotEligible)
	assert.Contains(t, err.Error(), "already been refunded")
	m.payments.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything)
}

func TestRefundService_ProcessRefund_ZeroAmountSkipsProvider(t *testing.T) {
	svc, m := newRefundService(t)
	event := upcomingEvent(48 * time.Hour)
	policy := domain.DefaultRefundPolicy("e1")
	policy.RefundPercentage = decimal.Zero
	expectFacts(m, paidOrder("o1"), event, &policy)

	m.orders.EXPECT().ApplyRefund(mock.Anything, mock.MatchedBy(func(in domain.ApplyRefundInput) bool {
		return in.Refund.Amount == 0 && in.Refund.ProviderRefundID == ""
	})).Return(nil)
	m.waitlist.EXPECT().ClaimWaiting(mock.Anything, "rp1", 2, testNow).Return(nil, nil)

	issued := make(chan struct{})
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.notifier.EXPECT().NotifyRefundIssued(mock.Anything, mock.Anything, event, mock.Anything).
		Run(func(context.Context, *domain.User, *domain.Event, *domain.Refund) { close(issued) }).
		Return()

	refund, err := svc.ProcessRefund(context.Background(), domain.RefundInput{Actor: owner, OrderID: "o1"})

	require.NoError(t, err)
	assert.Zero(t, refund.Amount)
	m.payments.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything)
	waitFor(t, issued)
}

func TestRefundService_ProcessRefund_LocalWriteFails(t *testing.T) {
	svc, m := newRefundService(t)
	expectFacts(m, paidOrder("o1"), upcomingEvent(48*time.Hour), nil)

	m.payments.EXPECT().Refund(mock.Anything, mock.Anything).
		Return(&domain.ProviderRefund{ID: "re_1", Status: domain.RefundStatusSucceeded}, nil)
	m.orders.EXPECT().ApplyRefund(mock.Anything, mock.Anything).Return(errors.New("db error"))

	_, err := svc.ProcessRefund(context.Background(), domain.RefundInput{Actor: owner, OrderID: "o1"})

	require.Error(t, err)
	m.waitlist.AssertNotCalled(t, "ClaimWaiting", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRefundService_BatchRefund_PartialFailure(t *testing.T) {
	svc, m := newRefundService(t)
	event := upcomingEvent(48 * time.Hour)
	admin := domain.Actor{UserID: "a1", Role: domain.RoleAdmin}

	expectFacts(m, paidOrder("o1"), event, nil)
	expectFacts(m, paidOrder("o3"), event, nil)
	m.orders.EXPECT().GetByID(mock.Anything, "o2").Return(nil, domain.ErrOrderNotFound)

	m.payments.EXPECT().Refund(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, r domain.ProviderRefundRequest) (*domain.ProviderRefund, error) {
			return &domain.ProviderRefund{ID: "re_" + r.OrderID, Status: domain.RefundStatusSucceeded, Amount: r.Amount}, nil
		})
	m.orders.EXPECT().ApplyRefund(mock.Anything, mock.Anything).Return(nil)
	m.waitlist.EXPECT().ClaimWaiting(mock.Anything, "rp1", 2, testNow).Return(nil, nil)

	notified := make(chan string, 2)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.notifier.EXPECT().NotifyRefundIssued(mock.Anything, mock.Anything, event, mock.Anything).
		Run(func(_ context.Context, _ *domain.User, _ *domain.Event, r *domain.Refund) { notified <- r.OrderID }).
		Return()

	res, err := svc.BatchRefund(context.Background(), admin, []string{"o1", "o2", "o3"}, "event_cancelled")

	require.NoError(t, err)
	assert.Equal(t, 3, res.Requested)
	assert.Equal(t, 2, res.Succeeded)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, "o2", res.Failed[0].OrderID)
	assert.Contains(t, res.Failed[0].Error, "order not found")

	got := make([]string, 0, 2)
	for range 2 {
		select {
		case id := <-notified:
			got = append(got, id)
		case <-time.After(time.Second):
			t.Fatal("refund notification was not sent")
		}
	}
	assert.ElementsMatch(t, []string{"o1", "o3"}, got)
}

func TestRefundService_BatchRefund_CancelledContext(t *testing.T) {
	svc, _ := newRefundService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := svc.BatchRefund(ctx, owner, []string{"o1", "o2"}, "")

	require.NoError(t, err)
	assert.Zero(t, res.Succeeded)
	assert.Len(t, res.Failed, 2)
}

func TestRefundService_BatchRefund_Empty(t *testing.T) {
	svc, _ := newRefundService(t)

	res, err := svc.BatchRefund(context.Background(), owner, nil, "")

	require.NoError(t, err)
	assert.Zero(t, res.Requested)
	assert.NotNil(t, res.Failed)
}

func TestRefundService_HandleProviderEvent(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(m refundMocks)
		wantErr error
	}{
		{
			name: "status updated",
			setup: func(m refundMocks) {
				m.payments.EXPECT().ParseWebhook([]byte("{}"), "sig").
					Return(&domain.ProviderEvent{Type: "refund.updated", ProviderRefundID: "re_1", Status: domain.RefundStatusFailed}, nil)
				m.orders.EXPECT().UpdateRefundStatus(mock.Anything, "re_1", domain.RefundStatusFailed, testNow).Return(nil)
			},
		},
		{
			name: "unknown refund is ignored",
			setup: func(m refundMocks) {
				m.payments.EXPECT().ParseWebhook([]byte("{}"), "sig").
					Return(&domain.ProviderEvent{Type: "refund.updated", ProviderRefundID: "re_x", Status: domain.RefundStatusSucceeded}, nil)
				m.orders.EXPECT().UpdateRefundStatus(mock.Anything, "re_x", domain.RefundStatusSucceeded, testNow).Return(domain.ErrRefundNotFound)
			},
		},
		{
			name: "unrelated event",
			setup: func(m refundMocks) {
				m.payments.EXPECT().ParseWebhook([]byte("{}"), "sig").
					Return(&domain.ProviderEvent{Type: "customer.created"}, nil)
			},
		},
		{
			name: "bad signature",
			setup: func(m refundMocks) {
				m.payments.EXPECT().ParseWebhook([]byte("{}"), "sig").Return(nil, domain.ErrInvalidSignature)
			},
			wantErr: domain.ErrInvalidSignature,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newRefundService(t)
			tt.setup(m)

			err := svc.HandleProviderEvent(context.Background(), []byte("{}"), "sig")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRefundService_ProcessRefund_RemainderAfterPartialRefund(t *testing.T) {
	svc, m := newRefundService(t)
	order := paidOrder("o1")
	order.Status = domain.OrderStatusPartiallyRefunded
	event := upcomingEvent(48 * time.Hour)
	tickets := orderTickets("o1")
	tickets[0].Status = domain.TicketStatusRefunded

	m.orders.EXPECT().GetByID(mock.Anything, "o1").Return(order, nil)
	m.tickets.EXPECT().ListByOrder(mock.Anything, "o1").Return(tickets, nil)
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.events.EXPECT().GetPolicy(mock.Anything, "e1").Return(nil, nil)

	m.payments.EXPECT().Refund(mock.Anything, mock.MatchedBy(func(r domain.ProviderRefundRequest) bool {
		return r.Amount == 5000 && r.IdempotencyKey == refundIdempotencyKey("o1", []string{"o1-t2"})
	})).Return(&domain.ProviderRefund{ID: "re_3", Status: domain.RefundStatusSucceeded, Amount: 5000}, nil)
	m.orders.EXPECT().ApplyRefund(mock.Anything, mock.MatchedBy(func(in domain.ApplyRefundInput) bool {
		return in.OrderStatus == domain.OrderStatusRefunded &&
			len(in.TicketIDs) == 1 && in.TicketIDs[0] == "o1-t2" &&
			in.RatePlanCounts["rp1"] == 1
	})).Return(nil)
	m.waitlist.EXPECT().ClaimWaiting(mock.Anything, "rp1", 1, testNow).Return(nil, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.notifier.EXPECT().NotifyRefundIssued(mock.Anything, mock.Anything, event, mock.Anything).Return()

	refund, err := svc.ProcessRefund(context.Background(), domain.RefundInput{Actor: owner, OrderID: "o1"})
	svc.Wait()

	require.NoError(t, err)
	assert.Equal(t, int64(5000), refund.Amount)
	assert.Equal(t, []string{"o1-t2"}, refund.TicketIDs)
}

func TestRefundService_ProcessRefund_ConcurrentDuplicate(t *testing.T) {
	svc, m := newRefundService(t)
	expectFacts(m, paidOrder("o1"), upcomingEvent(48*time.Hour), nil)

	m.payments.EXPECT().Refund(mock.Anything, mock.Anything).
		Return(&domain.ProviderRefund{ID: "re_1", Status: domain.RefundStatusSucceeded, Amount: 10000}, nil)
	m.orders.EXPECT().ApplyRefund(mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: %w", domain.ErrOrderNotRefundable, domain.ErrRefundDuplicate))

	_, err := svc.ProcessRefund(context.Background(), domain.RefundInput{Actor: owner, OrderID: "o1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOrderNotRefundable)
	assert.ErrorIs(t, err, domain.ErrRefundDuplicate)
	m.waitlist.AssertNotCalled(t, "ClaimWaiting", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRefundService_Wait_DrainsNotifications(t *testing.T) {
	svc, m := newRefundService(t)
	event := upcomingEvent(48 * time.Hour)
	expectFacts(m, paidOrder("o1"), event, nil)

	m.payments.EXPECT().Refund(mock.Anything, mock.Anything).
		Return(&domain.ProviderRefund{ID: "re_1", Status: domain.RefundStatusSucceeded, Amount: 10000}, nil)
	m.orders.EXPECT().ApplyRefund(mock.Anything, mock.Anything).Return(nil)

	entries := []*domain.WaitlistEntry{
		{ID: "w1", RatePlanID: "rp1", EventID: "e1", Email: "a@example.com"},
		{ID: "w2", RatePlanID: "rp1", EventID: "e1", Email: "b@example.com"},
	}
	m.waitlist.EXPECT().ClaimWaiting(mock.Anything, "rp1", 2, testNow).Return(entries, nil)

	var freed, issued atomic.Int32
	m.notifier.EXPECT().NotifyCapacityFreed(mock.Anything, mock.Anything, event).
		Run(func(context.Context, *domain.WaitlistEntry, *domain.Event) {
			time.Sleep(20 * time.Millisecond)
			freed.Add(1)
		}).
		Return()
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.notifier.EXPECT().NotifyRefundIssued(mock.Anything, mock.Anything, event, mock.Anything).
		Run(func(context.Context, *domain.User, *domain.Event, *domain.Refund) {
			time.Sleep(20 * time.Millisecond)
			issued.Add(1)
		}).
		Return()

	_, err := svc.ProcessRefund(context.Background(), domain.RefundInput{Actor: owner, OrderID: "o1"})
	require.NoError(t, err)

	svc.Wait()

	assert.Equal(t, int32(2), freed.Load())
	assert.Equal(t, int32(1), issued.Load())
}
