package service

import (
	"context"
	"errors"
	"regexp"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/clock"
	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
	"github.com/ghxstship/grasshopper26.00-sub002/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type transferMocks struct {
	tickets   *mocks.MockTicketRepo
	transfers *mocks.MockTransferRepo
	events    *mocks.MockEventRepo
	users     *mocks.MockUserRepo
	audit     *mocks.MockAuditRepo
	notifier  *mocks.MockNotifier
}

func newTransferService(t *testing.T) (*TransferService, transferMocks) {
	m := transferMocks{
		tickets:   mocks.NewMockTicketRepo(t),
		transfers: mocks.NewMockTransferRepo(t),
		events:    mocks.NewMockEventRepo(t),
		users:     mocks.NewMockUserRepo(t),
		audit:     mocks.NewMockAuditRepo(t),
		notifier:  mocks.NewMockNotifier(t),
	}
	svc := NewTransferService(
		m.tickets, m.transfers, m.events, m.users, m.audit, m.notifier,
		clock.NewFixed(testNow), 72*time.Hour, newTestLogger(t),
	)
	return svc, m
}

func activeTicket() *domain.Ticket {
	return &domain.Ticket{
		ID:         "t1",
		OrderID:    "o1",
		EventID:    "e1",
		RatePlanID: "rp1",
		OwnerID:    "u1",
		Status:     domain.TicketStatusActive,
	}
}

func upcomingEvent(in time.Duration) *domain.Event {
	return &domain.Event{
		ID:               "e1",
		Title:            "Concert",
		StartsAt:         testNow.Add(in),
		Status:           domain.EventStatusActive,
		TransfersAllowed: true,
	}
}

var owner = domain.Actor{UserID: "u1", Email: "owner@example.com", Role: domain.RoleCustomer}

func TestTransferService_Initiate_Success(t *testing.T) {
	svc, m := newTransferService(t)
	event := upcomingEvent(48 * time.Hour)

	m.tickets.EXPECT().GetByID(mock.Anything, "t1").Return(activeTicket(), nil)
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.transfers.EXPECT().HasPending(mock.Anything, "t1").Return(false, nil)

	var created *domain.TransferRequest
	m.transfers.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, tr *domain.TransferRequest) { created = tr }).
		Return(nil)
	m.audit.EXPECT().Record(mock.Anything, mock.MatchedBy(func(e *domain.AuditEntry) bool {
		return e.Action == domain.AuditTransferInitiated && e.ActorID == "u1"
	})).Return(nil)

	done := make(chan struct{})
	var offer domain.TransferOffer
	m.notifier.EXPECT().NotifyTransferOffer(mock.Anything, mock.Anything).
		Run(func(_ context.Context, o domain.TransferOffer) {
			offer = o
			close(done)
		}).Return()

	res, err := svc.InitiateTransfer(context.Background(), owner, "t1", "X@Y.com")

	require.NoError(t, err)
	require.True(t, res.Decision.Eligible)
	assert.Regexp(t, regexp.MustCompile(`^XFER-[0-9A-F]{32}$`), res.Code)

	require.NotNil(t, created)
	assert.Equal(t, domain.TransferStatusPending, created.Status)
	assert.Equal(t, "x@y.com", created.ToEmail)
	assert.Equal(t, "u1", created.FromUserID)
	assert.Equal(t, testNow.Add(72*time.Hour), created.ExpiresAt)
	assert.Equal(t, hashCode(res.Code), created.CodeHash)
	assert.NotContains(t, created.CodeHash, "XFER-")

	waitFor(t, done)
	assert.Equal(t, res.Code, offer.Code)
	assert.Equal(t, "x@y.com", offer.RecipientEmail)
	assert.Equal(t, "Concert", offer.EventTitle)
}

func TestTransferService_Wait_DrainsOfferNotification(t *testing.T) {
	svc, m := newTransferService(t)

	m.tickets.EXPECT().GetByID(mock.Anything, "t1").Return(activeTicket(), nil)
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(upcomingEvent(48*time.Hour), nil)
	m.transfers.EXPECT().HasPending(mock.Anything, "t1").Return(false, nil)
	m.transfers.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.audit.EXPECT().Record(mock.Anything, mock.Anything).Return(nil)

	var sent atomic.Bool
	m.notifier.EXPECT().NotifyTransferOffer(mock.Anything, mock.Anything).
		Run(func(context.Context, domain.TransferOffer) {
			time.Sleep(20 * time.Millisecond)
			sent.Store(true)
		}).Return()

	_, err := svc.InitiateTransfer(context.Background(), owner, "t1", "x@y.com")
	require.NoError(t, err)

	svc.Wait()

	assert.True(t, sent.Load())
}

func TestTransferService_Initiate_InsideCutoff(t *testing.T) {
	svc, m := newTransferService(t)

	m.tickets.EXPECT().GetByID(mock.Anything, "t1").Return(activeTicket(), nil)
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(upcomingEvent(12*time.Hour), nil)
	m.transfers.EXPECT().HasPending(mock.Anything, "t1").Return(false, nil)

	res, err := svc.InitiateTransfer(context.Background(), owner, "t1", "x@y.com")

	require.NoError(t, err)
	assert.False(t, res.Decision.Eligible)
	assert.Contains(t, res.Decision.Reason, "24 hours")
	assert.Empty(t, res.Code)
	assert.Nil(t, res.Transfer)
}

func TestTransferService_Initiate_AlreadyPending(t *testing.T) {
	svc, m := newTransferService(t)

	m.tickets.EXPECT().GetByID(mock.Anything, "t1").Return(activeTicket(), nil)
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(upcomingEvent(48*time.Hour), nil)
	m.transfers.EXPECT().HasPending(mock.Anything, "t1").Return(true, nil)

	res, err := svc.InitiateTransfer(context.Background(), owner, "t1", "x@y.com")

	require.NoError(t, err)
	assert.False(t, res.Decision.Eligible)
	assert.Equal(t, domain.DenialTransferPending, res.Decision.Denial)
	m.transfers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTransferService_Initiate_LosesRaceForPendingSlot(t *testing.T) {
	svc, m := newTransferService(t)

	m.tickets.EXPECT().GetByID(mock.Anything, "t1").Return(activeTicket(), nil)
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(upcomingEvent(48*time.Hour), nil)
	m.transfers.EXPECT().HasPending(mock.Anything, "t1").Return(false, nil)
	m.transfers.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrTransferPending)

	res, err := svc.InitiateTransfer(context.Background(), owner, "t1", "x@y.com")

	require.NoError(t, err)
	assert.False(t, res.Decision.Eligible)
	assert.Equal(t, "transfer already pending", res.Decision.Reason)
}

func TestTransferService_Initiate_TicketNotFound(t *testing.T) {
	svc, m := newTransferService(t)

	m.tickets.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrTicketNotFound)

	_, err := svc.InitiateTransfer(context.Background(), owner, "missing", "x@y.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTicketNotFound)
}

func pendingTransfer(code string) *domain.TransferRequest {
	return &domain.TransferRequest{
		ID:         "tr1",
		TicketID:   "t1",
		FromUserID: "u1",
		ToEmail:    "x@y.com",
		CodeHash:   hashCode(code),
		Status:     domain.TransferStatusPending,
		CreatedAt:  testNow.Add(-time.Hour),
		ExpiresAt:  testNow.Add(time.Hour),
	}
}

const testCode = "XFER-0123456789ABCDEF0123456789ABCDEF"

var recipient = domain.Actor{UserID: "u2", Email: "X@Y.COM", Role: domain.RoleCustomer}

func TestTransferService_Accept_Success(t *testing.T) {
	svc, m := newTransferService(t)
	tr := pendingTransfer(testCode)
	event := upcomingEvent(48 * time.Hour)
	sender := &domain.User{ID: "u1", Email: "owner@example.com"}
	receiver := &domain.User{ID: "u2", Email: "x@y.com"}

	m.transfers.EXPECT().GetByCodeHash(mock.Anything, hashCode(testCode)).Return(tr, nil)
	m.tickets.EXPECT().GetByID(mock.Anything, "t1").Return(activeTicket(), nil)
	m.transfers.EXPECT().Complete(mock.Anything, mock.MatchedBy(func(in domain.CompleteTransferInput) bool {
		return in.TransferID == "tr1" &&
			in.TicketID == "t1" &&
			in.FromUserID == "u1" &&
			in.ToUserID == "u2" &&
			in.At.Equal(testNow) &&
			in.Audit != nil && in.Audit.Action == domain.AuditTransferAccepted
	})).Return(nil)

	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(sender, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u2").Return(receiver, nil)
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	done := make(chan struct{})
	m.notifier.EXPECT().NotifyTransferAccepted(mock.Anything, sender, receiver, event).
		Run(func(context.Context, *domain.User, *domain.User, *domain.Event) { close(done) }).
		Return()

	got, err := svc.AcceptTransfer(context.Background(), recipient, " xfer-0123456789abcdef0123456789abcdef ")

	require.NoError(t, err)
	assert.Equal(t, domain.TransferStatusCompleted, got.Status)
	require.NotNil(t, got.ToUserID)
	assert.Equal(t, "u2", *got.ToUserID)
	require.NotNil(t, got.CompletedAt)
	assert.Equal(t, testNow, *got.CompletedAt)

	waitFor(t, done)
}

func TestTransferService_Accept_Expired(t *testing.T) {
	svc, m := newTransferService(t)
	tr := pendingTransfer(testCode)
	tr.ExpiresAt = testNow.Add(-time.Minute)

	m.transfers.EXPECT().GetByCodeHash(mock.Anything, hashCode(testCode)).Return(tr, nil)
	m.transfers.EXPECT().MarkExpired(mock.Anything, "tr1", testNow).Return(nil)

	_, err := svc.AcceptTransfer(context.Background(), recipient, testCode)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransferExpired)
	m.transfers.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestTransferService_Accept_NotIntendedRecipient(t *testing.T) {
	svc, m := newTransferService(t)

	m.transfers.EXPECT().GetByCodeHash(mock.Anything, hashCode(testCode)).Return(pendingTransfer(testCode), nil)

	stranger := domain.Actor{UserID: "u3", Email: "someone@else.com"}
	_, err := svc.AcceptTransfer(context.Background(), stranger, testCode)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotIntendedRecipient)
	m.transfers.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
	m.tickets.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestTransferService_Accept_NotPending(t *testing.T) {
	svc, m := newTransferService(t)
	tr := pendingTransfer(testCode)
	tr.Status = domain.TransferStatusCancelled

	m.transfers.EXPECT().GetByCodeHash(mock.Anything, hashCode(testCode)).Return(tr, nil)

	_, err := svc.AcceptTransfer(context.Background(), recipient, testCode)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransferNotPending)
}

func TestTransferService_Accept_MalformedCode(t *testing.T) {
	svc, _ := newTransferService(t)

	_, err := svc.AcceptTransfer(context.Background(), recipient, "not-a-code")

	assert.ErrorIs(t, err, domain.ErrTransferNotFound)
}

func TestTransferService_Accept_TicketScannedMeanwhile(t *testing.T) {
	svc, m := newTransferService(t)
	scanned := testNow.Add(-time.Minute)
	ticket := activeTicket()
	ticket.ScannedAt = &scanned

	m.transfers.EXPECT().GetByCodeHash(mock.Anything, hashCode(testCode)).Return(pendingTransfer(testCode), nil)
	m.tickets.EXPECT().GetByID(mock.Anything, "t1").Return(ticket, nil)

	_, err := svc.AcceptTransfer(context.Background(), recipient, testCode)

	assert.ErrorIs(t, err, domain.ErrTicketNotTransferable)
}

func TestTransferService_Accept_CompleteFails(t *testing.T) {
	svc, m := newTransferService(t)

	m.transfers.EXPECT().GetByCodeHash(mock.Anything, hashCode(testCode)).Return(pendingTransfer(testCode), nil)
	m.tickets.EXPECT().GetByID(mock.Anything, "t1").Return(activeTicket(), nil)
	m.transfers.EXPECT().Complete(mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	_, err := svc.AcceptTransfer(context.Background(), recipient, testCode)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "complete transfer")
	m.transfers.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestTransferService_Accept_CompletionMatchesNoPendingRow(t *testing.T) {
	tests := []struct {
		name        string
		current     func() *domain.TransferRequest
		markExpired bool
		wantErr     error
	}{
		{
			name: "expired between read and completion",
			current: func() *domain.TransferRequest {
				tr := pendingTransfer(testCode)
				tr.ExpiresAt = testNow.Add(-time.Second)
				return tr
			},
			markExpired: true,
			wantErr:     domain.ErrTransferExpired,
		},
		{
			name: "already closed as expired by the sweeper",
			current: func() *domain.TransferRequest {
				tr := pendingTransfer(testCode)
				tr.Status = domain.TransferStatusExpired
				return tr
			},
			wantErr: domain.ErrTransferExpired,
		},
		{
			name: "cancelled by the originator meanwhile",
			current: func() *domain.TransferRequest {
				tr := pendingTransfer(testCode)
				tr.Status = domain.TransferStatusCancelled
				return tr
			},
			wantErr: domain.ErrTransferNotPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTransferService(t)

			m.transfers.EXPECT().GetByCodeHash(mock.Anything, hashCode(testCode)).Return(pendingTransfer(testCode), nil)
			m.tickets.EXPECT().GetByID(mock.Anything, "t1").Return(activeTicket(), nil)
			m.transfers.EXPECT().Complete(mock.Anything, mock.Anything).Return(domain.ErrTransferNotPending)
			m.transfers.EXPECT().GetByID(mock.Anything, "tr1").Return(tt.current(), nil)
			if tt.markExpired {
				m.transfers.EXPECT().MarkExpired(mock.Anything, "tr1", testNow).Return(nil)
			}

			_, err := svc.AcceptTransfer(context.Background(), recipient, testCode)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if !tt.markExpired {
				m.transfers.AssertNotCalled(t, "MarkExpired", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestTransferService_Cancel_ByOriginator(t *testing.T) {
	svc, m := newTransferService(t)

	m.transfers.EXPECT().GetByID(mock.Anything, "tr1").Return(pendingTransfer(testCode), nil)
	m.transfers.EXPECT().Cancel(mock.Anything, "tr1", testNow).Return(nil)
	m.audit.EXPECT().Record(mock.Anything, mock.Anything).Return(errors.New("audit down"))

	got, err := svc.CancelTransfer(context.Background(), owner, "tr1")

	require.NoError(t, err)
	assert.Equal(t, domain.TransferStatusCancelled, got.Status)
	require.NotNil(t, got.CancelledAt)
}

func TestTransferService_Cancel_ByStranger(t *testing.T) {
	svc, m := newTransferService(t)

	m.transfers.EXPECT().GetByID(mock.Anything, "tr1").Return(pendingTransfer(testCode), nil)

	_, err := svc.CancelTransfer(context.Background(), recipient, "tr1")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTransferService_Cancel_AlreadyCompleted(t *testing.T) {
	svc, m := newTransferService(t)
	tr := pendingTransfer(testCode)
	tr.Status = domain.TransferStatusCompleted

	m.transfers.EXPECT().GetByID(mock.Anything, "tr1").Return(tr, nil)

	_, err := svc.CancelTransfer(context.Background(), owner, "tr1")

	assert.ErrorIs(t, err, domain.ErrTransferNotPending)
}

func TestTransferService_ExpireTransfers(t *testing.T) {
	svc, m := newTransferService(t)

	expired := []*domain.TransferRequest{
		{ID: "tr1", TicketID: "t1", Status: domain.TransferStatusExpired},
		{ID: "tr2", TicketID: "t2", Status: domain.TransferStatusExpired},
	}
	m.transfers.EXPECT().ExpireDue(mock.Anything, testNow).Return(expired, nil)

	got, err := svc.ExpireTransfers(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestTransferService_ExpireTransfers_RepoError(t *testing.T) {
	svc, m := newTransferService(t)

	m.transfers.EXPECT().ExpireDue(mock.Anything, testNow).Return(nil, errors.New("db error"))

	_, err := svc.ExpireTransfers(context.Background())

	require.Error(t, err)
}

func TestTransferService_ListTransfers_NormalizesEmail(t *testing.T) {
	svc, m := newTransferService(t)

	m.transfers.EXPECT().ListByUser(mock.Anything, "u2", "x@y.com").Return([]*domain.TransferRequest{{ID: "tr1"}}, nil)

	got, err := svc.ListTransfers(context.Background(), recipient)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}
