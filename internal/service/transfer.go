package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/clock"
	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
	"github.com/ghxstship/grasshopper26.00-sub002/internal/eligibility"
	"github.com/ghxstship/grasshopper26.00-sub002/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

const defaultTransferTTL = 72 * time.Hour

type TransferService struct {
	ticketRepo   ports.TicketRepo
	transferRepo ports.TransferRepo
	eventRepo    ports.EventRepo
	userRepo     ports.UserRepo
	auditRepo    ports.AuditRepo
	notifier     ports.Notifier
	clock        clock.Clock
	ttl          time.Duration
	logger       logger.Logger

	jobs background
}

func NewTransferService(
	ticketRepo ports.TicketRepo,
	transferRepo ports.TransferRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	auditRepo ports.AuditRepo,
	notifier ports.Notifier,
	clk clock.Clock,
	ttl time.Duration,
	logger logger.Logger,
) *TransferService {
	if ttl <= 0 {
		ttl = defaultTransferTTL
	}
	return &TransferService{
		ticketRepo:   ticketRepo,
		transferRepo: transferRepo,
		eventRepo:    eventRepo,
		userRepo:     userRepo,
		auditRepo:    auditRepo,
		notifier:     notifier,
		clock:        clk,
		ttl:          ttl,
		logger:       logger,
	}
}

// InitiateTransfer offers the actor's ticket to recipientEmail. An ineligible
// ticket is reported through the returned Decision, not as an error.
func (s *TransferService) InitiateTransfer(
	ctx context.Context,
	actor domain.Actor,
	ticketID, recipientEmail string,
) (*domain.TransferInitiation, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	event, err := s.eventRepo.GetByID(ctx, ticket.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	pending, err := s.transferRepo.HasPending(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("check pending transfer: %w", err)
	}

	now := s.clock.Now()
	decision := eligibility.Transfer(eligibility.TransferFacts{
		Ticket:             ticket,
		Event:              event,
		Actor:              actor,
		RecipientEmail:     recipientEmail,
		HasPendingTransfer: pending,
		Now:                now,
	})
	if !decision.Eligible {
		s.logger.Debug("transfer denied",
			logger.String("ticket_id", ticketID),
			logger.String("user_id", actor.UserID),
			logger.String("reason", decision.Reason),
		)
		return &domain.TransferInitiation{Decision: decision}, nil
	}

	code := newTransferCode()
	tr := &domain.TransferRequest{
		ID:         uuid.New().String(),
		TicketID:   ticketID,
		FromUserID: actor.UserID,
		ToEmail:    normalizeEmail(recipientEmail),
		CodeHash:   hashCode(code),
		Status:     domain.TransferStatusPending,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.ttl),
	}

	if err = s.transferRepo.Create(ctx, tr); err != nil {
		// a concurrent initiate won the pending slot
		if errors.Is(err, domain.ErrTransferPending) {
			return &domain.TransferInitiation{
				Decision: domain.Deny(domain.DenialTransferPending, "transfer already pending"),
			}, nil
		}
		return nil, fmt.Errorf("create transfer: %w", err)
	}

	s.logger.Info("transfer initiated",
		logger.String("transfer_id", tr.ID),
		logger.String("ticket_id", ticketID),
		logger.String("from_user_id", actor.UserID),
	)

	s.record(ctx, actor.UserID, domain.AuditTransferInitiated, tr.ID, map[string]string{
		"ticket_id": ticketID,
		"to_email":  tr.ToEmail,
	})

	offer := domain.TransferOffer{
		RecipientEmail: tr.ToEmail,
		SenderName:     actor.Email,
		EventTitle:     event.Title,
		EventStartsAt:  event.StartsAt,
		Code:           code,
		ExpiresAt:      tr.ExpiresAt,
	}
	notifyCtx := context.WithoutCancel(ctx)
	s.jobs.run(func() { s.notifier.NotifyTransferOffer(notifyCtx, offer) })

	return &domain.TransferInitiation{
		Decision: domain.Allow(),
		Transfer: tr,
		Code:     code,
	}, nil
}

// AcceptTransfer moves the ticket to the actor. Expiry and the recipient
// address are checked again here regardless of what initiate saw.
func (s *TransferService) AcceptTransfer(ctx context.Context, actor domain.Actor, code string) (*domain.TransferRequest, error) {
	code = strings.TrimSpace(code)
	if !strings.HasPrefix(strings.ToUpper(code), domain.TransferCodePrefix) {
		return nil, domain.ErrTransferNotFound
	}

	tr, err := s.transferRepo.GetByCodeHash(ctx, hashCode(code))
	if err != nil {
		return nil, fmt.Errorf("get transfer: %w", err)
	}

	if tr.Status != domain.TransferStatusPending {
		return nil, fmt.Errorf("%w: transfer is %s", domain.ErrTransferNotPending, tr.Status)
	}

	now := s.clock.Now()
	if tr.ExpiredAt(now) {
		if err = s.transferRepo.MarkExpired(ctx, tr.ID, now); err != nil {
			return nil, fmt.Errorf("expire transfer: %w", err)
		}
		s.logger.Info("transfer expired on accept",
			logger.String("transfer_id", tr.ID),
			logger.String("ticket_id", tr.TicketID),
		)
		return nil, domain.ErrTransferExpired
	}

	if !strings.EqualFold(strings.TrimSpace(actor.Email), tr.ToEmail) {
		return nil, domain.ErrNotIntendedRecipient
	}

	ticket, err := s.ticketRepo.GetByID(ctx, tr.TicketID)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	if ticket.OwnerID != tr.FromUserID || ticket.Status != domain.TicketStatusActive || ticket.Consumed() {
		return nil, domain.ErrTicketNotTransferable
	}

	err = s.transferRepo.Complete(ctx, domain.CompleteTransferInput{
		TransferID: tr.ID,
		TicketID:   tr.TicketID,
		FromUserID: tr.FromUserID,
		ToUserID:   actor.UserID,
		At:         now,
		Audit: s.auditEntry(actor.UserID, domain.AuditTransferAccepted, tr.ID, map[string]string{
			"ticket_id":    tr.TicketID,
			"from_user_id": tr.FromUserID,
		}),
	})
	if errors.Is(err, domain.ErrTransferNotPending) {
		return nil, s.notPendingError(ctx, tr.ID, now)
	}
	if err != nil {
		return nil, fmt.Errorf("complete transfer: %w", err)
	}

	tr.Status = domain.TransferStatusCompleted
	tr.CompletedAt = &now
	toUserID := actor.UserID
	tr.ToUserID = &toUserID

	s.logger.Info("transfer accepted",
		logger.String("transfer_id", tr.ID),
		logger.String("ticket_id", tr.TicketID),
		logger.String("from_user_id", tr.FromUserID),
		logger.String("to_user_id", actor.UserID),
	)

	notifyCtx := context.WithoutCancel(ctx)
	s.jobs.run(func() { s.notifyAccepted(notifyCtx, tr, ticket.EventID) })

	return tr, nil
}

// notPendingError explains a completion that matched no pending row. A
// request found past its expiry is closed as expired on the way out.
func (s *TransferService) notPendingError(ctx context.Context, transferID string, now time.Time) error {
	current, err := s.transferRepo.GetByID(ctx, transferID)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrTransferNotPending, err)
	}

	switch {
	case current.Status == domain.TransferStatusExpired:
		return domain.ErrTransferExpired
	case current.Status == domain.TransferStatusPending && current.ExpiredAt(now):
		if err = s.transferRepo.MarkExpired(ctx, transferID, now); err != nil && !errors.Is(err, domain.ErrTransferNotPending) {
			s.logger.Error("failed to expire transfer",
				logger.String("transfer_id", transferID),
				logger.String("error", err.Error()),
			)
		}
		return domain.ErrTransferExpired
	default:
		return fmt.Errorf("%w: transfer is %s", domain.ErrTransferNotPending, current.Status)
	}
}

// Wait blocks until every notification started so far has been sent.
func (s *TransferService) Wait() {
	s.jobs.wait()
}

// CancelTransfer withdraws a pending offer. Only the originator or an admin
// may cancel.
func (s *TransferService) CancelTransfer(ctx context.Context, actor domain.Actor, transferID string) (*domain.TransferRequest, error) {
	tr, err := s.transferRepo.GetByID(ctx, transferID)
	if err != nil {
		return nil, fmt.Errorf("get transfer: %w", err)
	}

	if tr.FromUserID != actor.UserID && !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	if tr.Status != domain.TransferStatusPending {
		return nil, fmt.Errorf("%w: transfer is %s", domain.ErrTransferNotPending, tr.Status)
	}

	now := s.clock.Now()
	if err = s.transferRepo.Cancel(ctx, transferID, now); err != nil {
		return nil, fmt.Errorf("cancel transfer: %w", err)
	}

	tr.Status = domain.TransferStatusCancelled
	tr.CancelledAt = &now

	s.logger.Info("transfer cancelled",
		logger.String("transfer_id", tr.ID),
		logger.String("ticket_id", tr.TicketID),
		logger.String("user_id", actor.UserID),
	)

	s.record(ctx, actor.UserID, domain.AuditTransferCancelled, tr.ID, map[string]string{
		"ticket_id": tr.TicketID,
	})

	return tr, nil
}

// ExpireTransfers flips every pending request past its expiry to expired.
func (s *TransferService) ExpireTransfers(ctx context.Context) ([]*domain.TransferRequest, error) {
	expired, err := s.transferRepo.ExpireDue(ctx, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("expire transfers: %w", err)
	}

	if len(expired) > 0 {
		s.logger.Info("expired transfers closed",
			logger.Int("count", len(expired)),
		)
	}

	return expired, nil
}

func (s *TransferService) ListTransfers(ctx context.Context, actor domain.Actor) ([]*domain.TransferRequest, error) {
	return s.transferRepo.ListByUser(ctx, actor.UserID, normalizeEmail(actor.Email))
}

func (s *TransferService) notifyAccepted(ctx context.Context, tr *domain.TransferRequest, eventID string) {
	sender, err := s.userRepo.GetByID(ctx, tr.FromUserID)
	if err != nil {
		s.logger.Error("failed to get sender for transfer notification",
			logger.String("user_id", tr.FromUserID),
			logger.String("error", err.Error()),
		)
		return
	}

	recipient, err := s.userRepo.GetByID(ctx, *tr.ToUserID)
	if err != nil {
		s.logger.Error("failed to get recipient for transfer notification",
			logger.String("user_id", *tr.ToUserID),
			logger.String("error", err.Error()),
		)
		return
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		s.logger.Error("failed to get event for transfer notification",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.notifier.NotifyTransferAccepted(ctx, sender, recipient, event)
}

func (s *TransferService) auditEntry(actorID, action, transferID string, details map[string]string) *domain.AuditEntry {
	return &domain.AuditEntry{
		ID:         uuid.New().String(),
		ActorID:    actorID,
		Action:     action,
		EntityType: "transfer_request",
		EntityID:   transferID,
		Details:    details,
		CreatedAt:  s.clock.Now(),
	}
}

// record writes a standalone audit entry. The transition it describes has
// already happened, so a failure is only logged.
func (s *TransferService) record(ctx context.Context, actorID, action, transferID string, details map[string]string) {
	entry := s.auditEntry(actorID, action, transferID, details)
	if err := s.auditRepo.Record(ctx, entry); err != nil {
		s.logger.Error("failed to record audit entry",
			logger.String("action", action),
			logger.String("entity_id", transferID),
			logger.String("error", err.Error()),
		)
	}
}
