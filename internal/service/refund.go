package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/clock"
	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
	"github.com/ghxstship/grasshopper26.00-sub002/internal/eligibility"
	"github.com/ghxstship/grasshopper26.00-sub002/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type RefundService struct {
	orderRepo    ports.OrderRepo
	ticketRepo   ports.TicketRepo
	eventRepo    ports.EventRepo
	userRepo     ports.UserRepo
	waitlistRepo ports.WaitlistRepo
	payments     ports.PaymentGateway
	notifier     ports.Notifier
	clock        clock.Clock
	logger       logger.Logger

	jobs background
}

func NewRefundService(
	orderRepo ports.OrderRepo,
	ticketRepo ports.TicketRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	waitlistRepo ports.WaitlistRepo,
	payments ports.PaymentGateway,
	notifier ports.Notifier,
	clk clock.Clock,
	logger logger.Logger,
) *RefundService {
	return &RefundService{
		orderRepo:    orderRepo,
		ticketRepo:   ticketRepo,
		eventRepo:    eventRepo,
		userRepo:     userRepo,
		waitlistRepo: waitlistRepo,
		payments:     payments,
		notifier:     notifier,
		clock:        clk,
		logger:       logger,
	}
}

// CheckEligibility reports whether the order, or the given subset of its
// tickets, can be refunded now. Missing records and foreign orders are errors.
func (s *RefundService) CheckEligibility(
	ctx context.Context,
	actor domain.Actor,
	orderID string,
	ticketIDs []string,
) (*domain.RefundDecision, error) {
	facts, err := s.loadFacts(ctx, actor, orderID, ticketIDs)
	if err != nil {
		return nil, err
	}

	decision := eligibility.Refund(*facts)
	return &decision, nil
}

// ProcessRefund reverses the payment first and only then writes local state.
// A provider failure leaves the order untouched.
func (s *RefundService) ProcessRefund(ctx context.Context, in domain.RefundInput) (*domain.Refund, error) {
	facts, err := s.loadFacts(ctx, in.Actor, in.OrderID, in.TicketIDs)
	if err != nil {
		return nil, err
	}

	decision := eligibility.Refund(*facts)
	if !decision.Eligible {
		return nil, domain.NotEligible(decision.Decision)
	}

	order := facts.Order
	refunded := refundedTickets(facts.Tickets, in.TicketIDs, decision.Partial)
	ticketIDs := make([]string, 0, len(refunded))
	counts := make(map[string]int)
	for _, t := range refunded {
		ticketIDs = append(ticketIDs, t.ID)
		counts[t.RatePlanID]++
	}

	now := s.clock.Now()
	refund := &domain.Refund{
		ID:        uuid.New().String(),
		OrderID:   order.ID,
		Amount:    decision.RefundableAmount,
		Currency:  order.Currency,
		Status:    domain.RefundStatusSucceeded,
		Reason:    in.Reason,
		TicketIDs: ticketIDs,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if refund.Amount > 0 {
		pr, err := s.payments.Refund(ctx, domain.ProviderRefundRequest{
			ChargeID:       *order.PaymentChargeID,
			Amount:         refund.Amount,
			Currency:       order.Currency,
			Reason:         in.Reason,
			IdempotencyKey: refundIdempotencyKey(order.ID, ticketIDs),
			OrderID:        order.ID,
		})
		if err != nil {
			s.logger.Error("provider refund failed",
				logger.String("order_id", order.ID),
				logger.Int64("amount", refund.Amount),
				logger.String("error", err.Error()),
			)
			return nil, fmt.Errorf("provider refund: %w", err)
		}
		refund.ProviderRefundID = pr.ID
		refund.Status = pr.Status
	}

	orderStatus := domain.OrderStatusRefunded
	if decision.Partial {
		orderStatus = domain.OrderStatusPartiallyRefunded
	}

	err = s.orderRepo.ApplyRefund(ctx, domain.ApplyRefundInput{
		Refund:         refund,
		OrderStatus:    orderStatus,
		TicketIDs:      ticketIDs,
		RatePlanCounts: counts,
		Audit: &domain.AuditEntry{
			ID:         uuid.New().String(),
			ActorID:    in.Actor.UserID,
			Action:     domain.AuditRefundProcessed,
			EntityType: "order",
			EntityID:   order.ID,
			Details: map[string]string{
				"refund_id":          refund.ID,
				"provider_refund_id": refund.ProviderRefundID,
				"amount":             strconv.FormatInt(refund.Amount, 10),
				"currency":           refund.Currency,
				"tickets":            strconv.Itoa(len(ticketIDs)),
			},
			CreatedAt: now,
		},
		At: now,
	})
	if errors.Is(err, domain.ErrRefundDuplicate) {
		s.logger.Warn("refund already recorded by a concurrent request",
			logger.String("order_id", order.ID),
			logger.String("provider_refund_id", refund.ProviderRefundID),
		)
		return nil, fmt.Errorf("apply refund: %w", err)
	}
	if err != nil {
		// money has moved but the order still reads as paid; operators
		// reconcile from this line
		s.logger.Error("refund issued but local update failed",
			logger.String("order_id", order.ID),
			logger.String("refund_id", refund.ID),
			logger.String("provider_refund_id", refund.ProviderRefundID),
			logger.Int64("amount", refund.Amount),
			logger.String("error", err.Error()),
		)
		return nil, fmt.Errorf("apply refund: %w", err)
	}

	s.logger.Info("refund processed",
		logger.String("order_id", order.ID),
		logger.String("refund_id", refund.ID),
		logger.Int64("amount", refund.Amount),
		logger.Int("tickets", len(ticketIDs)),
	)

	s.releaseCapacity(ctx, facts.Event, counts, now)

	notifyCtx := context.WithoutCancel(ctx)
	s.jobs.run(func() { s.notifyPurchaser(notifyCtx, order.UserID, facts.Event, refund) })

	return refund, nil
}

// BatchRefund processes each order independently; one failure never stops
// the rest. Orders not yet started when ctx ends are reported as failed.
func (s *RefundService) BatchRefund(
	ctx context.Context,
	actor domain.Actor,
	orderIDs []string,
	reason string,
) (*domain.BatchRefundResult, error) {
	res := &domain.BatchRefundResult{
		Requested: len(orderIDs),
		Failed:    []domain.BatchRefundFailure{},
	}

	for _, id := range orderIDs {
		if err := ctx.Err(); err != nil {
			res.Failed = append(res.Failed, domain.BatchRefundFailure{OrderID: id, Error: err.Error()})
			continue
		}

		_, err := s.ProcessRefund(ctx, domain.RefundInput{
			Actor:   actor,
			OrderID: id,
			Reason:  reason,
		})
		if err != nil {
			res.Failed = append(res.Failed, domain.BatchRefundFailure{OrderID: id, Error: err.Error()})
			continue
		}
		res.Succeeded++
	}

	s.logger.Info("batch refund finished",
		logger.String("user_id", actor.UserID),
		logger.Int("requested", res.Requested),
		logger.Int("succeeded", res.Succeeded),
		logger.Int("failed", len(res.Failed)),
	)

	return res, nil
}

// HandleProviderEvent applies a verified payment-provider webhook to the
// matching refund row.
func (s *RefundService) HandleProviderEvent(ctx context.Context, payload []byte, signature string) error {
	ev, err := s.payments.ParseWebhook(payload, signature)
	if err != nil {
		return fmt.Errorf("parse webhook: %w", err)
	}

	if ev.ProviderRefundID == "" {
		s.logger.Debug("webhook ignored", logger.String("type", ev.Type))
		return nil
	}

	err = s.orderRepo.UpdateRefundStatus(ctx, ev.ProviderRefundID, ev.Status, s.clock.Now())
	if errors.Is(err, domain.ErrRefundNotFound) {
		s.logger.Warn("webhook for unknown refund",
			logger.String("type", ev.Type),
			logger.String("provider_refund_id", ev.ProviderRefundID),
		)
		return nil
	}
	if err != nil {
		return fmt.Errorf("update refund status: %w", err)
	}

	s.logger.Info("refund status updated",
		logger.String("provider_refund_id", ev.ProviderRefundID),
		logger.String("status", string(ev.Status)),
	)
	return nil
}

func (s *RefundService) loadFacts(
	ctx context.Context,
	actor domain.Actor,
	orderID string,
	ticketIDs []string,
) (*eligibility.RefundFacts, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if order.UserID != actor.UserID && !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	tickets, err := s.ticketRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}

	event, err := s.eventRepo.GetByID(ctx, order.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	policy, err := s.eventRepo.GetPolicy(ctx, order.EventID)
	if err != nil {
		return nil, fmt.Errorf("get refund policy: %w", err)
	}
	if policy == nil {
		def := domain.DefaultRefundPolicy(order.EventID)
		policy = &def
	}

	return &eligibility.RefundFacts{
		Order:     order,
		Tickets:   tickets,
		Event:     event,
		Policy:    *policy,
		TicketIDs: ticketIDs,
		Now:       s.clock.Now(),
	}, nil
}

// releaseCapacity hands freed seats to the waiting list of each rate plan.
// Failures here are logged; the refund itself already succeeded.
func (s *RefundService) releaseCapacity(ctx context.Context, event *domain.Event, counts map[string]int, now time.Time) {
	var claimed []*domain.WaitlistEntry
	for ratePlanID, n := range counts {
		entries, err := s.waitlistRepo.ClaimWaiting(ctx, ratePlanID, n, now)
		if err != nil {
			s.logger.Error("failed to claim waiting list",
				logger.String("rate_plan_id", ratePlanID),
				logger.String("error", err.Error()),
			)
			continue
		}
		claimed = append(claimed, entries...)
	}

	if len(claimed) == 0 {
		return
	}

	notifyCtx := context.WithoutCancel(ctx)
	s.jobs.run(func() {
		for _, e := range claimed {
			s.notifier.NotifyCapacityFreed(notifyCtx, e, event)
		}
	})
}

// Wait blocks until every refund and waiting-list notification started so
// far has been sent.
func (s *RefundService) Wait() {
	s.jobs.wait()
}

func (s *RefundService) notifyPurchaser(ctx context.Context, userID string, event *domain.Event, refund *domain.Refund) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get purchaser for refund notification",
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.notifier.NotifyRefundIssued(ctx, user, event, refund)
}

// refundedTickets returns the tickets a refund covers: the requested subset
// for a partial refund, otherwise every active ticket of the order.
func refundedTickets(all []*domain.Ticket, requested []string, partial bool) []*domain.Ticket {
	if !partial {
		return eligibility.ActiveTickets(all)
	}

	want := make(map[string]struct{}, len(requested))
	for _, id := range requested {
		want[id] = struct{}{}
	}
	out := make([]*domain.Ticket, 0, len(want))
	for _, t := range all {
		if _, ok := want[t.ID]; ok {
			out = append(out, t)
		}
	}
	return out
}
