package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/clock"
	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
	"github.com/ghxstship/grasshopper26.00-sub002/internal/service/ports"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
)

type EventService struct {
	repo   ports.EventRepo
	clock  clock.Clock
	logger logger.Logger
}

func NewEventService(repo ports.EventRepo, clk clock.Clock, logger logger.Logger) *EventService {
	return &EventService{
		repo:   repo,
		clock:  clk,
		logger: logger,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.EventDetails, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	now := s.clock.Now()
	if !input.StartsAt.After(now) {
		return nil, fmt.Errorf("%w: starts_at must be in the future", domain.ErrValidation)
	}

	transfersAllowed := true
	if input.TransfersAllowed != nil {
		transfersAllowed = *input.TransfersAllowed
	}

	event := &domain.Event{
		ID:               uuid.New().String(),
		Title:            input.Title,
		Description:      input.Description,
		StartsAt:         input.StartsAt.UTC(),
		Status:           domain.EventStatusActive,
		TransfersAllowed: transfersAllowed,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	var policy *domain.RefundPolicy
	if input.Policy != nil {
		p := *input.Policy
		p.EventID = event.ID
		if err := validatePolicy(p); err != nil {
			return nil, err
		}
		policy = &p
	}

	if err := s.repo.Create(ctx, event, policy); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.Any("custom_policy", policy != nil),
	)

	details := &domain.EventDetails{Event: *event, Policy: domain.DefaultRefundPolicy(event.ID)}
	if policy != nil {
		details.Policy = *policy
	}
	return details, nil
}

func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	policy, err := s.repo.GetPolicy(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get refund policy: %w", err)
	}

	details := &domain.EventDetails{Event: *event, Policy: domain.DefaultRefundPolicy(id)}
	if policy != nil {
		details.Policy = *policy
	}
	return details, nil
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

// Cancel marks the event cancelled. Tickets stay as they are; refunds for
// them go through the batch refund.
func (s *EventService) Cancel(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.Status == domain.EventStatusCancelled {
		return nil, domain.ErrEventAlreadyCancelled
	}

	now := s.clock.Now()
	if err = s.repo.Cancel(ctx, id, now); err != nil {
		return nil, fmt.Errorf("cancel event: %w", err)
	}
	event.Status = domain.EventStatusCancelled
	event.UpdatedAt = now

	s.logger.Info("event cancelled", logger.String("event_id", id))
	return event, nil
}

func (s *EventService) SetRefundPolicy(ctx context.Context, policy domain.RefundPolicy) (*domain.RefundPolicy, error) {
	if err := validatePolicy(policy); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(ctx, policy.EventID); err != nil {
		return nil, err
	}

	if err := s.repo.UpsertPolicy(ctx, &policy); err != nil {
		return nil, fmt.Errorf("upsert refund policy: %w", err)
	}

	s.logger.Info("refund policy updated",
		logger.String("event_id", policy.EventID),
		logger.Any("refunds_allowed", policy.RefundsAllowed),
		logger.Int("cutoff_hours", policy.CutoffHours),
		logger.String("refund_percentage", policy.RefundPercentage.String()),
	)
	return &policy, nil
}

func validatePolicy(p domain.RefundPolicy) error {
	if p.CutoffHours < 0 {
		return fmt.Errorf("%w: cutoff_hours must not be negative", domain.ErrValidation)
	}
	if p.RefundPercentage.IsNegative() || p.RefundPercentage.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("%w: refund_percentage must be between 0 and 100", domain.ErrValidation)
	}
	return nil
}
