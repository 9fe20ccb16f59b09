package service

import (
	"context"
	"errors"
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

func newEventService(t *testing.T) (*EventService, *mocks.MockEventRepo) {
	repo := mocks.NewMockEventRepo(t)
	return NewEventService(repo, clock.NewFixed(testNow), newTestLogger(t)), repo
}

func TestEventService_CreateEvent_Defaults(t *testing.T) {
	svc, repo := newEventService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything, (*domain.RefundPolicy)(nil)).Return(nil)

	details, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
		Title:    "Concert",
		StartsAt: testNow.Add(7 * 24 * time.Hour),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, details.Event.ID)
	assert.Equal(t, domain.EventStatusActive, details.Event.Status)
	assert.True(t, details.Event.TransfersAllowed)
	assert.Equal(t, domain.DefaultRefundPolicy(details.Event.ID), details.Policy)
}

func TestEventService_CreateEvent_WithPolicy(t *testing.T) {
	svc, repo := newEventService(t)

	var stored *domain.RefundPolicy
	repo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, e *domain.Event, p *domain.RefundPolicy) { stored = p }).
		Return(nil)

	noTransfers := false
	details, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
		Title:            "Festival",
		StartsAt:         testNow.Add(30 * 24 * time.Hour),
		TransfersAllowed: &noTransfers,
		Policy: &domain.RefundPolicy{
			RefundsAllowed:   true,
			CutoffHours:      72,
			RefundPercentage: decimal.NewFromInt(50),
			PartialAllowed:   true,
		},
	})

	require.NoError(t, err)
	assert.False(t, details.Event.TransfersAllowed)
	require.NotNil(t, stored)
	assert.Equal(t, details.Event.ID, stored.EventID)
	assert.Equal(t, 72, details.Policy.CutoffHours)
}

func TestEventService_CreateEvent_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.CreateEventInput
	}{
		{"empty title", domain.CreateEventInput{Title: "  ", StartsAt: testNow.Add(time.Hour)}},
		{"start in the past", domain.CreateEventInput{Title: "Concert", StartsAt: testNow.Add(-time.Hour)}},
		{"percentage over 100", domain.CreateEventInput{
			Title:    "Concert",
			StartsAt: testNow.Add(time.Hour),
			Policy:   &domain.RefundPolicy{RefundPercentage: decimal.NewFromInt(101)},
		}},
		{"negative cutoff", domain.CreateEventInput{
			Title:    "Concert",
			StartsAt: testNow.Add(time.Hour),
			Policy:   &domain.RefundPolicy{CutoffHours: -1, RefundPercentage: decimal.NewFromInt(100)},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newEventService(t)

			_, err := svc.CreateEvent(context.Background(), tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_CreateEvent_RepoError(t *testing.T) {
	svc, repo := newEventService(t)

	repoErr := errors.New("db error")
	repo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(repoErr)

	_, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{Title: "Concert", StartsAt: testNow.Add(time.Hour)})

	assert.ErrorIs(t, err, repoErr)
}

func TestEventService_GetDetails_FallsBackToDefaultPolicy(t *testing.T) {
	svc, repo := newEventService(t)

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", Title: "Concert"}, nil)
	repo.EXPECT().GetPolicy(mock.Anything, "e1").Return(nil, nil)

	details, err := svc.GetDetails(context.Background(), "e1")

	require.NoError(t, err)
	assert.True(t, details.Policy.RefundsAllowed)
	assert.Equal(t, 24, details.Policy.CutoffHours)
	assert.True(t, details.Policy.RefundPercentage.Equal(decimal.NewFromInt(100)))
}

func TestEventService_GetDetails_NotFound(t *testing.T) {
	svc, repo := newEventService(t)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.GetDetails(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_Cancel(t *testing.T) {
	svc, repo := newEventService(t)

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", Status: domain.EventStatusActive}, nil)
	repo.EXPECT().Cancel(mock.Anything, "e1", testNow).Return(nil)

	event, err := svc.Cancel(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusCancelled, event.Status)
}

func TestEventService_Cancel_AlreadyCancelled(t *testing.T) {
	svc, repo := newEventService(t)

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", Status: domain.EventStatusCancelled}, nil)

	_, err := svc.Cancel(context.Background(), "e1")

	assert.ErrorIs(t, err, domain.ErrEventAlreadyCancelled)
}

func TestEventService_SetRefundPolicy(t *testing.T) {
	svc, repo := newEventService(t)
	policy := domain.RefundPolicy{
		EventID:          "e1",
		RefundsAllowed:   false,
		CutoffHours:      48,
		RefundPercentage: decimal.RequireFromString("75.5"),
	}

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	repo.EXPECT().UpsertPolicy(mock.Anything, mock.MatchedBy(func(p *domain.RefundPolicy) bool {
		return p.EventID == "e1" && p.CutoffHours == 48
	})).Return(nil)

	got, err := svc.SetRefundPolicy(context.Background(), policy)

	require.NoError(t, err)
	assert.False(t, got.RefundsAllowed)
}

func TestEventService_SetRefundPolicy_UnknownEvent(t *testing.T) {
	svc, repo := newEventService(t)

	repo.EXPECT().GetByID(mock.Anything, "e9").Return(nil, domain.ErrEventNotFound)

	_, err := svc.SetRefundPolicy(context.Background(), domain.RefundPolicy{EventID: "e9", RefundPercentage: decimal.NewFromInt(100)})

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}
