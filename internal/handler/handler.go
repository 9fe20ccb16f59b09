package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
	"github.com/ghxstship/grasshopper26.00-sub002/internal/handler/dto"
	"github.com/ghxstship/grasshopper26.00-sub002/internal/middleware"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type TransferSvc interface {
	InitiateTransfer(ctx context.Context, actor domain.Actor, ticketID, recipientEmail string) (*domain.TransferInitiation, error)
	AcceptTransfer(ctx context.Context, actor domain.Actor, code string) (*domain.TransferRequest, error)
	CancelTransfer(ctx context.Context, actor domain.Actor, transferID string) (*domain.TransferRequest, error)
	ListTransfers(ctx context.Context, actor domain.Actor) ([]*domain.TransferRequest, error)
}

type RefundSvc interface {
	CheckEligibility(ctx context.Context, actor domain.Actor, orderID string, ticketIDs []string) (*domain.RefundDecision, error)
	ProcessRefund(ctx context.Context, in domain.RefundInput) (*domain.Refund, error)
	BatchRefund(ctx context.Context, actor domain.Actor, orderIDs []string, reason string) (*domain.BatchRefundResult, error)
	HandleProviderEvent(ctx context.Context, payload []byte, signature string) error
}

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.EventDetails, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context) ([]*domain.Event, error)
	Cancel(ctx context.Context, id string) (*domain.Event, error)
	SetRefundPolicy(ctx context.Context, policy domain.RefundPolicy) (*domain.RefundPolicy, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	transferService TransferSvc
	refundService   RefundSvc
	eventService    EventSvc
	userService     UserSvc
}

func NewHandler(transferService TransferSvc, refundService RefundSvc, eventService EventSvc, userService UserSvc) *Handler {
	return &Handler{
		transferService: transferService,
		refundService:   refundService,
		eventService:    eventService,
		userService:     userService,
	}
}

// actor returns the caller resolved by middleware.Auth and responds 401
// when there is none.
func (h *Handler) actor(c *ginext.Context) (domain.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthenticated)
	}
	return actor, ok
}

// pathID reads a uuid path parameter and responds 400 when it is malformed.
func pathID(c *ginext.Context, name, what string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + what + " id"})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var payErr *domain.PaymentError

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrTicketNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrTransferNotFound),
		errors.Is(err, domain.ErrRefundNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrNotIntendedRecipient):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotEligible):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrTransferPending),
		errors.Is(err, domain.ErrTransferNotPending),
		errors.Is(err, domain.ErrTransferExpired),
		errors.Is(err, domain.ErrTicketNotTransferable),
		errors.Is(err, domain.ErrOrderNotRefundable),
		errors.Is(err, domain.ErrEventAlreadyCancelled),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidSignature):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.As(err, &payErr):
		status := http.StatusBadGateway
		if payErr.Retryable {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, dto.ErrorResponse{Error: payErr.Error(), Retryable: payErr.Retryable})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
