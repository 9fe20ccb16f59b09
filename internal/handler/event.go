package handler

import (
	"net/http"
	"time"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
	"github.com/ghxstship/grasshopper26.00-sub002/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid starts_at format, expected RFC3339",
		})
		return
	}

	input := domain.CreateEventInput{
		Title:            req.Title,
		Description:      req.Description,
		StartsAt:         startsAt,
		TransfersAllowed: req.TransfersAllowed,
	}
	if req.RefundPolicy != nil {
		p := req.RefundPolicy.ToDomain("")
		input.Policy = &p
	}

	details, err := h.eventService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventDetailsResponse(details))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := pathID(c, "id", "event")
	if !ok {
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CancelEvent(c *ginext.Context) {
	id, ok := pathID(c, "id", "event")
	if !ok {
		return
	}

	event, err := h.eventService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) SetRefundPolicy(c *ginext.Context) {
	id, ok := pathID(c, "id", "event")
	if !ok {
		return
	}

	var req dto.RefundPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	policy, err := h.eventService.SetRefundPolicy(c.Request.Context(), req.ToDomain(id))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRefundPolicyResponse(policy))
}
