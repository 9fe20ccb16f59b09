package handler

import (
	"net/http"
	"strings"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
	"github.com/ghxstship/grasshopper26.00-sub002/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

// RefundEligibility answers 200 for both outcomes; an ineligible order is
// reported in the body.
func (h *Handler) RefundEligibility(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	orderID, ok := pathID(c, "id", "order")
	if !ok {
		return
	}

	ticketIDs, ok := ticketsQuery(c)
	if !ok {
		return
	}

	decision, err := h.refundService.CheckEligibility(c.Request.Context(), actor, orderID, ticketIDs)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRefundEligibilityResponse(decision))
}

func (h *Handler) ProcessRefund(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	orderID, ok := pathID(c, "id", "order")
	if !ok {
		return
	}

	var req dto.RefundRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
	}

	refund, err := h.refundService.ProcessRefund(c.Request.Context(), domain.RefundInput{
		Actor:     actor,
		OrderID:   orderID,
		TicketIDs: req.TicketIDs,
		Reason:    req.Reason,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRefundResponse(refund))
}

func (h *Handler) BatchRefund(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.BatchRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.refundService.BatchRefund(c.Request.Context(), actor, req.OrderIDs, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBatchRefundResponse(res))
}

// ticketsQuery parses ?tickets=a,b,c into a list of uuids.
func ticketsQuery(c *ginext.Context) ([]string, bool) {
	raw := c.Query("tickets")
	if raw == "" {
		return nil, true
	}

	ids := strings.Split(raw, ",")
	for i, id := range ids {
		id = strings.TrimSpace(id)
		if _, err := uuid.Parse(id); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ticket id"})
			return nil, false
		}
		ids[i] = id
	}
	return ids, true
}
