package handler

import (
	"net/http"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) InitiateTransfer(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	ticketID, ok := pathID(c, "id", "ticket")
	if !ok {
		return
	}

	var req dto.InitiateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.transferService.InitiateTransfer(c.Request.Context(), actor, ticketID, req.RecipientEmail)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if !res.Decision.Eligible {
		c.Set("error", res.Decision.Reason)
		c.JSON(http.StatusUnprocessableEntity, dto.ToInitiateTransferResponse(res))
		return
	}

	c.JSON(http.StatusCreated, dto.ToInitiateTransferResponse(res))
}

func (h *Handler) AcceptTransfer(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.AcceptTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	tr, err := h.transferService.AcceptTransfer(c.Request.Context(), actor, req.Code)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferResponse(tr))
}

func (h *Handler) CancelTransfer(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	transferID, ok := pathID(c, "id", "transfer")
	if !ok {
		return
	}

	tr, err := h.transferService.CancelTransfer(c.Request.Context(), actor, transferID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferResponse(tr))
}

func (h *Handler) ListTransfers(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	transfers, err := h.transferService.ListTransfers(c.Request.Context(), actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TransferResponse, 0, len(transfers))
	for _, tr := range transfers {
		resp = append(resp, dto.ToTransferResponse(tr))
	}

	c.JSON(http.StatusOK, resp)
}
