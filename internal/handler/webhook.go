package handler

import (
	"io"
	"net/http"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const maxWebhookBody = 64 << 10

// StripeWebhook needs the body byte-for-byte as sent; it is verified
// against the Stripe-Signature header before anything else reads it.
func (h *Handler) StripeWebhook(c *ginext.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: "payload too large"})
		return
	}

	if err = h.refundService.HandleProviderEvent(c.Request.Context(), payload, c.GetHeader("Stripe-Signature")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"received": true})
}
