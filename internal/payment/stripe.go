// Package payment adapts the Stripe API to the refund flow.
package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
	"github.com/wb-go/wbf/logger"
)

// refundCreator is the part of the Stripe client the gateway calls.
type refundCreator interface {
	New(params *stripe.RefundParams) (*stripe.Refund, error)
}

type StripeGateway struct {
	refunds       refundCreator
	webhookSecret string
	logger        logger.Logger
}

var errNotConfigured = &domain.PaymentError{Code: "not_configured", Message: "payment provider is not configured"}

// NewStripeGateway without a secret key still verifies webhooks but refuses
// every refund.
func NewStripeGateway(secretKey, webhookSecret string, log logger.Logger) *StripeGateway {
	g := &StripeGateway{
		webhookSecret: webhookSecret,
		logger:        log,
	}
	if secretKey == "" {
		log.LogAttrs(context.Background(), logger.WarnLevel, "stripe secret key not set, refunds disabled")
		return g
	}
	g.refunds = client.New(secretKey, nil).Refunds
	return g
}

// Refund reverses part or all of a charge. The idempotency key makes a
// retried call return the refund created by the first one.
func (g *StripeGateway) Refund(ctx context.Context, req domain.ProviderRefundRequest) (*domain.ProviderRefund, error) {
	if g.refunds == nil {
		return nil, errNotConfigured
	}

	params := &stripe.RefundParams{
		Charge: stripe.String(req.ChargeID),
		Amount: stripe.Int64(req.Amount),
		Reason: stripe.String(string(stripe.RefundReasonRequestedByCustomer)),
	}
	params.Context = ctx
	params.SetIdempotencyKey(req.IdempotencyKey)
	params.AddMetadata("order_id", req.OrderID)
	if req.Reason != "" {
		params.AddMetadata("reason", req.Reason)
	}

	r, err := g.refunds.New(params)
	if err != nil {
		return nil, mapStripeError(err)
	}

	g.logger.Debug("stripe refund created",
		logger.String("order_id", req.OrderID),
		logger.String("provider_refund_id", r.ID),
		logger.String("status", string(r.Status)),
	)

	return &domain.ProviderRefund{
		ID:     r.ID,
		Status: refundStatus(r.Status),
		Amount: r.Amount,
	}, nil
}

// ParseWebhook verifies the Stripe-Signature header and extracts refund
// status changes. Events about anything but refunds come back with an empty
// ProviderRefundID.
func (g *StripeGateway) ParseWebhook(payload []byte, signature string) (*domain.ProviderEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSignature, err)
	}

	ev := &domain.ProviderEvent{Type: string(event.Type)}
	if !isRefundEvent(ev.Type) {
		return ev, nil
	}

	var r stripe.Refund
	if err = json.Unmarshal(event.Data.Raw, &r); err != nil {
		return nil, fmt.Errorf("%w: decode refund: %v", domain.ErrValidation, err)
	}
	ev.ProviderRefundID = r.ID
	ev.Status = refundStatus(r.Status)

	return ev, nil
}

func isRefundEvent(t string) bool {
	return strings.HasPrefix(t, "refund.") || strings.HasPrefix(t, "charge.refund.")
}

func refundStatus(s stripe.RefundStatus) domain.RefundStatus {
	switch s {
	case stripe.RefundStatusSucceeded:
		return domain.RefundStatusSucceeded
	case stripe.RefundStatusFailed:
		return domain.RefundStatusFailed
	case stripe.RefundStatusCanceled:
		return domain.RefundStatusCanceled
	default:
		return domain.RefundStatusPending
	}
}

func mapStripeError(err error) error {
	var se *stripe.Error
	if !errors.As(err, &se) {
		return &domain.PaymentError{Message: err.Error(), Retryable: true}
	}

	return &domain.PaymentError{
		Code:      string(se.Code),
		Message:   se.Msg,
		Retryable: se.HTTPStatusCode >= http.StatusInternalServerError || se.HTTPStatusCode == http.StatusTooManyRequests,
	}
}
