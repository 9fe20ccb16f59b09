package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrTicketNotFound   = errors.New("ticket not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrTransferNotFound = errors.New("transfer not found")
	ErrRefundNotFound   = errors.New("refund not found")
)

var (
	ErrForbidden            = errors.New("forbidden")
	ErrUnauthenticated      = errors.New("unauthenticated")
	ErrNotIntendedRecipient = errors.New("not intended recipient")
)

var (
	ErrNotEligible           = errors.New("not eligible")
	ErrTransferPending       = errors.New("transfer already pending")
	ErrTransferNotPending    = errors.New("transfer is not pending")
	ErrTransferExpired       = errors.New("transfer has expired")
	ErrTicketNotTransferable = errors.New("ticket can no longer be transferred")
	ErrOrderNotRefundable    = errors.New("order can no longer be refunded")
	ErrEventAlreadyCancelled = errors.New("event is already cancelled")
	ErrRefundDuplicate       = errors.New("refund already recorded")
)

var (
	ErrEmailTaken = errors.New("email is already registered")
)

var (
	ErrValidation = errors.New("validation error")
)

var (
	ErrPaymentProvider  = errors.New("payment provider error")
	ErrInvalidSignature = errors.New("invalid webhook signature")
)

// PaymentError is an upstream failure reported by the payment provider.
type PaymentError struct {
	Code      string
	Message   string
	Retryable bool
}

func (e *PaymentError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("payment provider: %s", e.Message)
	}
	return fmt.Sprintf("payment provider: %s (%s)", e.Message, e.Code)
}

func (e *PaymentError) Unwrap() error {
	return ErrPaymentProvider
}

// NotEligible wraps ErrNotEligible with the denial reason.
func NotEligible(d Decision) error {
	return fmt.Errorf("%w: %s", ErrNotEligible, d.Reason)
}
