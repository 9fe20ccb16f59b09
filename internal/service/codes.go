package service

import (
	"encoding/hex"
	"sort"
	"strings"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
	"github.com/google/uuid"
	"github.com/zeebo/blake3"
)

// newTransferCode returns an opaque single-use code such as
// XFER-3F2A9C0D4E5B6A7F8091A2B3C4D5E6F7.
func newTransferCode() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return domain.TransferCodePrefix + strings.ToUpper(raw)
}

func hashCode(code string) string {
	sum := blake3.Sum256([]byte(strings.ToUpper(strings.TrimSpace(code))))
	return hex.EncodeToString(sum[:])
}

// refundIdempotencyKey is stable for the same order and ticket set, so a
// retried refund cannot move money twice.
func refundIdempotencyKey(orderID string, ticketIDs []string) string {
	ids := append([]string(nil), ticketIDs...)
	sort.Strings(ids)
	sum := blake3.Sum256([]byte(strings.Join(ids, ",")))
	return "refund:" + orderID + ":" + hex.EncodeToString(sum[:8])
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
