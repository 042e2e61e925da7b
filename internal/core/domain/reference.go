package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewOrderReference builds the checkout reference for one payment attempt.
// Each attempt gets a fresh reference.
func NewOrderReference(orderID uuid.UUID, now time.Time) string {
	return fmt.Sprintf("order_%s_%d", orderID, now.UnixNano())
}

// NewPayoutReference builds the transfer reference for one transfer attempt.
func NewPayoutReference(payoutID uuid.UUID, now time.Time) string {
	return fmt.Sprintf("payout_%s_%d", payoutID, now.UnixNano())
}

// PayoutReason is the narration sent with a vendor transfer.
func PayoutReason(payoutID uuid.UUID) string {
	return fmt.Sprintf("Vendor payout %s", payoutID)
}
