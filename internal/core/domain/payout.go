package domain

import (
	"time"

	"github.com/google/uuid"
)

// PayoutStatus is the lifecycle state of a payout request.
type PayoutStatus string

const (
	PayoutStatusPending   PayoutStatus = "pending"
	PayoutStatusApproved  PayoutStatus = "approved"
	PayoutStatusRejected  PayoutStatus = "rejected"
	PayoutStatusPaid      PayoutStatus = "paid"
	PayoutStatusCancelled PayoutStatus = "cancelled"
)

// Valid reports whether s is a known status.
func (s PayoutStatus) Valid() bool {
	switch s {
	case PayoutStatusPending, PayoutStatusApproved, PayoutStatusRejected, PayoutStatusPaid, PayoutStatusCancelled:
		return true
	}
	return false
}

// IsTerminal returns true if no further transition is possible.
func (s PayoutStatus) IsTerminal() bool {
	return s == PayoutStatusRejected || s == PayoutStatusPaid || s == PayoutStatusCancelled
}

// OutstandingPayoutStatuses reserve wallet balance until they resolve.
var OutstandingPayoutStatuses = []PayoutStatus{PayoutStatusPending, PayoutStatusApproved}

// PayoutRequest is a vendor's request to withdraw wallet balance.
type PayoutRequest struct {
	ID                uuid.UUID    `json:"id"`
	VendorID          uuid.UUID    `json:"vendor_id"`
	Amount            int64        `json:"amount"` // minor units
	Status            PayoutStatus `json:"status"`
	RequestedAt       time.Time    `json:"requested_at"`
	ReviewedAt        *time.Time   `json:"reviewed_at,omitempty"`
	ReviewedBy        *uuid.UUID   `json:"reviewed_by,omitempty"`
	RejectionReason   *string      `json:"rejection_reason,omitempty"`
	TransferReference *string      `json:"transfer_reference,omitempty"`
	TransferAttempt   *string      `json:"transfer_attempt,omitempty"`
	TransferClaimedAt *time.Time   `json:"transfer_claimed_at,omitempty"`
}

// IsClaimed reports whether a transfer run currently holds the request.
func (p *PayoutRequest) IsClaimed() bool {
	return p.TransferAttempt != nil
}

// PayoutTransition describes one conditional status change.
type PayoutTransition struct {
	ID                uuid.UUID
	From              []PayoutStatus
	To                PayoutStatus
	Actor             uuid.UUID
	At                time.Time
	Reason            *string
	TransferReference *string
	// RequireUnclaimed restricts the change to requests no transfer run holds.
	RequireUnclaimed bool
}

// PayoutListParams filters payout listings. A nil VendorID lists all vendors.
type PayoutListParams struct {
	VendorID *uuid.UUID
	Status   *PayoutStatus
	Limit    int
}
