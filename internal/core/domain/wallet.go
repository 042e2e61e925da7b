package domain

import (
	"time"

	"github.com/google/uuid"
)

// Wallet is a vendor's running balance in minor units. It is created lazily
// by the first ledger movement and only ever changed together with a ledger
// insert.
type Wallet struct {
	VendorID  uuid.UUID `json:"vendor_id"`
	Balance   int64     `json:"balance"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WalletSummary is the vendor-facing view of a wallet.
type WalletSummary struct {
	VendorID    uuid.UUID `json:"vendor_id"`
	Balance     int64     `json:"balance"`
	Outstanding int64     `json:"outstanding"` // pending + approved payout requests
	Available   int64     `json:"available"`
}

// LedgerKind distinguishes the two kinds of ledger movement.
type LedgerKind string

const (
	LedgerKindOrderCredit LedgerKind = "order_credit"
	LedgerKindPayoutDebit LedgerKind = "payout_debit"
)

// LedgerStatusPosted is the only status a ledger row ever has.
const LedgerStatusPosted = "posted"

// LedgerTransaction is an immutable record of one balance movement.
type LedgerTransaction struct {
	ID              uuid.UUID  `json:"id"`
	VendorID        uuid.UUID  `json:"vendor_id"`
	OrderID         *uuid.UUID `json:"order_id,omitempty"`
	PayoutRequestID *uuid.UUID `json:"payout_request_id,omitempty"`
	Amount          int64      `json:"amount"`
	Kind            LedgerKind `json:"kind"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
}

// Signed returns the amount with the sign it contributes to the balance.
func (t *LedgerTransaction) Signed() int64 {
	if t.Kind == LedgerKindPayoutDebit {
		return -t.Amount
	}
	return t.Amount
}

// LedgerTotals are the per-kind sums of a vendor's ledger.
type LedgerTotals struct {
	Credits int64
	Debits  int64
}

// LedgerVerification compares the cached wallet balance with the balance
// recomputed from the ledger.
type LedgerVerification struct {
	VendorID uuid.UUID `json:"vendor_id"`
	Cached   int64     `json:"cached"`
	Computed int64     `json:"computed"`
	Drift    int64     `json:"drift"`
}
