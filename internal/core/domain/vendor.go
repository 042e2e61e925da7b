package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Vendor carries the payout destination of a marketplace vendor.
type Vendor struct {
	ID               uuid.UUID `json:"id"`
	BusinessName     string    `json:"business_name"`
	BankName         string    `json:"bank_name"`
	BankCode         string    `json:"bank_code"`
	AccountNumberEnc string    `json:"-"` // AES-256-GCM, never expose
	AccountName      string    `json:"account_name"`
	RecipientCode    *string   `json:"recipient_code,omitempty"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// MissingBankFields lists the bank detail fields a transfer recipient needs
// but the vendor has not provided.
func (v *Vendor) MissingBankFields() []string {
	var missing []string
	if strings.TrimSpace(v.AccountName) == "" {
		missing = append(missing, "account_name")
	}
	if v.AccountNumberEnc == "" {
		missing = append(missing, "account_number")
	}
	if strings.TrimSpace(v.BankCode) == "" {
		missing = append(missing, "bank_code")
	}
	return missing
}

// BankDetails is a plaintext bank details update.
type BankDetails struct {
	BankCode      string
	BankName      string
	AccountNumber string
	AccountName   string
}

// BankDetailsView is the masked form returned to vendors.
type BankDetailsView struct {
	BankName      string `json:"bank_name"`
	BankCode      string `json:"bank_code"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	RecipientSet  bool   `json:"recipient_ready"`
}

// MaskAccountNumber hides all but the last four digits.
func MaskAccountNumber(n string) string {
	if len(n) <= 4 {
		return n
	}
	return strings.Repeat("*", len(n)-4) + n[len(n)-4:]
}
