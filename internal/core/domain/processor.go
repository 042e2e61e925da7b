package domain

import (
	"fmt"
	"time"
)

// EventChargeSuccess is the only processor event that moves money in.
const EventChargeSuccess = "charge.success"

// WebhookOutcome is the result of handling one processor event.
type WebhookOutcome string

const (
	WebhookProcessed WebhookOutcome = "processed"
	WebhookIgnored   WebhookOutcome = "ignored"
	WebhookDuplicate WebhookOutcome = "duplicate"
)

// ChargeEvent is a decoded processor webhook.
type ChargeEvent struct {
	Event string     `json:"event"`
	Data  ChargeData `json:"data"`
}

type ChargeData struct {
	Reference string `json:"reference"`
	PaidAt    string `json:"paid_at"`
	Amount    int64  `json:"amount"` // minor units
	Currency  string `json:"currency"`
	Status    string `json:"status"`
}

// PaidAtOr parses the event's paid_at, returning fallback when it is absent
// or malformed.
func (d ChargeData) PaidAtOr(fallback time.Time) time.Time {
	if d.PaidAt == "" {
		return fallback
	}
	t, err := time.Parse(time.RFC3339, d.PaidAt)
	if err != nil {
		return fallback
	}
	return t.UTC()
}

// Bank is an entry of the processor's bank directory.
type Bank struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type InitializeParams struct {
	Email       string
	Amount      int64 // minor units
	Reference   string
	Currency    string
	CallbackURL string
	Metadata    map[string]string
}

// Checkout is the processor's answer to a payment initialization.
type Checkout struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code,omitempty"`
	Reference        string `json:"reference"`
}

type RecipientParams struct {
	Name          string
	AccountNumber string
	BankCode      string
	Currency      string
	Metadata      map[string]string
}

type TransferParams struct {
	Amount        int64 // minor units
	RecipientCode string
	Reference     string
	Reason        string
}

// TransferStatusOTP is reported for transfers the processor holds until an
// OTP finalizes them.
const TransferStatusOTP = "otp"

// TransferResult is what the processor reports for an accepted transfer.
type TransferResult struct {
	TransferCode string `json:"transfer_code"`
	Reference    string `json:"reference"`
	Status       string `json:"status"`
}

// AwaitingOTP reports whether the transfer still needs finalization before
// any money moves.
func (r *TransferResult) AwaitingOTP() bool {
	return r != nil && r.Status == TransferStatusOTP
}

type ResolvedAccount struct {
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
}

// ProcessorError is a non-success response from the payment processor.
// Raw holds the response body as received.
type ProcessorError struct {
	Operation  string
	StatusCode int
	Message    string
	Raw        []byte
}

func (e *ProcessorError) Error() string {
	return fmt.Sprintf("processor %s failed (status %d): %s", e.Operation, e.StatusCode, e.Message)
}
