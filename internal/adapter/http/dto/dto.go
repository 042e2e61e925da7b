package dto

import "marketplace-payments/internal/core/domain"

// --- Requests ---

// InitializePaymentRequest starts a hosted checkout for an order.
type InitializePaymentRequest struct {
	OrderID string `json:"order_id" binding:"required,uuid"`
}

// ResolveAccountRequest asks the processor for an account's holder name.
type ResolveAccountRequest struct {
	BankCode      string `json:"bank_code" binding:"required,bank_code"`
	AccountNumber string `json:"account_number" binding:"required,nuban"`
}

// CreatePayoutRequest is a vendor withdrawal request. Amount is in minor units.
type CreatePayoutRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// ListPayoutsQuery filters payout listings.
type ListPayoutsQuery struct {
	Status   string `form:"status" binding:"omitempty,oneof=pending approved rejected paid cancelled"`
	Limit    int    `form:"limit" binding:"omitempty,gte=1"`
	VendorID string `form:"vendor_id" binding:"omitempty,uuid"` // admins only
}

type RejectPayoutRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

type ReconcilePayoutRequest struct {
	TransferReference string `json:"transfer_reference" binding:"required,max=100,safe_id"`
}

// TransferPayoutRequest sends an approved payout to the vendor's bank.
type TransferPayoutRequest struct {
	RequestID string `json:"request_id" binding:"required,uuid"`
}

// UpdateBankDetailsRequest replaces a vendor's payout destination. An empty
// account name is resolved through the processor.
type UpdateBankDetailsRequest struct {
	BankCode      string `json:"bank_code" binding:"required,bank_code"`
	BankName      string `json:"bank_name" binding:"required,max=100"`
	AccountNumber string `json:"account_number" binding:"required,nuban"`
	AccountName   string `json:"account_name" binding:"omitempty,max=100"`
}

// --- Responses ---

type WebhookAck struct {
	Received bool `json:"received"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

type CheckoutResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	Reference        string `json:"reference"`
}

type ResolveAccountResponse struct {
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
}

type BanksResponse struct {
	Banks []domain.Bank `json:"banks"`
}

type PayoutResponse struct {
	Payout *domain.PayoutRequest `json:"payout"`
}

type TransferResponse struct {
	OK       bool                   `json:"ok"`
	Transfer *domain.TransferResult `json:"transfer"`
}

// WalletResponse is the vendor's balance with its most recent movements.
type WalletResponse struct {
	Balance      int64                      `json:"balance"`
	Outstanding  int64                      `json:"outstanding"`
	Available    int64                      `json:"available"`
	Transactions []domain.LedgerTransaction `json:"transactions"`
}
