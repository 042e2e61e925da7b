package ports

import (
	"context"
	"time"

	"marketplace-payments/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// EncryptionService handles AES-256-GCM encryption/decryption.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SignatureService computes and checks hex HMAC-SHA512 signatures.
type SignatureService interface {
	Sign(secret string, payload []byte) string
	Verify(secret string, payload []byte, signature string) bool
}

// TokenService validates identity tokens issued upstream.
type TokenService interface {
	Validate(tokenString string) (*domain.Principal, error)
}

// IdempotencyCache is the Redis-layer idempotency check (fast path).
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached value or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// BankCache caches the processor's bank directory.
type BankCache interface {
	GetBanks(ctx context.Context) ([]domain.Bank, error) // nil on miss
	SetBanks(ctx context.Context, banks []domain.Bank, ttl time.Duration) error
}

// --- Service Ports (Business Logic) ---

// LedgerService is the only writer of wallet balances.
type LedgerService interface {
	// Credit and Debit join tx when it is non-nil and otherwise commit on
	// their own.
	Credit(ctx context.Context, tx pgx.Tx, req CreditRequest) (*domain.LedgerTransaction, error)
	Debit(ctx context.Context, tx pgx.Tx, req DebitRequest) (*domain.LedgerTransaction, error)
	Wallet(ctx context.Context, vendorID uuid.UUID) (*domain.WalletSummary, error)
	Statement(ctx context.Context, vendorID uuid.UUID, limit int) ([]domain.LedgerTransaction, error)
	Verify(ctx context.Context, vendorID uuid.UUID) (*domain.LedgerVerification, error)
}

type CreditRequest struct {
	VendorID uuid.UUID
	OrderID  uuid.UUID
	Amount   int64
}

type DebitRequest struct {
	VendorID        uuid.UUID
	PayoutRequestID uuid.UUID
	Amount          int64
}

// PayoutService owns the payout request lifecycle.
type PayoutService interface {
	Create(ctx context.Context, vendorID uuid.UUID, amount int64) (*domain.PayoutRequest, error)
	Approve(ctx context.Context, id, admin uuid.UUID) (*domain.PayoutRequest, error)
	Reject(ctx context.Context, id, admin uuid.UUID, reason string) (*domain.PayoutRequest, error)
	MarkPaid(ctx context.Context, id uuid.UUID, transferReference string, actor uuid.UUID) (*domain.PayoutRequest, error)
	Cancel(ctx context.Context, id, vendorID, actor uuid.UUID) (*domain.PayoutRequest, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.PayoutRequest, error)
	ListForVendor(ctx context.Context, vendorID uuid.UUID, limit int) ([]domain.PayoutRequest, error)
	List(ctx context.Context, params domain.PayoutListParams) ([]domain.PayoutRequest, error)
}

// TransferService sends approved payouts to vendors' bank accounts.
type TransferService interface {
	Execute(ctx context.Context, req TransferRequest) (*domain.TransferResult, error)
	Reconcile(ctx context.Context, id uuid.UUID, transferReference string, actor uuid.UUID) (*domain.PayoutRequest, error)
	ReleaseClaim(ctx context.Context, id, actor uuid.UUID) error
}

type TransferRequest struct {
	PayoutRequestID uuid.UUID
	Actor           uuid.UUID
}

// WebhookService handles inbound processor events.
type WebhookService interface {
	Handle(ctx context.Context, body []byte, signature string) (domain.WebhookOutcome, error)
}

// CheckoutService starts hosted checkouts for orders.
type CheckoutService interface {
	Initiate(ctx context.Context, req InitiateRequest) (*domain.Checkout, error)
}

type InitiateRequest struct {
	OrderID uuid.UUID
	Payer   Payer
}

type Payer struct {
	UserID uuid.UUID
	Email  string
}

// BankService exposes the processor's bank directory.
type BankService interface {
	ListBanks(ctx context.Context) ([]domain.Bank, error)
	ResolveAccount(ctx context.Context, bankCode, accountNumber string) (*domain.ResolvedAccount, error)
}

// VendorService manages vendors' payout destinations.
type VendorService interface {
	UpdateBankDetails(ctx context.Context, vendorID uuid.UUID, details domain.BankDetails) (*domain.BankDetailsView, error)
	BankDetails(ctx context.Context, vendorID uuid.UUID) (*domain.BankDetailsView, error)
}

// AuditService records audited actions.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
