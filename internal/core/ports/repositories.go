package ports

import (
	"context"
	"time"

	"marketplace-payments/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Repository conventions: Get* methods return (nil, nil) when the row does
// not exist. Methods accepting pgx.Tx join that transaction; a nil tx runs
// the statement on its own.

// OrderRepository reads and updates the payment fields of orders.
type OrderRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	// GetByPaymentReference matches the order's current reference or any
	// recorded payment attempt.
	GetByPaymentReference(ctx context.Context, reference string) (*domain.Order, error)
	SavePaymentReference(ctx context.Context, tx pgx.Tx, attempt *domain.PaymentAttempt) error
	// MarkPaid flips payment_status to paid only if it is not already paid.
	// It reports whether this call made the change.
	MarkPaid(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, paidAt time.Time) (bool, error)
}

// LedgerRepository persists wallets and ledger transactions.
type LedgerRepository interface {
	GetWallet(ctx context.Context, vendorID uuid.UUID) (*domain.Wallet, error)
	GetWalletForUpdate(ctx context.Context, tx pgx.Tx, vendorID uuid.UUID) (*domain.Wallet, error)
	// ApplyBalanceDelta creates the wallet if needed and returns the new balance.
	ApplyBalanceDelta(ctx context.Context, tx pgx.Tx, vendorID uuid.UUID, delta int64) (int64, error)
	// InsertCredit reports false when a credit for the order already exists.
	InsertCredit(ctx context.Context, tx pgx.Tx, entry *domain.LedgerTransaction) (bool, error)
	GetCreditByOrderID(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) (*domain.LedgerTransaction, error)
	// InsertDebit returns domain.ErrDuplicateEntry when the payout request
	// was already debited.
	InsertDebit(ctx context.Context, tx pgx.Tx, entry *domain.LedgerTransaction) error
	ListByVendor(ctx context.Context, vendorID uuid.UUID, limit int) ([]domain.LedgerTransaction, error)
	SumByVendor(ctx context.Context, vendorID uuid.UUID) (*domain.LedgerTotals, error)
}

// PayoutRepository persists payout requests.
type PayoutRepository interface {
	Create(ctx context.Context, tx pgx.Tx, p *domain.PayoutRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PayoutRequest, error)
	List(ctx context.Context, params domain.PayoutListParams) ([]domain.PayoutRequest, error)
	// SumOutstanding totals the vendor's pending and approved requests.
	SumOutstanding(ctx context.Context, tx pgx.Tx, vendorID uuid.UUID) (int64, error)
	// Transition applies t only if the row is in one of t.From. It returns
	// (nil, nil) when no row matched.
	Transition(ctx context.Context, tx pgx.Tx, t domain.PayoutTransition) (*domain.PayoutRequest, error)
	// ClaimTransfer stamps attemptRef on an approved, unclaimed request.
	ClaimTransfer(ctx context.Context, id uuid.UUID, attemptRef string, at time.Time) (bool, error)
	// ReleaseTransfer clears the claim if it is still held by attemptRef. An
	// empty attemptRef clears whatever claim is held.
	ReleaseTransfer(ctx context.Context, id uuid.UUID, attemptRef string) (bool, error)
}

// VendorRepository persists vendor bank details and transfer recipients.
type VendorRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Vendor, error)
	// SaveRecipientCode stores code only if the bank details still match
	// the ones the recipient was created from.
	SaveRecipientCode(ctx context.Context, vendor *domain.Vendor, code string) (bool, error)
	// UpdateBankDetails replaces the bank details and clears the recipient
	// code. It returns false when the vendor does not exist.
	UpdateBankDetails(ctx context.Context, vendor *domain.Vendor) (bool, error)
}

// AuditRepository persists audit logs.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
