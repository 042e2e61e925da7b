package postgres

import (
	"context"
	"errors"
	"fmt"

	"marketplace-payments/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const ledgerColumns = `id, vendor_id, order_id, payout_request_id, amount, kind, status, created_at`

// LedgerRepo implements ports.LedgerRepository over the wallets and
// ledger_transactions tables.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

// GetWallet fetches a vendor's wallet (non-locking read).
func (r *LedgerRepo) GetWallet(ctx context.Context, vendorID uuid.UUID) (*domain.Wallet, error) {
	return r.getWallet(ctx, r.pool, `SELECT vendor_id, balance, updated_at FROM wallets WHERE vendor_id = $1`, vendorID)
}

// GetWalletForUpdate fetches a vendor's wallet with pessimistic locking,
// creating an empty one first so there is always a row to lock.
// This MUST be called within a transaction.
func (r *LedgerRepo) GetWalletForUpdate(ctx context.Context, tx pgx.Tx, vendorID uuid.UUID) (*domain.Wallet, error) {
	_, err := tx.Exec(ctx,
		`INSERT INTO wallets (vendor_id, balance, updated_at) VALUES ($1, 0, NOW()) ON CONFLICT (vendor_id) DO NOTHING`,
		vendorID,
	)
	if err != nil {
		return nil, fmt.Errorf("ensure wallet: %w", err)
	}
	return r.getWallet(ctx, tx, `SELECT vendor_id, balance, updated_at FROM wallets WHERE vendor_id = $1 FOR UPDATE`, vendorID)
}

func (r *LedgerRepo) getWallet(ctx context.Context, q querier, query string, vendorID uuid.UUID) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	err := q.QueryRow(ctx, query, vendorID).Scan(&w.VendorID, &w.Balance, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet: %w", err)
	}
	return w, nil
}

// ApplyBalanceDelta adds delta to the vendor's balance, creating the wallet
// on first use, and returns the new balance.
func (r *LedgerRepo) ApplyBalanceDelta(ctx context.Context, tx pgx.Tx, vendorID uuid.UUID, delta int64) (int64, error) {
	query := `INSERT INTO wallets (vendor_id, balance, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (vendor_id) DO UPDATE
		SET balance = wallets.balance + EXCLUDED.balance, updated_at = NOW()
		RETURNING balance`

	var balance int64
	if err := on(r.pool, tx).QueryRow(ctx, query, vendorID, delta).Scan(&balance); err != nil {
		return 0, fmt.Errorf("apply balance delta: %w", err)
	}
	return balance, nil
}

// InsertCredit records an order credit. It reports false when the order was
// already credited.
func (r *LedgerRepo) InsertCredit(ctx context.Context, tx pgx.Tx, entry *domain.LedgerTransaction) (bool, error) {
	query := `INSERT INTO ledger_transactions (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (order_id) WHERE kind = 'order_credit' DO NOTHING`

	tag, err := on(r.pool, tx).Exec(ctx, query,
		entry.ID, entry.VendorID, entry.OrderID, entry.PayoutRequestID,
		entry.Amount, string(entry.Kind), entry.Status, entry.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert credit: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// GetCreditByOrderID fetches the credit posted for an order.
func (r *LedgerRepo) GetCreditByOrderID(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) (*domain.LedgerTransaction, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_transactions WHERE order_id = $1 AND kind = 'order_credit'`

	entry, err := scanLedger(on(r.pool, tx).QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get credit by order id: %w", err)
	}
	return entry, nil
}

// InsertDebit records a payout debit.
func (r *LedgerRepo) InsertDebit(ctx context.Context, tx pgx.Tx, entry *domain.LedgerTransaction) error {
	query := `INSERT INTO ledger_transactions (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := on(r.pool, tx).Exec(ctx, query,
		entry.ID, entry.VendorID, entry.OrderID, entry.PayoutRequestID,
		entry.Amount, string(entry.Kind), entry.Status, entry.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("insert debit: %w", err)
	}
	return nil
}

// ListByVendor returns a vendor's ledger, newest first.
func (r *LedgerRepo) ListByVendor(ctx context.Context, vendorID uuid.UUID, limit int) ([]domain.LedgerTransaction, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_transactions
		WHERE vendor_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, vendorID, limit)
	if err != nil {
		return nil, fmt.Errorf("list ledger: %w", err)
	}
	defer rows.Close()

	var out []domain.LedgerTransaction
	for rows.Next() {
		entry, err := scanLedger(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ledger row: %w", err)
		}
		out = append(out, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger rows: %w", err)
	}
	return out, nil
}

// SumByVendor totals the vendor's posted credits and debits.
func (r *LedgerRepo) SumByVendor(ctx context.Context, vendorID uuid.UUID) (*domain.LedgerTotals, error) {
	query := `SELECT
		COALESCE(SUM(amount) FILTER (WHERE kind = 'order_credit'), 0),
		COALESCE(SUM(amount) FILTER (WHERE kind = 'payout_debit'), 0)
		FROM ledger_transactions WHERE vendor_id = $1 AND status = 'posted'`

	totals := &domain.LedgerTotals{}
	if err := r.pool.QueryRow(ctx, query, vendorID).Scan(&totals.Credits, &totals.Debits); err != nil {
		return nil, fmt.Errorf("sum ledger: %w", err)
	}
	return totals, nil
}

func scanLedger(row pgx.Row) (*domain.LedgerTransaction, error) {
	entry := &domain.LedgerTransaction{}
	var kind string
	err := row.Scan(
		&entry.ID, &entry.VendorID, &entry.OrderID, &entry.PayoutRequestID,
		&entry.Amount, &kind, &entry.Status, &entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	entry.Kind = domain.LedgerKind(kind)
	return entry, nil
}
