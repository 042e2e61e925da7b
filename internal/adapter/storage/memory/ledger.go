package memory

import (
	"context"
	"sort"
	"time"

	"marketplace-payments/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// LedgerRepo implements ports.LedgerRepository.
type LedgerRepo struct {
	s *Store
}

// Ledger returns the ledger repository of the store.
func (s *Store) Ledger() *LedgerRepo {
	return &LedgerRepo{s: s}
}

func (r *LedgerRepo) GetWallet(ctx context.Context, vendorID uuid.UUID) (*domain.Wallet, error) {
	defer r.s.acquire(nil)()
	return r.wallet(vendorID), nil
}

func (r *LedgerRepo) GetWalletForUpdate(ctx context.Context, tx pgx.Tx, vendorID uuid.UUID) (*domain.Wallet, error) {
	defer r.s.acquire(tx)()
	return r.wallet(vendorID), nil
}

func (r *LedgerRepo) wallet(vendorID uuid.UUID) *domain.Wallet {
	w, ok := r.s.wallets[vendorID]
	if !ok {
		return nil
	}
	cp := *w
	return &cp
}

func (r *LedgerRepo) ApplyBalanceDelta(ctx context.Context, tx pgx.Tx, vendorID uuid.UUID, delta int64) (int64, error) {
	defer r.s.acquire(tx)()
	w, ok := r.s.wallets[vendorID]
	if !ok {
		w = &domain.Wallet{VendorID: vendorID}
		r.s.wallets[vendorID] = w
		r.s.onRollback(tx, func() { delete(r.s.wallets, vendorID) })
	} else {
		prev := *w
		r.s.onRollback(tx, func() { *w = prev })
	}
	w.Balance += delta
	w.UpdatedAt = time.Now().UTC()
	return w.Balance, nil
}

func (r *LedgerRepo) InsertCredit(ctx context.Context, tx pgx.Tx, entry *domain.LedgerTransaction) (bool, error) {
	defer r.s.acquire(tx)()
	if entry.OrderID != nil && r.find(domain.LedgerKindOrderCredit, *entry.OrderID) != nil {
		return false, nil
	}
	r.append(tx, entry)
	return true, nil
}

func (r *LedgerRepo) GetCreditByOrderID(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) (*domain.LedgerTransaction, error) {
	defer r.s.acquire(tx)()
	return r.find(domain.LedgerKindOrderCredit, orderID), nil
}

func (r *LedgerRepo) InsertDebit(ctx context.Context, tx pgx.Tx, entry *domain.LedgerTransaction) error {
	defer r.s.acquire(tx)()
	if entry.PayoutRequestID != nil && r.find(domain.LedgerKindPayoutDebit, *entry.PayoutRequestID) != nil {
		return domain.ErrDuplicateEntry
	}
	r.append(tx, entry)
	return nil
}

func (r *LedgerRepo) append(tx pgx.Tx, entry *domain.LedgerTransaction) {
	n := len(r.s.ledger)
	r.s.ledger = append(r.s.ledger, *entry)
	r.s.onRollback(tx, func() { r.s.ledger = r.s.ledger[:n] })
}

// find looks up the entry of kind keyed by an order (credits) or a payout
// request (debits).
func (r *LedgerRepo) find(kind domain.LedgerKind, key uuid.UUID) *domain.LedgerTransaction {
	for i := range r.s.ledger {
		e := &r.s.ledger[i]
		if e.Kind != kind {
			continue
		}
		ref := e.OrderID
		if kind == domain.LedgerKindPayoutDebit {
			ref = e.PayoutRequestID
		}
		if ref != nil && *ref == key {
			cp := *e
			return &cp
		}
	}
	return nil
}

func (r *LedgerRepo) ListByVendor(ctx context.Context, vendorID uuid.UUID, limit int) ([]domain.LedgerTransaction, error) {
	defer r.s.acquire(nil)()
	var out []domain.LedgerTransaction
	for _, e := range r.s.ledger {
		if e.VendorID == vendorID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *LedgerRepo) SumByVendor(ctx context.Context, vendorID uuid.UUID) (*domain.LedgerTotals, error) {
	defer r.s.acquire(nil)()
	totals := &domain.LedgerTotals{}
	for _, e := range r.s.ledger {
		if e.VendorID != vendorID {
			continue
		}
		switch e.Kind {
		case domain.LedgerKindOrderCredit:
			totals.Credits += e.Amount
		case domain.LedgerKindPayoutDebit:
			totals.Debits += e.Amount
		}
	}
	return totals, nil
}
