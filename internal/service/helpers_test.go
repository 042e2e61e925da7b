package service

import (
	"context"
	"io"
	"testing"

	"marketplace-payments/internal/adapter/storage/memory"
	"marketplace-payments/internal/core/domain"
	"marketplace-payments/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

// mockTx implements pgx.Tx for tests driven by mock repositories.
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

// ledgerFixture wires the ledger and payout services over an in-memory store.
type ledgerFixture struct {
	store   *memory.Store
	ledger  *LedgerServiceImpl
	payouts *PayoutServiceImpl
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	store := memory.NewStore()
	ledger := NewLedgerService(store.Ledger(), store.Payouts(), store, nil, newTestLogger())
	payouts := NewPayoutService(store.Payouts(), store.Ledger(), ledger, store, 500, newTestLogger())
	return &ledgerFixture{store: store, ledger: ledger, payouts: payouts}
}

// fund credits the vendor through a synthetic order.
func (f *ledgerFixture) fund(t *testing.T, vendorID uuid.UUID, amount int64) {
	t.Helper()
	_, err := f.ledger.Credit(context.Background(), nil, ports.CreditRequest{
		VendorID: vendorID,
		OrderID:  uuid.New(),
		Amount:   amount,
	})
	require.NoError(t, err)
}

// approvedPayout funds the vendor and returns an approved request for amount.
func (f *ledgerFixture) approvedPayout(t *testing.T, vendorID uuid.UUID, amount int64) *domain.PayoutRequest {
	t.Helper()
	ctx := context.Background()
	f.fund(t, vendorID, amount)
	p, err := f.payouts.Create(ctx, vendorID, amount)
	require.NoError(t, err)
	p, err = f.payouts.Approve(ctx, p.ID, uuid.New())
	require.NoError(t, err)
	return p
}

func (f *ledgerFixture) balance(t *testing.T, vendorID uuid.UUID) int64 {
	t.Helper()
	w, err := f.ledger.Wallet(context.Background(), vendorID)
	require.NoError(t, err)
	return w.Balance
}

func (f *ledgerFixture) entries(t *testing.T, vendorID uuid.UUID, kind domain.LedgerKind) []domain.LedgerTransaction {
	t.Helper()
	all, err := f.store.Ledger().ListByVendor(context.Background(), vendorID, 1000)
	require.NoError(t, err)
	var out []domain.LedgerTransaction
	for _, e := range all {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
