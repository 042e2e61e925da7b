// Package memory is an in-process implementation of the repository ports.
// It backs the "memory" database driver and the service scenario tests.
//
// A transaction holds the store-wide lock from Begin until Commit or
// Rollback, so transactions are serialised. Repository methods given an open
// transaction of this store run under that lock; methods given a nil tx take
// the lock themselves.
package memory

import (
	"context"
	"sync"

	"marketplace-payments/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Store holds all tables.
type Store struct {
	mu sync.Mutex

	orders   map[uuid.UUID]*domain.Order
	attempts map[string]domain.PaymentAttempt
	wallets  map[uuid.UUID]*domain.Wallet
	ledger   []domain.LedgerTransaction
	payouts  map[uuid.UUID]*domain.PayoutRequest
	vendors  map[uuid.UUID]*domain.Vendor
	audits   []domain.AuditLog
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		orders:   make(map[uuid.UUID]*domain.Order),
		attempts: make(map[string]domain.PaymentAttempt),
		wallets:  make(map[uuid.UUID]*domain.Wallet),
		payouts:  make(map[uuid.UUID]*domain.PayoutRequest),
		vendors:  make(map[uuid.UUID]*domain.Vendor),
	}
}

// Begin implements ports.DBTransactor.
func (s *Store) Begin(ctx context.Context) (pgx.Tx, error) {
	s.mu.Lock()
	return &memTx{store: s}, nil
}

// acquire locks the store unless tx is an open transaction of this store.
// The returned func releases whatever was taken.
func (s *Store) acquire(tx pgx.Tx) func() {
	if t, ok := tx.(*memTx); ok && t.store == s && !t.done {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// onRollback registers an undo step when running inside a transaction.
func (s *Store) onRollback(tx pgx.Tx, undo func()) {
	if t, ok := tx.(*memTx); ok && t.store == s && !t.done {
		t.undo = append(t.undo, undo)
	}
}

// PutOrder inserts or replaces an order. Orders are owned by the ordering
// system; this is how they enter the store.
func (s *Store) PutOrder(o domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = &o
}

// PutVendor inserts or replaces a vendor.
func (s *Store) PutVendor(v domain.Vendor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vendors[v.ID] = &v
}

// AuditLogs returns a copy of the recorded audit entries.
func (s *Store) AuditLogs() []domain.AuditLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.AuditLog(nil), s.audits...)
}

// memTx implements the parts of pgx.Tx the services use.
type memTx struct {
	pgx.Tx
	store *Store
	undo  []func()
	done  bool
}

func (t *memTx) Commit(ctx context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	t.undo = nil
	t.store.mu.Unlock()
	return nil
}

func (t *memTx) Rollback(ctx context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.done = true
	t.undo = nil
	t.store.mu.Unlock()
	return nil
}

func cloneOrder(o *domain.Order) *domain.Order {
	cp := *o
	return &cp
}

func clonePayout(p *domain.PayoutRequest) *domain.PayoutRequest {
	cp := *p
	return &cp
}

func cloneVendor(v *domain.Vendor) *domain.Vendor {
	cp := *v
	return &cp
}
