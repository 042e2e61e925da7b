package memory

import (
	"context"
	"fmt"
	"time"

	"marketplace-payments/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OrderRepo implements ports.OrderRepository.
type OrderRepo struct {
	s *Store
}

// Orders returns the order repository of the store.
func (s *Store) Orders() *OrderRepo {
	return &OrderRepo{s: s}
}

func (r *OrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	defer r.s.acquire(nil)()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	return cloneOrder(o), nil
}

func (r *OrderRepo) GetByPaymentReference(ctx context.Context, reference string) (*domain.Order, error) {
	defer r.s.acquire(nil)()
	for _, o := range r.s.orders {
		if o.PaymentReference != nil && *o.PaymentReference == reference {
			return cloneOrder(o), nil
		}
	}
	if a, ok := r.s.attempts[reference]; ok {
		if o, ok := r.s.orders[a.OrderID]; ok {
			return cloneOrder(o), nil
		}
	}
	return nil, nil
}

func (r *OrderRepo) SavePaymentReference(ctx context.Context, tx pgx.Tx, attempt *domain.PaymentAttempt) error {
	defer r.s.acquire(tx)()
	o, ok := r.s.orders[attempt.OrderID]
	if !ok {
		return fmt.Errorf("save payment reference: order %s not found", attempt.OrderID)
	}
	if _, exists := r.s.attempts[attempt.Reference]; exists {
		return fmt.Errorf("save payment reference: %w", domain.ErrDuplicateEntry)
	}

	prev := *o
	ref := attempt.Reference
	method := domain.PaymentMethodPaystack
	o.PaymentReference = &ref
	o.PaymentMethod = &method
	r.s.attempts[ref] = *attempt

	r.s.onRollback(tx, func() {
		*o = prev
		delete(r.s.attempts, ref)
	})
	return nil
}

func (r *OrderRepo) MarkPaid(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, paidAt time.Time) (bool, error) {
	defer r.s.acquire(tx)()
	o, ok := r.s.orders[orderID]
	if !ok || o.PaymentStatus == domain.PaymentStatusPaid {
		return false, nil
	}

	prev := *o
	at := paidAt
	o.PaymentStatus = domain.PaymentStatusPaid
	o.PaidAt = &at
	if o.Status == domain.OrderStatusAwaitingPayment {
		o.Status = domain.OrderStatusPaid
	}

	r.s.onRollback(tx, func() { *o = prev })
	return true, nil
}
