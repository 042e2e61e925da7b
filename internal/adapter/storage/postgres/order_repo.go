package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace-payments/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const orderColumns = `o.id, o.customer_id, o.vendor_id, o.total_amount::text, o.status, o.payment_status,
	o.payment_reference, o.payment_method, o.paid_at`

// OrderRepo implements ports.OrderRepository.
type OrderRepo struct {
	pool Pool
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(pool Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	o := &domain.Order{}
	var total string
	var paymentStatus string
	err := row.Scan(
		&o.ID, &o.CustomerID, &o.VendorID, &total, &o.Status, &paymentStatus,
		&o.PaymentReference, &o.PaymentMethod, &o.PaidAt,
	)
	if err != nil {
		return nil, err
	}
	o.PaymentStatus = domain.PaymentStatus(paymentStatus)
	o.TotalAmount, err = decimal.NewFromString(total)
	if err != nil {
		return nil, fmt.Errorf("parse total_amount %q: %w", total, err)
	}
	return o, nil
}

// GetByID fetches an order by its UUID.
func (r *OrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders o WHERE o.id = $1`

	o, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by id: %w", err)
	}
	return o, nil
}

// GetByPaymentReference resolves a checkout reference, including references
// of earlier attempts, to its order.
func (r *OrderRepo) GetByPaymentReference(ctx context.Context, reference string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders o
		WHERE o.payment_reference = $1
		   OR o.id = (SELECT a.order_id FROM payment_attempts a WHERE a.reference = $1)
		LIMIT 1`

	o, err := scanOrder(r.pool.QueryRow(ctx, query, reference))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by payment reference: %w", err)
	}
	return o, nil
}

// SavePaymentReference records a checkout attempt and makes it the order's
// current reference.
func (r *OrderRepo) SavePaymentReference(ctx context.Context, tx pgx.Tx, attempt *domain.PaymentAttempt) error {
	q := on(r.pool, tx)

	_, err := q.Exec(ctx,
		`INSERT INTO payment_attempts (reference, order_id, created_at) VALUES ($1, $2, $3)`,
		attempt.Reference, attempt.OrderID, attempt.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert payment attempt: %w", domain.ErrDuplicateEntry)
		}
		return fmt.Errorf("insert payment attempt: %w", err)
	}

	tag, err := q.Exec(ctx,
		`UPDATE orders SET payment_reference = $1, payment_method = $2 WHERE id = $3`,
		attempt.Reference, domain.PaymentMethodPaystack, attempt.OrderID,
	)
	if err != nil {
		return fmt.Errorf("update order payment reference: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order not found: %s", attempt.OrderID)
	}
	return nil
}

// MarkPaid flips the order to paid unless it already is. The fulfilment
// status only advances from awaiting_payment.
func (r *OrderRepo) MarkPaid(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, paidAt time.Time) (bool, error) {
	query := `UPDATE orders
		SET payment_status = $1,
		    paid_at = $2,
		    status = CASE WHEN status = $3 THEN $4 ELSE status END
		WHERE id = $5 AND payment_status <> $1`

	tag, err := on(r.pool, tx).Exec(ctx, query,
		string(domain.PaymentStatusPaid), paidAt,
		domain.OrderStatusAwaitingPayment, domain.OrderStatusPaid, orderID,
	)
	if err != nil {
		return false, fmt.Errorf("mark order paid: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
