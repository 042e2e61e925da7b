package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus tracks whether an order has been paid for.
type PaymentStatus string

const (
	PaymentStatusAwaiting PaymentStatus = "awaiting_payment"
	PaymentStatusPaid     PaymentStatus = "paid"
)

// Fulfilment statuses this service moves between. Everything after "paid" is
// owned by the ordering system.
const (
	OrderStatusAwaitingPayment = "awaiting_payment"
	OrderStatusPaid            = "paid"
)

// PaymentMethodPaystack is recorded on orders paid through the processor.
const PaymentMethodPaystack = "paystack"

// Order is the slice of a marketplace order that payments reads and writes.
type Order struct {
	ID               uuid.UUID       `json:"id"`
	CustomerID       uuid.UUID       `json:"customer_id"`
	VendorID         uuid.UUID       `json:"vendor_id"`
	TotalAmount      decimal.Decimal `json:"total_amount"` // major units
	Status           string          `json:"status"`
	PaymentStatus    PaymentStatus   `json:"payment_status"`
	PaymentReference *string         `json:"payment_reference,omitempty"`
	PaymentMethod    *string         `json:"payment_method,omitempty"`
	PaidAt           *time.Time      `json:"paid_at,omitempty"`
}

// IsPaid reports whether the order's payment has been recorded.
func (o *Order) IsPaid() bool {
	return o.PaymentStatus == PaymentStatusPaid
}

// PaymentAttempt records a checkout reference issued for an order.
type PaymentAttempt struct {
	Reference string    `json:"reference"`
	OrderID   uuid.UUID `json:"order_id"`
	CreatedAt time.Time `json:"created_at"`
}
