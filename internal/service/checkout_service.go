package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"marketplace-payments/internal/core/domain"
	"marketplace-payments/internal/core/ports"
	"marketplace-payments/pkg/apperror"
	"marketplace-payments/pkg/metrics"

	"github.com/rs/zerolog"
)

// CheckoutServiceImpl implements ports.CheckoutService.
type CheckoutServiceImpl struct {
	orderRepo   ports.OrderRepository
	transactor  ports.DBTransactor
	processor   ports.PaymentProcessor
	currency    string
	callbackURL string
	metrics     *metrics.PaymentMetrics
	log         zerolog.Logger
	now         func() time.Time
}

// NewCheckoutService creates a new CheckoutServiceImpl.
func NewCheckoutService(
	orderRepo ports.OrderRepository,
	transactor ports.DBTransactor,
	processor ports.PaymentProcessor,
	currency string,
	callbackURL string,
	m *metrics.PaymentMetrics,
	log zerolog.Logger,
) *CheckoutServiceImpl {
	return &CheckoutServiceImpl{
		orderRepo:   orderRepo,
		transactor:  transactor,
		processor:   processor,
		currency:    currency,
		callbackURL: callbackURL,
		metrics:     m,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Initiate opens a hosted checkout for an unpaid order owned by the payer.
// Every call issues a new reference; earlier references of the same order
// stay valid for the webhook.
func (s *CheckoutServiceImpl) Initiate(ctx context.Context, req ports.InitiateRequest) (*domain.Checkout, error) {
	order, err := s.orderRepo.GetByID(ctx, req.OrderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get order: %w", err))
	}
	// Orders of other customers are reported as missing.
	if order == nil || order.CustomerID != req.Payer.UserID {
		return nil, apperror.ErrNotFound("Order")
	}
	if order.IsPaid() {
		return nil, apperror.Conflict("Order is already paid")
	}

	amount := domain.ToMinorUnits(order.TotalAmount)
	if amount <= 0 {
		return nil, apperror.Validation("Order total must be greater than zero")
	}
	email := strings.TrimSpace(req.Payer.Email)
	if email == "" {
		return nil, apperror.Validation("Payer email is required")
	}

	reference := domain.NewOrderReference(order.ID, s.now())
	log := s.log.With().Str("order_id", order.ID.String()).Str("reference", reference).Logger()

	started := time.Now()
	checkout, err := s.processor.InitializeTransaction(ctx, domain.InitializeParams{
		Email:       email,
		Amount:      amount,
		Reference:   reference,
		Currency:    s.currency,
		CallbackURL: s.callbackURL,
		Metadata: map[string]string{
			"order_id": order.ID.String(),
			"user_id":  req.Payer.UserID.String(),
		},
	})
	s.metrics.ObserveProcessor("initialize", err, time.Since(started))
	if err != nil {
		log.Warn().Err(err).Msg("payment initialization failed")
		return nil, processorError("Failed to initialize payment", err)
	}
	if checkout.AuthorizationURL == "" {
		return nil, apperror.ExternalProcessor("Processor returned no authorization URL", nil, nil)
	}

	if err := s.saveAttempt(context.WithoutCancel(ctx), &domain.PaymentAttempt{
		Reference: reference,
		OrderID:   order.ID,
		CreatedAt: s.now(),
	}); err != nil {
		s.metrics.IncPartialFailure("checkout")
		log.Error().Err(err).
			Str("authorization_url", checkout.AuthorizationURL).
			Msg("checkout initialized but reference not saved; webhook will not correlate")
		return nil, apperror.PartialFailure(
			"Payment initialized but the reference could not be saved",
			map[string]any{
				"reference":         reference,
				"authorization_url": checkout.AuthorizationURL,
			},
			err,
		)
	}

	log.Info().Int64("amount", amount).Msg("checkout initialized")
	return &domain.Checkout{
		AuthorizationURL: checkout.AuthorizationURL,
		AccessCode:       checkout.AccessCode,
		Reference:        reference,
	}, nil
}

func (s *CheckoutServiceImpl) saveAttempt(ctx context.Context, attempt *domain.PaymentAttempt) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.orderRepo.SavePaymentReference(ctx, dbTx, attempt); err != nil {
		return err
	}
	return dbTx.Commit(ctx)
}
