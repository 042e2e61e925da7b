package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace-payments/internal/core/domain"
	"marketplace-payments/internal/core/ports"
	"marketplace-payments/pkg/apperror"
	"marketplace-payments/pkg/metrics"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const (
	defaultStatementLimit = 20
	maxStatementLimit     = 100
)

// LedgerServiceImpl implements ports.LedgerService.
type LedgerServiceImpl struct {
	ledgerRepo ports.LedgerRepository
	payoutRepo ports.PayoutRepository
	transactor ports.DBTransactor
	metrics    *metrics.PaymentMetrics
	log        zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	ledgerRepo ports.LedgerRepository,
	payoutRepo ports.PayoutRepository,
	transactor ports.DBTransactor,
	m *metrics.PaymentMetrics,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		ledgerRepo: ledgerRepo,
		payoutRepo: payoutRepo,
		transactor: transactor,
		metrics:    m,
		log:        log,
	}
}

// Credit posts an order credit. A repeated credit for the same order
// returns the original transaction and leaves the balance alone.
func (s *LedgerServiceImpl) Credit(ctx context.Context, tx pgx.Tx, req ports.CreditRequest) (*domain.LedgerTransaction, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	var result *domain.LedgerTransaction
	posted := false
	err := s.withTx(ctx, tx, func(tx pgx.Tx) error {
		orderID := req.OrderID
		entry := &domain.LedgerTransaction{
			ID:        uuid.New(),
			VendorID:  req.VendorID,
			OrderID:   &orderID,
			Amount:    req.Amount,
			Kind:      domain.LedgerKindOrderCredit,
			Status:    domain.LedgerStatusPosted,
			CreatedAt: time.Now().UTC(),
		}

		inserted, err := s.ledgerRepo.InsertCredit(ctx, tx, entry)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("insert credit: %w", err))
		}
		if !inserted {
			existing, err := s.ledgerRepo.GetCreditByOrderID(ctx, tx, req.OrderID)
			if err != nil {
				return apperror.InternalError(fmt.Errorf("load existing credit: %w", err))
			}
			if existing == nil {
				return apperror.InternalError(fmt.Errorf("credit for order %s vanished", req.OrderID))
			}
			if existing.VendorID != req.VendorID || existing.Amount != req.Amount {
				s.log.Warn().
					Str("order_id", req.OrderID.String()).
					Str("vendor_id", req.VendorID.String()).
					Int64("amount", req.Amount).
					Int64("existing_amount", existing.Amount).
					Msg("repeated credit differs from the posted one")
			}
			result = existing
			return nil
		}

		if _, err := s.ledgerRepo.ApplyBalanceDelta(ctx, tx, req.VendorID, req.Amount); err != nil {
			return apperror.InternalError(fmt.Errorf("apply credit: %w", err))
		}
		result = entry
		posted = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if posted {
		s.metrics.IncLedger(string(domain.LedgerKindOrderCredit))
		s.log.Info().
			Str("vendor_id", req.VendorID.String()).
			Str("order_id", req.OrderID.String()).
			Int64("amount", req.Amount).
			Msg("order credit posted")
	}
	return result, nil
}

// Debit posts a payout debit. Money has already left when this runs, so a
// debit is never refused for lack of balance.
func (s *LedgerServiceImpl) Debit(ctx context.Context, tx pgx.Tx, req ports.DebitRequest) (*domain.LedgerTransaction, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	var entry *domain.LedgerTransaction
	err := s.withTx(ctx, tx, func(tx pgx.Tx) error {
		payoutID := req.PayoutRequestID
		entry = &domain.LedgerTransaction{
			ID:              uuid.New(),
			VendorID:        req.VendorID,
			PayoutRequestID: &payoutID,
			Amount:          req.Amount,
			Kind:            domain.LedgerKindPayoutDebit,
			Status:          domain.LedgerStatusPosted,
			CreatedAt:       time.Now().UTC(),
		}

		if err := s.ledgerRepo.InsertDebit(ctx, tx, entry); err != nil {
			if errors.Is(err, domain.ErrDuplicateEntry) {
				return apperror.Conflict("Payout request has already been debited")
			}
			return apperror.InternalError(fmt.Errorf("insert debit: %w", err))
		}

		balance, err := s.ledgerRepo.ApplyBalanceDelta(ctx, tx, req.VendorID, -req.Amount)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("apply debit: %w", err))
		}
		if balance < 0 {
			s.log.Warn().
				Str("vendor_id", req.VendorID.String()).
				Str("payout_id", req.PayoutRequestID.String()).
				Int64("balance", balance).
				Msg("wallet balance negative after payout debit")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncLedger(string(domain.LedgerKindPayoutDebit))
	s.log.Info().
		Str("vendor_id", req.VendorID.String()).
		Str("payout_id", req.PayoutRequestID.String()).
		Int64("amount", req.Amount).
		Msg("payout debit posted")
	return entry, nil
}

// Wallet returns the balance together with what outstanding payout requests
// have reserved.
func (s *LedgerServiceImpl) Wallet(ctx context.Context, vendorID uuid.UUID) (*domain.WalletSummary, error) {
	w, err := s.ledgerRepo.GetWallet(ctx, vendorID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	outstanding, err := s.payoutRepo.SumOutstanding(ctx, nil, vendorID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("sum outstanding payouts: %w", err))
	}

	summary := &domain.WalletSummary{VendorID: vendorID, Outstanding: outstanding}
	if w != nil {
		summary.Balance = w.Balance
	}
	summary.Available = summary.Balance - outstanding
	return summary, nil
}

// Statement returns the vendor's most recent ledger transactions.
func (s *LedgerServiceImpl) Statement(ctx context.Context, vendorID uuid.UUID, limit int) ([]domain.LedgerTransaction, error) {
	if limit <= 0 {
		limit = defaultStatementLimit
	}
	if limit > maxStatementLimit {
		limit = maxStatementLimit
	}
	txns, err := s.ledgerRepo.ListByVendor(ctx, vendorID, limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list ledger: %w", err))
	}
	return txns, nil
}

// Verify recomputes the balance from the ledger and reports drift against
// the wallet.
func (s *LedgerServiceImpl) Verify(ctx context.Context, vendorID uuid.UUID) (*domain.LedgerVerification, error) {
	totals, err := s.ledgerRepo.SumByVendor(ctx, vendorID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("sum ledger: %w", err))
	}
	w, err := s.ledgerRepo.GetWallet(ctx, vendorID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}

	v := &domain.LedgerVerification{VendorID: vendorID, Computed: totals.Credits - totals.Debits}
	if w != nil {
		v.Cached = w.Balance
	}
	v.Drift = v.Cached - v.Computed
	if v.Drift != 0 {
		s.log.Error().
			Str("vendor_id", vendorID.String()).
			Int64("cached", v.Cached).
			Int64("computed", v.Computed).
			Msg("wallet balance drifted from ledger")
	}
	return v, nil
}

// withTx runs fn inside tx, or inside a transaction of its own when tx is nil.
func (s *LedgerServiceImpl) withTx(ctx context.Context, tx pgx.Tx, fn func(pgx.Tx) error) error {
	if tx != nil {
		return fn(tx)
	}

	own, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer own.Rollback(ctx) //nolint:errcheck

	if err := fn(own); err != nil {
		return err
	}
	if err := own.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}
