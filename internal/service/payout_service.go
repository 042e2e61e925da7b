package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"marketplace-payments/internal/core/domain"
	"marketplace-payments/internal/core/ports"
	"marketplace-payments/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const defaultPayoutListLimit = 200

// PayoutServiceImpl implements ports.PayoutService.
type PayoutServiceImpl struct {
	payoutRepo   ports.PayoutRepository
	ledgerRepo   ports.LedgerRepository
	ledger       ports.LedgerService
	transactor   ports.DBTransactor
	maxListLimit int
	log          zerolog.Logger
	now          func() time.Time
}

// NewPayoutService creates a new PayoutServiceImpl.
func NewPayoutService(
	payoutRepo ports.PayoutRepository,
	ledgerRepo ports.LedgerRepository,
	ledger ports.LedgerService,
	transactor ports.DBTransactor,
	maxListLimit int,
	log zerolog.Logger,
) *PayoutServiceImpl {
	if maxListLimit <= 0 {
		maxListLimit = 500
	}
	return &PayoutServiceImpl{
		payoutRepo:   payoutRepo,
		ledgerRepo:   ledgerRepo,
		ledger:       ledger,
		transactor:   transactor,
		maxListLimit: maxListLimit,
		log:          log,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Create opens a pending request. The amount must fit in the vendor's
// available balance; the wallet row is locked so concurrent requests are
// checked one after the other.
func (s *PayoutServiceImpl) Create(ctx context.Context, vendorID uuid.UUID, amount int64) (*domain.PayoutRequest, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.ledgerRepo.GetWalletForUpdate(ctx, dbTx, vendorID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	var balance int64
	if wallet != nil {
		balance = wallet.Balance
	}

	outstanding, err := s.payoutRepo.SumOutstanding(ctx, dbTx, vendorID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("sum outstanding payouts: %w", err))
	}

	available := balance - outstanding
	if amount > available {
		return nil, apperror.ErrInsufficientFunds().WithDetails("available", available)
	}

	p := &domain.PayoutRequest{
		ID:          uuid.New(),
		VendorID:    vendorID,
		Amount:      amount,
		Status:      domain.PayoutStatusPending,
		RequestedAt: s.now(),
	}
	if err := s.payoutRepo.Create(ctx, dbTx, p); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create payout request: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("payout_id", p.ID.String()).
		Str("vendor_id", vendorID.String()).
		Int64("amount", amount).
		Msg("payout requested")
	return p, nil
}

// Approve moves a pending request to approved.
func (s *PayoutServiceImpl) Approve(ctx context.Context, id, admin uuid.UUID) (*domain.PayoutRequest, error) {
	p, err := s.payoutRepo.Transition(ctx, nil, domain.PayoutTransition{
		ID:    id,
		From:  []domain.PayoutStatus{domain.PayoutStatusPending},
		To:    domain.PayoutStatusApproved,
		Actor: admin,
		At:    s.now(),
	})
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("approve payout: %w", err))
	}
	if p == nil {
		return nil, s.transitionMiss(ctx, id, "pending", false)
	}
	s.log.Info().Str("payout_id", id.String()).Str("admin", admin.String()).Msg("payout approved")
	return p, nil
}

// Reject closes a pending or approved request. An approved request can only
// be rejected while no transfer run holds it.
func (s *PayoutServiceImpl) Reject(ctx context.Context, id, admin uuid.UUID, reason string) (*domain.PayoutRequest, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperror.Validation("Rejection reason is required")
	}

	p, err := s.payoutRepo.Transition(ctx, nil, domain.PayoutTransition{
		ID:               id,
		From:             []domain.PayoutStatus{domain.PayoutStatusPending, domain.PayoutStatusApproved},
		To:               domain.PayoutStatusRejected,
		Actor:            admin,
		At:               s.now(),
		Reason:           &reason,
		RequireUnclaimed: true,
	})
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("reject payout: %w", err))
	}
	if p == nil {
		return nil, s.transitionMiss(ctx, id, "pending or approved", true)
	}
	s.log.Info().Str("payout_id", id.String()).Str("admin", admin.String()).Str("reason", reason).Msg("payout rejected")
	return p, nil
}

// MarkPaid records a completed transfer: approved to paid plus the ledger
// debit, committed together.
func (s *PayoutServiceImpl) MarkPaid(ctx context.Context, id uuid.UUID, transferReference string, actor uuid.UUID) (*domain.PayoutRequest, error) {
	transferReference = strings.TrimSpace(transferReference)
	if transferReference == "" {
		return nil, apperror.Validation("Transfer reference is required")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	p, err := s.payoutRepo.Transition(ctx, dbTx, domain.PayoutTransition{
		ID:                id,
		From:              []domain.PayoutStatus{domain.PayoutStatusApproved},
		To:                domain.PayoutStatusPaid,
		Actor:             actor,
		At:                s.now(),
		TransferReference: &transferReference,
	})
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("mark payout paid: %w", err))
	}
	if p == nil {
		_ = dbTx.Rollback(ctx)
		return nil, s.transitionMiss(ctx, id, "approved", false)
	}

	if _, err := s.ledger.Debit(ctx, dbTx, ports.DebitRequest{
		VendorID:        p.VendorID,
		PayoutRequestID: p.ID,
		Amount:          p.Amount,
	}); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("payout_id", id.String()).
		Str("vendor_id", p.VendorID.String()).
		Str("transfer_reference", transferReference).
		Int64("amount", p.Amount).
		Msg("payout marked paid")
	return p, nil
}

// Cancel lets a vendor withdraw its own pending request.
func (s *PayoutServiceImpl) Cancel(ctx context.Context, id, vendorID, actor uuid.UUID) (*domain.PayoutRequest, error) {
	current, err := s.payoutRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get payout: %w", err))
	}
	if current == nil || current.VendorID != vendorID {
		return nil, apperror.ErrNotFound("Payout request")
	}

	p, err := s.payoutRepo.Transition(ctx, nil, domain.PayoutTransition{
		ID:    id,
		From:  []domain.PayoutStatus{domain.PayoutStatusPending},
		To:    domain.PayoutStatusCancelled,
		Actor: actor,
		At:    s.now(),
	})
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("cancel payout: %w", err))
	}
	if p == nil {
		return nil, s.transitionMiss(ctx, id, "pending", false)
	}
	s.log.Info().Str("payout_id", id.String()).Str("vendor_id", vendorID.String()).Msg("payout cancelled")
	return p, nil
}

// Get returns one payout request.
func (s *PayoutServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.PayoutRequest, error) {
	p, err := s.payoutRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get payout: %w", err))
	}
	if p == nil {
		return nil, apperror.ErrNotFound("Payout request")
	}
	return p, nil
}

// ListForVendor returns a vendor's requests, newest first.
func (s *PayoutServiceImpl) ListForVendor(ctx context.Context, vendorID uuid.UUID, limit int) ([]domain.PayoutRequest, error) {
	return s.List(ctx, domain.PayoutListParams{VendorID: &vendorID, Limit: limit})
}

// List returns requests across vendors, newest first, optionally filtered
// by status.
func (s *PayoutServiceImpl) List(ctx context.Context, params domain.PayoutListParams) ([]domain.PayoutRequest, error) {
	if params.Status != nil && !params.Status.Valid() {
		return nil, apperror.Validation(fmt.Sprintf("Unknown payout status %q", *params.Status))
	}
	if params.Limit <= 0 {
		params.Limit = defaultPayoutListLimit
	}
	if params.Limit > s.maxListLimit {
		params.Limit = s.maxListLimit
	}

	list, err := s.payoutRepo.List(ctx, params)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list payouts: %w", err))
	}
	if list == nil {
		list = []domain.PayoutRequest{}
	}
	return list, nil
}

// transitionMiss explains why a conditional transition matched no row.
// claimBlocks is set for transitions that refuse claimed requests.
func (s *PayoutServiceImpl) transitionMiss(ctx context.Context, id uuid.UUID, expected string, claimBlocks bool) error {
	current, err := s.payoutRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get payout: %w", err))
	}
	if current == nil {
		return apperror.ErrNotFound("Payout request")
	}
	if claimBlocks && current.IsClaimed() && current.Status == domain.PayoutStatusApproved {
		return apperror.Conflict("Payout request has a transfer in progress")
	}
	return apperror.Conflict(fmt.Sprintf("Payout request is %s, expected %s", current.Status, expected))
}
