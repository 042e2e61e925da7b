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

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TransferServiceImpl implements ports.TransferService.
type TransferServiceImpl struct {
	payoutRepo ports.PayoutRepository
	vendorRepo ports.VendorRepository
	payouts    ports.PayoutService
	processor  ports.PaymentProcessor
	encSvc     ports.EncryptionService
	currency   string
	metrics    *metrics.PaymentMetrics
	log        zerolog.Logger
	now        func() time.Time
}

// NewTransferService creates a new TransferServiceImpl.
func NewTransferService(
	payoutRepo ports.PayoutRepository,
	vendorRepo ports.VendorRepository,
	payouts ports.PayoutService,
	processor ports.PaymentProcessor,
	encSvc ports.EncryptionService,
	currency string,
	m *metrics.PaymentMetrics,
	log zerolog.Logger,
) *TransferServiceImpl {
	return &TransferServiceImpl{
		payoutRepo: payoutRepo,
		vendorRepo: vendorRepo,
		payouts:    payouts,
		processor:  processor,
		encSvc:     encSvc,
		currency:   currency,
		metrics:    m,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Execute sends an approved payout to the vendor's bank account and records
// it as paid.
//
// The request is claimed before anything external happens, so at most one
// run can reach the processor. The claim is released when the run fails
// before money could have moved. Once the processor may have executed the
// transfer, the claim stays until an operator reconciles. A transfer held for
// OTP finalization is returned as is, with the payout still approved.
func (s *TransferServiceImpl) Execute(ctx context.Context, req ports.TransferRequest) (*domain.TransferResult, error) {
	p, err := s.payoutRepo.GetByID(ctx, req.PayoutRequestID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get payout: %w", err))
	}
	if p == nil {
		return nil, apperror.ErrNotFound("Payout request")
	}
	if p.Status != domain.PayoutStatusApproved {
		return nil, apperror.Conflict(fmt.Sprintf("Payout request is %s, only approved requests can be transferred", p.Status))
	}

	reference := domain.NewPayoutReference(p.ID, s.now())
	claimed, err := s.payoutRepo.ClaimTransfer(ctx, p.ID, reference, s.now())
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("claim payout: %w", err))
	}
	if !claimed {
		s.metrics.IncTransfer("conflict")
		return nil, apperror.Conflict("A transfer for this payout request is already in progress")
	}

	log := s.log.With().
		Str("payout_id", p.ID.String()).
		Str("vendor_id", p.VendorID.String()).
		Str("reference", reference).
		Logger()

	release := func() {
		if _, err := s.payoutRepo.ReleaseTransfer(context.WithoutCancel(ctx), p.ID, reference); err != nil {
			log.Error().Err(err).Msg("failed to release transfer claim")
		}
	}

	vendor, err := s.vendorRepo.GetByID(ctx, p.VendorID)
	if err != nil {
		release()
		return nil, apperror.InternalError(fmt.Errorf("get vendor: %w", err))
	}
	if vendor == nil {
		release()
		return nil, apperror.ErrNotFound("Vendor")
	}

	recipient, err := s.ensureRecipient(ctx, vendor, log)
	if err != nil {
		release()
		s.metrics.IncTransfer("recipient_failed")
		return nil, err
	}

	started := time.Now()
	result, err := s.processor.InitiateTransfer(ctx, domain.TransferParams{
		Amount:        p.Amount,
		RecipientCode: recipient,
		Reference:     reference,
		Reason:        domain.PayoutReason(p.ID),
	})
	s.metrics.ObserveProcessor("transfer", err, time.Since(started))
	if err != nil {
		if definitelyRejected(err) {
			release()
			s.metrics.IncTransfer("rejected")
			log.Warn().Err(err).Msg("transfer rejected by processor")
		} else {
			s.metrics.IncTransfer("unknown")
			log.Error().Err(err).Msg("transfer outcome unknown; claim kept until an operator confirms")
		}
		return nil, processorError("Transfer failed", err)
	}

	if result.Reference == "" {
		result.Reference = reference
	}
	if result.TransferCode == "" {
		result.TransferCode = result.Reference
	}

	// Nothing has moved yet. The claim stays so no second transfer is sent
	// while this one waits for finalization.
	if result.AwaitingOTP() {
		s.metrics.IncTransfer("awaiting_otp")
		log.Warn().
			Str("transfer_code", result.TransferCode).
			Int64("amount", p.Amount).
			Msg("transfer awaiting OTP finalization; payout left approved")
		return result, nil
	}

	// Money may have moved; the local record must not depend on the caller
	// staying connected.
	if _, err := s.payouts.MarkPaid(context.WithoutCancel(ctx), p.ID, result.TransferCode, req.Actor); err != nil {
		s.metrics.IncTransfer("partial_failure")
		s.metrics.IncPartialFailure("transfer")
		log.Error().Err(err).
			Str("transfer_code", result.TransferCode).
			Str("transfer_status", result.Status).
			Int64("amount", p.Amount).
			Msg("transfer initiated but payout not marked paid; manual reconciliation required")
		return nil, apperror.PartialFailure(
			"Transfer initiated but failed to mark payout as paid",
			map[string]any{
				"transfer_code": result.TransferCode,
				"reference":     result.Reference,
				"status":        result.Status,
			},
			err,
		)
	}

	s.metrics.IncTransfer("success")
	log.Info().
		Str("transfer_code", result.TransferCode).
		Str("transfer_status", result.Status).
		Int64("amount", p.Amount).
		Msg("payout transferred")
	return result, nil
}

// ensureRecipient returns the vendor's transfer recipient, creating it on
// first use.
func (s *TransferServiceImpl) ensureRecipient(ctx context.Context, vendor *domain.Vendor, log zerolog.Logger) (string, error) {
	if vendor.RecipientCode != nil && *vendor.RecipientCode != "" {
		return *vendor.RecipientCode, nil
	}

	if missing := vendor.MissingBankFields(); len(missing) > 0 {
		return "", apperror.Validation(fmt.Sprintf("Vendor bank details incomplete: missing %s", strings.Join(missing, ", "))).
			WithDetails("missing", missing)
	}

	accountNumber, err := s.encSvc.Decrypt(vendor.AccountNumberEnc)
	if err != nil {
		return "", apperror.ErrEncryptionFailure(fmt.Errorf("decrypt account number: %w", err))
	}

	started := time.Now()
	code, err := s.processor.CreateTransferRecipient(ctx, domain.RecipientParams{
		Name:          vendor.AccountName,
		AccountNumber: accountNumber,
		BankCode:      vendor.BankCode,
		Currency:      s.currency,
		Metadata:      map[string]string{"vendor_id": vendor.ID.String()},
	})
	s.metrics.ObserveProcessor("create_recipient", err, time.Since(started))
	if err != nil {
		return "", processorError("Failed to create transfer recipient", err)
	}
	if code == "" {
		return "", apperror.ExternalProcessor("Processor returned no recipient code", nil, nil)
	}

	saved, err := s.vendorRepo.SaveRecipientCode(ctx, vendor, code)
	switch {
	case err != nil:
		log.Warn().Err(err).Msg("failed to store recipient code")
	case !saved:
		log.Info().Msg("bank details changed while creating recipient; code not stored")
	}
	return code, nil
}

// Reconcile records a transfer an operator has confirmed with the processor.
func (s *TransferServiceImpl) Reconcile(ctx context.Context, id uuid.UUID, transferReference string, actor uuid.UUID) (*domain.PayoutRequest, error) {
	p, err := s.payouts.MarkPaid(ctx, id, transferReference, actor)
	if err != nil {
		return nil, err
	}
	s.log.Warn().
		Str("payout_id", id.String()).
		Str("transfer_reference", transferReference).
		Str("actor", actor.String()).
		Msg("payout reconciled manually")
	return p, nil
}

// ReleaseClaim clears a transfer claim after an operator confirmed with the
// processor that no money moved.
func (s *TransferServiceImpl) ReleaseClaim(ctx context.Context, id, actor uuid.UUID) error {
	p, err := s.payoutRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get payout: %w", err))
	}
	if p == nil {
		return apperror.ErrNotFound("Payout request")
	}
	if p.Status != domain.PayoutStatusApproved || !p.IsClaimed() {
		return apperror.Conflict("Payout request has no transfer in progress")
	}

	released, err := s.payoutRepo.ReleaseTransfer(ctx, id, "")
	if err != nil {
		return apperror.InternalError(fmt.Errorf("release claim: %w", err))
	}
	if !released {
		return apperror.Conflict("Payout request has no transfer in progress")
	}

	s.log.Warn().
		Str("payout_id", id.String()).
		Str("attempt", *p.TransferAttempt).
		Str("actor", actor.String()).
		Msg("transfer claim released manually")
	return nil
}
