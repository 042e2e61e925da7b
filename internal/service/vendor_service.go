package service

import (
	"context"
	"fmt"
	"strings"

	"marketplace-payments/internal/core/domain"
	"marketplace-payments/internal/core/ports"
	"marketplace-payments/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// VendorServiceImpl implements ports.VendorService.
type VendorServiceImpl struct {
	vendorRepo ports.VendorRepository
	banks      ports.BankService
	encSvc     ports.EncryptionService
	log        zerolog.Logger
}

// NewVendorService creates a new VendorServiceImpl.
func NewVendorService(vendorRepo ports.VendorRepository, banks ports.BankService, encSvc ports.EncryptionService, log zerolog.Logger) *VendorServiceImpl {
	return &VendorServiceImpl{
		vendorRepo: vendorRepo,
		banks:      banks,
		encSvc:     encSvc,
		log:        log,
	}
}

// UpdateBankDetails replaces the vendor's payout destination. The stored
// transfer recipient is dropped so the next payout creates a fresh one.
func (s *VendorServiceImpl) UpdateBankDetails(ctx context.Context, vendorID uuid.UUID, details domain.BankDetails) (*domain.BankDetailsView, error) {
	details.BankCode = strings.TrimSpace(details.BankCode)
	details.BankName = strings.TrimSpace(details.BankName)
	details.AccountNumber = strings.TrimSpace(details.AccountNumber)
	details.AccountName = strings.TrimSpace(details.AccountName)

	if details.BankCode == "" || details.BankName == "" {
		return nil, apperror.Validation("bank_code and bank_name are required")
	}
	if !nubanPattern.MatchString(details.AccountNumber) {
		return nil, apperror.Validation("account_number must be 10 digits")
	}

	if details.AccountName == "" {
		resolved, err := s.banks.ResolveAccount(ctx, details.BankCode, details.AccountNumber)
		if err != nil {
			return nil, err
		}
		details.AccountName = resolved.AccountName
	}

	enc, err := s.encSvc.Encrypt(details.AccountNumber)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("encrypt account number: %w", err))
	}

	ok, err := s.vendorRepo.UpdateBankDetails(ctx, &domain.Vendor{
		ID:               vendorID,
		BankName:         details.BankName,
		BankCode:         details.BankCode,
		AccountNumberEnc: enc,
		AccountName:      details.AccountName,
	})
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update bank details: %w", err))
	}
	if !ok {
		return nil, apperror.ErrNotFound("Vendor")
	}

	s.log.Info().Str("vendor_id", vendorID.String()).Str("bank_code", details.BankCode).Msg("vendor bank details updated")
	return &domain.BankDetailsView{
		BankName:      details.BankName,
		BankCode:      details.BankCode,
		AccountNumber: domain.MaskAccountNumber(details.AccountNumber),
		AccountName:   details.AccountName,
	}, nil
}

// BankDetails returns the vendor's payout destination with the account
// number masked.
func (s *VendorServiceImpl) BankDetails(ctx context.Context, vendorID uuid.UUID) (*domain.BankDetailsView, error) {
	v, err := s.vendorRepo.GetByID(ctx, vendorID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get vendor: %w", err))
	}
	if v == nil {
		return nil, apperror.ErrNotFound("Vendor")
	}

	view := &domain.BankDetailsView{
		BankName:     v.BankName,
		BankCode:     v.BankCode,
		AccountName:  v.AccountName,
		RecipientSet: v.RecipientCode != nil && *v.RecipientCode != "",
	}
	if v.AccountNumberEnc != "" {
		plain, err := s.encSvc.Decrypt(v.AccountNumberEnc)
		if err != nil {
			return nil, apperror.ErrEncryptionFailure(fmt.Errorf("decrypt account number: %w", err))
		}
		view.AccountNumber = domain.MaskAccountNumber(plain)
	}
	return view, nil
}
