package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"marketplace-payments/internal/core/domain"
	"marketplace-payments/internal/core/ports"
	"marketplace-payments/pkg/apperror"
	"marketplace-payments/pkg/metrics"

	"github.com/rs/zerolog"
)

const bankListTTL = 24 * time.Hour

var nubanPattern = regexp.MustCompile(`^\d{10}$`)

// BankServiceImpl implements ports.BankService.
type BankServiceImpl struct {
	processor ports.PaymentProcessor
	cache     ports.BankCache
	currency  string
	metrics   *metrics.PaymentMetrics
	log       zerolog.Logger
}

// NewBankService creates a new BankServiceImpl. cache may be nil.
func NewBankService(processor ports.PaymentProcessor, cache ports.BankCache, currency string, m *metrics.PaymentMetrics, log zerolog.Logger) *BankServiceImpl {
	return &BankServiceImpl{
		processor: processor,
		cache:     cache,
		currency:  currency,
		metrics:   m,
		log:       log,
	}
}

// ListBanks returns the processor's bank directory.
func (s *BankServiceImpl) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	if s.cache != nil {
		cached, err := s.cache.GetBanks(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("bank cache read failed")
		}
		if len(cached) > 0 {
			return cached, nil
		}
	}

	started := time.Now()
	banks, err := s.processor.ListBanks(ctx, s.currency)
	s.metrics.ObserveProcessor("list_banks", err, time.Since(started))
	if err != nil {
		return nil, processorError("Failed to fetch banks", err)
	}

	if s.cache != nil && len(banks) > 0 {
		if err := s.cache.SetBanks(ctx, banks, bankListTTL); err != nil {
			s.log.Warn().Err(err).Msg("bank cache write failed")
		}
	}
	return banks, nil
}

// ResolveAccount looks up the holder name of a NUBAN account.
func (s *BankServiceImpl) ResolveAccount(ctx context.Context, bankCode, accountNumber string) (*domain.ResolvedAccount, error) {
	bankCode = strings.TrimSpace(bankCode)
	accountNumber = strings.TrimSpace(accountNumber)
	if bankCode == "" {
		return nil, apperror.Validation("bank_code is required")
	}
	if !nubanPattern.MatchString(accountNumber) {
		return nil, apperror.Validation("account_number must be 10 digits")
	}

	started := time.Now()
	resolved, err := s.processor.ResolveAccount(ctx, accountNumber, bankCode)
	s.metrics.ObserveProcessor("resolve_account", err, time.Since(started))
	if err != nil {
		var pe *domain.ProcessorError
		if errors.As(err, &pe) && definitelyRejected(err) {
			msg := pe.Message
			if msg == "" {
				msg = "Could not resolve account"
			}
			return nil, apperror.Validation(msg)
		}
		return nil, processorError("Failed to resolve account", err)
	}
	return resolved, nil
}
