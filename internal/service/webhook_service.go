package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"marketplace-payments/internal/core/domain"
	"marketplace-payments/internal/core/ports"
	"marketplace-payments/pkg/apperror"
	"marketplace-payments/pkg/metrics"

	"github.com/rs/zerolog"
)

// processedChargeTTL bounds how long a handled reference stays in the
// replay cache. The processor stops retrying well before this.
const processedChargeTTL = 72 * time.Hour

// WebhookServiceImpl implements ports.WebhookService for processor events.
type WebhookServiceImpl struct {
	orderRepo  ports.OrderRepository
	ledger     ports.LedgerService
	transactor ports.DBTransactor
	sigSvc     ports.SignatureService
	cache      ports.IdempotencyCache
	secret     string
	metrics    *metrics.PaymentMetrics
	log        zerolog.Logger
	now        func() time.Time
}

// NewWebhookService creates a new WebhookServiceImpl. cache may be nil.
func NewWebhookService(
	orderRepo ports.OrderRepository,
	ledger ports.LedgerService,
	transactor ports.DBTransactor,
	sigSvc ports.SignatureService,
	cache ports.IdempotencyCache,
	secret string,
	m *metrics.PaymentMetrics,
	log zerolog.Logger,
) *WebhookServiceImpl {
	return &WebhookServiceImpl{
		orderRepo:  orderRepo,
		ledger:     ledger,
		transactor: transactor,
		sigSvc:     sigSvc,
		cache:      cache,
		secret:     secret,
		metrics:    m,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle authenticates and applies one webhook delivery. Deliveries may be
// repeated or concurrent; each paid order is credited exactly once.
func (s *WebhookServiceImpl) Handle(ctx context.Context, body []byte, signature string) (domain.WebhookOutcome, error) {
	if !s.sigSvc.Verify(s.secret, body, signature) {
		s.metrics.IncWebhook("unauthorized")
		return "", apperror.ErrInvalidSignature()
	}

	// Past this point every delivery is authentic, so anything unusable is
	// acknowledged and dropped rather than retried by the processor.
	var evt domain.ChargeEvent
	if err := json.Unmarshal(body, &evt); err != nil {
		s.log.Warn().Err(err).Int("body_bytes", len(body)).Msg("ignoring undecodable webhook payload")
		s.metrics.IncWebhook("malformed")
		return domain.WebhookIgnored, nil
	}
	if evt.Event != domain.EventChargeSuccess {
		s.log.Debug().Str("event", evt.Event).Msg("ignoring webhook event")
		return s.done(domain.WebhookIgnored), nil
	}

	reference := strings.TrimSpace(evt.Data.Reference)
	if reference == "" {
		s.log.Warn().Str("event", evt.Event).Msg("ignoring charge event without reference")
		s.metrics.IncWebhook("malformed")
		return domain.WebhookIgnored, nil
	}
	log := s.log.With().Str("reference", reference).Logger()

	if s.seen(ctx, reference, log) {
		return s.done(domain.WebhookDuplicate), nil
	}

	order, err := s.orderRepo.GetByPaymentReference(ctx, reference)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("lookup order by reference: %w", err))
	}
	if order == nil {
		log.Warn().Msg("charge for unknown reference")
		return s.done(domain.WebhookIgnored), nil
	}
	log = log.With().Str("order_id", order.ID.String()).Str("vendor_id", order.VendorID.String()).Logger()

	if order.IsPaid() {
		s.remember(ctx, reference, log)
		return s.done(domain.WebhookDuplicate), nil
	}

	amount := domain.ToMinorUnits(order.TotalAmount)
	if evt.Data.Amount != 0 && evt.Data.Amount != amount {
		log.Warn().
			Int64("event_amount", evt.Data.Amount).
			Int64("order_amount", amount).
			Msg("charged amount differs from order total; crediting order total")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	changed, err := s.orderRepo.MarkPaid(ctx, dbTx, order.ID, evt.Data.PaidAtOr(s.now()))
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("mark order paid: %w", err))
	}
	if !changed {
		_ = dbTx.Rollback(ctx)
		s.remember(ctx, reference, log)
		return s.done(domain.WebhookDuplicate), nil
	}

	if amount > 0 {
		if _, err := s.ledger.Credit(ctx, dbTx, ports.CreditRequest{
			VendorID: order.VendorID,
			OrderID:  order.ID,
			Amount:   amount,
		}); err != nil {
			return "", err
		}
	} else {
		log.Warn().Str("total", order.TotalAmount.String()).Msg("paid order has no positive total; nothing credited")
	}

	if err := dbTx.Commit(ctx); err != nil {
		return "", apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.remember(ctx, reference, log)
	log.Info().Int64("amount", amount).Msg("order payment recorded")
	return s.done(domain.WebhookProcessed), nil
}

func (s *WebhookServiceImpl) done(outcome domain.WebhookOutcome) domain.WebhookOutcome {
	s.metrics.IncWebhook(string(outcome))
	return outcome
}

// seen consults the replay cache. It only short-circuits deliveries the
// database already settled, so a cache miss or failure falls through.
func (s *WebhookServiceImpl) seen(ctx context.Context, reference string, log zerolog.Logger) bool {
	if s.cache == nil {
		return false
	}
	cached, err := s.cache.Get(ctx, chargeCacheKey(reference))
	if err != nil {
		log.Warn().Err(err).Msg("redis replay check failed, falling through to DB")
		return false
	}
	return cached != nil
}

func (s *WebhookServiceImpl) remember(ctx context.Context, reference string, log zerolog.Logger) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, chargeCacheKey(reference), []byte(domain.WebhookProcessed), processedChargeTTL); err != nil {
		log.Warn().Err(err).Msg("failed to cache processed charge")
	}
}

func chargeCacheKey(reference string) string {
	return "charge:" + reference
}
