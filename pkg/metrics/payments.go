package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "marketplace_payments"

// PaymentMetrics records money-movement events. A nil *PaymentMetrics is a
// valid no-op recorder.
type PaymentMetrics struct {
	webhookEvents     *prometheus.CounterVec
	transfers         *prometheus.CounterVec
	partialFailures   *prometheus.CounterVec
	ledgerMovements   *prometheus.CounterVec
	processorDuration *prometheus.HistogramVec
}

// NewPaymentMetrics registers the payment metrics on the provided registerer.
func NewPaymentMetrics(reg prometheus.Registerer) *PaymentMetrics {
	if reg == nil {
		return &PaymentMetrics{}
	}
	webhookEvents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhook_events_total",
		Help:      "Processor webhook events by outcome.",
	}, []string{"outcome"})
	transfers := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payout_transfers_total",
		Help:      "Payout transfer attempts by result.",
	}, []string{"result"})
	partialFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "partial_failures_total",
		Help:      "External side effects that succeeded without a local commit.",
	}, []string{"operation"})
	ledgerMovements := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ledger_movements_total",
		Help:      "Posted ledger transactions by kind.",
	}, []string{"kind"})
	processorDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "processor_request_duration_seconds",
		Help:      "Duration of payment processor API calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "outcome"})
	reg.MustRegister(webhookEvents, transfers, partialFailures, ledgerMovements, processorDuration)
	return &PaymentMetrics{
		webhookEvents:     webhookEvents,
		transfers:         transfers,
		partialFailures:   partialFailures,
		ledgerMovements:   ledgerMovements,
		processorDuration: processorDuration,
	}
}

// IncWebhook counts a handled webhook event.
func (m *PaymentMetrics) IncWebhook(outcome string) {
	if m == nil || m.webhookEvents == nil {
		return
	}
	m.webhookEvents.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// IncTransfer counts a finished transfer run.
func (m *PaymentMetrics) IncTransfer(result string) {
	if m == nil || m.transfers == nil {
		return
	}
	m.transfers.WithLabelValues(normalizeLabel(result)).Inc()
}

// IncPartialFailure counts an operation that needs manual reconciliation.
func (m *PaymentMetrics) IncPartialFailure(operation string) {
	if m == nil || m.partialFailures == nil {
		return
	}
	m.partialFailures.WithLabelValues(normalizeLabel(operation)).Inc()
}

// IncLedger counts a posted ledger transaction.
func (m *PaymentMetrics) IncLedger(kind string) {
	if m == nil || m.ledgerMovements == nil {
		return
	}
	m.ledgerMovements.WithLabelValues(normalizeLabel(kind)).Inc()
}

// ObserveProcessor records the duration of one processor call.
func (m *PaymentMetrics) ObserveProcessor(operation string, err error, duration time.Duration) {
	if m == nil || m.processorDuration == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.processorDuration.WithLabelValues(normalizeLabel(operation), outcome).Observe(duration.Seconds())
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
