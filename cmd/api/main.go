package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketplace-payments/config"
	httpHandler "marketplace-payments/internal/adapter/http/handler"
	"marketplace-payments/internal/adapter/paystack"
	"marketplace-payments/internal/adapter/storage/memory"
	pgStorage "marketplace-payments/internal/adapter/storage/postgres"
	redisStorage "marketplace-payments/internal/adapter/storage/redis"
	"marketplace-payments/internal/core/ports"
	"marketplace-payments/internal/service"
	"marketplace-payments/pkg/logger"
	"marketplace-payments/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// repositories groups the storage ports the services are built on.
type repositories struct {
	orders     ports.OrderRepository
	ledger     ports.LedgerRepository
	payouts    ports.PayoutRepository
	vendors    ports.VendorRepository
	audit      ports.AuditRepository
	transactor ports.DBTransactor
}

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("db_driver", cfg.Database.Driver).
		Msg("Starting marketplace payments")

	ctx := context.Background()
	var healthCheckers []ports.HealthChecker

	// Storage
	var repos repositories
	switch cfg.Database.Driver {
	case "memory":
		log.Warn().Msg("Using in-memory storage; data is lost on restart")
		store := memory.NewStore()
		repos = repositories{
			orders:     store.Orders(),
			ledger:     store.Ledger(),
			payouts:    store.Payouts(),
			vendors:    store.Vendors(),
			audit:      store.Audit(),
			transactor: store,
		}
	default:
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		log.Info().Msg("PostgreSQL connected")

		repos = repositories{
			orders:     pgStorage.NewOrderRepo(pool),
			ledger:     pgStorage.NewLedgerRepo(pool),
			payouts:    pgStorage.NewPayoutRepo(pool),
			vendors:    pgStorage.NewVendorRepo(pool),
			audit:      pgStorage.NewAuditRepo(pool),
			transactor: pgStorage.NewTransactor(pool),
		}
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
	}

	// Redis backs caches and rate limiting. Without it the service runs
	// with both disabled.
	var (
		idempotencyCache ports.IdempotencyCache
		bankCache        ports.BankCache
		rateLimitStore   *redisStorage.RateLimitStore
	)
	if cfg.Redis.Host != "" {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, caches and rate limiting disabled")
		} else {
			defer rdb.Close()
			log.Info().Msg("Redis connected")
			idempotencyCache = redisStorage.NewIdempotencyCache(rdb)
			bankCache = redisStorage.NewBankCache(rdb, cfg.Paystack.Currency)
			rateLimitStore = redisStorage.NewRateLimitStore(rdb)
			healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
		}
	}

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	paymentMetrics := metrics.NewPaymentMetrics(reg)
	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}

	// Payment processor
	processor, err := paystack.NewClient(cfg.Paystack.SecretKey, cfg.Paystack.Timeout,
		paystack.WithBaseURL(cfg.Paystack.BaseURL),
		paystack.WithLogger(logger.Component(log, "paystack")),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Paystack client")
	}

	// Initialize core services
	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("jwt.secret is required")
	}
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	sigSvc := service.NewHMACSignatureService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)

	// Initialize business services
	ledgerSvc := service.NewLedgerService(repos.ledger, repos.payouts, repos.transactor, paymentMetrics, logger.Component(log, "ledger"))
	payoutSvc := service.NewPayoutService(repos.payouts, repos.ledger, ledgerSvc, repos.transactor, cfg.Payout.MaxListLimit, logger.Component(log, "payouts"))
	transferSvc := service.NewTransferService(repos.payouts, repos.vendors, payoutSvc, processor, encSvc, cfg.Paystack.Currency, paymentMetrics, logger.Component(log, "transfer"))
	webhookSvc := service.NewWebhookService(repos.orders, ledgerSvc, repos.transactor, sigSvc, idempotencyCache, cfg.Paystack.SigningSecret(), paymentMetrics, logger.Component(log, "webhook"))
	checkoutSvc := service.NewCheckoutService(repos.orders, repos.transactor, processor, cfg.Paystack.Currency, cfg.Paystack.CallbackURL, paymentMetrics, logger.Component(log, "checkout"))
	bankSvc := service.NewBankService(processor, bankCache, cfg.Paystack.Currency, paymentMetrics, logger.Component(log, "banks"))
	vendorSvc := service.NewVendorService(repos.vendors, bankSvc, encSvc, logger.Component(log, "vendors"))
	auditSvc := service.NewAuditService(repos.audit, logger.Component(log, "audit"))

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		LedgerSvc:      ledgerSvc,
		PayoutSvc:      payoutSvc,
		TransferSvc:    transferSvc,
		WebhookSvc:     webhookSvc,
		CheckoutSvc:    checkoutSvc,
		BankSvc:        bankSvc,
		VendorSvc:      vendorSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: healthCheckers,
		AuditSvc:       auditSvc,
		MetricsHandler: metricsHandler,
		MetricsPath:    cfg.Metrics.Path,
		Mode:           cfg.Server.Mode,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
