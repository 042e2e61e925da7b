package handler

import (
	"net/http"

	"marketplace-payments/internal/adapter/http/middleware"
	redisStore "marketplace-payments/internal/adapter/storage/redis"
	"marketplace-payments/internal/core/domain"
	"marketplace-payments/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// APIPrefix is the path prefix of every versioned route.
const APIPrefix = "/api/v1"

// maxBodyBytes bounds request bodies, webhooks included.
const maxBodyBytes = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	LedgerSvc      ports.LedgerService
	PayoutSvc      ports.PayoutService
	TransferSvc    ports.TransferService
	WebhookSvc     ports.WebhookService
	CheckoutSvc    ports.CheckoutService
	BankSvc        ports.BankService
	VendorSvc      ports.VendorService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	MetricsHandler http.Handler       // nil = /metrics not exposed
	MetricsPath    string
	Mode           string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	}
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBodyBytes))

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc, APIPrefix))
	}

	// Health check (deep: verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	if deps.MetricsHandler != nil {
		path := deps.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(deps.MetricsHandler))
	}

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group(APIPrefix)

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	customer := middleware.RequireRole(domain.RoleCustomer)
	vendor := middleware.RequireRole(domain.RoleVendor)
	admin := middleware.RequireRole(domain.RoleAdmin)
	vendorOrAdmin := middleware.RequireRole(domain.RoleVendor, domain.RoleAdmin)

	// --- Payments ---
	paymentHandler := NewPaymentHandler(deps.CheckoutSvc, deps.WebhookSvc, deps.BankSvc, deps.Logger)
	payments := v1.Group("/payments")
	{
		// Authenticated by signature, not token. Not rate limited: the processor
		// delivers from a handful of addresses and must always be acknowledged.
		payments.POST("/webhook", paymentHandler.Webhook)

		payments.POST("/initialize", jwtAuth, customer, rl("checkout"), paymentHandler.Initialize)
		payments.GET("/banks", jwtAuth, vendorOrAdmin, rl("read"), paymentHandler.ListBanks)
		payments.POST("/resolve-account", jwtAuth, vendorOrAdmin, rl("bank_lookup"), paymentHandler.ResolveAccount)
	}

	// --- Payouts ---
	payoutHandler := NewPayoutHandler(deps.PayoutSvc, deps.TransferSvc)
	payouts := v1.Group("/payouts", jwtAuth)
	{
		payouts.POST("", vendor, rl("payout_request"), payoutHandler.Create)
		payouts.GET("", vendorOrAdmin, rl("read"), payoutHandler.List)
		payouts.GET("/:id", vendorOrAdmin, rl("read"), payoutHandler.Get)
		payouts.POST("/:id/cancel", vendor, rl("payout_request"), payoutHandler.Cancel)

		payouts.POST("/transfer", admin, rl("payout_admin"), payoutHandler.Transfer)
		payouts.POST("/:id/approve", admin, rl("payout_admin"), payoutHandler.Approve)
		payouts.POST("/:id/reject", admin, rl("payout_admin"), payoutHandler.Reject)
		payouts.POST("/:id/reconcile", admin, rl("payout_admin"), payoutHandler.Reconcile)
		payouts.POST("/:id/release", admin, rl("payout_admin"), payoutHandler.Release)
	}

	// --- Wallet & vendor profile ---
	walletHandler := NewWalletHandler(deps.LedgerSvc)
	vendorHandler := NewVendorHandler(deps.VendorSvc)

	v1.GET("/wallet", jwtAuth, vendor, rl("read"), walletHandler.GetWallet)

	vendorProfile := v1.Group("/vendor", jwtAuth, vendor)
	{
		vendorProfile.GET("/bank-details", rl("read"), vendorHandler.GetBankDetails)
		vendorProfile.PUT("/bank-details", rl("bank_lookup"), vendorHandler.UpdateBankDetails)
	}

	adminGroup := v1.Group("/admin", jwtAuth, admin)
	{
		adminGroup.GET("/vendors/:id/ledger/verify", rl("payout_admin"), walletHandler.VerifyLedger)
	}

	return r
}
