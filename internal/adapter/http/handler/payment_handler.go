package handler

import (
	"io"
	"net/http"

	"marketplace-payments/internal/adapter/http/dto"
	"marketplace-payments/internal/adapter/http/middleware"
	"marketplace-payments/internal/core/ports"
	"marketplace-payments/pkg/apperror"
	"marketplace-payments/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HeaderPaystackSignature carries the HMAC-SHA512 of the raw webhook body.
const HeaderPaystackSignature = "x-paystack-signature"

// PaymentHandler handles customer checkout, processor webhooks and the
// bank directory.
type PaymentHandler struct {
	checkoutSvc ports.CheckoutService
	webhookSvc  ports.WebhookService
	bankSvc     ports.BankService
	log         zerolog.Logger
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(checkoutSvc ports.CheckoutService, webhookSvc ports.WebhookService, bankSvc ports.BankService, log zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{
		checkoutSvc: checkoutSvc,
		webhookSvc:  webhookSvc,
		bankSvc:     bankSvc,
		log:         log,
	}
}

// Webhook handles POST /payments/webhook. The body is read raw because the
// signature covers the exact bytes sent.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, bindError(err))
		return
	}

	outcome, err := h.webhookSvc.Handle(c.Request.Context(), body, c.GetHeader(HeaderPaystackSignature))
	if err != nil {
		response.Error(c, err)
		return
	}

	h.log.Debug().Str("outcome", string(outcome)).Msg("webhook acknowledged")
	c.JSON(http.StatusOK, dto.WebhookAck{Received: true})
}

// Initialize handles POST /payments/initialize.
func (h *PaymentHandler) Initialize(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.InitializePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		response.Error(c, apperror.Validation("Invalid order_id"))
		return
	}

	checkout, err := h.checkoutSvc.Initiate(c.Request.Context(), ports.InitiateRequest{
		OrderID: orderID,
		Payer:   ports.Payer{UserID: p.UserID, Email: p.Email},
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditResourceID, orderID.String())
	response.OK(c, dto.CheckoutResponse{
		AuthorizationURL: checkout.AuthorizationURL,
		Reference:        checkout.Reference,
	})
}

// ListBanks handles GET /payments/banks.
func (h *PaymentHandler) ListBanks(c *gin.Context) {
	banks, err := h.bankSvc.ListBanks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BanksResponse{Banks: banks})
}

// ResolveAccount handles POST /payments/resolve-account.
func (h *PaymentHandler) ResolveAccount(c *gin.Context) {
	var req dto.ResolveAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	dto.TrimStruct(&req)

	account, err := h.bankSvc.ResolveAccount(c.Request.Context(), req.BankCode, req.AccountNumber)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ResolveAccountResponse{
		AccountName:   account.AccountName,
		AccountNumber: account.AccountNumber,
	})
}
