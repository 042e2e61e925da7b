package handler

import (
	"strconv"

	"marketplace-payments/internal/adapter/http/dto"
	"marketplace-payments/internal/core/ports"
	"marketplace-payments/pkg/apperror"
	"marketplace-payments/pkg/response"

	"github.com/gin-gonic/gin"
)

const defaultStatementLimit = 20

// WalletHandler handles wallet and ledger endpoints.
type WalletHandler struct {
	ledgerSvc ports.LedgerService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(ledgerSvc ports.LedgerService) *WalletHandler {
	return &WalletHandler{ledgerSvc: ledgerSvc}
}

// GetWallet handles GET /wallet.
func (h *WalletHandler) GetWallet(c *gin.Context) {
	_, vendorID, ok := vendorPrincipal(c)
	if !ok {
		return
	}

	limit := defaultStatementLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			response.Error(c, apperror.Validation("limit must be a positive integer"))
			return
		}
		limit = n
	}

	ctx := c.Request.Context()
	summary, err := h.ledgerSvc.Wallet(ctx, vendorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	txs, err := h.ledgerSvc.Statement(ctx, vendorID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WalletResponse{
		Balance:      summary.Balance,
		Outstanding:  summary.Outstanding,
		Available:    summary.Available,
		Transactions: txs,
	})
}

// VerifyLedger handles GET /admin/vendors/:id/ledger/verify.
func (h *WalletHandler) VerifyLedger(c *gin.Context) {
	vendorID, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.ledgerSvc.Verify(c.Request.Context(), vendorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}
