package handler

import (
	"marketplace-payments/internal/adapter/http/dto"
	"marketplace-payments/internal/core/domain"
	"marketplace-payments/internal/core/ports"
	"marketplace-payments/pkg/response"

	"github.com/gin-gonic/gin"
)

// VendorHandler handles a vendor's payout destination.
type VendorHandler struct {
	vendorSvc ports.VendorService
}

// NewVendorHandler creates a new VendorHandler.
func NewVendorHandler(vendorSvc ports.VendorService) *VendorHandler {
	return &VendorHandler{vendorSvc: vendorSvc}
}

// GetBankDetails handles GET /vendor/bank-details.
func (h *VendorHandler) GetBankDetails(c *gin.Context) {
	_, vendorID, ok := vendorPrincipal(c)
	if !ok {
		return
	}

	view, err := h.vendorSvc.BankDetails(c.Request.Context(), vendorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, view)
}

// UpdateBankDetails handles PUT /vendor/bank-details.
func (h *VendorHandler) UpdateBankDetails(c *gin.Context) {
	_, vendorID, ok := vendorPrincipal(c)
	if !ok {
		return
	}

	var req dto.UpdateBankDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	dto.TrimStruct(&req)

	view, err := h.vendorSvc.UpdateBankDetails(c.Request.Context(), vendorID, domain.BankDetails{
		BankCode:      req.BankCode,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		AccountName:   req.AccountName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, view)
}
