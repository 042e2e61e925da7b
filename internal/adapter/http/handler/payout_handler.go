package handler

import (
	"marketplace-payments/internal/adapter/http/dto"
	"marketplace-payments/internal/adapter/http/middleware"
	"marketplace-payments/internal/core/domain"
	"marketplace-payments/internal/core/ports"
	"marketplace-payments/pkg/apperror"
	"marketplace-payments/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PayoutHandler handles the payout request lifecycle and transfers.
type PayoutHandler struct {
	payoutSvc   ports.PayoutService
	transferSvc ports.TransferService
}

// NewPayoutHandler creates a new PayoutHandler.
func NewPayoutHandler(payoutSvc ports.PayoutService, transferSvc ports.TransferService) *PayoutHandler {
	return &PayoutHandler{payoutSvc: payoutSvc, transferSvc: transferSvc}
}

// Create handles POST /payouts.
func (h *PayoutHandler) Create(c *gin.Context) {
	_, vendorID, ok := vendorPrincipal(c)
	if !ok {
		return
	}

	var req dto.CreatePayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	payout, err := h.payoutSvc.Create(c.Request.Context(), vendorID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditResourceID, payout.ID.String())
	response.Created(c, dto.PayoutResponse{Payout: payout})
}

// List handles GET /payouts. Vendors see their own requests; admins see
// every vendor's, optionally narrowed by vendor_id.
func (h *PayoutHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var q dto.ListPayoutsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, bindError(err))
		return
	}

	params := domain.PayoutListParams{Limit: q.Limit}
	if q.Status != "" {
		status := domain.PayoutStatus(q.Status)
		params.Status = &status
	}

	switch p.Role {
	case domain.RoleVendor:
		if p.VendorID == nil {
			response.Error(c, apperror.ErrForbidden())
			return
		}
		if params.Status == nil {
			list, err := h.payoutSvc.ListForVendor(c.Request.Context(), *p.VendorID, q.Limit)
			if err != nil {
				response.Error(c, err)
				return
			}
			response.List(c, list)
			return
		}
		params.VendorID = p.VendorID
	case domain.RoleAdmin:
		if q.VendorID != "" {
			vendorID, err := uuid.Parse(q.VendorID)
			if err != nil {
				response.Error(c, apperror.Validation("Invalid vendor_id"))
				return
			}
			params.VendorID = &vendorID
		}
	default:
		response.Error(c, apperror.ErrForbidden())
		return
	}

	list, err := h.payoutSvc.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, list)
}

// Get handles GET /payouts/:id. Another vendor's request is reported as
// missing.
func (h *PayoutHandler) Get(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	payout, err := h.payoutSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if p.Role == domain.RoleVendor && (p.VendorID == nil || *p.VendorID != payout.VendorID) {
		response.Error(c, apperror.ErrNotFound("Payout request"))
		return
	}
	response.OK(c, dto.PayoutResponse{Payout: payout})
}

// Cancel handles POST /payouts/:id/cancel.
func (h *PayoutHandler) Cancel(c *gin.Context) {
	p, vendorID, ok := vendorPrincipal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	payout, err := h.payoutSvc.Cancel(c.Request.Context(), id, vendorID, p.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.PayoutResponse{Payout: payout})
}

// Approve handles POST /payouts/:id/approve.
func (h *PayoutHandler) Approve(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	payout, err := h.payoutSvc.Approve(c.Request.Context(), id, p.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.PayoutResponse{Payout: payout})
}

// Reject handles POST /payouts/:id/reject.
func (h *PayoutHandler) Reject(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.RejectPayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	dto.SanitizeStruct(&req)

	payout, err := h.payoutSvc.Reject(c.Request.Context(), id, p.UserID, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.PayoutResponse{Payout: payout})
}

// Transfer handles POST /payouts/transfer. A transfer held for OTP
// finalization answers 202 with ok false.
func (h *PayoutHandler) Transfer(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.TransferPayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	id, err := uuid.Parse(req.RequestID)
	if err != nil {
		response.Error(c, apperror.Validation("Invalid request_id"))
		return
	}

	result, err := h.transferSvc.Execute(c.Request.Context(), ports.TransferRequest{
		PayoutRequestID: id,
		Actor:           p.UserID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditResourceID, id.String())
	if result.AwaitingOTP() {
		response.Accepted(c, dto.TransferResponse{OK: false, Transfer: result})
		return
	}
	response.OK(c, dto.TransferResponse{OK: true, Transfer: result})
}

// Reconcile handles POST /payouts/:id/reconcile, recording a transfer the
// processor is known to have made.
func (h *PayoutHandler) Reconcile(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.ReconcilePayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	payout, err := h.transferSvc.Reconcile(c.Request.Context(), id, req.TransferReference, p.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.PayoutResponse{Payout: payout})
}

// Release handles POST /payouts/:id/release, freeing a request whose
// transfer is known not to have happened.
func (h *PayoutHandler) Release(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.transferSvc.ReleaseClaim(c.Request.Context(), id, p.UserID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.OKResponse{OK: true})
}
