package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"marketplace-payments/internal/core/domain"
	"marketplace-payments/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type auditRoute struct {
	method string
	path   string
}

type auditTarget struct {
	action       domain.AuditAction
	resourceType string
}

// auditedRoutes maps gin route patterns to audit actions. The route group
// prefix is stripped before lookup.
var auditedRoutes = map[auditRoute]auditTarget{
	{http.MethodPost, "/payouts"}:               {domain.AuditActionPayoutRequest, "payout_request"},
	{http.MethodPost, "/payouts/:id/cancel"}:    {domain.AuditActionPayoutCancel, "payout_request"},
	{http.MethodPost, "/payouts/:id/approve"}:   {domain.AuditActionPayoutApprove, "payout_request"},
	{http.MethodPost, "/payouts/:id/reject"}:    {domain.AuditActionPayoutReject, "payout_request"},
	{http.MethodPost, "/payouts/:id/reconcile"}: {domain.AuditActionPayoutReconcile, "payout_request"},
	{http.MethodPost, "/payouts/:id/release"}:   {domain.AuditActionPayoutRelease, "payout_request"},
	{http.MethodPost, "/payouts/transfer"}:      {domain.AuditActionPayoutTransfer, "payout_request"},
	{http.MethodPost, "/payments/initialize"}:   {domain.AuditActionPaymentInitiate, "order"},
	{http.MethodPut, "/vendor/bank-details"}:    {domain.AuditActionBankDetailsUpdate, "vendor"},
}

// CtxAuditResourceID lets a handler name the affected resource when it is
// not a path parameter.
const CtxAuditResourceID = "audit_resource_id"

// AuditLog records successful money-moving and configuration writes.
// Failed requests and reads are not audited.
func AuditLog(auditSvc ports.AuditService, prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}

		target, ok := lookupAuditTarget(c.Request.Method, c.FullPath(), prefix)
		if !ok {
			return
		}

		entry := &domain.AuditLog{
			ID:           uuid.New(),
			Action:       target.action,
			ResourceType: target.resourceType,
			ResourceID:   c.Param("id"),
			IPAddress:    c.ClientIP(),
			CreatedAt:    time.Now().UTC(),
		}
		if id := c.GetString(CtxAuditResourceID); id != "" {
			entry.ResourceID = id
		}
		if p, ok := PrincipalFrom(c); ok {
			actor := p.UserID
			entry.ActorID = &actor
			entry.ActorRole = string(p.Role)
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"request_id": c.GetString(CtxRequestID),
		})
		entry.Details = string(details)

		auditSvc.Log(c.Request.Context(), entry)
	}
}

func lookupAuditTarget(method, fullPath, prefix string) (auditTarget, bool) {
	if len(fullPath) < len(prefix) || fullPath[:len(prefix)] != prefix {
		return auditTarget{}, false
	}
	t, ok := auditedRoutes[auditRoute{method, fullPath[len(prefix):]}]
	return t, ok
}
